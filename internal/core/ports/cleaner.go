package ports

// Cleaner removes state an adapter keeps on disk.
//
//go:generate mockgen -source=cleaner.go -destination=mocks/mock_cleaner.go -package=mocks
type Cleaner interface {
	// Clean removes the state. Missing state is not an error.
	Clean() error
}

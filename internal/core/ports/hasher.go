package ports

// Hasher defines the interface for computing file digests.
//
//go:generate mockgen -destination=mocks/hasher_mock.go -package=mocks -source=hasher.go
type Hasher interface {
	// FileDigest returns the lowercase hex SHA-256 of the file at path.
	FileDigest(path string) (string, error)
}

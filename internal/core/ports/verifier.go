package ports

// Verifier defines the interface for verifying archive integrity.
//
//go:generate mockgen -destination=mocks/verifier_mock.go -package=mocks -source=verifier.go
type Verifier interface {
	// VerifyChecksum reports whether the file at path has the expected hex SHA-256.
	// A missing file is reported as false with a nil error.
	VerifyChecksum(path, expected string) (bool, error)
}

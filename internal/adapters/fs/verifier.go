package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"strings"

	"go.trai.ch/samogon/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Verifier = (*Verifier)(nil)

// Verifier checks archives against their declared SHA-256 digest.
type Verifier struct {
	hasher ports.Hasher
}

// NewVerifier creates a new Verifier.
func NewVerifier(hasher ports.Hasher) *Verifier {
	return &Verifier{hasher: hasher}
}

// VerifyChecksum reports whether the file at path has the expected digest.
// It returns false without an error if the file does not exist.
func (v *Verifier) VerifyChecksum(path, expected string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, "failed to stat file"), "path", path)
	}

	digest, err := v.hasher.FileDigest(path)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(digest, expected), nil
}

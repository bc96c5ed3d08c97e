// Package cas implements the content-keyed download cache for bottle archives.
package cas

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/samogon/internal/core/domain"
	"go.trai.ch/samogon/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArtifactCache = (*Store)(nil)

// Store implements ports.ArtifactCache on a directory tree rooted at the cache root.
// Entries become visible under their final name only through Promote.
type Store struct {
	root     string
	verifier ports.Verifier
}

// NewStore creates a Store rooted at root.
func NewStore(root string, verifier ports.Verifier) *Store {
	return &Store{
		root:     filepath.Clean(root),
		verifier: verifier,
	}
}

// Root returns the cache root directory.
func (s *Store) Root() string {
	return s.root
}

// Entry returns the complete and in-progress paths for key.
func (s *Store) Entry(key string) domain.CacheEntry {
	return domain.NewCacheEntry(s.root, key)
}

// Lookup verifies the complete entry against sha256.
// A stale entry is removed so the caller can fetch it again.
func (s *Store) Lookup(entry domain.CacheEntry, sha256 string) (bool, error) {
	ok, err := s.verifier.VerifyChecksum(entry.Path, sha256)
	if err != nil {
		return false, cacheIOError(err, "failed to verify cache entry", entry.Path)
	}
	if ok {
		return true, nil
	}

	if err := os.Remove(entry.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return false, cacheIOError(err, "failed to remove corrupted cache entry", entry.Path)
	}
	return false, nil
}

// OpenIncomplete opens the in-progress file for entry.
func (s *Store) OpenIncomplete(entry domain.CacheEntry, resume bool) (*os.File, int64, error) {
	if err := os.MkdirAll(filepath.Dir(entry.IncompletePath), domain.DirPerm); err != nil {
		return nil, 0, cacheIOError(err, "failed to create downloads directory", filepath.Dir(entry.IncompletePath))
	}

	//nolint:gosec // Path is derived from the cache root and a hashed key
	f, err := os.OpenFile(entry.IncompletePath, os.O_RDWR|os.O_CREATE, domain.FilePerm)
	if err != nil {
		return nil, 0, cacheIOError(err, "failed to open incomplete download", entry.IncompletePath)
	}

	if !resume {
		if err := f.Truncate(0); err != nil {
			_ = f.Close()
			return nil, 0, cacheIOError(err, "failed to truncate incomplete download", entry.IncompletePath)
		}
		return f, 0, nil
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, 0, cacheIOError(err, "failed to stat incomplete download", entry.IncompletePath)
	}
	return f, info.Size(), nil
}

// Promote renames the verified in-progress file to its final name.
func (s *Store) Promote(entry domain.CacheEntry) error {
	if err := os.Rename(entry.IncompletePath, entry.Path); err != nil {
		return cacheIOError(err, "failed to move incomplete download into cache", entry.Path)
	}
	return nil
}

// Clean removes every entry under the downloads directory.
func (s *Store) Clean() error {
	dir := domain.DownloadsPath(s.root)
	if err := os.RemoveAll(dir); err != nil {
		return cacheIOError(err, "failed to remove downloads", dir)
	}
	return nil
}

func cacheIOError(err error, msg, path string) error {
	return zerr.With(zerr.Wrap(errors.Join(domain.ErrCacheIO, err), msg), "path", path)
}

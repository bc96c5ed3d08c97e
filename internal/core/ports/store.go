package ports

import (
	"os"

	"go.trai.ch/samogon/internal/core/domain"
)

// ArtifactCache is the on-disk store of downloaded bottle archives.
// Each entry is only touched by the task that owns its key.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ArtifactCache interface {
	// Entry returns the paths for key.
	Entry(key string) domain.CacheEntry

	// Lookup reports whether a complete entry exists and matches sha256.
	// A mismatching entry is deleted before Lookup returns false.
	Lookup(entry domain.CacheEntry, sha256 string) (bool, error)

	// OpenIncomplete opens the in-progress file for writing.
	// With resume set, existing bytes are kept and their count is returned as the offset.
	// Otherwise the file is truncated and the offset is zero.
	OpenIncomplete(entry domain.CacheEntry, resume bool) (*os.File, int64, error)

	// Promote atomically renames the in-progress file to the complete path.
	Promote(entry domain.CacheEntry) error
}

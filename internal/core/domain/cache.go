package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"path/filepath"
)

const (
	// DownloadsDirName is the directory under the cache root holding bottle archives.
	DownloadsDirName = "downloads"

	// IncompleteSuffix marks an in-progress download.
	IncompleteSuffix = ".incomplete"

	// BottleExt is the file extension of bottle archives.
	BottleExt = "tar.gz"
)

// CacheEntry locates a bottle archive in the download cache.
type CacheEntry struct {
	// Key is the file name of the complete entry.
	Key string

	// Path is where the verified archive lives.
	Path string

	// IncompletePath holds partial bytes until the archive is verified.
	IncompletePath string
}

// CacheKey derives the file name of a bottle archive in the download cache:
// <sha256(url)>--<name>--<version>_<revision>.<platform>.bottle.<ext>.
func CacheKey(url string, f *Formula, platform Platform) string {
	sum := sha256.Sum256([]byte(url))
	return hex.EncodeToString(sum[:]) + "--" + f.Name + "--" + f.VersionString() +
		"." + platform.String() + ".bottle." + BottleExt
}

// NewCacheEntry returns the entry for key under the given cache root.
func NewCacheEntry(cacheRoot, key string) CacheEntry {
	path := filepath.Join(cacheRoot, DownloadsDirName, key)
	return CacheEntry{
		Key:            key,
		Path:           path,
		IncompletePath: path + IncompleteSuffix,
	}
}

// FetchOutcome is the result of fetching and staging one package.
type FetchOutcome struct {
	Name        string
	ArchivePath string
	StagingDir  string
	Cached      bool
}

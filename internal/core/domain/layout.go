package domain

import "path/filepath"

const (
	// DataDirName is the name of the samogon data directory under the prefix.
	DataDirName = ".samogon"

	// IndexFileName is the name of the formula index snapshot.
	IndexFileName = "index.bin"

	// CacheDirName is the name of the Homebrew cache directory under the user cache dir.
	CacheDirName = "Homebrew"

	// ConfigDirName is the name of the config directory under the user config dir.
	ConfigDirName = "samogon"

	// ConfigFileName is the name of the config file.
	ConfigFileName = "config.yaml"

	// StagingDirPrefix prefixes staging directories created under the temp dir.
	StagingDirPrefix = "samogon-"

	// DefaultFormulaeURL is the Homebrew formula index endpoint.
	DefaultFormulaeURL = "https://formulae.brew.sh/api/formula.json"

	// DefaultAuthToken is the anonymous bearer token accepted by the GitHub container registry.
	DefaultAuthToken = "QQ=="

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// IndexPath returns the path of the formula index snapshot inside dataDir.
func IndexPath(dataDir string) string {
	return filepath.Join(dataDir, IndexFileName)
}

// DownloadsPath returns the downloads directory under the cache root.
func DownloadsPath(cacheRoot string) string {
	return filepath.Join(cacheRoot, DownloadsDirName)
}

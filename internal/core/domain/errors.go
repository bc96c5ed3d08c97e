package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingPackage is returned when a requested package or one of its dependencies
	// is not present in the repository.
	ErrMissingPackage = zerr.New("package not found in repository")

	// ErrDuplicatePackage is returned when a repository is built with two records of the same name.
	ErrDuplicatePackage = zerr.New("duplicate package in repository")

	// ErrUnavailableForPlatform is returned when a package has no bottle for the current platform.
	ErrUnavailableForPlatform = zerr.New("package is unavailable for platform")

	// ErrContentLengthMissing is returned when a bottle download response has no Content-Length.
	ErrContentLengthMissing = zerr.New("no content length received")

	// ErrDownloadCorrupted is returned when a downloaded bottle does not match its declared checksum.
	ErrDownloadCorrupted = zerr.New("bottle download is corrupted")

	// ErrNetwork is returned when a transfer fails at the transport level.
	ErrNetwork = zerr.New("network error")

	// ErrCacheIO is returned when a filesystem operation on the download cache fails.
	ErrCacheIO = zerr.New("download cache io error")

	// ErrArchive is returned when a bottle archive cannot be decompressed or extracted.
	ErrArchive = zerr.New("failed to unpack bottle archive")

	// ErrRepositoryParse is returned when the remote formula index is malformed.
	ErrRepositoryParse = zerr.New("failed to parse formula index")

	// ErrSnapshot is returned when the local formula index snapshot is missing or corrupt.
	ErrSnapshot = zerr.New("invalid formula index snapshot")

	// ErrNoPackagesSpecified is returned when install is invoked without package names.
	ErrNoPackagesSpecified = zerr.New("no packages specified")

	// ErrInstallAborted is returned when the user declines the install plan.
	ErrInstallAborted = zerr.New("install aborted")

	// ErrInstallFailed is returned when the fetch pipeline fails for any package.
	ErrInstallFailed = zerr.New("install failed")

	// ErrConfigRead is returned when the config file exists but cannot be read.
	ErrConfigRead = zerr.New("failed to read config file")

	// ErrConfigParse is returned when the config file is not valid YAML.
	ErrConfigParse = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when a configuration value is out of range.
	ErrInvalidConfig = zerr.New("invalid configuration")
)

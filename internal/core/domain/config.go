package domain

import (
	"path/filepath"
	"time"

	"go.trai.ch/zerr"
)

const (
	// DefaultMaxConcurrentFetches bounds the number of fetch tasks running at once.
	DefaultMaxConcurrentFetches = 16

	// DefaultFetchRetries is the number of fresh attempts after the resume attempt.
	DefaultFetchRetries = 3

	// DefaultMetadataTimeout bounds the formula index request.
	DefaultMetadataTimeout = 60 * time.Second
)

// Config holds the fixed inputs of a run. It is built once and never mutated.
type Config struct {
	CacheRoot            string
	Prefix               string
	DataDir              string
	Platform             Platform
	MaxConcurrentFetches int
	FetchRetries         int
	FormulaeURL          string
	AuthToken            string
	MetadataTimeout      time.Duration
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig(userCacheDir, goos, goarch, osVersion string) Config {
	prefix := DefaultPrefix(goos, goarch)
	return Config{
		CacheRoot:            filepath.Join(userCacheDir, CacheDirName),
		Prefix:               prefix,
		DataDir:              filepath.Join(prefix, DataDirName),
		Platform:             DetectPlatform(goos, goarch, osVersion),
		MaxConcurrentFetches: DefaultMaxConcurrentFetches,
		FetchRetries:         DefaultFetchRetries,
		FormulaeURL:          DefaultFormulaeURL,
		AuthToken:            DefaultAuthToken,
		MetadataTimeout:      DefaultMetadataTimeout,
	}
}

// Validate reports the first out-of-range value.
func (c *Config) Validate() error {
	switch {
	case c.CacheRoot == "":
		return zerr.With(zerr.Wrap(ErrInvalidConfig, "cache root must be set"), "field", "cache")
	case c.DataDir == "":
		return zerr.With(zerr.Wrap(ErrInvalidConfig, "data dir must be set"), "field", "data_dir")
	case c.Platform == "":
		return zerr.With(zerr.Wrap(ErrInvalidConfig, "platform must be set"), "field", "platform")
	case c.MaxConcurrentFetches < 1:
		return zerr.With(zerr.Wrap(ErrInvalidConfig, "concurrency must be positive"), "field", "max_concurrent_fetches")
	case c.FetchRetries < 0:
		return zerr.With(zerr.Wrap(ErrInvalidConfig, "retries must not be negative"), "field", "fetch_retries")
	case c.FormulaeURL == "":
		return zerr.With(zerr.Wrap(ErrInvalidConfig, "formulae url must be set"), "field", "formulae_url")
	}
	return nil
}

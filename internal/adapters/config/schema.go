package config

import "time"

// File represents the structure of the optional config.yaml file.
// Unset fields keep their defaults.
type File struct {
	Cache                string        `yaml:"cache"`
	Prefix               string        `yaml:"prefix"`
	DataDir              string        `yaml:"data_dir"`
	Platform             string        `yaml:"platform"`
	MaxConcurrentFetches *int          `yaml:"max_concurrent_fetches"`
	FetchRetries         *int          `yaml:"fetch_retries"`
	FormulaeURL          string        `yaml:"formulae_url"`
	AuthToken            *string       `yaml:"auth_token"`
	MetadataTimeout      time.Duration `yaml:"metadata_timeout"`
}

// Environment variables read by the loader.
const (
	EnvConfig               = "SAMOGON_CONFIG"
	EnvCache                = "HOMEBREW_CACHE"
	EnvPrefix               = "HOMEBREW_PREFIX"
	EnvDataDir              = "SAMOGON_DATA_DIR"
	EnvPlatform             = "SAMOGON_PLATFORM"
	EnvMaxConcurrentFetches = "SAMOGON_MAX_CONCURRENT_FETCHES"
	EnvFetchRetries         = "SAMOGON_FETCH_RETRIES"
	EnvFormulaeURL          = "SAMOGON_FORMULAE_URL"
	EnvAuthToken            = "SAMOGON_AUTH_TOKEN"
)

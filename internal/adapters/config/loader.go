// Package config provides the configuration loader for samogon.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"go.trai.ch/samogon/internal/core/domain"
	"go.trai.ch/samogon/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader builds a domain.Config from defaults, an optional YAML file and the environment,
// in that order of precedence.
type Loader struct {
	logger    ports.Logger
	goos      string
	goarch    string
	osVersion string
}

// NewLoader creates a new Loader for the running platform.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{
		logger:    log,
		goos:      runtime.GOOS,
		goarch:    runtime.GOARCH,
		osVersion: productVersion(),
	}
}

// WithPlatform overrides the host description used for defaults.
func (l *Loader) WithPlatform(goos, goarch, osVersion string) *Loader {
	l.goos = goos
	l.goarch = goarch
	l.osVersion = osVersion
	return l
}

// Load returns the validated configuration.
func (l *Loader) Load() (domain.Config, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return domain.Config{}, zerr.Wrap(err, "failed to determine user cache directory")
	}
	cfg := domain.DefaultConfig(cacheDir, l.goos, l.goarch, l.osVersion)
	dataDirSet := false

	if prefix, ok := os.LookupEnv(EnvPrefix); ok && prefix != "" {
		cfg.Prefix = prefix
	}

	file, err := l.readFile()
	if err != nil {
		return domain.Config{}, err
	}
	if file != nil {
		dataDirSet = applyFile(&cfg, file)
	}

	envDataDirSet, err := applyEnv(&cfg)
	if err != nil {
		return domain.Config{}, err
	}
	dataDirSet = dataDirSet || envDataDirSet

	if !dataDirSet {
		cfg.DataDir = filepath.Join(cfg.Prefix, domain.DataDirName)
	}

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, err
	}

	l.logger.Debug(fmt.Sprintf("platform %s, cache %s, data %s", cfg.Platform, cfg.CacheRoot, cfg.DataDir))
	return cfg, nil
}

// Path returns the config file location: $SAMOGON_CONFIG or <user config dir>/samogon/config.yaml.
func Path() (string, error) {
	if p, ok := os.LookupEnv(EnvConfig); ok && p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, domain.ConfigDirName, domain.ConfigFileName), nil
}

func (l *Loader) readFile() (*File, error) {
	path, err := Path()
	if err != nil {
		// Without a config dir there is no file to read.
		return nil, nil //nolint:nilerr // defaults apply
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.logger.Debug("no config file at " + path)
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrConfigRead, err), "failed to load configuration"), "path", path)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrConfigParse, err), "failed to load configuration"), "path", path)
	}
	return &file, nil
}

// applyFile copies the set fields of file into cfg and reports whether the data dir was set.
func applyFile(cfg *domain.Config, file *File) bool {
	if file.Cache != "" {
		cfg.CacheRoot = file.Cache
	}
	if file.Prefix != "" {
		cfg.Prefix = file.Prefix
	}
	if file.Platform != "" {
		cfg.Platform = domain.Platform(file.Platform)
	}
	if file.MaxConcurrentFetches != nil {
		cfg.MaxConcurrentFetches = *file.MaxConcurrentFetches
	}
	if file.FetchRetries != nil {
		cfg.FetchRetries = *file.FetchRetries
	}
	if file.FormulaeURL != "" {
		cfg.FormulaeURL = file.FormulaeURL
	}
	if file.AuthToken != nil {
		cfg.AuthToken = *file.AuthToken
	}
	if file.MetadataTimeout > 0 {
		cfg.MetadataTimeout = file.MetadataTimeout
	}
	if file.DataDir != "" {
		cfg.DataDir = file.DataDir
		return true
	}
	return false
}

// applyEnv copies environment overrides into cfg and reports whether the data dir was set.
func applyEnv(cfg *domain.Config) (bool, error) {
	strVars := map[string]*string{
		EnvCache:       &cfg.CacheRoot,
		EnvPrefix:      &cfg.Prefix,
		EnvFormulaeURL: &cfg.FormulaeURL,
		EnvAuthToken:   &cfg.AuthToken,
	}
	for name, dst := range strVars {
		if v, ok := os.LookupEnv(name); ok && v != "" {
			*dst = v
		}
	}

	if v, ok := os.LookupEnv(EnvPlatform); ok && v != "" {
		cfg.Platform = domain.Platform(v)
	}

	intVars := map[string]*int{
		EnvMaxConcurrentFetches: &cfg.MaxConcurrentFetches,
		EnvFetchRetries:         &cfg.FetchRetries,
	}
	for name, dst := range intVars {
		v, ok := os.LookupEnv(name)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return false, zerr.With(zerr.Wrap(errors.Join(domain.ErrInvalidConfig, err), "invalid integer in environment"), "variable", name)
		}
		*dst = n
	}

	if v, ok := os.LookupEnv(EnvDataDir); ok && v != "" {
		cfg.DataDir = v
		return true, nil
	}
	return false, nil
}

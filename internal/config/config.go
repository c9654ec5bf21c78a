// Package config reads the application's configuration from the
// environment: the three required Zoom server-to-server OAuth secrets plus
// optional overrides for the cache path and endpoint roots.
package config

import (
	"fmt"
	"os"
)

// Environment variable names for the required secrets.
const (
	EnvClientID     = "CLIENT_ID"
	EnvClientSecret = "CLIENT_SECRET"
	EnvAccountID    = "ACCT_ID"
)

// Optional environment overrides.
const (
	EnvCacheFile = "ZOOMSIZE_CACHE_FILE"
	EnvBaseURL   = "ZOOMSIZE_API_BASE_URL"
	EnvTokenURL  = "ZOOMSIZE_TOKEN_URL"
)

// ConfigError reports a missing required configuration value.
type ConfigError struct {
	Key string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: missing required %s", e.Key)
}

// Config holds everything read at startup. The secrets are immutable for
// the process lifetime.
type Config struct {
	ClientID     string
	ClientSecret string
	AccountID    string

	// CacheFile is the on-disk collection cache path; empty means the
	// cache package default.
	CacheFile string

	// BaseURL and TokenURL override the Zoom endpoint roots when set.
	BaseURL  string
	TokenURL string
}

// FromEnv reads the configuration. A missing secret is a fatal
// configuration error, surfaced as *ConfigError.
func FromEnv() (Config, error) {
	cfg := Config{
		ClientID:     os.Getenv(EnvClientID),
		ClientSecret: os.Getenv(EnvClientSecret),
		AccountID:    os.Getenv(EnvAccountID),
		CacheFile:    os.Getenv(EnvCacheFile),
		BaseURL:      os.Getenv(EnvBaseURL),
		TokenURL:     os.Getenv(EnvTokenURL),
	}

	for _, required := range []struct {
		key   string
		value string
	}{
		{EnvClientID, cfg.ClientID},
		{EnvClientSecret, cfg.ClientSecret},
		{EnvAccountID, cfg.AccountID},
	} {
		if required.value == "" {
			return Config{}, &ConfigError{Key: required.key}
		}
	}

	return cfg, nil
}

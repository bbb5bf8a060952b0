// ABOUTME: Client settings loaded from an optional settings file plus env overrides.
// ABOUTME: Also resolves the per-user config directory that holds credential and cache files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	koanfjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// DefaultAPIBaseURL is the production backend. The backend owns its
	// endpoint shapes; only the api package knows them.
	DefaultAPIBaseURL = "https://api.macrofactorapp.com/v1"

	defaultTimeoutSeconds = 15

	envPrefix    = "MACROFACTOR_"
	settingsFile = "settings.json"
)

// Config stores optional client settings. Everything has a working default;
// the settings file and MACROFACTOR_* environment variables exist mainly for
// tests and for pointing the client at a staging backend.
type Config struct {
	// APIBaseURL overrides the backend base URL.
	APIBaseURL string `koanf:"api_base_url" json:"api_base_url,omitempty"`

	// TimeoutSeconds bounds each HTTP request. A hung request otherwise
	// blocks the whole invocation.
	TimeoutSeconds int `koanf:"timeout_seconds" json:"timeout_seconds,omitempty"`

	// LogLevel selects slog verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level" json:"log_level,omitempty"`
}

// BaseURL returns the configured backend base URL, defaulting to production.
func (c *Config) BaseURL() string {
	if c.APIBaseURL == "" {
		return DefaultAPIBaseURL
	}
	return strings.TrimRight(c.APIBaseURL, "/")
}

// HTTPTimeout returns the per-request timeout.
func (c *Config) HTTPTimeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return defaultTimeoutSeconds * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// GetLogLevel returns the configured log level, defaulting to "warn" so
// normal runs stay quiet.
func (c *Config) GetLogLevel() string {
	if c.LogLevel == "" {
		return "warn"
	}
	return c.LogLevel
}

// Dir returns the per-user config directory holding the credential file,
// the search cache, and the optional settings file.
func Dir() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "macrofactor")
}

// Load reads settings.json from dir if present, then applies MACROFACTOR_*
// environment overrides (MACROFACTOR_API_BASE_URL, MACROFACTOR_LOG_LEVEL, ...).
func Load(dir string) (*Config, error) {
	k := koanf.New(".")

	path := filepath.Join(dir, settingsFile)
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), koanfjson.Parser()); err != nil {
			return nil, fmt.Errorf("read settings file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
			return key, value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("load environment overrides: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}
	return cfg, nil
}

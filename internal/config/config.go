// Package config provides application configuration.
package config

import (
	"os"
	"path/filepath"
)

// Default configuration values.
const (
	DefaultLogLevel = "INFO"
	DefaultDBName   = "xray.db"
)

// LogFormat represents the log output format.
type LogFormat string

// LogFormat values.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// DefaultDataDir returns the default data directory.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".xray"
	}
	return filepath.Join(home, ".xray")
}

// AppConfig is the resolved application configuration.
type AppConfig struct {
	dataDir   string
	dbURL     string
	logLevel  string
	logFormat LogFormat
}

// NewAppConfig creates an AppConfig with defaults.
func NewAppConfig() AppConfig {
	dataDir := DefaultDataDir()
	return AppConfig{
		dataDir:   dataDir,
		dbURL:     "sqlite:///" + filepath.Join(dataDir, DefaultDBName),
		logLevel:  DefaultLogLevel,
		logFormat: LogFormatPretty,
	}
}

// DataDir returns the data directory path.
func (c AppConfig) DataDir() string { return c.dataDir }

// DBURL returns the database connection URL.
func (c AppConfig) DBURL() string { return c.dbURL }

// LogLevel returns the log verbosity level.
func (c AppConfig) LogLevel() string { return c.logLevel }

// LogFormat returns the log output format.
func (c AppConfig) LogFormat() LogFormat { return c.logFormat }

// AppConfigOption mutates an AppConfig during construction.
type AppConfigOption func(*AppConfig)

// WithDataDir sets the data directory (and the derived default DB path
// when no explicit DB URL was set).
func WithDataDir(dir string) AppConfigOption {
	return func(c *AppConfig) {
		c.dataDir = dir
		c.dbURL = "sqlite:///" + filepath.Join(dir, DefaultDBName)
	}
}

// WithDBURL sets the database connection URL.
func WithDBURL(url string) AppConfigOption {
	return func(c *AppConfig) { c.dbURL = url }
}

// WithLogLevel sets the log verbosity level.
func WithLogLevel(level string) AppConfigOption {
	return func(c *AppConfig) { c.logLevel = level }
}

// WithLogFormat sets the log output format.
func WithLogFormat(format LogFormat) AppConfigOption {
	return func(c *AppConfig) { c.logFormat = format }
}

// NewAppConfigWith creates an AppConfig with defaults and applies options.
func NewAppConfigWith(options ...AppConfigOption) AppConfig {
	c := NewAppConfig()
	for _, opt := range options {
		opt(&c)
	}
	return c
}

// LoadConfig loads configuration from a .env file (optional) and
// environment variables; environment variables win over file values.
func LoadConfig(envPath string) (AppConfig, error) {
	if err := LoadDotEnv(envPath); err != nil {
		return AppConfig{}, err
	}

	envCfg, err := LoadFromEnv()
	if err != nil {
		return AppConfig{}, err
	}

	return envCfg.ToAppConfig(), nil
}

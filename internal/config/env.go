package config

import (
	"github.com/kelseyhightower/envconfig"
)

// EnvConfig holds all environment-based configuration.
// Variables carry the XRAY_ prefix (e.g. XRAY_DB_URL).
type EnvConfig struct {
	// DataDir is the data directory path.
	// Env: XRAY_DATA_DIR (default: ~/.xray)
	DataDir string `envconfig:"DATA_DIR"`

	// DBURL is the database connection URL.
	// Env: XRAY_DB_URL (default: sqlite:///{data_dir}/xray.db)
	DBURL string `envconfig:"DB_URL"`

	// LogLevel is the log verbosity level.
	// Env: XRAY_LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// LogFormat is the log output format (pretty or json).
	// Env: XRAY_LOG_FORMAT (default: pretty)
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`
}

// LoadFromEnv reads EnvConfig from XRAY_-prefixed environment variables.
func LoadFromEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process("XRAY", &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// ToAppConfig converts the raw environment values into an AppConfig,
// filling in derived defaults.
func (e EnvConfig) ToAppConfig() AppConfig {
	var options []AppConfigOption
	if e.DataDir != "" {
		options = append(options, WithDataDir(e.DataDir))
	}
	if e.DBURL != "" {
		options = append(options, WithDBURL(e.DBURL))
	}
	if e.LogLevel != "" {
		options = append(options, WithLogLevel(e.LogLevel))
	}
	if e.LogFormat == string(LogFormatJSON) {
		options = append(options, WithLogFormat(LogFormatJSON))
	}
	return NewAppConfigWith(options...)
}

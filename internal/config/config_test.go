package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range []string{"XRAY_DATA_DIR", "XRAY_DB_URL", "XRAY_LOG_LEVEL", "XRAY_LOG_FORMAT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestNewAppConfig_Defaults(t *testing.T) {
	cfg := NewAppConfig()

	assert.Equal(t, DefaultDataDir(), cfg.DataDir())
	assert.Equal(t, "sqlite:///"+filepath.Join(cfg.DataDir(), DefaultDBName), cfg.DBURL())
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel())
	assert.Equal(t, LogFormatPretty, cfg.LogFormat())
}

func TestNewAppConfigWith_Options(t *testing.T) {
	cfg := NewAppConfigWith(
		WithDataDir("/tmp/xray"),
		WithLogLevel("DEBUG"),
		WithLogFormat(LogFormatJSON),
	)

	assert.Equal(t, "/tmp/xray", cfg.DataDir())
	assert.Equal(t, "sqlite:///"+filepath.Join("/tmp/xray", DefaultDBName), cfg.DBURL())
	assert.Equal(t, "DEBUG", cfg.LogLevel())
	assert.Equal(t, LogFormatJSON, cfg.LogFormat())
}

func TestNewAppConfigWith_ExplicitDBURLWins(t *testing.T) {
	cfg := NewAppConfigWith(
		WithDataDir("/tmp/xray"),
		WithDBURL("postgres://localhost/xray"),
	)

	assert.Equal(t, "postgres://localhost/xray", cfg.DBURL())
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "", cfg.DataDir)
	assert.Equal(t, "", cfg.DBURL)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, "pretty", cfg.LogFormat)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("XRAY_DB_URL", "postgres://localhost/xray")
	t.Setenv("XRAY_LOG_LEVEL", "DEBUG")
	t.Setenv("XRAY_LOG_FORMAT", "json")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	app := cfg.ToAppConfig()
	assert.Equal(t, "postgres://localhost/xray", app.DBURL())
	assert.Equal(t, "DEBUG", app.LogLevel())
	assert.Equal(t, LogFormatJSON, app.LogFormat())
}

func TestLoadConfig_DotEnvFile(t *testing.T) {
	clearEnvVars(t)

	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath,
		[]byte("XRAY_DATA_DIR="+dir+"\nXRAY_LOG_LEVEL=WARN\n"), 0o644))

	cfg, err := LoadConfig(envPath)
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.DataDir())
	assert.Equal(t, "WARN", cfg.LogLevel())
}

func TestLoadConfig_MissingDotEnvIsFine(t *testing.T) {
	clearEnvVars(t)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "no-such.env"))
	require.NoError(t, err)
	assert.Equal(t, DefaultDataDir(), cfg.DataDir())
}

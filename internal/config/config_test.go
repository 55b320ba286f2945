package config

import (
	"os"
	"path/filepath"
	"testing"

	"normtest/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"NORMTEST_CONFIG", "DATABASE_URL", "PORT", "GIN_MODE", "LOG_LEVEL",
		"NORMTEST_ALPHA", "NORMTEST_LANGUAGE", "NORMTEST_DIGITS",
		"NORMTEST_BATTERY_CONCURRENCY", "NORMTEST_MAX_SAMPLE_SIZE",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 0.05, cfg.Defaults.Alpha)
	assert.Equal(t, "en", cfg.Defaults.Language)
	assert.Equal(t, 3, cfg.Defaults.Digits)
	assert.Equal(t, 5, cfg.Battery.Concurrency)
	assert.False(t, cfg.UsesDatabase())
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://localhost/normtest")
	t.Setenv("NORMTEST_ALPHA", "0.01")
	t.Setenv("NORMTEST_LANGUAGE", "pt-BR")
	t.Setenv("NORMTEST_DIGITS", "5")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.UsesDatabase())
	assert.Equal(t, 0.01, cfg.Defaults.Alpha)
	assert.Equal(t, "pt-BR", cfg.Defaults.Language)
	assert.Equal(t, 5, cfg.Defaults.Digits)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
}

func TestLoad_YAMLOverlay(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "normtest.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: "7000"
defaults:
  alpha: 0.1
  language: pt-BR
  digits: 4
battery:
  concurrency: 2
`), 0o644))
	t.Setenv("NORMTEST_CONFIG", path)
	t.Setenv("NORMTEST_DIGITS", "2")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.Server.Port)
	assert.Equal(t, 0.1, cfg.Defaults.Alpha)
	assert.Equal(t, "pt-BR", cfg.Defaults.Language)
	assert.Equal(t, 2, cfg.Defaults.Digits, "environment wins over the file")
	assert.Equal(t, 2, cfg.Battery.Concurrency)
	assert.Equal(t, 100000, cfg.Battery.MaxSampleSize, "unset keys keep defaults")
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"alpha out of range", map[string]string{"NORMTEST_ALPHA": "1.5"}},
		{"negative digits", map[string]string{"NORMTEST_DIGITS": "-2"}},
		{"zero concurrency", map[string]string{"NORMTEST_BATTERY_CONCURRENCY": "0"}},
		{"unknown log level", map[string]string{"LOG_LEVEL": "VERBOSE"}},
		{"missing config file", map[string]string{"NORMTEST_CONFIG": "/nonexistent/normtest.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.Error(t, err)
			assert.True(t, errors.IsAppError(err))
		})
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0o644))
	t.Setenv("NORMTEST_CONFIG", path)

	_, err := Load()
	require.Error(t, err)
	assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "solaceassignment", cfg.DB.Name)
	assert.Equal(t, "disable", cfg.DB.SSLMode)
	assert.Equal(t, 10, cfg.Search.DefaultLimit)
	assert.Equal(t, 100, cfg.Search.MaxLimit)
	assert.Equal(t, uint32(5), cfg.Breaker.MaxFailures)
	assert.Equal(t, 30*time.Second, cfg.Breaker.Timeout)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "http://localhost:8080", cfg.Browse.BaseURL)
	assert.Equal(t, 300*time.Millisecond, cfg.Browse.Debounce)
	assert.Equal(t, 10, cfg.Browse.Limit)
}

func TestLoadConfigFromDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	env := "APP_PORT=9090\nDB_NAME=directory\nSEARCH_MAX_LIMIT=50\nBREAKER_TIMEOUT=5s\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600))

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "directory", cfg.DB.Name)
	assert.Equal(t, 50, cfg.Search.MaxLimit)
	assert.Equal(t, 5*time.Second, cfg.Breaker.Timeout)
}

func TestLoadConfigEnvironmentOverridesDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("APP_PORT=9090\n"), 0o600))
	t.Setenv("APP_PORT", "7070")
	t.Setenv("BROWSE_DEBOUNCE", "1s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.App.Port)
	assert.Equal(t, time.Second, cfg.Browse.Debounce)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "non numeric port", key: "APP_PORT", val: "http"},
		{name: "unknown env", key: "APP_ENV", val: "qa"},
		{name: "default above max", key: "SEARCH_DEFAULT_LIMIT", val: "500"},
		{name: "bad browse url", key: "BROWSE_BASE_URL", val: "not a url"},
		{name: "zero breaker failures", key: "BREAKER_MAX_FAILURES", val: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv(tt.key, tt.val)

			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigRejectsMalformedDurations(t *testing.T) {
	for _, key := range []string{"BREAKER_TIMEOUT", "BROWSE_DEBOUNCE"} {
		t.Run(key, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv(key, "soon")

			_, err := LoadConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

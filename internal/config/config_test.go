package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-sync/internal/config/configs"
)

// TestLoadDefaults ensures Load falls back to defaults when nothing is set.
func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, configs.StorePostgres, cfg.Store.Driver)
	assert.Equal(t, 30*time.Second, cfg.Sync.AdapterTimeout)
	assert.Equal(t, time.Second, cfg.Backoff.Base)
	assert.Equal(t, 5*time.Minute, cfg.Backoff.Max)
	assert.Equal(t, 5, cfg.AMQP.MaxAttempts)
	assert.Empty(t, cfg.Mock.Platforms)
	assert.False(t, cfg.Reddit.Enabled)
}

// TestLoadFromDotEnv ensures Load reads values from a dotenv file.
func TestLoadFromDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(
		"STORE_DRIVER=sqlite\nPLATFORM_MOCKS=google,meta\nMOCK_FAILURE_RATE=0.3\nSYNC_ADAPTER_TIMEOUT=5s\n"), 0o600))
	// variables already in the environment win over the file
	t.Setenv("MOCK_SEED", "42")
	t.Setenv("SYNC_ADAPTER_TIMEOUT", "7s")
	// godotenv sets variables for the process; clean them up
	for _, k := range []string{"STORE_DRIVER", "PLATFORM_MOCKS", "MOCK_FAILURE_RATE"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, configs.StoreSQLite, cfg.Store.Driver)
	assert.Equal(t, []string{"google", "meta"}, cfg.Mock.Platforms)
	assert.InDelta(t, 0.3, cfg.Mock.FailureRate, 1e-9)
	assert.Equal(t, uint64(42), cfg.Mock.Seed)
	assert.Equal(t, 7*time.Second, cfg.Sync.AdapterTimeout)
}

// TestLoggerLevels ensures level and format strings resolve with fallbacks.
func TestLoggerLevels(t *testing.T) {
	tests := map[string]string{"debug": "DEBUG", "WARN": "WARN", "err": "ERROR", "bogus": "INFO"}
	for in, want := range tests {
		assert.Equal(t, want, configs.Logger{Level: in}.SlogLevel().String(), in)
	}
	assert.Equal(t, "json", configs.Logger{Format: "JSON"}.SlogFormat())
	assert.Equal(t, "text", configs.Logger{Format: "yaml"}.SlogFormat())
	assert.Equal(t, os.Stdout, configs.Logger{}.Output())
}

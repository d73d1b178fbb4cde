package config

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"testing"
	"time"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CORTEX_BACKEND_URL", "https://api.cortex.test")
	t.Setenv("CORTEX_STORE_DRIVER", StoreDriverPostgres)
	t.Setenv("CORTEX_STORE_ENTRY_LIFETIME", "2h")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "https://api.cortex.test", cfg.BackendURL)
	assert.Equal(t, StoreDriverPostgres, cfg.StoreDriver)
	assert.Equal(t, 2*time.Hour, cfg.StoreEntryLifetime)
	assert.Equal(t, ":8080", cfg.ListenAddress)
	assert.Equal(t, "/connections", cfg.CallbackSteadyRoute)
	assert.Equal(t, "http://localhost:3000", cfg.AllowedOrigin)
}

func TestLoadFromEnvRejectsWildcardOriginInProduction(t *testing.T) {
	t.Setenv("CORTEX_BACKEND_URL", "https://api.cortex.test")
	t.Setenv("CORTEX_ENVIRONMENT", "production")
	t.Setenv("CORTEX_ALLOWED_ORIGIN", "*")

	_, err := LoadFromEnv()
	assert.ErrorIs(t, err, ErrWildcardOrigin)

	t.Setenv("CORTEX_ALLOWED_ORIGIN", "https://dashboard.cortex.test")
	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "https://dashboard.cortex.test", cfg.AllowedOrigin)

	t.Setenv("CORTEX_ENVIRONMENT", "dev")
	t.Setenv("CORTEX_ALLOWED_ORIGIN", "*")
	_, err = LoadFromEnv()
	assert.NoError(t, err)
}

func TestLoadFromEnvRequiresBackendURL(t *testing.T) {
	t.Setenv("CORTEX_BACKEND_URL", "unused")
	require.NoError(t, os.Unsetenv("CORTEX_BACKEND_URL"))

	_, err := LoadFromEnv()
	assert.Error(t, err)
}

func TestIsEnvProduction(t *testing.T) {
	assert.True(t, (&Config{Environment: "prod"}).IsEnvProduction())
	assert.True(t, (&Config{Environment: "Production"}).IsEnvProduction())
	assert.False(t, (&Config{Environment: "dev"}).IsEnvProduction())
}

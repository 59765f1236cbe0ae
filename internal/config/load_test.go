package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests mutate process-wide environment variables, so none of them
// run in parallel.

func setRequiredEnv(t *testing.T) {
	t.Setenv("TASKAPI_DATABASE_URL", "postgres://localhost:5432/tasks")
	t.Setenv("TASKAPI_AUTH_JWT_SECRET", "0123456789abcdef0123456789abcdef")
}

func TestLoadFromEnvironment(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TASKAPI_SERVER_PORT", "9090")
	t.Setenv("TASKAPI_SERVER_LOG_LEVEL", "debug")
	t.Setenv("TASKAPI_AUTH_TOKEN_LIFETIME_MINUTES", "30")
	t.Setenv("TASKAPI_AUTH_ISSUER", "issuer-under-test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "postgres://localhost:5432/tasks", cfg.Database.URL)
	assert.Equal(t, 30, cfg.Auth.TokenLifetimeMinutes)
	assert.Equal(t, "issuer-under-test", cfg.Auth.Issuer)
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, 60, cfg.Auth.TokenLifetimeMinutes)
	assert.Equal(t, "task-management-system", cfg.Auth.Issuer)
	assert.Equal(t, "task-management-system", cfg.Auth.Audience)
}

func TestLoadRejectsShortSecret(t *testing.T) {
	t.Setenv("TASKAPI_DATABASE_URL", "postgres://localhost:5432/tasks")
	t.Setenv("TASKAPI_AUTH_JWT_SECRET", "too-short")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadRejectsMissingDatabaseURL(t *testing.T) {
	t.Setenv("TASKAPI_AUTH_JWT_SECRET", "0123456789abcdef0123456789abcdef")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadRejectsInvalidLogLevel(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TASKAPI_SERVER_LOG_LEVEL", "loud")

	_, err := Load()
	require.Error(t, err)
}

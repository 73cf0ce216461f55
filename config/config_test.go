package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DB_USER", "nc_news")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "nc_news_test")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, "nc_news", cfg.DB.User)
	assert.Equal(t, 10, cfg.DB.MaxSize)
	assert.Equal(t, time.Hour, cfg.Auth.AccessTokenDuration)
	assert.Equal(t, 168*time.Hour, cfg.Auth.RefreshTokenDuration)
	assert.Equal(t, "9090", cfg.Server.Port)
}

func TestLoadConfigOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6432")
	t.Setenv("DB_POOL_SIZE", "25")
	t.Setenv("JWT_ACCESS_TOKEN_DURATION", "15m")
	t.Setenv("JWT_REFRESH_TOKEN_DURATION", "720h")
	t.Setenv("PORT", "8080")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, 6432, cfg.DB.Port)
	assert.Equal(t, 25, cfg.DB.MaxSize)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenDuration)
	assert.Equal(t, 720*time.Hour, cfg.Auth.RefreshTokenDuration)
	assert.Equal(t, "8080", cfg.Server.Port)
}

func TestLoadConfigAggregatesMissingVariables(t *testing.T) {
	// t.Setenv registers the restore; Unsetenv then removes the variable
	// for the duration of the test.
	for _, key := range []string{"DB_USER", "DB_PASSWORD", "DB_NAME", "JWT_SECRET"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_USER")
	assert.Contains(t, err.Error(), "DB_PASSWORD")
	assert.Contains(t, err.Error(), "DB_NAME")
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadConfigRejectsMalformedValues(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_PORT", "not-a-number")
	t.Setenv("JWT_ACCESS_TOKEN_DURATION", "soon")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PORT")
	assert.Contains(t, err.Error(), "JWT_ACCESS_TOKEN_DURATION")
}

func TestLoadConfigClampsPoolSize(t *testing.T) {
	setRequiredEnv(t)

	// Out-of-range sizes are clamped, never fatal.
	t.Setenv("DB_POOL_SIZE", "1")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.DB.MaxSize)

	t.Setenv("DB_POOL_SIZE", "500")
	cfg, err = LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.DB.MaxSize)
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DevelopmentDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DefaultJWTSecret, cfg.JWTSecret)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_ProductionRejectsDefaultSecret(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoad_ProductionWithRealSecret(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("JWT_SECRET", "a-real-secret-set-by-operations")

	cfg, err := Load()

	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "a-real-secret-set-by-operations", cfg.JWTSecret)
}

func TestLoad_ParsesAllowedOrigins(t *testing.T) {
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("ALLOWED_ORIGINS", "https://insightsnap.app, https://admin.insightsnap.app,")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, []string{"https://insightsnap.app", "https://admin.insightsnap.app"}, cfg.AllowedOrigins)
}

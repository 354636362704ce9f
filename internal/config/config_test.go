package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "passkit-service", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, 30*time.Second, cfg.App.RequestTimeout())
	assert.Equal(t, "default-org-id", cfg.Passes.DefaultOrganizationID)
	assert.Equal(t, "com.example.wallet", cfg.Passes.BundleID)
	assert.Equal(t, 5*time.Minute, cfg.Passes.PreviewCacheTTL())
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9999")
	t.Setenv("PASS_BUNDLE_ID", "com.acme.wallet")
	t.Setenv("PASS_PREVIEW_CACHE_TTL_SECONDS", "30")
	t.Setenv("AUTH_ACCESS_TOKEN_TTL_MINUTES", "15")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9999", cfg.App.Addr())
	assert.Equal(t, "com.acme.wallet", cfg.Passes.BundleID)
	assert.Equal(t, 30*time.Second, cfg.Passes.PreviewCacheTTL())
	assert.Equal(t, 15, cfg.Auth.AccessTokenTTLMinutes)
}

func TestLoad_InvalidRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")
	_, err := Load()
	assert.Error(t, err)
}

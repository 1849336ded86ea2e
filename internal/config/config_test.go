package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "")
	t.Setenv("SHARE_LINKS_FILE", "")
	t.Setenv("SHARE_LINK_STORE", "")
	t.Setenv("AUTH_SESSION_TTL_HOURS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data/share-links.json", cfg.ShareLinks.FilePath)
	assert.Equal(t, ShareLinkStoreFile, cfg.ShareLinks.Store)
	assert.Equal(t, 12*time.Hour, cfg.Auth.SessionTTL())
	assert.Equal(t, "admin", cfg.Auth.AdminUsername)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SHARE_LINKS_FILE", "/var/lib/studio/links.json")
	t.Setenv("SHARE_LINK_STORE", "redis")
	t.Setenv("AUTH_SESSION_TTL_HOURS", "2")
	t.Setenv("APP_PORT", "3000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/studio/links.json", cfg.ShareLinks.FilePath)
	assert.Equal(t, ShareLinkStoreRedis, cfg.ShareLinks.Store)
	assert.Equal(t, 2*time.Hour, cfg.Auth.SessionTTL())
	assert.Equal(t, "0.0.0.0:3000", cfg.App.Addr())
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Run("redis db must be numeric", func(t *testing.T) {
		t.Setenv("REDIS_DB", "one")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("unknown share link store", func(t *testing.T) {
		t.Setenv("SHARE_LINK_STORE", "s3")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("bad int falls back", func(t *testing.T) {
		t.Setenv("AUTH_LOGIN_MAX_ATTEMPTS", "many")
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 10, cfg.Auth.LoginMaxAttempts)
	})
}

func TestAuthConfig_Validate(t *testing.T) {
	assert.ErrorIs(t, AuthConfig{AdminPassword: "x"}.Validate(), ErrMissingSecret)
	assert.ErrorIs(t, AuthConfig{JWTSecret: "s"}.Validate(), ErrMissingCredentials)
	assert.NoError(t, AuthConfig{JWTSecret: "s", AdminPasswordHash: "$2a$..."}.Validate())
}

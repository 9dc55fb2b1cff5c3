package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/portfolio?sslmode=disable")
	t.Setenv("JWT_ACCESS_SECRET", "access-secret")
	t.Setenv("JWT_REFRESH_SECRET", "refresh-secret")
	t.Setenv("ADMIN_EMAIL", "admin@example.com")
	t.Setenv("ADMIN_PASSWORD", "bootstrap-password")

	// neutralize anything inherited from the host environment
	for _, key := range []string{"ACCESS_TOKEN_TTL", "REFRESH_TOKEN_TTL", "CORS_ORIGINS", "SERVER_PORT", "ENV"} {
		t.Setenv(key, "")
	}
}

func TestLoad(t *testing.T) {
	t.Run("defaults are applied", func(t *testing.T) {
		setRequiredEnv(t)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "5000", cfg.ServerPort)
		assert.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
		assert.Equal(t, 7*24*time.Hour, cfg.RefreshTokenTTL)
		assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSAllowedOrigins)
		assert.False(t, cfg.IsProduction())
	})

	t.Run("missing database url fails", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("DATABASE_URL", "")

		_, err := Load()
		assert.ErrorIs(t, err, ErrMissingDatabaseURL)
	})

	t.Run("shared token secret is rejected", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("JWT_REFRESH_SECRET", "access-secret")

		_, err := Load()
		assert.ErrorIs(t, err, ErrSharedTokenSecret)
	})

	t.Run("missing admin seed fails", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("ADMIN_PASSWORD", "")

		_, err := Load()
		assert.ErrorIs(t, err, ErrMissingAdminSeed)
	})

	t.Run("token TTLs come from seconds", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("ACCESS_TOKEN_TTL", "300")
		t.Setenv("REFRESH_TOKEN_TTL", "86400")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 5*time.Minute, cfg.AccessTokenTTL)
		assert.Equal(t, 24*time.Hour, cfg.RefreshTokenTTL)
	})

	t.Run("non-numeric TTL fails", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("ACCESS_TOKEN_TTL", "15m")

		_, err := Load()
		assert.ErrorIs(t, err, ErrInvalidTokenTTL)
	})

	t.Run("origins are split and trailing slashes trimmed", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("CORS_ORIGINS", "https://site.example/, http://localhost:3000")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, []string{"https://site.example", "http://localhost:3000"}, cfg.CORSAllowedOrigins)
	})
}

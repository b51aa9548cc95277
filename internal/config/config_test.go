package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Success loading from env", func(t *testing.T) {
		t.Setenv("APP_PORT", "9090")
		t.Setenv("APP_ENV", "production")
		t.Setenv("DB_DRIVER", "SQLITE")
		t.Setenv("DATABASE_DSN", "file::memory:")
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("TOKEN_TTL", "2h")
		t.Setenv("EVENTS_ENABLED", "false")
		t.Setenv("SEED_CATALOG", "true")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, ":9090", cfg.AppPort)
		assert.True(t, cfg.IsProduction())
		assert.Equal(t, "sqlite", cfg.DBDriver)
		assert.Equal(t, "file::memory:", cfg.DatabaseDSN)
		assert.Equal(t, "secret", cfg.JWTSecret)
		assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
		assert.False(t, cfg.EventsEnabled)
		assert.True(t, cfg.SeedCatalog)
	})

	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, ":8080", cfg.AppPort)
		assert.Equal(t, "postgres", cfg.DBDriver)
		assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
		assert.True(t, cfg.EventsEnabled)
		assert.False(t, cfg.IsProduction())
	})

	t.Run("Missing secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")

		_, err := Load()
		assert.ErrorContains(t, err, "JWT_SECRET")
	})

	t.Run("Unknown driver", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("DB_DRIVER", "mysql")

		_, err := Load()
		assert.ErrorContains(t, err, "unsupported DB_DRIVER")
	})
}

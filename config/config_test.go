package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_DRIVER", "DATABASE_URL", "DATABASE_KEY", "JWT_SECRET_KEY", "SALT_ROUND", "TOKEN_TTL_HOURS", "APP_ENV"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, DefaultJWTKey, cfg.JWTKey)
	assert.Equal(t, 10, cfg.SaltRound)
	assert.Equal(t, 30*24*time.Hour, cfg.TokenTTL)
	assert.False(t, cfg.IsProduction())
	assert.Len(t, cfg.Warnings(), 2)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("JWT_SECRET_KEY", "s3cret")
	t.Setenv("SALT_ROUND", "12")
	t.Setenv("TOKEN_TTL_HOURS", "1")
	t.Setenv("APP_ENV", "production")

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "s3cret", cfg.JWTKey)
	assert.Equal(t, 12, cfg.SaltRound)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.True(t, cfg.IsProduction())
	assert.Empty(t, cfg.Warnings())
}

func TestGetEnvInt_InvalidFallsBack(t *testing.T) {
	t.Setenv("SALT_ROUND", "ten")
	assert.Equal(t, 10, getEnvInt("SALT_ROUND", 10))
}

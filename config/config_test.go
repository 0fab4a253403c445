package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, 24, cfg.JWTExpirationHours)
	assert.Equal(t, 300, cfg.CacheTTLSeconds)
}

func TestLoad_ReadsEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("DB_MAX_OPEN_CONNS", "25")

	cfg := Load()

	assert.Equal(t, "9090", cfg.AppPort)
	assert.Equal(t, 25, cfg.DBMaxOpenConns)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("JWT_EXPIRATION_HOURS", "soon")

	cfg := Load()

	assert.Equal(t, 24, cfg.JWTExpirationHours)
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "games.json", cfg.ManifestPath)
	assert.Equal(t, 30, cfg.RetentionDays)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_LISTEN_ADDR", ":9090")
	t.Setenv("APP_RETENTION_DAYS", "7")
	t.Setenv("APP_DATABASE_URL", "postgres://localhost/gamedex")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, 7, cfg.RetentionDays)
	assert.Equal(t, "postgres://localhost/gamedex", cfg.DatabaseURL)
}

func TestLoadIgnoresBadRetention(t *testing.T) {
	t.Setenv("APP_RETENTION_DAYS", "soon")

	assert.Equal(t, 30, Load().RetentionDays)

	t.Setenv("APP_RETENTION_DAYS", "-5")
	assert.Equal(t, 30, Load().RetentionDays)
}

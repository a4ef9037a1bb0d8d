package config

import (
	"os"
	"strconv"
)

// Config holds the core runtime configuration for the service.
// Values are sourced from environment variables, with sensible
// defaults where appropriate. See .env.example.
type Config struct {
	ListenAddr string

	// DataDir is where the embedded analytics state store lives. If
	// the directory cannot be opened the service falls back to an
	// in-memory store without failing startup.
	DataDir string

	// ManifestPath points at the games manifest JSON file.
	ManifestPath string

	// AdminPassword guards the analytics summary and reset endpoints.
	AdminPassword string

	// DatabaseURL enables the Postgres event archive when set.
	DatabaseURL string

	// RetentionDays is how long archived events are kept before the
	// retention worker deletes them. Applies to the archive only; the
	// in-memory analytics state has its own fixed 7-day window.
	RetentionDays int

	LogLevel string
}

// Load reads configuration from environment variables and applies defaults.
func Load() *Config {
	cfg := &Config{
		ListenAddr:    getenv("APP_LISTEN_ADDR", ":8080"),
		DataDir:       getenv("APP_DATA_DIR", "data"),
		ManifestPath:  getenv("APP_MANIFEST_PATH", "games.json"),
		AdminPassword: getenv("APP_ADMIN_PASSWORD", "changeme"),
		DatabaseURL:   os.Getenv("APP_DATABASE_URL"),
		RetentionDays: 30,
		LogLevel:      getenv("APP_LOG_LEVEL", "info"),
	}

	if v := os.Getenv("APP_RETENTION_DAYS"); v != "" {
		if days, err := strconv.Atoi(v); err == nil && days > 0 {
			cfg.RetentionDays = days
		}
	}

	return cfg
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

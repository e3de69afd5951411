package config

import (
	"os"
)

const (
	defaultDatabasePath = "notes.db"
	defaultPort         = "3000"
)

type Config struct {
	DatabasePath string
	Port         string
}

// Load reads the configuration from the environment, falling back to
// local-development defaults.
func Load() *Config {
	return &Config{
		DatabasePath: envOr("DATABASE_PATH", defaultDatabasePath),
		Port:         envOr("PORT", defaultPort),
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// Package config reads server settings from the environment, with a .env
// file loaded first when one exists.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the server settings. Every field has a working default; the
// server runs with no configuration at all.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string

	// DBPath is the SQLite database path for the default local backend.
	DBPath string

	// PostgresDSN, when set, selects the Postgres key-value backend instead
	// of the local SQLite file.
	PostgresDSN string

	// LogPath, when set, mirrors all log output to a file.
	LogPath string
}

// Load reads the configuration from the environment. A missing .env file is
// not an error.
func Load() Config {
	godotenv.Load()

	return Config{
		Addr:        getenv("KRINA_ADDR", ":8080"),
		DBPath:      getenv("KRINA_DB", "krina.sqlite3"),
		PostgresDSN: os.Getenv("KRINA_POSTGRES_DSN"),
		LogPath:     os.Getenv("KRINA_LOG"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

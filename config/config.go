// Package config loads process configuration from the environment, with an
// optional .env file.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the composition root needs to wire the store.
type Config struct {
	// DBPath is the SQLite file backing the key-value store. ":memory:"
	// selects a throwaway database.
	DBPath string
}

// Load reads .env if present, then the environment. Missing values fall
// back to defaults.
func Load() Config {
	_ = godotenv.Load()

	dbPath := os.Getenv("STOREFRONT_DB")
	if dbPath == "" {
		dbPath = "storefront.db"
	}
	return Config{DBPath: dbPath}
}

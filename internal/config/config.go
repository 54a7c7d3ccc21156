package config

import (
	"fmt"
	"os"
	"strings"
)

type Config struct {
	// Persistence backend
	Backend      string
	SQLiteDBPath string
	KVFilePath   string

	// Logging
	LogLevel string
}

func Load() *Config {
	return &Config{
		Backend:      getEnv("FINTRACK_BACKEND", "sqlite"),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/fintrack.db"),
		KVFilePath:   getEnv("KV_FILE_PATH", "./data/fintrack.kv"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errs []string

	validBackends := []string{"memory", "sqlite", "file"}
	isValidBackend := false
	for _, backend := range validBackends {
		if c.Backend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errs = append(errs, fmt.Sprintf("invalid backend '%s': must be one of %s",
			c.Backend, strings.Join(validBackends, ", ")))
	}

	if c.Backend == "sqlite" && c.SQLiteDBPath == "" {
		errs = append(errs, "SQLITE_DB_PATH is required for the sqlite backend")
	}
	if c.Backend == "file" && c.KVFilePath == "" {
		errs = append(errs, "KV_FILE_PATH is required for the file backend")
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

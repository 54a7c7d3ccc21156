// Package cli provides CLI initialization utilities and the interactive
// terminal session that drives the expense store.
package cli

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"fintrack/internal/backend"
	"fintrack/internal/config"
	applog "fintrack/internal/log"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// SetupLogger initializes structured logging at the configured level and
// sets the default logger.
func SetupLogger(level string) *applog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	logger := applog.New(applog.Config{Level: lvl, Component: applog.ComponentApp})
	applog.SetDefault(logger)
	return logger
}

// InitBackend constructs the configured kv backend.
// Returns the result or exits the process on failure.
func InitBackend(logger *applog.Logger, cfg *config.Config) *backend.Result {
	result, err := backend.NewFactory(logger).Create(cfg)
	if err != nil {
		logger.Error("Failed to initialize backend",
			applog.FieldError, err,
			applog.FieldBackend, cfg.Backend)
		os.Exit(1)
	}
	return result
}

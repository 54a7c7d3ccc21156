package main

import (
	"context"
	"os"

	"fintrack/internal/cli"
	"fintrack/internal/config"
	applog "fintrack/internal/log"
	"fintrack/internal/store"
)

func main() {
	cli.LoadEnvFile()

	cfg := config.Load()
	logger := cli.SetupLogger(cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", applog.FieldError, err)
		os.Exit(1)
	}

	ctx := context.Background()

	result := cli.InitBackend(logger, cfg)
	defer func() {
		if result.Cleanup != nil {
			if err := result.Cleanup(); err != nil {
				logger.Error("Backend cleanup failed", applog.FieldError, err)
			}
		}
	}()

	expenses := store.New(result.KV, logger)
	expenses.Load(ctx)

	cli.NewSession(expenses).Run(ctx)
}

package backend

import (
	"fmt"

	"fintrack/internal/config"
	"fintrack/internal/kv"
	applog "fintrack/internal/log"
)

// Factory creates kv backends from configuration.
type Factory struct {
	logger *applog.Logger
}

func NewFactory(logger *applog.Logger) *Factory {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	return &Factory{logger: logger.WithComponent(applog.ComponentBackend)}
}

// Create constructs the backend named by the configuration.
func (f *Factory) Create(cfg *config.Config) (*Result, error) {
	t := Type(cfg.Backend)
	if !t.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", cfg.Backend)
	}

	switch t {
	case SQLiteBackend:
		store, err := kv.NewSQLite(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite backend: %w", err)
		}
		f.logger.Info("Initialized SQLite backend", applog.FieldPath, cfg.SQLiteDBPath)
		return &Result{KV: store, Cleanup: store.Close}, nil

	case FileBackend:
		store, err := kv.NewFile(cfg.KVFilePath)
		if err != nil {
			return nil, fmt.Errorf("initialize file backend: %w", err)
		}
		f.logger.Info("Initialized file backend", applog.FieldPath, cfg.KVFilePath)
		return &Result{KV: store, Cleanup: store.Close}, nil

	default:
		f.logger.Info("Initialized memory backend")
		return &Result{KV: kv.NewMemory()}, nil
	}
}

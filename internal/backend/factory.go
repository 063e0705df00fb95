// Package backend constructs the configured store. The factory is the single
// place where a connection is opened; callers own the returned cleanup and
// must run it on every exit path.
package backend

import (
	"context"
	"fmt"
	"log/slog"

	"expensetracker/internal/config"
	"expensetracker/internal/storage"
)

// Result holds an open store and its cleanup function.
type Result struct {
	Store   storage.Store
	Cleanup func() error
}

// Open creates the store selected by cfg.Backend.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Result, error) {
	switch cfg.Backend {
	case "postgres":
		store, err := storage.NewPostgresStore(ctx, cfg.DSN())
		if err != nil {
			return nil, fmt.Errorf("initialize postgres store: %w", err)
		}
		logger.Debug("Initialized postgres backend", "host", cfg.PGHost, "database", cfg.PGDatabase)
		return &Result{Store: store, Cleanup: store.Close}, nil

	case "sqlite":
		store, err := storage.NewSQLiteStore(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite store: %w", err)
		}
		logger.Debug("Initialized sqlite backend", "db_path", cfg.SQLiteDBPath)
		return &Result{Store: store, Cleanup: store.Close}, nil

	case "memory":
		store := storage.NewMemoryStore()
		logger.Debug("Initialized memory backend")
		return &Result{Store: store, Cleanup: store.Close}, nil

	default:
		return nil, fmt.Errorf("unsupported backend type: %s", cfg.Backend)
	}
}

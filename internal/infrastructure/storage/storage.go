package storage

import (
	"context"
	"fmt"

	"employees/internal/config"
	"employees/internal/domain/employee"
	"employees/internal/infrastructure/storage/postgres"
	"employees/internal/infrastructure/storage/sqlite"

	"golang.org/x/exp/slog"
)

// Storage is a schema-ready backend, opened once at start-up and shared by
// every request.
type Storage interface {
	Employees() employee.Repository
	Ping(ctx context.Context) error
	Close() error
}

// Open connects to the backend selected by cfg.DB.Driver.
func Open(ctx context.Context, cfg *config.Config, log *slog.Logger) (Storage, error) {
	log = log.With("component", "storage", "driver", cfg.DB.Driver)

	var (
		s   Storage
		err error
	)
	switch cfg.DB.Driver {
	case config.DriverPostgres:
		s, err = postgres.New(ctx, cfg.DB.DatabaseURI, log)
	case config.DriverSQLite:
		s, err = sqlite.New(cfg.DB.DatabaseURI, log)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DB.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s storage: %w", cfg.DB.Driver, err)
	}

	log.Info("storage ready")
	return s, nil
}

package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"employees/internal/domain/employee"
	"employees/internal/infrastructure/migration"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/exp/slog"
)

type Storage struct {
	db        *sql.DB
	employees *EmployeeRepository
}

// New opens (creating if needed) the database file at path and applies the
// embedded schema.
func New(path string, log *slog.Logger) (*Storage, error) {
	mg := migration.NewMigration("sqlite3://"+path, migration.EmbeddedEngine("sqlite"))
	if err := mg.Up(); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// sqlite has a single writer; one connection keeps statements from
	// tripping over each other's locks.
	db.SetMaxOpenConns(1)

	return &Storage{
		db:        db,
		employees: NewEmployeeRepository(db, log),
	}, nil
}

func (s *Storage) Employees() employee.Repository {
	return s.employees
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) DB() *sql.DB {
	return s.db
}

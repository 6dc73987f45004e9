package postgres

import (
	"context"
	"fmt"

	"employees/internal/domain/employee"
	"employees/internal/infrastructure/migration"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"
)

type Storage struct {
	pool      *pgxpool.Pool
	employees *EmployeeRepository
}

// New opens a connection pool for databaseURI and brings the schema up to
// date before returning.
func New(ctx context.Context, databaseURI string, log *slog.Logger) (*Storage, error) {
	pool, err := pgxpool.New(ctx, databaseURI)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	mg := migration.NewMigration(databaseURI, migration.EmbeddedEngine("postgres"))
	if err := mg.Up(); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return &Storage{
		pool:      pool,
		employees: NewEmployeeRepository(pool, log),
	}, nil
}

func (s *Storage) Employees() employee.Repository {
	return s.employees
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Storage) Close() error {
	s.pool.Close()
	return nil
}

func (s *Storage) Pool() *pgxpool.Pool {
	return s.pool
}

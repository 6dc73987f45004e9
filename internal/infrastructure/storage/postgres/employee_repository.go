package postgres

import (
	"context"
	"errors"
	"fmt"

	"employees/internal/domain/employee"
	"employees/internal/infrastructure/storage/query"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"
)

type EmployeeRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewEmployeeRepository(pool *pgxpool.Pool, log *slog.Logger) *EmployeeRepository {
	return &EmployeeRepository{
		pool: pool,
		log:  log.With("component", "employee_repository"),
	}
}

func (r *EmployeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	const q = `SELECT ` + query.EmployeeSelect + ` FROM ` + query.EmployeesTable

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.log.Error("failed to list employees", "error", err)
		return nil, classify("list employees", err)
	}

	employees, err := pgx.CollectRows(rows, scanEmployee)
	if err != nil {
		return nil, classify("scan employees", err)
	}
	return employees, nil
}

func (r *EmployeeRepository) Get(ctx context.Context, id int32) (employee.Employee, error) {
	const q = `SELECT ` + query.EmployeeSelect + ` FROM ` + query.EmployeesTable + ` WHERE id = $1`

	rows, err := r.pool.Query(ctx, q, id)
	if err != nil {
		return employee.Employee{}, classify("get employee", err)
	}

	e, err := pgx.CollectExactlyOneRow(rows, scanEmployee)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, fmt.Errorf("%w: id %d", employee.ErrNotFound, id)
		}
		r.log.Error("failed to get employee", "id", id, "error", err)
		return employee.Employee{}, classify("get employee", err)
	}
	return e, nil
}

func (r *EmployeeRepository) Insert(ctx context.Context, p employee.Patch) (int32, error) {
	q, args := query.Postgres.Insert(query.EmployeesTable, query.EmployeeColumns(p), query.EmployeeKey)

	var id int32
	if err := r.pool.QueryRow(ctx, q, args...).Scan(&id); err != nil {
		return 0, classify("insert employee", err)
	}
	return id, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, id int32, p employee.Patch) (int64, error) {
	q, args, err := query.Postgres.Update(query.EmployeesTable, query.EmployeeColumns(p), query.EmployeeKey, id)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", employee.ErrValidation, err)
	}

	tag, err := r.pool.Exec(ctx, q, args...)
	if err != nil {
		return 0, classify("update employee", err)
	}
	return tag.RowsAffected(), nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id int32) (int64, error) {
	const q = `DELETE FROM ` + query.EmployeesTable + ` WHERE id = $1`

	tag, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		r.log.Error("failed to delete employee", "id", id, "error", err)
		return 0, classify("delete employee", err)
	}
	return tag.RowsAffected(), nil
}

func scanEmployee(row pgx.CollectableRow) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(&e.ID, &e.FName, &e.LName, &e.Age, &e.Title)
	return e, err
}

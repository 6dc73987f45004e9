package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"employees/internal/domain/employee"
	"employees/internal/infrastructure/storage/query"

	"github.com/mattn/go-sqlite3"
	"golang.org/x/exp/slog"
)

type EmployeeRepository struct {
	db  *sql.DB
	log *slog.Logger
}

func NewEmployeeRepository(db *sql.DB, log *slog.Logger) *EmployeeRepository {
	return &EmployeeRepository{
		db:  db,
		log: log.With("component", "employee_repository"),
	}
}

func (r *EmployeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	const q = `SELECT ` + query.EmployeeSelect + ` FROM ` + query.EmployeesTable

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		r.log.Error("failed to list employees", "error", err)
		return nil, classify("list employees", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, classify("scan employee", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list employees", err)
	}
	return employees, nil
}

func (r *EmployeeRepository) Get(ctx context.Context, id int32) (employee.Employee, error) {
	const q = `SELECT ` + query.EmployeeSelect + ` FROM ` + query.EmployeesTable + ` WHERE id = ?`

	e, err := scanEmployee(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return employee.Employee{}, fmt.Errorf("%w: id %d", employee.ErrNotFound, id)
		}
		r.log.Error("failed to get employee", "id", id, "error", err)
		return employee.Employee{}, classify("get employee", err)
	}
	return e, nil
}

func (r *EmployeeRepository) Insert(ctx context.Context, p employee.Patch) (int32, error) {
	q, args := query.SQLite.Insert(query.EmployeesTable, query.EmployeeColumns(p), "")

	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return 0, classify("insert employee", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, classify("insert employee", err)
	}
	return int32(id), nil
}

func (r *EmployeeRepository) Update(ctx context.Context, id int32, p employee.Patch) (int64, error) {
	q, args, err := query.SQLite.Update(query.EmployeesTable, query.EmployeeColumns(p), query.EmployeeKey, id)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", employee.ErrValidation, err)
	}

	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return 0, classify("update employee", err)
	}
	return res.RowsAffected()
}

func (r *EmployeeRepository) Delete(ctx context.Context, id int32) (int64, error) {
	const q = `DELETE FROM ` + query.EmployeesTable + ` WHERE id = ?`

	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		r.log.Error("failed to delete employee", "id", id, "error", err)
		return 0, classify("delete employee", err)
	}
	return res.RowsAffected()
}

func scanEmployee(row interface {
	Scan(dest ...any) error
}) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(&e.ID, &e.FName, &e.LName, &e.Age, &e.Title)
	return e, err
}

func classify(op string, err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintNotNull {
		return fmt.Errorf("%w: %s", employee.ErrValidation, sqliteErr.Error())
	}
	return fmt.Errorf("%w: %s: %v", employee.ErrPersistence, op, err)
}

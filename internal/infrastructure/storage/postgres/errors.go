package postgres

import (
	"errors"
	"fmt"
	"strings"

	"employees/internal/domain/employee"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeNotNullViolation = "23502"
	classDataException   = "22"
)

// classify maps a pgx error onto the employee error taxonomy, keeping the
// backend message for the client.
func classify(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == codeNotNullViolation || strings.HasPrefix(pgErr.Code, classDataException) {
			return fmt.Errorf("%w: %s", employee.ErrValidation, pgErr.Message)
		}
		return fmt.Errorf("%w: %s: %s", employee.ErrPersistence, op, pgErr.Message)
	}
	return fmt.Errorf("%w: %s: %v", employee.ErrPersistence, op, err)
}

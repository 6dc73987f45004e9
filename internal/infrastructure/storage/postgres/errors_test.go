package postgres

import (
	"errors"
	"fmt"
	"testing"

	"employees/internal/domain/employee"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		want    error
		message string
	}{
		{
			name:    "not null violation",
			err:     &pgconn.PgError{Code: "23502", Message: `null value in column "title" violates not-null constraint`},
			want:    employee.ErrValidation,
			message: `null value in column "title"`,
		},
		{
			name:    "data exception",
			err:     fmt.Errorf("exec: %w", &pgconn.PgError{Code: "22003", Message: "integer out of range"}),
			want:    employee.ErrValidation,
			message: "integer out of range",
		},
		{
			name:    "other constraint",
			err:     &pgconn.PgError{Code: "23505", Message: "duplicate key value"},
			want:    employee.ErrPersistence,
			message: "insert employee: duplicate key value",
		},
		{
			name:    "connectivity",
			err:     errors.New("dial tcp: connection refused"),
			want:    employee.ErrPersistence,
			message: "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify("insert employee", tt.err)
			assert.ErrorIs(t, got, tt.want)
			assert.Contains(t, got.Error(), tt.message)
		})
	}
}

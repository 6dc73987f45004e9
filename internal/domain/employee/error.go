package employee

import (
	"errors"
)

var (
	// ErrNotFound is returned when no row matches the requested identifier.
	ErrNotFound = errors.New("employee not found")

	// ErrValidation is returned for incomplete or malformed input, including
	// NOT NULL violations reported by the backend.
	ErrValidation = errors.New("invalid employee data")

	// ErrPersistence covers connectivity, constraint and unexpected query failures.
	ErrPersistence = errors.New("employee storage failure")
)

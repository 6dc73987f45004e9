// Package query builds parameterized INSERT and UPDATE statements whose
// column list depends on which fields a caller supplied.
package query

import (
	"errors"
	"strconv"
	"strings"
)

// ErrNoColumns is returned by Update when there is nothing to set.
var ErrNoColumns = errors.New("no fields to update")

// Column is one column assignment. Name must come from a fixed mapping,
// never from client input; Value is always bound as a parameter.
type Column struct {
	Name  string
	Value any
}

// Dialect renders bind placeholders for a backend.
type Dialect struct {
	placeholder func(n int) string
}

var (
	Postgres = Dialect{placeholder: func(n int) string { return "$" + strconv.Itoa(n) }}
	SQLite   = Dialect{placeholder: func(int) string { return "?" }}
)

// Insert renders INSERT INTO table (...) VALUES (...). With no columns it
// falls back to DEFAULT VALUES so the backend enforces its NOT NULL rules.
// A non-empty returning clause is appended as RETURNING <returning>.
func (d Dialect) Insert(table string, cols []Column, returning string) (string, []any) {
	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(table)

	args := make([]any, 0, len(cols))
	if len(cols) == 0 {
		b.WriteString(" DEFAULT VALUES")
	} else {
		names := make([]string, 0, len(cols))
		marks := make([]string, 0, len(cols))
		for i, c := range cols {
			names = append(names, c.Name)
			marks = append(marks, d.placeholder(i+1))
			args = append(args, c.Value)
		}
		b.WriteString(" (")
		b.WriteString(strings.Join(names, ", "))
		b.WriteString(") VALUES (")
		b.WriteString(strings.Join(marks, ", "))
		b.WriteString(")")
	}

	if returning != "" {
		b.WriteString(" RETURNING ")
		b.WriteString(returning)
	}
	return b.String(), args
}

// Update renders UPDATE table SET ... WHERE key = <id>.
func (d Dialect) Update(table string, cols []Column, key string, id any) (string, []any, error) {
	if len(cols) == 0 {
		return "", nil, ErrNoColumns
	}

	sets := make([]string, 0, len(cols))
	args := make([]any, 0, len(cols)+1)
	argIndex := 1
	for _, c := range cols {
		sets = append(sets, c.Name+" = "+d.placeholder(argIndex))
		args = append(args, c.Value)
		argIndex++
	}
	args = append(args, id)

	query := "UPDATE " + table + " SET " + strings.Join(sets, ", ") +
		" WHERE " + key + " = " + d.placeholder(argIndex)
	return query, args, nil
}

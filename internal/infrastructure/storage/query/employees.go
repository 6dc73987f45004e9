package query

import "employees/internal/domain/employee"

const (
	EmployeesTable = "employees"
	EmployeeKey    = "id"
	// EmployeeSelect lists columns in employee.Employee field order.
	EmployeeSelect = "id, fname, lname, age, title"
)

// EmployeeColumns maps the present fields of p onto their columns. The
// identifier is never part of the result.
func EmployeeColumns(p employee.Patch) []Column {
	cols := make([]Column, 0, 4)
	if p.FName != nil {
		cols = append(cols, Column{Name: "fname", Value: *p.FName})
	}
	if p.LName != nil {
		cols = append(cols, Column{Name: "lname", Value: *p.LName})
	}
	if p.Age != nil {
		cols = append(cols, Column{Name: "age", Value: *p.Age})
	}
	if p.Title != nil {
		cols = append(cols, Column{Name: "title", Value: *p.Title})
	}
	return cols
}

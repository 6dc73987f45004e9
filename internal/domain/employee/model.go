package employee

// Employee is a fully populated row of the employees table.
type Employee struct {
	ID    int32  `json:"id"`
	FName string `json:"fname"`
	LName string `json:"lname"`
	Age   int32  `json:"age"`
	Title string `json:"title"`
}

// List is the wire envelope for a collection of employees.
type List struct {
	Results []Employee `json:"results"`
}

// Patch is a client change set. A nil field is absent and never touches
// the stored column.
type Patch struct {
	ID    *int32
	FName *string
	LName *string
	Age   *int32
	Title *string
}

// Empty reports whether no writable field is present. ID is not writable.
func (p Patch) Empty() bool {
	return p.FName == nil && p.LName == nil && p.Age == nil && p.Title == nil
}

// Apply returns e with the present fields of p written over it.
func (p Patch) Apply(e Employee) Employee {
	if p.FName != nil {
		e.FName = *p.FName
	}
	if p.LName != nil {
		e.LName = *p.LName
	}
	if p.Age != nil {
		e.Age = *p.Age
	}
	if p.Title != nil {
		e.Title = *p.Title
	}
	return e
}

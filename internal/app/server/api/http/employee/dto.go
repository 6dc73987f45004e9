package employee

import "employees/internal/domain/employee"

type listOutput struct {
	Body employee.List
}

type idInput struct {
	ID int32 `path:"id" example:"1" doc:"Employee identifier"`
}

// findOutput carries raw JSON so a miss can answer 404 with no body at all.
type findOutput struct {
	Status      int
	ContentType string `header:"Content-Type"`
	Body        []byte
}

type createInput struct {
	Body request
}

type createOutput struct {
	Location string `header:"Location" doc:"URL of the created employee"`
}

type updateInput struct {
	ID   int32 `path:"id" example:"1" doc:"Employee identifier; wins over any id in the body"`
	Body request
}

type updateOutput struct{}

type deleteOutput struct {
	Status int
}

// request is the wire form of employee.Patch. Every field may be omitted
// and unknown keys are ignored.
type request struct {
	_     struct{} `json:"-" additionalProperties:"true"`
	ID    *int32   `json:"id,omitempty" doc:"Ignored, identifiers are assigned by the server"`
	FName *string  `json:"fname,omitempty" example:"Ada" doc:"First name"`
	LName *string  `json:"lname,omitempty" example:"Lovelace" doc:"Last name"`
	Age   *int32   `json:"age,omitempty" example:"36" doc:"Age in years"`
	Title *string  `json:"title,omitempty" example:"Engineer" doc:"Job title"`
}

func (r request) patch() employee.Patch {
	return employee.Patch{
		ID:    r.ID,
		FName: r.FName,
		LName: r.LName,
		Age:   r.Age,
		Title: r.Title,
	}
}

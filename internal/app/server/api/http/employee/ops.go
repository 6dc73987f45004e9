package employee

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

const basePath = "/employees"

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID:   "employees-list",
		Method:        http.MethodGet,
		Path:          basePath,
		Summary:       "List employees",
		Tags:          []string{"employees"},
		DefaultStatus: http.StatusOK,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID:   "employees-find",
		Method:        http.MethodGet,
		Path:          basePath + "/{id}",
		Summary:       "Get an employee",
		Description:   "Answers 404 with an empty body when the employee does not exist.",
		Tags:          []string{"employees"},
		DefaultStatus: http.StatusOK,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "employees-create",
		Method:        http.MethodPut,
		Path:          basePath,
		Summary:       "Create an employee",
		Description:   "All of fname, lname, age and title are required; a submitted id is ignored.",
		Tags:          []string{"employees"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusBadRequest},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID:   "employees-update",
		Method:        http.MethodPost,
		Path:          basePath + "/{id}",
		Summary:       "Update an employee",
		Description:   "Writes only the fields present in the body. Succeeds with 204 even when no employee has the id.",
		Tags:          []string{"employees"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusBadRequest},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "employees-delete",
		Method:        http.MethodDelete,
		Path:          basePath + "/{id}",
		Summary:       "Delete an employee",
		Tags:          []string{"employees"},
		DefaultStatus: http.StatusNoContent,
		Middlewares:   h.middleware,
	}
}

// Package apierror is the flat JSON error model of the API: 404 answers
// carry {"message": "not found"}, every other failure {"error": "..."}.
package apierror

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

const notFoundMessage = "not found"

type Error struct {
	status  int
	Message string `json:"message,omitempty"`
	Err     string `json:"error,omitempty"`
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err
}

func (e *Error) GetStatus() int {
	return e.status
}

// New has the signature of huma.NewError and replaces it. Path parameters
// that fail to parse mean the route did not match, so they become 404.
// Schema validation failures on the body are client errors and become 400.
func New(status int, msg string, errs ...error) huma.StatusError {
	if badPathParam(errs) {
		status = http.StatusNotFound
	} else if status == http.StatusUnprocessableEntity {
		status = http.StatusBadRequest
	}

	if status == http.StatusNotFound {
		return &Error{status: status, Message: notFoundMessage}
	}

	details := make([]string, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			details = append(details, err.Error())
		}
	}
	if len(details) > 0 {
		msg = msg + ": " + strings.Join(details, "; ")
	}
	return &Error{status: status, Err: msg}
}

func BadRequest(err error) huma.StatusError {
	return &Error{status: http.StatusBadRequest, Err: err.Error()}
}

// Internal hides the cause from the client; callers log it.
func Internal() huma.StatusError {
	return &Error{status: http.StatusInternalServerError, Err: http.StatusText(http.StatusInternalServerError)}
}

func ServiceUnavailable(msg string) huma.StatusError {
	return &Error{status: http.StatusServiceUnavailable, Err: msg}
}

// NotFound answers routes and methods nothing is registered for.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	_ = json.NewEncoder(w).Encode(&Error{Message: notFoundMessage})
}

func badPathParam(errs []error) bool {
	for _, err := range errs {
		var detail *huma.ErrorDetail
		if errors.As(err, &detail) && strings.HasPrefix(detail.Location, "path.") {
			return true
		}
	}
	return false
}

package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrInvalidCredentials indicates a failed login attempt.
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid username or password"
}

// ErrRunNotFound indicates the requested run does not exist.
type ErrRunNotFound struct {
	RunID uuid.UUID
}

func (e *ErrRunNotFound) Error() string {
	return fmt.Sprintf("run not found: %s", e.RunID)
}

// ErrArtifactNotFound indicates the run exists but the requested artifact
// was never produced or persisted.
type ErrArtifactNotFound struct {
	RunID uuid.UUID
	Step  string
}

func (e *ErrArtifactNotFound) Error() string {
	return fmt.Sprintf("artifact %s not found for run %s", e.Step, e.RunID)
}

// ErrValidation indicates a malformed request.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus maps an error to a response status code.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrInvalidCredentials:
		return http.StatusUnauthorized
	case *ErrRunNotFound, *ErrArtifactNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

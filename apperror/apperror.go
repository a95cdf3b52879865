package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrValidation  = errors.New("validation error")
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrConsistency = errors.New("consistency error")
)

type AppError struct {
	Err     error  // sentinel category
	Message string // human-readable message
	Field   string // optional: field causing the error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func Validation(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

func NotFound(resource string, id any) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %v", resource, id),
	}
}

func Conflict(resource, detail string) *AppError {
	return &AppError{
		Err:     ErrConflict,
		Message: fmt.Sprintf("%s conflict: %s", resource, detail),
	}
}

// Consistency marks a failed summary recompute. The food log mutation
// that triggered it must be rolled back together with the recompute.
func Consistency(detail string, cause error) *AppError {
	return &AppError{
		Err:     ErrConsistency,
		Message: fmt.Sprintf("daily summary recompute failed: %s: %v", detail, cause),
	}
}

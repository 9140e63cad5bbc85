package errors

import (
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
)

// Common error types that can be used across the application
var (
	ErrNotFound         = newError(ErrCodeNotFound, "resource not found")
	ErrAlreadyExists    = newError(ErrCodeAlreadyExists, "resource already exists")
	ErrValidation       = newError(ErrCodeValidation, "validation error")
	ErrInvalidOperation = newError(ErrCodeInvalidOperation, "invalid operation")
	ErrSystem           = newError(ErrCodeSystemError, "system error")

	// ErrPlayNotFound marks a performance that references a play id absent
	// from the catalog. Statement construction aborts on the first occurrence.
	ErrPlayNotFound = newError(ErrCodePlayNotFound, "play not found in catalog")
	// ErrUnknownGenre marks a play whose genre has no registered
	// pricing calculator. Same abort semantics as ErrPlayNotFound.
	ErrUnknownGenre = newError(ErrCodeUnknownGenre, "no pricing rule for genre")

	// maps errors to http status codes
	statusCodeMap = map[error]int{
		ErrNotFound:         http.StatusNotFound,
		ErrAlreadyExists:    http.StatusConflict,
		ErrValidation:       http.StatusBadRequest,
		ErrInvalidOperation: http.StatusBadRequest,
		ErrSystem:           http.StatusInternalServerError,
		ErrPlayNotFound:     http.StatusNotFound,
		ErrUnknownGenre:     http.StatusUnprocessableEntity,
	}
)

const (
	ErrCodeSystemError      = "system_error"
	ErrCodeNotFound         = "not_found"
	ErrCodeAlreadyExists    = "already_exists"
	ErrCodeValidation       = "validation_error"
	ErrCodeInvalidOperation = "invalid_operation"
	ErrCodePlayNotFound     = "play_not_found"
	ErrCodeUnknownGenre     = "unknown_genre"
)

// InternalError represents a domain error
type InternalError struct {
	Code    string // Machine-readable error code
	Message string // Human-readable error message
	Err     error  // Underlying error
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return e.DisplayError()
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Err.Error())
}

func (e *InternalError) DisplayError() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// Is implements error matching for wrapped errors
func (e *InternalError) Is(target error) bool {
	if target == nil {
		return false
	}

	t, ok := target.(*InternalError)
	if !ok {
		return errors.Is(e.Err, target)
	}

	return e.Code == t.Code
}

func newError(code string, message string) *InternalError {
	return &InternalError{
		Code:    code,
		Message: message,
	}
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsInvalidOperation checks if an error is an invalid operation error
func IsInvalidOperation(err error) bool {
	return errors.Is(err, ErrInvalidOperation)
}

// IsPlayNotFound checks if an error is an unknown play id error
func IsPlayNotFound(err error) bool {
	return errors.Is(err, ErrPlayNotFound)
}

// IsUnknownGenre checks if an error is an unknown genre error
func IsUnknownGenre(err error) bool {
	return errors.Is(err, ErrUnknownGenre)
}

func HTTPStatusFromErr(err error) int {
	for e, status := range statusCodeMap {
		if errors.Is(err, e) {
			return status
		}
	}
	return http.StatusInternalServerError
}

package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInternal indicates a store or connectivity failure.
var ErrInternal = errors.New("internal error")

// AppError is an error carrying the HTTP status it should surface as and,
// for validation failures, the offending request field.
type AppError struct {
	Code    int
	Message string
	Field   string
	Err     error
}

// NewAppError creates an AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewValidationError reports a malformed or missing request field.
func NewValidationError(field, message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Field: field}
}

// NewNotFoundError reports that no row matched an id-scoped operation.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match an AppError against the sentinel for its status class.
func (e *AppError) Is(target error) bool {
	switch target {
	case ErrValidation:
		return e.Code == http.StatusBadRequest
	case ErrNotFound:
		return e.Code == http.StatusNotFound
	case ErrInternal:
		return e.Code >= http.StatusInternalServerError
	}
	return false
}

// FieldOf returns the request field attached to err, if any.
func FieldOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Field
	}
	return ""
}

// MessageOf returns the client-facing message of err without the wrapped cause
// for validation and not-found errors.
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Code < http.StatusInternalServerError {
		return appErr.Message
	}
	return err.Error()
}

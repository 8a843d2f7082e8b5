// Package apperr defines the typed errors services return so HTTP handlers
// can map them to status codes without inspecting error strings.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error carries a cause, the HTTP status it maps to and, for field-level
// failures such as unique-constraint violations, the offending field.
type Error struct {
	Err            error
	HTTPStatusCode int
	Field          string
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation builds a 400 error.
func Validation(format string, args ...interface{}) *Error {
	return &Error{
		Err:            fmt.Errorf(format, args...),
		HTTPStatusCode: http.StatusBadRequest,
	}
}

// NotFound builds a 404 error.
func NotFound(format string, args ...interface{}) *Error {
	return &Error{
		Err:            fmt.Errorf(format, args...),
		HTTPStatusCode: http.StatusNotFound,
	}
}

// Duplicate builds a 409 error naming the conflicting field.
func Duplicate(field, format string, args ...interface{}) *Error {
	return &Error{
		Err:            fmt.Errorf(format, args...),
		HTTPStatusCode: http.StatusConflict,
		Field:          field,
	}
}

// From extracts the typed error from err's chain, or nil.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsValidation reports whether err maps to 400.
func IsValidation(err error) bool {
	appErr := From(err)
	return appErr != nil && appErr.HTTPStatusCode == http.StatusBadRequest
}

// IsNotFound reports whether err maps to 404.
func IsNotFound(err error) bool {
	appErr := From(err)
	return appErr != nil && appErr.HTTPStatusCode == http.StatusNotFound
}

// IsDuplicate reports whether err maps to 409.
func IsDuplicate(err error) bool {
	appErr := From(err)
	return appErr != nil && appErr.HTTPStatusCode == http.StatusConflict
}

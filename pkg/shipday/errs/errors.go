// Package errs defines the two error kinds surfaced by the Shipday client:
// local validation failures and errors reported by the API.
package errs

import (
	"errors"
	"fmt"
)

// Kind classifies a validation failure.
type Kind string

const (
	KindTypeMismatch         Kind = "type_mismatch"
	KindRangeViolation       Kind = "range_violation"
	KindCrossFieldViolation  Kind = "cross_field_violation"
	KindMissingRequiredField Kind = "missing_required_field"
)

// Sentinel errors for matching with errors.Is.
var (
	// ErrValidation matches every *ValidationError.
	ErrValidation = errors.New("validation failed")

	// ErrAPI matches every *APIError.
	ErrAPI = errors.New("shipday api error")

	// ErrServiceNotAvailable indicates an on-demand service is not currently active.
	ErrServiceNotAvailable = errors.New("service not available")

	// ErrInvalidAPIKey indicates the configured API key is malformed.
	ErrInvalidAPIKey = errors.New("invalid api key")
)

// ValidationError is raised locally, before any request is issued.
type ValidationError struct {
	Kind    Kind
	Field   string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is ErrValidation or a ValidationError of the same kind.
func (e *ValidationError) Is(target error) bool {
	if target == ErrValidation {
		return true
	}
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// NewValidationError creates a new ValidationError.
func NewValidationError(kind Kind, field, message string) *ValidationError {
	return &ValidationError{
		Kind:    kind,
		Field:   field,
		Message: message,
	}
}

// WithCause adds a cause to the error.
func (e *ValidationError) WithCause(err error) *ValidationError {
	e.Cause = err
	return e
}

// TypeMismatch creates a ValidationError of kind KindTypeMismatch.
func TypeMismatch(field, message string) *ValidationError {
	return NewValidationError(KindTypeMismatch, field, message)
}

// RangeViolation creates a ValidationError of kind KindRangeViolation.
func RangeViolation(field, message string) *ValidationError {
	return NewValidationError(KindRangeViolation, field, message)
}

// CrossFieldViolation creates a ValidationError of kind KindCrossFieldViolation.
func CrossFieldViolation(field, message string) *ValidationError {
	return NewValidationError(KindCrossFieldViolation, field, message)
}

// MissingRequiredField creates a ValidationError of kind KindMissingRequiredField.
func MissingRequiredField(field, message string) *ValidationError {
	return NewValidationError(KindMissingRequiredField, field, message)
}

// APIError carries an error reported by the Shipday API, verbatim.
type APIError struct {
	Code       string
	Message    string
	StatusCode int
	Cause      error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("shipday error (%s): %s", e.Code, e.Message)
	}
	return "shipday error: " + e.Message
}

// Unwrap returns the underlying cause.
func (e *APIError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is ErrAPI or an APIError with the same code.
func (e *APIError) Is(target error) bool {
	if target == ErrAPI {
		return true
	}
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewAPIError creates a new APIError.
func NewAPIError(code, message string) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
	}
}

// WithCause adds a cause to the error.
func (e *APIError) WithCause(err error) *APIError {
	e.Cause = err
	return e
}

// WithStatusCode adds an HTTP status code to the error.
func (e *APIError) WithStatusCode(code int) *APIError {
	e.StatusCode = code
	return e
}

// IsValidation returns true if err is or wraps a *ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsAPI returns true if err is or wraps an *APIError.
func IsAPI(err error) bool {
	var a *APIError
	return errors.As(err, &a)
}

// KindOf returns the validation kind of err, or "" when err is not a validation error.
func KindOf(err error) Kind {
	var v *ValidationError
	if errors.As(err, &v) {
		return v.Kind
	}
	return ""
}

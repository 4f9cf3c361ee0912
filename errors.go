package buildkit

import (
	"errors"
	"fmt"
)

// ErrorCode represents a category of error for metrics and logging.
type ErrorCode string

// Error codes for categorization.
const (
	// ErrCodeInvalidArgument is the only failure kind builders produce:
	// a required or configured value was empty, blank or out of range.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
)

// ErrInvalidArgument is the sentinel matched by every validation failure.
//
// Example:
//
//	b, err := query.New("")
//	if errors.Is(err, buildkit.ErrInvalidArgument) {
//	    // handle the rejected table name
//	}
var ErrInvalidArgument = errors.New("buildkit: invalid argument")

// ValidationError describes a rejected construction field or builder step.
// It matches ErrInvalidArgument with errors.Is.
type ValidationError struct {
	Field   string
	Message string
	Err     error // Underlying error for wrapping
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("buildkit: invalid argument %s: %s: %v", e.Field, e.Message, e.Err)
	}
	return fmt.Sprintf("buildkit: invalid argument %s: %s", e.Field, e.Message)
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrInvalidArgument.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// Code returns the error code for categorization.
func (e *ValidationError) Code() ErrorCode {
	return ErrCodeInvalidArgument
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// NewValidationErrorWithCause creates a validation error wrapping cause.
func NewValidationErrorWithCause(field, message string, cause error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     cause,
	}
}

// IsInvalidArgument returns true if err is, or wraps, an invalid argument failure.
func IsInvalidArgument(err error) bool {
	return err != nil && errors.Is(err, ErrInvalidArgument)
}

// AsValidationError extracts a *ValidationError from err.
//
// Example:
//
//	if vErr, ok := buildkit.AsValidationError(err); ok {
//	    log.Printf("rejected field %s: %s", vErr.Field, vErr.Message)
//	}
func AsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}

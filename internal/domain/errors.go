package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is the typed result of a failed input check. It carries
// field-level messages; a ValidationError without field errors represents a
// single generic failure described by Message.
type ValidationError struct {
	Message string
	Errors  []FieldError
}

func (e *ValidationError) Error() string {
	switch {
	case len(e.Errors) == 1:
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	case len(e.Errors) > 1:
		fields := make([]string, len(e.Errors))
		for i, fe := range e.Errors {
			fields[i] = fe.Field
		}
		return fmt.Sprintf("validation: %d errors (%s)", len(e.Errors), strings.Join(fields, ", "))
	case e.Message != "":
		return "validation: " + e.Message
	default:
		return "validation: invalid input"
	}
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// HasFieldErrors reports whether the error carries per-field messages.
func (e *ValidationError) HasFieldErrors() bool { return len(e.Errors) > 0 }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// NewGenericValidationError creates a ValidationError without field details.
func NewGenericValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// FieldErrors accumulates field errors while validating an input.
type FieldErrors []FieldError

// Add appends a field error.
func (f *FieldErrors) Add(field, message string) {
	*f = append(*f, FieldError{Field: field, Message: message})
}

// Err returns a *ValidationError when at least one error was collected.
func (f FieldErrors) Err() error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Errors: f}
}

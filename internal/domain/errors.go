package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used with errors.Is across the service and API layers.
var (
	// ErrNotFound marks any absent referenced record.
	ErrNotFound = errors.New("record not found")

	// ErrForbidden marks a role or ownership check failure.
	ErrForbidden = errors.New("insufficient permissions")

	// ErrMalformedInput marks input rejected before any persistence.
	ErrMalformedInput = errors.New("malformed input")
)

// NotFoundError names the missing resource (job, schedule entry, ...).
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// Is reports that a NotFoundError matches ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFound returns a NotFoundError for the named resource.
func NewNotFound(resource string) error {
	return &NotFoundError{Resource: resource}
}

// MalformedInputError carries the offending field and value.
type MalformedInputError struct {
	Field  string
	Value  string
	Reason string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed %s %q: %s", e.Field, e.Value, e.Reason)
}

// Is reports that a MalformedInputError matches ErrMalformedInput.
func (e *MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}

package domain

import (
	"errors"
	"fmt"
)

// ErrNotInitialized is returned when a classification operation runs
// against a context whose phases were never loaded. The caller must
// load or initialize the project's phases first.
var ErrNotInitialized = errors.New("phases not initialized for project")

// NotFoundError indicates a referenced project, phase, or nested record
// does not exist. Returned by registry mutators and the phase store.
type NotFoundError struct {
	Resource string
	Key      string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.Key)
}

// NewNotFound builds a NotFoundError for the given resource and key.
func NewNotFound(resource, key string) *NotFoundError {
	return &NotFoundError{Resource: resource, Key: key}
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

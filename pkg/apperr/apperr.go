// Package apperr defines the error kinds shared by the event store, the
// settings store and the content engine. Callers match them with errors.Is
// against the sentinels or errors.As against the concrete types.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks caller supplied data that is missing or malformed.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks a reference to an id that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrCorruptStore marks durable storage that could not be parsed.
	ErrCorruptStore = errors.New("corrupt store")
	// ErrEmptyPool is returned when the content pool has no items.
	ErrEmptyPool = errors.New("content pool is empty")
)

// ValidationError reports which field was rejected and why. No state is
// changed when it is returned.
type ValidationError struct {
	Field  string
	Reason string
}

// Validation builds a ValidationError for field.
func Validation(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NotFoundError reports the id that could not be located.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	kind := e.Kind
	if kind == "" {
		kind = "item"
	}
	return fmt.Sprintf("%s %q not found", kind, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// CorruptStoreError reports a storage document that exists but could not be
// decoded. The document is left untouched on disk.
type CorruptStoreError struct {
	Path string
	Err  error
}

func (e *CorruptStoreError) Error() string {
	return fmt.Sprintf("corrupt store %s: %v", e.Path, e.Err)
}

func (e *CorruptStoreError) Unwrap() error {
	return e.Err
}

func (e *CorruptStoreError) Is(target error) bool {
	return target == ErrCorruptStore
}

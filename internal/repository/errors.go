package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound reports that the requested row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConstraint marks a store failure caused by an integrity constraint
	// (unique username, message author foreign key).
	ErrConstraint = errors.New("constraint violation")
)

// StoreError wraps any failure reported by the underlying store.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Fail wraps err as a StoreError for op.
func Fail(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}

// Conflict wraps err as a StoreError that also matches ErrConstraint.
func Conflict(op string, err error) error {
	return &StoreError{Op: op, Err: errors.Join(ErrConstraint, err)}
}

// IsStoreError reports whether err carries a StoreError.
func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}

package store

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicate is returned when a write would violate a unique key.
	ErrDuplicate = errors.New("duplicate record")

	// ErrEmptyPatch is returned by Update when the patch has no columns or no
	// apply function.
	ErrEmptyPatch = errors.New("empty patch")
)

// StorageError reports a failed backend operation. The unit of work it
// belonged to has been rolled back.
type StorageError struct {
	Op     string
	Entity string
	Err    error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("store %s %s: %v", e.Entity, e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError wraps err unless it is nil or already a sentinel the
// caller is expected to branch on.
func NewStorageError(entity, op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrDuplicate) || errors.Is(err, ErrEmptyPatch) {
		return err
	}
	var se *StorageError
	if errors.As(err, &se) {
		return err
	}
	return &StorageError{Op: op, Entity: entity, Err: err}
}

// IsStorageError reports whether err carries a *StorageError.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}

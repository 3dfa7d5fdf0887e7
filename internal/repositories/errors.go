package repositories

import (
	"errors"
	"fmt"
)

// ErrDuplicateEmail is wrapped in a StorageError when the backend's unique
// email index rejects an insert.
var ErrDuplicateEmail = errors.New("duplicate email")

// StorageError wraps any backend failure with the operation that hit it.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

package repository

import "errors"

// ErrNotFound is wrapped by lookups that match no row.
var ErrNotFound = errors.New("not found")

// StorageError wraps a failed SQLite operation.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *StorageError) Unwrap() error { return e.Err }

func storageErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

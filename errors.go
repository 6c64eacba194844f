package chash

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCapacity = errors.New("capacity must be greater than zero")
	ErrKeyNotFound     = errors.New("key not found")
	ErrDuplicateKey    = errors.New("key already present")
	ErrDestroyed       = errors.New("table has been destroyed")
	ErrNilHasher       = errors.New("hasher cannot be nil")
	ErrInvalidPolicy   = errors.New("unknown duplicate policy")
)

// TableError records the operation and key that failed.
type TableError struct {
	Op  string
	Key string
	Err error
}

func (e *TableError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("chash: %s %q: %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("chash: %s: %v", e.Op, e.Err)
}

func (e *TableError) Unwrap() error {
	return e.Err
}

func newTableError(op, key string, err error) *TableError {
	return &TableError{Op: op, Key: key, Err: err}
}

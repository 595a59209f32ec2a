package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned when an index falls outside the range
	// an operation accepts: [0,Size()) for reads and removals, [0,Size()]
	// for inserts.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrElementNotFound is returned when a value-based lookup misses.
	ErrElementNotFound = errors.New("element not found")
	// ErrEmptyContainer is returned by Pop and Unshift on an empty vector.
	ErrEmptyContainer = errors.New("empty container")
	// ErrAllocation is returned when slot storage cannot be obtained.
	ErrAllocation = errors.New("allocation failed")
	// ErrMalformedSnapshot is returned when snapshot bytes cannot be decoded.
	ErrMalformedSnapshot = errors.New("malformed snapshot")
)

// IndexError records the operation and index that failed a bounds check.
// Limit is the exclusive upper bound the operation accepted.
type IndexError struct {
	Op    string
	Index int
	Limit int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("vector: %s: index %d out of range [0,%d)", e.Op, e.Index, e.Limit)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

func checkIndex(op string, index, limit int) error {
	if index < 0 || index >= limit {
		return &IndexError{Op: op, Index: index, Limit: limit}
	}
	return nil
}

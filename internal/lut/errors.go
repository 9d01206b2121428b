package lut

import (
	"errors"
	"fmt"
)

var (
	// ErrLength indicates a table that does not hold exactly Size entries.
	ErrLength = errors.New("lut: table length mismatch")

	// ErrNotMonotonic indicates a table that is not strictly increasing.
	ErrNotMonotonic = errors.New("lut: table not strictly increasing")

	// ErrNonFinite indicates a NaN or infinite table entry.
	ErrNonFinite = errors.New("lut: non-finite table entry")
)

// TableError carries the offending index.
type TableError struct {
	Index   int
	Value   float64
	Wrapped error
}

func (e *TableError) Error() string {
	return fmt.Sprintf("%v (index %d, value %v)", e.Wrapped, e.Index, e.Value)
}

func (e *TableError) Unwrap() error {
	return e.Wrapped
}

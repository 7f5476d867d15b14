package seqmatch

import (
	"errors"
	"fmt"
)

var (
	ErrNotSorted      = errors.New("invalid candidate table: entries out of ascending order")
	ErrDuplicateEntry = errors.New("invalid candidate table: adjacent entries are equal")
)

// TableError is an error encountered while validating a candidate table.
// This always means the caller supplied a defective table; the table must
// be fixed, not retried.
type TableError struct {
	Err   error
	Index int
}

func (e *TableError) Error() string {
	return fmt.Sprintf("github.com/InKryption/inkuery/seqmatch: table error @ entry %d: %v", e.Index, e.Err)
}

func (e *TableError) Unwrap() error {
	return e.Err
}

package seqmatch

import (
	"cmp"
	"slices"
)

// validateTable checks, in one linear pass over adjacent pairs, that every
// candidate compares strictly less than its successor. Non-empty tables
// only; an empty table is a caller contract violation.
func validateTable[E cmp.Ordered](candidates [][]E) error {
	assert(len(candidates) > 0, "empty candidate table")
	for i := 1; i < len(candidates); i++ {
		switch c := slices.Compare(candidates[i-1], candidates[i]); {
		case c == 0:
			return &TableError{Err: ErrDuplicateEntry, Index: i}
		case c > 0:
			return &TableError{Err: ErrNotSorted, Index: i}
		}
	}
	return nil
}

// Strings converts a list of strings into a candidate table of byte
// sequences. It is a convenience for the common case of matching textual
// candidates; the result is subject to the same ordering requirements as
// any other table.
func Strings(candidates ...string) [][]byte {
	out := make([][]byte, len(candidates))
	for i, s := range candidates {
		out[i] = []byte(s)
	}
	return out
}

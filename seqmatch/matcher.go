package seqmatch

import (
	"cmp"
	"slices"
)

// Matcher is a progressive prefix match in progress.
//
// The zero Matcher is not usable; obtain one from New. A Matcher is a
// plain value: copying it yields an independent match sharing the same
// (immutable) candidate table.
type Matcher[E cmp.Ordered] struct {
	// table is the candidate table, strictly ascending, never mutated.
	table [][]E

	// index is the position of the first candidate still compatible
	// with the consumed input. index == len(table) means exhausted.
	index int

	// qlen is the number of elements consumed so far. While not
	// exhausted, qlen <= len(table[index]).
	qlen int
}

// New validates candidates and returns a fresh Matcher positioned at the
// start of the table. The table must be strictly ascending under
// lexicographic element order: New fails with ErrDuplicateEntry (wrapped
// in a *TableError) on the first pair of equal adjacent entries, and with
// ErrNotSorted on the first adjacent pair that is out of order.
//
// The caller must not mutate candidates for as long as any Matcher
// references it. New panics if candidates is empty.
func New[E cmp.Ordered](candidates [][]E) (*Matcher[E], error) {
	if err := validateTable(candidates); err != nil {
		return nil, err
	}
	return &Matcher[E]{table: candidates}, nil
}

// Append attempts to extend the consumed prefix by exactly segment. It
// returns true iff some surviving candidate's prefix of length
// Len()+len(segment) equals the consumed prefix followed by segment; on
// success the Matcher commits to the lexicographically smallest such
// candidate. On failure the Matcher becomes exhausted and every later
// Append keeps returning false until Clear or Reset.
//
// Candidates skipped during the scan are abandoned for good, even the
// ones that merely were too short for this segment. Append panics if
// segment is empty.
func (m *Matcher[E]) Append(segment []E) bool {
	assert(len(segment) > 0, "empty segment")
	if m.index >= len(m.table) {
		return false
	}

	// Every surviving candidate starts with these qlen elements.
	prefix := m.table[m.index][:m.qlen]

	for i := m.index; i < len(m.table); i++ {
		c := m.table[i]
		if !hasPrefix(c, prefix) {
			// By sort order, no candidate past this one can
			// share the prefix either.
			break
		}
		if len(c)-m.qlen < len(segment) {
			// Prefix-compatible but too short to hold segment.
			continue
		}
		if !slices.Equal(c[m.qlen:m.qlen+len(segment)], segment) {
			continue
		}
		m.index = i
		m.qlen += len(segment)
		return true
	}

	m.index = len(m.table)
	return false
}

// AppendCheck reports what Append would return for segment, without
// changing any observable state. AppendCheck panics if segment is empty.
func (m *Matcher[E]) AppendCheck(segment []E) bool {
	scratch := *m
	return scratch.Append(segment)
}

// Clear returns the Matcher to the start of its current table, as if
// freshly constructed.
func (m *Matcher[E]) Clear() {
	assert(len(m.table) > 0, "Clear on a Matcher without a table")
	m.index = 0
	m.qlen = 0
}

// Reset validates candidates exactly as New does and, on success, replaces
// the Matcher's table with it and returns the position to the start. On
// error the Matcher is left untouched.
func (m *Matcher[E]) Reset(candidates [][]E) error {
	if err := validateTable(candidates); err != nil {
		return err
	}
	m.table = candidates
	m.index = 0
	m.qlen = 0
	return nil
}

// Exhausted reports whether no candidate can satisfy the consumed input.
func (m *Matcher[E]) Exhausted() bool {
	return m.index >= len(m.table)
}

// Index returns the table position of the closest candidate. Once the
// Matcher is exhausted, Index equals the table length.
func (m *Matcher[E]) Index() int {
	return m.index
}

// Len returns the number of elements consumed so far.
func (m *Matcher[E]) Len() int {
	return m.qlen
}

// Closest returns the lexicographically smallest candidate still
// compatible with the consumed input. There is none once the Matcher is
// exhausted, and none before any input has been appended while the
// positioned candidate is non-empty: no candidate is reported as
// "closest" to an empty query.
func (m *Matcher[E]) Closest() ([]E, bool) {
	if m.Exhausted() {
		return nil, false
	}
	c := m.table[m.index]
	if m.qlen == 0 && len(c) > 0 {
		return nil, false
	}
	return c, true
}

// Prefix returns the consumed prefix: an exact echo of every element
// appended so far, reconstructed from the positioned candidate's storage.
// It is empty-but-present on a fresh Matcher and absent once exhausted.
func (m *Matcher[E]) Prefix() ([]E, bool) {
	if m.Exhausted() {
		return nil, false
	}
	return m.table[m.index][:m.qlen], true
}

// Match returns the closest candidate iff the consumed input equals it
// exactly, rather than being a proper prefix of it. There is no match
// while the Matcher is exhausted.
func (m *Matcher[E]) Match() ([]E, bool) {
	c, ok := m.Closest()
	if !ok || len(c) != m.qlen {
		return nil, false
	}
	return c, true
}

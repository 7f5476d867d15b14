package tagmatch

import (
	"github.com/InKryption/inkuery/seqmatch"
)

// Matcher is a progressive match against the names of one Set. It holds
// only its position; the table lives in the shared Set. Matcher is a
// plain value and copies are independent.
type Matcher[T comparable] struct {
	set *Set[T]
	m   seqmatch.Matcher[byte]
}

// Append attempts to extend the consumed prefix by exactly segment,
// committing to the lexicographically smallest name that accepts it. On
// failure the Matcher becomes exhausted until Clear. Append panics if
// segment is empty.
func (t *Matcher[T]) Append(segment string) bool {
	return t.m.Append([]byte(segment))
}

// AppendCheck reports what Append would return for segment, without
// changing any observable state.
func (t *Matcher[T]) AppendCheck(segment string) bool {
	return t.m.AppendCheck([]byte(segment))
}

// Clear returns the Matcher to the start of the Set's table.
func (t *Matcher[T]) Clear() {
	t.m.Clear()
}

// Exhausted reports whether no name can satisfy the consumed input.
func (t *Matcher[T]) Exhausted() bool {
	return t.m.Exhausted()
}

// Closest returns the lexicographically smallest name still compatible
// with the consumed input, under the same rules as seqmatch: none once
// exhausted, none before any input has been appended.
func (t *Matcher[T]) Closest() (string, bool) {
	c, ok := t.m.Closest()
	if !ok {
		return "", false
	}
	return string(c), true
}

// Prefix returns the consumed prefix of the closest name. It is
// empty-but-present on a fresh Matcher and absent once exhausted.
func (t *Matcher[T]) Prefix() (string, bool) {
	p, ok := t.m.Prefix()
	if !ok {
		return "", false
	}
	return string(p), true
}

// Match returns the tag whose name the consumed input equals exactly.
// There is no match while the input is a proper prefix of every surviving
// name, or once the Matcher is exhausted.
func (t *Matcher[T]) Match() (T, bool) {
	if _, ok := t.m.Match(); !ok {
		var zero T
		return zero, false
	}
	return t.set.tags[t.m.Index()], true
}

package tagmatch

import (
	"sort"
	"sync"
)

// Set is the candidate table for one tag enumeration: every variant of
// the enumeration, keyed to its name. The table of names is sorted once,
// on first use, and shared read-only by every Matcher created from the
// Set. Enumeration order is irrelevant.
type Set[T comparable] struct {
	input map[T]string

	once  sync.Once
	tags  []T      // sorted by name
	table [][]byte // tag names, same order as tags
}

// NewSet returns a Set over the given closed list of tag variants. The
// list must be exhaustive: Match can only ever yield the tags named here.
// NewSet panics if names is empty; the first use of the Set panics if two
// variants share a name.
func NewSet[T comparable](names map[T]string) *Set[T] {
	assert(len(names) > 0, "empty tag set")
	return &Set[T]{input: names}
}

// NewMatcher returns a fresh Matcher over the Set's names, building the
// shared sorted table if this is the Set's first use.
func (s *Set[T]) NewMatcher() *Matcher[T] {
	s.init()
	return &Matcher[T]{set: s, m: newSeqMatcher(s.table)}
}

func (s *Set[T]) init() {
	s.once.Do(func() {
		tags := make([]T, 0, len(s.input))
		for tag := range s.input {
			tags = append(tags, tag)
		}
		sort.Slice(tags, func(i, j int) bool {
			return s.input[tags[i]] < s.input[tags[j]]
		})

		table := make([][]byte, len(tags))
		for i, tag := range tags {
			name := s.input[tag]
			assert(i == 0 || string(table[i-1]) != name, "duplicate tag name %q", name)
			table[i] = []byte(name)
		}

		s.tags = tags
		s.table = table
	})
}

package tagmatch

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/InKryption/inkuery/seqmatch"
)

// assert panics if cond is false.
func assert(cond bool, format string, args ...interface{}) {
	if !cond {
		var buf bytes.Buffer
		buf.WriteString("assertion failed: ")
		fmt.Fprintf(&buf, format, args...)
		panic(errors.New(buf.String()))
	}
}

// newSeqMatcher wraps seqmatch.New for a table that is sorted and
// deduplicated by construction, so validation cannot fail.
func newSeqMatcher(table [][]byte) seqmatch.Matcher[byte] {
	m, err := seqmatch.New(table)
	assert(err == nil, "derived name table rejected: %v", err)
	return *m
}

package seqmatch

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"unicode"
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

// hasPrefix reports whether s begins with prefix.
func hasPrefix[E comparable](s, prefix []E) bool {
	return len(s) >= len(prefix) && slices.Equal(s[:len(prefix)], prefix)
}

// writeSeqLiteral renders a candidate (or a prefix of one) for human
// consumption. Byte and rune sequences are printed as quoted strings,
// everything else falls back to the element-wise %v form.
func writeSeqLiteral[E any](buf *bytes.Buffer, s []E) {
	switch v := interface{}(s).(type) {
	case []byte:
		if isPrintable(string(v)) {
			fmt.Fprintf(buf, "%q", v)
			return
		}
	case []rune:
		if isPrintable(string(v)) {
			fmt.Fprintf(buf, "%q", string(v))
			return
		}
	}
	buf.WriteByte('[')
	first := true
	for _, e := range s {
		if !first {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(buf, "%v", e)
		first = false
	}
	buf.WriteByte(']')
}

func isPrintable(s string) bool {
	for _, r := range s {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

package seqmatch

import (
	"bytes"
	"fmt"
	"io"
)

// String provides a programmer-friendly debugging string for the Matcher.
func (m *Matcher[E]) String() string {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if m.Exhausted() {
		buf.WriteString("exhausted")
	} else {
		fmt.Fprintf(&buf, "%d/%d ", m.index, len(m.table))
		writeSeqLiteral(&buf, m.table[m.index][:m.qlen])
	}
	buf.WriteByte('}')
	return buf.String()
}

// Dump writes a human-readable view of the Matcher to the provided
// writer: the consumed prefix, then the whole candidate table with the
// closest candidate marked.
func (m *Matcher[E]) Dump(w io.Writer) (int, error) {
	var buf bytes.Buffer
	var total int

	flush := func() error {
		n, err := w.Write(buf.Bytes())
		total += n
		buf.Reset()
		return err
	}

	if m.Exhausted() {
		buf.WriteString("%query exhausted\n")
	} else {
		buf.WriteString("%query ")
		writeSeqLiteral(&buf, m.table[m.index][:m.qlen])
		fmt.Fprintf(&buf, " (%d)\n", m.qlen)
	}
	if err := flush(); err != nil {
		return total, err
	}

	for i, c := range m.table {
		if i == m.index {
			buf.WriteByte('>')
		} else {
			buf.WriteByte(' ')
		}
		buf.WriteByte(' ')
		writeSeqLiteral(&buf, c)
		buf.WriteByte('\n')
		if err := flush(); err != nil {
			return total, err
		}
	}
	return total, nil
}

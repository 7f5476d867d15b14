package seqmatch

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/renstrom/dedent"
	"github.com/sergi/go-diff/diffmatchpatch"
)

var reNL = regexp.MustCompile(`(?m)^`)

func diff(l, r string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(l, r, false)
	pretty := dmp.DiffPrettyText(diffs)
	return reNL.ReplaceAllLiteralString(pretty, "\t")
}

func testDumpHelper(t *testing.T, m *Matcher[byte], expected string) {
	t.Helper()

	var buf bytes.Buffer
	n, err := m.Dump(&buf)
	if err != nil {
		t.Errorf("%s: error: %v", t.Name(), err)
		return
	}
	if n != buf.Len() {
		t.Errorf("%s: Dump reported %d bytes, wrote %d", t.Name(), n, buf.Len())
	}

	actual := buf.String()
	expected = dedent.Dedent(expected)[1:]
	if expected != actual {
		t.Errorf("%s: wrong output:\n%s", t.Name(), diff(expected, actual))
	}
}

func TestMatcher_Dump(t *testing.T) {
	m := sampleMatcher(t)

	testDumpHelper(t, m, `
	%query "" (0)
	> "bar"
	  "baz"
	  "buzz"
	  "fizz"
	  "foo"
	`)

	m.Append([]byte("ba"))
	m.Append([]byte("z"))
	testDumpHelper(t, m, `
	%query "baz" (3)
	  "bar"
	> "baz"
	  "buzz"
	  "fizz"
	  "foo"
	`)

	m.Append([]byte("z"))
	testDumpHelper(t, m, `
	%query exhausted
	  "bar"
	  "baz"
	  "buzz"
	  "fizz"
	  "foo"
	`)
}

func TestMatcher_String(t *testing.T) {
	type testrow struct {
		Segments []string
		Expected string
	}

	data := []testrow{
		testrow{nil, `{0/5 ""}`},
		testrow{[]string{"ba"}, `{0/5 "ba"}`},
		testrow{[]string{"ba", "z"}, `{1/5 "baz"}`},
		testrow{[]string{"ba", "z", "z"}, `{exhausted}`},
	}

	for i, row := range data {
		m := sampleMatcher(t)
		for _, seg := range row.Segments {
			m.Append([]byte(seg))
		}
		actual := m.String()
		if actual != row.Expected {
			t.Errorf("%s/%03d: expected %q, got %q", t.Name(), i, row.Expected, actual)
		}
	}
}

func TestMatcher_DumpIntElements(t *testing.T) {
	m, err := New([][]int{
		[]int{1, 2},
		[]int{7, 8, 9},
	})
	if err != nil {
		t.Fatalf("%s: error: %v", t.Name(), err)
	}
	m.Append([]int{7})

	var buf bytes.Buffer
	if _, err := m.Dump(&buf); err != nil {
		t.Fatalf("%s: error: %v", t.Name(), err)
	}
	actual := buf.String()
	expected := dedent.Dedent(`
	%query [7] (1)
	  [1 2]
	> [7 8 9]
	`)[1:]
	if expected != actual {
		t.Errorf("%s: wrong output:\n%s", t.Name(), diff(expected, actual))
	}
}

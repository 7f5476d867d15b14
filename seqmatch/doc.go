// Package seqmatch implements progressive prefix matching against a fixed,
// sorted table of candidate sequences.
//
// A Matcher is fed its query piecewise, one non-empty segment at a time,
// and maintains the set of candidates that could still resolve to the
// input seen so far. The typical consumers are incremental by nature: a
// command-line parser reading an option name token by token, or a lexer
// that must decide, before a token is complete, whether the bytes so far
// still could spell one of a finite set of keywords.
//
// The candidate table must be strictly ascending under lexicographic
// element order, with no duplicate entries. That invariant is what makes
// incremental narrowing cheap: at any point, the candidates that share the
// consumed prefix form one contiguous run of the table, and that run can
// only ever shrink from the front as more input arrives. The Matcher
// therefore keeps just two integers of mutable state:
//
//   - index, the position of the first (lexicographically smallest)
//     candidate still compatible with the input. index == len(table) is
//     the terminal "exhausted" state.
//
//   - qlen, the number of elements consumed so far.
//
// Append extends the consumed prefix by one segment. It scans forward from
// index; the first candidate whose next elements equal the segment becomes
// the new position. A candidate that no longer starts with the old prefix
// ends the scan early (by sort order, nothing past it can match either).
// A candidate that still starts with the old prefix but is too short to
// hold the new segment is skipped and permanently abandoned: growing qlen
// can only shrink the surviving set, so the scan never revisits earlier
// candidates. Both index and qlen are non-decreasing for the life of the
// state; once exhausted, a Matcher stays exhausted until Clear or Reset.
//
// The scan is linear in the number of candidates skipped. For the table
// sizes this package is aimed at (option names, keyword sets, enum
// arities) that beats the bookkeeping of an explicit [lo, hi) range with
// per-segment binary search, and the two never differ observably.
//
// The matched prefix is never buffered separately: accessors reconstruct
// it as table[index][:qlen], which by construction is an exact echo of
// every element appended so far.
//
// A Matcher is a plain value. Copies are independent, and any number of
// matchers may share one table from any number of goroutines, as long as
// nobody mutates the table while they do.
package seqmatch

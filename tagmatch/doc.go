// Package tagmatch implements progressive prefix matching over the names
// of a closed tag enumeration.
//
// It is the seqmatch algorithm with the candidate table derived, once,
// from an explicit list of tag variants and their names. A Set is meant to
// live in a package-level var next to the enumeration it describes:
//
//	type Keyword uint8
//
//	const (
//		KwBreak Keyword = iota
//		KwConst
//		KwContinue
//	)
//
//	var Keywords = tagmatch.NewSet(map[Keyword]string{
//		KwBreak:    "break",
//		KwConst:    "const",
//		KwContinue: "continue",
//	})
//
// The Set sorts the names lazily, at most once, on first use; every
// Matcher created from it shares that read-only table, and may do so from
// any goroutine. Matching a complete name yields the tag value itself,
// not the name.
package tagmatch

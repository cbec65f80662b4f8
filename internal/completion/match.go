// Package completion classifies cursor positions in view-markup documents
// and resolves ranked candidate sets from SDK metadata.
package completion

import "strings"

// MatchLevel grades how well a candidate matches the typed prefix. Higher is
// better; MatchNone excludes the candidate.
type MatchLevel int

const (
	// MatchNone means the candidate does not match at all.
	MatchNone MatchLevel = iota
	// MatchSubstring means the folded prefix occurs somewhere inside the
	// candidate. Also the grade of every candidate under an empty prefix.
	MatchSubstring
	// MatchPrefixFold means the candidate starts with the prefix ignoring
	// case.
	MatchPrefixFold
	// MatchEqualFold means candidate and prefix are equal ignoring case.
	MatchEqualFold
	// MatchPrefix means the candidate starts with the prefix.
	MatchPrefix
	// MatchEqual means candidate and prefix are identical.
	MatchEqual
)

// String returns a short name for logs and test output.
func (l MatchLevel) String() string {
	switch l {
	case MatchNone:
		return "none"
	case MatchSubstring:
		return "substring"
	case MatchPrefixFold:
		return "prefix_fold"
	case MatchEqualFold:
		return "equal_fold"
	case MatchPrefix:
		return "prefix"
	case MatchEqual:
		return "equal"
	default:
		return "unknown"
	}
}

// Score grades candidate against the typed prefix. An empty prefix grades
// every candidate MatchSubstring so a fresh menu ranks all entries equally
// instead of excluding them.
func Score(candidate, prefix string) MatchLevel {
	if prefix == "" {
		return MatchSubstring
	}
	switch {
	case candidate == prefix:
		return MatchEqual
	case strings.HasPrefix(candidate, prefix):
		return MatchPrefix
	case strings.EqualFold(candidate, prefix):
		return MatchEqualFold
	}
	candidateFold := strings.ToLower(candidate)
	prefixFold := strings.ToLower(prefix)
	switch {
	case strings.HasPrefix(candidateFold, prefixFold):
		return MatchPrefixFold
	case strings.Contains(candidateFold, prefixFold):
		return MatchSubstring
	}
	return MatchNone
}

// maxLevel keeps the better of two grades.
func maxLevel(a, b MatchLevel) MatchLevel {
	if a > b {
		return a
	}
	return b
}

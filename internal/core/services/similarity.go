package services

import (
	"regexp"
	"strings"

	"github.com/texttheater/golang-levenshtein/levenshtein"
)

var (
	// Hyphens are kept so "As-Built" and "As Built" stay distinguishable.
	punctuationPattern = regexp.MustCompile(`[^\p{L}\p{N}\s-]+`)
	whitespacePattern  = regexp.MustCompile(`\s+`)
)

// normaliseTitle lowercases, strips punctuation and collapses whitespace.
func normaliseTitle(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = punctuationPattern.ReplaceAllString(s, "")
	s = whitespacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// similarityPercent returns the indel-normalised edit similarity of two
// titles as an integer percentage in [0,100], rounded down.
//
// With insertions and deletions costing 1 and substitutions 2, the ratio
// (len(a)+len(b)-distance)/(len(a)+len(b)) is symmetric and equals the
// longest-common-subsequence ratio.
func similarityPercent(a, b string) int {
	ra := []rune(normaliseTitle(a))
	rb := []rune(normaliseTitle(b))
	total := len(ra) + len(rb)
	if total == 0 {
		return 0
	}
	dist := levenshtein.DistanceForStrings(ra, rb, levenshtein.DefaultOptions)
	return (total - dist) * 100 / total
}

// titlesEqual is the exact-strategy comparison.
func titlesEqual(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

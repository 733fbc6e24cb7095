// Package suggest picks "did you mean" candidates for misspelled names.
package suggest

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// ClosestMatch returns the candidate closest to target by fuzzy rank, or ""
// when no candidate contains target's letters in order. Case is ignored.
func ClosestMatch(target string, candidates []string) string {
	ranks := fuzzy.RankFindFold(target, candidates)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}

package main

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// maxHintDistance bounds how far a misspelling may be from its suggestion.
const maxHintDistance = 2

// closest returns the candidate that target most likely misspells, or "" if
// none is plausible: fuzzy subsequence matches rank first, then the nearest
// candidate by edit distance.
func closest(target string, candidates []string) string {
	if target == "" || len(candidates) == 0 {
		return ""
	}

	if ranks := fuzzy.RankFindFold(target, candidates); len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target
	}

	best, bestDist := "", maxHintDistance+1
	for _, cand := range candidates {
		if dist := fuzzy.LevenshteinDistance(target, cand); dist < bestDist {
			best, bestDist = cand, dist
		}
	}
	return best
}

// Package engine implements the match and ranking stages of the search
// pipeline: deciding which leaves match a normalized query, then
// deduplicating, ordering, and capping the results.
package engine

import (
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/standardbeagle/sift/internal/textdist"
)

// MatchAll runs the exact and fuzzy passes over every leaf and returns the
// matches as a multiset; duplicates are resolved later by Finalize. A leaf
// matches exactly when every query token appears somewhere in it, in any
// order. A leaf that did not match exactly still matches fuzzily when its
// edit distance to the canonical query is within flexibility. Flexibility 0
// skips the fuzzy pass entirely.
//
// Matched leaves are reported in their folded form when caseSensitive is
// false; the input slice is never mutated.
func MatchAll(leaves []string, canonical string, tokens []string, caseSensitive bool, flexibility int) []string {
	var matches []string
	for _, leaf := range leaves {
		candidate := leaf
		if !caseSensitive {
			candidate = strings.ToLower(candidate)
		}
		if containsAllTokens(candidate, tokens) {
			matches = append(matches, candidate)
			continue
		}
		if flexibility > 0 && textdist.Distance(canonical, candidate) <= flexibility {
			matches = append(matches, candidate)
		}
	}
	return matches
}

func containsAllTokens(candidate string, tokens []string) bool {
	if len(tokens) == 0 {
		return false
	}
	for _, tok := range tokens {
		if !strings.Contains(candidate, tok) {
			return false
		}
	}
	return true
}

// Finalize turns the match multiset into the final result list: duplicates
// removed keeping the first occurrence, survivors stable-sorted ascending by
// edit distance to the canonical query (ties keep their pre-sort order), and
// the list truncated to limit. The result is never nil; no matches is an
// empty slice.
func Finalize(matches []string, canonical string, limit int) []string {
	if limit < 1 {
		limit = 1
	}

	type scored struct {
		value string
		dist  int
	}

	// Seen set keyed by xxhash with bucketed verification, so hash
	// collisions cannot drop a distinct string.
	seen := make(map[uint64][]string, len(matches))
	ranked := make([]scored, 0, len(matches))
	for _, m := range matches {
		h := xxhash.Sum64String(m)
		dup := false
		for _, prior := range seen[h] {
			if prior == m {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		seen[h] = append(seen[h], m)
		ranked = append(ranked, scored{value: m, dist: textdist.Distance(canonical, m)})
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].dist < ranked[j].dist })

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	results := make([]string, len(ranked))
	for i, r := range ranked {
		results[i] = r.value
	}
	return results
}

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchAll_TokenContainment(t *testing.T) {
	leaves := []string{"January Sale", "February", "Midsummer January"}

	// Tokens may appear anywhere and in any order.
	got := MatchAll(leaves, "sale january", []string{"sale", "january"}, false, 0)
	assert.Equal(t, []string{"january sale"}, got)

	got = MatchAll(leaves, "january", []string{"january"}, false, 0)
	assert.Equal(t, []string{"january sale", "midsummer january"}, got)
}

func TestMatchAll_FuzzyWithinFlexibility(t *testing.T) {
	leaves := []string{"June", "July", "August"}

	// "jun" is a substring of june; july is distance 2 away; august is far.
	got := MatchAll(leaves, "jun", []string{"jun"}, false, 2)
	assert.Equal(t, []string{"june", "july"}, got)
}

func TestMatchAll_FlexibilityZeroSkipsFuzzy(t *testing.T) {
	leaves := []string{"June", "July"}
	got := MatchAll(leaves, "jun", []string{"jun"}, false, 0)
	assert.Equal(t, []string{"june"}, got)
}

func TestMatchAll_ExactIncludedRegardlessOfFlexibility(t *testing.T) {
	// Token containment wins even when the edit distance is huge.
	leaves := []string{"a very long string containing jan somewhere"}
	got := MatchAll(leaves, "jan", []string{"jan"}, false, 0)
	assert.Len(t, got, 1)
}

func TestMatchAll_CaseSensitive(t *testing.T) {
	leaves := []string{"April", "May"}

	got := MatchAll(leaves, "May", []string{"May"}, true, 0)
	assert.Equal(t, []string{"May"}, got)

	// Lowercase query finds nothing without folding.
	got = MatchAll(leaves, "may", []string{"may"}, true, 0)
	assert.Empty(t, got)
}

func TestMatchAll_DuplicateLeavesProduceDuplicateMatches(t *testing.T) {
	leaves := []string{"june", "june"}
	got := MatchAll(leaves, "jun", []string{"jun"}, false, 2)
	assert.Equal(t, []string{"june", "june"}, got)
}

func TestMatchAll_NoTokens(t *testing.T) {
	assert.Empty(t, MatchAll([]string{"anything"}, "", nil, false, 0))
}

func TestFinalize_DedupeKeepsFirstOccurrence(t *testing.T) {
	got := Finalize([]string{"june", "july", "june"}, "jun", 10)
	assert.Equal(t, []string{"june", "july"}, got)
}

func TestFinalize_SortsByDistance(t *testing.T) {
	// july (distance 2) arrives before june (distance 1); rank order is by
	// computed distance, not insertion order.
	got := Finalize([]string{"july", "june"}, "jun", 10)
	assert.Equal(t, []string{"june", "july"}, got)
}

func TestFinalize_StableOnTies(t *testing.T) {
	// Both are distance 1 from "jun"; pre-sort relative order is kept.
	got := Finalize([]string{"jund", "junk"}, "jun", 10)
	assert.Equal(t, []string{"jund", "junk"}, got)
}

func TestFinalize_Truncates(t *testing.T) {
	got := Finalize([]string{"june", "july", "juno"}, "jun", 2)
	assert.Len(t, got, 2)

	// Limit below one is clamped to one.
	got = Finalize([]string{"june", "july"}, "jun", 0)
	assert.Len(t, got, 1)
}

func TestFinalize_EmptyInput(t *testing.T) {
	got := Finalize(nil, "jun", 5)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

package sift

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_FlatList(t *testing.T) {
	got, err := Search("jan", []string{"January", "February", "March"}, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"january"}, got)
}

func TestSearch_FlexibilityWidensResults(t *testing.T) {
	months := []string{"June", "July", "August"}

	strict := New(Options{Flexibility: 0})
	got, err := strict.Search("jun", months, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"june"}, got)

	loose := New(Options{Flexibility: 2})
	got, err = loose.Search("jun", months, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"june", "july"}, got)
}

func TestSearch_CaseSensitive(t *testing.T) {
	s := New(Options{CaseSensitive: true, Flexibility: 2})
	got, err := s.Search("May", []string{"April", "May"}, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"May"}, got)
}

func TestSearch_EmptyQuery(t *testing.T) {
	got, err := Search("", []string{"one", "two"}, 1)
	assert.Equal(t, []string{}, got)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidQuery)

	var serr *SearchError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, ErrorTypeInvalidQuery, serr.Type)
}

func TestSearch_WhitespaceQuery(t *testing.T) {
	got, err := Search("   ", []string{"one"}, 1)
	assert.Equal(t, []string{}, got)
	assert.ErrorIs(t, err, ErrInvalidQuery)
}

func TestSearch_UnsupportedSource(t *testing.T) {
	for _, src := range []any{42, true, nil, 3.14} {
		got, err := Search("query", src, 1)
		assert.Equal(t, []string{}, got)
		assert.ErrorIs(t, err, ErrInvalidSource, "source %#v must be rejected", src)

		var serr *SearchError
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, ErrorTypeInvalidSource, serr.Type)
	}
}

func TestSearch_NestedMapping(t *testing.T) {
	got, err := Search("joe", map[string]any{"name": "Joe", "location": "NY"}, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"joe"}, got)
}

func TestSearch_DeeplyNestedMapping(t *testing.T) {
	src := map[string]any{
		"team": map[string]any{
			"lead":   "Joe",
			"office": map[string]any{"city": "New York"},
		},
	}
	got, err := Search("joe", src, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"joe"}, got)
}

func TestSearch_ScalarSource(t *testing.T) {
	got, err := Search("jan", "january february march", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"january"}, got)
}

func TestSearch_NoMatchesIsNotAnError(t *testing.T) {
	got, err := Search("zzzzzzz", []string{"January", "February"}, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{}, got)
}

func TestSearch_QueryNormalizesAwaySoftly(t *testing.T) {
	// A query of nothing but stop words is a soft miss, not an error.
	s := New(Options{Flexibility: 2, IgnoreStopWords: true})
	got, err := s.Search("the and of", []string{"the"}, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{}, got)
}

func TestSearch_Exclusions(t *testing.T) {
	s := New(Options{Flexibility: 2, Exclusions: []string{"colou?r "}})
	got, err := s.Search("color red", []string{"red", "blue"}, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"red"}, got)
}

func TestSearch_Stemming(t *testing.T) {
	s := New(Options{Flexibility: 0, Stemming: true})
	got, err := s.Search("apples", []string{"apple pie", "banana"}, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"apple pie"}, got)
}

func TestSearch_CustomStemmer(t *testing.T) {
	s := New(Options{Flexibility: 0, Stemming: true, Stemmer: Porter2Stemmer(3)})
	got, err := s.Search("running", []string{"run fast", "walk slow"}, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"run fast"}, got)
}

func TestSearch_LimitClamped(t *testing.T) {
	got, err := Search("jun", []string{"June", "July"}, 0)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestSearch_SearcherIsReusable(t *testing.T) {
	s := New(DefaultOptions())
	for i := 0; i < 3; i++ {
		got, err := s.Search("jan", []string{"January"}, 1)
		require.NoError(t, err)
		assert.Equal(t, []string{"january"}, got)
	}
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"sample", "sentence"}, Tokenize("sample_sentence", "_"))
	assert.Equal(t, []string{"a", "b"}, Tokenize("a b", ""))
}

func TestSuffixStemmer(t *testing.T) {
	assert.Equal(t, "cat", SuffixStemmer("cats"))
	assert.Equal(t, "dog", SuffixStemmer("dog"))
	assert.Equal(t, "s", SuffixStemmer("s"))
	assert.Equal(t, "", SuffixStemmer(""))
}

func TestPorter2Stemmer(t *testing.T) {
	stem := Porter2Stemmer(3)
	assert.Equal(t, "run", stem("running"))
	assert.Equal(t, "cat", stem("cats"))
	assert.Equal(t, "is", stem("is"), "words below minLength pass through")

	keep := Porter2Stemmer(3, "running")
	assert.Equal(t, "running", keep("running"), "excluded words pass through")
}

package sift

import "github.com/surgebase/porter2"

// Stemmer reduces a token to its base form.
type Stemmer func(word string) string

// Options configures a Searcher. Options are fixed at construction time and
// never mutated by a search.
type Options struct {
	// CaseSensitive disables the lower-casing of queries and candidates.
	CaseSensitive bool

	// Flexibility is the maximum Levenshtein distance accepted by the
	// fuzzy pass. Zero disables fuzzy matching entirely; token-containment
	// matches are always included. Negative values are treated as zero.
	Flexibility int

	// Exclusions are removed from the query before matching. Each entry
	// is tried as a regular expression and falls back to literal removal
	// if it does not compile.
	Exclusions []string

	// IgnoreStopWords elides a small closed set of low-information words
	// (the, a, to, on, in, is, of, and) from the query.
	IgnoreStopWords bool

	// Stemming reduces query tokens to base forms using Stemmer, or the
	// default suffix stemmer when Stemmer is nil.
	Stemming bool

	// Stemmer overrides the stemming algorithm. Ignored unless Stemming
	// is set.
	Stemmer Stemmer
}

// DefaultOptions returns the documented defaults: case-insensitive,
// flexibility 2, no exclusions, stop words kept, stemming off.
func DefaultOptions() Options {
	return Options{Flexibility: 2}
}

// SuffixStemmer is the minimal default stemming algorithm: it strips a
// single trailing "s". Words of one rune or less pass through unchanged.
func SuffixStemmer(word string) string {
	if len(word) > 1 && word[len(word)-1] == 's' {
		return word[:len(word)-1]
	}
	return word
}

// Porter2Stemmer returns a Stemmer backed by the porter2 algorithm. Words
// shorter than minLength and words in the exclusion list pass through
// unchanged; minLength values below zero default to 3.
func Porter2Stemmer(minLength int, exclusions ...string) Stemmer {
	if minLength < 0 {
		minLength = 3
	}
	excluded := make(map[string]struct{}, len(exclusions))
	for _, w := range exclusions {
		excluded[w] = struct{}{}
	}
	return func(word string) string {
		if len(word) < minLength {
			return word
		}
		if _, skip := excluded[word]; skip {
			return word
		}
		return porter2.Stem(word)
	}
}

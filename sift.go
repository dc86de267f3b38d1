// Package sift is an in-process fuzzy-matching engine. Given a query and a
// pool of candidate strings — a flat list, a nested key-value structure, or
// a single delimited string — it returns the candidates that match exactly,
// by token containment, or approximately within a configurable edit-distance
// threshold, ranked by closeness to the query.
//
// Searches are pure, synchronous computations over immutable inputs; a
// Searcher is safe for concurrent use as long as the candidate pool is not
// mutated across calls.
package sift

import (
	"fmt"
	"strings"

	"github.com/standardbeagle/sift/internal/engine"
	"github.com/standardbeagle/sift/internal/normalize"
	"github.com/standardbeagle/sift/internal/pool"
)

// Searcher runs searches with a fixed set of options.
type Searcher struct {
	opts Options
}

// New builds a Searcher from opts. The options are copied; later mutation of
// the caller's struct has no effect.
func New(opts Options) *Searcher {
	if opts.Flexibility < 0 {
		opts.Flexibility = 0
	}
	return &Searcher{opts: opts}
}

// Search matches query against source and returns up to limit results,
// ordered by ascending edit distance to the normalized query. Limits below
// one are treated as one.
//
// The result is always non-nil. An empty query or an unsupported source
// yields an empty result plus a *SearchError; an empty result with a nil
// error means nothing matched.
func (s *Searcher) Search(query string, source any, limit int) ([]string, error) {
	if strings.TrimSpace(query) == "" {
		return []string{}, newSearchError(ErrorTypeInvalidQuery, query, ErrInvalidQuery)
	}

	kind, err := pool.Classify(source)
	if err != nil {
		return []string{}, newSearchError(ErrorTypeInvalidSource, query, fmt.Errorf("%w: %v", ErrInvalidSource, err))
	}

	canonical, tokens := normalize.Query(query, normalize.Config{
		CaseSensitive:   s.opts.CaseSensitive,
		Exclusions:      s.opts.Exclusions,
		IgnoreStopWords: s.opts.IgnoreStopWords,
		Stem:            s.stemmer(),
	})
	if canonical == "" {
		// The query normalized away entirely; nothing can match.
		return []string{}, nil
	}

	leaves := pool.Leaves(source, kind)
	matches := engine.MatchAll(leaves, canonical, tokens, s.opts.CaseSensitive, s.opts.Flexibility)
	return engine.Finalize(matches, canonical, limit), nil
}

func (s *Searcher) stemmer() func(string) string {
	if !s.opts.Stemming {
		return nil
	}
	if s.opts.Stemmer != nil {
		return s.opts.Stemmer
	}
	return SuffixStemmer
}

// Search runs a one-off search with DefaultOptions.
func Search(query string, source any, limit int) ([]string, error) {
	return New(DefaultOptions()).Search(query, source, limit)
}

// Tokenize splits input on every occurrence of delimiter, preserving empty
// tokens between consecutive delimiters. An empty delimiter means a single
// space.
func Tokenize(input, delimiter string) []string {
	return normalize.Tokenize(input, delimiter)
}

// Package normalize turns raw queries into the canonical form the match
// pipeline operates on: stop words elided, exclusions stripped, case folded,
// tokenized, and optionally stemmed.
package normalize

import (
	"regexp"
	"strings"
)

// DefaultDelimiter separates tokens when no delimiter is given.
const DefaultDelimiter = " "

// stopWords is the closed set removed when Config.IgnoreStopWords is set.
// Comparison is case-insensitive.
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "to": {}, "on": {},
	"in": {}, "is": {}, "of": {}, "and": {},
}

// Config controls query normalization. The zero value applies no
// transformation beyond trimming and case folding.
type Config struct {
	CaseSensitive   bool
	Exclusions      []string
	IgnoreStopWords bool
	Stem            func(word string) string // nil disables stemming
}

// Tokenize splits input on every occurrence of delimiter. Consecutive
// delimiters yield empty tokens, matching strings.Split semantics; callers
// that want them gone filter afterwards. An empty delimiter means
// DefaultDelimiter.
func Tokenize(input, delimiter string) []string {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}
	return strings.Split(input, delimiter)
}

// Query normalizes a raw query into its canonical string and token list.
// The step order is fixed: stop-word removal, exclusion stripping, trim and
// case fold, tokenization, stemming. Each step sees the previous step's
// output, so e.g. exclusion patterns run against the stop-word-stripped
// query, not the raw one.
func Query(raw string, cfg Config) (canonical string, tokens []string) {
	q := raw
	if cfg.IgnoreStopWords {
		q = stripStopWords(q)
	}
	for _, pattern := range cfg.Exclusions {
		q = exclude(q, pattern)
	}
	q = strings.TrimSpace(q)
	if !cfg.CaseSensitive {
		q = strings.ToLower(q)
	}
	tokens = Tokenize(q, DefaultDelimiter)
	if cfg.Stem != nil {
		for i, tok := range tokens {
			tokens[i] = cfg.Stem(tok)
		}
		q = strings.Join(tokens, DefaultDelimiter)
	}
	return q, tokens
}

func stripStopWords(q string) string {
	toks := Tokenize(q, DefaultDelimiter)
	kept := toks[:0]
	for _, tok := range toks {
		if _, stop := stopWords[strings.ToLower(tok)]; stop {
			continue
		}
		kept = append(kept, tok)
	}
	return strings.Join(kept, DefaultDelimiter)
}

// exclude removes every occurrence of pattern from q. Patterns are tried as
// regular expressions first; one that fails to compile is removed literally.
func exclude(q, pattern string) string {
	if re, err := regexp.Compile(pattern); err == nil {
		return re.ReplaceAllString(q, "")
	}
	return strings.ReplaceAll(q, pattern, "")
}

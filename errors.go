package sift

import (
	"errors"
	"fmt"
)

// ErrorType classifies the recoverable failure modes of a search.
type ErrorType string

const (
	ErrorTypeInvalidQuery  ErrorType = "invalid_query"
	ErrorTypeInvalidSource ErrorType = "invalid_source"
)

// Sentinel conditions for errors.Is checks. Both are recoverable by the
// caller: the accompanying result is always an empty slice, and "no matches"
// is never reported through the error channel.
var (
	ErrInvalidQuery  = errors.New("query must be a non-empty string")
	ErrInvalidSource = errors.New("source must be a sequence, mapping, or string")
)

// SearchError carries the failing query and the underlying condition.
type SearchError struct {
	Type       ErrorType
	Query      string
	Underlying error
}

func newSearchError(errType ErrorType, query string, err error) *SearchError {
	return &SearchError{
		Type:       errType,
		Query:      query,
		Underlying: err,
	}
}

// Error implements the error interface
func (e *SearchError) Error() string {
	return fmt.Sprintf("search failed for query %q: %v", e.Query, e.Underlying)
}

// Unwrap returns the underlying error for errors.Is/As
func (e *SearchError) Unwrap() error {
	return e.Underlying
}

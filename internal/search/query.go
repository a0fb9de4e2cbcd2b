package search

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidQuery is wrapped by every ParseError.
var ErrInvalidQuery = errors.New("invalid query")

// ParseError reports a raw query that could not be turned into a Query.
type ParseError struct {
	Query string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse query %q: %v", e.Query, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Query is a predicate over a single line. The set of implementations is
// closed to this package.
type Query interface {
	// Matches reports whether line satisfies the query.
	Matches(line string) bool
	// ToLower returns the query normalized for case-insensitive matching.
	ToLower() Query
	// Indices returns the non-overlapping byte spans the query occupies in
	// line, in order. Queries that match without consuming text return nil.
	Indices(line string) [][2]int
	String() string

	sealed()
}

// Literal matches lines that contain its text as a contiguous substring.
type Literal struct {
	text string
}

func NewLiteral(text string) Literal {
	return Literal{text: text}
}

func (l Literal) Text() string {
	return l.text
}

func (l Literal) Matches(line string) bool {
	return strings.Contains(line, l.text)
}

func (l Literal) ToLower() Query {
	return Literal{text: strings.ToLower(l.text)}
}

func (l Literal) Indices(line string) [][2]int {
	if l.text == "" {
		return nil
	}
	var out [][2]int
	offset := 0
	for offset <= len(line) {
		idx := strings.Index(line[offset:], l.text)
		if idx < 0 {
			break
		}
		start := offset + idx
		end := start + len(l.text)
		out = append(out, [2]int{start, end})
		offset = end
	}
	return out
}

func (l Literal) String() string {
	return l.text
}

func (Literal) sealed() {}

// NewQuery builds a Query from its raw command-line form.
func NewQuery(raw string) (Query, error) {
	return NewLiteral(raw), nil
}

// NewQueries builds every query in order and stops at the first failure;
// no partial set is ever returned.
func NewQueries(raws []string) ([]Query, error) {
	out := make([]Query, 0, len(raws))
	for _, raw := range raws {
		q, err := NewQuery(raw)
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				return nil, err
			}
			return nil, &ParseError{Query: raw, Err: fmt.Errorf("%w: %v", ErrInvalidQuery, err)}
		}
		out = append(out, q)
	}
	return out, nil
}

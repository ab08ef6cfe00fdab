package rangemap

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCategory indicates a Map was declared without a source or
	// destination category.
	ErrEmptyCategory = errors.New("rangemap: empty category")

	// ErrNegativeLength indicates a rule with a length below zero.
	ErrNegativeLength = errors.New("rangemap: negative rule length")

	// ErrOverflow indicates start+length of a rule does not fit in int64.
	ErrOverflow = errors.New("rangemap: rule range overflows int64")

	// ErrMalformedHeader indicates the first line of a block is not
	// "<from>-to-<to> map:".
	ErrMalformedHeader = errors.New("rangemap: malformed map header")

	// ErrMalformedRule indicates a rule line that is not exactly three integers.
	ErrMalformedRule = errors.New("rangemap: malformed rule line")
)

// Triple is one rule as written in an almanac: the destination start,
// the source start and the shared length of both ranges.
type Triple struct {
	Dest   int64
	Source int64
	Length int64
}

// validate checks the length and that neither end overflows.
func (t Triple) validate() error {
	if t.Length < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeLength, t.Length)
	}
	if t.Source > maxValue-t.Length || t.Dest > maxValue-t.Length {
		return fmt.Errorf("%w: %d %d %d", ErrOverflow, t.Dest, t.Source, t.Length)
	}

	return nil
}

// Rule maps the half-open source range [SourceStart, SourceEnd) onto the
// destination range starting at DestStart.
type Rule struct {
	SourceStart int64
	SourceEnd   int64 // exclusive
	DestStart   int64
}

// Len returns the number of values covered by the rule.
func (r Rule) Len() int64 { return r.SourceEnd - r.SourceStart }

// Contains reports whether v lies in the rule's source range.
func (r Rule) Contains(v int64) bool { return v >= r.SourceStart && v < r.SourceEnd }

// Map is one translation table. It is immutable after construction and
// safe for concurrent use by any number of readers.
type Map struct {
	from  string
	to    string
	rules []Rule // sorted by SourceStart, zero-length rules dropped
}

// ParseError reports a malformed map block. Line and Column are 1-based
// and refer to the enclosing document when the block was parsed with ParseAt.
type ParseError struct {
	Line   int
	Column int
	Msg    string
	Err    error // one of the package sentinels
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("rangemap: line %d:%d: %s", e.Line, e.Column, e.Msg)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *ParseError) Unwrap() error { return e.Err }

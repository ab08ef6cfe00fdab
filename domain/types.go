package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrOddCount indicates a range-form specification with an unpaired start.
	ErrOddCount = errors.New("domain: odd number of range values")

	// ErrNegativeLength indicates a range with a negative length, or End < Start.
	ErrNegativeLength = errors.New("domain: negative range length")

	// ErrOverflow indicates a value or range end outside int64.
	ErrOverflow = errors.New("domain: value overflows int64")

	// ErrInvalidToken indicates a token that is not an integer.
	ErrInvalidToken = errors.New("domain: invalid token")

	// ErrMissingLabel indicates a seed line without its "seeds:" label.
	ErrMissingLabel = errors.New("domain: missing seeds label")
)

// DomainError reports a malformed seed specification.
type DomainError struct {
	Index int    // 0-based position of the offending token, -1 if not token-specific
	Token string // offending token text, if any
	Err   error  // one of the package sentinels
}

// Error implements error.
func (e *DomainError) Error() string {
	if e.Index < 0 {
		return e.Err.Error()
	}

	return fmt.Sprintf("%v: token %d %q", e.Err, e.Index, e.Token)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *DomainError) Unwrap() error { return e.Err }

// Form selects how a flat list of seed numbers is interpreted.
type Form int

const (
	// List treats every number as one value.
	List Form = iota
	// Ranges reads consecutive (start, length) pairs.
	Ranges
)

// String returns "list" or "ranges".
func (f Form) String() string {
	switch f {
	case List:
		return "list"
	case Ranges:
		return "ranges"
	default:
		return fmt.Sprintf("Form(%d)", int(f))
	}
}

// Range is the half-open interval [Start, End).
type Range struct {
	Start int64
	End   int64
}

// Len returns the number of values in r. It is exact for any r with
// End >= Start, including spans wider than math.MaxInt64.
func (r Range) Len() uint64 {
	if r.End <= r.Start {
		return 0
	}

	return uint64(r.End) - uint64(r.Start)
}

// Domain is the immutable set of values to evaluate.
type Domain struct {
	form   Form
	values []int64 // List form
	ranges []Range // Ranges form
}

// Batch is a bounded slice of a Domain handed to one worker.
// Exactly one of Span (when Values is nil) or Values is meaningful.
type Batch struct {
	Span   Range
	Values []int64
}

// Len returns the number of values in the batch.
func (b Batch) Len() uint64 {
	if b.Values != nil {
		return uint64(len(b.Values))
	}

	return b.Span.Len()
}

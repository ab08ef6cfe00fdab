// Package rangemap implements a single translation table of an almanac:
// a set of disjoint source ranges, each shifted by a constant offset into
// a destination category.
//
// What:
//
//   - Map: an immutable table "<from>-to-<to>" built from rules of the form
//     (dest_start, source_start, length). Rules are kept sorted by source start.
//   - Resolve: predecessor search over the sorted rules. A value covered by a
//     rule is shifted by that rule's offset; any other value passes through
//     unchanged (identity fallback).
//   - Parse / ParseAt: build a Map from its textual block:
//
//     seed-to-soil map:
//     50 98 2
//     52 50 48
//
// Rules of one Map are expected to be pairwise disjoint in source space.
// Lookup does not re-check this; Overlaps reports the first offending pair
// for callers that want strict validation.
//
// Complexity:
//
//   - New:     Time O(n log n), Memory O(n)
//   - Resolve: Time O(log n),   Memory O(1)
//
// Errors:
//
//   - ErrEmptyCategory   from or to category is empty
//   - ErrNegativeLength  rule length < 0
//   - ErrOverflow        source or destination end does not fit in int64
//   - ErrMalformedHeader block header is not "<from>-to-<to> map:"
//   - ErrMalformedRule   rule line is not three integers
//   - *ParseError        positional wrapper returned by Parse/ParseAt
package rangemap

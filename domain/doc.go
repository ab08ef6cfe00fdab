// Package domain describes the set of seed values an almanac is evaluated
// over, and slices it into bounded batches for parallel evaluation.
//
// A Domain has one of two forms:
//
//   - List:   discrete values, "seeds: 79 14 55 13" → {79, 14, 55, 13}
//   - Ranges: half-open ranges read as (start, length) pairs,
//     "seeds: 79 14 55 13" → [79,93) ∪ [55,68)
//
// Merge normalizes a Domain so overlapping or adjacent ranges are
// evaluated once. It never changes which values the Domain contains.
//
// Batches yields the Domain in order as batches of at most n values.
// Range batches are spans and are never materialized, so a domain of
// billions of values costs no more memory than its range list.
package domain

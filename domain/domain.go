package domain

import (
	"iter"
	"math"
	"slices"
	"strconv"
)

// FromList returns a List-form Domain over a copy of values.
func FromList(values []int64) *Domain {
	return &Domain{form: List, values: slices.Clone(values)}
}

// FromRanges returns a Ranges-form Domain over a copy of ranges.
// Returns a *DomainError wrapping ErrNegativeLength if any End < Start.
func FromRanges(ranges []Range) (*Domain, error) {
	for i, r := range ranges {
		if r.End < r.Start {
			return nil, &DomainError{Index: i, Token: fmtRange(r), Err: ErrNegativeLength}
		}
	}

	return &Domain{form: Ranges, ranges: slices.Clone(ranges)}, nil
}

// FromPairs reads values as consecutive (start, length) pairs, each
// producing [start, start+length).
// Returns a *DomainError wrapping ErrOddCount, ErrNegativeLength or ErrOverflow.
func FromPairs(values []int64) (*Domain, error) {
	// 1) Every start needs a length.
	if len(values)%2 != 0 {
		last := len(values) - 1
		return nil, &DomainError{Index: last, Token: strconv.FormatInt(values[last], 10), Err: ErrOddCount}
	}

	// 2) Build the ranges, guarding the end computation.
	ranges := make([]Range, 0, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		start, length := values[i], values[i+1]
		if length < 0 {
			return nil, &DomainError{Index: i + 1, Token: strconv.FormatInt(length, 10), Err: ErrNegativeLength}
		}
		if start > math.MaxInt64-length {
			return nil, &DomainError{Index: i + 1, Token: strconv.FormatInt(length, 10), Err: ErrOverflow}
		}
		ranges = append(ranges, Range{Start: start, End: start + length})
	}

	return &Domain{form: Ranges, ranges: ranges}, nil
}

// Form returns the Domain's form.
func (d *Domain) Form() Form { return d.form }

// Values returns a copy of the discrete values of a List-form Domain,
// or nil for a Ranges-form Domain.
func (d *Domain) Values() []int64 {
	if d.form != List {
		return nil
	}

	return slices.Clone(d.values)
}

// Ranges returns the Domain as ranges. A List-form Domain is reported
// as one singleton range per value.
func (d *Domain) Ranges() []Range {
	if d.form == Ranges {
		return slices.Clone(d.ranges)
	}
	out := make([]Range, 0, len(d.values))
	for _, v := range d.values {
		if v == math.MaxInt64 {
			// [MaxInt64, MaxInt64+1) is not representable; keep the value reachable
			// through Values and Batches only.
			continue
		}
		out = append(out, Range{Start: v, End: v + 1})
	}

	return out
}

// Len returns the number of values the Domain yields, saturating at
// math.MaxUint64.
func (d *Domain) Len() uint64 {
	if d.form == List {
		return uint64(len(d.values))
	}
	var n uint64
	for _, r := range d.ranges {
		l := r.Len()
		if n > math.MaxUint64-l {
			return math.MaxUint64
		}
		n += l
	}

	return n
}

// Merge returns a normalized copy of d.
// Ranges are sorted by start and any range starting at or before the
// current merged end (overlapping or adjacent) is folded into it; empty
// ranges are dropped. List values are sorted and deduplicated.
// The set of values is unchanged.
// Complexity: O(n log n).
func (d *Domain) Merge() *Domain {
	if d.form == List {
		vals := slices.Clone(d.values)
		slices.Sort(vals)

		return &Domain{form: List, values: slices.Compact(vals)}
	}

	// 1) Sort a copy by start.
	sorted := slices.Clone(d.ranges)
	slices.SortFunc(sorted, func(a, b Range) int {
		switch {
		case a.Start < b.Start:
			return -1
		case a.Start > b.Start:
			return 1
		default:
			return 0
		}
	})

	// 2) Sweep, extending the last merged range while ranges touch it.
	merged := make([]Range, 0, len(sorted))
	for _, r := range sorted {
		if r.Len() == 0 {
			continue
		}
		if n := len(merged); n > 0 && r.Start <= merged[n-1].End {
			merged[n-1].End = max(merged[n-1].End, r.End)
			continue
		}
		merged = append(merged, r)
	}

	return &Domain{form: Ranges, ranges: merged}
}

// Batches yields d in order as batches of at most size values. A range is
// cut into consecutive spans; discrete values into consecutive sub-slices.
// Empty batches are never yielded. A size below 1 is treated as 1.
func (d *Domain) Batches(size int) iter.Seq[Batch] {
	size = max(size, 1)

	return func(yield func(Batch) bool) {
		if d.form == List {
			for chunk := range slices.Chunk(d.values, size) {
				if !yield(Batch{Values: chunk}) {
					return
				}
			}
			return
		}

		step := uint64(size)
		for _, r := range d.ranges {
			for start := r.Start; start < r.End; {
				end := r.End
				if (Range{Start: start, End: r.End}).Len() > step {
					end = start + int64(step)
				}
				if !yield(Batch{Span: Range{Start: start, End: end}}) {
					return
				}
				start = end
			}
		}
	}
}

func fmtRange(r Range) string {
	return "[" + strconv.FormatInt(r.Start, 10) + "," + strconv.FormatInt(r.End, 10) + ")"
}

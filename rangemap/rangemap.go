package rangemap

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

const maxValue = math.MaxInt64

// New builds a Map translating category from into category to.
// Rules are sorted by source start; zero-length rules are dropped since
// they can never match a value.
// Returns ErrEmptyCategory, ErrNegativeLength or ErrOverflow (wrapped).
// Complexity: O(n log n).
func New(from, to string, triples ...Triple) (*Map, error) {
	// 1) Both ends of the edge must be named.
	if from == "" || to == "" {
		return nil, fmt.Errorf("%w: %q-to-%q", ErrEmptyCategory, from, to)
	}

	// 2) Validate and convert every triple into a half-open rule.
	rules := make([]Rule, 0, len(triples))
	for i, t := range triples {
		if err := t.validate(); err != nil {
			return nil, fmt.Errorf("rangemap: %s-to-%s rule %d: %w", from, to, i, err)
		}
		if t.Length == 0 {
			continue
		}
		rules = append(rules, Rule{
			SourceStart: t.Source,
			SourceEnd:   t.Source + t.Length,
			DestStart:   t.Dest,
		})
	}

	// 3) Predecessor search in Resolve relies on this order.
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].SourceStart < rules[j].SourceStart
	})

	return &Map{from: from, to: to, rules: rules}, nil
}

// From returns the source category.
func (m *Map) From() string { return m.from }

// To returns the destination category.
func (m *Map) To() string { return m.to }

// Len returns the number of (non-empty) rules.
func (m *Map) Len() int { return len(m.rules) }

// Rules returns a copy of the rules in source order.
func (m *Map) Rules() []Rule {
	out := make([]Rule, len(m.rules))
	copy(out, m.rules)

	return out
}

// Resolve translates v into the destination category.
// It finds the rule with the greatest SourceStart <= v; if v lies inside
// that rule the offset is applied, otherwise v is returned unchanged.
// Complexity: O(log n).
func (m *Map) Resolve(v int64) int64 {
	// i is the first rule starting strictly after v; its predecessor is the candidate.
	i := sort.Search(len(m.rules), func(i int) bool {
		return m.rules[i].SourceStart > v
	})
	if i == 0 {
		return v
	}
	r := m.rules[i-1]
	if v >= r.SourceEnd {
		return v
	}

	return r.DestStart + (v - r.SourceStart)
}

// Overlaps reports the first pair of rules whose source ranges intersect.
// Well-formed almanacs never produce one.
func (m *Map) Overlaps() (a, b Rule, ok bool) {
	for i := 1; i < len(m.rules); i++ {
		if m.rules[i].SourceStart < m.rules[i-1].SourceEnd {
			return m.rules[i-1], m.rules[i], true
		}
	}

	return Rule{}, Rule{}, false
}

// String renders the Map back into its block form, rules in source order.
func (m *Map) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s-to-%s map:", m.from, m.to)
	for _, r := range m.rules {
		fmt.Fprintf(&sb, "\n%d %d %d", r.DestStart, r.SourceStart, r.Len())
	}

	return sb.String()
}

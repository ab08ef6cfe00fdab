package translate

import (
	"fmt"
	"strings"

	"github.com/benvansleen/almanac/rangemap"
)

// New indexes maps by source category.
// Returns ErrNilMap for a nil table, *DuplicateCategoryError when two
// tables share a source category, and ErrOverlappingRules when
// WithStrictRules is set and a table's rules intersect.
// Complexity: O(M), plus O(R) per table under WithStrictRules.
func New(maps []*rangemap.Map, opts ...Option) (*Graph, error) {
	// 1) Apply options.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 2) Index every table, refusing ambiguous categories.
	g := &Graph{
		maps:  make(map[string]*rangemap.Map, len(maps)),
		order: make([]string, 0, len(maps)),
	}
	for i, m := range maps {
		if m == nil {
			return nil, fmt.Errorf("%w at index %d", ErrNilMap, i)
		}
		if prev, dup := g.maps[m.From()]; dup {
			return nil, &DuplicateCategoryError{Category: m.From(), First: prev.To(), Second: m.To()}
		}
		if o.StrictRules {
			if a, b, ok := m.Overlaps(); ok {
				return nil, fmt.Errorf("%w in %s-to-%s: [%d,%d) and [%d,%d)",
					ErrOverlappingRules, m.From(), m.To(),
					a.SourceStart, a.SourceEnd, b.SourceStart, b.SourceEnd)
			}
		}
		g.maps[m.From()] = m
		g.order = append(g.order, m.From())
	}

	return g, nil
}

// Len returns the number of tables.
func (g *Graph) Len() int { return len(g.maps) }

// Map returns the table whose source category is category.
func (g *Graph) Map(category string) (*rangemap.Map, bool) {
	m, ok := g.maps[category]

	return m, ok
}

// Categories returns the source categories in declaration order.
func (g *Graph) Categories() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// ResolveChain resolves v from category root: while a table exists for the
// current category, apply it and move to its destination category.
// A well-formed graph terminates within Len() hops; exceeding that bound
// means the walk is cycling, which is a configuration fault and panics.
func (g *Graph) ResolveChain(root string, v int64) int64 {
	category := root
	for hops := 0; ; hops++ {
		m, ok := g.maps[category]
		if !ok {
			return v
		}
		if hops >= len(g.maps) {
			panic(fmt.Sprintf("translate: walk from %q exceeds %d hops, graph has a cycle", root, len(g.maps)))
		}
		v = m.Resolve(v)
		category = m.To()
	}
}

// Chain compiles the walk from root into a Chain.
// It marks each category as visited (Gray) on the way down; meeting a
// Gray category again closes a cycle and returns ErrCycleDetected with the
// offending path. A root without a table yields the identity Chain.
// Complexity: O(H).
func (g *Graph) Chain(root string) (Chain, error) {
	state := make(map[string]bool, len(g.maps)) // category → on current path
	path := []string{root}
	c := Chain{root: root}

	for category := root; ; {
		m, ok := g.maps[category]
		if !ok {
			return c, nil
		}
		state[category] = true
		c.maps = append(c.maps, m)

		next := m.To()
		path = append(path, next)
		if state[next] {
			return Chain{}, fmt.Errorf("%w: %s", ErrCycleDetected, strings.Join(path, " -> "))
		}
		category = next
	}
}

// Resolve applies every table of the chain to v in order.
func (c Chain) Resolve(v int64) int64 {
	for _, m := range c.maps {
		v = m.Resolve(v)
	}

	return v
}

// Trace resolves v and records the value at every stage, aligned with
// Stages: out[0] is v, out[len(out)-1] the final value.
func (c Chain) Trace(v int64) []int64 {
	out := make([]int64, 0, len(c.maps)+1)
	out = append(out, v)
	for _, m := range c.maps {
		v = m.Resolve(v)
		out = append(out, v)
	}

	return out
}

// Len returns the number of hops.
func (c Chain) Len() int { return len(c.maps) }

// Stages returns the categories visited: the root followed by each
// table's destination.
func (c Chain) Stages() []string {
	if c.root == "" {
		return nil
	}
	out := make([]string, 0, len(c.maps)+1)
	out = append(out, c.root)
	for _, m := range c.maps {
		out = append(out, m.To())
	}

	return out
}

// Package translate assembles rangemap.Map tables into a translation graph
// and resolves values through it.
//
// The graph is a small directed graph: every category with a table has
// exactly one outgoing edge (the table's destination category), and a
// category without a table is terminal. Resolving a value from a root
// category walks that edge sequence until a terminal category is reached.
//
// What:
//
//   - New / Parse / FromBlocks: build a Graph from tables or from almanac
//     text (blocks separated by blank lines). Two tables with the same
//     source category make the walk ambiguous and are rejected with
//     *DuplicateCategoryError.
//   - ResolveChain: walk from a root category, applying each table in turn.
//   - Chain: the walk compiled once into an ordered slice of tables, with
//     cycle detection. Workers resolving millions of values use a Chain
//     instead of repeated map lookups by category name.
//
// A Graph is immutable after construction and safe for concurrent reads.
//
// Complexity:
//
//   - New:          Time O(M), Memory O(M)           (M = #tables)
//   - ResolveChain: Time O(H·log R)                  (H = hops, R = rules per table)
//   - Chain:        Time O(H),  Chain.Resolve O(H·log R)
//
// Errors:
//
//   - ErrNilMap               nil table passed to New
//   - ErrDuplicateCategory    two tables share a source category
//   - ErrOverlappingRules     WithStrictRules and a table has overlapping rules
//   - ErrCycleDetected        Chain found a category twice on the walk
//   - *rangemap.ParseError    malformed block passed to Parse/FromBlocks
package translate

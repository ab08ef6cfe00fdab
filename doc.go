// Package almanac resolves seed values through a chain of range-offset
// translation tables and finds the lowest reachable location.
//
// An almanac is a seed line followed by blank-line separated tables:
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
//	soil-to-fertilizer map:
//	...
//
// Every table translates one category into the next. A seed is resolved
// by starting at the "seed" category and applying tables until a category
// without a table (usually "location") is reached.
//
// Under the hood, the work is split across subpackages:
//
//	rangemap/  - one table: sorted rules, O(log n) lookup, block parsing
//	translate/ - tables indexed by category, chain compilation, cycle detection
//	domain/    - seed values as a list or as ranges, merging, batching
//	pipeline/  - producer / worker pool / reducer with a bounded queue
//
// Entry points:
//
//	ResolveSingle(v, g)                  - serial walk of one seed
//	ResolveDomainMinimum(ctx, d, g, ...) - parallel minimum over a domain
//	Parse(r) / LowestLocation(ctx, a, form, ...)
//
// The seed line can be read two ways (domain.Form): as discrete seeds, or
// as (start, length) pairs describing ranges that may hold billions of
// seeds. The range form is evaluated by the pipeline in bounded memory.
package almanac

package translate

import (
	"errors"
	"fmt"

	"github.com/benvansleen/almanac/rangemap"
)

// Root is the category every almanac walk starts from.
const Root = "seed"

var (
	// ErrNilMap indicates a nil *rangemap.Map was passed to New.
	ErrNilMap = errors.New("translate: nil map")

	// ErrDuplicateCategory indicates two tables declare the same source category.
	ErrDuplicateCategory = errors.New("translate: duplicate source category")

	// ErrOverlappingRules indicates, under WithStrictRules, a table whose
	// rules intersect in source space.
	ErrOverlappingRules = errors.New("translate: overlapping rules")

	// ErrCycleDetected indicates the walk from a root revisits a category.
	ErrCycleDetected = errors.New("translate: cycle detected")
)

// DuplicateCategoryError names the category declared by more than one table.
type DuplicateCategoryError struct {
	Category string
	First    string // destination of the first table
	Second   string // destination of the rejected table
}

// Error implements error.
func (e *DuplicateCategoryError) Error() string {
	return fmt.Sprintf("translate: category %q mapped twice (to %q and %q)", e.Category, e.First, e.Second)
}

// Unwrap lets errors.Is match ErrDuplicateCategory.
func (e *DuplicateCategoryError) Unwrap() error { return ErrDuplicateCategory }

// Option configures Graph construction.
type Option func(*Options)

// Options holds construction settings.
type Options struct {
	// StrictRules rejects tables whose rules overlap. Without it, lookup
	// in an overlapping table uses the rule with the greatest start <= v.
	StrictRules bool
}

// DefaultOptions returns Options with StrictRules disabled.
func DefaultOptions() Options {
	return Options{StrictRules: false}
}

// WithStrictRules returns an Option that enables overlap validation.
func WithStrictRules() Option {
	return func(o *Options) { o.StrictRules = true }
}

// Graph indexes tables by source category.
type Graph struct {
	maps  map[string]*rangemap.Map // source category → table
	order []string                 // source categories in declaration order
}

// Chain is the compiled walk from one root category: the tables to apply,
// in order. The zero Chain is the identity.
type Chain struct {
	root string
	maps []*rangemap.Map
}

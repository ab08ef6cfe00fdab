package almanac

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/benvansleen/almanac/domain"
	"github.com/benvansleen/almanac/pipeline"
	"github.com/benvansleen/almanac/translate"
)

// ErrNoSeeds indicates a document without a seed line.
var ErrNoSeeds = errors.New("almanac: no seeds block")

// Almanac is a parsed document: the seed line and the translation graph.
type Almanac struct {
	// Seeds is the raw seed block, interpreted lazily by Domain since its
	// meaning depends on the requested form.
	Seeds string

	// Graph holds every table of the document.
	Graph *translate.Graph
}

// Parse reads a full almanac. The first block must be the seed line, every
// following block a table. The seed tokens are checked here so that a
// malformed document fails before any evaluation.
// Returns ErrNoSeeds, *domain.DomainError, *rangemap.ParseError or
// *translate.DuplicateCategoryError.
func Parse(r io.Reader, opts ...translate.Option) (*Almanac, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("almanac: read: %w", err)
	}

	// 1) Seeds first.
	blocks := translate.Blocks(string(data))
	if len(blocks) == 0 {
		return nil, ErrNoSeeds
	}
	if _, err := domain.ParseSeeds(blocks[0].Text, domain.List); err != nil {
		return nil, fmt.Errorf("almanac: line %d: %w", blocks[0].Line, err)
	}

	// 2) Then every table.
	g, err := translate.FromBlocks(blocks[1:], opts...)
	if err != nil {
		return nil, err
	}

	return &Almanac{Seeds: blocks[0].Text, Graph: g}, nil
}

// Domain interprets the seed line in the given form, merging overlapping
// ranges when merge is set.
func (a *Almanac) Domain(form domain.Form, merge bool) (*domain.Domain, error) {
	d, err := domain.ParseSeeds(a.Seeds, form)
	if err != nil {
		return nil, err
	}
	if merge {
		d = d.Merge()
	}

	return d, nil
}

// ResolveSingle walks v from the root category through g. It panics if
// the walk cycles; compile with g.Chain first to get an error instead.
func ResolveSingle(v int64, g *translate.Graph) int64 {
	return g.ResolveChain(translate.Root, v)
}

// ResolveDomainMinimum returns the minimum of ResolveSingle over d,
// computed by the batch pipeline. The chain from the root is compiled
// before any goroutine starts, so a cyclic graph fails with
// translate.ErrCycleDetected.
func ResolveDomainMinimum(ctx context.Context, d *domain.Domain, g *translate.Graph, opts ...pipeline.Option) (int64, error) {
	c, err := g.Chain(translate.Root)
	if err != nil {
		return 0, err
	}
	res, err := pipeline.Run(ctx, d, c, opts...)
	if err != nil {
		return 0, err
	}

	return res.Min, nil
}

// LowestLocation evaluates the almanac's seed line in the given form.
// List form resolves each seed serially; Ranges form merges the ranges
// and runs the pipeline.
func LowestLocation(ctx context.Context, a *Almanac, form domain.Form, opts ...pipeline.Option) (int64, error) {
	d, err := a.Domain(form, form == domain.Ranges)
	if err != nil {
		return 0, err
	}
	if form == domain.Ranges {
		return ResolveDomainMinimum(ctx, d, a.Graph, opts...)
	}

	// Fail on a cycle rather than panicking inside ResolveSingle.
	if _, err := a.Graph.Chain(translate.Root); err != nil {
		return 0, err
	}
	values := d.Values()
	if len(values) == 0 {
		return 0, pipeline.ErrEmptyDomain
	}
	lowest := int64(math.MaxInt64)
	for _, v := range values {
		lowest = min(lowest, ResolveSingle(v, a.Graph))
	}

	return lowest, nil
}

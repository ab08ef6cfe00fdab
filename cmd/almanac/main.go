// Command almanac finds the lowest location reachable from an almanac's seeds.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/ulikunitz/xz"

	"github.com/benvansleen/almanac"
	"github.com/benvansleen/almanac/domain"
	"github.com/benvansleen/almanac/internal/logging"
	"github.com/benvansleen/almanac/pipeline"
	"github.com/benvansleen/almanac/translate"
)

// cli defines the command-line interface for almanac.
type cli struct {
	// Global flags
	LogLevel  string `name:"log-level" default:"warn" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)"`
	LogFormat string `name:"log-format" default:"text" enum:"text,json" help:"Log format (text, json)"`

	Lowest  LowestCmd  `cmd:"" help:"Print the lowest location reachable from the seeds"`
	Resolve ResolveCmd `cmd:"" help:"Print the walk of individual seeds through every table"`
	Stages  StagesCmd  `cmd:"" help:"Print the category chain starting at seed"`
}

// runContext is bound into every command's Run method.
type runContext struct {
	ctx    context.Context
	out    io.Writer
	logger *slog.Logger
}

// InputFlags are shared by every command.
type InputFlags struct {
	Input  string `arg:"" optional:"" default:"-" help:"Almanac file (.xz accepted), - for stdin"`
	Strict bool   `help:"Reject tables with overlapping rules"`
}

// load opens, decompresses if needed, and parses the almanac.
func (f InputFlags) load() (*almanac.Almanac, error) {
	r, err := openInput(f.Input)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	var opts []translate.Option
	if f.Strict {
		opts = append(opts, translate.WithStrictRules())
	}

	return almanac.Parse(r, opts...)
}

// openInput returns stdin for "-", an xz-decompressing reader for
// "*.xz", and the plain file otherwise.
func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	if !strings.HasSuffix(path, ".xz") {
		return f, nil
	}
	xzr, err := xz.NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("xz reader: %w", err)
	}

	return struct {
		io.Reader
		io.Closer
	}{xzr, f}, nil
}

// LowestCmd evaluates the seed line.
type LowestCmd struct {
	InputFlags `embed:""`

	Ranges    bool `short:"r" help:"Read seeds as (start, length) pairs"`
	BatchSize int  `name:"batch-size" default:"10000" help:"Values per batch"`
	Workers   int  `short:"w" default:"0" help:"Worker goroutines (0 = one per CPU)"`
}

// Run prints the lowest location.
func (c *LowestCmd) Run(rc *runContext) error {
	a, err := c.load()
	if err != nil {
		return err
	}

	form := domain.List
	if c.Ranges {
		form = domain.Ranges
	}
	opts := []pipeline.Option{
		pipeline.WithBatchSize(c.BatchSize),
		pipeline.WithLogger(rc.logger),
	}
	if c.Workers > 0 {
		opts = append(opts, pipeline.WithWorkers(c.Workers))
	}

	started := time.Now()
	lowest, err := almanac.LowestLocation(rc.ctx, a, form, opts...)
	if err != nil {
		return err
	}
	rc.logger.Info("lowest location", "form", form.String(), "value", lowest, "elapsed", time.Since(started))
	_, err = fmt.Fprintln(rc.out, lowest)

	return err
}

// ResolveCmd prints per-stage values.
type ResolveCmd struct {
	InputFlags `embed:""`

	Seeds []int64 `name:"seed" short:"s" help:"Seeds to resolve (defaults to the almanac's seed list)"`
}

// Run prints one line per seed: category value pairs joined by arrows.
func (c *ResolveCmd) Run(rc *runContext) error {
	a, err := c.load()
	if err != nil {
		return err
	}
	chain, err := a.Graph.Chain(translate.Root)
	if err != nil {
		return err
	}

	seeds := c.Seeds
	if len(seeds) == 0 {
		d, err := a.Domain(domain.List, false)
		if err != nil {
			return err
		}
		seeds = d.Values()
	}

	stages := chain.Stages()
	for _, seed := range seeds {
		steps := make([]string, 0, len(stages))
		for i, v := range chain.Trace(seed) {
			steps = append(steps, fmt.Sprintf("%s %d", stages[i], v))
		}
		if _, err := fmt.Fprintln(rc.out, strings.Join(steps, " -> ")); err != nil {
			return err
		}
	}

	return nil
}

// StagesCmd prints the chain.
type StagesCmd struct {
	InputFlags `embed:""`
}

// Run prints one line per hop with the number of rules of its table.
func (c *StagesCmd) Run(rc *runContext) error {
	a, err := c.load()
	if err != nil {
		return err
	}
	chain, err := a.Graph.Chain(translate.Root)
	if err != nil {
		return err
	}

	stages := chain.Stages()
	for i := 0; i+1 < len(stages); i++ {
		m, _ := a.Graph.Map(stages[i])
		if _, err := fmt.Fprintf(rc.out, "%s -> %s (%d rules)\n", stages[i], stages[i+1], m.Len()); err != nil {
			return err
		}
	}

	return nil
}

// setupLogger maps the global flags onto a logger on stderr.
func (c *cli) setupLogger() (*slog.Logger, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logging.ParseFormat(c.LogFormat)
	if err != nil {
		return nil, err
	}

	return logging.Init(os.Stderr, level, format), nil
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("almanac"),
		kong.Description("Resolve seeds through almanac tables and find the lowest location"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	logger, err := c.setupLogger()
	kctx.FatalIfErrorf(err)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = kctx.Run(&runContext{ctx: ctx, out: os.Stdout, logger: logger})
	kctx.FatalIfErrorf(err)
}

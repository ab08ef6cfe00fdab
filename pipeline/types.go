package pipeline

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/benvansleen/almanac/domain"
)

const (
	// DefaultBatchSize is the number of values handed to a worker at once.
	DefaultBatchSize = 10_000

	// QueueFactor sizes the default queue: QueueFactor × BatchSize batches.
	QueueFactor = 10
)

var (
	// ErrEmptyDomain is returned when there is no value to minimize over.
	ErrEmptyDomain = errors.New("pipeline: empty domain")

	// ErrNilResolver is returned when Run is given a nil Resolver.
	ErrNilResolver = errors.New("pipeline: nil resolver")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pipeline: invalid option supplied")
)

// Resolver is the minimal capability the pipeline needs: a pure,
// concurrency-safe function from seed value to final value.
type Resolver interface {
	Resolve(v int64) int64
}

// ResolverFunc adapts a plain function to Resolver.
type ResolverFunc func(v int64) int64

// Resolve calls f(v).
func (f ResolverFunc) Resolve(v int64) int64 { return f(v) }

// Option configures Run via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by Run.
type Option func(*Options)

// Options holds pipeline parameters and hooks.
type Options struct {
	// BatchSize bounds the number of values per batch.
	BatchSize int

	// Workers is the number of resolving goroutines.
	Workers int

	// QueueCapacity is the number of batches the queue holds before the
	// producer blocks. Zero means QueueFactor × BatchSize.
	QueueCapacity int

	// Logger receives debug-level progress records.
	Logger *slog.Logger

	// OnEnqueue is called by the producer after a batch entered the queue.
	OnEnqueue func(b domain.Batch)

	// OnResult is called by the reducer for every local minimum received.
	OnResult func(local int64)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - BatchSize = DefaultBatchSize
//   - Workers = runtime.GOMAXPROCS(0)
//   - QueueCapacity = 0 (QueueFactor × BatchSize)
//   - Logger = slog.Default()
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		BatchSize:     DefaultBatchSize,
		Workers:       runtime.GOMAXPROCS(0),
		QueueCapacity: 0,
		Logger:        slog.Default(),
		OnEnqueue:     func(domain.Batch) {},
		OnResult:      func(int64) {},
		err:           nil,
	}
}

// WithBatchSize sets the maximum number of values per batch (n >= 1).
func WithBatchSize(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: BatchSize must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.BatchSize = n
	}
}

// WithWorkers sets the number of worker goroutines (n >= 1).
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithQueueCapacity sets the batch queue capacity.
//
//	n > 0:  queue holds n batches
//	n == 0: QueueFactor × BatchSize
//	n < 0:  invalid option → ErrOptionViolation
func WithQueueCapacity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: QueueCapacity cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.QueueCapacity = n
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnEnqueue registers a callback run by the producer for every batch
// it enqueued.
func WithOnEnqueue(fn func(b domain.Batch)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnResult registers a callback run by the reducer for every local minimum.
func WithOnResult(fn func(local int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnResult = fn
		}
	}
}

// Result describes one completed run.
type Result struct {
	Min     int64         // global minimum
	Batches uint64        // batches produced
	Values  uint64        // values resolved
	Workers int           // worker goroutines used
	Elapsed time.Duration // wall time of the run
	RunID   string        // run_id attached to log records
}

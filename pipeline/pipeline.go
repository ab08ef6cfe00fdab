package pipeline

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/benvansleen/almanac/domain"
	"github.com/benvansleen/almanac/internal/logging"
)

// Run resolves every value of d through r and returns the minimum.
// Configuration errors, a nil resolver and an empty domain are reported
// before any goroutine starts. Cancelling ctx stops the producer and the
// workers at their next queue operation and Run returns ctx.Err().
func Run(ctx context.Context, d *domain.Domain, r Resolver, opts ...Option) (Result, error) {
	// 1) Apply and validate options.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}
	if o.QueueCapacity == 0 {
		o.QueueCapacity = QueueFactor * o.BatchSize
	}
	if r == nil {
		return Result{}, ErrNilResolver
	}
	if d == nil || d.Len() == 0 {
		return Result{}, ErrEmptyDomain
	}

	logger, runID := logging.WithRunID(o.Logger)
	started := time.Now()
	logger.Debug("pipeline start",
		"values", d.Len(), "batch_size", o.BatchSize,
		"workers", o.Workers, "queue_capacity", o.QueueCapacity)

	batches := make(chan domain.Batch, o.QueueCapacity)
	results := make(chan int64, o.Workers)

	// 2) Producer: blocks on a full queue.
	var (
		produced, values uint64
		pwg              sync.WaitGroup
	)
	pwg.Add(1)
	go func() {
		defer pwg.Done()
		defer close(batches)
		for b := range d.Batches(o.BatchSize) {
			select {
			case batches <- b:
			case <-ctx.Done():
				return
			}
			produced++
			values += b.Len()
			o.OnEnqueue(b)
		}
		logger.Debug("producer done", "batches", produced)
	}()

	// 3) Workers: one local minimum per batch.
	var wg sync.WaitGroup
	wg.Add(o.Workers)
	for w := 0; w < o.Workers; w++ {
		go func(worker int) {
			defer wg.Done()
			handled := 0
			for {
				select {
				case <-ctx.Done():
					return
				case b, ok := <-batches:
					if !ok {
						logger.Debug("worker done", "worker", worker, "batches", handled)
						return
					}
					local := localMin(b, r)
					handled++
					select {
					case results <- local:
					case <-ctx.Done():
						return
					}
				}
			}
		}(w)
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	// 4) Reducer: runs until every worker has exited.
	res := Result{Min: math.MaxInt64, Workers: o.Workers, RunID: runID}
	for local := range results {
		o.OnResult(local)
		res.Min = min(res.Min, local)
	}
	pwg.Wait()

	if err := ctx.Err(); err != nil {
		logger.Debug("pipeline canceled", "error", err)
		return Result{}, err
	}

	res.Batches, res.Values = produced, values
	res.Elapsed = time.Since(started)
	logger.Debug("pipeline done",
		"min", res.Min, "batches", res.Batches, "values", res.Values, "elapsed", res.Elapsed)

	return res, nil
}

// localMin resolves every value of b. An empty batch yields math.MaxInt64,
// the identity of min.
func localMin(b domain.Batch, r Resolver) int64 {
	m := int64(math.MaxInt64)
	if b.Values != nil {
		for _, v := range b.Values {
			m = min(m, r.Resolve(v))
		}
		return m
	}
	for v := b.Span.Start; v < b.Span.End; v++ {
		m = min(m, r.Resolve(v))
	}

	return m
}

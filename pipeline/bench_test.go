package pipeline_test

import (
	"context"
	"fmt"
	"runtime"
	"testing"

	"github.com/benvansleen/almanac/internal/logging"
	"github.com/benvansleen/almanac/pipeline"
)

// BenchmarkRun_Workers resolves one million values through the reference
// chain with increasing worker counts.
func BenchmarkRun_Workers(b *testing.B) {
	c := sampleChain(b)
	d := pairs(b, 0, 1_000_000)

	for _, workers := range []int{1, 2, runtime.GOMAXPROCS(0)} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := pipeline.Run(context.Background(), d, c,
					pipeline.WithWorkers(workers),
					pipeline.WithLogger(logging.Discard()),
				); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

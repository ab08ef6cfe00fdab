// Package pipeline finds the minimum resolved value over a domain.Domain
// with a bounded-concurrency batch pipeline.
//
// Roles:
//
//   - producer: one goroutine slicing the Domain into batches of at most
//     BatchSize values and sending them into a bounded queue. A full queue
//     blocks the producer (backpressure), so memory stays a small multiple
//     of the queue size however large the Domain is.
//   - workers:  Workers goroutines receiving batches, resolving every value
//     through the shared read-only Resolver and emitting one local minimum
//     per batch.
//   - reducer:  the calling goroutine, folding local minima into the global
//     minimum until every worker has exited.
//
// Minimum is commutative and associative, so the result does not depend
// on batch size, worker count or scheduling.
//
// The only contract a resolver has to meet is Resolver (Resolve). A
// translate.Chain satisfies it; tests substitute fakes.
package pipeline

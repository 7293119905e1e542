// Package parallel provides row-band parallelism for the filter engine.
//
// An image is split into horizontal bands of whole rows. Bands are disjoint
// in the output, so workers write without synchronization; the only
// coordination is a join-all at the end of each call. Key pieces:
//
//   - WorkerPool: a fixed set of goroutines sharing one queue, running
//     batches of fallible work with cancel-on-first-error
//   - SplitRows: partitioning of [0, height) into balanced bands
//   - Run: executes one function per band on a pool
//
// Thread safety: WorkerPool is safe for concurrent use. Close must not race
// with ExecuteAll.
package parallel

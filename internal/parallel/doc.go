// Package parallel provides the executors that run the per-range tasks of
// a parallel averaging pass.
//
// Both executors implement ExecuteAll(work []func()), which returns only
// once every task has finished:
//
//   - Scoped spawns one goroutine per task for each call.
//   - WorkerPool keeps a fixed set of goroutines alive across calls.
//
// Executors never inspect the tasks. Memory safety of a pass comes from the
// tasks writing disjoint rows, not from the executor.
package parallel

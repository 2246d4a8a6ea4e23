// Package pool provides a small, generic, fixed-size worker pool with
// future-based result collection.
//
// A Pool owns a FIFO work queue and a fixed set of worker goroutines,
// all spawned at construction. Callers hand the pool arbitrary units of
// work through the generic Submit function and immediately receive a
// Future for the eventual result; submission never waits for execution.
//
// # Basic Usage
//
//	p, err := pool.New(4)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer p.Shutdown(0)
//
//	future, err := pool.Submit(p, func(ctx context.Context) (int, error) {
//	    return expensiveComputation(), nil
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	value, err := future.Get() // blocks until the worker finishes
//
// # Ordering
//
// Tasks become eligible for execution in strict submission order. With a
// single worker they also finish in that order; with several workers
// completion order is unspecified because tasks run in parallel.
//
// # Shutdown
//
// Shutdown drains: tasks already queued when shutdown is requested still
// run to completion, while new submissions fail with ErrPoolStopped.
// Shutdown blocks until every worker has exited and is safe to call more
// than once.
//
// # Error Handling
//
// A failure inside a task, including a panic, is captured into that
// task's Future and surfaces from Get. It never crashes the worker or
// affects sibling tasks. Pool-level errors (ErrPoolStopped,
// ErrInvalidWorkerCount, ErrShutdownTimeout) are returned synchronously
// from the operation that hit them.
package pool

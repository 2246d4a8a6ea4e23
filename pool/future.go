package pool

import (
	"context"
	"sync"
	"time"
)

// Result carries a settled task outcome through a future's result
// channel.
//
// Type parameters:
//   - R: The type of the result value
type Result[R any] struct {
	Value R
	Err   error
}

// Future is the caller-side handle for one submitted task. The executing
// worker writes the outcome into the result channel exactly once; any
// number of readers may then observe the same settled value through Get,
// GetWithContext, or TryGet.
//
// Type parameters:
//   - R: The result type produced by the task
type Future[R any] struct {
	// result is the one-shot handoff cell between worker and readers.
	// Capacity 1 so the producing worker never blocks on delivery.
	result chan Result[R]

	// done is closed once the result has been received and cached.
	done chan struct{}

	once  sync.Once
	value R
	err   error
}

func newFuture[R any]() *Future[R] {
	return &Future[R]{
		result: make(chan Result[R], 1),
		done:   make(chan struct{}),
	}
}

// settle caches the outcome and releases everyone waiting on done.
// Only the first caller wins; the result channel carries a single value,
// so a second settle with a different outcome is unreachable.
func (f *Future[R]) settle(r Result[R]) {
	f.once.Do(func() {
		f.value = r.Value
		f.err = r.Err
		close(f.done)
	})
}

// Get blocks until the task has completed and returns its value or the
// captured failure. Repeated calls return the same settled outcome.
//
// Example:
//
//	future, _ := pool.Submit(p, work)
//	value, err := future.Get()
func (f *Future[R]) Get() (R, error) {
	select {
	case r := <-f.result:
		f.settle(r)
	case <-f.done:
	}
	return f.value, f.err
}

// GetWithContext behaves like Get but gives up when ctx is cancelled or
// times out. Abandoning the wait only affects this caller; the task
// still runs to completion and the result stays retrievable.
func (f *Future[R]) GetWithContext(ctx context.Context) (R, error) {
	select {
	case r := <-f.result:
		f.settle(r)
		return f.value, f.err
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero R
		return zero, ctx.Err()
	}
}

// GetWithTimeout is a convenience wrapper around GetWithContext with a
// deadline of now+timeout.
func (f *Future[R]) GetWithTimeout(timeout time.Duration) (R, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return f.GetWithContext(ctx)
}

// TryGet returns the result without blocking. ready is false while the
// task is still running.
func (f *Future[R]) TryGet() (R, error, bool) {
	select {
	case r := <-f.result:
		f.settle(r)
		return f.value, f.err, true
	case <-f.done:
		return f.value, f.err, true
	default:
		var zero R
		return zero, nil, false
	}
}

// IsReady reports whether the task outcome is already available, i.e. a
// Get would return immediately.
func (f *Future[R]) IsReady() bool {
	select {
	case <-f.done:
		return true
	default:
		return len(f.result) > 0
	}
}

// Done returns a channel that is closed once the result has been
// observed and cached by any reader. Useful in select statements:
//
//	go future.Get()
//	select {
//	case <-future.Done():
//	    value, _ := future.Get()
//	case <-time.After(timeout):
//	}
func (f *Future[R]) Done() <-chan struct{} {
	return f.done
}

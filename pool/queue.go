package pool

import (
	"context"
	"sync"
)

// envelope carries one type-erased unit of work through the queue.
// Submit binds the closure to its typed future before boxing, so by the
// time an envelope reaches a worker it only needs to be invoked.
type envelope struct {
	invoke func(ctx context.Context)
}

// taskQueue is the shared FIFO work queue. A single mutex serializes all
// access; the condition variable parks idle workers until either work
// arrives or the queue is closed. The lock is held only for O(1) slice
// operations, never across task execution.
type taskQueue struct {
	mu       sync.Mutex
	notEmpty *sync.Cond
	items    []*envelope
	stopped  bool
}

func newTaskQueue() *taskQueue {
	q := &taskQueue{}
	q.notEmpty = sync.NewCond(&q.mu)
	return q
}

// push appends an envelope to the tail and wakes one waiting worker.
// After close has been called the envelope is not enqueued and
// ErrPoolStopped is returned.
func (q *taskQueue) push(e *envelope) error {
	q.mu.Lock()
	if q.stopped {
		q.mu.Unlock()
		return ErrPoolStopped
	}
	q.items = append(q.items, e)
	q.mu.Unlock()

	q.notEmpty.Signal()
	return nil
}

// popBlocking removes and returns the head envelope, waiting while the
// queue is empty and still open. It returns ok=false only when the queue
// is both closed and fully drained, which is the terminal signal for a
// worker to exit.
func (q *taskQueue) popBlocking() (*envelope, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.items) == 0 && !q.stopped {
		q.notEmpty.Wait()
	}

	if len(q.items) == 0 {
		return nil, false
	}

	e := q.items[0]
	q.items[0] = nil
	q.items = q.items[1:]
	return e, true
}

// close marks the queue stopped and wakes every waiting worker so they
// can drain the remaining items and exit. Closing an already closed
// queue is a no-op.
func (q *taskQueue) close() {
	q.mu.Lock()
	q.stopped = true
	q.mu.Unlock()

	q.notEmpty.Broadcast()
}

// len reports the number of queued envelopes.
func (q *taskQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

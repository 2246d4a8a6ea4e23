package pool

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

var (
	// ErrInvalidWorkerCount is returned by New when the requested worker
	// count is not positive. A zero-worker pool could never drain its
	// queue, so it is rejected at construction instead of deadlocking
	// every submitter.
	ErrInvalidWorkerCount = errors.New("worker count must be at least 1")

	// ErrPoolStopped is returned by Submit once shutdown has been
	// requested. Retrying on the same pool instance will not succeed.
	ErrPoolStopped = errors.New("pool is stopped")

	// ErrShutdownTimeout is returned by Shutdown when workers did not
	// finish draining within the given timeout.
	ErrShutdownTimeout = errors.New("error in shutting down: timeout reached")
)

// Work is one unit of work: a zero-argument closure over its captured
// inputs. The context is the pool's advisory stop token (see
// WithContext); a task is free to ignore it.
//
// Type parameters:
//   - R: The result type the work produces
type Work[R any] func(ctx context.Context) (R, error)

// Pool is a fixed-size worker pool. All workers are spawned by New and
// stay alive until Shutdown; the pool is never resized. A Pool is safe
// for concurrent use by multiple submitters.
type Pool struct {
	queue   *taskQueue
	workers int
	limiter *rate.Limiter
	cancel  context.CancelFunc

	// done is closed once every worker goroutine has exited.
	done chan struct{}
}

// New creates a pool and immediately starts workers goroutines, all
// contending for work on a shared FIFO queue.
//
// Parameters:
//   - workers: Number of worker goroutines; must be >= 1
//   - opts: Optional configuration (WithContext, WithRateLimit)
//
// Returns:
//   - *Pool: A running pool ready to accept submissions
//   - error: ErrInvalidWorkerCount if workers < 1
//
// Example:
//
//	p, err := pool.New(runtime.GOMAXPROCS(0))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer p.Shutdown(0)
func New(workers int, opts ...Option) (*Pool, error) {
	if workers < 1 {
		return nil, ErrInvalidWorkerCount
	}

	cfg := &config{baseCtx: context.Background()}
	for _, opt := range opts {
		opt(cfg)
	}

	ctx, cancel := context.WithCancel(cfg.baseCtx)
	p := &Pool{
		queue:   newTaskQueue(),
		workers: workers,
		limiter: cfg.limiter,
		cancel:  cancel,
		done:    make(chan struct{}),
	}

	// An advisory cancellation closes the queue so parked workers wake
	// up. Envelopes already queued are still drained and executed; the
	// cancelled context reaches them through their Work closure.
	go func() {
		select {
		case <-ctx.Done():
			p.queue.close()
		case <-p.done:
		}
	}()

	var g errgroup.Group
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			p.run(ctx)
			return nil
		})
	}

	go func() {
		_ = g.Wait()
		close(p.done)
	}()

	return p, nil
}

// run is the worker loop: block for the next envelope, execute it, and
// repeat until the queue reports no more work. The envelope's closure
// settles its own future, so the loop needs no error handling of its
// own.
func (p *Pool) run(ctx context.Context) {
	for {
		e, ok := p.queue.popBlocking()
		if !ok {
			return
		}
		if p.limiter != nil {
			_ = p.limiter.Wait(ctx)
		}
		e.invoke(ctx)
	}
}

// Submit enqueues work for asynchronous execution and returns a Future
// for its eventual result. Submit never blocks on task completion; the
// only wait is the queue's brief critical section.
//
// Submit is a package-level function rather than a method because Go
// methods cannot introduce type parameters, and the pool carries tasks
// of arbitrary result types through one type-erased queue.
//
// Parameters:
//   - p: The pool to run the work on
//   - work: Zero-argument closure producing the result
//
// Returns:
//   - *Future[R]: Handle for retrieving the result
//   - error: ErrPoolStopped if shutdown has already been requested
//
// Example:
//
//	future, err := pool.Submit(p, func(ctx context.Context) (float64, error) {
//	    return simulate(settings), nil
//	})
//	if err != nil {
//	    return err
//	}
//	result, err := future.Get()
func Submit[R any](p *Pool, work Work[R]) (*Future[R], error) {
	f := newFuture[R]()
	e := &envelope{
		invoke: func(ctx context.Context) {
			f.result <- execute(ctx, work)
		},
	}

	if err := p.queue.push(e); err != nil {
		return nil, err
	}
	return f, nil
}

// execute runs work with panic recovery so a misbehaving task settles
// its future with an error instead of killing the worker.
func execute[R any](ctx context.Context, work Work[R]) (res Result[R]) {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			res.Err = fmt.Errorf("task panic: %v\nstack trace:\n%s", r, buf[:n])
		}
	}()

	res.Value, res.Err = work(ctx)
	return res
}

// Shutdown requests a graceful stop and waits for the pool to drain.
// Tasks already queued when Shutdown is called still run to completion;
// only new submissions are rejected. Shutdown is idempotent: calling it
// on an already stopped pool just waits for the (already finished)
// drain again.
//
// Parameters:
//   - timeout: Maximum duration to wait for the drain (0 = wait forever)
//
// Returns:
//   - error: ErrShutdownTimeout if workers were still busy at the deadline
//
// Example:
//
//	if err := p.Shutdown(30 * time.Second); err != nil {
//	    log.Printf("shutdown: %v", err)
//	}
func (p *Pool) Shutdown(timeout time.Duration) error {
	p.queue.close()
	if err := waitUntil(p.done, timeout); err != nil {
		return err
	}
	p.cancel()
	return nil
}

// Workers returns the fixed number of workers the pool was built with.
func (p *Pool) Workers() int {
	return p.workers
}

// QueueLen reports the number of tasks waiting to be picked up. It is a
// snapshot and may be stale by the time it returns.
func (p *Pool) QueueLen() int {
	return p.queue.len()
}

// waitUntil blocks until either the done channel is closed or the
// timeout is reached. A timeout of zero or less means wait forever.
func waitUntil(d <-chan struct{}, timeout time.Duration) error {
	if timeout <= 0 {
		<-d
		return nil
	}

	select {
	case <-d:
		return nil
	case <-time.After(timeout):
		return ErrShutdownTimeout
	}
}

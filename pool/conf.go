package pool

import (
	"context"

	"golang.org/x/time/rate"
)

// Option is a functional option for configuring the worker pool.
type Option func(*config)

type config struct {
	baseCtx context.Context
	limiter *rate.Limiter
}

// WithContext attaches an advisory cancellation context to the pool.
// Cancelling it closes the work queue: further submissions fail with
// ErrPoolStopped and parked workers wake up and exit once the queue is
// drained. The context is also passed to every task, but a task that is
// already executing is never interrupted; it decides for itself whether
// to honour the cancellation.
func WithContext(ctx context.Context) Option {
	return func(cfg *config) {
		if ctx != nil {
			cfg.baseCtx = ctx
		}
	}
}

// WithRateLimit sets a rate limiter for controlling task throughput.
// tasksPerSecond specifies the maximum number of task starts per second.
// burst specifies the maximum number of tasks that can start in a burst.
// This is useful for preventing overwhelming external services or APIs.
// If not specified, no rate limiting is applied.
//
// Example:
//
//	WithRateLimit(10, 5) // Allow 10 task starts/sec with burst of 5
func WithRateLimit(tasksPerSecond float64, burst int) Option {
	return func(cfg *config) {
		if tasksPerSecond > 0 && burst > 0 {
			cfg.limiter = rate.NewLimiter(rate.Limit(tasksPerSecond), burst)
		}
	}
}

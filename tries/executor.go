package tries

import "context"

// Executor runs the functions wrapped by AsyncOn.  Execute returns an error if fn will never be run;
// once accepted fn must eventually be called exactly once.  ctx bounds only the hand-off, not fn.
//
// taskqueue.TaskQueue and ratelimiter.RateLimiter both implement Executor.
type Executor interface {
	Execute(ctx context.Context, fn func()) error
}

// ExecutorFunc adapts an ordinary function to the Executor interface.
type ExecutorFunc func(ctx context.Context, fn func()) error

func (f ExecutorFunc) Execute(ctx context.Context, fn func()) error {
	return f(ctx, fn)
}

func goroutine(_ context.Context, fn func()) error {
	go fn()
	return nil
}

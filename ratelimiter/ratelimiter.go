// Package ratelimiter provides a RateLimiter that starts the functions handed to it no faster than a token bucket allows.
// A RateLimiter can be used as the tries.Executor of tries.AsyncOn to throttle calls to a remote service.
package ratelimiter

import (
	"context"
	"errors"
	"log"

	"github.com/abevier/fallible/closewaiter"
	"github.com/abevier/fallible/internal/submit"
	"golang.org/x/time/rate"
)

var (
	ErrStopped = errors.New("rate limiter has been stopped")
)

type RateLimiter struct {
	limiter *rate.Limiter
	jobChan chan submit.Job
	submit  submit.SubmitFunction

	cw      *closewaiter.CloseWaiter
	stopped chan struct{}
}

// New creates a RateLimiter and starts its worker.  New panics if opts are invalid.
func New(opts Opts) *RateLimiter {
	opts.validate()

	rl := &RateLimiter{
		limiter: rate.NewLimiter(opts.Limit, opts.Burst),
		jobChan: make(chan submit.Job, opts.MaxQueueDepth),
		submit:  submit.GetSubmitFunction(submit.FullQueueStrategy(opts.FullQueueStrategy)),
		cw:      closewaiter.New(),
		stopped: make(chan struct{}),
	}

	rl.startWorker()

	return rl
}

func (rl *RateLimiter) startWorker() {
	go func() {
		defer close(rl.stopped)

		for j := range rl.jobChan {
			// accepted jobs are never dropped, so they do not wait on the submitter's context
			if err := rl.limiter.Wait(context.Background()); err != nil {
				log.Printf("rate limiter wait failed, starting job without a token: %v", err)
			}

			go j.Run()
		}
	}()
}

// Execute queues fn to be started once a token is available.  An error is returned if fn was not accepted:
// ErrStopped after Close, ErrQueueFull with the ErrorWhenFull strategy, or context.Canceled if ctx is done
// while blocked on a full queue.
func (rl *RateLimiter) Execute(ctx context.Context, fn func()) error {
	var err error

	if cwErr := rl.cw.Do(func() {
		err = rl.submit(rl.jobChan, submit.Job{Ctx: ctx, Run: fn})
	}); cwErr != nil {
		return ErrStopped
	}

	return err
}

// Close stops accepting functions and waits until every accepted function has been started.
func (rl *RateLimiter) Close() {
	rl.cw.Close(func() {
		close(rl.jobChan)
	})

	<-rl.stopped
}

// Package taskqueue provides a TaskQueue, a bounded pool of workers that run functions handed to it.
// A TaskQueue can be used as the tries.Executor of tries.AsyncOn to limit how many wrapped functions
// run at the same time.
package taskqueue

import (
	"context"
	"errors"
	"sync"

	"github.com/abevier/fallible/closewaiter"
	"github.com/abevier/fallible/internal/submit"
)

var (
	ErrQueueFull = submit.ErrQueueFull
	ErrStopped   = errors.New("task queue has been stopped")
)

type TaskQueue struct {
	jobChan chan submit.Job
	submit  submit.SubmitFunction

	cw       *closewaiter.CloseWaiter
	waitStop *sync.WaitGroup
}

// New creates a TaskQueue and starts its workers.  New panics if opts are invalid.
func New(opts Opts) *TaskQueue {
	opts.validate()

	tq := &TaskQueue{
		jobChan:  make(chan submit.Job, opts.MaxQueueDepth),
		submit:   submit.GetSubmitFunction(submit.FullQueueStrategy(opts.FullQueueStrategy)),
		cw:       closewaiter.New(),
		waitStop: &sync.WaitGroup{},
	}

	for i := 0; i < opts.MaxWorkers; i++ {
		tq.waitStop.Add(1)
		go tq.worker()
	}

	return tq
}

func (tq *TaskQueue) worker() {
	defer tq.waitStop.Done()

	for j := range tq.jobChan {
		j.Run()
	}
}

// Execute queues fn to be run by a worker.  An error is returned if fn was not accepted: ErrStopped after Close,
// ErrQueueFull with the ErrorWhenFull strategy, or context.Canceled if ctx is done while blocked on a full queue.
// An accepted fn always runs, even if Close is called before a worker picks it up.
func (tq *TaskQueue) Execute(ctx context.Context, fn func()) error {
	var err error

	if cwErr := tq.cw.Do(func() {
		err = tq.submit(tq.jobChan, submit.Job{Ctx: ctx, Run: fn})
	}); cwErr != nil {
		return ErrStopped
	}

	return err
}

// Close stops accepting functions and waits for every accepted function to finish.  Close may be called more than once.
func (tq *TaskQueue) Close() {
	tq.cw.Close(func() {
		close(tq.jobChan)
	})

	tq.waitStop.Wait()
}

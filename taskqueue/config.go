package taskqueue

import "github.com/abevier/fallible/internal/submit"

// FullQueueStrategy is the behavior of Execute when MaxQueueDepth functions are already waiting
type FullQueueStrategy submit.FullQueueStrategy

const (
	// BlockWhenFull exerts back pressure by blocking the caller until there is room or its context is done.
	BlockWhenFull FullQueueStrategy = FullQueueStrategy(submit.BlockWhenFull)
	// ErrorWhenFull immediately returns ErrQueueFull.
	ErrorWhenFull FullQueueStrategy = FullQueueStrategy(submit.ErrorWhenFull)
)

// Opts is used to configure a TaskQueue via the New function.
type Opts struct {
	// MaxWorkers is the number of functions that may run at the same time.
	MaxWorkers int
	// MaxQueueDepth is the number of accepted functions that may wait for a worker.
	MaxQueueDepth int
	// FullQueueStrategy determines the behavior of Execute when the queue is full.
	// By default the caller is blocked.
	FullQueueStrategy FullQueueStrategy
}

func (o Opts) validate() {
	if o.MaxWorkers < 1 {
		panic("task queue max workers must be 1 or greater")
	}

	if o.MaxQueueDepth < 0 {
		panic("task queue max queue depth must be 0 or greater")
	}
}

// Package closewaiter coordinates shutting down a resource that is written to by many goroutines,
// such as the job channel of an executor.
package closewaiter

import (
	"errors"
	"sync"
)

var (
	ErrClosed = errors.New("closed")
)

// CloseWaiter lets callers use a resource through Do until Close is called.  Close waits for the calls to Do
// that are in progress before releasing the resource.
type CloseWaiter struct {
	mu       sync.RWMutex
	isClosed bool

	closeOnce sync.Once
	closed    chan struct{}
}

func New() *CloseWaiter {
	return &CloseWaiter{
		closed: make(chan struct{}),
	}
}

// Do runs f unless Close has been called, in which case ErrClosed is returned and f is not run.
// Calls to Do may run concurrently with each other.
func (c *CloseWaiter) Do(f func()) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.isClosed {
		return ErrClosed
	}

	f()
	return nil
}

// Close waits for all calls to Do in progress to return and then runs f.  f runs only once no matter how many
// times Close is called; every call returns after f has returned.
func (c *CloseWaiter) Close(f func()) {
	c.closeOnce.Do(func() {
		c.mu.Lock()
		c.isClosed = true
		f()
		c.mu.Unlock()

		close(c.closed)
	})

	<-c.closed
}

package taskqueue

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTaskQueue(t *testing.T) {
	req := require.New(t)

	maxWorkers := 3
	var running, maxRunning, ran int32

	tq := New(Opts{MaxWorkers: maxWorkers, MaxQueueDepth: 10})

	wg := sync.WaitGroup{}
	for i := 0; i < 100; i++ {
		wg.Add(1)
		err := tq.Execute(context.Background(), func() {
			defer wg.Done()

			n := atomic.AddInt32(&running, 1)
			for {
				m := atomic.LoadInt32(&maxRunning)
				if n <= m || atomic.CompareAndSwapInt32(&maxRunning, m, n) {
					break
				}
			}
			atomic.AddInt32(&ran, 1)
			atomic.AddInt32(&running, -1)
		})
		req.NoError(err)
	}

	wg.Wait()
	tq.Close()

	req.Equal(int32(100), atomic.LoadInt32(&ran))
	req.LessOrEqual(atomic.LoadInt32(&maxRunning), int32(maxWorkers))
}

func TestTaskQueueContextCancellation(t *testing.T) {
	req := require.New(t)

	release := make(chan struct{})
	tq := New(Opts{MaxWorkers: 1, MaxQueueDepth: 0, FullQueueStrategy: BlockWhenFull})

	// occupy the only worker
	started := make(chan struct{})
	req.NoError(tq.Execute(context.Background(), func() {
		close(started)
		<-release
	}))
	<-started

	for i := 0; i < 10; i++ {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := tq.Execute(ctx, func() {})
		req.ErrorIs(err, context.Canceled)
	}

	close(release)
	tq.Close()
}

func TestTaskQueueErrorWhenFull(t *testing.T) {
	req := require.New(t)

	release := make(chan struct{})
	started := make(chan struct{})
	tq := New(Opts{MaxWorkers: 1, MaxQueueDepth: 1, FullQueueStrategy: ErrorWhenFull})

	req.NoError(tq.Execute(context.Background(), func() {
		close(started)
		<-release
	}))
	<-started

	req.NoError(tq.Execute(context.Background(), func() {}))
	req.ErrorIs(tq.Execute(context.Background(), func() {}), ErrQueueFull)

	close(release)
	tq.Close()
}

func TestTaskQueueClose(t *testing.T) {
	req := require.New(t)

	var ran int32
	tq := New(Opts{MaxWorkers: 1, MaxQueueDepth: 10})

	for i := 0; i < 10; i++ {
		req.NoError(tq.Execute(context.Background(), func() {
			atomic.AddInt32(&ran, 1)
		}))
	}

	tq.Close()
	req.Equal(int32(10), atomic.LoadInt32(&ran))

	req.ErrorIs(tq.Execute(context.Background(), func() {}), ErrStopped)

	// closing again is a no-op
	tq.Close()
}

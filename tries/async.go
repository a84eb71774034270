package tries

import (
	"context"

	"github.com/abevier/fallible/futures"
	"github.com/abevier/fallible/results"
)

// AsyncTry holds the pending Outcome of a function run in the background.
// Every operation returns immediately; its value becomes available once all previous stages have settled.
type AsyncTry[T any, E error] struct {
	c core[T, E]
}

// Async runs fn on a new goroutine and captures its result.  Starting a goroutine never fails, so unlike
// AsyncOn there is no refusal error: the captured error is always one returned by, or panicked from, fn.
func Async[T any, E error](fn func() (T, E)) *AsyncTry[T, E] {
	return AsyncOn(context.Background(), ExecutorFunc(goroutine), fn)
}

// AsyncOn hands fn to exec and captures its result.  If exec refuses fn, the refusal error is the
// captured error when it can be stored as an E, otherwise every Future derived from the AsyncTry fails with it.
func AsyncOn[T any, E error](ctx context.Context, exec Executor, fn func() (T, E)) *AsyncTry[T, E] {
	f := futures.New[Outcome[T, E]]()

	err := exec.Execute(ctx, func() {
		completed := false
		defer func() {
			if !completed {
				f.Fail(&futures.PanicError{Value: recover()})
			}
		}()

		f.Complete(run(fn))
		completed = true
	})
	if err != nil {
		if e, ok := any(err).(E); ok {
			f.Complete(Outcome[T, E]{Err: e})
		} else {
			f.Fail(err)
		}
	}

	return &AsyncTry[T, E]{c: pending(f)}
}

// Await adapts a Future: a failed Future becomes the captured error.
func Await[T any](f *futures.Future[T]) *AsyncTry[T, error] {
	next := futures.Then(f, func(v T, err error) (Outcome[T, error], error) {
		if err != nil {
			return Outcome[T, error]{Err: err}, nil
		}
		return Outcome[T, error]{Data: v}, nil
	})
	return &AsyncTry[T, error]{c: pending(next)}
}

// Recover returns an AsyncTry whose error, if any, will be replaced by the value returned by fn.
// If fn panics the Futures derived from the returned AsyncTry fail with a *futures.PanicError.
func (t *AsyncTry[T, E]) Recover(fn func(E) T) *AsyncTry[T, E] {
	return &AsyncTry[T, E]{c: t.c.recover(fn)}
}

// Error returns a Future of the captured error, or of the nil E if there is none.
func (t *AsyncTry[T, E]) Error() *futures.Future[E] {
	return t.c.err()
}

// Outcome returns the Future of the underlying Outcome.
func (t *AsyncTry[T, E]) Outcome() *futures.Future[Outcome[T, E]] {
	return t.c.outcome
}

// GetOrElse returns a Future of the value when there is no error and the value is not nil,
// otherwise of defaultValue.
func (t *AsyncTry[T, E]) GetOrElse(defaultValue T) *futures.Future[T] {
	return t.c.getOrElse(defaultValue)
}

// Result returns a Future of this AsyncTry converted into a results.Result.
func (t *AsyncTry[T, E]) Result() *futures.Future[results.Result[T, E]] {
	return derive(t.c, Outcome[T, E].Result)
}

// Wait blocks until the Outcome has settled and returns it as a SyncTry.  Canceling ctx stops
// the wait but not the running function.
func (t *AsyncTry[T, E]) Wait(ctx context.Context) (*SyncTry[T, E], error) {
	o, err := t.c.outcome.Get(ctx)
	if err != nil {
		return nil, err
	}
	return FromOutcome(o), nil
}

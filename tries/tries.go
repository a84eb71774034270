// Package tries adapts fallible function calls into Outcome values and offers recovery, defaulting and
// conversion to results.Result over them, so callers do not repeat the same error checks around every call.
//
// Sync runs a function immediately and returns a SyncTry.  Async and AsyncOn run it in the background and
// return an AsyncTry whose operations all yield Futures that complete once the previous stage has settled.
// Both share one implementation and differ only in when a stage is computed.
//
// A function fails by returning a non-nil error or by panicking.  A panic value that is itself an E is
// captured as is, any other panic value is captured as a *futures.PanicError when E can hold one.
package tries

import (
	"context"

	"github.com/abevier/fallible/futures"
	"github.com/abevier/fallible/internal/nilcheck"
)

type completion int

const (
	// stages are computed on the caller's stack
	immediate completion = iota
	// stages are computed once the upstream future completes
	deferred
)

type core[T any, E error] struct {
	outcome *futures.Future[Outcome[T, E]]
	mode    completion
}

func settled[T any, E error](o Outcome[T, E]) core[T, E] {
	f := futures.New[Outcome[T, E]]()
	f.Complete(o)
	return core[T, E]{outcome: f, mode: immediate}
}

func pending[T any, E error](f *futures.Future[Outcome[T, E]]) core[T, E] {
	return core[T, E]{outcome: f, mode: deferred}
}

// derive applies fn to the Outcome of c once it has settled.
func derive[T any, E error, R any](c core[T, E], fn func(Outcome[T, E]) R) *futures.Future[R] {
	if c.mode == immediate {
		next := futures.New[R]()
		next.Complete(fn(now(c.outcome)))
		return next
	}

	return futures.Then(c.outcome, func(o Outcome[T, E], err error) (R, error) {
		if err != nil {
			return *new(R), err
		}
		return fn(o), nil
	})
}

func (c core[T, E]) recover(fn func(E) T) core[T, E] {
	next := derive(c, func(o Outcome[T, E]) Outcome[T, E] {
		return o.Recover(fn)
	})
	return core[T, E]{outcome: next, mode: c.mode}
}

func (c core[T, E]) err() *futures.Future[E] {
	return derive(c, func(o Outcome[T, E]) E {
		return o.Err
	})
}

func (c core[T, E]) getOrElse(defaultValue T) *futures.Future[T] {
	return derive(c, func(o Outcome[T, E]) T {
		return o.GetOrElse(defaultValue)
	})
}

// now reads a future that is known to be completed.
func now[T any](f *futures.Future[T]) T {
	v, _ := f.Get(context.Background())
	return v
}

// run calls fn and captures what it returns or panics with into an Outcome.
// A panic(nil) counts as a failure too, so completion is tracked instead of testing the recovered value.
func run[T any, E error](fn func() (T, E)) (o Outcome[T, E]) {
	panicked := true
	defer func() {
		if !panicked {
			return
		}

		r := recover()
		err, ok := capture[E](r)
		if !ok {
			panic(r)
		}
		o = Outcome[T, E]{Err: err}
	}()

	data, err := fn()
	panicked = false

	if !nilcheck.IsNil(err) {
		return Outcome[T, E]{Err: err}
	}
	return Outcome[T, E]{Data: data}
}

func capture[E error](r any) (E, bool) {
	if err, ok := r.(E); ok && !nilcheck.IsNil(err) {
		return err, true
	}
	if err, ok := any(&futures.PanicError{Value: r}).(E); ok {
		return err, true
	}
	return *new(E), false
}

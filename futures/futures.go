// Package futures provides an implementation of a Future which represents an asynchronous computation.
// A Future can be created and then passed around and read by multiple consumers.  This is the key difference
// between a Future and using a channel for an asynchronous computation as a channel value can only be read once.
package futures

import (
	"context"
	"fmt"
	"sync/atomic"
)

// FutureFunc is the function signature required to create a Future via FromFunc
type FutureFunc[T any] func() (T, error)

// PanicError is the error a Future fails with when the function computing its value panics.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap returns the panic value if it was itself an error.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// Future is a structure that represents an asynchronous computation.
// A Future should be created by calling New() or using the FromFunc convience function.
// Once a future has been created it can be completed exactly once.  The first completion value
// wins and all other completions are silently ignored.
//
// Complete is used in the success case
// Fail is used for signaling that the Future failed with an error
//
// Get is used to extract the value and an error from the Future.  If the future has not been
// completed calling Get will block until the future completes or until the context is canceled.
// Get can be called by multiple go routines simultaneously and they will all receive the same value.
type Future[T any] struct {
	isCompleted uint32
	completed   chan struct{}

	value T
	err   error
}

// New creates a new uncompleted Future that will eventually contain a value of type T which can be anything.
// This future must be manually completed by calling Complete or Fail
func New[T any]() *Future[T] {
	return &Future[T]{
		completed: make(chan struct{}),
	}
}

// FromFunc creates a new uncompleted Future that will eventually contain the return value of the provided function.
// The provided function is run asynchronously when this function is invoked.  If it panics the Future fails
// with a *PanicError.
func FromFunc[T any](do FutureFunc[T]) *Future[T] {
	f := New[T]()

	go guard(f, func() {
		t, err := do()
		if err != nil {
			f.Fail(err)
			return
		}
		f.Complete(t)
	})

	return f
}

// Then creates a Future that is completed with the return value of fn once f has completed.
// fn receives f's value and error and always runs, so it decides how a failure upstream propagates.
// If fn panics the returned Future fails with a *PanicError.
func Then[T any, R any](f *Future[T], fn func(T, error) (R, error)) *Future[R] {
	next := New[R]()

	go guard(next, func() {
		<-f.completed
		r, err := fn(f.value, f.err)
		if err != nil {
			next.Fail(err)
			return
		}
		next.Complete(r)
	})

	return next
}

// Complete completes this Future with the provided value.  If the future has already been completed this call is ignored.
func (f *Future[T]) Complete(value T) {
	f.internalComplete(value, nil)
}

// Fail completes this Future with the provided error.  If the future has already been completed this call is ignored.
func (f *Future[T]) Fail(err error) {
	f.internalComplete(*new(T), err)
}

func (f *Future[T]) internalComplete(val T, err error) {
	if atomic.CompareAndSwapUint32(&f.isCompleted, 0, 1) {
		f.value = val
		f.err = err
		close(f.completed)
	}
}

// Done returns a channel that is closed once this Future has been completed.
func (f *Future[T]) Done() <-chan struct{} {
	return f.completed
}

// IsCompleted reports whether the value of this Future is available without blocking.
func (f *Future[T]) IsCompleted() bool {
	select {
	case <-f.completed:
		return true
	default:
		return false
	}
}

// Get retrieves the value of this Future.  If the future is not yet completed this call will block until the future is
// completed or until the provided context is canceled.  Canceling the context does not affect the computation.
func (f *Future[T]) Get(ctx context.Context) (T, error) {
	select {
	case <-f.completed:
		return f.value, f.err
	case <-ctx.Done():
		return *new(T), context.Canceled
	}
}

// guard runs do and fails f with a *PanicError if do does not return normally, including on panic(nil).
func guard[T any](f *Future[T], do func()) {
	returned := false
	defer func() {
		if !returned {
			f.Fail(&PanicError{Value: recover()})
		}
	}()

	do()
	returned = true
}

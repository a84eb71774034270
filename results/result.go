// Package results provides Result, a strict container holding either a success value or an error.
// A Result is the terminal step of a tries chain: once built it is never mutated.
package results

import (
	"errors"
	"fmt"

	"github.com/abevier/fallible/internal/nilcheck"
)

var (
	// ErrNotAnError is the panic value of UnwrapErr when the Result does not hold an error
	ErrNotAnError = errors.New("cannot unwrap error: value is not an error")
)

// Result holds either a value of type T or an error of type E.
// Which channel is populated is fixed at construction by Success or Failure.
type Result[T any, E error] struct {
	val   T
	err   E
	isErr bool
}

// New creates a Result from the conventional (value, error) pair.
// A non-nil err yields a Failure, otherwise a Success holding val.
func New[T any](val T, err error) Result[T, error] {
	if err != nil {
		return Failure[T](err)
	}
	return Success[T, error](val)
}

// Success creates a Result holding val in the success channel.
func Success[T any, E error](val T) Result[T, E] {
	return Result[T, E]{val: val}
}

// Failure creates a Result holding err in the error channel.
func Failure[T any, E error](err E) Result[T, E] {
	return Result[T, E]{err: err, isErr: true}
}

// IsOk returns true if the Result does not represent an error.
func (r Result[T, E]) IsOk() bool {
	return !r.isErr
}

// IsNull returns true if the stored value is nil, regardless of which channel holds it.
func (r Result[T, E]) IsNull() bool {
	if r.isErr {
		return nilcheck.IsNil(r.err)
	}
	return nilcheck.IsNil(r.val)
}

// Unwrap returns the success value.  If the Result holds a non-nil error Unwrap panics with that error.
func (r Result[T, E]) Unwrap() T {
	if r.isErr && !nilcheck.IsNil(r.err) {
		panic(r.err)
	}
	return r.val
}

// UnwrapErr returns the error value.  It panics with ErrNotAnError if the Result holds no error.
func (r Result[T, E]) UnwrapErr() E {
	if !r.isErr || nilcheck.IsNil(r.err) {
		panic(ErrNotAnError)
	}
	return r.err
}

// Get returns the value and error in the usual Go form.
func (r Result[T, E]) Get() (T, error) {
	if r.isErr && !nilcheck.IsNil(r.err) {
		return *new(T), r.err
	}
	return r.val, nil
}

func (r Result[T, E]) String() string {
	if r.isErr {
		if nilcheck.IsNil(r.err) {
			return "Err(<nil>)"
		}
		return fmt.Sprintf("Err(%s)", r.err.Error())
	}
	return fmt.Sprintf("Ok(%v)", r.val)
}

package tries

import (
	"github.com/abevier/fallible/internal/nilcheck"
	"github.com/abevier/fallible/results"
)

// Outcome is the raw pair produced by running a fallible function.
// An Outcome built by Sync, Async, AsyncOn or Await never has both fields set.  An Outcome with neither
// set is legal and means the function succeeded with a nil value.
type Outcome[T any, E error] struct {
	Err  E
	Data T
}

// Failed returns true if the error channel holds a non-nil error.
func (o Outcome[T, E]) Failed() bool {
	return !nilcheck.IsNil(o.Err)
}

// IsNull returns true if Data is nil.  Data of a non-nilable type is never nil.
func (o Outcome[T, E]) IsNull() bool {
	return nilcheck.IsNil(o.Data)
}

// Recover returns a new Outcome with the error replaced by fn(Err) and the error channel cleared.
// A successful Outcome passes through unchanged and an empty Outcome stays empty.  fn is called
// without protection: if it panics, so does Recover.
func (o Outcome[T, E]) Recover(fn func(E) T) Outcome[T, E] {
	if o.Failed() {
		return Outcome[T, E]{Data: fn(o.Err)}
	}
	return Outcome[T, E]{Data: o.Data}
}

// GetOrElse returns Data when there is no error and Data is not nil, otherwise defaultValue.
// A nil success value is treated the same as a failure.
func (o Outcome[T, E]) GetOrElse(defaultValue T) T {
	if o.Failed() || o.IsNull() {
		return defaultValue
	}
	return o.Data
}

// Result converts the Outcome into a strict results.Result.  A nil success value produces a
// successful Result for which IsNull returns true.
func (o Outcome[T, E]) Result() results.Result[T, E] {
	if o.Failed() {
		return results.Failure[T](o.Err)
	}
	return results.Success[T, E](o.Data)
}

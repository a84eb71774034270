package tries

import "github.com/abevier/fallible/results"

// SyncTry holds the settled Outcome of a function run by Sync.
// A SyncTry is never modified: Recover returns a new one.
type SyncTry[T any, E error] struct {
	c core[T, E]
}

// Sync calls fn and captures its result.  Sync never panics on behalf of fn unless fn panics
// with a value that cannot be stored as an E.
func Sync[T any, E error](fn func() (T, E)) *SyncTry[T, E] {
	return FromOutcome(run(fn))
}

// FromOutcome wraps an existing Outcome.
func FromOutcome[T any, E error](o Outcome[T, E]) *SyncTry[T, E] {
	return &SyncTry[T, E]{c: settled(o)}
}

// Recover returns a SyncTry whose error, if any, has been replaced by the value returned by fn.
// If fn panics the panic propagates to the caller of Recover.
func (t *SyncTry[T, E]) Recover(fn func(E) T) *SyncTry[T, E] {
	return &SyncTry[T, E]{c: t.c.recover(fn)}
}

// Error returns the captured error, or the nil E if there is none.
func (t *SyncTry[T, E]) Error() E {
	return now(t.c.err())
}

// Outcome returns the underlying Outcome.
func (t *SyncTry[T, E]) Outcome() Outcome[T, E] {
	return now(t.c.outcome)
}

// GetOrElse returns the value when there is no error and the value is not nil, otherwise defaultValue.
// Use Outcome or Result to tell a nil value apart from a failure.
func (t *SyncTry[T, E]) GetOrElse(defaultValue T) T {
	return now(t.c.getOrElse(defaultValue))
}

// Result converts this SyncTry into a results.Result.
func (t *SyncTry[T, E]) Result() results.Result[T, E] {
	return now(derive(t.c, Outcome[T, E].Result))
}

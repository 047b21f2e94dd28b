package solo

import (
	"github.com/ib-77/attempt/pkg/rop"
)

// Handlers are the optional observers used by Tap.
type Handlers[T, E any] struct {
	OnSuccess func(v T)
	OnError   func(err E)
}

// Attempt runs fn once. Its value becomes a success; a panic becomes a
// failure carrying the normalized panic value.
func Attempt[T any](fn func() T) rop.Result[T] {
	return rop.Capture(fn)
}

// Try runs a Go-style producer once. A returned error or a panic becomes a
// failure.
func Try[T any](fn func() (T, error)) rop.Result[T] {
	res := rop.Capture(func() tuple[T] {
		v, err := fn()
		return tuple[T]{v: v, err: err}
	})
	if res.IsFailure() {
		return rop.FailFrom[tuple[T], T](res)
	}

	p := res.Result()
	return rop.FromTuple(p.v, p.err)
}

// AttemptAsync runs fn once and returns without waiting on what fn started.
// If fn panics or returns an awaitable that has already settled, the pending
// is settled on return.
func AttemptAsync[T any](fn func() rop.Awaitable[T]) *rop.Pending[T] {
	started := rop.Capture(fn)
	if started.IsFailure() {
		return rop.Settle(rop.FailFrom[rop.Awaitable[T], T](started))
	}
	return rop.FromAwaitable(started.Result())
}

func Map[T, U, E any](input rop.Either[T, E], fn func(v T) U) rop.Either[U, E] {
	if v, ok := input.Value(); ok {
		return rop.Right[U, E](fn(v))
	}
	return rop.FailFrom[T, U](input)
}

func MapError[T, E, F any](input rop.Either[T, E], fn func(err E) F) rop.Either[T, F] {
	if err, ok := input.Failure(); ok {
		return rop.Left[T](fn(err))
	}
	return rop.SuccessFrom[T, E, F](input)
}

// AndThen passes a success to fn and returns whatever fn returns. A failure
// is returned without calling fn.
func AndThen[T, U, E any](input rop.Either[T, E], fn func(v T) rop.Either[U, E]) rop.Either[U, E] {
	if v, ok := input.Value(); ok {
		return fn(v)
	}
	return rop.FailFrom[T, U](input)
}

// Ap applies a wrapped function to a wrapped value. The function's failure
// wins over the value's. A panic inside the function becomes a failure.
func Ap[T, U any](fnResult rop.Result[func(T) U], valueResult rop.Result[T]) rop.Result[U] {
	fn, ok := fnResult.Value()
	if !ok {
		return rop.FailFrom[func(T) U, U](fnResult)
	}

	v, ok := valueResult.Value()
	if !ok {
		return rop.FailFrom[T, U](valueResult)
	}

	return rop.Capture(func() U { return fn(v) })
}

// OrElse returns input if it succeeded, otherwise the outcome of fallback.
// The original error is dropped.
func OrElse[T, E any](input rop.Either[T, E], fallback func() rop.Either[T, E]) rop.Either[T, E] {
	if input.IsSuccess() {
		return input
	}
	return fallback()
}

// Match calls exactly one of onSuccess and onError and returns its value.
func Match[T, E, U any](input rop.Either[T, E], onSuccess func(v T) U, onError func(err E) U) U {
	if onSuccess == nil || onError == nil {
		panic("solo: Match requires both handlers")
	}

	if v, ok := input.Value(); ok {
		return onSuccess(v)
	}
	return onError(input.Err())
}

// Tap calls the handler matching input, if set, and returns input unchanged.
func Tap[T, E any](input rop.Either[T, E], handlers Handlers[T, E]) rop.Either[T, E] {
	if v, ok := input.Value(); ok {
		if handlers.OnSuccess != nil {
			handlers.OnSuccess(v)
		}
		return input
	}

	if handlers.OnError != nil {
		handlers.OnError(input.Err())
	}
	return input
}

type tuple[T any] struct {
	v   T
	err error
}

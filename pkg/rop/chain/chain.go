package chain

import (
	"context"

	"github.com/ib-77/attempt/pkg/rop"
	"github.com/ib-77/attempt/pkg/rop/solo"
)

// Chain wraps a rop.Result with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result rop.Result[T]
}

// Start creates a new chain from a rop.Result
func Start[T any](ctx context.Context, result rop.Result[T]) Chain[T] {
	return Chain[T]{ctx: ctx, result: result}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) Chain[T] {
	return Start(ctx, rop.Success(value))
}

// FromAttempt creates a new chain from a producer run under solo.Attempt
func FromAttempt[T any](ctx context.Context, producer func(ctx context.Context) T) Chain[T] {
	return Start(ctx, solo.Attempt(func() T { return producer(ctx) }))
}

// Result returns the underlying rop.Result
func (c Chain[T]) Result() rop.Result[T] {
	return c.result
}

func (c Chain[T]) Context() context.Context {
	return c.ctx
}

// Then chains a function that returns rop.Result[U]
func Then[T, U any](c Chain[T], onSuccess func(context.Context, T) rop.Result[U]) Chain[U] {
	return Chain[U]{
		ctx: c.ctx,
		result: solo.AndThen(c.result, func(v T) rop.Result[U] {
			return onSuccess(c.ctx, v)
		}),
	}
}

// ThenTry chains a function that returns (U, error); a panic in it is captured
func ThenTry[T, U any](c Chain[T], tryOnSuccess func(context.Context, T) (U, error)) Chain[U] {
	return Then(c, func(ctx context.Context, v T) rop.Result[U] {
		return solo.Try(func() (U, error) { return tryOnSuccess(ctx, v) })
	})
}

// ThenAsync chains a pending step and awaits it under the chain context
func ThenAsync[T, U any](c Chain[T], onSuccess func(context.Context, T) *rop.Pending[U]) Chain[U] {
	return Then(c, func(ctx context.Context, v T) rop.Result[U] {
		p := onSuccess(ctx, v)
		if p == nil {
			return rop.Fail[U](rop.ErrNilAwaitable)
		}
		return p.Await(ctx)
	})
}

// Map chains a pure transformation function
func Map[T, U any](c Chain[T], onSuccess func(context.Context, T) U) Chain[U] {
	return Chain[U]{
		ctx: c.ctx,
		result: solo.Map(c.result, func(v T) U {
			return onSuccess(c.ctx, v)
		}),
	}
}

// MapError rewrites the error of a failed chain
func (c Chain[T]) MapError(onFailure func(context.Context, error) error) Chain[T] {
	return Chain[T]{
		ctx: c.ctx,
		result: solo.MapError(c.result, func(err error) error {
			return onFailure(c.ctx, err)
		}),
	}
}

// Or replaces a failed chain with the outcome of fallback
func (c Chain[T]) Or(fallback func(context.Context) rop.Result[T]) Chain[T] {
	return Chain[T]{
		ctx: c.ctx,
		result: solo.OrElse(c.result, func() rop.Result[T] {
			return fallback(c.ctx)
		}),
	}
}

// Ensure performs side effects without changing the result; nil handlers are skipped
func (c Chain[T]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, error)) Chain[T] {
	handlers := solo.Handlers[T, error]{}
	if onSuccess != nil {
		handlers.OnSuccess = func(v T) { onSuccess(c.ctx, v) }
	}
	if onFailure != nil {
		handlers.OnError = func(err error) { onFailure(c.ctx, err) }
	}

	return Chain[T]{ctx: c.ctx, result: solo.Tap(c.result, handlers)}
}

// Finally collapses the chain into a final value using solo.Match
func Finally[T, U any](c Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U) U {
	return solo.Match(c.result,
		func(v T) U { return onSuccess(c.ctx, v) },
		func(err error) U { return onFailure(c.ctx, err) })
}

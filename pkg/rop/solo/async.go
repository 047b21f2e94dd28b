package solo

import (
	"context"

	"github.com/ib-77/attempt/pkg/rop"
)

// AndThenAsync chains a pending step after input. fn runs only once input
// settles as a success, when the returned pending is awaited.
func AndThenAsync[T, U any](input *rop.Pending[T], fn func(v T) *rop.Pending[U]) *rop.Pending[U] {
	if r, ok := input.Settled(); ok && r.IsFailure() {
		return rop.Settle(rop.FailFrom[T, U](r))
	}

	return rop.Defer(func(ctx context.Context) rop.Result[U] {
		r := input.Await(ctx)
		v, ok := r.Value()
		if !ok {
			return rop.FailFrom[T, U](r)
		}

		next := fn(v)
		if next == nil {
			return rop.Fail[U](rop.ErrNilAwaitable)
		}
		return next.Await(ctx)
	})
}

// MapAsync transforms the value of input once it settles.
func MapAsync[T, U any](input *rop.Pending[T], fn func(v T) U) *rop.Pending[U] {
	if r, ok := input.Settled(); ok {
		return rop.Settle(Map(r, fn))
	}

	return rop.Defer(func(ctx context.Context) rop.Result[U] {
		return Map(input.Await(ctx), fn)
	})
}

// OrElseAsync awaits input and, if it failed, the pending returned by
// fallback.
func OrElseAsync[T any](input *rop.Pending[T], fallback func() *rop.Pending[T]) *rop.Pending[T] {
	if r, ok := input.Settled(); ok && r.IsSuccess() {
		return input
	}

	return rop.Defer(func(ctx context.Context) rop.Result[T] {
		r := input.Await(ctx)
		if r.IsSuccess() {
			return r
		}
		if err := ctx.Err(); err != nil {
			return rop.Fail[T](err)
		}

		alt := fallback()
		if alt == nil {
			return rop.Fail[T](rop.ErrNilAwaitable)
		}
		return alt.Await(ctx)
	})
}

// PipeAsync runs same-typed pending steps in order. Each step starts only
// after the previous one settled as a success.
func PipeAsync[T any](initial *rop.Pending[T], steps ...func(v T) *rop.Pending[T]) *rop.Pending[T] {
	res := initial
	for _, step := range steps {
		res = AndThenAsync(res, step)
	}
	return res
}

package rop

import (
	"context"
	"errors"

	"github.com/ib-77/attempt/pkg/rop/core"
)

// ErrNilAwaitable is the failure of a pending built from a nil awaitable.
var ErrNilAwaitable = errors.New("rop: nil awaitable")

// Pending is a Result that may not be available yet. Its outcome is computed
// by the first Await and then kept; later Awaits return the same Result.
// No goroutine is started on its behalf.
type Pending[T any] struct {
	resolve func(ctx context.Context) Result[T]
	sem     chan struct{}
	done    chan struct{}
	res     Result[T]
}

// Settle returns a pending that is already settled with r.
func Settle[T any](r Result[T]) *Pending[T] {
	p := &Pending[T]{done: make(chan struct{}), res: r}
	close(p.done)
	return p
}

// Defer returns a pending whose outcome is produced by resolve when first
// awaited. A panic in resolve escapes to the awaiting caller and leaves the
// pending unsettled.
func Defer[T any](resolve func(ctx context.Context) Result[T]) *Pending[T] {
	return &Pending[T]{
		resolve: resolve,
		sem:     make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
}

// FromAwaitable wraps an in-flight computation. A rejection becomes a
// failure. If a is already settled, so is the returned pending.
func FromAwaitable[T any](a Awaitable[T]) *Pending[T] {
	if IsNil(a) {
		return Settle(Fail[T](ErrNilAwaitable))
	}
	if s, ok := a.(Settler[T]); ok {
		if r, settled := s.Settled(); settled {
			return Settle(r)
		}
	}

	return Defer(func(ctx context.Context) Result[T] {
		out := Capture(func() tuple[T] {
			v, err := a.Await(ctx)
			return tuple[T]{v: v, err: err}
		})
		if out.IsFailure() {
			return FailFrom[tuple[T], T](out)
		}
		if t := out.Result(); t.err != nil {
			return Fail[T](Normalize(t.err))
		}
		return Success(out.Result().v)
	})
}

// Settled returns the outcome without waiting, if there is one.
func (p *Pending[T]) Settled() (Result[T], bool) {
	select {
	case <-p.done:
		return p.res, true
	default:
		var zero Result[T]
		return zero, false
	}
}

// Await blocks until p settles or ctx ends. When ctx ends first the caller
// gets a failure carrying ctx.Err() and p stays pending for other callers.
func (p *Pending[T]) Await(ctx context.Context) Result[T] {
	if r, ok := p.Settled(); ok {
		return r
	}

	ctx, cancel := core.BoundAwait(ctx)
	defer cancel()

	select {
	case <-p.done:
		return p.res
	case <-ctx.Done():
		return Fail[T](ctx.Err())
	case p.sem <- struct{}{}:
	}
	defer func() { <-p.sem }()

	if r, ok := p.Settled(); ok {
		return r
	}

	res := p.resolve(ctx)
	// A cancellation caused by this caller's own context is not kept.
	if res.IsFailure() && ctx.Err() != nil && IsCancellationError(res.Err()) {
		return res
	}

	p.res = res
	close(p.done)
	return res
}

// Awaitable exposes p to code that expects an Awaitable, such as a producer
// handed to an async constructor.
func (p *Pending[T]) Awaitable() Awaitable[T] {
	return pendingAwaitable[T]{p: p}
}

type pendingAwaitable[T any] struct {
	p *Pending[T]
}

func (a pendingAwaitable[T]) Await(ctx context.Context) (T, error) {
	return a.p.Await(ctx).Unwrap()
}

func (a pendingAwaitable[T]) Settled() (Result[T], bool) {
	return a.p.Settled()
}

type tuple[T any] struct {
	v   T
	err error
}

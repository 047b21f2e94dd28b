package rop

import (
	"context"
	"sync"

	"github.com/ib-77/attempt/pkg/rop/core"
)

// Promise is a caller-side awaitable settled once by Resolve or Reject.
// It is safe for concurrent use.
type Promise[T any] struct {
	once sync.Once
	done chan struct{}
	res  Result[T]
}

func NewPromise[T any]() *Promise[T] {
	return &Promise[T]{done: make(chan struct{})}
}

// Now returns a promise already resolved with v.
func Now[T any](v T) *Promise[T] {
	p := NewPromise[T]()
	p.Resolve(v)
	return p
}

// Rejected returns a promise already rejected with reason.
func Rejected[T any](reason any) *Promise[T] {
	p := NewPromise[T]()
	p.Reject(reason)
	return p
}

// Resolve settles p with v. It reports false if p was already settled.
func (p *Promise[T]) Resolve(v T) bool {
	return p.settle(Success(v))
}

// Reject settles p with reason, normalized into an error. It reports false
// if p was already settled.
func (p *Promise[T]) Reject(reason any) bool {
	return p.settle(Fail[T](Normalize(reason)))
}

func (p *Promise[T]) settle(r Result[T]) bool {
	settled := false
	p.once.Do(func() {
		p.res = r
		settled = true
		close(p.done)
	})
	return settled
}

func (p *Promise[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-p.done:
		return p.res.Unwrap()
	default:
	}

	select {
	case <-p.done:
		return p.res.Unwrap()
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

func (p *Promise[T]) Settled() (Result[T], bool) {
	select {
	case <-p.done:
		return p.res, true
	default:
		var zero Result[T]
		return zero, false
	}
}

// AwaitFunc adapts a blocking function to Awaitable.
type AwaitFunc[T any] func(ctx context.Context) (T, error)

func (f AwaitFunc[T]) Await(ctx context.Context) (T, error) {
	return f(ctx)
}

// FromChan awaits the first value sent on ch.
func FromChan[T any](ch <-chan T) Awaitable[T] {
	return AwaitFunc[T](func(ctx context.Context) (T, error) {
		return core.Recv(ctx, ch)
	})
}

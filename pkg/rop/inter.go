package rop

import (
	"context"
	"time"
)

type ResultProvider[T any] interface {
	// Result returns the successful result value
	Result() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that can return a result or an error
type WithError[T, E any] interface {
	ResultProvider[T]
	// Err returns the error if operation failed
	Err() E
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}

// Awaitable is an in-flight computation. Await blocks until it settles or
// ctx ends, and returns the value or the rejection.
type Awaitable[T any] interface {
	Await(ctx context.Context) (T, error)
}

// Settler is implemented by awaitables that may already be settled, so a
// caller can read the outcome without waiting.
type Settler[T any] interface {
	Settled() (Result[T], bool)
}

var (
	_ WithError[int, error] = Result[int]{}
	_ Awaitable[int]        = (*Promise[int])(nil)
	_ Settler[int]          = (*Promise[int])(nil)
	_ Settler[int]          = (*Pending[int])(nil)
)

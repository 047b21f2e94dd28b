package rop

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNilError is stored in place of a nil error passed to Fail.
var ErrNilError = errors.New("rop: nil error")

// Either is a value that is exactly one of a success carrying T or a failure
// carrying E. The payload is reachable only through accessors.
type Either[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       E
	isSuccess bool
}

// Result is the default instantiation of Either with a Go error channel.
type Result[T any] = Either[T, error]

func Right[T, E any](v T) Either[T, E] {
	return Either[T, E]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Left[T, E any](e E) Either[T, E] {
	return Either[T, E]{
		err:       e,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Success[T any](v T) Result[T] {
	return Right[T, error](v)
}

// Fail builds a failed Result. A nil err is replaced by ErrNilError.
func Fail[T any](err error) Result[T] {
	if IsNil(err) {
		err = ErrNilError
	}
	return Left[T](err)
}

// FromTuple lifts a Go (value, error) pair.
func FromTuple[T any](v T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Success(v)
}

// FailFrom re-types a failure, keeping its identity, time and error.
// It must only be called on a failure.
func FailFrom[In, Out, E any](from Either[In, E]) Either[Out, E] {
	return Either[Out, E]{
		err:       from.err,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// Value returns the success payload and true, or the zero T and false.
func (r Either[T, E]) Value() (T, bool) {
	if !r.isSuccess {
		var zero T
		return zero, false
	}
	return r.value, true
}

// Failure returns the error payload and true, or the zero E and false.
func (r Either[T, E]) Failure() (E, bool) {
	if r.isSuccess {
		var zero E
		return zero, false
	}
	return r.err, true
}

func (r Either[T, E]) Result() T {
	v, _ := r.Value()
	return v
}

func (r Either[T, E]) Err() E {
	e, _ := r.Failure()
	return e
}

func (r Either[T, E]) Unwrap() (T, E) {
	return r.Result(), r.Err()
}

func (r Either[T, E]) UnwrapOr(fallback T) T {
	if r.isSuccess {
		return r.value
	}
	return fallback
}

func (r Either[T, E]) IsSuccess() bool {
	return r.isSuccess
}

func (r Either[T, E]) IsFailure() bool {
	return !r.isSuccess
}

func (r Either[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Either[T, E]) Id() uuid.UUID {
	return r.id
}

// Same reports whether r and other are the same Result value, created once
// and passed through.
func (r Either[T, E]) Same(other Either[T, E]) bool {
	return r.id == other.id && r.isSuccess == other.isSuccess
}

// SuccessFrom re-types the error channel of a success, keeping its identity,
// time and value. It must only be called on a success.
func SuccessFrom[T, E, F any](from Either[T, E]) Either[T, F] {
	return Either[T, F]{
		value:     from.value,
		isSuccess: true,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

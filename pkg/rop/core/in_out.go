package core

import (
	"context"
	"errors"
)

// ErrClosed is returned by Recv when the channel closed without a value.
var ErrClosed = errors.New("core: channel closed")

// Recv waits for the first value on ch. It fails with ctx.Err() if ctx ends
// first and with ErrClosed if ch closes empty.
func Recv[T any](ctx context.Context, ch <-chan T) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	select {
	case v, ok := <-ch:
		if !ok {
			return zero, ErrClosed
		}
		return v, nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// ToChan sends value on a buffered channel and closes it.
func ToChan[T any](value T) <-chan T {
	in := make(chan T, 1)
	in <- value
	close(in)
	return in
}

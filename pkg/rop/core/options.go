package core

import (
	"context"
	"time"
)

type OptionKey string

const (
	AwaitOptionKey OptionKey = "await_options"
)

type AwaitOptions struct {
	Timeout time.Duration
}

// WithAwaitTimeout bounds every await performed under the returned context.
// A non-positive d disables the bound.
func WithAwaitTimeout(ctx context.Context, d time.Duration) context.Context {
	return context.WithValue(ctx, AwaitOptionKey, AwaitOptions{Timeout: d})
}

func AwaitTimeout(ctx context.Context, defaultTimeout time.Duration) time.Duration {
	options, ok := ctx.Value(AwaitOptionKey).(AwaitOptions)
	if ok {
		return options.Timeout
	}
	return defaultTimeout
}

// BoundAwait applies the await timeout option, if any, to ctx.
func BoundAwait(ctx context.Context) (context.Context, context.CancelFunc) {
	if d := AwaitTimeout(ctx, 0); d > 0 {
		return context.WithTimeout(ctx, d)
	}
	return ctx, func() {}
}

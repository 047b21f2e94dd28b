package xlog

import (
	"github.com/ib-77/attempt/pkg/rop"
	"github.com/ib-77/attempt/pkg/rop/solo"
)

// Handlers logs a success at debug level and a failure at error level.
// A nil logger means the default one.
func Handlers[T any](l *Logger, op string) solo.Handlers[T, error] {
	if l == nil {
		l = Default()
	}
	return solo.Handlers[T, error]{
		OnSuccess: func(v T) {
			l.Debug("result ok", Op(op), Any("value", v))
		},
		OnError: func(err error) {
			l.Error("result failed", Op(op), Err(err))
		},
	}
}

// Tap logs r with its id and returns it unchanged.
func Tap[T any](l *Logger, op string, r rop.Result[T]) rop.Result[T] {
	if l == nil {
		l = Default()
	}
	return solo.Tap(r, Handlers[T](l.With("id", r.Id().String()), op))
}

package rop

import (
	"context"
	"errors"
	"fmt"
	"reflect"
)

// ThrownError carries a panic value that was not an error.
type ThrownError struct {
	Value any
}

func (e *ThrownError) Error() string {
	return fmt.Sprint(e.Value)
}

// Unwrap returns Value when it is an error, such as a typed nil error.
func (e *ThrownError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Chan, reflect.Map, reflect.Slice, reflect.Interface:
		return v.IsNil()
	}
	return false
}

func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

// Normalize turns a recovered panic value or a rejection into an error.
// Errors are kept as they are; anything else is wrapped in ThrownError.
func Normalize(thrown any) error {
	if err, ok := thrown.(error); ok && !IsNil(err) {
		return err
	}
	return &ThrownError{Value: thrown}
}

// Capture runs fn and returns its value as a success. A panic inside fn is
// recovered and returned as a failure.
func Capture[T any](fn func() T) (res Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = Fail[T](Normalize(r))
		}
	}()
	return Success(fn())
}

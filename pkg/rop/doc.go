// Package rop defines the Result data model: Either[T, E], its default
// instantiation Result[T] with a Go error channel, the single helper that
// turns panics and rejections into errors, and Pending[T], a Result that is
// settled when the caller awaits it.
//
// Combinators live in package solo, the fluent wrapper in package chain.
package rop

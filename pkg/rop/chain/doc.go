// Package chain provides a fluent wrapper around rop.Result
// for building synchronous chains using solo combinators.
//
// It composes functions like AndThen, Map, Try, Tap, OrElse and Match behind
// a convenient Chain[T] type that also carries a context.Context for the
// steps and for awaiting pending results.
//
// Key operations:
// - Start/FromValue/FromAttempt: begin a chain
// - Then: switch to a new Result[U] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - ThenAsync: await a pending step under the chain context
// - Map/MapError: transform the value or the error
// - Or: try a fallback when the chain failed
// - Ensure: run side effects without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain

// Package solo contains the single-value combinators that operate on
// rop.Either and rop.Result. They are the building blocks for error-aware
// chains without exceptions as control flow.
//
// Highlights:
// - Attempt/Try/AttemptAsync: turn a producer into a Result or a Pending
// - Map/MapError: transform the success or the error channel
// - AndThen/Pipe: chain dependent steps, stopping at the first failure
// - Ap: apply a wrapped function to an independently obtained value
// - OrElse: try a fallback when a Result failed
// - Match: reduce to a plain value via success/error handlers
// - Tap: observe a Result without changing it
// - AndThenAsync/MapAsync/OrElseAsync/PipeAsync: the same over rop.Pending
//
// Only Attempt, Try, AttemptAsync and Ap recover panics. A panic in a
// function passed to any other combinator escapes to the caller.
package solo

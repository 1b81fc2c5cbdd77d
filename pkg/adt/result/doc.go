// Package result provides a generic Result[T, E] holding either a success
// value of type T or a failure value of type E.
//
// Highlights:
// - Ok/Err: construct a Result
// - IsOk/IsErr/Value/ErrValue/Get: inspect state
// - Map/MapErr/AndThen: compose without unwrapping; failure short-circuits
// - Match: dispatch to exactly one handler per state
// - Option/OkOr/OkOrElse: convert between Result and option.Option
// - Capture: run a function and turn a panic into an Err
// - Try: adapt a (T, error) function into a Result
//
// A Result is immutable after construction. Each one carries an id and a
// creation timestamp for tracing; they take no part in the success/failure
// contract.
package result

// Package chain provides a fluent wrapper around option.Option[T] for
// building synchronous short-circuiting chains.
//
// Key operations:
// - Start/FromValue: begin a chain from an Option or a value
// - Then: compose a function that already returns an Option
// - Map/Inspect/Filter/Or/OrElse: same-type steps as methods
// - Then/Map (package-level): type-changing steps
// - Finally/UnwrapOr: collapse the chain into a concrete value
//
// Absence short-circuits: once the wrapped Option is empty, later steps are
// skipped without invoking their callbacks.
package chain

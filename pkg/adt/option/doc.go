// Package option provides a generic Option[T] expressing presence or absence
// of a value without nil or sentinel values.
//
// Highlights:
// - Some/None/FromOk/FromPtr/FromNillable: construct an Option
// - IsSome/IsNone/IsSomeAnd: inspect state
// - Unwrap/Expect/UnwrapOr/UnwrapOrElse: extract the value
// - Map/MapOr/MapOrElse/AndThen/And/Or/OrElse/Filter: compose without
//   unwrapping; absence short-circuits
// - Insert/Take/Replace: in-place state changes on a pointer receiver
// - Zip/Unzip: pair two options / split a paired option
// - Match: dispatch to exactly one handler per state
//
// Operations that change the payload type are package-level functions, since
// Go methods cannot introduce type parameters. Same-type operations are
// methods on Option[T].
package option

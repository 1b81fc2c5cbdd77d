// Package enum provides a generic runtime-tagged union: a Variant holds a
// discriminant naming the active case and the payload associated with it.
//
// Exactly one discriminant is active at a time and only its payload is
// meaningful. Narrowing is explicit:
// - Matches: test the active discriminant
// - Cast: extract the payload at its case type
// - Match: run a callback on the payload only when the case matches
//
// The closed two-case unions (option.Option, result.Result) carry their
// payloads in statically typed fields instead; Variant is the base for
// user-defined unions with more than two cases.
package enum

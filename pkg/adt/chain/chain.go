package chain

import "github.com/ib-77/adt3/pkg/adt/option"

// Chain wraps an option.Option to enable fluent chaining.
type Chain[T any] struct {
	opt option.Option[T]
}

// Start creates a new chain from an option.Option.
func Start[T any](o option.Option[T]) Chain[T] {
	return Chain[T]{opt: o}
}

// FromValue creates a new chain from a present value.
func FromValue[T any](value T) Chain[T] {
	return Chain[T]{opt: option.Some(value)}
}

// Option returns the underlying option.Option.
func (c Chain[T]) Option() option.Option[T] {
	return c.opt
}

// Then composes a function that already returns an option.Option[T].
func (c Chain[T]) Then(next func(T) option.Option[T]) Chain[T] {
	if v, ok := c.opt.Get(); ok {
		return Chain[T]{opt: next(v)}
	}
	return c
}

// Map transforms the present value to a new value.
func (c Chain[T]) Map(fn func(T) T) Chain[T] {
	return Chain[T]{opt: option.Map(c.opt, fn)}
}

// Inspect triggers a side effect on the present value without changing it.
func (c Chain[T]) Inspect(fn func(T)) Chain[T] {
	return Chain[T]{opt: c.opt.Inspect(fn)}
}

// Filter drops the value when pred does not hold for it.
func (c Chain[T]) Filter(pred func(T) bool) Chain[T] {
	return Chain[T]{opt: c.opt.Filter(pred)}
}

// Or keeps the chain when a value is present, otherwise continues with
// alternative.
func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	return Chain[T]{opt: c.opt.Or(alternative.opt)}
}

// OrElse keeps the chain when a value is present, otherwise continues with
// the option produced by fn, invoked at most once.
func (c Chain[T]) OrElse(fn func() option.Option[T]) Chain[T] {
	return Chain[T]{opt: c.opt.OrElse(fn)}
}

// UnwrapOr collapses the chain to the present value or fallback.
func (c Chain[T]) UnwrapOr(fallback T) T {
	return c.opt.UnwrapOr(fallback)
}

// Then chains a function that returns an option.Option[U].
func Then[T, U any](c Chain[T], next func(T) option.Option[U]) Chain[U] {
	return Chain[U]{opt: option.AndThen(c.opt, next)}
}

// Map chains a pure transformation function.
func Map[T, U any](c Chain[T], fn func(T) U) Chain[U] {
	return Chain[U]{opt: option.Map(c.opt, fn)}
}

// Finally collapses the chain into a final value via per-state handlers.
func Finally[T, U any](c Chain[T], h option.Handlers[T, U]) U {
	return option.Match(c.opt, h)
}

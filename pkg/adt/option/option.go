package option

import (
	"fmt"
	"reflect"
)

// Option represents presence or absence of a value of type T. The zero value
// is None, so Options embed safely. The value is stored inline; use IsSome to
// distinguish an explicit nil from absence.
type Option[T any] struct {
	value T
	some  bool
}

// Some constructs an Option containing value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, some: true}
}

// None constructs an empty Option for T.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromOk converts Go's comma-ok pattern (map lookups, type assertions) into
// an Option.
func FromOk[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(value)
}

// FromPtr dereferences ptr into Some, treating nil as None.
func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

// FromNillable wraps value in Some unless it is nil, including typed nil
// pointers, maps, slices, functions and channels hidden behind an interface.
func FromNillable[T any](value T) Option[T] {
	if isNil(value) {
		return None[T]()
	}
	return Some(value)
}

func isNil(i any) bool {
	if i == nil {
		return true
	}
	rv := reflect.ValueOf(i)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.some
}

// IsSomeAnd reports whether a value is present and pred holds for it.
// pred is not invoked on an empty Option.
func (o Option[T]) IsSomeAnd(pred func(T) bool) bool {
	return o.some && pred(o.value)
}

// Get returns the contained value along with a presence flag.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// Unwrap returns the contained value, panicking when the Option is empty.
// Reserve it for call sites where presence is an invariant.
func (o Option[T]) Unwrap() T {
	if !o.some {
		panic("option: unwrap on empty option")
	}
	return o.value
}

// Expect returns the contained value, panicking with msg when the Option is
// empty.
func (o Option[T]) Expect(msg string) T {
	if !o.some {
		panic(msg)
	}
	return o.value
}

// UnwrapOr returns the contained value, or fallback when empty.
func (o Option[T]) UnwrapOr(fallback T) T {
	if o.some {
		return o.value
	}
	return fallback
}

// UnwrapOrElse returns the contained value, or the result of fn when empty.
// fn is invoked at most once, only on an empty Option.
func (o Option[T]) UnwrapOrElse(fn func() T) T {
	if o.some {
		return o.value
	}
	return fn()
}

// Inspect invokes fn on the contained value when present and returns the
// Option unchanged. The value is never mutated.
func (o Option[T]) Inspect(fn func(T)) Option[T] {
	if o.some {
		fn(o.value)
	}
	return o
}

// Or returns the Option itself when a value is present, otherwise other.
func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.some {
		return o
	}
	return other
}

// OrElse returns the Option itself when a value is present, otherwise the
// result of fn. fn is invoked at most once, only on an empty Option.
func (o Option[T]) OrElse(fn func() Option[T]) Option[T] {
	if o.some {
		return o
	}
	return fn()
}

// Filter keeps the value when pred holds for it, otherwise yields None.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.some && pred(o.value) {
		return o
	}
	return None[T]()
}

// Insert sets the contained value regardless of prior state and returns the
// receiver for continued chaining.
func (o *Option[T]) Insert(value T) *Option[T] {
	o.value = value
	o.some = true
	return o
}

// Take moves the contained value out, leaving the receiver empty. On an
// empty receiver it returns None and leaves the receiver unchanged.
func (o *Option[T]) Take() Option[T] {
	if !o.some {
		return None[T]()
	}
	out := Some(o.value)
	var zero T
	o.value = zero
	o.some = false
	return out
}

// Replace swaps the contained value for value and returns the previous
// contents. The new value is only installed when a value was already
// present; on an empty receiver nothing is installed and None is returned.
func (o *Option[T]) Replace(value T) Option[T] {
	if !o.some {
		return None[T]()
	}
	old := o.value
	o.value = value
	return Some(old)
}

// String implements fmt.Stringer for debugging.
func (o Option[T]) String() string {
	if o.some {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// Map transforms the contained value with fn when present; absence
// propagates.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if o.some {
		return Some(fn(o.value))
	}
	return None[U]()
}

// MapOr applies fn to the contained value when present, or to fallback when
// empty. The mapped result is wrapped in a present Option in both cases.
func MapOr[T, U any](o Option[T], fallback T, fn func(T) U) Option[U] {
	if o.some {
		return Some(fn(o.value))
	}
	return Some(fn(fallback))
}

// MapOrElse behaves like MapOr but lazily produces the fallback input via
// fallback, invoked at most once, only on an empty Option.
func MapOrElse[T, U any](o Option[T], fallback func() T, fn func(T) U) Option[U] {
	if o.some {
		return Some(fn(o.value))
	}
	return Some(fn(fallback()))
}

// And returns other when a value is present; absence propagates.
func And[T, U any](o Option[T], other Option[U]) Option[U] {
	if o.some {
		return other
	}
	return None[U]()
}

// AndThen chains fn over the contained value when present; absence
// short-circuits without invoking fn.
func AndThen[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if o.some {
		return fn(o.value)
	}
	return None[U]()
}

// Pair holds two values zipped out of a pair of Options.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip combines two Options into one containing both values. Any empty input
// yields None.
func Zip[A, B any](a Option[A], b Option[B]) Option[Pair[A, B]] {
	if a.some && b.some {
		return Some(Pair[A, B]{First: a.value, Second: b.value})
	}
	return None[Pair[A, B]]()
}

// Unzip splits a paired Option into its two halves. An empty input yields
// two empty Options.
func Unzip[A, B any](o Option[Pair[A, B]]) (Option[A], Option[B]) {
	if o.some {
		return Some(o.value.First), Some(o.value.Second)
	}
	return None[A](), None[B]()
}

// Handlers bundles the per-state callbacks for Match. Both must be set and
// must produce the same result type.
type Handlers[T, U any] struct {
	OnSome func(T) U
	OnNone func() U
}

// Match dispatches to exactly one handler based on the active state and
// returns its result.
func Match[T, U any](o Option[T], h Handlers[T, U]) U {
	if o.some {
		return h.OnSome(o.value)
	}
	return h.OnNone()
}

package result

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/adt3/pkg/adt/option"
)

// Result holds either a success value of type T or a failure value of type E.
// Exactly one of the two is active at a time.
type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       E
	ok        bool
}

// Ok constructs a successful Result. The failure type comes first so it can
// be named while the value type is inferred: Ok[error](42).
func Ok[E, T any](value T) Result[T, E] {
	return Result[T, E]{
		value:     value,
		ok:        true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Err constructs a failed Result.
func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{
		err:       err,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// errFrom rebinds a failed Result to a new success type, preserving its
// identity metadata.
func errFrom[T, U, E any](from Result[T, E]) Result[U, E] {
	return Result[U, E]{
		err:       from.err,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// IsOk reports whether the Result holds a success value.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsErr reports whether the Result holds a failure value.
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// Value returns the success value; the zero T on a failed Result.
func (r Result[T, E]) Value() T {
	return r.value
}

// ErrValue returns the failure value; the zero E on a successful Result.
func (r Result[T, E]) ErrValue() E {
	return r.err
}

// Get returns both payload slots along with the success flag.
func (r Result[T, E]) Get() (T, E, bool) {
	return r.value, r.err, r.ok
}

// Id returns the identity assigned at construction.
func (r Result[T, E]) Id() uuid.UUID {
	return r.id
}

// CreatedAt returns the construction time (UTC).
func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

// Option converts the Result into an option.Option, keeping the success
// value and discarding the failure value.
func (r Result[T, E]) Option() option.Option[T] {
	if r.ok {
		return option.Some(r.value)
	}
	return option.None[T]()
}

// String implements fmt.Stringer for debugging.
func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}

// Map transforms the success value with fn; failure propagates.
func Map[T, U, E any](r Result[T, E], fn func(T) U) Result[U, E] {
	if r.ok {
		return Ok[E](fn(r.value))
	}
	return errFrom[T, U](r)
}

// MapErr transforms the failure value with fn; success propagates.
func MapErr[T, E, F any](r Result[T, E], fn func(E) F) Result[T, F] {
	if r.ok {
		return Ok[F](r.value)
	}
	return Err[T](fn(r.err))
}

// AndThen chains fn over the success value; failure short-circuits without
// invoking fn.
func AndThen[T, U, E any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	if r.ok {
		return fn(r.value)
	}
	return errFrom[T, U](r)
}

// Handlers bundles the per-state callbacks for Match. Both must be set and
// must produce the same result type.
type Handlers[T, E, U any] struct {
	OnOk  func(T) U
	OnErr func(E) U
}

// Match dispatches to exactly one handler based on the active state and
// returns its result.
func Match[T, E, U any](r Result[T, E], h Handlers[T, E, U]) U {
	if r.ok {
		return h.OnOk(r.value)
	}
	return h.OnErr(r.err)
}

// OkOr converts an option.Option into a Result, supplying err for the empty
// case.
func OkOr[T, E any](o option.Option[T], err E) Result[T, E] {
	if v, ok := o.Get(); ok {
		return Ok[E](v)
	}
	return Err[T](err)
}

// OkOrElse converts an option.Option into a Result, lazily constructing the
// failure value. fn is invoked at most once, only on an empty Option.
func OkOrElse[T, E any](o option.Option[T], fn func() E) Result[T, E] {
	if v, ok := o.Get(); ok {
		return Ok[E](v)
	}
	return Err[T](fn())
}

// Capture runs thunk synchronously and wraps its return value in Ok. If
// thunk panics, the panic is recovered and its description becomes the Err
// value. Only a panic raised by this invocation of thunk is recovered;
// nothing else is intercepted.
func Capture[T any](thunk func() T) (res Result[T, string]) {
	defer func() {
		if r := recover(); r != nil {
			res = Err[T](describe(r))
		}
	}()
	return Ok[string](thunk())
}

func describe(r any) string {
	if err, ok := r.(error); ok {
		return err.Error()
	}
	return fmt.Sprintf("%v", r)
}

// Try adapts a function in Go's (T, error) convention into a Result.
func Try[T any](thunk func() (T, error)) Result[T, error] {
	v, err := thunk()
	if err != nil {
		return Err[T](err)
	}
	return Ok[error](v)
}

package enum

// Variant is a runtime-tagged value: a discriminant naming the active case
// plus the payload that belongs to it.
type Variant struct {
	tag     string
	payload any
}

// New constructs a Variant with tag as the active case carrying payload.
func New[T any](tag string, payload T) Variant {
	return Variant{tag: tag, payload: payload}
}

// NewUnit constructs a Variant whose case carries no data.
func NewUnit(tag string) Variant {
	return Variant{tag: tag}
}

// Tag returns the active discriminant.
func (v Variant) Tag() string {
	return v.tag
}

// Matches reports whether tag is the active discriminant.
func (v Variant) Matches(tag string) bool {
	return v.tag == tag
}

// Cast returns the payload as T when tag is the active discriminant and the
// payload holds a T. It never panics.
func Cast[T any](v Variant, tag string) (T, bool) {
	if v.tag != tag {
		var zero T
		return zero, false
	}
	t, ok := v.payload.(T)
	return t, ok
}

// Match invokes fn on the payload only when tag is the active discriminant
// and the payload holds a T. It reports whether fn ran.
func Match[T any](v Variant, tag string, fn func(T)) bool {
	t, ok := Cast[T](v, tag)
	if !ok {
		return false
	}
	fn(t)
	return true
}

package style

// Opt is an optional attribute value. The zero Opt is unset.
type Opt[T comparable] struct {
	v  T
	ok bool
}

// Some returns an Opt holding v.
func Some[T comparable](v T) Opt[T] {
	return Opt[T]{v: v, ok: true}
}

// Get returns the value and whether it is set.
func (o Opt[T]) Get() (T, bool) { return o.v, o.ok }

// IsSet reports whether a value is present.
func (o Opt[T]) IsSet() bool { return o.ok }

// Or returns the value if set, otherwise def.
func (o Opt[T]) Or(def T) T {
	if o.ok {
		return o.v
	}
	return def
}

// Override returns n when it is set, otherwise o.
func (o Opt[T]) Override(n Opt[T]) Opt[T] {
	if n.ok {
		return n
	}
	return o
}

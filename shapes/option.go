package shapes

// Opt is an optional value for fields where the zero value is meaningful.
type Opt[T any] struct {
	value T
	set   bool
}

func Some[T any](value T) Opt[T] {
	return Opt[T]{value: value, set: true}
}

func (o Opt[T]) Get() (T, bool) {
	return o.value, o.set
}

func (o Opt[T]) OrValue(fallback T) T {
	if o.set {
		return o.value
	}

	return fallback
}

func (o Opt[T]) OrDefault() T {
	var zero T
	return o.OrValue(zero)
}

package maybe

// Maybe is an optional value. The zero value is None.
type Maybe[T any] struct {
	value T
	valid bool
}

func Some[T any](value T) Maybe[T] {
	return Maybe[T]{value: value, valid: true}
}

func None[T any]() Maybe[T] {
	return Maybe[T]{}
}

// FromOk wraps the common (value, ok) pair.
func FromOk[T any](value T, ok bool) Maybe[T] {
	return Maybe[T]{value: value, valid: ok}
}

func (m Maybe[T]) IsValid() bool {
	return m.valid
}

func (m Maybe[T]) Value() T {
	return m.value
}

func (m Maybe[T]) ValueOrDefault(defaultValue T) T {
	if m.valid {
		return m.value
	}
	return defaultValue
}

// Get returns the value together with its validity flag.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.valid
}

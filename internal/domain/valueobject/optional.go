package valueobject

// Optional - поле частичного обновления: либо задано значение, либо поле отсутствует.
type Optional[T any] struct {
	value T
	set   bool
}

func Some[T any](value T) Optional[T] {
	return Optional[T]{value: value, set: true}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

// FromPtr превращает nil в отсутствующее поле.
func FromPtr[T any](ptr *T) Optional[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

func (o Optional[T]) IsSet() bool {
	return o.set
}

func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// ApplyTo записывает значение в target, если поле задано.
func (o Optional[T]) ApplyTo(target *T) {
	if o.set {
		*target = o.value
	}
}

package buildkit

// Optional holds a value that may be unset. The zero value is unset.
//
// Example:
//
//	gpu := buildkit.None[string]()
//	gpu = buildkit.Some("RTX 5090")
//	v, ok := gpu.Get()
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// None returns an unset Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is set.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// IsSet returns true if a value is present.
func (o Optional[T]) IsSet() bool {
	return o.set
}

// OrElse returns the value, or def when unset.
func (o Optional[T]) OrElse(def T) T {
	if !o.set {
		return def
	}
	return o.value
}

package attr

// Validator checks a candidate value for a named field and returns the value
// that should actually be stored. Implementations may normalize the input
// (trim, casefold, etc.); the returned value is what subsequent reads observe.
// A non-nil error rejects the write and must leave no side effects.
type Validator[V any] func(field string, value V) (V, error)

// Option configures an accessor during construction.
type Option[H any, V any] func(*Accessor[H, V])

// WithValidator sets the validation function invoked on every write. Without
// a validator every value is accepted and stored unchanged.
func WithValidator[H any, V any](fn Validator[V]) Option[H, V] {
	return func(a *Accessor[H, V]) {
		a.validator = fn
	}
}

// WithDefault sets a default factory. When a host reads the field before any
// write, the factory is called to materialize that host's initial value. The
// factory runs once per host instance, so mutable defaults are never shared
// across instances.
func WithDefault[H any, V any](fn func() V) Option[H, V] {
	return func(a *Accessor[H, V]) {
		a.defaultFn = fn
	}
}

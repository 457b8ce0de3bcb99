package attr

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"weak"
)

// Accessor manages a single named field for every instance of the host type H.
// One accessor is declared per field and shared by all hosts; each host's value
// lives in its own cache slot keyed by a weak pointer, so the accessor never
// keeps a host instance alive. Entries are purged automatically once their host
// becomes unreachable.
type Accessor[H any, V any] struct {
	name      string
	validator Validator[V]
	defaultFn func() V

	mu      sync.Mutex
	entries map[weak.Pointer[H]]V
}

// New creates an unbound accessor. Call Bind at the declaration site to assign
// the field name before first use.
func New[H any, V any](opts ...Option[H, V]) *Accessor[H, V] {
	a := &Accessor[H, V]{
		entries: make(map[weak.Pointer[H]]V),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Bind assigns the field name used in error messages and introspection.
// It is meant to be called exactly once, at the declaration site, and returns
// the accessor so declarations stay a single expression. Binding twice or
// binding an empty name panics, following the package's fail-fast pattern for
// construction-time mistakes.
func (a *Accessor[H, V]) Bind(field string) *Accessor[H, V] {
	if field == "" {
		panic("attr: field name must not be empty")
	}
	if a.name != "" {
		panic(fmt.Sprintf("attr: accessor already bound to %q", a.name))
	}
	a.name = field
	return a
}

// Name returns the bound field name, or an empty string before Bind.
func (a *Accessor[H, V]) Name() string {
	return a.name
}

// HasDefault reports whether a default factory is configured.
func (a *Accessor[H, V]) HasDefault() bool {
	return a.defaultFn != nil
}

// Len returns the number of live cache entries. Entries for collected hosts
// disappear shortly after garbage collection, so Len observably returns to
// baseline once hosts go away.
func (a *Accessor[H, V]) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.entries)
}

// Get returns the value stored for host. On the first read of an unwritten
// field it materializes the configured default, stores it and returns it; with
// no default configured it returns an error wrapping ErrUninitialized.
func (a *Accessor[H, V]) Get(host *H) (V, error) {
	var zero V
	if err := a.usable(host); err != nil {
		return zero, err
	}

	key := weak.Make(host)

	a.mu.Lock()
	defer a.mu.Unlock()

	if v, ok := a.entries[key]; ok {
		return v, nil
	}
	if a.defaultFn == nil {
		return zero, errors.Join(ErrUninitialized, fmt.Errorf("field %q was never set", a.name))
	}

	// Materialized under the lock so a default is constructed at most once
	// per host even if the single-thread assumption is ever relaxed.
	v := a.defaultFn()
	a.store(host, key, v)
	return v, nil
}

// Set validates value and stores the accepted (possibly normalized) result for
// host. On rejection the error is returned as-is and the previously stored
// value, if any, is left untouched.
func (a *Accessor[H, V]) Set(host *H, value V) error {
	if err := a.usable(host); err != nil {
		return err
	}

	v := value
	if a.validator != nil {
		var err error
		if v, err = a.validator(a.name, value); err != nil {
			return err
		}
	}

	key := weak.Make(host)

	a.mu.Lock()
	defer a.mu.Unlock()
	a.store(host, key, v)
	return nil
}

// Delete removes the cache entry for host, if present. Deleting an absent
// entry is a no-op.
func (a *Accessor[H, V]) Delete(host *H) {
	if host == nil || a.name == "" {
		return
	}

	key := weak.Make(host)

	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.entries, key)
}

func (a *Accessor[H, V]) usable(host *H) error {
	if a.name == "" {
		return ErrUnbound
	}
	if host == nil {
		return errors.Join(ErrNilHost, fmt.Errorf("field %q requires a host instance", a.name))
	}
	return nil
}

// store must be called with the lock held. The first entry for a host
// registers a cleanup that drops the slot once the host is collected; the
// cleanup keys by weak pointer only, so it never extends the host's lifetime.
func (a *Accessor[H, V]) store(host *H, key weak.Pointer[H], v V) {
	_, existed := a.entries[key]
	a.entries[key] = v
	if !existed {
		runtime.AddCleanup(host, func(k weak.Pointer[H]) {
			a.mu.Lock()
			delete(a.entries, k)
			a.mu.Unlock()
		}, key)
	}
}

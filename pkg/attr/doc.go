// Package attr provides reusable, validated field accessors with per-instance
// caching and automatic cache cleanup tied to host lifetime.
//
// An Accessor stands in for a single named field on a host type: it intercepts
// reads and writes, runs a validation function before accepting a write, and
// keeps the accepted value in a cache slot private to each host instance. The
// accessor itself is declared once and shared by every instance of the host
// type — the validation rule is shared, the data never is.
//
// # Key Features
//
//   - Generic over both the host type and the value type
//   - Write validation with value normalization (the validator's return value
//     is what gets stored)
//   - Optional default factory, materialized fresh per host instance on first
//     read so mutable defaults are never aliased across instances
//   - Weak-keyed cache: entries never keep a host instance alive and are
//     purged automatically after the host is garbage collected
//   - Field introspection without an instance (Name, HasDefault, Len)
//
// # Usage
//
// Declare one accessor per field at package or type level and bind its name:
//
//	type Account struct{ id string }
//
//	var balance = attr.New[Account, int64](
//		attr.WithValidator[Account](func(field string, v int64) (int64, error) {
//			if v < 0 {
//				return 0, fmt.Errorf("%s must not be negative", field)
//			}
//			return v, nil
//		}),
//		attr.WithDefault[Account, int64](func() int64 { return 0 }),
//	).Bind("balance")
//
// Reads and writes go through the accessor with the instance as context:
//
//	acc := &Account{id: "a-1"}
//	if err := balance.Set(acc, 100); err != nil {
//		// rejected: prior value untouched
//	}
//	v, err := balance.Get(acc)
//
// # Defaults Policy
//
// An accessor either has a default factory or it does not, and the behavior is
// consistent per field: with WithDefault, the first unwritten read constructs
// and caches that host's own default; without it, the read fails with
// ErrUninitialized. The two policies are never mixed on one field.
//
// # Lifecycle
//
// The cache is keyed by weak pointers and a runtime cleanup removes a host's
// slot once the host becomes unreachable. The association is observational
// only: dropping every reference to a host releases its cached values without
// any explicit teardown, and Len reflects the release after the next
// collection cycle. One constraint follows from the cleanup mechanics: a
// cached value must not reference its own host, or the entry can never be
// released.
//
// # Concurrency
//
// Accessors are written for single-threaded attribute access but guard their
// cache with a mutex, so concurrent Get/Set/Delete on different hosts is safe
// and a default is materialized at most once per host. Bind is construction
// time only and must happen before first use.
package attr

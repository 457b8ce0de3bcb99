package attr

import "errors"

// Predefined errors for the attr package.
var (
	// ErrUninitialized is returned by Get when the field has never been written
	// on the given host and no default factory is configured.
	ErrUninitialized = errors.New("attr: field is not initialized")

	// ErrUnbound is returned when an accessor is used before Bind assigned it
	// a field name.
	ErrUnbound = errors.New("attr: accessor is not bound to a field name")

	// ErrNilHost is returned when Get or Set is called without a host instance.
	// Field metadata is still reachable through Name, HasDefault and Len.
	ErrNilHost = errors.New("attr: nil host instance")
)

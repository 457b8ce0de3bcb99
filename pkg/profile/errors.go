package profile

import "errors"

// Predefined errors for the profile package.
var (
	// ErrUnknownField is returned by ApplyRaw for a field name no accessor
	// manages.
	ErrUnknownField = errors.New("profile: unknown field")

	// ErrInvalidSeed is returned when a seed document cannot be decoded or
	// one of its records fails validation.
	ErrInvalidSeed = errors.New("profile: invalid seed document")
)

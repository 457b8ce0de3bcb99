package validate

import "errors"

// Predefined errors for the validate package.
var (
	// ErrValidation is matched by every validation failure produced by this
	// package, regardless of the specific rule that rejected the value.
	ErrValidation = errors.New("validate: value rejected")

	// ErrTypeMismatch tags failures where a value's dynamic type does not fit
	// the field at all (e.g. a number where a string is expected). It is a
	// sub-case of ErrValidation: errors carrying it match both sentinels.
	ErrTypeMismatch = errors.New("validate: type mismatch")
)

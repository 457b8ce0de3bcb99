// Package validate provides the rule engine and field validators used by the
// attr accessors.
//
// The package follows a declarative model: small Rule values couple a boolean
// Check with the FieldError to report on failure, and Apply aggregates any
// failures into a FieldErrors slice that implements the error interface. A
// FieldError carries the field name, a printable description of the rejected
// value, and a human-readable reason, so callers can surface precise
// diagnostics without string parsing.
//
// Core building blocks:
//   - Rule        – check function plus error metadata
//   - FieldError  – one rejection: field, value description, reason
//   - FieldErrors – aggregate implementing error, matches ErrValidation
//   - Apply       – evaluates rules and collects failures
//
// On top of the rules sit normalizing validators (Username, Email, TimeOrNil)
// shaped for attr.WithValidator: they return the value that should actually be
// stored, after trimming and casefolding where the field's policy calls for
// it.
//
// # Error Handling
//
// Every failure matches ErrValidation via errors.Is. Dynamic-type failures
// from the Coerce helpers additionally match ErrTypeMismatch, so callers can
// distinguish "wrong kind of value" from "right kind, bad content" while
// treating both as validation errors:
//
//	err := validate.Apply(validate.EmailShape("email", input))
//	if errors.Is(err, validate.ErrValidation) {
//		// rejected; inspect with errors.As into validate.FieldErrors
//	}
//
// The package holds no state and every helper is goroutine-safe.
package validate

package validate

import (
	"fmt"
	"strings"
)

// FieldError describes a single rejected write: the field it targeted, a
// printable description of the offending value, and the reason the rule gave.
type FieldError struct {
	Field  string
	Value  string
	Reason string
}

// FieldErrors aggregates the failures of one validation pass.
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(fe))
	for _, e := range fe {
		parts = append(parts, fmt.Sprintf("%s: %s (got %s)", e.Field, e.Reason, e.Value))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is makes every FieldErrors value match ErrValidation via errors.Is.
func (fe FieldErrors) Is(target error) bool {
	return target == ErrValidation
}

func (fe FieldErrors) IsEmpty() bool {
	return len(fe) == 0
}

func (fe FieldErrors) Has(field string) bool {
	for _, e := range fe {
		if e.Field == field {
			return true
		}
	}
	return false
}

func (fe FieldErrors) Get(field string) []string {
	var reasons []string
	for _, e := range fe {
		if e.Field == field {
			reasons = append(reasons, e.Reason)
		}
	}
	return reasons
}

func (fe FieldErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, e := range fe {
		if !seen[e.Field] {
			fields = append(fields, e.Field)
			seen[e.Field] = true
		}
	}
	return fields
}

// Rule couples a boolean check with the error to report when it fails.
type Rule struct {
	Check func() bool
	Error FieldError
}

// Apply evaluates rules in order and returns the aggregated failures, or nil
// when every rule passes.
func Apply(rules ...Rule) error {
	var failures FieldErrors

	for _, rule := range rules {
		if !rule.Check() {
			failures = append(failures, rule.Error)
		}
	}

	if failures.IsEmpty() {
		return nil
	}
	return failures
}

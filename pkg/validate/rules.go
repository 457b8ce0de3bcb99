package validate

import (
	"fmt"
	"strings"
	"time"
)

// NonEmpty validates that a string is not empty after trimming whitespace.
func NonEmpty(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: FieldError{
			Field:  field,
			Value:  fmt.Sprintf("%q", value),
			Reason: "must be a non-empty string",
		},
	}
}

// EmailShape validates that a string looks like an email address: it must
// contain both '@' and '.'. This is a deliberate shape check, not RFC parsing.
func EmailShape(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.Contains(value, "@") && strings.Contains(value, ".")
		},
		Error: FieldError{
			Field:  field,
			Value:  fmt.Sprintf("%q", value),
			Reason: "must contain '@' and '.'",
		},
	}
}

// PresentTime validates that a timestamp denotes a real instant (not the zero
// time).
func PresentTime(field string, value time.Time) Rule {
	return Rule{
		Check: func() bool {
			return !value.IsZero()
		},
		Error: FieldError{
			Field:  field,
			Value:  value.String(),
			Reason: "must be a real timestamp",
		},
	}
}

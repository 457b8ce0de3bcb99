package validate

import (
	"errors"
	"fmt"
	"time"
)

// Coercions for untyped inputs (decoded YAML/JSON, reflection, etc.). Static
// typing keeps wrong value kinds out of the typed API, so this is where the
// runtime type checks live: a value of the wrong dynamic type fails with an
// error matching both ErrTypeMismatch and ErrValidation.

// CoerceString requires value to be a string.
func CoerceString(field string, value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", typeMismatch(field, value, "must be a string")
	}
	return s, nil
}

// CoerceTime requires value to be nil, a time.Time, a *time.Time, or an
// RFC 3339 string. Nil passes through as the "unset" sentinel.
func CoerceTime(field string, value any) (*time.Time, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case time.Time:
		return &v, nil
	case *time.Time:
		return v, nil
	case string:
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return nil, typeMismatch(field, value, "must be a timestamp or null")
		}
		return &t, nil
	default:
		return nil, typeMismatch(field, value, "must be a timestamp or null")
	}
}

func typeMismatch(field string, value any, reason string) error {
	return errors.Join(ErrTypeMismatch, FieldErrors{{
		Field:  field,
		Value:  describe(value),
		Reason: reason,
	}})
}

func describe(value any) string {
	if value == nil {
		return "<nil>"
	}
	if s, ok := value.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%v (%T)", value, value)
}

package validate

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// Normalizing validators shaped for attr.WithValidator: each takes the field
// name and the candidate value and returns the value to store, or a rejection
// error aggregating the failed rules.

// Username trims and Unicode-casefolds the value, then requires it to be
// non-empty. The folded form is what gets stored, so lookups stay
// case-insensitive without the caller doing anything.
func Username(field, value string) (string, error) {
	v := cases.Fold().String(strings.TrimSpace(value))
	if err := Apply(NonEmpty(field, v)); err != nil {
		return "", err
	}
	return v, nil
}

// Email trims the value and requires the '@' + '.' shape.
func Email(field, value string) (string, error) {
	v := strings.TrimSpace(value)
	if err := Apply(
		NonEmpty(field, v),
		EmailShape(field, v),
	); err != nil {
		return "", err
	}
	return v, nil
}

// TimeOrNil accepts nil as the explicit "unset" sentinel; a non-nil timestamp
// must denote a real instant.
func TimeOrNil(field string, value *time.Time) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	if err := Apply(PresentTime(field, *value)); err != nil {
		return nil, err
	}
	return value, nil
}

package profile

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"
)

// Seed decodes a YAML document of profile records and applies each record's
// fields through the validated accessors. The expected shape:
//
//	profiles:
//	  - username: john_doe
//	    email: john@example.com
//	    last_login: 2024-06-01T12:00:00Z
//
// Fields are applied in declaration order; missing fields stay unset, unknown
// keys and invalid values abort with an error naming the offending record.
func Seed(r io.Reader) ([]*Profile, error) {
	var doc struct {
		Profiles []map[string]any `yaml:"profiles"`
	}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Join(ErrInvalidSeed, err)
	}

	known := Fields()
	profiles := make([]*Profile, 0, len(doc.Profiles))
	for i, record := range doc.Profiles {
		for key := range record {
			if !slices.Contains(known, key) {
				return nil, errors.Join(ErrInvalidSeed,
					fmt.Errorf("profile %d: %w: field %q", i, ErrUnknownField, key))
			}
		}

		p := New()
		for _, field := range known {
			raw, ok := record[field]
			if !ok {
				continue
			}
			if err := p.ApplyRaw(field, raw); err != nil {
				return nil, errors.Join(ErrInvalidSeed, fmt.Errorf("profile %d: %w", i, err))
			}
		}

		profiles = append(profiles, p)
	}

	return profiles, nil
}

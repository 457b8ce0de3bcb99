package profile

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/attrkit/pkg/attr"
	"github.com/dmitrymomot/attrkit/pkg/validate"
)

// Field names managed by the shared accessors.
const (
	FieldUsername  = "username"
	FieldEmail     = "email"
	FieldLastLogin = "last_login"
)

// One accessor per field, shared by every Profile. The accessors hold the
// rules; each profile's data lives in its own cache slot. Username and email
// have no default and read as ErrUninitialized until written; last login
// defaults to nil, the explicit "never logged in" sentinel.
var (
	usernameAttr = attr.New[Profile, string](
		attr.WithValidator[Profile](validate.Username),
	).Bind(FieldUsername)

	emailAttr = attr.New[Profile, string](
		attr.WithValidator[Profile](validate.Email),
	).Bind(FieldEmail)

	lastLoginAttr = attr.New[Profile, *time.Time](
		attr.WithValidator[Profile](validate.TimeOrNil),
		attr.WithDefault[Profile, *time.Time](func() *time.Time { return nil }),
	).Bind(FieldLastLogin)
)

// Profile is a user profile whose fields are managed entirely by the shared
// accessors. The struct stores nothing but its identity; every field value
// lives in the accessors' per-instance caches and is released when the
// profile is garbage collected.
type Profile struct {
	id uuid.UUID
}

// New creates a profile with a fresh identity and no field values.
func New() *Profile {
	return &Profile{id: uuid.New()}
}

// ID returns the profile's identity.
func (p *Profile) ID() uuid.UUID {
	return p.id
}

func (p *Profile) Username() (string, error) {
	return usernameAttr.Get(p)
}

func (p *Profile) SetUsername(value string) error {
	return usernameAttr.Set(p, value)
}

func (p *Profile) Email() (string, error) {
	return emailAttr.Get(p)
}

func (p *Profile) SetEmail(value string) error {
	return emailAttr.Set(p, value)
}

// LastLogin returns the recorded last login, or nil if the user never logged
// in.
func (p *Profile) LastLogin() (*time.Time, error) {
	return lastLoginAttr.Get(p)
}

func (p *Profile) SetLastLogin(value *time.Time) error {
	return lastLoginAttr.Set(p, value)
}

// Touch records the current instant as the last login.
func (p *Profile) Touch() error {
	now := time.Now()
	return lastLoginAttr.Set(p, &now)
}

// ClearLastLogin drops the recorded last login; the next read falls back to
// the nil default.
func (p *Profile) ClearLastLogin() {
	lastLoginAttr.Delete(p)
}

// ApplyRaw writes an untyped value to the named field, coercing the dynamic
// type first. Wrong dynamic types fail with validate.ErrTypeMismatch; unknown
// field names with ErrUnknownField. Used by Seed and other untyped inputs.
func (p *Profile) ApplyRaw(field string, value any) error {
	switch field {
	case FieldUsername:
		s, err := validate.CoerceString(field, value)
		if err != nil {
			return err
		}
		return p.SetUsername(s)
	case FieldEmail:
		s, err := validate.CoerceString(field, value)
		if err != nil {
			return err
		}
		return p.SetEmail(s)
	case FieldLastLogin:
		ts, err := validate.CoerceTime(field, value)
		if err != nil {
			return err
		}
		return p.SetLastLogin(ts)
	default:
		return errors.Join(ErrUnknownField, fmt.Errorf("field %q", field))
	}
}

// Fields lists the field names managed by the shared accessors, in
// declaration order.
func Fields() []string {
	return []string{FieldUsername, FieldEmail, FieldLastLogin}
}

// Class-level access: the shared accessors themselves, for introspection
// without any profile instance.

func UsernameField() *attr.Accessor[Profile, string] { return usernameAttr }

func EmailField() *attr.Accessor[Profile, string] { return emailAttr }

func LastLoginField() *attr.Accessor[Profile, *time.Time] { return lastLoginAttr }

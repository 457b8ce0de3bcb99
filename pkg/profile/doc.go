// Package profile manages user profiles whose fields are delegated to shared,
// validated accessors.
//
// A Profile owns nothing but its identity. Its username, email and last-login
// fields are declared once at package level as attr accessors — the rules are
// shared by every profile, the data is isolated per instance — and every read
// or write goes through them:
//
//	p := profile.New()
//	if err := p.SetUsername("John_Doe"); err != nil { ... }
//	name, err := p.Username() // "john_doe" (normalized)
//
// Field policies:
//   - username: non-empty after trimming, stored casefolded; reading before
//     the first write fails with attr.ErrUninitialized
//   - email: must contain '@' and '.'; no default, same uninitialized policy
//   - last_login: nil or a real timestamp; defaults to nil ("never logged in")
//
// The Registry tracks live profiles by identity through weak pointers, so
// registration never delays collection and slots vanish with their profiles.
// Seed builds profiles from an untyped YAML document, routing values through
// the same validators so bad shapes fail with validate.ErrTypeMismatch.
package profile

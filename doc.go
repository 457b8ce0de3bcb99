// Package attrkit provides validated, per-instance-cached field accessors for
// Go types.
//
// AttrKit solves a narrow problem well: declaring a field's validation rule
// once, sharing that rule across every instance of a type, and keeping each
// instance's value in a cache that never outlives the instance. Reads and
// writes go through a reusable accessor object instead of struct fields, so
// invalid values are rejected before they are ever stored and unset fields
// resolve their defaults consistently.
//
// The module is organized as independent packages:
//
//   - pkg/attr     – the accessor engine: validation, per-instance caching,
//     weak lifetime coupling, introspection
//   - pkg/validate – the rule engine and normalizing field validators
//   - pkg/profile  – a user-profile domain built on the accessors, with a
//     weak-valued registry and YAML seeding
//
// Start with pkg/attr; the profile package shows the intended composition
// pattern end to end.
package attrkit

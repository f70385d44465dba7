// Package generator emits Go model code from derived schema definitions.
//
// Each definition in a fragment becomes an exported struct with json-tagged
// fields: required properties map to value types, optional properties to
// pointers, and $ref properties to pointers at the referenced type (which
// also keeps self-referential definitions representable). Output is run
// through goimports-equivalent processing so it compiles as written.
package generator

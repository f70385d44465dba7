// Package paramgen derives an endpoint's OpenAPI 2.0 parameter list from
// host-framework metadata.
//
// Derive orchestrates the whole pass: it extracts reflected parameters from
// method bindings, expands composite-typed non-body parameters into
// per-property parameters, merges explicitly authored overrides over the
// reflected set (overrides win on conflict), unions the two sources with
// (name, in) deduplication, resolves composite body parameters into schema
// references (or flattens them into formData fields when the endpoint carries
// a form parameter), and normalizes every parameter's type for emission.
//
// The pass is tolerant-by-omission: absent metadata yields a nil result,
// untyped parameters are silently excluded, and nothing here returns an error.
package paramgen

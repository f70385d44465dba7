// Package metadata defines the contract between oasderive and the host
// framework that owns endpoint and model metadata.
//
// The derivation core never reads framework state directly. Everything it
// knows arrives through the Provider interface (per-endpoint argument types,
// argument bindings, and explicit parameter overrides) and through
// CompositeHandle values (per-type property sets and property metadata).
// Type identity is resolved once at this boundary into a TypeRef tagged
// variant, so downstream derivation never re-checks raw type names.
//
// Three concrete providers ship with the library:
//
//   - Registry: an in-memory provider with fluent registration, suitable for
//     frameworks that collect metadata at startup
//   - ParseManifest/LoadManifest: builds a Registry from a declarative
//     YAML or JSON manifest file
//   - structmeta (subpackage): derives composite handles from Go structs
//     via reflection
package metadata

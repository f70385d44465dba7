// Package docgen assembles derived endpoint parameters and schema
// definitions into a serializable document fragment.
//
// A Fragment is the unit the CLI and MCP surfaces emit: one entry per
// endpoint with its derived parameter list, plus the deduplicated definition
// registry. Fragments serialize to JSON or YAML, and Lint checks the
// structural properties the derivation guarantees (schema/type exclusivity,
// array item shapes, valid locations, duplicate definitions).
package docgen

package schemagen

import "github.com/erraggy/oasderive/spec"

// Definition is one named schema definition registered during a build.
type Definition struct {
	Name   string
	Schema *spec.Schema
}

// Registry accumulates schema definitions for the duration of one document
// build. It is append-only and does not deduplicate by name: repeated
// expansions of the same type each append a fresh entry, and consumers that
// need one entry per name use Deduped.
type Registry struct {
	defs []Definition
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Append registers a definition under the given name.
func (r *Registry) Append(name string, schema *spec.Schema) {
	r.defs = append(r.defs, Definition{Name: name, Schema: schema})
}

// Definitions returns all registered definitions in registration order,
// duplicates included.
func (r *Registry) Definitions() []Definition {
	return r.defs
}

// Len returns the number of registered entries, duplicates included.
func (r *Registry) Len() int {
	return len(r.defs)
}

// Deduped returns a name-keyed view of the registry with the last entry
// winning for each name.
func (r *Registry) Deduped() map[string]*spec.Schema {
	out := make(map[string]*spec.Schema, len(r.defs))
	for _, d := range r.defs {
		out[d.Name] = d.Schema
	}
	return out
}

package schemagen

import (
	"github.com/erraggy/oasderive/metadata"
	"github.com/erraggy/oasderive/spec"
)

// DefinitionBuilder recursively derives named schema definitions for
// composite types, registering each derived definition (nested types
// included) in its Registry.
//
// A builder is scoped to one document build and is not safe for concurrent
// use. The in-progress set makes self-referential type graphs terminate: a
// type currently being expanded is referenced by name instead of re-expanded.
type DefinitionBuilder struct {
	reg        *Registry
	inProgress map[string]bool
}

// NewDefinitionBuilder returns a builder appending into reg.
func NewDefinitionBuilder(reg *Registry) *DefinitionBuilder {
	return &DefinitionBuilder{
		reg:        reg,
		inProgress: make(map[string]bool),
	}
}

// Build derives the schema definition for a composite type, appends it to the
// registry, and returns the type's definition name for callers to turn into
// a $ref. When the type is already mid-expansion (a cycle), the name is
// returned immediately without appending a second entry.
func (b *DefinitionBuilder) Build(h metadata.CompositeHandle) string {
	name := h.Name()
	if b.inProgress[name] {
		return name
	}
	b.inProgress[name] = true
	defer delete(b.inProgress, name)

	def := &spec.Schema{
		Type:       "object",
		Properties: make(map[string]*spec.Schema),
	}
	var required []string

	for _, propName := range ExposedProperties(h) {
		meta, _ := h.Property(propName)

		def.Properties[propName] = b.propertySchema(meta)

		// A property is required unless its metadata says otherwise.
		if meta.Required == nil || *meta.Required {
			required = append(required, propName)
		}
	}
	if len(required) > 0 {
		def.Required = required
	}

	b.reg.Append(name, def)
	return name
}

// propertySchema derives the schema fragment for one property.
func (b *DefinitionBuilder) propertySchema(meta metadata.PropertyMetadata) *spec.Schema {
	enum := ResolveEnum(meta.Enum)

	if nested, ok := meta.Type.Handle(); ok && !IsPrimitiveName(MapTypeName(meta.Type.Name())) {
		nestedName := b.Build(nested)
		ref := spec.RefSchema(nestedName)

		if meta.IsArray {
			// The enum moves off the array wrapper onto items.
			ref.Enum = enum
			return &spec.Schema{Type: "array", Items: ref}
		}

		remaining := remainingSchema(meta, enum)
		if remaining.IsEmpty() {
			return ref
		}
		// Extra constraints ride alongside the reference.
		return &spec.Schema{
			Title: nestedName,
			AllOf: []*spec.Schema{ref, remaining},
		}
	}

	// Primitive or unresolvable type.
	typeName := MapTypeName(meta.Type.Name())
	if enum != nil {
		typeName = EnumPrimitiveType(enum)
	}
	inner := &spec.Schema{
		Type:        typeName,
		Format:      meta.Format,
		Title:       meta.Title,
		Description: meta.Description,
		Enum:        enum,
		Extra:       meta.Extra,
	}
	if meta.IsArray {
		return &spec.Schema{Type: "array", Items: inner}
	}
	return inner
}

// remainingSchema collects the metadata left over once type, isArray,
// collectionFormat, and required are stripped. When empty, a bare $ref
// suffices for the property.
func remainingSchema(meta metadata.PropertyMetadata, enum []any) *spec.Schema {
	return &spec.Schema{
		Title:       meta.Title,
		Description: meta.Description,
		Format:      meta.Format,
		Enum:        enum,
		Extra:       meta.Extra,
	}
}

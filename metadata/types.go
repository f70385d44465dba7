package metadata

import "github.com/erraggy/oasderive/spec"

// PropertyMarker is the leading sentinel that flags a composite type's member
// as a schema-exposed data property rather than a method. Providers synthesize
// marked member names; the schema explorer strips the marker to recover the
// public property name.
const PropertyMarker = ":"

// TypeKind discriminates the TypeRef tagged variant.
type TypeKind int

const (
	// KindUntyped is a plain untyped marker (e.g. an untyped "Object"
	// placeholder). Untyped parameters are silently excluded from derivation.
	KindUntyped TypeKind = iota

	// KindPrimitive is a native primitive type, identified by name.
	KindPrimitive

	// KindComposite is a structured type with an attached handle.
	KindComposite

	// KindReference is a named type without a handle; it maps through the
	// type-name mapper like a primitive but carries a definition name.
	KindReference
)

// TypeRef identifies a parameter or property type. It is a tagged variant:
// untyped, primitive by name, composite with a handle, or a bare named
// reference. The zero value is untyped.
type TypeRef struct {
	kind   TypeKind
	name   string
	handle CompositeHandle
}

// Untyped returns the untyped marker TypeRef.
func Untyped() TypeRef {
	return TypeRef{}
}

// Primitive returns a TypeRef for a native primitive type name, e.g. "String".
func Primitive(name string) TypeRef {
	return TypeRef{kind: KindPrimitive, name: name}
}

// Composite returns a TypeRef for a structured type handle.
// A nil handle yields the untyped marker.
func Composite(h CompositeHandle) TypeRef {
	if h == nil {
		return TypeRef{}
	}
	return TypeRef{kind: KindComposite, handle: h}
}

// Reference returns a TypeRef naming a type without a handle.
func Reference(name string) TypeRef {
	return TypeRef{kind: KindReference, name: name}
}

// Kind returns the variant tag.
func (t TypeRef) Kind() TypeKind {
	return t.kind
}

// Name returns the type's name: the primitive or reference name, or the
// handle's name for composites. Untyped returns "".
func (t TypeRef) Name() string {
	if t.kind == KindComposite {
		return t.handle.Name()
	}
	return t.name
}

// Handle returns the composite handle and whether this TypeRef carries one.
func (t TypeRef) Handle() (CompositeHandle, bool) {
	if t.kind == KindComposite {
		return t.handle, true
	}
	return nil, false
}

// IsUntyped reports whether this is the plain untyped marker.
func (t TypeRef) IsUntyped() bool {
	return t.kind == KindUntyped
}

// Member is one declared member identifier of a composite type.
// Data properties carry the PropertyMarker prefix; methods are Callable.
type Member struct {
	Name     string
	Callable bool
}

// CompositeHandle is a read-only view of a structured type owned by the host
// type system. The derivation core never mutates it.
type CompositeHandle interface {
	// Name returns the type's definition name.
	Name() string

	// Members lists all declared member identifiers in declaration order,
	// including unmarked and callable members.
	Members() []Member

	// Property returns the metadata attached to one property, looked up by
	// its public (marker-stripped) name. The second result reports whether
	// any metadata exists; callers default to empty metadata when it does not.
	Property(name string) (PropertyMetadata, bool)
}

// EnumPair is one (key, value) entry of a mapping-style enum source, in
// declaration order. Bidirectional encodings list both A→B and B→A pairs;
// the enum resolver filters the reverse aliases out.
type EnumPair struct {
	Key   any
	Value any
}

// PropertyMetadata is the metadata attached to one property of a composite
// type. Enum holds an enum source: a []any value list, an ordered []EnumPair
// mapping, or a map[string]any. Extra keys are preserved and merged into the
// final property schema.
type PropertyMetadata struct {
	Type             TypeRef
	Required         *bool
	IsArray          bool
	Enum             any
	CollectionFormat string
	Title            string
	Description      string
	Format           string
	Extra            map[string]any
}

// IsZero reports whether no metadata is attached at all.
func (m PropertyMetadata) IsZero() bool {
	return m.Type.IsUntyped() && m.Required == nil && !m.IsArray &&
		m.Enum == nil && m.CollectionFormat == "" && m.Title == "" &&
		m.Description == "" && m.Format == "" && len(m.Extra) == 0
}

// Param is the working parameter shape flowing through derivation: reflected
// parameters, explicit overrides, and expanded body properties all use it.
// The (Name, In) pair is the merge identity.
type Param struct {
	Name             string
	In               string
	Type             TypeRef
	Required         *bool
	IsArray          bool
	Enum             any
	CollectionFormat string
	Title            string
	Description      string
	Format           string
	Extra            map[string]any

	// Schema is a resolved schema, either authored on an explicit override or
	// attached during derivation. A parameter carrying a schema never emits
	// an inline type.
	Schema *spec.Schema
}

// ToParam lifts property metadata into a Param with the given name and
// location, as happens when a composite body parameter is expanded into one
// parameter per property.
func (m PropertyMetadata) ToParam(name, in string) Param {
	return Param{
		Name:             name,
		In:               in,
		Type:             m.Type,
		Required:         m.Required,
		IsArray:          m.IsArray,
		Enum:             m.Enum,
		CollectionFormat: m.CollectionFormat,
		Title:            m.Title,
		Description:      m.Description,
		Format:           m.Format,
		Extra:            m.Extra,
	}
}

// Bool returns a pointer to b, for filling tri-state Required fields.
func Bool(b bool) *bool {
	return &b
}

// Merge overlays override onto p and returns the result: fields the override
// sets win on conflict, unset override fields keep p's value. Extra maps are
// merged key-wise with the override winning.
func (p Param) Merge(override Param) Param {
	out := p
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.In != "" {
		out.In = override.In
	}
	if !override.Type.IsUntyped() {
		out.Type = override.Type
	}
	if override.Required != nil {
		out.Required = override.Required
	}
	if override.IsArray {
		out.IsArray = true
	}
	if override.Enum != nil {
		out.Enum = override.Enum
	}
	if override.CollectionFormat != "" {
		out.CollectionFormat = override.CollectionFormat
	}
	if override.Title != "" {
		out.Title = override.Title
	}
	if override.Description != "" {
		out.Description = override.Description
	}
	if override.Format != "" {
		out.Format = override.Format
	}
	if override.Schema != nil {
		out.Schema = override.Schema
	}
	if len(override.Extra) > 0 {
		merged := make(map[string]any, len(p.Extra)+len(override.Extra))
		for k, v := range p.Extra {
			merged[k] = v
		}
		for k, v := range override.Extra {
			merged[k] = v
		}
		out.Extra = merged
	}
	return out
}

// Key returns the (name, in) merge identity.
func (p Param) Key() string {
	return p.Name + "\x00" + p.In
}

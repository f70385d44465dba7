package paramgen

import (
	"github.com/erraggy/oasderive/metadata"
	"github.com/erraggy/oasderive/schemagen"
	"github.com/erraggy/oasderive/spec"
)

// Normalize is the final per-parameter pass producing the emitted OAS 2.0
// shape. Parameters that already carry a resolved schema keep it and emit no
// inline type (the two are mutually exclusive in the output format). All
// others have their type name mapped into the primitive vocabulary and, when
// flagged as arrays, are rewritten to type "array" with the mapped type (and
// any resolved enum) on items.
func Normalize(p metadata.Param) *spec.Parameter {
	out := &spec.Parameter{
		Name:        p.Name,
		In:          p.In,
		Description: p.Description,
		Extra:       p.Extra,
	}
	if p.Required != nil {
		out.Required = *p.Required
	}

	if p.Schema != nil {
		out.Schema = p.Schema
		return out
	}

	mapped := schemagen.MapTypeName(p.Type.Name())
	enum := schemagen.ResolveEnum(p.Enum)
	if enum != nil {
		mapped = schemagen.EnumPrimitiveType(enum)
	}

	if p.IsArray {
		out.Type = "array"
		out.Items = &spec.Schema{
			Type:   mapped,
			Format: p.Format,
			Enum:   enum,
		}
		out.CollectionFormat = p.CollectionFormat
		return out
	}

	out.Type = mapped
	out.Format = p.Format
	out.Enum = enum
	out.CollectionFormat = p.CollectionFormat
	return out
}

package paramgen

import (
	"github.com/erraggy/oasderive/metadata"
	"github.com/erraggy/oasderive/spec"
)

// ReflectedParams derives parameter metadata purely from method-signature
// reflection: each argument binding is paired with its positional type and
// marked required.
//
// Bindings whose location resolves to the unbound sentinel are dropped, as
// are body bindings that carry an explicit name (a named body binding reads a
// single field of an already-documented body, not the whole body). Returns
// nil when no entries remain; callers must treat nil as "no reflected
// metadata", distinct from an empty parameter list.
func ReflectedParams(p metadata.Provider, target, method string) []metadata.Param {
	bindings := p.RouteArgs(target, method)
	if len(bindings) == 0 {
		return nil
	}
	types := p.ParamTypes(target, method)

	var params []metadata.Param
	for _, b := range bindings {
		loc := b.Code.Location()
		if loc == metadata.LocationUnbound {
			continue
		}
		if loc == spec.ParamInBody && b.Name != "" {
			continue
		}

		var t metadata.TypeRef
		if b.Index >= 0 && b.Index < len(types) {
			t = types[b.Index]
		}
		params = append(params, metadata.Param{
			Name:     b.Name,
			In:       loc,
			Type:     t,
			Required: metadata.Bool(true),
		})
	}
	if len(params) == 0 {
		return nil
	}
	return params
}

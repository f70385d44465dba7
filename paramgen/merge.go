package paramgen

import (
	"github.com/erraggy/oasderive/metadata"
	"github.com/erraggy/oasderive/schemagen"
	"github.com/erraggy/oasderive/spec"
)

// Input identifies the endpoint to derive parameters for and the provider
// that owns its metadata.
type Input struct {
	Provider metadata.Provider
	Target   string
	Method   string
}

// Result is the derived parameter list of one endpoint.
type Result struct {
	Parameters []*spec.Parameter `yaml:"parameters" json:"parameters"`
}

// Derive runs the full parameter derivation pass for one endpoint, appending
// any schema definitions it registers into defs. Returns nil when the
// endpoint has no documented parameters at all.
func Derive(defs *schemagen.Registry, in Input) *Result {
	explicit := in.Provider.ExplicitParams(in.Target, in.Method)
	reflected := ReflectedParams(in.Provider, in.Target, in.Method)
	if explicit == nil && reflected == nil {
		return nil
	}

	expanded := expandReflected(reflected)

	// Merge explicit overrides over the reflected set; without any explicit
	// metadata the expanded reflected set is used as-is.
	merged := expanded
	if explicit != nil {
		merged = make([]metadata.Param, len(expanded))
		for i, p := range expanded {
			if override, ok := findByName(explicit, p.Name); ok {
				p = p.Merge(override)
			}
			merged[i] = p
		}
		merged = unionByKey(merged, explicit)
	}

	resolved := resolveBodies(defs, merged)

	params := make([]*spec.Parameter, 0, len(resolved))
	for _, p := range resolved {
		params = append(params, Normalize(p))
	}
	if len(params) == 0 {
		return nil
	}
	return &Result{Parameters: params}
}

// expandReflected applies the reflected-parameter expansion rules: untyped
// parameters are dropped; named parameters and whole-body parameters pass
// through; any other composite-typed parameter becomes one parameter per
// exposed property, each inheriting the parameter's location and merged with
// the property's own metadata.
func expandReflected(reflected []metadata.Param) []metadata.Param {
	var out []metadata.Param
	for _, p := range reflected {
		if p.Type.IsUntyped() {
			continue
		}
		if p.Name != "" || p.In == spec.ParamInBody {
			out = append(out, p)
			continue
		}
		handle, ok := p.Type.Handle()
		if !ok {
			// An unnamed primitive binding has no properties to expand into.
			continue
		}
		for _, propName := range schemagen.ExposedProperties(handle) {
			meta, _ := handle.Property(propName)
			out = append(out, p.Merge(meta.ToParam(propName, p.In)))
		}
	}
	return out
}

// findByName returns the first explicit override with the given name.
// Explicit overrides match reflected parameters by name alone.
func findByName(explicit []metadata.Param, name string) (metadata.Param, bool) {
	for _, e := range explicit {
		if e.Name == name {
			return e, true
		}
	}
	return metadata.Param{}, false
}

// unionByKey unions two parameter lists deduplicating by the (name, in) key.
// Entries from the first list win; explicit overrides with no reflected
// counterpart survive as-is.
func unionByKey(merged, explicit []metadata.Param) []metadata.Param {
	out := make([]metadata.Param, 0, len(merged)+len(explicit))
	seen := make(map[string]bool, len(merged)+len(explicit))
	for _, p := range merged {
		if seen[p.Key()] {
			continue
		}
		seen[p.Key()] = true
		out = append(out, p)
	}
	for _, p := range explicit {
		if seen[p.Key()] {
			continue
		}
		seen[p.Key()] = true
		out = append(out, p)
	}
	return out
}

// resolveBodies expands every composite-typed body parameter: into a schema
// reference via the definition builder, or into per-property formData fields
// when the endpoint carries a formData parameter of its own.
func resolveBodies(defs *schemagen.Registry, params []metadata.Param) []metadata.Param {
	builder := schemagen.NewDefinitionBuilder(defs)
	hasForm := hasFormDataParam(params)

	var out []metadata.Param
	for _, p := range params {
		handle, ok := p.Type.Handle()
		isComposite := ok && !schemagen.IsPrimitiveName(schemagen.MapTypeName(p.Type.Name()))
		if p.In != spec.ParamInBody || !isComposite || p.Schema != nil {
			out = append(out, p)
			continue
		}

		if hasForm {
			out = append(out, flattenToFormData(p, handle)...)
			continue
		}

		name := builder.Build(handle)
		p.Schema = spec.RefSchema(name)
		if p.Name == "" {
			p.Name = name
		}
		out = append(out, p)
	}
	return out
}

func hasFormDataParam(params []metadata.Param) bool {
	for _, p := range params {
		if p.In == spec.ParamInFormData {
			return true
		}
	}
	return false
}

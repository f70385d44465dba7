package paramgen

import (
	"github.com/erraggy/oasderive/metadata"
	"github.com/erraggy/oasderive/schemagen"
	"github.com/erraggy/oasderive/spec"
)

// flattenToFormData rewrites a composite body parameter into one parameter
// per exposed property with the location forced to formData, flattening a
// structured body into individual multipart form fields.
func flattenToFormData(p metadata.Param, handle metadata.CompositeHandle) []metadata.Param {
	var out []metadata.Param
	for _, propName := range schemagen.ExposedProperties(handle) {
		meta, _ := handle.Property(propName)
		field := p.Merge(meta.ToParam(propName, spec.ParamInFormData))
		field.In = spec.ParamInFormData
		out = append(out, field)
	}
	return out
}

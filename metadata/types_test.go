package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erraggy/oasderive/spec"
)

func TestTypeRefVariants(t *testing.T) {
	assert.True(t, Untyped().IsUntyped())
	assert.Equal(t, "", Untyped().Name())

	p := Primitive("String")
	assert.Equal(t, KindPrimitive, p.Kind())
	assert.Equal(t, "String", p.Name())
	assert.False(t, p.IsUntyped())

	r := Reference("User")
	assert.Equal(t, KindReference, r.Kind())
	assert.Equal(t, "User", r.Name())

	reg := NewRegistry()
	reg.Model("User").Prop("id", Primitive("Number"))
	c := Composite(reg.Handle("User"))
	assert.Equal(t, KindComposite, c.Kind())
	assert.Equal(t, "User", c.Name())
	h, ok := c.Handle()
	assert.True(t, ok)
	assert.Equal(t, "User", h.Name())

	// A nil handle degrades to the untyped marker.
	assert.True(t, Composite(nil).IsUntyped())
}

func TestTypeRefZeroValueIsUntyped(t *testing.T) {
	var zero TypeRef
	assert.True(t, zero.IsUntyped())
}

func TestBindCodeLocation(t *testing.T) {
	tests := []struct {
		name string
		code BindCode
		want string
	}{
		{"body", BindBody, spec.ParamInBody},
		{"param maps to path", BindParam, spec.ParamInPath},
		{"query", BindQuery, spec.ParamInQuery},
		{"headers map to header", BindHeaders, spec.ParamInHeader},
		{"request is unbound", BindRequest, LocationUnbound},
		{"response is unbound", BindResponse, LocationUnbound},
		{"next is unbound", BindNext, LocationUnbound},
		{"unknown code is unbound", BindCode(42), LocationUnbound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.Location())
		})
	}
}

func TestParamMergeOverrideWins(t *testing.T) {
	reflected := Param{
		Name:     "limit",
		In:       spec.ParamInQuery,
		Type:     Primitive("Number"),
		Required: Bool(true),
		Extra:    map[string]any{"minimum": 0, "maximum": 10},
	}
	override := Param{
		Name:     "limit",
		Required: Bool(false),
		Extra:    map[string]any{"maximum": 100},
	}

	merged := reflected.Merge(override)
	assert.Equal(t, "limit", merged.Name)
	assert.Equal(t, spec.ParamInQuery, merged.In)
	assert.Equal(t, "Number", merged.Type.Name())
	assert.Equal(t, false, *merged.Required)
	assert.Equal(t, 0, merged.Extra["minimum"])
	assert.Equal(t, 100, merged.Extra["maximum"])

	// Source maps are untouched.
	assert.Equal(t, 10, reflected.Extra["maximum"])
}

func TestParamMergeUnsetOverrideKeepsBase(t *testing.T) {
	base := Param{
		Name:        "id",
		In:          spec.ParamInPath,
		Type:        Primitive("String"),
		Description: "user id",
	}
	merged := base.Merge(Param{Name: "id"})
	assert.Equal(t, base, merged)
}

func TestPropertyMetadataIsZero(t *testing.T) {
	assert.True(t, PropertyMetadata{}.IsZero())
	assert.False(t, PropertyMetadata{IsArray: true}.IsZero())
	assert.False(t, PropertyMetadata{Type: Primitive("String")}.IsZero())
}

func TestPropertyMetadataToParam(t *testing.T) {
	meta := PropertyMetadata{
		Type:     Primitive("String"),
		Required: Bool(false),
		IsArray:  true,
		Enum:     []any{"a", "b"},
	}
	p := meta.ToParam("tags", spec.ParamInFormData)
	assert.Equal(t, "tags", p.Name)
	assert.Equal(t, spec.ParamInFormData, p.In)
	assert.Equal(t, "String", p.Type.Name())
	assert.True(t, p.IsArray)
	assert.Equal(t, []any{"a", "b"}, p.Enum)
}

package paramgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasderive/metadata"
	"github.com/erraggy/oasderive/spec"
)

func TestNormalizeSchemaDropsType(t *testing.T) {
	p := Normalize(metadata.Param{
		Name:   "User",
		In:     spec.ParamInBody,
		Type:   metadata.Primitive("String"),
		Schema: spec.RefSchema("User"),
	})

	assert.Empty(t, p.Type)
	require.NotNil(t, p.Schema)
	assert.Equal(t, "#/definitions/User", p.Schema.Ref)
}

func TestNormalizeMapsTypeName(t *testing.T) {
	p := Normalize(metadata.Param{
		Name: "q",
		In:   spec.ParamInQuery,
		Type: metadata.Primitive("String"),
	})
	assert.Equal(t, "string", p.Type)
	assert.Nil(t, p.Items)
}

func TestNormalizeResolvesReferenceName(t *testing.T) {
	p := Normalize(metadata.Param{
		Name: "kind",
		In:   spec.ParamInQuery,
		Type: metadata.Reference("Number"),
	})
	assert.Equal(t, "number", p.Type)
}

func TestNormalizeUntypedYieldsEmptyType(t *testing.T) {
	p := Normalize(metadata.Param{Name: "x", In: spec.ParamInQuery})
	assert.Equal(t, "", p.Type)
}

func TestNormalizeArrayRewrite(t *testing.T) {
	p := Normalize(metadata.Param{
		Name:             "tags",
		In:               spec.ParamInQuery,
		Type:             metadata.Primitive("String"),
		IsArray:          true,
		CollectionFormat: "csv",
	})

	assert.Equal(t, "array", p.Type)
	require.NotNil(t, p.Items)
	assert.Equal(t, "string", p.Items.Type)
	assert.Equal(t, "csv", p.CollectionFormat)
	assert.Nil(t, p.Enum)
}

func TestNormalizeArrayEnumOnItems(t *testing.T) {
	p := Normalize(metadata.Param{
		Name:    "labels",
		In:      spec.ParamInQuery,
		Type:    metadata.Primitive("String"),
		IsArray: true,
		Enum:    []any{"a", "b"},
	})

	assert.Equal(t, "array", p.Type)
	require.NotNil(t, p.Items)
	assert.Equal(t, "string", p.Items.Type)
	assert.Equal(t, []any{"a", "b"}, p.Items.Enum)
	assert.Nil(t, p.Enum)
}

func TestNormalizeEnumSubstitutesType(t *testing.T) {
	p := Normalize(metadata.Param{
		Name: "state",
		In:   spec.ParamInQuery,
		Type: metadata.Primitive("String"),
		Enum: []any{1, 2},
	})
	assert.Equal(t, "number", p.Type)
	assert.Equal(t, []any{1, 2}, p.Enum)
}

func TestNormalizeRequiredTriState(t *testing.T) {
	assert.False(t, Normalize(metadata.Param{Name: "a"}).Required)
	assert.True(t, Normalize(metadata.Param{Name: "a", Required: metadata.Bool(true)}).Required)
	assert.False(t, Normalize(metadata.Param{Name: "a", Required: metadata.Bool(false)}).Required)
}

func TestNormalizeCarriesExtra(t *testing.T) {
	p := Normalize(metadata.Param{
		Name:  "limit",
		In:    spec.ParamInQuery,
		Type:  metadata.Primitive("Number"),
		Extra: map[string]any{"maximum": 100},
	})
	assert.Equal(t, map[string]any{"maximum": 100}, p.Extra)
}

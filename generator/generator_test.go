package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasderive/metadata"
	"github.com/erraggy/oasderive/schemagen"
	"github.com/erraggy/oasderive/spec"
)

func TestGenerateSimpleDefinition(t *testing.T) {
	defs := map[string]*spec.Schema{
		"User": {
			Type: "object",
			Properties: map[string]*spec.Schema{
				"id":   {Type: "number"},
				"name": {Type: "string"},
				"note": {Type: "string"},
			},
			Required: []string{"id", "name"},
		},
	}

	src, err := New().Generate(defs)
	require.NoError(t, err)

	code := string(src)
	assert.Contains(t, code, "// Code generated by oasderive. DO NOT EDIT.")
	assert.Contains(t, code, "package models")
	assert.Contains(t, code, "type User struct {")
	assert.Regexp(t, "Id\\s+float64\\s+`json:\"id\"`", code)
	assert.Regexp(t, "Name\\s+string\\s+`json:\"name\"`", code)
	assert.Regexp(t, "Note\\s+\\*string\\s+`json:\"note,omitempty\"`", code)
}

func TestGenerateCustomPackageName(t *testing.T) {
	src, err := New(WithPackageName("api")).Generate(map[string]*spec.Schema{
		"Empty": {Type: "object"},
	})
	require.NoError(t, err)
	assert.Contains(t, string(src), "package api")
}

func TestGenerateTypeMappings(t *testing.T) {
	defs := map[string]*spec.Schema{
		"Mixed": {
			Type: "object",
			Properties: map[string]*spec.Schema{
				"flag":    {Type: "boolean"},
				"tags":    {Type: "array", Items: &spec.Schema{Type: "string"}},
				"payload": {},
				"created": {Type: "string", Format: "date-time"},
				"data":    {Type: "file"},
			},
			Required: []string{"flag", "tags", "payload", "created", "data"},
		},
	}

	src, err := New().Generate(defs)
	require.NoError(t, err)

	code := string(src)
	assert.Regexp(t, "Flag\\s+bool", code)
	assert.Regexp(t, "Tags\\s+\\[\\]string", code)
	assert.Regexp(t, "Payload\\s+any", code)
	assert.Regexp(t, "Created\\s+time\\.Time", code)
	assert.Regexp(t, "Data\\s+\\[\\]byte", code)
	// goimports added the time import for the date-time field.
	assert.Contains(t, code, `"time"`)
}

func TestGenerateReferences(t *testing.T) {
	defs := map[string]*spec.Schema{
		"Address": {
			Type:       "object",
			Properties: map[string]*spec.Schema{"street": {Type: "string"}},
			Required:   []string{"street"},
		},
		"User": {
			Type: "object",
			Properties: map[string]*spec.Schema{
				"address": {Ref: "#/definitions/Address"},
				"billing": {
					Title: "Address",
					AllOf: []*spec.Schema{
						{Ref: "#/definitions/Address"},
						{Description: "billing address"},
					},
				},
				"friends": {Type: "array", Items: &spec.Schema{Ref: "#/definitions/User"}},
			},
			Required: []string{"address"},
		},
	}

	src, err := New().Generate(defs)
	require.NoError(t, err)

	code := string(src)
	assert.Regexp(t, "Address\\s+\\*Address\\s+`json:\"address\"`", code)
	assert.Regexp(t, "Billing\\s+\\*Address\\s+`json:\"billing,omitempty\"`", code)
	assert.Regexp(t, "Friends\\s+\\[\\]\\*User\\s+`json:\"friends,omitempty\"`", code)
}

func TestGenerateSelfReferential(t *testing.T) {
	reg := metadata.NewRegistry()
	node := reg.Model("Node")
	node.Prop("value", metadata.Primitive("String"))
	node.PropWith("next", metadata.PropertyMetadata{
		Type:     metadata.Composite(reg.Handle("Node")),
		Required: metadata.Bool(false),
	})

	schemaDefs := schemagen.NewRegistry()
	schemagen.NewDefinitionBuilder(schemaDefs).Build(reg.Handle("Node"))

	src, err := New().Generate(schemaDefs.Deduped())
	require.NoError(t, err)

	code := string(src)
	assert.Contains(t, code, "type Node struct {")
	assert.Regexp(t, "Next\\s+\\*Node\\s+`json:\"next,omitempty\"`", code)
}

func TestGenerateEmptyDefinitions(t *testing.T) {
	src, err := New().Generate(nil)
	require.NoError(t, err)
	assert.Contains(t, string(src), "package models")
}

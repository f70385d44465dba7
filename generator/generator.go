package generator

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"golang.org/x/tools/imports"

	"github.com/erraggy/oasderive/internal/naming"
	"github.com/erraggy/oasderive/oaserrors"
	"github.com/erraggy/oasderive/spec"
)

// Generator renders Go model code from schema definitions.
type Generator struct {
	packageName string
}

// Option configures a Generator.
type Option func(*Generator)

// WithPackageName sets the package name of the generated file.
// Defaults to "models".
func WithPackageName(name string) Option {
	return func(g *Generator) {
		g.packageName = name
	}
}

// New returns a Generator with the given options applied.
func New(opts ...Option) *Generator {
	g := &Generator{packageName: "models"}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate renders one Go source file containing a struct per definition,
// formatted and with imports fixed. Definitions are emitted in name order.
func (g *Generator) Generate(definitions map[string]*spec.Schema) ([]byte, error) {
	names := make([]string, 0, len(definitions))
	for name := range definitions {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf strings.Builder
	buf.WriteString("// Code generated by oasderive. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", g.packageName)

	for _, name := range names {
		g.writeStruct(&buf, name, definitions[name])
	}

	src, err := imports.Process("generated.go", []byte(buf.String()), nil)
	if err != nil {
		return nil, &oaserrors.GenerateError{Message: "formatting generated code", Cause: err}
	}
	return src, nil
}

// writeStruct renders one definition as a struct declaration.
func (g *Generator) writeStruct(buf *strings.Builder, name string, def *spec.Schema) {
	typeName := naming.GoIdentifier(name)
	fmt.Fprintf(buf, "// %s is generated from the %s definition.\n", typeName, name)
	fmt.Fprintf(buf, "type %s struct {\n", typeName)

	props := make([]string, 0, len(def.Properties))
	for prop := range def.Properties {
		props = append(props, prop)
	}
	sort.Strings(props)

	for _, prop := range props {
		required := slices.Contains(def.Required, prop)
		goType := g.fieldType(def.Properties[prop], required)
		tag := prop
		if !required {
			tag += ",omitempty"
		}
		fmt.Fprintf(buf, "\t%s %s `json:%q`\n", naming.GoIdentifier(prop), goType, tag)
	}

	buf.WriteString("}\n\n")
}

// fieldType maps a property schema to a Go type. Optional fields and
// references are pointers; pointers at references also keep self-referential
// definitions representable.
func (g *Generator) fieldType(s *spec.Schema, required bool) string {
	if s == nil {
		return "any"
	}
	if ref := refTypeName(s); ref != "" {
		return "*" + ref
	}

	var base string
	switch s.Type {
	case "string":
		if s.Format == "date-time" {
			base = "time.Time"
		} else {
			base = "string"
		}
	case "number":
		base = "float64"
	case "boolean":
		base = "bool"
	case "file":
		base = "[]byte"
	case "array":
		return "[]" + g.fieldType(s.Items, true)
	case "object", "":
		if len(s.Properties) == 0 {
			return "any"
		}
		base = "map[string]any"
	default:
		return "any"
	}

	if !required {
		return "*" + base
	}
	return base
}

// refTypeName resolves a schema's referenced Go type name, looking through
// the $ref-plus-constraints allOf form as well.
func refTypeName(s *spec.Schema) string {
	if name := spec.RefName(s.Ref); name != "" {
		return naming.GoIdentifier(name)
	}
	for _, sub := range s.AllOf {
		if name := spec.RefName(sub.Ref); name != "" {
			return naming.GoIdentifier(name)
		}
	}
	return ""
}

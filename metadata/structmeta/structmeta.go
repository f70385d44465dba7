// Package structmeta adapts Go structs into oasderive composite handles.
//
// It is the natural host adapter for Go programs: exported struct fields
// become schema-exposed properties (named by their json tag when present),
// exported methods become callable members, and a `swag` struct tag supplies
// author overrides (required, enum, title, description, format, plus
// free-form keys carried into the property's extra metadata).
package structmeta

import (
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/erraggy/oasderive/metadata"
)

// HandleOf returns a composite handle for a struct value or struct pointer.
// Returns nil for anything that is not a struct.
func HandleOf(v any) metadata.CompositeHandle {
	if v == nil {
		return nil
	}
	return HandleOfType(reflect.TypeOf(v))
}

// HandleOfType returns a composite handle for a struct type, dereferencing
// pointers. Returns nil for non-struct types.
func HandleOfType(t reflect.Type) metadata.CompositeHandle {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	return &structHandle{t: t}
}

type structHandle struct {
	t reflect.Type
}

// Name implements metadata.CompositeHandle.
func (h *structHandle) Name() string {
	return h.t.Name()
}

// Members implements metadata.CompositeHandle. Fields appear in declaration
// order with the property marker; embedded struct fields are inlined.
// Exported methods (value or pointer receiver) follow as callable members.
func (h *structHandle) Members() []metadata.Member {
	var members []metadata.Member
	seen := make(map[string]bool)
	for _, name := range exposedFieldNames(h.t) {
		if seen[name] {
			continue
		}
		seen[name] = true
		members = append(members, metadata.Member{Name: metadata.PropertyMarker + name})
	}

	ptr := reflect.PointerTo(h.t)
	for i := 0; i < ptr.NumMethod(); i++ {
		members = append(members, metadata.Member{Name: ptr.Method(i).Name, Callable: true})
	}
	return members
}

// Property implements metadata.CompositeHandle.
func (h *structHandle) Property(name string) (metadata.PropertyMetadata, bool) {
	field, ok := findField(h.t, name)
	if !ok {
		return metadata.PropertyMetadata{}, false
	}
	return fieldMetadata(field), true
}

// exposedFieldNames lists the public names of a struct's schema-exposed
// fields in declaration order, recursing into embedded structs.
func exposedFieldNames(t reflect.Type) []string {
	var names []string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		if field.Anonymous {
			embedded := field.Type
			for embedded.Kind() == reflect.Pointer {
				embedded = embedded.Elem()
			}
			if embedded.Kind() == reflect.Struct {
				names = append(names, exposedFieldNames(embedded)...)
				continue
			}
		}
		name := fieldName(field)
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names
}

// findField locates a field by its public name, recursing into embedded
// structs. The first match in declaration order wins.
func findField(t reflect.Type, name string) (reflect.StructField, bool) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		if field.Anonymous {
			embedded := field.Type
			for embedded.Kind() == reflect.Pointer {
				embedded = embedded.Elem()
			}
			if embedded.Kind() == reflect.Struct {
				if f, ok := findField(embedded, name); ok {
					return f, true
				}
				continue
			}
		}
		if fieldName(field) == name {
			return field, true
		}
	}
	return reflect.StructField{}, false
}

// fieldName returns a field's public property name from its json tag, or ""
// when the field is excluded.
func fieldName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return ""
	}
	name, _ := parseJSONTag(tag)
	if name == "" {
		name = field.Name
	}
	return name
}

// fieldMetadata derives property metadata from a field's type and swag tag.
func fieldMetadata(field reflect.StructField) metadata.PropertyMetadata {
	meta := typeMetadata(field.Type)

	_, jsonOpts := parseJSONTag(field.Tag.Get("json"))
	if field.Type.Kind() == reflect.Pointer || hasOption(jsonOpts, "omitempty") {
		meta.Required = metadata.Bool(false)
	}

	applySwagTag(&meta, field.Tag.Get("swag"))
	return meta
}

// typeMetadata maps a Go type to a TypeRef plus array/format shaping.
// Capitalized primitive names feed the downstream type-name mapper.
func typeMetadata(t reflect.Type) metadata.PropertyMetadata {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t == reflect.TypeOf(time.Time{}) {
		return metadata.PropertyMetadata{Type: metadata.Primitive("String"), Format: "date-time"}
	}

	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		elem := typeMetadata(t.Elem())
		elem.IsArray = true
		return elem
	case reflect.String:
		return metadata.PropertyMetadata{Type: metadata.Primitive("String")}
	case reflect.Bool:
		return metadata.PropertyMetadata{Type: metadata.Primitive("Boolean")}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return metadata.PropertyMetadata{Type: metadata.Primitive("Number")}
	case reflect.Struct:
		return metadata.PropertyMetadata{Type: metadata.Composite(&structHandle{t: t})}
	case reflect.Map:
		return metadata.PropertyMetadata{Type: metadata.Primitive("Object")}
	default:
		// Interfaces and everything else are the untyped marker.
		return metadata.PropertyMetadata{Type: metadata.Untyped()}
	}
}

// applySwagTag applies swag tag options onto derived metadata.
// Supports formats like: swag:"required,enum=a|b,maxLength=100"
func applySwagTag(meta *metadata.PropertyMetadata, tag string) {
	if tag == "" {
		return
	}
	for _, part := range strings.Split(tag, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value := part, "true"
		if idx := strings.Index(part, "="); idx > 0 {
			key = strings.TrimSpace(part[:idx])
			value = strings.TrimSpace(part[idx+1:])
		}

		switch key {
		case "required":
			meta.Required = metadata.Bool(value == "true")
		case "enum":
			values := strings.Split(value, "|")
			enum := make([]any, len(values))
			for i, v := range values {
				enum[i] = parseScalar(strings.TrimSpace(v))
			}
			meta.Enum = enum
		case "title":
			meta.Title = value
		case "description":
			meta.Description = value
		case "format":
			meta.Format = value
		case "collectionFormat":
			meta.CollectionFormat = value
		default:
			if meta.Extra == nil {
				meta.Extra = make(map[string]any)
			}
			meta.Extra[key] = parseScalar(value)
		}
	}
}

// parseScalar interprets a tag value as int, float, bool, or string.
func parseScalar(s string) any {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	if s == "true" || s == "false" {
		return s == "true"
	}
	return s
}

// parseJSONTag parses a struct field's json tag.
// Returns the field name and options (like "omitempty").
func parseJSONTag(tag string) (name string, opts []string) {
	if tag == "" {
		return "", nil
	}
	parts := strings.Split(tag, ",")
	name = parts[0]
	if len(parts) > 1 {
		opts = parts[1:]
	}
	return name, opts
}

func hasOption(opts []string, want string) bool {
	for _, opt := range opts {
		if opt == want {
			return true
		}
	}
	return false
}

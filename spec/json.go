package spec

import "encoding/json"

// MarshalJSON implements custom JSON marshaling for Parameter.
// This is required to flatten Extra fields into the top-level JSON object,
// as Go's encoding/json doesn't support inline maps like yaml:",inline".
func (p *Parameter) MarshalJSON() ([]byte, error) {
	// Fast path: no Extra fields, use standard marshaling
	if len(p.Extra) == 0 {
		type Alias Parameter
		return json.Marshal((*Alias)(p))
	}

	m := make(map[string]any, 11+len(p.Extra))
	if p.Ref != "" {
		m["$ref"] = p.Ref
	}
	if p.Name != "" {
		m["name"] = p.Name
	}
	if p.In != "" {
		m["in"] = p.In
	}
	if p.Description != "" {
		m["description"] = p.Description
	}
	if p.Required {
		m["required"] = p.Required
	}
	if p.Schema != nil {
		m["schema"] = p.Schema
	}
	if p.Type != "" {
		m["type"] = p.Type
	}
	if p.Format != "" {
		m["format"] = p.Format
	}
	if p.Items != nil {
		m["items"] = p.Items
	}
	if p.CollectionFormat != "" {
		m["collectionFormat"] = p.CollectionFormat
	}
	if len(p.Enum) > 0 {
		m["enum"] = p.Enum
	}
	for k, v := range p.Extra {
		m[k] = v
	}
	return json.Marshal(m)
}

// MarshalJSON implements custom JSON marshaling for Schema, flattening Extra
// fields into the top-level JSON object.
func (s *Schema) MarshalJSON() ([]byte, error) {
	if len(s.Extra) == 0 {
		type Alias Schema
		return json.Marshal((*Alias)(s))
	}

	m := make(map[string]any, 11+len(s.Extra))
	if s.Ref != "" {
		m["$ref"] = s.Ref
	}
	if s.Type != "" {
		m["type"] = s.Type
	}
	if s.Title != "" {
		m["title"] = s.Title
	}
	if s.Format != "" {
		m["format"] = s.Format
	}
	if s.Description != "" {
		m["description"] = s.Description
	}
	if len(s.Properties) > 0 {
		m["properties"] = s.Properties
	}
	if len(s.Required) > 0 {
		m["required"] = s.Required
	}
	if s.Items != nil {
		m["items"] = s.Items
	}
	if len(s.AllOf) > 0 {
		m["allOf"] = s.AllOf
	}
	if len(s.Enum) > 0 {
		m["enum"] = s.Enum
	}
	if s.CollectionFormat != "" {
		m["collectionFormat"] = s.CollectionFormat
	}
	for k, v := range s.Extra {
		m[k] = v
	}
	return json.Marshal(m)
}

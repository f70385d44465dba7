package spec

// Parameter location values for OAS 2.0.
const (
	ParamInPath     = "path"
	ParamInQuery    = "query"
	ParamInHeader   = "header"
	ParamInBody     = "body"
	ParamInFormData = "formData"
)

// Parameter describes a single operation parameter in OAS 2.0 form.
// Body parameters carry a Schema; all other locations describe their value
// inline via Type/Format/Items.
type Parameter struct {
	Ref         string `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Name        string `yaml:"name,omitempty" json:"name,omitempty"`
	In          string `yaml:"in,omitempty" json:"in,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool   `yaml:"required,omitempty" json:"required,omitempty"`

	// Body parameters only.
	Schema *Schema `yaml:"schema,omitempty" json:"schema,omitempty"`

	// Non-body parameters only.
	Type             string  `yaml:"type,omitempty" json:"type,omitempty"`
	Format           string  `yaml:"format,omitempty" json:"format,omitempty"`
	Items            *Schema `yaml:"items,omitempty" json:"items,omitempty"`
	CollectionFormat string  `yaml:"collectionFormat,omitempty" json:"collectionFormat,omitempty"`
	Enum             []any   `yaml:"enum,omitempty" json:"enum,omitempty"`

	// Extra holds keys carried through from author metadata that have no
	// dedicated field, flattened into the marshaled object.
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Key returns the (name, in) identity used for parameter deduplication.
func (p *Parameter) Key() string {
	return p.Name + "\x00" + p.In
}

// HasSchema reports whether the parameter already carries a resolved schema,
// either a direct $ref or a schema object. Schema and inline type are mutually
// exclusive in the emitted format.
func (p *Parameter) HasSchema() bool {
	return p.Ref != "" || p.Schema != nil
}

// Schema describes an OAS 2.0 schema object: either a $ref, an inline
// primitive/array shape, or an object definition with properties.
type Schema struct {
	Ref              string             `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Type             string             `yaml:"type,omitempty" json:"type,omitempty"`
	Title            string             `yaml:"title,omitempty" json:"title,omitempty"`
	Format           string             `yaml:"format,omitempty" json:"format,omitempty"`
	Description      string             `yaml:"description,omitempty" json:"description,omitempty"`
	Properties       map[string]*Schema `yaml:"properties,omitempty" json:"properties,omitempty"`
	Required         []string           `yaml:"required,omitempty" json:"required,omitempty"`
	Items            *Schema            `yaml:"items,omitempty" json:"items,omitempty"`
	AllOf            []*Schema          `yaml:"allOf,omitempty" json:"allOf,omitempty"`
	Enum             []any              `yaml:"enum,omitempty" json:"enum,omitempty"`
	CollectionFormat string             `yaml:"collectionFormat,omitempty" json:"collectionFormat,omitempty"`

	// Extra holds keys carried through from author metadata that have no
	// dedicated field, flattened into the marshaled object.
	Extra map[string]any `yaml:",inline" json:"-"`
}

// IsEmpty reports whether the schema carries no information at all.
// An empty schema marshals to {} and accepts anything.
func (s *Schema) IsEmpty() bool {
	return s == nil || (s.Ref == "" && s.Type == "" && s.Title == "" && s.Format == "" &&
		s.Description == "" && len(s.Properties) == 0 && len(s.Required) == 0 &&
		s.Items == nil && len(s.AllOf) == 0 && len(s.Enum) == 0 &&
		s.CollectionFormat == "" && len(s.Extra) == 0)
}

// RefSchema returns a schema consisting solely of a $ref to a named definition.
func RefSchema(name string) *Schema {
	return &Schema{Ref: DefinitionRef(name)}
}

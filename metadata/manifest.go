package metadata

import (
	"errors"
	"fmt"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasderive/oaserrors"
	"github.com/erraggy/oasderive/spec"
)

// Manifest is the declarative YAML/JSON description of models and routes from
// which a Registry can be built. It exists so the CLI and MCP surfaces can
// derive documents without a live host framework.
type Manifest struct {
	Models []ManifestModel `yaml:"models" json:"models"`
	Routes []ManifestRoute `yaml:"routes" json:"routes"`
}

// ManifestModel declares one composite type and its properties in order.
type ManifestModel struct {
	Name       string             `yaml:"name" json:"name"`
	Properties []ManifestProperty `yaml:"properties" json:"properties"`
}

// ManifestProperty declares one model property. Type names a model (composite)
// or a primitive; "any"/"Object" or an absent type is the untyped marker.
type ManifestProperty struct {
	Name             string         `yaml:"name" json:"name"`
	Type             string         `yaml:"type" json:"type"`
	Required         *bool          `yaml:"required" json:"required"`
	Array            bool           `yaml:"array" json:"array"`
	Enum             any            `yaml:"enum" json:"enum"`
	CollectionFormat string         `yaml:"collectionFormat" json:"collectionFormat"`
	Title            string         `yaml:"title" json:"title"`
	Description      string         `yaml:"description" json:"description"`
	Format           string         `yaml:"format" json:"format"`
	Extra            map[string]any `yaml:"extra" json:"extra"`
}

// ManifestRoute declares one endpoint method: its argument bindings and any
// explicitly authored parameter overrides.
type ManifestRoute struct {
	Target   string            `yaml:"target" json:"target"`
	Method   string            `yaml:"method" json:"method"`
	Bindings []ManifestBinding `yaml:"bindings" json:"bindings"`
	Explicit []ManifestParam   `yaml:"explicit" json:"explicit"`
}

// ManifestBinding declares one positional argument binding.
// Bind is one of: request, response, next, body, query, param, headers.
type ManifestBinding struct {
	Index int    `yaml:"index" json:"index"`
	Bind  string `yaml:"bind" json:"bind"`
	Name  string `yaml:"name" json:"name"`
	Type  string `yaml:"type" json:"type"`
}

// ManifestParam declares one explicit parameter override.
type ManifestParam struct {
	Name             string         `yaml:"name" json:"name"`
	In               string         `yaml:"in" json:"in"`
	Type             string         `yaml:"type" json:"type"`
	Required         *bool          `yaml:"required" json:"required"`
	Array            bool           `yaml:"array" json:"array"`
	Enum             any            `yaml:"enum" json:"enum"`
	CollectionFormat string         `yaml:"collectionFormat" json:"collectionFormat"`
	Title            string         `yaml:"title" json:"title"`
	Description      string         `yaml:"description" json:"description"`
	Format           string         `yaml:"format" json:"format"`
	Extra            map[string]any `yaml:"extra" json:"extra"`
}

// bindCodes maps manifest binding names to their numeric codes.
var bindCodes = map[string]BindCode{
	"request":  BindRequest,
	"response": BindResponse,
	"next":     BindNext,
	"body":     BindBody,
	"query":    BindQuery,
	"param":    BindParam,
	"headers":  BindHeaders,
}

// paramLocations is the set of valid explicit-override locations.
var paramLocations = map[string]bool{
	spec.ParamInPath:     true,
	spec.ParamInQuery:    true,
	spec.ParamInHeader:   true,
	spec.ParamInBody:     true,
	spec.ParamInFormData: true,
}

// LoadManifest reads a manifest file (YAML or JSON) and builds a Registry.
func LoadManifest(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &oaserrors.ManifestError{Path: path, Message: "reading manifest", Cause: err}
	}
	reg, err := ParseManifest(data)
	if err != nil {
		var mErr *oaserrors.ManifestError
		if errors.As(err, &mErr) {
			mErr.Path = path
		}
		return nil, err
	}
	return reg, nil
}

// ParseManifest parses manifest bytes (YAML, or JSON as a YAML subset) and
// builds a Registry. Models are registered before routes so route bindings may
// reference any declared model regardless of document order.
func ParseManifest(data []byte) (*Registry, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, &oaserrors.ManifestError{Message: "parsing manifest", Cause: err}
	}
	return m.Build()
}

// Build constructs a Registry from an already-decoded Manifest.
func (m *Manifest) Build() (*Registry, error) {
	reg := NewRegistry()

	// First pass creates every model so property and binding types can
	// reference models declared later in the document.
	for _, mm := range m.Models {
		if mm.Name == "" {
			return nil, &oaserrors.ManifestError{Message: "model with empty name"}
		}
		reg.Model(mm.Name)
	}

	for _, mm := range m.Models {
		model := reg.Model(mm.Name)
		for _, p := range mm.Properties {
			if p.Name == "" {
				return nil, &oaserrors.ManifestError{
					Message: fmt.Sprintf("model %s: property with empty name", mm.Name),
				}
			}
			model.PropWith(p.Name, PropertyMetadata{
				Type:             reg.ResolveType(p.Type),
				Required:         p.Required,
				IsArray:          p.Array,
				Enum:             p.Enum,
				CollectionFormat: p.CollectionFormat,
				Title:            p.Title,
				Description:      p.Description,
				Format:           p.Format,
				Extra:            p.Extra,
			})
		}
	}

	for _, mr := range m.Routes {
		if mr.Target == "" || mr.Method == "" {
			return nil, &oaserrors.ManifestError{Message: "route with empty target or method"}
		}
		route := reg.Route(mr.Target, mr.Method)
		for _, b := range mr.Bindings {
			code, ok := bindCodes[b.Bind]
			if !ok {
				return nil, &oaserrors.ManifestError{
					Message: fmt.Sprintf("route %s.%s: unknown binding %q", mr.Target, mr.Method, b.Bind),
				}
			}
			route.BindAt(b.Index, code, b.Name, reg.ResolveType(b.Type))
		}
		for _, p := range mr.Explicit {
			if !paramLocations[p.In] {
				return nil, &oaserrors.ManifestError{
					Message: fmt.Sprintf("route %s.%s: unknown location %q", mr.Target, mr.Method, p.In),
				}
			}
			route.Explicit(Param{
				Name:             p.Name,
				In:               p.In,
				Type:             reg.ResolveType(p.Type),
				Required:         p.Required,
				IsArray:          p.Array,
				Enum:             p.Enum,
				CollectionFormat: p.CollectionFormat,
				Title:            p.Title,
				Description:      p.Description,
				Format:           p.Format,
				Extra:            p.Extra,
			})
		}
	}

	return reg, nil
}

package docgen

import (
	"encoding/json"
	"io"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasderive/metadata"
	"github.com/erraggy/oasderive/paramgen"
	"github.com/erraggy/oasderive/schemagen"
	"github.com/erraggy/oasderive/spec"
)

// Endpoint is one endpoint's derived parameter list.
type Endpoint struct {
	Target     string            `yaml:"target" json:"target"`
	Method     string            `yaml:"method" json:"method"`
	Parameters []*spec.Parameter `yaml:"parameters" json:"parameters"`
}

// Fragment is the derived output for a set of endpoints: per-endpoint
// parameter lists plus the definitions they reference. Definitions is the
// deduplicated (last-wins) view; the raw append-only registry is retained
// for lint checks.
type Fragment struct {
	Endpoints   []Endpoint              `yaml:"endpoints" json:"endpoints"`
	Definitions map[string]*spec.Schema `yaml:"definitions,omitempty" json:"definitions,omitempty"`

	entries []schemagen.Definition
}

// DeriveAll runs parameter derivation over every route registered in the
// metadata registry, accumulating definitions across endpoints. Endpoints
// with no documented parameters are skipped.
func DeriveAll(reg *metadata.Registry) *Fragment {
	defs := schemagen.NewRegistry()
	frag := &Fragment{}

	for _, ref := range reg.Routes() {
		result := paramgen.Derive(defs, paramgen.Input{
			Provider: reg,
			Target:   ref.Target,
			Method:   ref.Method,
		})
		if result == nil {
			continue
		}
		frag.Endpoints = append(frag.Endpoints, Endpoint{
			Target:     ref.Target,
			Method:     ref.Method,
			Parameters: result.Parameters,
		})
	}

	frag.entries = defs.Definitions()
	if defs.Len() > 0 {
		frag.Definitions = defs.Deduped()
	}
	return frag
}

// DefinitionEntries returns the raw append-only definition entries, in
// registration order and duplicates included.
func (f *Fragment) DefinitionEntries() []schemagen.Definition {
	return f.entries
}

// EncodeJSON writes the fragment as indented JSON.
func (f *Fragment) EncodeJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(f)
}

// EncodeYAML writes the fragment as YAML.
func (f *Fragment) EncodeYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(f)
}

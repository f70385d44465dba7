package docgen

import (
	"fmt"
	"reflect"

	"github.com/erraggy/oasderive/spec"
)

// Issue severities.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Issue is one lint finding, located by a JSON-path-style pointer into the
// fragment.
type Issue struct {
	Severity string `yaml:"severity" json:"severity"`
	Path     string `yaml:"path" json:"path"`
	Message  string `yaml:"message" json:"message"`
}

// validLocations is the set of emitted parameter locations.
var validLocations = map[string]bool{
	spec.ParamInPath:     true,
	spec.ParamInQuery:    true,
	spec.ParamInHeader:   true,
	spec.ParamInBody:     true,
	spec.ParamInFormData: true,
}

// Lint checks the structural properties derivation guarantees over a
// fragment. A clean fragment returns nil.
func Lint(f *Fragment) []Issue {
	var issues []Issue

	for i, ep := range f.Endpoints {
		for j, p := range ep.Parameters {
			path := fmt.Sprintf("endpoints[%d].parameters[%d]", i, j)
			issues = append(issues, lintParameter(path, p)...)
		}
	}

	issues = append(issues, lintDuplicateDefinitions(f)...)
	return issues
}

func lintParameter(path string, p *spec.Parameter) []Issue {
	var issues []Issue

	if p.Name == "" && p.Ref == "" {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     path,
			Message:  "parameter has no name",
		})
	}
	if p.Ref == "" && !validLocations[p.In] {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     path,
			Message:  fmt.Sprintf("invalid parameter location %q", p.In),
		})
	}
	if p.Type != "" && p.HasSchema() {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     path,
			Message:  "parameter carries both an inline type and a schema",
		})
	}
	if p.Type == "array" && p.Items == nil {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     path,
			Message:  "array parameter has no items",
		})
	}
	if p.Type != "array" && p.Items != nil {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Path:     path,
			Message:  "items present on a non-array parameter",
		})
	}
	if p.Schema != nil && p.Schema.Ref != "" && spec.RefName(p.Schema.Ref) == "" {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     path,
			Message:  fmt.Sprintf("schema $ref %q is not a definitions pointer", p.Schema.Ref),
		})
	}
	return issues
}

// lintDuplicateDefinitions reports names registered more than once in the
// raw registry. Identical re-registrations are expected (the registry does
// not deduplicate); differing shapes under one name are likely a bug and
// warn with more detail.
func lintDuplicateDefinitions(f *Fragment) []Issue {
	var issues []Issue
	first := make(map[string]*spec.Schema)
	reported := make(map[string]bool)

	for _, entry := range f.DefinitionEntries() {
		prev, ok := first[entry.Name]
		if !ok {
			first[entry.Name] = entry.Schema
			continue
		}
		if reported[entry.Name] {
			continue
		}
		reported[entry.Name] = true

		msg := fmt.Sprintf("definition %q registered more than once", entry.Name)
		if !reflect.DeepEqual(prev, entry.Schema) {
			msg += " with differing shapes"
		}
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Path:     "definitions." + entry.Name,
			Message:  msg,
		})
	}
	return issues
}

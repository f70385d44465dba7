package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasderive/docgen"
	"github.com/erraggy/oasderive/generator"
	"github.com/erraggy/oasderive/metadata"
	"github.com/erraggy/oasderive/oaserrors"
	"github.com/erraggy/oasderive/spec"
)

// manifestInput represents the two ways a metadata manifest can be provided
// to a tool. Exactly one of File or Content must be set.
type manifestInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a manifest file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline manifest content (JSON or YAML)"`
}

// resolve builds a metadata registry from the manifest input.
func (m manifestInput) resolve() (*metadata.Registry, error) {
	switch {
	case m.File != "" && m.Content != "":
		return nil, &oaserrors.ConfigError{Option: "manifest", Message: "provide file or content, not both"}
	case m.File != "":
		return metadata.LoadManifest(m.File)
	case m.Content != "":
		return metadata.ParseManifest([]byte(m.Content))
	default:
		return nil, &oaserrors.ConfigError{Option: "manifest", Message: "provide file or content"}
	}
}

type deriveInput struct {
	Manifest manifestInput `json:"manifest" jsonschema:"The metadata manifest describing models and routes"`
}

type deriveEndpoint struct {
	Target     string            `json:"target"`
	Method     string            `json:"method"`
	Parameters []*spec.Parameter `json:"parameters"`
}

type deriveOutput struct {
	Endpoints       []deriveEndpoint        `json:"endpoints"`
	Definitions     map[string]*spec.Schema `json:"definitions,omitempty"`
	DefinitionCount int                     `json:"definition_count"`
}

func handleDerive(_ context.Context, _ *mcp.CallToolRequest, input deriveInput) (*mcp.CallToolResult, deriveOutput, error) {
	reg, err := input.Manifest.resolve()
	if err != nil {
		return errResult(err), deriveOutput{}, nil
	}

	frag := docgen.DeriveAll(reg)
	output := deriveOutput{
		Definitions:     frag.Definitions,
		DefinitionCount: len(frag.Definitions),
	}
	for _, ep := range frag.Endpoints {
		output.Endpoints = append(output.Endpoints, deriveEndpoint{
			Target:     ep.Target,
			Method:     ep.Method,
			Parameters: ep.Parameters,
		})
	}
	return nil, output, nil
}

type lintInput struct {
	Manifest manifestInput `json:"manifest" jsonschema:"The metadata manifest describing models and routes"`
}

type lintOutput struct {
	Clean  bool           `json:"clean"`
	Issues []docgen.Issue `json:"issues,omitempty"`
}

func handleLint(_ context.Context, _ *mcp.CallToolRequest, input lintInput) (*mcp.CallToolResult, lintOutput, error) {
	reg, err := input.Manifest.resolve()
	if err != nil {
		return errResult(err), lintOutput{}, nil
	}

	issues := docgen.Lint(docgen.DeriveAll(reg))
	return nil, lintOutput{Clean: len(issues) == 0, Issues: issues}, nil
}

type generateInput struct {
	Manifest manifestInput `json:"manifest"          jsonschema:"The metadata manifest describing models and routes"`
	Package  string        `json:"package,omitempty" jsonschema:"Package name for the generated Go file (default models)"`
}

type generateOutput struct {
	Code string `json:"code"`
}

func handleGenerate(_ context.Context, _ *mcp.CallToolRequest, input generateInput) (*mcp.CallToolResult, generateOutput, error) {
	reg, err := input.Manifest.resolve()
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	var opts []generator.Option
	if input.Package != "" {
		opts = append(opts, generator.WithPackageName(input.Package))
	}

	frag := docgen.DeriveAll(reg)
	src, err := generator.New(opts...).Generate(frag.Definitions)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}
	return nil, generateOutput{Code: string(src)}, nil
}

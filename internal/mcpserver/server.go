// Package mcpserver implements an MCP (Model Context Protocol) server that
// exposes oasderive capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasderive"
)

const serverInstructions = `oasderive MCP server — derives OpenAPI 2.0 parameter lists and schema definitions from endpoint metadata manifests.

Tools take a metadata manifest (models + routes) as a file path or inline YAML/JSON content:
- derive — run parameter and definition derivation, returning the document fragment
- lint — derive and then check the fragment's structural guarantees
- generate — derive and emit Go model code for the definitions`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "oasderive", Version: oasderive.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "derive",
		Description: "Derive OpenAPI 2.0 parameters and schema definitions from a metadata manifest. Returns one entry per endpoint plus the definitions they reference.",
	}, handleDerive)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "lint",
		Description: "Derive a fragment from a metadata manifest and check its structural guarantees: schema/type exclusivity, array item shapes, valid locations, duplicate definitions.",
	}, handleLint)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate",
		Description: "Derive schema definitions from a metadata manifest and emit Go model code for them.",
	}, handleGenerate)
}

func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}

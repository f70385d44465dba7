// Command oasderive derives OpenAPI 2.0 parameter lists and schema
// definitions from a metadata manifest.
package main

import (
	"fmt"
	"os"

	"github.com/erraggy/oasderive"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("oasderive v%s\n", oasderive.Version())
	case "help", "-h", "--help":
		printUsage()
	case "derive":
		if err := handleDerive(os.Args[2:], os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "lint":
		if err := handleLint(os.Args[2:], os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "generate":
		if err := handleGenerate(os.Args[2:], os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := handleMCP(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`oasderive - derive OpenAPI 2.0 fragments from endpoint metadata

Usage:
  oasderive <command> [options]

Commands:
  derive     Derive parameters and definitions from a metadata manifest
  lint       Derive and check the fragment's structural guarantees
  generate   Derive and emit Go model code for the definitions
  mcp        Run the MCP server over stdio
  version    Print the version
  help       Show this help

Examples:
  oasderive derive -manifest api.yaml -format json
  oasderive derive -manifest api.yaml -format yaml -output fragment.yaml
  oasderive lint -manifest api.yaml
  oasderive generate -manifest api.yaml -package models -output models.go`)
}

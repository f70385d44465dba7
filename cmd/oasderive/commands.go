package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/oasderive/docgen"
	"github.com/erraggy/oasderive/generator"
	"github.com/erraggy/oasderive/internal/mcpserver"
	"github.com/erraggy/oasderive/metadata"
	"github.com/erraggy/oasderive/oaserrors"
)

// handleDerive implements the derive command.
func handleDerive(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("derive", flag.ContinueOnError)
	manifest := fs.String("manifest", "", "Path to the metadata manifest (required)")
	format := fs.String("format", "yaml", "Output format: yaml or json")
	output := fs.String("output", "", "Write output to a file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	reg, err := loadRegistry(*manifest)
	if err != nil {
		return err
	}
	frag := docgen.DeriveAll(reg)

	var buf bytes.Buffer
	switch *format {
	case "yaml":
		err = frag.EncodeYAML(&buf)
	case "json":
		err = frag.EncodeJSON(&buf)
	default:
		return &oaserrors.ConfigError{Option: "format", Value: *format, Message: "must be yaml or json"}
	}
	if err != nil {
		return err
	}

	return writeOutput(*output, buf.Bytes(), stdout)
}

// handleLint implements the lint command. Issues print one per line; any
// error-severity issue fails the command.
func handleLint(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("lint", flag.ContinueOnError)
	manifest := fs.String("manifest", "", "Path to the metadata manifest (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	reg, err := loadRegistry(*manifest)
	if err != nil {
		return err
	}

	issues := docgen.Lint(docgen.DeriveAll(reg))
	if len(issues) == 0 {
		fmt.Fprintln(stdout, "No issues found.")
		return nil
	}

	var errorCount int
	for _, issue := range issues {
		fmt.Fprintf(stdout, "%s: %s: %s\n", issue.Severity, issue.Path, issue.Message)
		if issue.Severity == docgen.SeverityError {
			errorCount++
		}
	}
	if errorCount > 0 {
		return fmt.Errorf("%d error(s) found", errorCount)
	}
	return nil
}

// handleGenerate implements the generate command.
func handleGenerate(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	manifest := fs.String("manifest", "", "Path to the metadata manifest (required)")
	pkg := fs.String("package", "models", "Package name for the generated file")
	output := fs.String("output", "", "Write output to a file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	reg, err := loadRegistry(*manifest)
	if err != nil {
		return err
	}

	frag := docgen.DeriveAll(reg)
	src, err := generator.New(generator.WithPackageName(*pkg)).Generate(frag.Definitions)
	if err != nil {
		return err
	}

	return writeOutput(*output, src, stdout)
}

// handleMCP runs the MCP server over stdio until interrupted.
func handleMCP() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}

func loadRegistry(manifest string) (*metadata.Registry, error) {
	if manifest == "" {
		return nil, &oaserrors.ConfigError{Option: "manifest", Message: "path is required"}
	}
	return metadata.LoadManifest(manifest)
}

func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == "" {
		_, err := stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

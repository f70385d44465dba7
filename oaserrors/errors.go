// Package oaserrors provides structured error types for oasderive.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// The derivation core itself is tolerant-by-omission and never fails on
// malformed metadata; these errors cover the surfaces around it: manifest
// loading, configuration, and code generation.
//
// # Error Categories
//
//   - ManifestError: manifest parsing failures and invalid manifest content
//   - ConfigError: invalid configuration or input options
//   - GenerateError: code generation failures
//
// # Usage with errors.As
//
//	reg, err := metadata.LoadManifest("api.yaml")
//	if err != nil {
//	    var mErr *oaserrors.ManifestError
//	    if errors.As(err, &mErr) {
//	        // mErr.Path, mErr.Message identify the problem
//	    }
//	}
package oaserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrManifest indicates a manifest loading or parsing failure.
	ErrManifest = errors.New("manifest error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")

	// ErrGenerate indicates a code generation failure.
	ErrGenerate = errors.New("generation error")
)

// ManifestError represents a failure to load or interpret a metadata manifest.
type ManifestError struct {
	// Path is the file path or source identifier
	Path string
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ManifestError) Error() string {
	msg := "manifest error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ManifestError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ManifestError) Is(target error) bool {
	return target == ErrManifest
}

// ConfigError represents an invalid configuration or input option.
type ConfigError struct {
	// Option is the name of the problematic option
	Option string
	// Value is the problematic value (may be nil)
	Value any
	// Message describes why the configuration is invalid
	Message string
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// GenerateError represents a code generation failure.
type GenerateError struct {
	// Definition is the schema definition being generated, if known
	Definition string
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *GenerateError) Error() string {
	msg := "generation error"
	if e.Definition != "" {
		msg += " for " + e.Definition
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *GenerateError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *GenerateError) Is(target error) bool {
	return target == ErrGenerate
}

package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPascalCase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"user_profile", "UserProfile"},
		{"api-client", "ApiClient"},
		{"already", "Already"},
		{"AlreadyPascal", "AlreadyPascal"},
		{"with.dots/and/slashes", "WithDotsAndSlashes"},
		{"api-URL", "ApiURL"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ToPascalCase(tt.input))
		})
	}
}

func TestToCamelCase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"user_profile", "userProfile"},
		{"UserProfile", "userProfile"},
		{"id", "id"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ToCamelCase(tt.input))
		})
	}
}

func TestGoIdentifier(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"user_profile", "UserProfile"},
		{"404", "X404"},
		{"x-trace-id", "XTraceId"},
		{"$weird!", "Weird"},
		{"", "X"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, GoIdentifier(tt.input))
		})
	}
}

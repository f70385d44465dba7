// Package naming provides string case conversion utilities for generated
// Go identifiers.
package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleCaser capitalizes the first letter of a word without lowering the
// rest, so acronym-ish segments like "URL" survive conversion.
var titleCaser = cases.Title(language.English, cases.NoLower)

// ToPascalCase converts a string to PascalCase.
// Separators (underscore, hyphen, dot, slash, space) trigger capitalization
// of the next segment.
// Example: "user_profile" -> "UserProfile"
// Example: "api-URL" -> "ApiURL"
func ToPascalCase(s string) string {
	if s == "" {
		return ""
	}

	var result strings.Builder
	for _, segment := range strings.FieldsFunc(s, isSeparator) {
		result.WriteString(titleCaser.String(segment))
	}
	return result.String()
}

// ToCamelCase converts a string to camelCase.
// Like PascalCase but with the first letter lowercase.
// Example: "user_profile" -> "userProfile"
func ToCamelCase(s string) string {
	pascal := ToPascalCase(s)
	if pascal == "" {
		return ""
	}
	runes := []rune(pascal)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// GoIdentifier converts an arbitrary name into a valid exported Go
// identifier: PascalCase with invalid runes stripped, prefixed when the
// result would start with a digit or come out empty.
func GoIdentifier(s string) string {
	pascal := ToPascalCase(s)

	var result strings.Builder
	for _, r := range pascal {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			result.WriteRune(r)
		}
	}
	id := result.String()
	if id == "" {
		return "X"
	}
	if unicode.IsDigit([]rune(id)[0]) {
		return "X" + id
	}
	return id
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || r == '/' || r == ' '
}

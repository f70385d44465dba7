package schemagen

import "unicode"

// MapTypeName normalizes a native type name into the OAS 2.0 primitive
// vocabulary by lower-casing its first rune, so "String" becomes "string"
// and "Number" becomes "number". Returns "" for an absent name.
func MapTypeName(name string) string {
	if name == "" {
		return ""
	}
	runes := []rune(name)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// primitiveNames is the fixed allow-list of mapped names treated as
// primitives. A composite type whose name maps outside this list is expanded
// into its own schema definition.
var primitiveNames = map[string]bool{
	"string":  true,
	"boolean": true,
	"number":  true,
	"object":  true,
	"array":   true,
}

// IsPrimitiveName reports whether a mapped type name is in the primitive
// allow-list.
func IsPrimitiveName(mapped string) bool {
	return primitiveNames[mapped]
}

package spec

import "strings"

// definitionsPrefix is the OAS 2.0 pointer prefix for named schema definitions.
const definitionsPrefix = "#/definitions/"

// DefinitionRef returns the #/definitions/ reference string for a named
// schema definition.
func DefinitionRef(name string) string {
	return definitionsPrefix + name
}

// RefName extracts the definition name from a #/definitions/ reference.
// Returns "" if the string is not a definitions reference.
func RefName(ref string) string {
	if strings.HasPrefix(ref, definitionsPrefix) {
		return ref[len(definitionsPrefix):]
	}
	return ""
}

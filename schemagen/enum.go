package schemagen

import (
	"fmt"
	"sort"

	"github.com/erraggy/oasderive/metadata"
)

// ResolveEnum extracts the ordered value list from an enum source.
//
// A plain value list passes through unchanged. A mapping source is iterated
// in order; each entry's value is included exactly once, and an entry is
// skipped when its value or its key has already been seen as a value. That
// filters the reverse-lookup aliases of bidirectional enum encodings, where
// both A→1 and 1→A appear.
//
// Returns nil for an unrecognized source.
func ResolveEnum(src any) []any {
	switch v := src.(type) {
	case nil:
		return nil
	case []any:
		return v
	case []string:
		values := make([]any, len(v))
		for i, s := range v {
			values[i] = s
		}
		return values
	case []metadata.EnumPair:
		return resolvePairs(v)
	case map[string]any:
		// Plain maps have no declaration order; sort keys for determinism.
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]metadata.EnumPair, len(keys))
		for i, k := range keys {
			pairs[i] = metadata.EnumPair{Key: k, Value: v[k]}
		}
		return resolvePairs(pairs)
	default:
		return nil
	}
}

func resolvePairs(pairs []metadata.EnumPair) []any {
	values := make([]any, 0, len(pairs))
	seen := make(map[string]bool, len(pairs))
	for _, pair := range pairs {
		valueKey := fmt.Sprint(pair.Value)
		if seen[valueKey] || seen[fmt.Sprint(pair.Key)] {
			continue
		}
		seen[valueKey] = true
		values = append(values, pair.Value)
	}
	return values
}

// EnumPrimitiveType infers the schema type of a resolved enum: "string" when
// any value is textual, "number" otherwise.
func EnumPrimitiveType(values []any) string {
	for _, v := range values {
		if _, ok := v.(string); ok {
			return "string"
		}
	}
	return "number"
}

package schemagen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erraggy/oasderive/metadata"
)

func TestResolveEnumList(t *testing.T) {
	values := []any{"a", "b", "a"}
	// A plain list passes through unchanged, duplicates included.
	assert.Equal(t, values, ResolveEnum(values))
}

func TestResolveEnumStringList(t *testing.T) {
	assert.Equal(t, []any{"a", "b"}, ResolveEnum([]string{"a", "b"}))
}

func TestResolveEnumBidirectionalPairs(t *testing.T) {
	// Bidirectional encoding: A→1, B→2 plus reverse aliases 1→A, 2→B.
	pairs := []metadata.EnumPair{
		{Key: "A", Value: 1},
		{Key: "B", Value: 2},
		{Key: 1, Value: "A"},
		{Key: 2, Value: "B"},
	}
	assert.Equal(t, []any{1, 2}, ResolveEnum(pairs))
}

func TestResolveEnumDuplicateValues(t *testing.T) {
	pairs := []metadata.EnumPair{
		{Key: "A", Value: "x"},
		{Key: "B", Value: "x"},
		{Key: "C", Value: "y"},
	}
	assert.Equal(t, []any{"x", "y"}, ResolveEnum(pairs))
}

func TestResolveEnumMapSortsKeys(t *testing.T) {
	src := map[string]any{"b": 2, "a": 1, "c": 3}
	assert.Equal(t, []any{1, 2, 3}, ResolveEnum(src))
}

func TestResolveEnumMapWithReverseAliases(t *testing.T) {
	src := map[string]any{"A": 1, "1": "A"}
	// Keys sort as "1" < "A": the reverse alias lands first, so its value
	// "A" is kept and the forward pair A→1 is skipped as an alias.
	assert.Equal(t, []any{"A"}, ResolveEnum(src))
}

func TestResolveEnumUnrecognized(t *testing.T) {
	assert.Nil(t, ResolveEnum(nil))
	assert.Nil(t, ResolveEnum(42))
	assert.Nil(t, ResolveEnum("abc"))
}

func TestEnumPrimitiveType(t *testing.T) {
	assert.Equal(t, "string", EnumPrimitiveType([]any{1, "a"}))
	assert.Equal(t, "number", EnumPrimitiveType([]any{1, 2}))
	assert.Equal(t, "number", EnumPrimitiveType(nil))
}

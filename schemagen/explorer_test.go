package schemagen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erraggy/oasderive/metadata"
)

type fakeHandle struct {
	name    string
	members []metadata.Member
	props   map[string]metadata.PropertyMetadata
}

func (h *fakeHandle) Name() string               { return h.name }
func (h *fakeHandle) Members() []metadata.Member { return h.members }
func (h *fakeHandle) Property(name string) (metadata.PropertyMetadata, bool) {
	meta, ok := h.props[name]
	return meta, ok
}

func TestExposedProperties(t *testing.T) {
	h := &fakeHandle{
		name: "User",
		members: []metadata.Member{
			{Name: ":id"},
			{Name: ":name"},
			{Name: "constructor"},
			{Name: ":save", Callable: true},
			{Name: "toString", Callable: true},
		},
	}

	// Only marked, non-callable members survive, marker stripped, order kept.
	assert.Equal(t, []string{"id", "name"}, ExposedProperties(h))
}

func TestExposedPropertiesEmpty(t *testing.T) {
	assert.Nil(t, ExposedProperties(nil))
	assert.Nil(t, ExposedProperties(&fakeHandle{name: "Empty"}))
	assert.Nil(t, ExposedProperties(&fakeHandle{
		name:    "NoMarks",
		members: []metadata.Member{{Name: "plain"}, {Name: "run", Callable: true}},
	}))
}

package schemagen

import (
	"strings"

	"github.com/erraggy/oasderive/metadata"
)

// ExposedProperties lists the public property names a composite type has
// opted into schema exposure: members carrying the property marker that are
// not callable, with the marker stripped, in declaration order.
func ExposedProperties(h metadata.CompositeHandle) []string {
	if h == nil {
		return nil
	}
	var names []string
	for _, m := range h.Members() {
		if m.Callable || !strings.HasPrefix(m.Name, metadata.PropertyMarker) {
			continue
		}
		names = append(names, strings.TrimPrefix(m.Name, metadata.PropertyMarker))
	}
	return names
}

package metadata

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasderive/oaserrors"
	"github.com/erraggy/oasderive/spec"
)

const sampleManifest = `
models:
  - name: User
    properties:
      - name: id
        type: Number
      - name: name
        type: String
      - name: address
        type: Address
        required: false
  - name: Address
    properties:
      - name: street
        type: String
routes:
  - target: UserController
    method: create
    bindings:
      - index: 0
        bind: body
        type: User
      - index: 1
        bind: query
        name: verbose
        type: Boolean
    explicit:
      - name: X-Trace
        in: header
        type: String
        required: false
`

func TestParseManifest(t *testing.T) {
	reg, err := ParseManifest([]byte(sampleManifest))
	require.NoError(t, err)

	user := reg.Handle("User")
	require.NotNil(t, user)
	members := user.Members()
	require.Len(t, members, 3)
	assert.Equal(t, ":id", members[0].Name)

	// Forward reference to a model declared later in the document resolves
	// to a composite handle.
	addr, ok := user.Property("address")
	require.True(t, ok)
	assert.Equal(t, KindComposite, addr.Type.Kind())
	assert.Equal(t, "Address", addr.Type.Name())
	require.NotNil(t, addr.Required)
	assert.False(t, *addr.Required)

	types := reg.ParamTypes("UserController", "create")
	require.Len(t, types, 2)
	assert.Equal(t, KindComposite, types[0].Kind())
	assert.Equal(t, KindPrimitive, types[1].Kind())

	explicit := reg.ExplicitParams("UserController", "create")
	require.Len(t, explicit, 1)
	assert.Equal(t, spec.ParamInHeader, explicit[0].In)
}

func TestParseManifestJSON(t *testing.T) {
	data := `{"models":[{"name":"User","properties":[{"name":"id","type":"Number"}]}]}`
	reg, err := ParseManifest([]byte(data))
	require.NoError(t, err)
	require.NotNil(t, reg.Handle("User"))
}

func TestParseManifestErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid yaml", "models: ["},
		{"empty model name", "models:\n  - properties: []"},
		{"empty property name", "models:\n  - name: User\n    properties:\n      - type: String"},
		{"empty route target", "routes:\n  - method: create"},
		{"unknown binding", "routes:\n  - target: C\n    method: m\n    bindings:\n      - index: 0\n        bind: cookie"},
		{"unknown location", "routes:\n  - target: C\n    method: m\n    explicit:\n      - name: p\n        in: cookie"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseManifest([]byte(tt.data))
			require.Error(t, err)
			assert.True(t, errors.Is(err, oaserrors.ErrManifest))
		})
	}
}

func TestLoadManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleManifest), 0o600))

	reg, err := LoadManifest(path)
	require.NoError(t, err)
	assert.NotNil(t, reg.Handle("User"))
}

func TestLoadManifestMissingFile(t *testing.T) {
	_, err := LoadManifest(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	var mErr *oaserrors.ManifestError
	require.True(t, errors.As(err, &mErr))
	assert.Contains(t, mErr.Path, "missing.yaml")
}

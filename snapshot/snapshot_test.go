package snapshot_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sna/core"
	"github.com/katalvlaran/sna/snapshot"
)

const yamlDoc = `
directed: true
relations: [advice, friendship]
vertices:
  - {id: 1, label: Ann}
  - {id: 4, label: Bob, x: 10, y: 20}
  - {id: 7, label: Cy}
ties:
  - {from: 1, to: 4}
  - {from: 4, to: 7, weight: 2.5}
  - {from: 7, to: 1, relation: friendship}
`

const tomlDoc = `
directed = true
relations = ["advice", "friendship"]

[[vertices]]
id = 1
label = "Ann"

[[vertices]]
id = 4
label = "Bob"
x = 10.0
y = 20.0

[[vertices]]
id = 7
label = "Cy"

[[ties]]
from = 1
to = 4

[[ties]]
from = 4
to = 7
weight = 2.5

[[ties]]
from = 7
to = 1
relation = "friendship"
`

func checkSample(t *testing.T, g *core.Graph) {
	t.Helper()
	assert.True(t, g.Directed())
	assert.Equal(t, []core.VertexID{1, 4, 7}, g.Vertices())
	assert.Equal(t, []string{"advice", "friendship"}, g.Relations())
	assert.Equal(t, 0, g.ActiveRelation())
	assert.Equal(t, []core.Edge{{From: 1, To: 4, Weight: 1}, {From: 4, To: 7, Weight: 2.5}}, g.Edges())

	bob, err := g.Vertex(4)
	require.NoError(t, err)
	assert.Equal(t, "Bob", bob.Label)
	assert.Equal(t, 10.0, bob.X)
	assert.Equal(t, 20.0, bob.Y)

	require.NoError(t, g.SetActiveRelation(1))
	assert.Equal(t, []core.Edge{{From: 7, To: 1, Weight: 1}}, g.Edges())

	// new vertices never collide with restored identifiers
	assert.Equal(t, 8, g.AddVertex("new"))
}

func TestDecode_YAML(t *testing.T) {
	g, err := snapshot.Decode(strings.NewReader(yamlDoc), snapshot.YAML)
	require.NoError(t, err)
	checkSample(t, g)
}

func TestDecode_TOML(t *testing.T) {
	g, err := snapshot.Decode(strings.NewReader(tomlDoc), snapshot.TOML)
	require.NoError(t, err)
	checkSample(t, g)
}

// TestDecode_Errors surfaces core errors through the decoder.
func TestDecode_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"unknown relation", "vertices: [{id: 1}, {id: 2}]\nties: [{from: 1, to: 2, relation: kin}]", snapshot.ErrUnknownRelation},
		{"duplicate vertex", "vertices: [{id: 1}, {id: 1}]", core.ErrDuplicateVertex},
		{"missing endpoint", "vertices: [{id: 1}]\nties: [{from: 1, to: 9}]", core.ErrInvalidVertex},
		{"loop", "vertices: [{id: 1}]\nties: [{from: 1, to: 1}]", core.ErrLoopNotAllowed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := snapshot.Decode(strings.NewReader(tc.doc), snapshot.YAML)
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := snapshot.Decode(strings.NewReader("vertices: [oops"), snapshot.YAML)
	require.Error(t, err)
	_, err = snapshot.Decode(strings.NewReader(""), snapshot.Format(9))
	require.ErrorIs(t, err, snapshot.ErrUnknownFormat)
}

// TestEncode_RoundTrip writes both formats and reads them back.
func TestEncode_RoundTrip(t *testing.T) {
	src, err := snapshot.Decode(strings.NewReader(yamlDoc), snapshot.YAML)
	require.NoError(t, err)
	require.NoError(t, src.SetActiveRelation(1))
	version := src.Version()

	for _, f := range []snapshot.Format{snapshot.YAML, snapshot.TOML} {
		t.Run(f.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, snapshot.Encode(&buf, src, f))
			assert.Equal(t, 1, src.ActiveRelation())
			assert.Equal(t, version, src.Version(), "encoding leaves the graph untouched")

			g, err := snapshot.Decode(&buf, f)
			require.NoError(t, err)
			checkSample(t, g)
		})
	}
	require.ErrorIs(t, snapshot.Encode(&bytes.Buffer{}, nil, snapshot.YAML), snapshot.ErrNilGraph)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "net.yml")
	require.NoError(t, os.WriteFile(path, []byte(yamlDoc), 0o600))
	g, err := snapshot.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, g.VertexCount())

	_, err = snapshot.Load(filepath.Join(dir, "net.json"))
	require.ErrorIs(t, err, snapshot.ErrUnknownFormat)
	_, err = snapshot.Load(filepath.Join(dir, "absent.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

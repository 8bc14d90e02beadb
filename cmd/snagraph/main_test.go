package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sna/analysis"
	"github.com/katalvlaran/sna/equivalence"
)

// A four-vertex path 1-2-3-4 with a second, directed-looking relation.
const pathSnapshot = `
relations: [work, kin]
vertices:
  - {id: 1, label: Ann}
  - {id: 2, label: Bob}
  - {id: 3, label: Cy}
  - {id: 4, label: Di}
ties:
  - {from: 1, to: 2}
  - {from: 2, to: 3}
  - {from: 3, to: 4}
  - {from: 1, to: 4, relation: kin}
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "net.yaml")
	require.NoError(t, os.WriteFile(path, []byte(pathSnapshot), 0o600))

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{args[0], path, "--output", "plain"}, args[1:]...))
	err := root.Execute()

	return out.String(), err
}

func TestProminence(t *testing.T) {
	out, err := run(t, "prominence", "--index", "BC,DC", "--raw")
	require.NoError(t, err)
	assert.Contains(t, out, "Raw scores")
	assert.Contains(t, out, "betweenness centrality")
	assert.Contains(t, out, "2 (Bob)")
}

func TestProminence_PartialFailure(t *testing.T) {
	// proximity prestige needs a directed graph; the other index still prints
	out, err := run(t, "prominence", "--index", "PP,DC")
	require.NoError(t, err)
	assert.Contains(t, out, "proximity prestige")
	assert.Contains(t, out, "degree centrality")
}

func TestProminence_UnknownIndex(t *testing.T) {
	_, err := run(t, "prominence", "--index", "XYZ")
	require.Error(t, err)
}

func TestDistances(t *testing.T) {
	out, err := run(t, "distances", "--matrix")
	require.NoError(t, err)
	assert.Contains(t, out, "diameter")
	assert.Contains(t, out, "connected")
	assert.Contains(t, out, "Distance matrix")
}

func TestDistances_OtherRelation(t *testing.T) {
	// in "kin" only 1-4 is tied, so 2 and 3 are isolates
	out, err := run(t, "distances", "--relation", "kin")
	require.NoError(t, err)
	assert.Contains(t, out, "disconnected")

	_, err = run(t, "distances", "--relation", "school")
	require.Error(t, err)
}

func TestCohesion(t *testing.T) {
	out, err := run(t, "cohesion", "--triads", "--backbone")
	require.NoError(t, err)
	assert.Contains(t, out, "Backbone (total 3)")
	assert.Contains(t, out, "weak components")
	assert.Contains(t, out, "Maximal cliques")
	assert.Contains(t, out, "030T")
	assert.Contains(t, out, "Triad census (4 triples)")
}

func TestSimilarityAndCluster(t *testing.T) {
	out, err := run(t, "similarity", "--measure", "dist:hamming")
	require.NoError(t, err)
	assert.Contains(t, out, "Pair table")

	out, err = run(t, "cluster", "--measure", "match:exact", "--linkage", "single", "--cut", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Partition into 2 clusters")

	_, err = run(t, "similarity", "--measure", "spearman")
	require.ErrorIs(t, err, equivalence.ErrUnknownChoice)
}

func TestMatrix(t *testing.T) {
	out, err := run(t, "matrix", "--kind", "laplacian")
	require.NoError(t, err)
	assert.Contains(t, out, "laplacian matrix")

	out, err = run(t, "matrix", "--walks", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Walks of length 2")

	_, err = run(t, "matrix", "--kind", "inverse")
	require.NoError(t, err) // P4 is invertible

	_, err = run(t, "matrix", "--kind", "hessian")
	require.ErrorIs(t, err, analysis.ErrUnknownMatrix)
}

func TestMissingSnapshot(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"distances", filepath.Join(t.TempDir(), "none.yaml")})
	require.Error(t, root.Execute())
}

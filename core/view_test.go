package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sna/core"
)

// TestView_DenseIndexing checks ascending-ID order and adjacency translation.
func TestView_DenseIndexing(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	a, b, c := g.AddVertex("a"), g.AddVertex("b"), g.AddVertex("c")
	require.NoError(t, g.RemoveVertex(b))
	d := g.AddVertex("d")
	require.NoError(t, g.AddEdge(d, a, 3))
	require.NoError(t, g.AddEdge(a, c, 1))

	v := g.View(false)
	require.Equal(t, 3, v.N())
	assert.Equal(t, []core.VertexID{a, c, d}, v.IDs())
	i, ok := v.Index(d)
	require.True(t, ok)
	assert.Equal(t, 2, i)
	_, ok = v.Index(b)
	assert.False(t, ok)

	assert.Equal(t, []core.Arc{{To: 1, Weight: 1}}, v.Out(0))
	assert.Equal(t, []core.Arc{{To: 2, Weight: 3}}, v.In(0))
	assert.Equal(t, 3.0, v.Weight(2, 0))
	assert.Zero(t, v.Weight(0, 2))
	assert.True(t, v.HasArc(2, 0))
	assert.True(t, v.Weighted())
	assert.True(t, v.Directed())
}

// TestView_DropIsolates verifies dropped vertices and the isolate count.
func TestView_DropIsolates(t *testing.T) {
	g := core.NewGraph()
	a, b := g.AddVertex("a"), g.AddVertex("b")
	iso1, iso2 := g.AddVertex("x"), g.AddVertex("y")
	require.NoError(t, g.AddEdge(a, b, 1))

	full := g.View(false)
	assert.Equal(t, 4, full.N())
	assert.Equal(t, 2, full.Isolates())
	assert.True(t, full.IsIsolate(2))
	assert.Empty(t, full.Dropped())

	reduced := g.View(true)
	assert.Equal(t, 2, reduced.N())
	assert.Equal(t, 2, reduced.Isolates())
	assert.Equal(t, []core.VertexID{iso1, iso2}, reduced.Dropped())
	assert.False(t, reduced.Weighted())
}

// TestView_IsSnapshot checks later mutations do not leak into an existing view.
func TestView_IsSnapshot(t *testing.T) {
	g := core.NewGraph()
	a, b := g.AddVertex("a"), g.AddVertex("b")
	v := g.View(false)
	require.NoError(t, g.AddEdge(a, b, 1))

	assert.Empty(t, v.Out(0))
	assert.NotEqual(t, v.Version(), g.Version())
}

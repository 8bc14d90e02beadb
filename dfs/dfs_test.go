package dfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sna/core"
	"github.com/katalvlaran/sna/dfs"
)

// twoCycles builds 1→2→3→1, 3→4, 4↔5, and an isolate 6.
func twoCycles(t *testing.T) *core.View {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true))
	for i := 0; i < 6; i++ {
		g.AddVertex("")
	}
	for _, e := range [][2]int{{1, 2}, {2, 3}, {3, 1}, {3, 4}, {4, 5}, {5, 4}} {
		require.NoError(t, g.AddEdge(e[0], e[1], 1))
	}

	return g.View(false)
}

// TestReach_Directed follows arcs forward only, or both ways on request.
func TestReach_Directed(t *testing.T) {
	v := twoCycles(t)
	mask, err := dfs.Reach(v, 3)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, false, true, true, false}, mask)

	mask, err = dfs.Reach(v, 3, dfs.WithUndirected())
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, true, true, true, false}, mask)

	_, err = dfs.Reach(v, 10)
	require.ErrorIs(t, err, dfs.ErrSourceOutOfRange)
	_, err = dfs.Reach(nil, 0)
	require.ErrorIs(t, err, dfs.ErrViewNil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.Reach(v, 0, dfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// TestComponents_Weak groups by undirected connectivity.
func TestComponents_Weak(t *testing.T) {
	comps, err := dfs.Components(twoCycles(t))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2, 3, 4}, {5}}, comps)
}

// TestStrongComponents splits at the one-way bridge.
func TestStrongComponents(t *testing.T) {
	comps, err := dfs.StrongComponents(twoCycles(t))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2}, {3, 4}, {5}}, comps)
}

// TestComponents_LongChain exercises the explicit stack on a deep path.
func TestComponents_LongChain(t *testing.T) {
	g := core.NewGraph()
	const n = 20000
	for i := 0; i < n; i++ {
		g.AddVertex("")
	}
	for i := 1; i < n; i++ {
		require.NoError(t, g.AddEdge(i, i+1, 1))
	}
	comps, err := dfs.StrongComponents(g.View(false))
	require.NoError(t, err)
	require.Len(t, comps, 1)
	assert.Len(t, comps[0], n)
}

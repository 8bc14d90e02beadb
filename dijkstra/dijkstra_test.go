package dijkstra_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sna/core"
	"github.com/katalvlaran/sna/dijkstra"
)

type arc struct {
	from, to int
	w        float64
}

func build(t *testing.T, directed bool, n int, arcs []arc) *core.View {
	t.Helper()
	g := core.NewGraph(core.WithDirected(directed))
	for i := 0; i < n; i++ {
		g.AddVertex("")
	}
	for _, a := range arcs {
		require.NoError(t, g.AddEdge(a.from, a.to, a.w))
	}

	return g.View(false)
}

// TestSearch_Errors covers validation paths.
func TestSearch_Errors(t *testing.T) {
	_, err := dijkstra.Search(nil, 0)
	require.ErrorIs(t, err, dijkstra.ErrViewNil)

	v := build(t, true, 3, []arc{{1, 2, -1}})
	_, err = dijkstra.Search(v, 0)
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)

	v = build(t, true, 3, []arc{{1, 2, 0}, {2, 3, 1}})
	_, err = dijkstra.Search(v, 0)
	require.NoError(t, err, "zero weights are fine without inversion")
	_, err = dijkstra.Search(v, 0, dijkstra.WithInvertWeights())
	require.ErrorIs(t, err, dijkstra.ErrDegenerateWeight)

	_, err = dijkstra.Search(v, 7)
	require.ErrorIs(t, err, dijkstra.ErrSourceOutOfRange)
	_, err = dijkstra.Search(v, 0, dijkstra.WithEpsilon(-1))
	require.ErrorIs(t, err, dijkstra.ErrOptionViolation)
	_, err = dijkstra.Search(v, 0, dijkstra.WithMaxDistance(-2))
	require.ErrorIs(t, err, dijkstra.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dijkstra.Search(v, 0, dijkstra.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// TestSearch_WeightedPaths prefers the cheaper two-hop route.
func TestSearch_WeightedPaths(t *testing.T) {
	// 1→2 (1), 2→3 (1), 1→3 (5)
	v := build(t, true, 3, []arc{{1, 2, 1}, {2, 3, 1}, {1, 3, 5}})
	res, err := dijkstra.Search(v, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2}, res.Dist)
	assert.Equal(t, []int{1}, res.Pred[2])
	assert.Equal(t, []int{0, 1, 2}, res.Order)
}

// TestSearch_TiesAccumulateSigma counts two equal-cost routes despite rounding.
func TestSearch_TiesAccumulateSigma(t *testing.T) {
	// 1–2–4 costs 0.1+0.2, 1–3–4 costs 0.2+0.1; both ≈ 0.3 with float noise.
	v := build(t, false, 4, []arc{{1, 2, 0.1}, {2, 4, 0.2}, {1, 3, 0.2}, {3, 4, 0.1}})
	res, err := dijkstra.Search(v, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.3, res.Dist[3], 1e-12)
	assert.Equal(t, 2.0, res.Sigma[3])
	assert.ElementsMatch(t, []int{1, 2}, res.Pred[3])
}

// TestSearch_ZeroValueIsNoTie routes around arcs valued 0.
func TestSearch_ZeroValueIsNoTie(t *testing.T) {
	v := build(t, true, 3, []arc{{1, 2, 0}, {1, 3, 0}, {3, 2, 0}})
	res, err := dijkstra.Search(v, 0)
	require.NoError(t, err)
	assert.False(t, res.Reachable(1))
	assert.False(t, res.Reachable(2))
	assert.Zero(t, res.Sigma[1])

	// 1→2 (0), 1→3 (1), 3→2 (1): the only geodesic to 2 runs through 3
	v = build(t, true, 3, []arc{{1, 2, 0}, {1, 3, 1}, {3, 2, 1}})
	res, err = dijkstra.Search(v, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2, 1}, res.Dist)
	assert.Equal(t, 1.0, res.Sigma[1])
	assert.Equal(t, []int{2}, res.Pred[1])
}

// TestSearch_InvertWeights treats strong ties as short.
func TestSearch_InvertWeights(t *testing.T) {
	// direct tie of strength 1 (length 1) vs two ties of strength 4 (length 0.5)
	v := build(t, false, 3, []arc{{1, 3, 1}, {1, 2, 4}, {2, 3, 4}})
	res, err := dijkstra.Search(v, 0, dijkstra.WithInvertWeights())
	require.NoError(t, err)
	assert.InDelta(t, 0.25, res.Dist[1], 1e-12)
	assert.InDelta(t, 0.5, res.Dist[2], 1e-12)
	assert.Equal(t, []int{1}, res.Pred[2])
}

// TestSearch_MaxDistance leaves far vertices unreached.
func TestSearch_MaxDistance(t *testing.T) {
	v := build(t, false, 3, []arc{{1, 2, 2}, {2, 3, 2}})
	res, err := dijkstra.Search(v, 0, dijkstra.WithMaxDistance(3))
	require.NoError(t, err)
	assert.Equal(t, 2.0, res.Dist[1])
	assert.True(t, math.IsInf(res.Dist[2], 1))
	assert.False(t, res.Reachable(2))
}

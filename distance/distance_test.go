package distance_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sna/builder"
	"github.com/katalvlaran/sna/core"
	"github.com/katalvlaran/sna/dijkstra"
	"github.com/katalvlaran/sna/distance"
)

var ctx = context.Background()

func mustBuild(t *testing.T, gopts []core.GraphOption, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(gopts, nil, cons...)
	require.NoError(t, err)

	return g
}

// TestAllPairs_Path5 covers the bridge path 1-2-3-4-5.
func TestAllPairs_Path5(t *testing.T) {
	g := mustBuild(t, nil, builder.Path(5))
	res, err := distance.AllPairs(ctx, g, distance.Options{})
	require.NoError(t, err)

	d, err := res.Distance(1, 5)
	require.NoError(t, err)
	assert.Equal(t, 4.0, d)

	diam, err := res.Diameter()
	require.NoError(t, err)
	assert.Equal(t, 4.0, diam)

	avg, err := res.AverageDistance()
	require.NoError(t, err)
	assert.InDelta(t, 2.0, avg, 1e-12) // (4·1+3·2+2·3+1·4)/10

	rad, err := res.Radius()
	require.NoError(t, err)
	assert.Equal(t, 2.0, rad)
	assert.Equal(t, map[core.VertexID]float64{1: 4, 2: 3, 3: 2, 4: 3, 5: 4}, res.Eccentricities())
	assert.Equal(t, distance.Connected, res.Connectedness())
}

// TestAllPairs_Symmetry checks d(v,v)=0 and d(u,v)=d(v,u) on undirected graphs.
func TestAllPairs_Symmetry(t *testing.T) {
	g := mustBuild(t, nil, builder.Wheel(7), builder.Path(3))
	res, err := distance.AllPairs(ctx, g, distance.Options{})
	require.NoError(t, err)
	for i := 0; i < res.N(); i++ {
		assert.Zero(t, res.At(i, i))
		for j := 0; j < res.N(); j++ {
			assert.Equal(t, res.At(i, j), res.At(j, i))
		}
	}
	assert.Equal(t, distance.Disconnected, res.Connectedness())
}

// TestGeodesics_Cycle4 counts the two routes around a square.
func TestGeodesics_Cycle4(t *testing.T) {
	g := mustBuild(t, nil, builder.Cycle(4))
	res, err := distance.AllPairs(ctx, g, distance.Options{})
	require.NoError(t, err)
	s, err := res.Geodesics(1, 3)
	require.NoError(t, err)
	assert.Equal(t, 2.0, s)
	ok, err := res.Reachable(1, 3)
	require.NoError(t, err)
	assert.True(t, ok)
	_, err = res.Distance(1, 99)
	require.ErrorIs(t, err, core.ErrInvalidVertex)
}

// TestConnectedness_Classes covers every classification.
func TestConnectedness_Classes(t *testing.T) {
	directed := []core.GraphOption{core.WithDirected(true)}

	cases := []struct {
		name  string
		build func(t *testing.T) *core.Graph
		opts  distance.Options
		want  distance.Class
	}{
		{"single", func(t *testing.T) *core.Graph {
			g := core.NewGraph()
			g.AddVertex("")
			return g
		}, distance.Options{}, distance.Connected},
		{"strong", func(t *testing.T) *core.Graph { return mustBuild(t, directed, builder.Cycle(4)) }, distance.Options{}, distance.StronglyConnected},
		{"unilateral", func(t *testing.T) *core.Graph { return mustBuild(t, directed, builder.Path(4)) }, distance.Options{}, distance.UnilaterallyConnected},
		{"weak", func(t *testing.T) *core.Graph {
			g := core.NewGraph(core.WithDirected(true))
			a, b, c := g.AddVertex(""), g.AddVertex(""), g.AddVertex("")
			require.NoError(t, g.AddEdge(a, b, 1))
			require.NoError(t, g.AddEdge(c, b, 1))
			return g
		}, distance.Options{}, distance.WeaklyConnected},
		{"isolates", func(t *testing.T) *core.Graph {
			g := mustBuild(t, nil, builder.Complete(4))
			g.AddVertex("loner")
			return g
		}, distance.Options{}, distance.DisconnectedWithIsolates},
		{"unilateralWithIsolate", func(t *testing.T) *core.Graph {
			g := core.NewGraph(core.WithDirected(true))
			a, b, c := g.AddVertex(""), g.AddVertex(""), g.AddVertex("")
			g.AddVertex("loner")
			require.NoError(t, g.AddEdge(a, b, 1))
			require.NoError(t, g.AddEdge(b, c, 1))
			return g
		}, distance.Options{}, distance.DisconnectedWithIsolates},
		{"weakWithIsolate", func(t *testing.T) *core.Graph {
			g := core.NewGraph(core.WithDirected(true))
			a, b, c := g.AddVertex(""), g.AddVertex(""), g.AddVertex("")
			g.AddVertex("loner")
			require.NoError(t, g.AddEdge(a, b, 1))
			require.NoError(t, g.AddEdge(c, b, 1))
			return g
		}, distance.Options{}, distance.DisconnectedWithIsolates},
		{"isolatesDropped", func(t *testing.T) *core.Graph {
			g := mustBuild(t, nil, builder.Complete(4))
			g.AddVertex("loner")
			return g
		}, distance.Options{DropIsolates: true}, distance.Connected},
		{"allIsolates", func(t *testing.T) *core.Graph {
			g := core.NewGraph()
			g.AddVertex("")
			g.AddVertex("")
			return g
		}, distance.Options{}, distance.Disconnected},
		{"twoComponents", func(t *testing.T) *core.Graph { return mustBuild(t, nil, builder.Path(2), builder.Path(2)) }, distance.Options{}, distance.Disconnected},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := distance.AllPairs(ctx, tc.build(t), tc.opts)
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Connectedness(), res.Connectedness().String())
		})
	}
}

// TestUndefinedSummaries reports ErrUndefined when nothing is reachable.
func TestUndefinedSummaries(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex("")
	g.AddVertex("")
	res, err := distance.AllPairs(ctx, g, distance.Options{})
	require.NoError(t, err)

	_, err = res.Diameter()
	require.ErrorIs(t, err, distance.ErrUndefined)
	_, err = res.AverageDistance()
	require.ErrorIs(t, err, distance.ErrUndefined)
	_, err = res.Radius()
	require.ErrorIs(t, err, distance.ErrUndefined)
	ecc, err := res.Eccentricity(1)
	require.NoError(t, err)
	assert.Zero(t, ecc)
}

// TestAverageDistance_ReachablePairsOnly ignores the unreachable direction.
func TestAverageDistance_ReachablePairsOnly(t *testing.T) {
	g := mustBuild(t, []core.GraphOption{core.WithDirected(true)}, builder.Path(3))
	res, err := distance.AllPairs(ctx, g, distance.Options{})
	require.NoError(t, err)
	avg, err := res.AverageDistance()
	require.NoError(t, err)
	assert.InDelta(t, 4.0/3.0, avg, 1e-12) // 1→2, 2→3, 1→3
	d, err := res.Distance(3, 1)
	require.NoError(t, err)
	assert.True(t, math.IsInf(d, 1))
}

// TestWeightPolicy switches between hop counts, costs and strengths.
func TestWeightPolicy(t *testing.T) {
	g := core.NewGraph()
	a, b, c := g.AddVertex("a"), g.AddVertex("b"), g.AddVertex("c")
	require.NoError(t, g.AddEdge(a, b, 4))
	require.NoError(t, g.AddEdge(b, c, 4))
	require.NoError(t, g.AddEdge(a, c, 1))

	hops, err := distance.SingleSource(ctx, g, a, distance.Options{})
	require.NoError(t, err)
	assert.Equal(t, 1.0, hops.Dist[2])

	cost, err := distance.SingleSource(ctx, g, a, distance.Options{ConsiderWeights: true})
	require.NoError(t, err)
	assert.Equal(t, 1.0, cost.Dist[2])

	strength, err := distance.SingleSource(ctx, g, a, distance.Options{ConsiderWeights: true, InvertWeights: true})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, strength.Dist[2], 1e-12)

	require.NoError(t, g.AddEdge(a, c, 0))
	_, err = distance.AllPairs(ctx, g, distance.Options{ConsiderWeights: true, InvertWeights: true})
	require.ErrorIs(t, err, dijkstra.ErrDegenerateWeight)
	_, err = distance.AllPairs(ctx, g, distance.Options{InvertWeights: true})
	require.NoError(t, err, "inversion is ignored unless weights are considered")
}

// TestSingleSource_DroppedIsolate rejects a source that was dropped.
func TestSingleSource_DroppedIsolate(t *testing.T) {
	g := mustBuild(t, nil, builder.Path(2))
	loner := g.AddVertex("loner")
	_, err := distance.SingleSource(ctx, g, loner, distance.Options{DropIsolates: true})
	require.ErrorIs(t, err, core.ErrInvalidVertex)
	row, err := distance.SingleSource(ctx, g, loner, distance.Options{})
	require.NoError(t, err)
	assert.Equal(t, []int{2}, row.Order)
}

// TestAllPairs_Cancelled stops between rows.
func TestAllPairs_Cancelled(t *testing.T) {
	g := mustBuild(t, nil, builder.Path(4))
	c, cancel := context.WithCancel(ctx)
	cancel()
	_, err := distance.AllPairs(c, g, distance.Options{})
	require.ErrorIs(t, err, context.Canceled)
}

// TestClassAndOptionsStrings keeps the log renderings stable.
func TestClassAndOptionsStrings(t *testing.T) {
	assert.Equal(t, "strongly connected", distance.StronglyConnected.String())
	c, err := distance.ParseClass("Disconnected (isolates)")
	require.NoError(t, err)
	assert.Equal(t, distance.DisconnectedWithIsolates, c)
	_, err = distance.ParseClass("bogus")
	require.Error(t, err)
	assert.True(t, distance.StronglyConnected.IsConnected())
	assert.False(t, distance.WeaklyConnected.IsConnected())
	assert.Equal(t, "weights=on inverted=off isolates=dropped", distance.Options{ConsiderWeights: true, DropIsolates: true}.String())
}

package cohesion_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sna/builder"
	"github.com/katalvlaran/sna/cohesion"
	"github.com/katalvlaran/sna/core"
	"github.com/katalvlaran/sna/distance"
	"github.com/katalvlaran/sna/matrix"
)

var none = distance.Options{}

// graphOf builds a graph with n vertices and the given ties.
func graphOf(t *testing.T, directed bool, n int, ties [][2]int) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(directed))
	for i := 0; i < n; i++ {
		g.AddVertex("")
	}
	for _, e := range ties {
		require.NoError(t, g.AddEdge(e[0], e[1], 1))
	}

	return g
}

// TestDistances summarizes the bridge path.
func TestDistances(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(5))
	require.NoError(t, err)
	sum, err := cohesion.Distances(context.Background(), g, none)
	require.NoError(t, err)
	assert.True(t, sum.Defined)
	assert.Equal(t, 4.0, sum.Diameter)
	assert.Equal(t, 2.0, sum.AverageDistance)
	assert.Equal(t, 2.0, sum.Radius)
	assert.Equal(t, distance.Connected, sum.Connectedness)
	assert.Equal(t, 4.0, sum.Eccentricities[1])
	assert.Equal(t, 2.0, sum.Eccentricities[3])

	// all isolates: nothing to measure, but no failure
	sum, err = cohesion.Distances(context.Background(), graphOf(t, false, 3, nil), none)
	require.NoError(t, err)
	assert.False(t, sum.Defined)
	assert.Equal(t, distance.Disconnected, sum.Connectedness)

	_, err = cohesion.Distances(context.Background(), nil, none)
	require.ErrorIs(t, err, cohesion.ErrNilGraph)
}

// TestClustering_Undirected: triangle 1-2-3 with pendant 4 on 3.
func TestClustering_Undirected(t *testing.T) {
	g := graphOf(t, false, 4, [][2]int{{1, 2}, {2, 3}, {1, 3}, {3, 4}})
	c, err := cohesion.ClusteringCoefficient(g, none)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, true, false}, c.Defined)
	assert.InDelta(t, 1, c.Local[0], 1e-12)
	assert.InDelta(t, 1.0/3.0, c.Local[2], 1e-12)
	assert.InDelta(t, 7.0/9.0, c.Network, 1e-12)

	star, err := builder.BuildGraph(nil, nil, builder.Star(5))
	require.NoError(t, err)
	c, err = cohesion.ClusteringCoefficient(star, none)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, false, false, false}, c.Defined)
	assert.Zero(t, c.Network)
}

// TestClustering_Directed: transitive triple 1→2→3, 1→3.
func TestClustering_Directed(t *testing.T) {
	g := graphOf(t, true, 3, [][2]int{{1, 2}, {2, 3}, {1, 3}})
	c, err := cohesion.ClusteringCoefficient(g, none)
	require.NoError(t, err)
	for _, l := range c.Local {
		assert.InDelta(t, 0.5, l, 1e-12)
	}
	assert.InDelta(t, 0.5, c.Network, 1e-12)
}

// TestCliques: triangles 1-2-3 and 2-3-4 share an edge, 4-5 hangs off.
func TestCliques(t *testing.T) {
	g := graphOf(t, false, 6, [][2]int{{1, 2}, {1, 3}, {2, 3}, {2, 4}, {3, 4}, {4, 5}})
	c, err := cohesion.Cliques(context.Background(), g, none)
	require.NoError(t, err)
	assert.Equal(t, [][]core.VertexID{{1, 2, 3}, {2, 3, 4}, {4, 5}}, c.Cliques)
	assert.Equal(t, map[core.VertexID]int{1: 1, 2: 2, 3: 2, 4: 2, 5: 1}, c.Membership)
	assert.Equal(t, map[int]int{3: 2, 2: 1}, c.BySize)
	co, err := c.CoMembership.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 2.0, co)
	assert.True(t, matrix.IsSymmetric(c.CoMembership, 0))

	k5, err := builder.BuildGraph(nil, nil, builder.Complete(5))
	require.NoError(t, err)
	c, err = cohesion.Cliques(context.Background(), k5, none)
	require.NoError(t, err)
	assert.Equal(t, [][]core.VertexID{{1, 2, 3, 4, 5}}, c.Cliques)
}

// TestCliques_Directed keeps mutual arcs only.
func TestCliques_Directed(t *testing.T) {
	g := graphOf(t, true, 3, [][2]int{{1, 2}, {2, 1}, {2, 3}})
	c, err := cohesion.Cliques(context.Background(), g, none)
	require.NoError(t, err)
	assert.Equal(t, [][]core.VertexID{{1, 2}}, c.Cliques)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = cohesion.Cliques(ctx, g, none)
	require.ErrorIs(t, err, context.Canceled)
}

// TestTriadCensus_Classes pins single-triple classifications.
func TestTriadCensus_Classes(t *testing.T) {
	cases := []struct {
		name     string
		directed bool
		ties     [][2]int
		want     cohesion.Triad
	}{
		{"empty", true, nil, cohesion.T003},
		{"single arc", true, [][2]int{{1, 2}}, cohesion.T012},
		{"mutual", true, [][2]int{{1, 2}, {2, 1}}, cohesion.T102},
		{"out-star", true, [][2]int{{1, 2}, {1, 3}}, cohesion.T021D},
		{"in-star", true, [][2]int{{2, 1}, {3, 1}}, cohesion.T021U},
		{"chain", true, [][2]int{{1, 2}, {2, 3}}, cohesion.T021C},
		{"transitive", true, [][2]int{{1, 2}, {2, 3}, {1, 3}}, cohesion.T030T},
		{"cycle", true, [][2]int{{1, 2}, {2, 3}, {3, 1}}, cohesion.T030C},
		{"complete", true, [][2]int{{1, 2}, {2, 1}, {2, 3}, {3, 2}, {1, 3}, {3, 1}}, cohesion.T300},
		{"undirected path", false, [][2]int{{1, 2}, {2, 3}}, cohesion.T201},
		{"undirected triangle", false, [][2]int{{1, 2}, {2, 3}, {1, 3}}, cohesion.T300},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := cohesion.TriadCensusOf(context.Background(), graphOf(t, tc.directed, 3, tc.ties), none)
			require.NoError(t, err)
			assert.Equal(t, int64(1), c.Count(tc.want), "class %s", tc.want)
			assert.Equal(t, int64(1), c.Total)
		})
	}
}

// TestTriadCensus_SumsToTriples over a 7-vertex digraph.
func TestTriadCensus_SumsToTriples(t *testing.T) {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(true)}, nil, builder.Wheel(7))
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(2, 1, 1))
	c, err := cohesion.TriadCensusOf(context.Background(), g, none)
	require.NoError(t, err)
	var sum int64
	for _, x := range c.Counts {
		sum += x
	}
	assert.Equal(t, int64(35), c.Total)
	assert.Equal(t, c.Total, sum)
}

// TestTriad_Names round-trips MAN labels.
func TestTriad_Names(t *testing.T) {
	for tr := cohesion.T003; tr <= cohesion.T300; tr++ {
		got, err := cohesion.ParseTriad(tr.String())
		require.NoError(t, err)
		assert.Equal(t, tr, got)
	}
	_, err := cohesion.ParseTriad("999")
	require.ErrorIs(t, err, cohesion.ErrUnknownTriad)
}

// TestReciprocity covers trivial, partial and empty cases.
func TestReciprocity(t *testing.T) {
	r, err := cohesion.ReciprocityOf(graphOf(t, false, 3, [][2]int{{1, 2}}), none)
	require.NoError(t, err)
	assert.True(t, r.Trivial)
	assert.Equal(t, 1.0, r.Arc)
	assert.Equal(t, 1.0, r.Dyad)

	r, err = cohesion.ReciprocityOf(graphOf(t, true, 3, [][2]int{{1, 2}, {2, 1}, {2, 3}}), none)
	require.NoError(t, err)
	assert.Equal(t, 3, r.Arcs)
	assert.Equal(t, 2, r.ReciprocatedArcs)
	assert.Equal(t, 2, r.Dyads)
	assert.Equal(t, 1, r.MutualDyads)
	assert.InDelta(t, 2.0/3.0, r.Arc, 1e-12)
	assert.InDelta(t, 0.5, r.Dyad, 1e-12)

	r, err = cohesion.ReciprocityOf(graphOf(t, true, 3, nil), none)
	require.NoError(t, err)
	assert.Zero(t, r.Arc)
	assert.Zero(t, r.Dyad)
}

// TestSymmetric compares the adjacency matrix with its transpose.
func TestSymmetric(t *testing.T) {
	ok, err := cohesion.Symmetric(graphOf(t, false, 3, [][2]int{{1, 2}}), none)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = cohesion.Symmetric(graphOf(t, true, 3, [][2]int{{1, 2}}), none)
	require.NoError(t, err)
	assert.False(t, ok)

	g := graphOf(t, true, 2, [][2]int{{1, 2}})
	require.NoError(t, g.AddEdge(2, 1, 3))
	ok, err = cohesion.Symmetric(g, none)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = cohesion.Symmetric(g, distance.Options{ConsiderWeights: true})
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestWalkWrappers delegate to the matrix engine.
func TestWalkWrappers(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Complete(3))
	require.NoError(t, err)
	w, err := cohesion.Walks(g, 2, none)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{2, 1, 1}, {1, 2, 1}, {1, 1, 2}}, w.RawRows())
	_, err = cohesion.Walks(g, 0, none)
	require.ErrorIs(t, err, matrix.ErrBadPower)

	tw, err := cohesion.TotalWalks(context.Background(), g, none)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{2, 2, 2}, {2, 2, 2}, {2, 2, 2}}, tw.RawRows())

	dg := graphOf(t, true, 3, [][2]int{{1, 2}, {2, 3}})
	r, err := cohesion.Reachability(context.Background(), dg, none)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 1, 1}, {0, 1, 1}, {0, 0, 1}}, r.RawRows())
}

// TestLineConnectivity counts tie-disjoint paths.
func TestLineConnectivity(t *testing.T) {
	wheel, err := builder.BuildGraph(nil, nil, builder.Wheel(5))
	require.NoError(t, err)
	c, err := cohesion.LineConnectivity(context.Background(), wheel, distance.Options{})
	require.NoError(t, err)
	// rim vertices have degree 3, so every pair is 3-connected
	assert.Equal(t, 3.0, c.Graph)
	assert.Len(t, c.Weakest, 10)
	v, err := c.Pairwise.At(0, 4)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)
	v, err = c.Pairwise.At(2, 2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)

	// a directed path 1→2→3 only connects forward
	dg := core.NewGraph(core.WithDirected(true))
	for i := 0; i < 3; i++ {
		dg.AddVertex("")
	}
	require.NoError(t, dg.AddEdge(1, 2, 4))
	require.NoError(t, dg.AddEdge(2, 3, 2))
	c, err = cohesion.LineConnectivity(context.Background(), dg, distance.Options{ConsiderWeights: true})
	require.NoError(t, err)
	assert.Equal(t, 0.0, c.Graph)
	v, err = c.Pairwise.At(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
	assert.Equal(t, [2]core.VertexID{2, 1}, c.Weakest[0])
}

// TestBackbone keeps the strongest spanning ties per component.
func TestBackbone(t *testing.T) {
	// triangle 1-2 (5), 2-3 (1), 1-3 (3) plus an isolate 4
	g := graphOf(t, false, 4, nil)
	require.NoError(t, g.AddEdge(1, 2, 5))
	require.NoError(t, g.AddEdge(2, 3, 1))
	require.NoError(t, g.AddEdge(1, 3, 3))

	b, err := cohesion.BackboneOf(g, distance.Options{ConsiderWeights: true})
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: 1, To: 2, Weight: 5}, {From: 1, To: 3, Weight: 3}}, b.Ties)
	assert.Equal(t, 8.0, b.Total)
	assert.Equal(t, 2, b.Components)

	b, err = cohesion.BackboneOf(g, distance.Options{DropIsolates: true})
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: 1, To: 2, Weight: 1}, {From: 1, To: 3, Weight: 1}}, b.Ties)
	assert.Equal(t, 1, b.Components)

	// arcs read as edges; the mutual pair keeps its larger value
	dg := graphOf(t, true, 3, nil)
	require.NoError(t, dg.AddEdge(1, 2, 2))
	require.NoError(t, dg.AddEdge(2, 1, 7))
	require.NoError(t, dg.AddEdge(3, 2, 1))
	b, err = cohesion.BackboneOf(dg, distance.Options{ConsiderWeights: true})
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: 1, To: 2, Weight: 7}, {From: 2, To: 3, Weight: 1}}, b.Ties)
}

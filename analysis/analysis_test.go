package analysis_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/sna/analysis"
	"github.com/katalvlaran/sna/builder"
	"github.com/katalvlaran/sna/centrality"
	"github.com/katalvlaran/sna/core"
	"github.com/katalvlaran/sna/distance"
	"github.com/katalvlaran/sna/equivalence"
	"github.com/katalvlaran/sna/matrix"
	"github.com/katalvlaran/sna/snapshot"
)

var ctx = context.Background()

func mustBuild(t *testing.T, gopts []core.GraphOption, c builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(gopts, nil, c)
	require.NoError(t, err)

	return g
}

func recorded(t *testing.T, g *core.Graph, opts ...analysis.Option) (*analysis.Session, *tracetest.SpanRecorder) {
	t.Helper()
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	return analysis.NewSession(g, append(opts, analysis.WithTracerProvider(tp))...), rec
}

// TestProminence_Betweenness checks a facade call end to end, span included.
func TestProminence_Betweenness(t *testing.T) {
	s, rec := recorded(t, mustBuild(t, nil, builder.Path(5)))

	set, err := s.Prominence(ctx, analysis.Config{}, centrality.BetweennessCentrality)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 3, 4, 3, 0}, set.Raw)

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "analysis.Prominence.BC", spans[0].Name())
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
	assert.NotEmpty(t, s.ID())
}

// TestDistanceMemo shares one result across calls until the graph changes.
func TestDistanceMemo(t *testing.T) {
	g := mustBuild(t, nil, builder.Cycle(5))
	s, rec := recorded(t, g)
	cfg := analysis.Config{}

	first, err := s.Distances(ctx, cfg)
	require.NoError(t, err)
	_, err = s.Prominence(ctx, cfg, centrality.ClosenessCentrality)
	require.NoError(t, err)
	second, err := s.Distances(ctx, cfg)
	require.NoError(t, err)
	assert.Same(t, first, second)

	spans := rec.Ended()
	require.Len(t, spans, 3)
	require.NotEmpty(t, spans[1].Events())
	assert.Equal(t, "distance memo hit", spans[1].Events()[0].Name)

	// another policy is a separate entry
	dropped, err := s.Distances(ctx, analysis.Config{DropIsolates: true})
	require.NoError(t, err)
	assert.NotSame(t, first, dropped)

	// a mutation invalidates
	g.AddVertex("late")
	third, err := s.Distances(ctx, cfg)
	require.NoError(t, err)
	assert.NotSame(t, first, third)
	assert.Equal(t, 6, third.N())

	s.Forget()
	fourth, err := s.Distances(ctx, cfg)
	require.NoError(t, err)
	assert.NotSame(t, third, fourth)
}

// TestFailureKinds maps engine errors onto the closed taxonomy.
func TestFailureKinds(t *testing.T) {
	disconnected := core.NewGraph()
	a, b := disconnected.AddVertex("a"), disconnected.AddVertex("b")
	disconnected.AddVertex("c")
	require.NoError(t, disconnected.AddEdge(a, b, 1))

	zero := core.NewGraph()
	u, v := zero.AddVertex("u"), zero.AddVertex("v")
	require.NoError(t, zero.AddEdge(u, v, 0))

	cancelled, cancel := context.WithCancel(ctx)
	cancel()

	cases := []struct {
		name string
		call func() error
		kind analysis.Kind
		is   error
	}{
		{"closeness on disconnected graph", func() error {
			_, err := analysis.NewSession(disconnected).Prominence(ctx, analysis.Config{}, centrality.ClosenessCentrality)
			return err
		}, analysis.RequiresConnectedGraph, centrality.ErrRequiresConnectedGraph},
		{"zero weight inverted", func() error {
			_, err := analysis.NewSession(zero).Distances(ctx, analysis.Config{ConsiderWeights: true, InvertWeights: true})
			return err
		}, analysis.DegenerateWeight, nil},
		{"singular adjacency", func() error {
			_, err := analysis.NewSession(mustBuild(t, nil, builder.Path(3))).Matrix(ctx, analysis.Config{}, analysis.InverseAdjacencyMatrix)
			return err
		}, analysis.SingularMatrix, nil},
		{"total walks on large graph", func() error {
			_, err := analysis.NewSession(mustBuild(t, nil, builder.Path(51))).TotalWalks(ctx, analysis.Config{})
			return err
		}, analysis.ConfirmationRequired, nil},
		{"cancelled", func() error {
			_, err := analysis.NewSession(mustBuild(t, nil, builder.Path(4))).Distances(cancelled, analysis.Config{})
			return err
		}, analysis.Cancelled, context.Canceled},
		{"nil graph", func() error {
			_, err := analysis.NewSession(nil).Clustering(ctx, analysis.Config{})
			return err
		}, analysis.InvalidArgument, analysis.ErrNilGraph},
		{"unknown matrix", func() error {
			_, err := analysis.NewSession(core.NewGraph()).Matrix(ctx, analysis.Config{}, analysis.MatrixKind(99))
			return err
		}, analysis.InvalidArgument, analysis.ErrUnknownMatrix},
		{"bad walk length", func() error {
			_, err := analysis.NewSession(mustBuild(t, nil, builder.Path(3))).Walks(ctx, analysis.Config{}, 0)
			return err
		}, analysis.InvalidArgument, matrix.ErrBadPower},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.call()
			require.Error(t, err)
			var f *analysis.Failure
			require.True(t, errors.As(err, &f))
			assert.Equal(t, tc.kind, f.Kind, err.Error())
			assert.Equal(t, tc.kind, analysis.KindOf(err))
			if tc.is != nil {
				assert.ErrorIs(t, err, tc.is)
			}
		})
	}
}

// TestFailureSpan marks failed calls on the span.
func TestFailureSpan(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex("a")
	g.AddVertex("b")
	s, rec := recorded(t, g)

	_, err := s.Prominence(ctx, analysis.Config{}, centrality.ClosenessCentrality)
	require.Error(t, err)

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	found := false
	for _, kv := range spans[0].Attributes() {
		if kv.Key == "failure.kind" {
			found = true
			assert.Equal(t, "requires connected graph", kv.Value.AsString())
		}
	}
	assert.True(t, found)
}

// TestKindOf_Unmatched falls back to Internal.
func TestKindOf_Unmatched(t *testing.T) {
	assert.Equal(t, analysis.Internal, analysis.KindOf(errors.New("boom")))
	assert.Equal(t, "Kind(42)", analysis.Kind(42).String())
	f := &analysis.Failure{Kind: analysis.UndefinedResult, Op: "Op", Err: distance.ErrUndefined}
	assert.Equal(t, "Op: undefined result: distance: undefined", f.Error())
	assert.Equal(t, analysis.UndefinedResult, analysis.KindOf(fmt.Errorf("wrap: %w", distance.ErrUndefined)))
}

// TestCohesionCalls runs the cohesion surface on Wheel(6).
func TestCohesionCalls(t *testing.T) {
	s := analysis.NewSession(mustBuild(t, nil, builder.Wheel(6)))
	cfg := analysis.Config{}

	sum, err := s.DistanceSummary(ctx, cfg)
	require.NoError(t, err)
	assert.True(t, sum.Defined)
	assert.Equal(t, 2.0, sum.Diameter)

	class, err := s.Connectedness(ctx, cfg)
	require.NoError(t, err)
	assert.Equal(t, distance.Connected, class)

	sym, err := s.Symmetric(ctx, cfg)
	require.NoError(t, err)
	assert.True(t, sym)

	cl, err := s.Cliques(ctx, cfg)
	require.NoError(t, err)
	assert.Len(t, cl.Cliques, 5) // hub with each rim edge

	tr, err := s.Triads(ctx, cfg)
	require.NoError(t, err)
	assert.Equal(t, int64(20), tr.Total)

	rc, err := s.Reciprocity(ctx, cfg)
	require.NoError(t, err)
	assert.Equal(t, 1.0, rc.Arc)

	lc, err := s.LineConnectivity(ctx, cfg)
	require.NoError(t, err)
	assert.Equal(t, 3.0, lc.Graph)

	bb, err := s.Backbone(ctx, cfg)
	require.NoError(t, err)
	assert.Len(t, bb.Ties, 5)
	assert.Equal(t, 1, bb.Components)

	reach, err := s.Reachability(ctx, cfg)
	require.NoError(t, err)
	assert.Equal(t, 6, reach.Rows())

	for _, kind := range []analysis.MatrixKind{analysis.AdjacencyMatrix, analysis.DegreeMatrix, analysis.LaplacianMatrix, analysis.CocitationMatrix, analysis.ReachabilityMatrix} {
		m, err := s.Matrix(ctx, cfg, kind)
		require.NoError(t, err, kind.String())
		assert.Equal(t, 6, m.Rows())
	}
}

// TestEquivalenceCalls clusters a star by Pearson correlation.
func TestEquivalenceCalls(t *testing.T) {
	s := analysis.NewSession(mustBuild(t, nil, builder.Star(4)))
	cfg := analysis.Config{}

	tab, err := s.Pearson(ctx, cfg, analysis.Profile{Location: equivalence.Rows})
	require.NoError(t, err)
	r, err := tab.At(2, 3)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, r, 1e-9)

	dg, err := s.Cluster(ctx, tab, equivalence.Average, true)
	require.NoError(t, err)
	assert.Len(t, dg.Merges, 3)

	_, err = s.Similarity(ctx, cfg, equivalence.MatchExact, analysis.Profile{Location: equivalence.Both})
	require.NoError(t, err)
	_, err = s.Dissimilarity(ctx, cfg, equivalence.DistEuclidean, analysis.Profile{})
	require.NoError(t, err)
}

// TestParseMatrixKind covers the CLI spelling.
func TestParseMatrixKind(t *testing.T) {
	k, err := analysis.ParseMatrixKind(" Laplacian ")
	require.NoError(t, err)
	assert.Equal(t, analysis.LaplacianMatrix, k)
	_, err = analysis.ParseMatrixKind("hessian")
	require.ErrorIs(t, err, analysis.ErrUnknownMatrix)
}

// TestOptionGuards panics on nonsense options.
func TestOptionGuards(t *testing.T) {
	assert.Panics(t, func() { analysis.WithLogger(nil) })
	assert.Panics(t, func() { analysis.WithProgress(nil) })
	assert.Panics(t, func() { analysis.WithDamping(1) })
	assert.Panics(t, func() { analysis.WithIteration(0, 10) })
	assert.Panics(t, func() { analysis.WithTracerProvider(nil) })
}

// TestKite reproduces the textbook reading of Krackhardt's kite.
func TestKite(t *testing.T) {
	g, err := snapshot.Load("../examples/kite.yaml")
	require.NoError(t, err)
	s := analysis.NewSession(g)
	cfg := analysis.Config{}

	cases := []struct {
		idx  centrality.Index
		tops []core.VertexID
	}{
		{centrality.DegreeCentrality, []core.VertexID{4}},       // Diane
		{centrality.ClosenessCentrality, []core.VertexID{6, 7}}, // Fernando, Garth
		{centrality.BetweennessCentrality, []core.VertexID{8}},  // Heather
	}
	for _, tc := range cases {
		set, err := s.Prominence(ctx, cfg, tc.idx)
		require.NoError(t, err, tc.idx.Title())
		assert.Equal(t, tc.tops, set.MaxVertices, tc.idx.Title())
	}

	bc, err := s.Prominence(ctx, cfg, centrality.BetweennessCentrality)
	require.NoError(t, err)
	raw, _, err := bc.Score(8)
	require.NoError(t, err)
	assert.InDelta(t, 14.0, raw, 1e-9)
}

// TestAdvice reads the directed sample and its second relation.
func TestAdvice(t *testing.T) {
	g, err := snapshot.Load("../examples/advice.toml")
	require.NoError(t, err)
	s := analysis.NewSession(g)

	dp, err := s.Prominence(ctx, analysis.Config{}, centrality.DegreePrestige)
	require.NoError(t, err)
	assert.Equal(t, []core.VertexID{1}, dp.MaxVertices) // Ana is asked by three

	require.NoError(t, g.SetActiveRelation(1))
	rc, err := s.Reciprocity(ctx, analysis.Config{})
	require.NoError(t, err)
	assert.Equal(t, 2, rc.ReciprocatedArcs)
	assert.Equal(t, 3, rc.Arcs)
}

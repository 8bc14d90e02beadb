// SPDX-License-Identifier: MIT
// File: compute.go
// Role: Compute entry point, ScoreSet statistics and centralization.

package centrality

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/sna/core"
	"github.com/katalvlaran/sna/distance"
)

// tieTol decides which vertices share the extreme score.
const tieTol = 1e-12

// runner carries the resolved inputs of one Compute call.
type runner struct {
	ctx  context.Context
	g    *core.Graph
	opts Options
	dist *distance.Result
}

// Compute evaluates index over g's active relation.
//
// Implementation:
//   - Stage 1: Resolve options; reject unknown indices.
//   - Stage 2: Switch once on index; distance-based indices share one
//     distance.Result (Options.Distances or a fresh AllPairs).
//   - Stage 3: Standardize, summarize and compute centralization.
//
// Errors: see package documentation.
func Compute(ctx context.Context, g *core.Graph, index Index, opts Options) (*ScoreSet, error) {
	// 1) Validate inputs
	if g == nil {
		return nil, ErrNilGraph
	}
	if !index.Valid() {
		return nil, fmt.Errorf("Compute: %w", ErrUnknownIndex)
	}
	resolved, err := opts.resolve()
	if err != nil {
		return nil, fmt.Errorf("Compute(%s): %w", index, err)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	r := &runner{ctx: ctx, g: g, opts: resolved, dist: resolved.Distances}

	// 2) Dispatch
	var set *ScoreSet
	switch index {
	case DegreeCentrality:
		set, err = r.degree(false)
	case DegreePrestige:
		set, err = r.degree(true)
	case ClosenessCentrality:
		set, err = r.closeness()
	case InfluenceRangeCloseness:
		set, err = r.influenceRange()
	case BetweennessCentrality:
		set, err = r.betweenness()
	case StressCentrality:
		set, err = r.stress()
	case EccentricityCentrality:
		set, err = r.eccentricity()
	case PowerCentrality:
		set, err = r.power()
	case InformationCentrality:
		set, err = r.information()
	case EigenvectorCentrality:
		set, err = r.eigenvector()
	case PageRankPrestige:
		set, err = r.pageRank()
	case ProximityPrestige:
		set, err = r.proximity()
	}
	if err != nil {
		return nil, fmt.Errorf("Compute(%s): %w", index, err)
	}

	// 3) Summaries
	set.Index = index
	set.summarize()

	return set, nil
}

// distances returns the shared distance result, computing it on first use.
func (r *runner) distances() (*distance.Result, error) {
	if r.dist != nil {
		return r.dist, nil
	}
	res, err := distance.AllPairs(r.ctx, r.g, r.opts.Options)
	if err != nil {
		return nil, err
	}
	r.dist = res

	return res, nil
}

// view is the active vertex set for indices that skip the distance engine.
func (r *runner) view() *core.View {
	if r.dist != nil {
		return r.dist.View
	}

	return r.g.View(r.opts.DropIsolates)
}

// weighted reports whether tie values feed the computation.
func (r *runner) weighted(v *core.View) bool {
	return r.opts.ConsiderWeights && v.Weighted()
}

// tieValue is the value a tie contributes under the weight policy.
func (r *runner) tieValue(v *core.View, w float64) float64 {
	if !r.weighted(v) {
		return 1
	}
	if r.opts.InvertWeights {
		return 1 / w
	}

	return w
}

// newSet allocates a ScoreSet over v's vertices.
func newSet(v *core.View) *ScoreSet {
	n := v.N()
	ids := make([]core.VertexID, n)
	copy(ids, v.IDs())

	return &ScoreSet{
		Vertices:     ids,
		Directed:     v.Directed(),
		Raw:          make([]float64, n),
		Standardized: make([]float64, n),
	}
}

// standardizeByMax divides every raw score by the largest one.
func (s *ScoreSet) standardizeByMax() {
	if len(s.Raw) == 0 {
		return
	}
	top := floats.Max(s.Raw)
	for i, x := range s.Raw {
		if top > 0 {
			s.Standardized[i] = x / top
		} else {
			s.Standardized[i] = 0
		}
	}
}

// standardizeBy divides every raw score by d (0 scores when d ≤ 0).
func (s *ScoreSet) standardizeBy(d float64) {
	for i, x := range s.Raw {
		if d > 0 {
			s.Standardized[i] = x / d
		} else {
			s.Standardized[i] = 0
		}
	}
}

// summarize fills the statistics and centralization from Standardized.
func (s *ScoreSet) summarize() {
	n := len(s.Standardized)
	s.MaxVertices, s.MinVertices = nil, nil
	if n == 0 {
		s.Max, s.Min, s.Sum, s.Mean, s.Variance, s.Centralization = 0, 0, 0, 0, 0, 0
		return
	}
	s.Max = floats.Max(s.Standardized)
	s.Min = floats.Min(s.Standardized)
	s.Sum = floats.Sum(s.Standardized)
	s.Mean = stat.Mean(s.Standardized, nil)
	s.Variance = stat.PopVariance(s.Standardized, nil)
	for i, x := range s.Standardized {
		if math.Abs(x-s.Max) <= tieTol {
			s.MaxVertices = append(s.MaxVertices, s.Vertices[i])
		}
		if math.Abs(x-s.Min) <= tieTol {
			s.MinVertices = append(s.MinVertices, s.Vertices[i])
		}
	}
	s.Centralization = s.centralization()
}

// centralization returns Σ(max−sᵢ) divided by its theoretical maximum.
func (s *ScoreSet) centralization() float64 {
	n := float64(len(s.Standardized))
	if n < 3 {
		return 0
	}
	var spread float64
	for _, x := range s.Standardized {
		spread += s.Max - x
	}
	if d := centralizationBound(s.Index, n, s.Directed); d > 0 {
		return spread / d
	}

	return 0
}

// centralizationBound is the largest possible spread of index over n vertices.
func centralizationBound(index Index, n float64, directed bool) float64 {
	switch index {
	case DegreeCentrality, DegreePrestige:
		if directed {
			return n - 1
		}
		return n - 2
	case ClosenessCentrality:
		return (n - 1) * (n - 2) / (2*n - 3)
	default:
		return n - 1
	}
}

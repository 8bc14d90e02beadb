// SPDX-License-Identifier: MIT
// File: profiles.go
// Role: tie profiles and the pairwise comparison tables built on them.

package equivalence

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/sna/core"
	"github.com/katalvlaran/sna/matrix"
)

// Profiles extracts one tie vector per vertex of the active relation.
// Binary (1 per tie) unless weighted is set.
func Profiles(g *core.Graph, loc Location, weighted bool, dropIsolates bool) (*ProfileSet, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if loc < Rows || loc > Both {
		return nil, fmt.Errorf("Profiles: %w: location %d", ErrUnknownChoice, int(loc))
	}
	v := g.View(dropIsolates)
	a, err := matrix.Adjacency(v, weighted)
	if err != nil {
		return nil, fmt.Errorf("Profiles: %w", err)
	}
	rows := a.RawRows()
	n := len(rows)
	out := &ProfileSet{
		Vertices: append([]core.VertexID(nil), v.IDs()...),
		Location: loc,
		Profiles: make([][]float64, n),
	}
	for i := 0; i < n; i++ {
		var p []float64
		if loc == Rows || loc == Both {
			p = append(p, rows[i]...)
		}
		if loc == Columns || loc == Both {
			for k := 0; k < n; k++ {
				p = append(p, rows[k][i])
			}
		}
		out.Profiles[i] = p
	}

	return out, nil
}

// pair returns the profiles of i and j with positions i and j of every
// n-block removed unless the diagonal is included.
func (ps *ProfileSet) pair(i, j int, diagonal bool) (x, y []float64) {
	if diagonal {
		return ps.Profiles[i], ps.Profiles[j]
	}
	n := len(ps.Vertices)
	for k := range ps.Profiles[i] {
		if pos := k % n; pos == i || pos == j {
			continue
		}
		x = append(x, ps.Profiles[i][k])
		y = append(y, ps.Profiles[j][k])
	}

	return x, y
}

// table fills an n×n PairTable with fn over every pair, mirrored. The
// diagonal holds each profile compared with itself.
func (ps *ProfileSet) table(diagonal bool, fn func(x, y []float64) float64) (*PairTable, error) {
	n := len(ps.Vertices)
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		self, _ := ps.pair(i, i, diagonal)
		if err = m.Set(i, i, fn(self, self)); err != nil {
			return nil, err
		}
		for j := i + 1; j < n; j++ {
			x, y := ps.pair(i, j, diagonal)
			v := fn(x, y)
			if err = m.Set(i, j, v); err != nil {
				return nil, err
			}
			if err = m.Set(j, i, v); err != nil {
				return nil, err
			}
		}
	}

	return NewPairTable(ps.Vertices, m)
}

func (o Options) profiles(g *core.Graph) (*ProfileSet, error) {
	return Profiles(g, o.Location, o.ConsiderWeights, o.DropIsolates)
}

// Pearson correlates every pair of profiles. A constant profile has no
// variance, so its correlations (itself included) are reported as 0.
func Pearson(g *core.Graph, opts Options) (*PairTable, error) {
	ps, err := opts.profiles(g)
	if err != nil {
		return nil, fmt.Errorf("Pearson: %w", err)
	}
	t, err := ps.table(opts.IncludeDiagonal, pearson)
	if err != nil {
		return nil, fmt.Errorf("Pearson: %w", err)
	}

	return t, nil
}

func pearson(x, y []float64) float64 {
	if len(x) < 2 {
		return 0
	}
	r := stat.Correlation(x, y, nil)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}

	return r
}

// Similarity compares every pair of profiles with measure.
func Similarity(g *core.Graph, measure Measure, opts Options) (*PairTable, error) {
	fn, err := similarityFn(measure)
	if err != nil {
		return nil, fmt.Errorf("Similarity: %w", err)
	}
	ps, err := opts.profiles(g)
	if err != nil {
		return nil, fmt.Errorf("Similarity: %w", err)
	}
	t, err := ps.table(opts.IncludeDiagonal, fn)
	if err != nil {
		return nil, fmt.Errorf("Similarity(%s): %w", measure, err)
	}

	return t, nil
}

func similarityFn(m Measure) (func(x, y []float64) float64, error) {
	switch m {
	case MatchExact:
		return func(x, y []float64) float64 {
			if len(x) == 0 {
				return 0
			}
			return float64(agreements(x, y)) / float64(len(x))
		}, nil
	case MatchJaccard:
		return jaccard, nil
	case MatchHamming:
		return func(x, y []float64) float64 { return float64(agreements(x, y)) }, nil
	case MatchCosine:
		return cosine, nil
	case MatchEuclidean:
		return func(x, y []float64) float64 { return 1 / (1 + floats.Distance(x, y, 2)) }, nil
	}

	return nil, fmt.Errorf("%w: measure %d", ErrUnknownChoice, int(m))
}

// Dissimilarity measures the distance between every pair of profiles.
func Dissimilarity(g *core.Graph, metric Metric, opts Options) (*PairTable, error) {
	var fn func(x, y []float64) float64
	switch metric {
	case DistEuclidean:
		fn = func(x, y []float64) float64 { return floats.Distance(x, y, 2) }
	case DistManhattan:
		fn = func(x, y []float64) float64 { return floats.Distance(x, y, 1) }
	case DistJaccard:
		fn = func(x, y []float64) float64 { return 1 - jaccard(x, y) }
	case DistHamming:
		fn = func(x, y []float64) float64 { return float64(len(x) - agreements(x, y)) }
	default:
		return nil, fmt.Errorf("Dissimilarity: %w: metric %d", ErrUnknownChoice, int(metric))
	}
	ps, err := opts.profiles(g)
	if err != nil {
		return nil, fmt.Errorf("Dissimilarity: %w", err)
	}
	t, err := ps.table(opts.IncludeDiagonal, fn)
	if err != nil {
		return nil, fmt.Errorf("Dissimilarity(%s): %w", metric, err)
	}

	return t, nil
}

// agreements counts positions where x and y hold the same value.
func agreements(x, y []float64) int {
	n := 0
	for k := range x {
		if x[k] == y[k] {
			n++
		}
	}

	return n
}

// jaccard is Σmin/Σmax over positions where either is non-zero; on binary
// profiles that is |x∧y|/|x∨y|. Two empty profiles score 0.
func jaccard(x, y []float64) float64 {
	var lo, hi float64
	for k := range x {
		a, b := math.Abs(x[k]), math.Abs(y[k])
		lo += math.Min(a, b)
		hi += math.Max(a, b)
	}
	if hi == 0 {
		return 0
	}

	return lo / hi
}

// cosine is x·y/(‖x‖‖y‖), 0 when either profile is all zeros.
func cosine(x, y []float64) float64 {
	nx, ny := floats.Norm(x, 2), floats.Norm(y, 2)
	if nx == 0 || ny == 0 {
		return 0
	}

	return floats.Dot(x, y) / (nx * ny)
}

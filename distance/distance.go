// SPDX-License-Identifier: MIT

package distance

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/sna/bfs"
	"github.com/katalvlaran/sna/core"
	"github.com/katalvlaran/sna/dfs"
	"github.com/katalvlaran/sna/dijkstra"
)

// Row is one single-source search result over the dense index space of View.
type Row struct {
	*bfs.Result
	View *core.View
}

// Result holds every single-source row of one all-pairs computation.
type Result struct {
	View *core.View
	Rows []*bfs.Result

	// Weighted reports whether Dijkstra (rather than BFS) produced the rows.
	Weighted bool
	Options  Options
}

// SingleSource computes one distance row from id.
//
// Errors: core.ErrInvalidVertex if id is unknown or was dropped as an isolate,
// dijkstra.ErrDegenerateWeight / dijkstra.ErrNegativeWeight from validation,
// ctx.Err() wrapped on cancellation.
func SingleSource(ctx context.Context, g *core.Graph, id core.VertexID, opts Options) (*Row, error) {
	v := g.View(opts.DropIsolates)
	src, ok := v.Index(id)
	if !ok {
		return nil, fmt.Errorf("SingleSource(%d): %w", id, core.ErrInvalidVertex)
	}
	weighted, err := prepare(v, opts)
	if err != nil {
		return nil, fmt.Errorf("SingleSource: %w", err)
	}
	res, err := search(ctx, v, src, weighted, opts)
	if err != nil {
		return nil, fmt.Errorf("SingleSource(%d): %w", id, err)
	}

	return &Row{Result: res, View: v}, nil
}

// AllPairs computes a row for every vertex of g's active relation.
func AllPairs(ctx context.Context, g *core.Graph, opts Options) (*Result, error) {
	return FromView(ctx, g.View(opts.DropIsolates), opts)
}

// FromView computes a row for every index of an existing view. The view's
// isolate policy wins over opts.DropIsolates.
//
// Cancellation is checked between rows and inside each search.
func FromView(ctx context.Context, v *core.View, opts Options) (*Result, error) {
	weighted, err := prepare(v, opts)
	if err != nil {
		return nil, fmt.Errorf("AllPairs: %w", err)
	}
	out := &Result{View: v, Rows: make([]*bfs.Result, v.N()), Weighted: weighted, Options: opts}
	for i := 0; i < v.N(); i++ {
		if err = ctx.Err(); err != nil {
			return nil, fmt.Errorf("AllPairs: %w", err)
		}
		if out.Rows[i], err = search(ctx, v, i, weighted, opts); err != nil {
			return nil, fmt.Errorf("AllPairs(row %d): %w", v.ID(i), err)
		}
	}

	return out, nil
}

// prepare decides between BFS and Dijkstra and validates tie values once.
func prepare(v *core.View, opts Options) (bool, error) {
	if !opts.ConsiderWeights {
		return false, nil
	}
	if err := dijkstra.Validate(v, opts.InvertWeights); err != nil {
		return false, err
	}

	return v.Weighted(), nil
}

func search(ctx context.Context, v *core.View, src int, weighted bool, opts Options) (*bfs.Result, error) {
	if !weighted {
		return bfs.Search(v, src, bfs.WithContext(ctx))
	}
	dopts := []dijkstra.Option{dijkstra.WithContext(ctx)}
	if opts.InvertWeights {
		dopts = append(dopts, dijkstra.WithInvertWeights())
	}

	return dijkstra.Search(v, src, dopts...)
}

// index resolves id into the result's index space.
func (r *Result) index(id core.VertexID) (int, error) {
	i, ok := r.View.Index(id)
	if !ok {
		return 0, fmt.Errorf("vertex %d: %w", id, core.ErrInvalidVertex)
	}

	return i, nil
}

// Distance returns d(u,v), math.Inf(1) when v is unreachable from u.
func (r *Result) Distance(u, v core.VertexID) (float64, error) {
	i, err := r.index(u)
	if err != nil {
		return 0, fmt.Errorf("Distance: %w", err)
	}
	j, err := r.index(v)
	if err != nil {
		return 0, fmt.Errorf("Distance: %w", err)
	}

	return r.Rows[i].Dist[j], nil
}

// Geodesics returns the number of shortest u→v paths (0 when unreachable, 1 when u == v).
func (r *Result) Geodesics(u, v core.VertexID) (float64, error) {
	i, err := r.index(u)
	if err != nil {
		return 0, fmt.Errorf("Geodesics: %w", err)
	}
	j, err := r.index(v)
	if err != nil {
		return 0, fmt.Errorf("Geodesics: %w", err)
	}

	return r.Rows[i].Sigma[j], nil
}

// Reachable reports whether a finite path u→v exists.
func (r *Result) Reachable(u, v core.VertexID) (bool, error) {
	d, err := r.Distance(u, v)
	if err != nil {
		return false, err
	}

	return !math.IsInf(d, 1), nil
}

// At returns the distance between dense indices i and j.
func (r *Result) At(i, j int) float64 { return r.Rows[i].Dist[j] }

// N is the number of vertices covered by the result.
func (r *Result) N() int { return len(r.Rows) }

// pairs calls fn for every pair to be summarized: i<j on undirected views,
// every ordered i≠j on directed ones.
func (r *Result) pairs(fn func(i, j int, d float64)) {
	n := r.N()
	for i := 0; i < n; i++ {
		start := 0
		if !r.View.Directed() {
			start = i + 1
		}
		for j := start; j < n; j++ {
			if i != j {
				fn(i, j, r.Rows[i].Dist[j])
			}
		}
	}
}

// Diameter is the maximum finite distance over all pairs.
// Fails with ErrUndefined when no pair is connected.
func (r *Result) Diameter() (float64, error) {
	best, found := 0.0, false
	r.pairs(func(_, _ int, d float64) {
		if !math.IsInf(d, 1) {
			found = true
			if d > best {
				best = d
			}
		}
	})
	if !found {
		return 0, fmt.Errorf("Diameter: %w", ErrUndefined)
	}

	return best, nil
}

// AverageDistance is the mean over reachable pairs only.
// Fails with ErrUndefined when no pair is connected.
func (r *Result) AverageDistance() (float64, error) {
	var sum float64
	var count int
	r.pairs(func(_, _ int, d float64) {
		if !math.IsInf(d, 1) {
			sum += d
			count++
		}
	})
	if count == 0 {
		return 0, fmt.Errorf("AverageDistance: %w", ErrUndefined)
	}

	return sum / float64(count), nil
}

// eccentricity is the max finite distance from index i, and whether i reaches anyone.
func (r *Result) eccentricity(i int) (float64, bool) {
	ecc, reached := 0.0, false
	for j, d := range r.Rows[i].Dist {
		if j == i || math.IsInf(d, 1) {
			continue
		}
		reached = true
		if d > ecc {
			ecc = d
		}
	}

	return ecc, reached
}

// Eccentricity returns the largest finite distance from id (0 if id reaches nobody).
func (r *Result) Eccentricity(id core.VertexID) (float64, error) {
	i, err := r.index(id)
	if err != nil {
		return 0, fmt.Errorf("Eccentricity: %w", err)
	}
	ecc, _ := r.eccentricity(i)

	return ecc, nil
}

// Eccentricities returns the eccentricity of every covered vertex.
func (r *Result) Eccentricities() map[core.VertexID]float64 {
	out := make(map[core.VertexID]float64, r.N())
	for i := 0; i < r.N(); i++ {
		out[r.View.ID(i)], _ = r.eccentricity(i)
	}

	return out
}

// Radius is the minimum eccentricity over vertices that reach at least one other.
// Fails with ErrUndefined when no vertex reaches anyone.
func (r *Result) Radius() (float64, error) {
	best, found := math.Inf(1), false
	for i := 0; i < r.N(); i++ {
		if ecc, ok := r.eccentricity(i); ok {
			found = true
			best = math.Min(best, ecc)
		}
	}
	if !found {
		return 0, fmt.Errorf("Radius: %w", ErrUndefined)
	}

	return best, nil
}

// Connectedness classifies the covered vertex set.
//
// Implementation:
//   - Stage 1: n ≤ 1 is Connected.
//   - Stage 2: every ordered pair reachable ⇒ Connected (undirected) or StronglyConnected.
//   - Stage 3: directed only: every pair reachable one way ⇒ UnilaterallyConnected.
//   - Stage 4: non-isolates strongly, unilaterally or weakly connected ⇒ DisconnectedWithIsolates.
//   - Stage 5: directed only: one weak component ⇒ WeaklyConnected.
//   - Otherwise Disconnected.
func (r *Result) Connectedness() Class {
	n := r.N()
	if n <= 1 {
		return Connected
	}
	reach := func(i, j int) bool { return !math.IsInf(r.Rows[i].Dist[j], 1) }

	// 2) full mutual reachability
	if r.allPairs(func(i, j int) bool { return reach(i, j) }, nil) {
		if r.View.Directed() {
			return StronglyConnected
		}
		return Connected
	}

	// 3) one-way reachability
	if r.View.Directed() && r.allPairs(func(i, j int) bool { return reach(i, j) || reach(j, i) }, nil) {
		return UnilaterallyConnected
	}

	// 4) isolates set aside: the remaining vertices pass any connected test
	tied := func(i int) bool { return !r.View.IsIsolate(i) }
	nonIsolates := 0
	for i := 0; i < n; i++ {
		if tied(i) {
			nonIsolates++
		}
	}
	if nonIsolates > 0 && nonIsolates < n {
		if r.allPairs(func(i, j int) bool { return reach(i, j) }, tied) {
			return DisconnectedWithIsolates
		}
		if r.View.Directed() {
			if r.allPairs(func(i, j int) bool { return reach(i, j) || reach(j, i) }, tied) || r.weakComponents(tied) == 1 {
				return DisconnectedWithIsolates
			}
		}
	}

	// 5) weak connectivity
	if r.View.Directed() && r.weakComponents(nil) == 1 {
		return WeaklyConnected
	}

	return Disconnected
}

// weakComponents counts weak components holding at least one vertex that
// passes keep (every component when keep is nil); -1 when the search fails.
func (r *Result) weakComponents(keep func(int) bool) int {
	comps, err := dfs.Components(r.View)
	if err != nil {
		return -1
	}
	count := 0
	for _, comp := range comps {
		for _, i := range comp {
			if keep == nil || keep(i) {
				count++
				break
			}
		}
	}

	return count
}

// allPairs reports whether ok holds for every ordered pair i≠j whose
// endpoints both pass keep (all vertices when keep is nil).
func (r *Result) allPairs(ok func(i, j int) bool, keep func(int) bool) bool {
	n := r.N()
	for i := 0; i < n; i++ {
		if keep != nil && !keep(i) {
			continue
		}
		for j := 0; j < n; j++ {
			if i == j || (keep != nil && !keep(j)) {
				continue
			}
			if !ok(i, j) {
				return false
			}
		}
	}

	return true
}

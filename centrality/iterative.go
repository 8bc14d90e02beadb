// SPDX-License-Identifier: MIT
// File: iterative.go
// Role: power-iteration indices: eigenvector centrality and PageRank prestige.

package centrality

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/sna/core"
	"github.com/katalvlaran/sna/matrix"
)

// shiftedAdjacency returns A + I with A(i,j) = value(i→j); self-loops are ignored.
func (r *runner) shiftedAdjacency(v *core.View) (*matrix.Dense, error) {
	n := v.N()
	b, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for _, a := range v.Out(i) {
			if a.To == i {
				continue
			}
			if err = b.Set(i, a.To, r.tieValue(v, a.Weight)); err != nil {
				return nil, err
			}
		}
	}

	return b, nil
}

// eigenvector finds the principal eigenvector of A by power iteration on
// A + I. The shift keeps the eigenvectors and breaks the ±λ tie of
// bipartite graphs, so iteration converges on them too.
//
// Implementation:
//   - Stage 1: x₀ = 1/√n.
//   - Stage 2: x ← (A+I)x / ‖(A+I)x‖₂ until ‖Δx‖∞ < Epsilon.
//   - Stage 3: Raw = x, Standardized = x/max.
//
// Errors: ErrUndefinedMetric on a digraph whose ties form no cycle (A is
// nilpotent, so λ = 0 and no eigenvector ranks anyone); ErrNoConvergence
// after MaxIterations rounds.
// Complexity: O(k·V²).
func (r *runner) eigenvector() (*ScoreSet, error) {
	v := r.view()
	if err := r.validateTies(v); err != nil {
		return nil, err
	}
	s := newSet(v)
	n := v.N()
	if n == 0 {
		return s, nil
	}
	if v.Directed() && r.acyclicTies(v) {
		return nil, fmt.Errorf("%w: eigenvector centrality on an acyclic digraph (spectral radius 0)", ErrUndefinedMetric)
	}
	b, err := r.shiftedAdjacency(v)
	if err != nil {
		return nil, err
	}

	x := make([]float64, n)
	for i := range x {
		x[i] = 1 / math.Sqrt(float64(n))
	}
	converged := false
	for it := 1; it <= r.opts.MaxIterations && !converged; it++ {
		if err = r.ctx.Err(); err != nil {
			return nil, fmt.Errorf("eigenvector: %w", err)
		}
		y, mvErr := matrix.MatVec(b, x)
		if mvErr != nil {
			return nil, mvErr
		}
		norm := floats.Norm(y, 2)
		if norm == 0 {
			break
		}
		floats.Scale(1/norm, y)
		converged = floats.Distance(y, x, math.Inf(1)) < r.opts.Epsilon
		x = y
		r.opts.Progress(it, r.opts.MaxIterations)
	}
	if !converged {
		return nil, fmt.Errorf("%w: eigenvector after %d iterations", ErrNoConvergence, r.opts.MaxIterations)
	}
	copy(s.Raw, x)
	s.standardizeByMax()

	return s, nil
}

// acyclicTies reports whether the non-loop ties of v, read as arcs, contain
// at least one tie and no directed cycle (Kahn's peeling).
// Complexity: O(V + E).
func (r *runner) acyclicTies(v *core.View) bool {
	n := v.N()
	indeg := make([]int, n)
	ties := 0
	for i := 0; i < n; i++ {
		for _, a := range v.Out(i) {
			if a.To != i && r.tieValue(v, a.Weight) != 0 {
				indeg[a.To]++
				ties++
			}
		}
	}
	if ties == 0 {
		return false
	}
	queue := make([]int, 0, n)
	for i, d := range indeg {
		if d == 0 {
			queue = append(queue, i)
		}
	}
	peeled := 0
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		peeled++
		for _, a := range v.Out(u) {
			if a.To == u || r.tieValue(v, a.Weight) == 0 {
				continue
			}
			if indeg[a.To]--; indeg[a.To] == 0 {
				queue = append(queue, a.To)
			}
		}
	}

	return peeled == n
}

// pageRank iterates PR(i) = (1−d)/n + d·(Σ_{j→i} PR(j)·share(j→i) + dangling/n).
//
// share(j→i) is 1/outdeg(j), or value(j→i)/Σ value(j→·) when weights are
// considered. Vertices without outbound ties spread their mass uniformly.
// Raw scores sum to 1; Standardized = PR/max.
//
// Errors: ErrNoConvergence when ‖Δ‖₁ stays ≥ Epsilon for MaxIterations rounds.
// Complexity: O(k·(V+E)).
func (r *runner) pageRank() (*ScoreSet, error) {
	v := r.view()
	if err := r.validateTies(v); err != nil {
		return nil, err
	}
	s := newSet(v)
	n := v.N()
	if n == 0 {
		return s, nil
	}
	nf := float64(n)
	damp := r.opts.Damping

	outW := make([]float64, n)
	for i := 0; i < n; i++ {
		for _, a := range v.Out(i) {
			if a.To != i {
				outW[i] += r.tieValue(v, a.Weight)
			}
		}
	}

	pr := make([]float64, n)
	next := make([]float64, n)
	for i := range pr {
		pr[i] = 1 / nf
	}
	converged := false
	for it := 1; it <= r.opts.MaxIterations && !converged; it++ {
		if err := r.ctx.Err(); err != nil {
			return nil, fmt.Errorf("pagerank: %w", err)
		}
		dangling := 0.0
		for j := 0; j < n; j++ {
			if outW[j] == 0 {
				dangling += pr[j]
			}
		}
		base := (1-damp)/nf + damp*dangling/nf
		for i := range next {
			next[i] = base
		}
		for j := 0; j < n; j++ {
			if outW[j] == 0 {
				continue
			}
			for _, a := range v.Out(j) {
				if a.To == j {
					continue
				}
				next[a.To] += damp * pr[j] * r.tieValue(v, a.Weight) / outW[j]
			}
		}
		converged = floats.Distance(next, pr, 1) < r.opts.Epsilon
		pr, next = next, pr
		r.opts.Progress(it, r.opts.MaxIterations)
	}
	if !converged {
		return nil, fmt.Errorf("%w: pagerank after %d iterations", ErrNoConvergence, r.opts.MaxIterations)
	}
	copy(s.Raw, pr)
	s.standardizeByMax()

	return s, nil
}

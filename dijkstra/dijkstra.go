// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/sna/core"
)

// Validate scans every arc of v once and fails fast on values Search cannot use:
// ErrNegativeWeight for w < 0, and ErrDegenerateWeight for w == 0 when invert is set.
// Complexity: O(E).
func Validate(v *core.View, invert bool) error {
	if v == nil {
		return ErrViewNil
	}
	for i := 0; i < v.N(); i++ {
		for _, a := range v.Out(i) {
			if a.Weight < 0 {
				return fmt.Errorf("%w: arc %d→%d weight=%g", ErrNegativeWeight, v.ID(i), v.ID(a.To), a.Weight)
			}
			if invert && a.Weight == 0 {
				return fmt.Errorf("%w: arc %d→%d", ErrDegenerateWeight, v.ID(i), v.ID(a.To))
			}
		}
	}

	return nil
}

// Search computes weighted shortest distances from src to every index of v.
//
// Preconditions and validation (in order):
//  1. v must be non-nil (ErrViewNil).
//  2. Options must be valid (ErrOptionViolation).
//  3. src must be in [0, N) (ErrSourceOutOfRange).
//  4. No arc may be negative, nor zero under inversion (Validate).
//
// Returns a Result with Dist (+Inf when unreachable), Sigma, Pred and Order.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Search(v *core.View, src int, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	if v == nil {
		return nil, ErrViewNil
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	n := v.N()
	if src < 0 || src >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, src, n)
	}

	// 2) Pre-scan all arcs. Fail fast.
	if err := Validate(v, cfg.InvertWeights); err != nil {
		return nil, err
	}

	// 3) Prepare data structures and run.
	r := &runner{
		v:       v,
		options: cfg,
		res: &Result{
			Source: src,
			Dist:   make([]float64, n),
			Sigma:  make([]float64, n),
			Pred:   make([][]int, n),
			Order:  make([]int, 0, n),
		},
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init(src)
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	v       *core.View
	options Options
	res     *Result
	visited []bool // finalized flags
	pq      nodePQ
}

// init sets every distance to +Inf and pushes the source at distance 0.
func (r *runner) init(src int) {
	for i := range r.res.Dist {
		r.res.Dist[i] = math.Inf(1)
	}
	r.res.Dist[src] = 0
	r.res.Sigma[src] = 1
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: src, dist: 0})
}

// process repeatedly finalizes the closest unvisited vertex and relaxes its arcs.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item; skip stale entries.
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue
		}
		if err := r.options.Ctx.Err(); err != nil {
			return fmt.Errorf("dijkstra: %w", err)
		}

		// 2) Finalize u.
		r.visited[u] = true
		r.res.Order = append(r.res.Order, u)

		// 3) Relax outgoing arcs.
		r.relax(u)
	}

	return nil
}

// relax examines each arc u→w. A strictly shorter candidate resets σ(w) and
// Pred(w); a candidate equal within epsilon accumulates into them.
// A zero tie value means no tie, as in a valued adjacency matrix.
func (r *runner) relax(u int) {
	du := r.res.Dist[u]
	for _, a := range r.v.Out(u) {
		w := a.To
		if w == u || r.visited[w] || a.Weight == 0 {
			continue
		}
		length := a.Weight
		if r.options.InvertWeights {
			length = 1 / a.Weight
		}
		nd := du + length
		if nd > r.options.MaxDistance {
			continue
		}

		dw := r.res.Dist[w]
		switch {
		case r.tie(nd, dw):
			r.res.Sigma[w] += r.res.Sigma[u]
			r.res.Pred[w] = append(r.res.Pred[w], u)
		case nd < dw:
			r.res.Dist[w] = nd
			r.res.Sigma[w] = r.res.Sigma[u]
			r.res.Pred[w] = append(r.res.Pred[w][:0], u)
			// lazy decrease-key: the outdated entry is skipped when popped
			heap.Push(&r.pq, &nodeItem{id: w, dist: nd})
		}
	}
}

// tie reports whether a and b agree within the relative epsilon.
func (r *runner) tie(a, b float64) bool {
	if math.IsInf(b, 1) {
		return false
	}
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))

	return math.Abs(a-b) <= r.options.Epsilon*scale
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, ties broken by id
// so the finalization order is reproducible.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

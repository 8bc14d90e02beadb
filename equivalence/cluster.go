// SPDX-License-Identifier: MIT
// File: cluster.go
// Role: agglomerative hierarchical clustering with Lance–Williams updates.

package equivalence

import (
	"container/heap"
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/katalvlaran/sna/core"
	"github.com/katalvlaran/sna/matrix"
)

// SlowThreshold is the table size above which Cluster logs a warning.
const SlowThreshold = 200

// symmetryTol is the asymmetry a pair table may carry from rounding.
const symmetryTol = 1e-9

// ClusterOption configures Cluster.
type ClusterOption func(*clusterConfig)

type clusterConfig struct {
	similarity bool
	logger     *slog.Logger
	progress   func(done, total int)
}

// WithSimilarity treats the table as similarities: the most similar pair
// merges first and heights are reported as similarities.
func WithSimilarity() ClusterOption {
	return func(c *clusterConfig) { c.similarity = true }
}

// WithLogger routes the slow-operation warning to l.
func WithLogger(l *slog.Logger) ClusterOption {
	if l == nil {
		panic("equivalence: WithLogger(nil)")
	}
	return func(c *clusterConfig) { c.logger = l }
}

// WithProgress registers a tick per merge.
func WithProgress(fn func(done, total int)) ClusterOption {
	if fn == nil {
		panic("equivalence: WithProgress(nil)")
	}
	return func(c *clusterConfig) { c.progress = fn }
}

// Cluster builds a dendrogram from a symmetric pair table.
//
// Implementation:
//   - Stage 1: Validate the table; similarities are negated so that the
//     smallest value always merges first.
//   - Stage 2: Push every pair onto a min-heap keyed by (distance, a, b).
//   - Stage 3: Pop until an entry joins two live clusters at their current
//     versions; merge b into a, recompute d(a,k) by Lance–Williams
//     (Single min, Complete max, Average size-weighted mean) and push the
//     new pairs. Stale entries are discarded when popped.
//
// ctx is checked once per merge; progress ticks once per merge.
// Errors: ErrBadTable, ErrUnknownChoice, ctx.Err() (wrapped).
// Complexity: O(n² log n) time, O(n²) memory.
func Cluster(ctx context.Context, table *PairTable, linkage Linkage, opts ...ClusterOption) (*Dendrogram, error) {
	cfg := clusterConfig{logger: slog.Default(), progress: func(int, int) {}}
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Validate
	if linkage < Single || linkage > Average {
		return nil, fmt.Errorf("Cluster: %w: linkage %d", ErrUnknownChoice, int(linkage))
	}
	if table == nil || table.Values == nil {
		return nil, fmt.Errorf("Cluster: %w", ErrBadTable)
	}
	if !matrix.IsSymmetric(table.Values, symmetryTol) {
		return nil, fmt.Errorf("Cluster: asymmetric table: %w", ErrBadTable)
	}
	n := len(table.Vertices)
	if n > SlowThreshold {
		cfg.logger.WarnContext(ctx, "hierarchical clustering on a large table", "n", n, "linkage", linkage.String())
	}
	sign := 1.0
	if cfg.similarity {
		sign = -1
	}
	d := table.Values.RawRows()
	for i := range d {
		for j := range d[i] {
			d[i][j] *= sign
		}
	}

	// 2) Seed
	c := &clusterer{
		d:       d,
		size:    make([]int, n),
		version: make([]int, n),
		id:      make([]int, n),
		members: make([][]core.VertexID, n),
		live:    make([]bool, n),
	}
	for i := 0; i < n; i++ {
		c.size[i], c.id[i], c.live[i] = 1, i, true
		c.members[i] = []core.VertexID{table.Vertices[i]}
		for j := i + 1; j < n; j++ {
			c.pq = append(c.pq, pairItem{dist: d[i][j], a: i, b: j})
		}
	}
	heap.Init(&c.pq)

	// 3) Merge
	out := &Dendrogram{
		Labels:     append([]core.VertexID(nil), table.Vertices...),
		Linkage:    linkage,
		Similarity: cfg.similarity,
		Merges:     make([]Merge, 0, max(n-1, 0)),
	}
	for step := 0; step < n-1; step++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("Cluster: %w", err)
		}
		it, ok := c.popLive()
		if !ok {
			return nil, fmt.Errorf("Cluster: heap exhausted at merge %d: %w", step, ErrBadTable)
		}
		out.Merges = append(out.Merges, c.merge(it, linkage, n+step, sign))
		cfg.progress(step+1, n-1)
	}

	return out, nil
}

type clusterer struct {
	d       [][]float64
	size    []int
	version []int
	id      []int
	members [][]core.VertexID
	live    []bool
	pq      pairPQ
}

// popLive discards stale entries and returns the closest live pair.
func (c *clusterer) popLive() (pairItem, bool) {
	for c.pq.Len() > 0 {
		it := heap.Pop(&c.pq).(pairItem)
		if c.live[it.a] && c.live[it.b] && it.va == c.version[it.a] && it.vb == c.version[it.b] {
			return it, true
		}
	}

	return pairItem{}, false
}

// merge folds slot b into slot a, updates distances and records the step.
func (c *clusterer) merge(it pairItem, linkage Linkage, newID int, sign float64) Merge {
	a, b := it.a, it.b
	m := Merge{
		A:      min(c.id[a], c.id[b]),
		B:      max(c.id[a], c.id[b]),
		Height: it.dist * sign,
		Size:   c.size[a] + c.size[b],
	}
	m.Members = append(append([]core.VertexID(nil), c.members[a]...), c.members[b]...)
	sort.Ints(m.Members)

	na, nb := float64(c.size[a]), float64(c.size[b])
	c.live[b] = false
	c.version[a]++
	for k := range c.d {
		if !c.live[k] || k == a {
			continue
		}
		var v float64
		switch linkage {
		case Single:
			v = math.Min(c.d[a][k], c.d[b][k])
		case Complete:
			v = math.Max(c.d[a][k], c.d[b][k])
		case Average:
			v = (na*c.d[a][k] + nb*c.d[b][k]) / (na + nb)
		}
		c.d[a][k], c.d[k][a] = v, v
		lo, hi := a, k
		if hi < lo {
			lo, hi = hi, lo
		}
		heap.Push(&c.pq, pairItem{dist: v, a: lo, b: hi, va: c.version[lo], vb: c.version[hi]})
	}
	c.size[a] += c.size[b]
	c.members[a] = m.Members
	c.members[b] = nil
	c.id[a] = newID

	return m
}

// pairItem is a candidate merge of slots a < b at the given versions.
type pairItem struct {
	dist   float64
	a, b   int
	va, vb int
}

// pairPQ orders candidates by (dist, a, b) for deterministic ties.
type pairPQ []pairItem

func (pq pairPQ) Len() int { return len(pq) }

func (pq pairPQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	if pq[i].a != pq[j].a {
		return pq[i].a < pq[j].a
	}
	return pq[i].b < pq[j].b
}

func (pq pairPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *pairPQ) Push(x interface{}) { *pq = append(*pq, x.(pairItem)) }

func (pq *pairPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}

// Cut returns the k groups left after the first n−k merges, each sorted,
// ordered by smallest member.
func (dg *Dendrogram) Cut(k int) ([][]core.VertexID, error) {
	n := len(dg.Labels)
	if k < 1 || k > n {
		return nil, fmt.Errorf("Cut(%d): %w", k, ErrUnknownChoice)
	}
	groups := make(map[int][]core.VertexID, n)
	for i, id := range dg.Labels {
		groups[i] = []core.VertexID{id}
	}
	for step := 0; step < n-k; step++ {
		m := dg.Merges[step]
		groups[n+step] = m.Members
		delete(groups, m.A)
		delete(groups, m.B)
	}
	out := make([][]core.VertexID, 0, k)
	for _, g := range groups {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	return out, nil
}

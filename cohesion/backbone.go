// SPDX-License-Identifier: MIT
// File: backbone.go
// Role: maximum spanning forest by Kruskal's method with union-find.

package cohesion

import (
	"sort"

	"github.com/katalvlaran/sna/core"
	"github.com/katalvlaran/sna/distance"
)

// BackboneOf keeps, per weak component, the spanning tree of strongest ties.
//
// Steps:
//  1. Read ties as undirected; a mutual pair keeps its larger value.
//     Without opts.ConsiderWeights every tie is worth 1.
//  2. Sort by value descending, then (From, To) ascending.
//  3. Add each tie whose endpoints are still in different sets.
//
// Self-loops never join a forest.
// Complexity: O(E log E + α(V)·E).
func BackboneOf(g *core.Graph, opts distance.Options) (*Backbone, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	v := g.View(opts.DropIsolates)
	n := v.N()

	// 1) Undirected candidate ties
	best := make(map[[2]int]float64)
	for i := 0; i < n; i++ {
		for _, a := range v.Out(i) {
			if a.To == i {
				continue
			}
			key := [2]int{min(i, a.To), max(i, a.To)}
			w := 1.0
			if opts.ConsiderWeights {
				w = a.Weight
			}
			if cur, ok := best[key]; !ok || w > cur {
				best[key] = w
			}
		}
	}
	cands := make([]core.Edge, 0, len(best))
	for k, w := range best {
		cands = append(cands, core.Edge{From: k[0], To: k[1], Weight: w})
	}

	// 2) Strongest first, deterministic among equals
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].Weight != cands[j].Weight {
			return cands[i].Weight > cands[j].Weight
		}
		if cands[i].From != cands[j].From {
			return cands[i].From < cands[j].From
		}
		return cands[i].To < cands[j].To
	})

	// 3) Union-find with path halving and union by rank
	parent := make([]int, n)
	rank := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}

	out := &Backbone{Components: n}
	for _, e := range cands {
		ru, rv := find(e.From), find(e.To)
		if ru == rv {
			continue
		}
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}
		out.Ties = append(out.Ties, core.Edge{From: v.ID(e.From), To: v.ID(e.To), Weight: e.Weight})
		out.Total += e.Weight
		out.Components--
		if out.Components == 1 {
			break
		}
	}

	return out, nil
}

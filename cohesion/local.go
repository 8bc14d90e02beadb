// SPDX-License-Identifier: MIT
// File: local.go
// Role: clustering coefficient, reciprocity and triad census.

package cohesion

import (
	"context"
	"fmt"

	"github.com/katalvlaran/sna/core"
	"github.com/katalvlaran/sna/distance"
)

// neighborhood returns the sorted neighbor indices of i (in ∪ out, no self).
func neighborhood(v *core.View, i int) []int {
	seen := make(map[int]struct{})
	var out []int
	add := func(arcs []core.Arc) {
		for _, a := range arcs {
			if a.To == i {
				continue
			}
			if _, ok := seen[a.To]; !ok {
				seen[a.To] = struct{}{}
				out = append(out, a.To)
			}
		}
	}
	add(v.Out(i))
	if v.Directed() {
		add(v.In(i))
	}

	return out
}

// ClusteringCoefficient computes local coefficients and their mean.
//
// For vertex v with k ≥ 2 neighbors (in ∪ out on digraphs):
//   - undirected: ties among neighbors / (k(k−1)/2)
//   - directed:   arcs among neighbors / (k(k−1))
//
// Complexity: O(Σ k²).
func ClusteringCoefficient(g *core.Graph, opts distance.Options) (*Clustering, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	v := g.View(opts.DropIsolates)
	n := v.N()
	out := &Clustering{
		Vertices: append([]core.VertexID(nil), v.IDs()...),
		Local:    make([]float64, n),
		Defined:  make([]bool, n),
	}
	var sum float64
	var defined int
	for i := 0; i < n; i++ {
		nb := neighborhood(v, i)
		k := len(nb)
		if k < 2 {
			continue
		}
		ties := 0
		for a := 0; a < k; a++ {
			for b := 0; b < k; b++ {
				if a == b {
					continue
				}
				if (v.Directed() || a < b) && v.HasArc(nb[a], nb[b]) {
					ties++
				}
			}
		}
		possible := float64(k * (k - 1))
		if !v.Directed() {
			possible /= 2
		}
		out.Local[i] = float64(ties) / possible
		out.Defined[i] = true
		sum += out.Local[i]
		defined++
	}
	if defined > 0 {
		out.Network = sum / float64(defined)
	}

	return out, nil
}

// ReciprocityOf computes arc and dyad reciprocity; self-loops are ignored.
func ReciprocityOf(g *core.Graph, opts distance.Options) (*Reciprocity, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Directed() {
		return &Reciprocity{Trivial: true, Arc: 1, Dyad: 1}, nil
	}
	v := g.View(opts.DropIsolates)
	r := &Reciprocity{}
	for i := 0; i < v.N(); i++ {
		for _, a := range v.Out(i) {
			if a.To == i {
				continue
			}
			r.Arcs++
			mutual := v.HasArc(a.To, i)
			if mutual {
				r.ReciprocatedArcs++
			}
			// count each dyad once: from its smaller end, or from the only arc
			if !mutual || i < a.To {
				r.Dyads++
				if mutual {
					r.MutualDyads++
				}
			}
		}
	}
	if r.Arcs > 0 {
		r.Arc = float64(r.ReciprocatedArcs) / float64(r.Arcs)
		r.Dyad = float64(r.MutualDyads) / float64(r.Dyads)
	}

	return r, nil
}

// triCodes maps the 6-bit arc pattern of (v,u,w) to a class index + 1:
// bit 1 v→u, 2 u→v, 4 v→w, 8 w→v, 16 u→w, 32 w→u.
var triCodes = [64]int{
	1, 2, 2, 3, 2, 4, 6, 8, 2, 6, 5, 7, 3, 8, 7, 11,
	2, 6, 4, 8, 5, 9, 9, 13, 6, 10, 9, 14, 7, 14, 12, 15,
	2, 5, 6, 7, 6, 9, 10, 14, 4, 9, 9, 12, 8, 13, 14, 15,
	3, 7, 8, 11, 7, 12, 14, 15, 8, 14, 13, 15, 11, 15, 15, 16,
}

// classify returns the MAN class of the triple (a,b,c).
func classify(v *core.View, a, b, c int) Triad {
	code := 0
	bit := func(from, to, value int) {
		if v.HasArc(from, to) {
			code += value
		}
	}
	bit(a, b, 1)
	bit(b, a, 2)
	bit(a, c, 4)
	bit(c, a, 8)
	bit(b, c, 16)
	bit(c, b, 32)

	return Triad(triCodes[code] - 1)
}

// TriadCensusOf classifies every unordered triple. Undirected ties count as
// mutual, so only 003, 102, 201 and 300 occur on undirected graphs.
// ctx is checked once per outer vertex.
// Complexity: O(V³).
func TriadCensusOf(ctx context.Context, g *core.Graph, opts distance.Options) (*TriadCensus, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	v := g.View(opts.DropIsolates)
	n := v.N()
	out := &TriadCensus{}
	for a := 0; a < n; a++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("TriadCensus: %w", err)
		}
		for b := a + 1; b < n; b++ {
			for c := b + 1; c < n; c++ {
				out.Counts[classify(v, a, b, c)]++
			}
		}
	}
	nn := int64(n)
	out.Total = nn * (nn - 1) * (nn - 2) / 6

	return out, nil
}

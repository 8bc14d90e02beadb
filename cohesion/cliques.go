// SPDX-License-Identifier: MIT
// File: cliques.go
// Role: maximal clique census (Bron–Kerbosch with pivoting).

package cohesion

import (
	"context"
	"fmt"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/sna/core"
	"github.com/katalvlaran/sna/distance"
	"github.com/katalvlaran/sna/matrix"
)

// minCliqueSize excludes lone vertices.
const minCliqueSize = 2

type cliqueRunner struct {
	ctx   context.Context
	nbr   []mapset.Set[int]
	found [][]int
}

// Cliques enumerates maximal cliques of size ≥ 2 over symmetric ties
// (mutual arcs on digraphs) and tallies membership.
//
// Implementation:
//   - Stage 1: Build neighbor sets, keeping u–w only when both arcs exist.
//   - Stage 2: Bron–Kerbosch with the pivot maximizing |P ∩ N(u)|;
//     candidates and pivots are taken in ascending order for determinism.
//   - Stage 3: Sort cliques, count membership and co-membership.
//
// ctx is checked at every recursion step.
// Complexity: O(3^{n/3}) worst case.
func Cliques(ctx context.Context, g *core.Graph, opts distance.Options) (*CliqueCensus, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	v := g.View(opts.DropIsolates)
	n := v.N()

	// 1) Mutual neighbor sets
	r := &cliqueRunner{ctx: ctx, nbr: make([]mapset.Set[int], n)}
	all := mapset.NewThreadUnsafeSet[int]()
	for i := 0; i < n; i++ {
		r.nbr[i] = mapset.NewThreadUnsafeSet[int]()
		for _, a := range v.Out(i) {
			if a.To != i && v.HasArc(a.To, i) {
				r.nbr[i].Add(a.To)
			}
		}
		all.Add(i)
	}

	// 2) Enumeration
	if err := r.expand(nil, all, mapset.NewThreadUnsafeSet[int]()); err != nil {
		return nil, fmt.Errorf("Cliques: %w", err)
	}

	// 3) Tally
	sort.Slice(r.found, func(a, b int) bool {
		x, y := r.found[a], r.found[b]
		if len(x) != len(y) {
			return len(x) > len(y)
		}
		for k := range x {
			if x[k] != y[k] {
				return x[k] < y[k]
			}
		}
		return false
	})
	co, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("Cliques: %w", err)
	}
	out := &CliqueCensus{
		Vertices:     append([]core.VertexID(nil), v.IDs()...),
		Cliques:      make([][]core.VertexID, len(r.found)),
		Membership:   make(map[core.VertexID]int, n),
		BySize:       make(map[int]int),
		CoMembership: co,
	}
	for c, members := range r.found {
		ids := make([]core.VertexID, len(members))
		for k, i := range members {
			ids[k] = v.ID(i)
			out.Membership[ids[k]]++
			for _, j := range members {
				cur, _ := co.At(i, j)
				_ = co.Set(i, j, cur+1)
			}
		}
		out.Cliques[c] = ids
		out.BySize[len(ids)]++
	}

	return out, nil
}

// expand is one Bron–Kerbosch step over clique R, candidates P and excluded X.
func (r *cliqueRunner) expand(R []int, P, X mapset.Set[int]) error {
	if err := r.ctx.Err(); err != nil {
		return err
	}
	if P.Cardinality() == 0 {
		if X.Cardinality() == 0 && len(R) >= minCliqueSize {
			clique := append([]int(nil), R...)
			sort.Ints(clique)
			r.found = append(r.found, clique)
		}
		return nil
	}

	pivot, best := -1, -1
	for _, u := range sorted(P.Union(X)) {
		if c := P.Intersect(r.nbr[u]).Cardinality(); c > best {
			pivot, best = u, c
		}
	}
	for _, w := range sorted(P.Difference(r.nbr[pivot])) {
		next := append(append([]int(nil), R...), w)
		if err := r.expand(next, P.Intersect(r.nbr[w]), X.Intersect(r.nbr[w])); err != nil {
			return err
		}
		P.Remove(w)
		X.Add(w)
	}

	return nil
}

func sorted(s mapset.Set[int]) []int {
	out := s.ToSlice()
	sort.Ints(out)

	return out
}

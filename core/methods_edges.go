// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Tie lifecycle & queries on the active relation: AddEdge/RemoveEdge/HasEdge/
//       Weight/Edges/RelationEdges/EdgeCount/Weighted.
// Determinism:
//   - Edges() returns ties sorted by (From, To) asc.
// Concurrency:
//   - Mutations under muEdgeAdj write lock, after validating endpoints under muVert.

package core

import (
	"fmt"
	"math"
	"sort"
)

// AddEdge creates or overwrites the tie from→to in the active relation.
// Undirected graphs store the tie once and mirror it in adjacency.
//
// Errors:
//   - ErrBadWeight if weight is NaN or ±Inf.
//   - ErrLoopNotAllowed if from == to and loops are disabled.
//   - ErrInvalidVertex if either endpoint is not in use.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to VertexID, weight float64) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("AddEdge(%d→%d, w=%g): %w", from, to, weight, ErrBadWeight)
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if from == to && !g.allowLoops {
		return fmt.Errorf("AddEdge(%d→%d): %w", from, to, ErrLoopNotAllowed)
	}
	if err := g.requireVertices(from, to); err != nil {
		return fmt.Errorf("AddEdge: %w", err)
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	g.relations[g.active].link(from, to, weight, g.directed)
	g.bump()

	return nil
}

// RemoveEdge deletes the tie from→to (and its mirror when undirected)
// from the active relation.
// Complexity: O(1).
func (g *Graph) RemoveEdge(from, to VertexID) error {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if err := g.requireVertices(from, to); err != nil {
		return fmt.Errorf("RemoveEdge: %w", err)
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	if !g.relations[g.active].unlink(from, to, g.directed) {
		return fmt.Errorf("RemoveEdge(%d→%d): %w", from, to, ErrEdgeNotFound)
	}
	g.bump()

	return nil
}

// HasEdge reports whether from→to exists in the active relation.
// Unknown identifiers simply report false.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to VertexID) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.relations[g.active].out[from][to]

	return ok
}

// Weight returns the weight of from→to, or 0 when there is no tie.
// Complexity: O(1).
func (g *Graph) Weight(from, to VertexID) (float64, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if err := g.requireVertices(from, to); err != nil {
		return 0, fmt.Errorf("Weight: %w", err)
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.relations[g.active].out[from][to], nil
}

// Edges returns the active relation's ties sorted by (From, To).
// Undirected ties appear once, with From <= To.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.relations[g.active].edges(g.directed)
}

// RelationEdges returns the ties of relation i in the order Edges uses,
// without changing the active relation or the version counter.
// Errors: ErrRelationNotFound if i is outside [0, RelationCount()).
// Complexity: O(E log E).
func (g *Graph) RelationEdges(i int) ([]Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	if i < 0 || i >= len(g.relations) {
		return nil, fmt.Errorf("RelationEdges(%d): %w", i, ErrRelationNotFound)
	}

	return g.relations[i].edges(g.directed), nil
}

// edges lists r's ties sorted by (From, To); callers hold muEdgeAdj.
func (r *relation) edges(directed bool) []Edge {
	out := make([]Edge, 0, r.ties)
	for u, nbs := range r.out {
		for v, w := range nbs {
			if !directed && v < u {
				continue
			}
			out = append(out, Edge{From: u, To: v, Weight: w})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the number of ties in the active relation. O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.relations[g.active].ties
}

// Weighted reports whether any tie of the active relation carries a weight
// other than DefaultWeight.
// Complexity: O(E).
func (g *Graph) Weighted() bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for _, nbs := range g.relations[g.active].out {
		for _, w := range nbs {
			if w != DefaultWeight {
				return true
			}
		}
	}

	return false
}

// requireVertices checks every id is in use; callers hold muVert.
func (g *Graph) requireVertices(ids ...VertexID) error {
	for _, id := range ids {
		if _, ok := g.vertices[id]; !ok {
			return fmt.Errorf("vertex %d: %w", id, ErrInvalidVertex)
		}
	}

	return nil
}

// link stores u→v (and v→u when undirected) with weight w.
func (r *relation) link(u, v VertexID, w float64, directed bool) {
	if _, exists := r.out[u][v]; !exists {
		r.ties++
	}
	r.set(u, v, w)
	if !directed && u != v {
		r.set(v, u, w)
	}
}

func (r *relation) set(u, v VertexID, w float64) {
	if r.out[u] == nil {
		r.out[u] = make(map[VertexID]float64)
	}
	if r.in[v] == nil {
		r.in[v] = make(map[VertexID]float64)
	}
	r.out[u][v] = w
	r.in[v][u] = w
}

// unlink removes u→v (and the mirror when undirected); reports whether it existed.
func (r *relation) unlink(u, v VertexID, directed bool) bool {
	if _, exists := r.out[u][v]; !exists {
		return false
	}
	r.ties--
	r.clear(u, v)
	if !directed && u != v {
		r.clear(v, u)
	}

	return true
}

func (r *relation) clear(u, v VertexID) {
	delete(r.out[u], v)
	delete(r.in[v], u)
	if len(r.out[u]) == 0 {
		delete(r.out, u)
	}
	if len(r.in[v]) == 0 {
		delete(r.in, v)
	}
}

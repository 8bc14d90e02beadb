// SPDX-License-Identifier: MIT
// File: methods_adjacent.go
// Role: Neighborhood queries on the active relation: Neighbors/InNeighbors/IsIsolate.
// Determinism:
//   - Neighbor lists are sorted ascending by VertexID.

package core

import (
	"fmt"
	"sort"
)

// Neighbors returns the heads of ties leaving id in the active relation.
// For undirected graphs this is the full neighborhood.
// Complexity: O(d log d).
func (g *Graph) Neighbors(id VertexID) ([]VertexID, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if err := g.requireVertices(id); err != nil {
		return nil, fmt.Errorf("Neighbors: %w", err)
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return sortedKeys(g.relations[g.active].out[id]), nil
}

// InNeighbors returns the tails of ties entering id in the active relation.
// Complexity: O(d log d).
func (g *Graph) InNeighbors(id VertexID) ([]VertexID, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if err := g.requireVertices(id); err != nil {
		return nil, fmt.Errorf("InNeighbors: %w", err)
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return sortedKeys(g.relations[g.active].in[id]), nil
}

// IsIsolate reports whether id has no tie to another vertex in either direction.
// A self-loop alone does not make a vertex non-isolated.
// Complexity: O(d).
func (g *Graph) IsIsolate(id VertexID) (bool, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if err := g.requireVertices(id); err != nil {
		return false, fmt.Errorf("IsIsolate: %w", err)
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.relations[g.active].isolated(id), nil
}

func (r *relation) isolated(id VertexID) bool {
	for nb := range r.out[id] {
		if nb != id {
			return false
		}
	}
	for nb := range r.in[id] {
		if nb != id {
			return false
		}
	}

	return true
}

func sortedKeys(m map[VertexID]float64) []VertexID {
	ids := make([]VertexID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

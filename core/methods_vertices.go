// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Vertex lifecycle & queries: AddVertex/AddVertexWithID/RemoveVertex/HasVertex/
//       Vertex/Vertices/VertexCount/SetPosition, plus the Version counter.
// Determinism:
//   - Vertices() returns identifiers sorted ascending.
//   - AddVertex hands out identifiers from a monotonic counter; deleted ids are never reused.
// Concurrency:
//   - Vertex mutations hold muVert (and muEdgeAdj when adjacency must be purged).

package core

import (
	"fmt"
	"sort"
	"sync/atomic"
)

// AddVertex inserts a new vertex with the given label and returns its identifier.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(label string) VertexID {
	g.muVert.Lock()
	defer g.muVert.Unlock()

	id := g.nextID
	g.nextID++
	g.vertices[id] = &Vertex{ID: id, Label: label}
	g.bump()

	return id
}

// AddVertexWithID inserts a vertex under a caller-chosen identifier, as needed
// when restoring a snapshot. The internal counter moves past id so later
// AddVertex calls never collide.
//
// Errors: ErrInvalidVertex if id < 1, ErrDuplicateVertex if id is in use.
// Complexity: O(1) amortized.
func (g *Graph) AddVertexWithID(id VertexID, label string) error {
	if id < 1 {
		return fmt.Errorf("AddVertexWithID(%d): %w", id, ErrInvalidVertex)
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return fmt.Errorf("AddVertexWithID(%d): %w", id, ErrDuplicateVertex)
	}
	g.vertices[id] = &Vertex{ID: id, Label: label}
	if id >= g.nextID {
		g.nextID = id + 1
	}
	g.bump()

	return nil
}

// HasVertex reports whether id is currently in use.
// Complexity: O(1).
func (g *Graph) HasVertex(id VertexID) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns a copy of the vertex record.
// Complexity: O(1).
func (g *Graph) Vertex(id VertexID) (Vertex, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, fmt.Errorf("Vertex(%d): %w", id, ErrInvalidVertex)
	}

	return *v, nil
}

// SetPosition stores layout hints for id. Analysis results do not depend on them,
// so the version counter is left untouched.
func (g *Graph) SetPosition(id VertexID, x, y float64) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	v, ok := g.vertices[id]
	if !ok {
		return fmt.Errorf("SetPosition(%d): %w", id, ErrInvalidVertex)
	}
	v.X, v.Y = x, y

	return nil
}

// RemoveVertex deletes the vertex and every tie incident to it in every relation.
// Complexity: O(R·deg(v)) where R is the number of relations.
func (g *Graph) RemoveVertex(id VertexID) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, ok := g.vertices[id]; !ok {
		return fmt.Errorf("RemoveVertex(%d): %w", id, ErrInvalidVertex)
	}
	for _, r := range g.relations {
		for nb := range r.out[id] {
			r.unlink(id, nb, g.directed)
		}
		for nb := range r.in[id] {
			r.unlink(nb, id, g.directed)
		}
		delete(r.out, id)
		delete(r.in, id)
	}
	delete(g.vertices, id)
	g.bump()

	return nil
}

// Vertices returns all vertex identifiers in ascending order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []VertexID {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	ids := make([]VertexID, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// VertexCount returns the number of vertices. O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Version returns a counter that changes whenever vertices, ties, or the
// active relation change.
func (g *Graph) Version() uint64 {
	return atomic.LoadUint64(&g.version)
}

// bump advances the version counter; callers hold a write lock.
func (g *Graph) bump() {
	atomic.AddUint64(&g.version, 1)
}

// Directed reports whether ties are arcs.
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

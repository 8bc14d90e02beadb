// SPDX-License-Identifier: MIT
// File: types.go
// Role: sentinel errors, Vertex/Edge records, GraphOption and the Graph struct.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidVertex indicates an operation referenced an identifier that is not in use.
	ErrInvalidVertex = errors.New("core: invalid vertex")

	// ErrDuplicateVertex indicates AddVertexWithID was called with an identifier already in use.
	ErrDuplicateVertex = errors.New("core: duplicate vertex id")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: bad edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrRelationNotFound indicates a relation index outside [0, RelationCount()).
	ErrRelationNotFound = errors.New("core: relation not found")
)

// DefaultWeight is the weight of an ordinary, unvalued tie.
const DefaultWeight = 1.0

// DefaultRelation is the name of the relation every new Graph starts with.
const DefaultRelation = "default"

// VertexID identifies a vertex for its whole lifetime. Identifiers start at 1,
// are never reused, and may have gaps after deletions.
type VertexID = int

// Vertex represents a node in the graph.
//
// X and Y are layout hints owned by the presentation layer; analysis code
// never reads them.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID VertexID

	// Label is a free-form display name, possibly empty.
	Label string

	// X, Y carry the last known canvas position.
	X, Y float64
}

// Edge is a tie of the active relation.
// Undirected graphs report each tie once with From < To (loops excepted).
type Edge struct {
	From   VertexID
	To     VertexID
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether ties are arcs (true) or reciprocal edges (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithRelationName renames the relation every new graph starts with.
func WithRelationName(name string) GraphOption {
	return func(g *Graph) { g.relations[0].name = name }
}

// relation is one independent edge set.
// out[u][v] = w for every tie u→v; in[v][u] mirrors it.
// Undirected ties are stored in both directions of out and in.
type relation struct {
	name string
	out  map[VertexID]map[VertexID]float64
	in   map[VertexID]map[VertexID]float64
	ties int // ties in the catalog sense: undirected edges count once
}

func newRelation(name string) *relation {
	return &relation{
		name: name,
		out:  make(map[VertexID]map[VertexID]float64),
		in:   make(map[VertexID]map[VertexID]float64),
	}
}

// Graph is the in-memory graph data structure shared read-only by all
// analysis packages.
//
// muVert protects vertices, nextID and flags; muEdgeAdj protects relations
// and the active relation index. version is accessed atomically.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards relations and adjacency

	// Configuration flags
	directed   bool
	allowLoops bool

	// Storage
	nextID    VertexID
	vertices  map[VertexID]*Vertex
	relations []*relation
	active    int

	// version increases on every mutation, so request-scoped caches can
	// detect that their inputs went stale.
	version uint64
}

// NewGraph creates an empty Graph with one relation named DefaultRelation.
// By default, Graph is undirected and rejects self-loops.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nextID:    1,
		vertices:  make(map[VertexID]*Vertex),
		relations: []*relation{newRelation(DefaultRelation)},
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// SPDX-License-Identifier: MIT
// File: types.go
// Role: sentinel errors and result records of the cohesion measures.

package cohesion

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sna/core"
	"github.com/katalvlaran/sna/distance"
	"github.com/katalvlaran/sna/matrix"
)

// ErrNilGraph indicates a nil *core.Graph.
var ErrNilGraph = errors.New("cohesion: graph is nil")

// ErrUnknownTriad indicates a MAN label outside the 16 classes.
var ErrUnknownTriad = errors.New("cohesion: unknown triad class")

// DistanceSummary collects the distance-derived cohesion figures.
type DistanceSummary struct {
	// Defined is false when no pair is connected; Diameter, AverageDistance
	// and Radius are then 0.
	Defined         bool
	Diameter        float64
	AverageDistance float64
	Radius          float64
	Eccentricities  map[core.VertexID]float64
	Connectedness   distance.Class

	// Result is the all-pairs computation the figures came from.
	Result *distance.Result
}

// Clustering holds local and network clustering coefficients.
// Slices are parallel to Vertices.
type Clustering struct {
	Vertices []core.VertexID
	Local    []float64
	// Defined[i] is false for vertices with fewer than two neighbors.
	Defined []bool
	// Network is the mean of Local over defined vertices, 0 when none is.
	Network float64
}

// CliqueCensus lists every maximal clique of size ≥ 2.
type CliqueCensus struct {
	// Vertices is the index space of CoMembership.
	Vertices []core.VertexID

	// Cliques are sorted by size (largest first), then lexicographically;
	// members ascend.
	Cliques [][]core.VertexID

	// Membership counts the cliques each vertex belongs to.
	Membership map[core.VertexID]int

	// BySize maps clique size to the number of cliques of that size.
	BySize map[int]int

	// CoMembership(i,j) counts cliques containing both Vertices[i] and Vertices[j];
	// the diagonal repeats Membership.
	CoMembership *matrix.Dense
}

// Triad is one of the 16 MAN isomorphism classes of a triple.
type Triad int

// MAN classes in the conventional order.
const (
	T003 Triad = iota
	T012
	T102
	T021D
	T021U
	T021C
	T111D
	T111U
	T030T
	T030C
	T201
	T120D
	T120U
	T120C
	T210
	T300
)

var triadNames = [...]string{
	"003", "012", "102", "021D", "021U", "021C", "111D", "111U",
	"030T", "030C", "201", "120D", "120U", "120C", "210", "300",
}

// String returns the MAN label, e.g. "021D".
func (t Triad) String() string {
	if t < 0 || int(t) >= len(triadNames) {
		return fmt.Sprintf("Triad(%d)", int(t))
	}

	return triadNames[t]
}

// ParseTriad maps a MAN label back to its class.
func ParseTriad(s string) (Triad, error) {
	for i, name := range triadNames {
		if name == s {
			return Triad(i), nil
		}
	}

	return 0, fmt.Errorf("ParseTriad(%q): %w", s, ErrUnknownTriad)
}

// TriadCensus counts triples per MAN class.
type TriadCensus struct {
	Counts [16]int64
	// Total is C(n,3).
	Total int64
}

// Count returns the number of triples in class t.
func (c *TriadCensus) Count(t Triad) int64 {
	if t < 0 || int(t) >= len(c.Counts) {
		return 0
	}

	return c.Counts[t]
}

// Reciprocity summarizes mutual ties.
type Reciprocity struct {
	// Trivial is set on undirected graphs, where both ratios are 1 by definition.
	Trivial bool

	Arcs, ReciprocatedArcs int
	Dyads, MutualDyads     int

	// Arc = ReciprocatedArcs/Arcs, Dyad = MutualDyads/Dyads; 0 without arcs.
	Arc, Dyad float64
}

// Connectivity holds pairwise line connectivity: the number of tie-disjoint
// paths between two vertices, or the maximum flow when tie values are
// capacities.
type Connectivity struct {
	// Vertices is the index space of Pairwise.
	Vertices []core.VertexID

	// Pairwise(i,j) is λ(Vertices[i] → Vertices[j]); the diagonal is 0.
	Pairwise *matrix.Dense

	// Graph is the minimum of Pairwise off the diagonal, 0 when n < 2.
	Graph float64

	// Weakest lists the ordered pairs attaining Graph.
	Weakest [][2]core.VertexID
}

// Backbone is a maximum-strength spanning forest: per weak component, the
// tree whose ties have the largest total value.
type Backbone struct {
	// Ties are the forest's ties with From < To, strongest first.
	Ties []core.Edge

	// Total sums the values of Ties.
	Total float64

	// Components is the number of trees, i.e. weak components.
	Components int
}

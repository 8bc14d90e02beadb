// SPDX-License-Identifier: MIT
// File: types.go
// Role: Index enumeration, sentinel errors, Options and ScoreSet.

package centrality

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/sna/core"
	"github.com/katalvlaran/sna/distance"
)

// Sentinel errors for prominence computations.
var (
	// ErrRequiresConnectedGraph indicates closeness was requested on a
	// disconnected active vertex set.
	ErrRequiresConnectedGraph = errors.New("centrality: requires a connected graph")

	// ErrNoConvergence indicates an iterative index exceeded its iteration cap.
	ErrNoConvergence = errors.New("centrality: no convergence")

	// ErrUndefinedMetric indicates an index that is meaningless for the graph's directedness.
	ErrUndefinedMetric = errors.New("centrality: undefined metric")

	// ErrUnknownIndex indicates an Index outside the closed enumeration.
	ErrUnknownIndex = errors.New("centrality: unknown index")

	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("centrality: graph is nil")

	// ErrOptionViolation indicates a nonsensical numeric option.
	ErrOptionViolation = errors.New("centrality: invalid option")
)

// Index names one prominence index.
type Index int

// The twelve prominence indices: nine centrality, three prestige.
const (
	DegreeCentrality Index = iota
	ClosenessCentrality
	InfluenceRangeCloseness
	BetweennessCentrality
	StressCentrality
	EccentricityCentrality
	PowerCentrality
	InformationCentrality
	EigenvectorCentrality
	DegreePrestige
	PageRankPrestige
	ProximityPrestige
)

var indexNames = [...]string{
	DegreeCentrality:        "DC",
	ClosenessCentrality:     "CC",
	InfluenceRangeCloseness: "IRCC",
	BetweennessCentrality:   "BC",
	StressCentrality:        "SC",
	EccentricityCentrality:  "EC",
	PowerCentrality:         "PC",
	InformationCentrality:   "IC",
	EigenvectorCentrality:   "EVC",
	DegreePrestige:          "DP",
	PageRankPrestige:        "PRP",
	ProximityPrestige:       "PP",
}

var indexTitles = [...]string{
	DegreeCentrality:        "degree centrality",
	ClosenessCentrality:     "closeness centrality",
	InfluenceRangeCloseness: "influence range closeness centrality",
	BetweennessCentrality:   "betweenness centrality",
	StressCentrality:        "stress centrality",
	EccentricityCentrality:  "eccentricity centrality",
	PowerCentrality:         "power centrality",
	InformationCentrality:   "information centrality",
	EigenvectorCentrality:   "eigenvector centrality",
	DegreePrestige:          "degree prestige",
	PageRankPrestige:        "pagerank prestige",
	ProximityPrestige:       "proximity prestige",
}

// Indices lists every Index in declaration order.
func Indices() []Index {
	out := make([]Index, len(indexNames))
	for i := range out {
		out[i] = Index(i)
	}

	return out
}

// Valid reports whether x belongs to the enumeration.
func (x Index) Valid() bool { return x >= 0 && int(x) < len(indexNames) }

// String returns the short code, e.g. "BC".
func (x Index) String() string {
	if !x.Valid() {
		return fmt.Sprintf("Index(%d)", int(x))
	}

	return indexNames[x]
}

// Title returns the long name, e.g. "betweenness centrality".
func (x Index) Title() string {
	if !x.Valid() {
		return x.String()
	}

	return indexTitles[x]
}

// Prestige reports whether x is one of the inbound-tie prestige indices.
func (x Index) Prestige() bool {
	return x == DegreePrestige || x == PageRankPrestige || x == ProximityPrestige
}

// ParseIndex accepts the short code or the long name, case-insensitively.
// It is meant for the CLI boundary only.
func ParseIndex(s string) (Index, error) {
	s = strings.TrimSpace(s)
	for i := range indexNames {
		if strings.EqualFold(s, indexNames[i]) || strings.EqualFold(s, indexTitles[i]) {
			return Index(i), nil
		}
	}

	return 0, fmt.Errorf("ParseIndex(%q): %w", s, ErrUnknownIndex)
}

// Defaults for the iterative indices.
const (
	DefaultDamping       = 0.85
	DefaultEpsilon       = 1e-9
	DefaultMaxIterations = 1000
)

// Options is the per-call policy. Zero numeric fields take the defaults above.
type Options struct {
	distance.Options

	// Distances, when non-nil, is reused instead of recomputing all pairs.
	// Its view decides the active vertex set.
	Distances *distance.Result

	// Damping is the PageRank damping factor in (0,1).
	Damping float64

	// Epsilon is the convergence threshold of the iterative indices.
	Epsilon float64

	// MaxIterations caps the iterative indices.
	MaxIterations int

	// Progress receives coarse ticks: columns inverted, iterations done.
	Progress func(done, total int)
}

// resolve fills defaults and rejects nonsense.
func (o Options) resolve() (Options, error) {
	if o.Damping == 0 {
		o.Damping = DefaultDamping
	}
	if o.Epsilon == 0 {
		o.Epsilon = DefaultEpsilon
	}
	if o.MaxIterations == 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if o.Progress == nil {
		o.Progress = func(int, int) {}
	}
	switch {
	case !(o.Damping > 0 && o.Damping < 1):
		return o, fmt.Errorf("%w: damping %g not in (0,1)", ErrOptionViolation, o.Damping)
	case !(o.Epsilon > 0) || math.IsInf(o.Epsilon, 0):
		return o, fmt.Errorf("%w: epsilon %g", ErrOptionViolation, o.Epsilon)
	case o.MaxIterations < 0:
		return o, fmt.Errorf("%w: max iterations %d", ErrOptionViolation, o.MaxIterations)
	}

	return o, nil
}

// ScoreSet is the outcome of one index over the active vertex set.
// Slices are parallel to Vertices (ascending id).
type ScoreSet struct {
	Index    Index
	Vertices []core.VertexID
	Directed bool

	// Raw holds the index as defined; Standardized rescales it into [0,1].
	Raw          []float64
	Standardized []float64

	// Statistics over Standardized.
	Max, Min                 float64
	MaxVertices, MinVertices []core.VertexID
	Sum, Mean, Variance      float64

	// Centralization is Σ(max−sᵢ) over its theoretical maximum; 0 when n < 3.
	Centralization float64
}

// Score returns the raw and standardized scores of id.
func (s *ScoreSet) Score(id core.VertexID) (raw, std float64, err error) {
	for i, v := range s.Vertices {
		if v == id {
			return s.Raw[i], s.Standardized[i], nil
		}
	}

	return 0, 0, fmt.Errorf("Score(%d): %w", id, core.ErrInvalidVertex)
}

// RawMap returns the raw scores keyed by vertex.
func (s *ScoreSet) RawMap() map[core.VertexID]float64 {
	out := make(map[core.VertexID]float64, len(s.Vertices))
	for i, v := range s.Vertices {
		out[v] = s.Raw[i]
	}

	return out
}

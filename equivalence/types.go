// SPDX-License-Identifier: MIT
// File: types.go
// Role: enumerations, options, sentinel errors and result records.

package equivalence

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/sna/core"
	"github.com/katalvlaran/sna/matrix"
)

// Sentinel errors for equivalence computations.
var (
	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("equivalence: graph is nil")

	// ErrUnknownChoice indicates an enumeration value outside its closed set.
	ErrUnknownChoice = errors.New("equivalence: unknown choice")

	// ErrBadTable indicates a pair table that is nil, non-square, mislabeled or asymmetric.
	ErrBadTable = errors.New("equivalence: bad pair table")
)

// Location selects which tie vectors form a profile.
type Location int

// Profile locations.
const (
	Rows Location = iota
	Columns
	Both
)

// Measure is a similarity measure.
type Measure int

// Similarity measures.
const (
	MatchExact Measure = iota
	MatchJaccard
	MatchHamming
	MatchCosine
	MatchEuclidean
)

// Metric is a dissimilarity metric.
type Metric int

// Dissimilarity metrics.
const (
	DistEuclidean Metric = iota
	DistManhattan
	DistJaccard
	DistHamming
)

// Linkage is the cluster-distance update rule.
type Linkage int

// Linkage criteria.
const (
	Single Linkage = iota
	Complete
	Average
)

var (
	locationNames = [...]string{"rows", "columns", "both"}
	measureNames  = [...]string{"exact", "jaccard", "hamming", "cosine", "euclidean"}
	metricNames   = [...]string{"euclidean", "manhattan", "jaccard", "hamming"}
	linkageNames  = [...]string{"single", "complete", "average"}
)

func name(names []string, i int, kind string) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("%s(%d)", kind, i)
	}

	return names[i]
}

func parse(names []string, s, kind string) (int, error) {
	for i, n := range names {
		if strings.EqualFold(strings.TrimSpace(s), n) {
			return i, nil
		}
	}

	return 0, fmt.Errorf("%w: %s %q", ErrUnknownChoice, kind, s)
}

func (l Location) String() string { return name(locationNames[:], int(l), "Location") }
func (m Measure) String() string  { return name(measureNames[:], int(m), "Measure") }
func (m Metric) String() string   { return name(metricNames[:], int(m), "Metric") }
func (l Linkage) String() string  { return name(linkageNames[:], int(l), "Linkage") }

// ParseLocation accepts "rows", "columns" or "both".
func ParseLocation(s string) (Location, error) {
	i, err := parse(locationNames[:], s, "location")
	return Location(i), err
}

// ParseMeasure accepts a similarity measure name, e.g. "jaccard".
func ParseMeasure(s string) (Measure, error) {
	i, err := parse(measureNames[:], s, "measure")
	return Measure(i), err
}

// ParseMetric accepts a dissimilarity metric name, e.g. "manhattan".
func ParseMetric(s string) (Metric, error) {
	i, err := parse(metricNames[:], s, "metric")
	return Metric(i), err
}

// ParseLinkage accepts "single", "complete" or "average".
func ParseLinkage(s string) (Linkage, error) {
	i, err := parse(linkageNames[:], s, "linkage")
	return Linkage(i), err
}

// Options is the per-call profile policy.
type Options struct {
	Location        Location
	ConsiderWeights bool
	DropIsolates    bool
	IncludeDiagonal bool
}

// ProfileSet holds one tie vector per vertex.
// For Both, each profile is the row followed by the column (length 2n).
type ProfileSet struct {
	Vertices []core.VertexID
	Location Location
	Profiles [][]float64
}

// PairTable is an n×n table of pairwise values over Vertices.
type PairTable struct {
	Vertices []core.VertexID
	Values   *matrix.Dense
}

// NewPairTable checks that values is n×n for n vertex labels.
func NewPairTable(ids []core.VertexID, values *matrix.Dense) (*PairTable, error) {
	if values == nil {
		return nil, fmt.Errorf("NewPairTable: %w", ErrBadTable)
	}
	if r, c := values.Shape(); r != c || r != len(ids) {
		return nil, fmt.Errorf("NewPairTable: %dx%d for %d vertices: %w", r, c, len(ids), ErrBadTable)
	}

	return &PairTable{Vertices: append([]core.VertexID(nil), ids...), Values: values}, nil
}

// At returns the value for the pair (u,v).
func (t *PairTable) At(u, v core.VertexID) (float64, error) {
	i, j := t.index(u), t.index(v)
	if i < 0 || j < 0 {
		return 0, fmt.Errorf("PairTable.At(%d,%d): %w", u, v, core.ErrInvalidVertex)
	}

	return t.Values.At(i, j)
}

func (t *PairTable) index(id core.VertexID) int {
	for i, v := range t.Vertices {
		if v == id {
			return i
		}
	}

	return -1
}

// Merge is one agglomeration step. Clusters 0..n−1 are the leaves in
// Labels order; the k-th merge creates cluster n+k.
type Merge struct {
	A, B    int
	Height  float64
	Size    int
	Members []core.VertexID
}

// Dendrogram is the ordered merge sequence of one clustering run.
type Dendrogram struct {
	Labels     []core.VertexID
	Linkage    Linkage
	Similarity bool
	Merges     []Merge
}

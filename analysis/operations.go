// SPDX-License-Identifier: MIT
// File: operations.go
// Role: Session methods, one per engine operation.

package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/sna/centrality"
	"github.com/katalvlaran/sna/cohesion"
	"github.com/katalvlaran/sna/distance"
	"github.com/katalvlaran/sna/equivalence"
	"github.com/katalvlaran/sna/matrix"
)

// Distances returns the all-pairs distance result under cfg, memoized.
func (s *Session) Distances(ctx context.Context, cfg Config) (*distance.Result, error) {
	return observe(ctx, s, "Distances", cfg, func(ctx context.Context) (*distance.Result, error) {
		return s.distances(ctx, cfg)
	})
}

// DistanceSummary returns diameter, average distance, radius, eccentricities
// and connectedness from the memoized distance result.
func (s *Session) DistanceSummary(ctx context.Context, cfg Config) (*cohesion.DistanceSummary, error) {
	return observe(ctx, s, "DistanceSummary", cfg, func(ctx context.Context) (*cohesion.DistanceSummary, error) {
		res, err := s.distances(ctx, cfg)
		if err != nil {
			return nil, err
		}

		return cohesion.Summarize(res)
	})
}

// Connectedness classifies the graph under cfg.
func (s *Session) Connectedness(ctx context.Context, cfg Config) (distance.Class, error) {
	return observe(ctx, s, "Connectedness", cfg, func(ctx context.Context) (distance.Class, error) {
		res, err := s.distances(ctx, cfg)
		if err != nil {
			return distance.Disconnected, err
		}

		return res.Connectedness(), nil
	})
}

// Prominence computes one centrality or prestige index. Distance-based
// indices reuse the session's memoized distance result.
func (s *Session) Prominence(ctx context.Context, cfg Config, idx centrality.Index) (*centrality.ScoreSet, error) {
	op := "Prominence." + idx.String()
	return observe(ctx, s, op, cfg, func(ctx context.Context) (*centrality.ScoreSet, error) {
		opts := centrality.Options{
			Options:       cfg.distanceOptions(),
			Damping:       s.damping,
			Epsilon:       s.epsilon,
			MaxIterations: s.maxIterations,
			Progress:      s.progress,
		}
		if distanceBased(idx) {
			res, err := s.distances(ctx, cfg)
			if err != nil {
				return nil, err
			}
			opts.Distances = res
		}

		return centrality.Compute(ctx, s.g, idx, opts)
	})
}

// distanceBased reports whether idx reads the all-pairs distance result.
func distanceBased(idx centrality.Index) bool {
	switch idx {
	case centrality.ClosenessCentrality, centrality.InfluenceRangeCloseness,
		centrality.BetweennessCentrality, centrality.StressCentrality,
		centrality.EccentricityCentrality, centrality.PowerCentrality,
		centrality.ProximityPrestige:
		return true
	}

	return false
}

// Walks counts walks of exactly k steps between every ordered pair.
func (s *Session) Walks(ctx context.Context, cfg Config, k int) (*matrix.Dense, error) {
	return observe(ctx, s, "Walks", cfg, func(context.Context) (*matrix.Dense, error) {
		return cohesion.Walks(s.g, k, cfg.distanceOptions())
	})
}

// TotalWalks sums walks of every length 1..n−1. Large graphs need
// WithLargeAllowed on the session, else the failure kind is
// ConfirmationRequired.
func (s *Session) TotalWalks(ctx context.Context, cfg Config) (*matrix.Dense, error) {
	return observe(ctx, s, "TotalWalks", cfg, func(ctx context.Context) (*matrix.Dense, error) {
		mopts := []matrix.Option{matrix.WithProgress(s.progress), matrix.WithLogger(s.logger)}
		if s.largeAllowed {
			mopts = append(mopts, matrix.WithLargeAllowed())
		}

		return cohesion.TotalWalks(ctx, s.g, cfg.distanceOptions(), mopts...)
	})
}

// Reachability returns the 0/1 reachability matrix of the memoized
// distance result.
func (s *Session) Reachability(ctx context.Context, cfg Config) (*matrix.Dense, error) {
	return observe(ctx, s, "Reachability", cfg, func(ctx context.Context) (*matrix.Dense, error) {
		res, err := s.distances(ctx, cfg)
		if err != nil {
			return nil, err
		}

		return matrix.Reachability(res)
	})
}

// MatrixKind selects a graph-derived matrix.
type MatrixKind int

// Matrix kinds.
const (
	AdjacencyMatrix MatrixKind = iota
	DegreeMatrix
	LaplacianMatrix
	CocitationMatrix
	ReachabilityMatrix
	InverseAdjacencyMatrix
)

var matrixNames = [...]string{
	AdjacencyMatrix:        "adjacency",
	DegreeMatrix:           "degree",
	LaplacianMatrix:        "laplacian",
	CocitationMatrix:       "cocitation",
	ReachabilityMatrix:     "reachability",
	InverseAdjacencyMatrix: "inverse",
}

func (k MatrixKind) String() string {
	if k < 0 || int(k) >= len(matrixNames) {
		return fmt.Sprintf("MatrixKind(%d)", int(k))
	}

	return matrixNames[k]
}

// ParseMatrixKind is the inverse of String, case-insensitive.
func ParseMatrixKind(s string) (MatrixKind, error) {
	for i, name := range matrixNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return MatrixKind(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMatrix, s)
}

// Matrix builds the requested matrix over the active relation. Tie values
// are used when cfg.ConsiderWeights is set.
func (s *Session) Matrix(ctx context.Context, cfg Config, kind MatrixKind) (*matrix.Dense, error) {
	return observe(ctx, s, "Matrix."+kind.String(), cfg, func(ctx context.Context) (*matrix.Dense, error) {
		v := s.g.View(cfg.DropIsolates)
		w := cfg.ConsiderWeights
		switch kind {
		case AdjacencyMatrix:
			return matrix.Adjacency(v, w)
		case DegreeMatrix:
			return matrix.Degree(v, w)
		case LaplacianMatrix:
			return matrix.Laplacian(v, w)
		case CocitationMatrix:
			a, err := matrix.Adjacency(v, w)
			if err != nil {
				return nil, err
			}
			return matrix.Cocitation(a)
		case ReachabilityMatrix:
			res, err := s.distances(ctx, cfg)
			if err != nil {
				return nil, err
			}
			return matrix.Reachability(res)
		case InverseAdjacencyMatrix:
			return matrix.AdjacencyInverse(v, w, matrix.WithProgress(s.progress), matrix.WithLogger(s.logger))
		}

		return nil, fmt.Errorf("%w: %d", ErrUnknownMatrix, int(kind))
	})
}

// Clustering returns local and network clustering coefficients.
func (s *Session) Clustering(ctx context.Context, cfg Config) (*cohesion.Clustering, error) {
	return observe(ctx, s, "Clustering", cfg, func(context.Context) (*cohesion.Clustering, error) {
		return cohesion.ClusteringCoefficient(s.g, cfg.distanceOptions())
	})
}

// Cliques returns the maximal clique census.
func (s *Session) Cliques(ctx context.Context, cfg Config) (*cohesion.CliqueCensus, error) {
	return observe(ctx, s, "Cliques", cfg, func(ctx context.Context) (*cohesion.CliqueCensus, error) {
		return cohesion.Cliques(ctx, s.g, cfg.distanceOptions())
	})
}

// Triads returns the 16-class triad census.
func (s *Session) Triads(ctx context.Context, cfg Config) (*cohesion.TriadCensus, error) {
	return observe(ctx, s, "Triads", cfg, func(ctx context.Context) (*cohesion.TriadCensus, error) {
		return cohesion.TriadCensusOf(ctx, s.g, cfg.distanceOptions())
	})
}

// Reciprocity returns arc and dyad reciprocity.
func (s *Session) Reciprocity(ctx context.Context, cfg Config) (*cohesion.Reciprocity, error) {
	return observe(ctx, s, "Reciprocity", cfg, func(context.Context) (*cohesion.Reciprocity, error) {
		return cohesion.ReciprocityOf(s.g, cfg.distanceOptions())
	})
}

// LineConnectivity returns pairwise tie-disjoint path counts (max flows
// when cfg.ConsiderWeights).
func (s *Session) LineConnectivity(ctx context.Context, cfg Config) (*cohesion.Connectivity, error) {
	return observe(ctx, s, "LineConnectivity", cfg, func(ctx context.Context) (*cohesion.Connectivity, error) {
		return cohesion.LineConnectivity(ctx, s.g, cfg.distanceOptions())
	})
}

// Backbone returns the maximum-strength spanning forest.
func (s *Session) Backbone(ctx context.Context, cfg Config) (*cohesion.Backbone, error) {
	return observe(ctx, s, "Backbone", cfg, func(context.Context) (*cohesion.Backbone, error) {
		return cohesion.BackboneOf(s.g, cfg.distanceOptions())
	})
}

// Symmetric reports whether the adjacency matrix equals its transpose.
func (s *Session) Symmetric(ctx context.Context, cfg Config) (bool, error) {
	return observe(ctx, s, "Symmetric", cfg, func(context.Context) (bool, error) {
		return cohesion.Symmetric(s.g, cfg.distanceOptions())
	})
}

// Profile selects the tie vectors compared by the equivalence methods.
type Profile struct {
	Location        equivalence.Location
	IncludeDiagonal bool
}

func (p Profile) options(cfg Config) equivalence.Options {
	return equivalence.Options{
		Location:        p.Location,
		ConsiderWeights: cfg.ConsiderWeights,
		DropIsolates:    cfg.DropIsolates,
		IncludeDiagonal: p.IncludeDiagonal,
	}
}

// Pearson returns the Pearson correlation table of tie profiles.
func (s *Session) Pearson(ctx context.Context, cfg Config, p Profile) (*equivalence.PairTable, error) {
	return observe(ctx, s, "Pearson", cfg, func(context.Context) (*equivalence.PairTable, error) {
		return equivalence.Pearson(s.g, p.options(cfg))
	})
}

// Similarity returns a matching-coefficient table.
func (s *Session) Similarity(ctx context.Context, cfg Config, m equivalence.Measure, p Profile) (*equivalence.PairTable, error) {
	return observe(ctx, s, "Similarity."+m.String(), cfg, func(context.Context) (*equivalence.PairTable, error) {
		return equivalence.Similarity(s.g, m, p.options(cfg))
	})
}

// Dissimilarity returns a tie-profile distance table.
func (s *Session) Dissimilarity(ctx context.Context, cfg Config, m equivalence.Metric, p Profile) (*equivalence.PairTable, error) {
	return observe(ctx, s, "Dissimilarity."+m.String(), cfg, func(context.Context) (*equivalence.PairTable, error) {
		return equivalence.Dissimilarity(s.g, m, p.options(cfg))
	})
}

// Cluster runs hierarchical clustering over table. similarity marks the
// table as larger-is-closer.
func (s *Session) Cluster(ctx context.Context, table *equivalence.PairTable, linkage equivalence.Linkage, similarity bool) (*equivalence.Dendrogram, error) {
	return observe(ctx, s, "Cluster."+linkage.String(), Config{}, func(ctx context.Context) (*equivalence.Dendrogram, error) {
		opts := []equivalence.ClusterOption{equivalence.WithLogger(s.logger), equivalence.WithProgress(s.progress)}
		if similarity {
			opts = append(opts, equivalence.WithSimilarity())
		}

		return equivalence.Cluster(ctx, table, linkage, opts...)
	})
}

// SPDX-License-Identifier: MIT
// File: global.go
// Role: distance summary, walk counts and reachability, delegating to the
//       distance and matrix packages.

package cohesion

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/sna/core"
	"github.com/katalvlaran/sna/distance"
	"github.com/katalvlaran/sna/matrix"
)

// Distances runs one all-pairs computation and summarizes it.
func Distances(ctx context.Context, g *core.Graph, opts distance.Options) (*DistanceSummary, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	res, err := distance.AllPairs(ctx, g, opts)
	if err != nil {
		return nil, fmt.Errorf("Distances: %w", err)
	}

	return Summarize(res)
}

// Summarize derives the summary from an existing distance result.
func Summarize(res *distance.Result) (*DistanceSummary, error) {
	out := &DistanceSummary{
		Eccentricities: res.Eccentricities(),
		Connectedness:  res.Connectedness(),
		Result:         res,
	}
	diam, err := res.Diameter()
	switch {
	case errors.Is(err, distance.ErrUndefined):
		return out, nil
	case err != nil:
		return nil, fmt.Errorf("Summarize: %w", err)
	}
	out.Defined = true
	out.Diameter = diam
	if out.AverageDistance, err = res.AverageDistance(); err != nil {
		return nil, fmt.Errorf("Summarize: %w", err)
	}
	if out.Radius, err = res.Radius(); err != nil {
		return nil, fmt.Errorf("Summarize: %w", err)
	}

	return out, nil
}

// Walks counts walks of length k between every ordered pair.
// Errors: matrix.ErrBadPower for k < 1.
func Walks(g *core.Graph, k int, opts distance.Options) (*matrix.Dense, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	w, err := matrix.Walks(g.View(opts.DropIsolates), k)
	if err != nil {
		return nil, fmt.Errorf("Walks(%d): %w", k, err)
	}

	return w, nil
}

// TotalWalks sums walk counts of every length from 1 to n−1.
// Errors: matrix.ErrTooExpensive unless mopts carries matrix.WithLargeAllowed.
func TotalWalks(ctx context.Context, g *core.Graph, opts distance.Options, mopts ...matrix.Option) (*matrix.Dense, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	w, err := matrix.TotalWalks(ctx, g.View(opts.DropIsolates), mopts...)
	if err != nil {
		return nil, fmt.Errorf("TotalWalks: %w", err)
	}

	return w, nil
}

// Reachability returns the 0/1 reachability matrix of the distance result
// computed under opts, so it always agrees with the distance figures.
func Reachability(ctx context.Context, g *core.Graph, opts distance.Options) (*matrix.Dense, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	res, err := distance.AllPairs(ctx, g, opts)
	if err != nil {
		return nil, fmt.Errorf("Reachability: %w", err)
	}

	return matrix.Reachability(res)
}

// Symmetric reports whether the adjacency matrix of the active relation
// equals its transpose; tie values are compared when opts.ConsiderWeights is set.
func Symmetric(g *core.Graph, opts distance.Options) (bool, error) {
	if g == nil {
		return false, ErrNilGraph
	}
	a, err := matrix.Adjacency(g.View(opts.DropIsolates), opts.ConsiderWeights)
	if err != nil {
		return false, fmt.Errorf("Symmetric: %w", err)
	}

	return matrix.IsSymmetric(a, 0), nil
}

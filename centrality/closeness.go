// SPDX-License-Identifier: MIT
// File: closeness.go
// Role: distance-sum indices: closeness, influence range closeness,
//       eccentricity, power and proximity prestige.

package centrality

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sna/distance"
)

// closeness computes CC(v) = 1/Σ d(v,u) and SCC = (n−1)·CC.
//
// The active vertex set must be Connected (or StronglyConnected); isolates
// only leave it when the caller asked to drop them.
// Errors: ErrRequiresConnectedGraph.
func (r *runner) closeness() (*ScoreSet, error) {
	d, err := r.distances()
	if err != nil {
		return nil, err
	}
	if class := d.Connectedness(); !class.IsConnected() {
		return nil, fmt.Errorf("%w: active vertex set is %s", ErrRequiresConnectedGraph, class)
	}
	s := newSet(d.View)
	n := d.N()
	for i := 0; i < n; i++ {
		var sum float64
		for j := 0; j < n; j++ {
			sum += d.At(i, j)
		}
		if sum > 0 {
			s.Raw[i] = 1 / sum
		}
	}
	if d.Weighted {
		s.standardizeByMax()
	} else if n > 1 {
		s.standardizeBy(1 / float64(n-1))
	}

	return s, nil
}

// reachStats returns, for index i, the number of vertices at finite distance
// and the sum of those distances, following rows (i→j) or columns (j→i).
func reachStats(d *distance.Result, i int, inbound bool) (count int, sum float64) {
	for j := 0; j < d.N(); j++ {
		if j == i {
			continue
		}
		dist := d.At(i, j)
		if inbound {
			dist = d.At(j, i)
		}
		if !math.IsInf(dist, 1) {
			count++
			sum += dist
		}
	}

	return count, sum
}

// rangeRatio is (|J|/(n−1)) / (Σd/|J|), 0 for an empty J.
func rangeRatio(count int, sum float64, n int) float64 {
	if count == 0 || sum == 0 || n < 2 {
		return 0
	}
	c := float64(count)

	return (c / float64(n-1)) / (sum / c)
}

// influenceRange computes IRCC over the vertices each v reaches.
// Defined on every graph; a vertex reaching nobody scores 0.
func (r *runner) influenceRange() (*ScoreSet, error) {
	d, err := r.distances()
	if err != nil {
		return nil, err
	}
	s := newSet(d.View)
	for i := 0; i < d.N(); i++ {
		count, sum := reachStats(d, i, false)
		s.Raw[i] = rangeRatio(count, sum, d.N())
	}
	r.standardizeRatio(s, d)

	return s, nil
}

// proximity computes PP over each v's influence domain (vertices reaching v).
// Errors: ErrUndefinedMetric on undirected graphs.
func (r *runner) proximity() (*ScoreSet, error) {
	directed := r.g.Directed()
	if r.dist != nil {
		directed = r.dist.View.Directed()
	}
	if !directed {
		return nil, fmt.Errorf("%w: proximity prestige needs a directed graph", ErrUndefinedMetric)
	}
	d, err := r.distances()
	if err != nil {
		return nil, err
	}
	s := newSet(d.View)
	for i := 0; i < d.N(); i++ {
		count, sum := reachStats(d, i, true)
		s.Raw[i] = rangeRatio(count, sum, d.N())
	}
	r.standardizeRatio(s, d)

	return s, nil
}

// standardizeRatio keeps ratios already in [0,1] (hop distances ≥ 1) and
// rescales by the maximum when weighted distances can be shorter than 1.
func (r *runner) standardizeRatio(s *ScoreSet, d *distance.Result) {
	if d.Weighted {
		s.standardizeByMax()
		return
	}
	copy(s.Standardized, s.Raw)
}

// eccentricity computes EC(v) = 1/ecc(v), 0 when v reaches nobody.
func (r *runner) eccentricity() (*ScoreSet, error) {
	d, err := r.distances()
	if err != nil {
		return nil, err
	}
	s := newSet(d.View)
	eccs := d.Eccentricities()
	for i, id := range s.Vertices {
		if ecc := eccs[id]; ecc > 0 {
			s.Raw[i] = 1 / ecc
		}
	}
	r.standardizeRatio(s, d)

	return s, nil
}

// power computes the Gil–Schmidt index PC(v) = Σ_{u reachable} 1/d(v,u),
// which equals Σ_k N_k/k over k-th order neighborhoods. SPC divides by the
// size of v's reach set (its component size minus one).
func (r *runner) power() (*ScoreSet, error) {
	d, err := r.distances()
	if err != nil {
		return nil, err
	}
	s := newSet(d.View)
	reach := make([]int, d.N())
	for i := 0; i < d.N(); i++ {
		for j := 0; j < d.N(); j++ {
			if dist := d.At(i, j); j != i && !math.IsInf(dist, 1) && dist > 0 {
				s.Raw[i] += 1 / dist
				reach[i]++
			}
		}
	}
	if d.Weighted {
		s.standardizeByMax()
		return s, nil
	}
	for i, k := range reach {
		if k > 0 {
			s.Standardized[i] = s.Raw[i] / float64(k)
		}
	}

	return s, nil
}

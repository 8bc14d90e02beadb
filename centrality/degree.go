// SPDX-License-Identifier: MIT
// File: degree.go
// Role: degree centrality (outbound ties) and degree prestige (inbound ties).

package centrality

import (
	"github.com/katalvlaran/sna/core"
	"github.com/katalvlaran/sna/dijkstra"
)

// validateTies rejects zero (under inversion) and negative tie values
// before an adjacency-based index reads them.
func (r *runner) validateTies(v *core.View) error {
	if !r.weighted(v) {
		return nil
	}

	return dijkstra.Validate(v, r.opts.InvertWeights)
}

// degree sums tie values per vertex, outbound for centrality and inbound
// for prestige. Self-loops are ignored.
//
// Standardization: DC/(n−1) under the unweighted policy, DC/max otherwise.
// On undirected graphs prestige equals centrality.
// Complexity: O(V + E).
func (r *runner) degree(inbound bool) (*ScoreSet, error) {
	v := r.view()
	if err := r.validateTies(v); err != nil {
		return nil, err
	}
	s := newSet(v)
	n := v.N()
	for i := 0; i < n; i++ {
		arcs := v.Out(i)
		if inbound {
			arcs = v.In(i)
		}
		for _, a := range arcs {
			if a.To == i {
				continue
			}
			s.Raw[i] += r.tieValue(v, a.Weight)
		}
	}
	if r.weighted(v) {
		s.standardizeByMax()
	} else {
		s.standardizeBy(float64(n - 1))
	}

	return s, nil
}

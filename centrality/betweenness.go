// SPDX-License-Identifier: MIT
// File: betweenness.go
// Role: Brandes back-propagation for betweenness and stress centrality.

package centrality

import "fmt"

// betweenness computes BC(v) = Σ_{s≠v≠t} σ_st(v)/σ_st.
// SBC divides by the pairs not involving v: (n−1)(n−2)/2 on undirected
// graphs, (n−1)(n−2) on directed ones.
func (r *runner) betweenness() (*ScoreSet, error) {
	s, err := r.brandes(false)
	if err != nil {
		return nil, err
	}
	n := float64(len(s.Raw))
	pairs := (n - 1) * (n - 2)
	if !s.Directed {
		pairs /= 2
	}
	s.standardizeBy(pairs)

	return s, nil
}

// stress computes SC(v) = Σ_{s≠v≠t} σ_st(v), the raw geodesic count, and
// standardizes by the maximum.
func (r *runner) stress() (*ScoreSet, error) {
	s, err := r.brandes(true)
	if err != nil {
		return nil, err
	}
	s.standardizeByMax()

	return s, nil
}

// brandes accumulates dependencies over every source row.
//
// Implementation:
//   - Stage 1: Walk each row's Order backwards so every successor w is final
//     before its predecessors read it.
//   - Stage 2: Betweenness: δ(u) += σ(u)/σ(w)·(1+δ(w)); add δ(w) to w.
//     Stress: δ(u) += 1+δ(w) counts paths leaving u; add σ(w)·δ(w) to w.
//   - Stage 3: Undirected graphs see every pair twice, so halve.
//
// Progress ticks once per source; ctx is checked between sources.
// Complexity: O(V·E) on top of the distance rows.
func (r *runner) brandes(stress bool) (*ScoreSet, error) {
	d, err := r.distances()
	if err != nil {
		return nil, err
	}
	s := newSet(d.View)
	n := d.N()
	delta := make([]float64, n)
	for src := 0; src < n; src++ {
		if err = r.ctx.Err(); err != nil {
			return nil, fmt.Errorf("brandes: %w", err)
		}
		row := d.Rows[src]
		for i := range delta {
			delta[i] = 0
		}
		for k := len(row.Order) - 1; k >= 0; k-- {
			w := row.Order[k]
			for _, u := range row.Pred[w] {
				if stress {
					delta[u] += 1 + delta[w]
				} else {
					delta[u] += row.Sigma[u] / row.Sigma[w] * (1 + delta[w])
				}
			}
			if w == src {
				continue
			}
			if stress {
				s.Raw[w] += row.Sigma[w] * delta[w]
			} else {
				s.Raw[w] += delta[w]
			}
		}
		r.opts.Progress(src+1, n)
	}
	if !s.Directed {
		for i := range s.Raw {
			s.Raw[i] /= 2
		}
	}

	return s, nil
}

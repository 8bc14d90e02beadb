// SPDX-License-Identifier: MIT
// File: information.go
// Role: Stephenson–Zelen information centrality via matrix inversion.

package centrality

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sna/matrix"
)

// information computes IC over the symmetrized active relation with
// isolates always dropped.
//
// Implementation:
//   - Stage 1: wᵢⱼ = max(value(i→j), value(j→i)); B(i,i) = 1 + Σⱼ wᵢⱼ,
//     B(i,j) = 1 without a tie and 1 − wᵢⱼ with one.
//   - Stage 2: C = B⁻¹ through matrix.Inverse (progress ticks per column).
//   - Stage 3: T = trace(C), Rᵢ = Σⱼ Cᵢⱼ, IC(i) = 1/(Cᵢᵢ + (T − 2Rᵢ)/n),
//     SIC(i) = IC(i)/Σ IC.
//
// B is singular when the remainder splits into several components; that
// surfaces as matrix.ErrSingular.
// Complexity: O(V³).
func (r *runner) information() (*ScoreSet, error) {
	v := r.g.View(true)
	if err := r.validateTies(v); err != nil {
		return nil, err
	}
	s := newSet(v)
	n := v.N()
	if n < 2 {
		return s, nil
	}

	// 1) Symmetrized tie values
	sym := make([][]float64, n)
	for i := range sym {
		sym[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for _, a := range v.Out(i) {
			if a.To == i {
				continue
			}
			w := r.tieValue(v, a.Weight)
			sym[i][a.To] = math.Max(sym[i][a.To], w)
			sym[a.To][i] = math.Max(sym[a.To][i], w)
		}
	}
	b, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		deg := 0.0
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			deg += sym[i][j]
			off := 1.0
			if sym[i][j] != 0 {
				off = 1 - sym[i][j]
			}
			if err = b.Set(i, j, off); err != nil {
				return nil, err
			}
		}
		if err = b.Set(i, i, 1+deg); err != nil {
			return nil, err
		}
	}

	// 2) Inversion
	c, err := matrix.Inverse(b, matrix.WithProgress(r.opts.Progress))
	if err != nil {
		return nil, err
	}

	// 3) Scores
	t := matrix.Trace(c)
	rows := matrix.RowSums(c)
	var total float64
	for i := 0; i < n; i++ {
		cii, _ := c.At(i, i)
		den := cii + (t-2*rows[i])/float64(n)
		if !(den > 0) || math.IsInf(den, 0) {
			return nil, fmt.Errorf("information: vertex %d: %w", v.ID(i), matrix.ErrSingular)
		}
		s.Raw[i] = 1 / den
		total += s.Raw[i]
	}
	s.standardizeBy(total)

	return s, nil
}

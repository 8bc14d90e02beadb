// SPDX-License-Identifier: MIT
// Package matrix: Gaussian elimination with partial pivoting.
//
// Contract:
//   - PA = LU with L unit lower triangular, U upper triangular, P a row permutation.
//   - At each step the row with the largest |pivot| is swapped in; a best pivot
//     below the singular epsilon aborts with ErrSingular.
//   - Ties in pivot magnitude keep the lowest row index (deterministic).

package matrix

import (
	"fmt"
	"math"
)

// LUPDecomposition is a compact PA = LU factorization: the strictly lower
// part of lu holds L (unit diagonal implied), the upper part holds U.
type LUPDecomposition struct {
	n    int
	lu   *Dense
	perm []int   // perm[i] = original row placed at row i
	sign float64 // parity of perm, for Det
}

// LUP factorizes the square matrix m.
//
// Implementation:
//   - Stage 1: Validate square, copy m into a working buffer.
//   - Stage 2: For each column k pick the largest |a(i,k)|, i ≥ k; swap rows.
//   - Stage 3: Store multipliers l(i,k) = a(i,k)/a(k,k) below the diagonal and
//     eliminate the trailing submatrix.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular.
// Complexity: O(n³) time, O(n²) space.
func LUP(m Matrix, opts ...Option) (*LUPDecomposition, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opLUP, err)
	}
	cfg := gatherOptions(opts...)
	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opLUP, err)
	}
	n := src.r
	lu := src.Clone().(*Dense)
	a := lu.data
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sign := 1.0

	for k := 0; k < n; k++ {
		// 1) Partial pivot search.
		p, best := k, math.Abs(a[k*n+k])
		for i := k + 1; i < n; i++ {
			if v := math.Abs(a[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if best <= cfg.singularEps {
			return nil, matrixErrorf(opLUP, fmt.Errorf("pivot %d: |%g| <= %g: %w", k, best, cfg.singularEps, ErrSingular))
		}

		// 2) Row swap.
		if p != k {
			for j := 0; j < n; j++ {
				a[k*n+j], a[p*n+j] = a[p*n+j], a[k*n+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
			sign = -sign
		}

		// 3) Eliminate below the pivot.
		pivot := a[k*n+k]
		for i := k + 1; i < n; i++ {
			f := a[i*n+k] / pivot
			a[i*n+k] = f
			if f == 0 {
				continue
			}
			for j := k + 1; j < n; j++ {
				a[i*n+j] -= f * a[k*n+j]
			}
		}
	}

	return &LUPDecomposition{n: n, lu: lu, perm: perm, sign: sign}, nil
}

// L returns the unit lower-triangular factor.
func (d *LUPDecomposition) L() *Dense {
	out, _ := NewIdentity(d.n)
	for i := 0; i < d.n; i++ {
		for j := 0; j < i; j++ {
			out.data[i*d.n+j] = d.lu.data[i*d.n+j]
		}
	}

	return out
}

// U returns the upper-triangular factor.
func (d *LUPDecomposition) U() *Dense {
	out, _ := NewDense(d.n, d.n)
	for i := 0; i < d.n; i++ {
		for j := i; j < d.n; j++ {
			out.data[i*d.n+j] = d.lu.data[i*d.n+j]
		}
	}

	return out
}

// P returns the permutation matrix with PA = LU.
func (d *LUPDecomposition) P() *Dense {
	out, _ := NewDense(d.n, d.n)
	for i, r := range d.perm {
		out.data[i*d.n+r] = 1
	}

	return out
}

// Det returns the determinant of the factorized matrix.
func (d *LUPDecomposition) Det() float64 {
	det := d.sign
	for i := 0; i < d.n; i++ {
		det *= d.lu.data[i*d.n+i]
	}

	return det
}

// Solve returns x with A·x = b.
// Errors: ErrDimensionMismatch when len(b) != n.
// Complexity: O(n²).
func (d *LUPDecomposition) Solve(b []float64) ([]float64, error) {
	if err := ValidateVecLen(b, d.n); err != nil {
		return nil, matrixErrorf(opLUP, err)
	}
	x := make([]float64, d.n)
	d.solveInto(x, func(i int) float64 { return b[d.perm[i]] })

	return x, nil
}

// solveInto runs forward then backward substitution for the permuted rhs.
func (d *LUPDecomposition) solveInto(x []float64, rhs func(i int) float64) {
	n, a := d.n, d.lu.data
	// Forward: L·y = P·b (unit diagonal).
	for i := 0; i < n; i++ {
		sum := rhs(i)
		for k := 0; k < i; k++ {
			sum -= a[i*n+k] * x[k]
		}
		x[i] = sum
	}
	// Backward: U·x = y.
	for i := n - 1; i >= 0; i-- {
		sum := x[i]
		for k := i + 1; k < n; k++ {
			sum -= a[i*n+k] * x[k]
		}
		x[i] = sum / a[i*n+i]
	}
}

// Inverse returns m⁻¹ via LUP, solving one unit column at a time.
//
// Implementation:
//   - Stage 1: LUP(m); any pivot under the singular epsilon ⇒ ErrSingular.
//   - Stage 2: For each column c solve A·x = e_c and write x into column c,
//     ticking WithProgress after each column.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular.
// Complexity: O(n³) time, O(n²) space.
func Inverse(m Matrix, opts ...Option) (*Dense, error) {
	dec, err := LUP(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	cfg := gatherOptions(opts...)
	n := dec.n
	inv, _ := NewDense(n, n)
	x := make([]float64, n)
	for c := 0; c < n; c++ {
		dec.solveInto(x, func(i int) float64 {
			if dec.perm[i] == c {
				return 1
			}
			return 0
		})
		for i := 0; i < n; i++ {
			if math.IsNaN(x[i]) || math.IsInf(x[i], 0) {
				return nil, matrixErrorf(opInverse, ErrSingular)
			}
			inv.data[i*n+c] = x[i]
		}
		cfg.progress(c+1, n)
	}

	return inv, nil
}

// SPDX-License-Identifier: MIT
// Package matrix: elementwise and product kernels.
//
// Contract:
//   - Inputs are never mutated; every kernel allocates a fresh *Dense.
//   - *Dense operands take a flat-slice fast path; other Matrix
//     implementations are copied through At first.
//   - Loop orders are fixed, so results are bit-for-bit reproducible.

package matrix

import "math"

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res, _ := NewDense(da.r, da.c)
	for k := range res.data {
		res.data[k] = da.data[k] + sign*db.data[k]
	}

	return res, nil
}

// Add returns a + b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub returns a − b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul returns the product a·b.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible; allocate Dense(a.Rows, b.Cols).
//   - Stage 2: i→k→j loop over flat buffers, skipping zero entries of a
//     (adjacency matrices are mostly zeros).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(n·m·p).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := da.r, da.c, db.c
	res, _ := NewDense(aRows, bCols)
	var rowA, rowB, rowR int
	for i := 0; i < aRows; i++ {
		rowA = i * aCols
		rowR = i * bCols
		for k := 0; k < aCols; k++ {
			av := da.data[rowA+k]
			if av == 0 {
				continue
			}
			rowB = k * bCols
			for j := 0; j < bCols; j++ {
				res.data[rowR+j] += av * db.data[rowB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns mᵀ.
// Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res, _ := NewDense(dm.c, dm.r)
	for i := 0; i < dm.r; i++ {
		for j := 0; j < dm.c; j++ {
			res.data[j*dm.r+i] = dm.data[i*dm.c+j]
		}
	}

	return res, nil
}

// Scale returns alpha·m.
// Complexity: O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, _ := NewDense(dm.r, dm.c)
	for k, v := range dm.data {
		res.data[k] = alpha * v
	}

	return res, nil
}

// MatVec returns y = m·x.
// Errors: ErrNilMatrix, ErrDimensionMismatch when len(x) != m.Cols().
// Complexity: O(r*c).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]float64, dm.r)
	for i := 0; i < dm.r; i++ {
		var sum float64
		base := i * dm.c
		for j, xj := range x {
			sum += dm.data[base+j] * xj
		}
		y[i] = sum
	}

	return y, nil
}

// RowSums returns Σ_j m(i,j) for every row i.
func RowSums(m *Dense) []float64 {
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out[i] += m.data[i*m.c+j]
		}
	}

	return out
}

// ColSums returns Σ_i m(i,j) for every column j.
func ColSums(m *Dense) []float64 {
	out := make([]float64, m.c)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out[j] += m.data[i*m.c+j]
		}
	}

	return out
}

// Trace returns Σ m(i,i) over the leading diagonal.
func Trace(m *Dense) float64 {
	var t float64
	for i := 0; i < m.r && i < m.c; i++ {
		t += m.data[i*m.c+i]
	}

	return t
}

// IsSymmetric reports whether m equals its transpose within tol.
func IsSymmetric(m *Dense, tol float64) bool {
	if m.r != m.c {
		return false
	}
	for i := 0; i < m.r; i++ {
		for j := i + 1; j < m.c; j++ {
			if math.Abs(m.data[i*m.c+j]-m.data[j*m.c+i]) > tol {
				return false
			}
		}
	}

	return true
}

// AllClose reports whether |a−b| ≤ atol + rtol·|b| elementwise.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for k := range da.data {
		if math.Abs(da.data[k]-db.data[k]) > atol+rtol*math.Abs(db.data[k]) {
			return false, nil
		}
	}

	return true, nil
}

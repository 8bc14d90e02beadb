// SPDX-License-Identifier: MIT
// Package matrix: matrices derived from a core.View.
//
// Contract:
//   - Row/column i corresponds to v.ID(i) (ascending vertex id).
//   - Undirected views produce symmetric matrices because core mirrors ties.
//   - weighted=false writes 1 for every tie regardless of its value.

package matrix

import (
	"math"

	"github.com/katalvlaran/sna/core"
	"github.com/katalvlaran/sna/distance"
)

// Adjacency returns A with A(i,j) = w(i→j), or 1 per tie when weighted is false.
// Complexity: O(n² + E).
func Adjacency(v *core.View, weighted bool) (*Dense, error) {
	if v == nil {
		return nil, matrixErrorf(opAdjacency, ErrNilInput)
	}
	n := v.N()
	a, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opAdjacency, err)
	}
	for i := 0; i < n; i++ {
		for _, arc := range v.Out(i) {
			if weighted {
				a.data[i*n+arc.To] = arc.Weight
			} else {
				a.data[i*n+arc.To] = 1
			}
		}
	}

	return a, nil
}

// Degree returns the diagonal matrix of (weighted) out-degrees.
// On undirected views this is the ordinary degree.
func Degree(v *core.View, weighted bool) (*Dense, error) {
	a, err := Adjacency(v, weighted)
	if err != nil {
		return nil, err
	}
	n := a.r
	d, _ := NewDense(n, n)
	for i, s := range RowSums(a) {
		d.data[i*n+i] = s
	}

	return d, nil
}

// Laplacian returns L = D − A.
func Laplacian(v *core.View, weighted bool) (*Dense, error) {
	a, err := Adjacency(v, weighted)
	if err != nil {
		return nil, err
	}
	n := a.r
	l, _ := Scale(a, -1)
	for i, s := range RowSums(a) {
		l.data[i*n+i] += s
	}

	return l, nil
}

// Cocitation returns C = A·Aᵀ; C(i,j) counts (or weighs) the out-neighbors
// that i and j share. Symmetric by construction.
func Cocitation(a Matrix) (*Dense, error) {
	at, err := Transpose(a)
	if err != nil {
		return nil, matrixErrorf(opCocitation, err)
	}
	c, err := Mul(a, at)
	if err != nil {
		return nil, matrixErrorf(opCocitation, err)
	}

	return c, nil
}

// Reachability returns R with R(i,j) = 1 when res reports a finite i→j
// distance (always on the diagonal), 0 otherwise. Derived from res only,
// so it can never disagree with the distance engine.
func Reachability(res *distance.Result) (*Dense, error) {
	if res == nil {
		return nil, matrixErrorf(opReachability, ErrNilInput)
	}
	n := res.N()
	r, _ := NewDense(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || !math.IsInf(res.At(i, j), 1) {
				r.data[i*n+j] = 1
			}
		}
	}

	return r, nil
}

// AdjacencyInverse returns A⁻¹ or ErrSingular.
func AdjacencyInverse(v *core.View, weighted bool, opts ...Option) (*Dense, error) {
	a, err := Adjacency(v, weighted)
	if err != nil {
		return nil, err
	}

	return Inverse(a, opts...)
}

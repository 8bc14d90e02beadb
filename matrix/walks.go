// SPDX-License-Identifier: MIT
// Package matrix: walk counting by repeated multiplication.

package matrix

import (
	"context"
	"fmt"

	"github.com/katalvlaran/sna/core"
)

// Power returns aᵏ using exactly k−1 multiplications.
// Errors: ErrNonSquare, ErrBadPower for k < 1.
// Complexity: O(k·n³).
func Power(a Matrix, k int) (*Dense, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opPower, err)
	}
	if k < 1 {
		return nil, matrixErrorf(opPower, fmt.Errorf("k=%d: %w", k, ErrBadPower))
	}
	base, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opPower, err)
	}
	acc := base.Clone().(*Dense)
	for step := 1; step < k; step++ {
		if acc, err = Mul(acc, base); err != nil {
			return nil, matrixErrorf(opPower, err)
		}
	}

	return acc, nil
}

// Walks returns the number of walks of length k between every ordered pair,
// i.e. the k-th power of the 0/1 adjacency matrix.
func Walks(v *core.View, k int) (*Dense, error) {
	a, err := Adjacency(v, false)
	if err != nil {
		return nil, matrixErrorf(opWalks, err)
	}
	w, err := Power(a, k)
	if err != nil {
		return nil, matrixErrorf(opWalks, err)
	}

	return w, nil
}

// TotalWalks returns Σ_{k=1}^{n−1} Aᵏ over the 0/1 adjacency matrix.
//
// Implementation:
//   - Stage 1: n > LargeWalkThreshold requires WithLargeAllowed, else ErrTooExpensive;
//     when allowed, a warning goes to the configured logger.
//   - Stage 2: Multiply P ← P·A n−2 times, adding each power into the sum.
//     ctx is checked between multiplications only; progress ticks once per power.
//
// Errors: ErrTooExpensive, ctx.Err() (wrapped).
// Complexity: O(n⁴) time, O(n²) space.
func TotalWalks(ctx context.Context, v *core.View, opts ...Option) (*Dense, error) {
	cfg := gatherOptions(opts...)
	a, err := Adjacency(v, false)
	if err != nil {
		return nil, matrixErrorf(opTotalWalks, err)
	}
	n := a.r
	if n > LargeWalkThreshold {
		if !cfg.largeAllowed {
			return nil, matrixErrorf(opTotalWalks, fmt.Errorf("n=%d > %d: %w", n, LargeWalkThreshold, ErrTooExpensive))
		}
		cfg.logger.WarnContext(ctx, "total walks on a large graph", "n", n, "multiplications", n-2)
	}

	total, _ := NewDense(n, n)
	if n < 2 {
		return total, nil
	}
	steps := n - 1
	power := a
	for k := 1; k <= steps; k++ {
		if k > 1 {
			if err = ctx.Err(); err != nil {
				return nil, matrixErrorf(opTotalWalks, err)
			}
			if power, err = Mul(power, a); err != nil {
				return nil, matrixErrorf(opTotalWalks, err)
			}
		}
		for i, x := range power.data {
			total.data[i] += x
		}
		cfg.progress(k, steps)
	}

	return total, nil
}

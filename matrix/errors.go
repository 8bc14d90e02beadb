// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." for consistency. Kernels wrap
// with fmt.Errorf("Op: %w", ErrX); callers match with errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrSingular is returned when elimination meets a pivot below the singular epsilon.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrTooExpensive guards TotalWalks on large graphs without WithLargeAllowed.
	ErrTooExpensive = errors.New("matrix: operation too expensive without confirmation")

	// ErrBadPower indicates a walk length or matrix power below 1.
	ErrBadPower = errors.New("matrix: power must be >= 1")

	// ErrNilInput indicates a nil view or distance result passed to a graph adapter.
	ErrNilInput = errors.New("matrix: nil input")
)

// Operation name constants for unified error wrapping.
const (
	opAdd          = "Add"
	opSub          = "Sub"
	opMul          = "Mul"
	opTranspose    = "Transpose"
	opScale        = "Scale"
	opMatVec       = "MatVec"
	opLUP          = "LUP"
	opInverse      = "Inverse"
	opPower        = "Power"
	opWalks        = "Walks"
	opTotalWalks   = "TotalWalks"
	opAdjacency    = "Adjacency"
	opCocitation   = "Cocitation"
	opReachability = "Reachability"
	opAllClose     = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Call only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

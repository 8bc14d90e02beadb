// SPDX-License-Identifier: MIT

package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Each method enforces bounds checking and returns errors on misuse.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at (i, j); ErrOutOfRange on invalid indices.
	At(i, j int) (float64, error)

	// Set assigns v at (i, j); ErrOutOfRange on invalid indices.
	Set(i, j int, v float64) error

	// Clone returns an independent deep copy.
	Clone() Matrix
}

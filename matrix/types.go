// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix interface.
// Kernels accept any Matrix and take flat fast-paths when both operands are
// *Dense; the generic path goes through At/Set in fixed i→j order.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix never shares storage with the original.
	Clone() Matrix
}

// releaser is implemented by matrices with an explicit ownership lifecycle.
type releaser interface {
	Released() bool
}

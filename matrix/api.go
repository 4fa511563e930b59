// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.

package matrix

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything. Time: O(r*c). Space: O(1).
//
// Policy:
//   - a and b must be usable and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// Equal reports whether a and b have the same shape and bitwise-equal
// elements (NaN never equals NaN). Shape differences return (false, nil).
func Equal(a, b Matrix) (bool, error) {
	return ewEqual(a, b)
}

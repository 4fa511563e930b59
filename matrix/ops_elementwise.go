// SPDX-License-Identifier: MIT
// Package matrix - element-wise comparison kernels.
//
// Purpose:
//   - Private kernels behind AllClose and Equal; public facades live in api.go.
//   - Deterministic row-major scans with early exit on the first difference.

package matrix

import (
	"fmt"
	"math"
)

// ewAllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Time: O(r*c). Space: O(1). Deterministic.
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, fmt.Errorf("tolerance rtol=%v atol=%v: %w", rtol, atol, ErrOutOfRange))
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	r, c := a.Rows(), a.Cols()
	within := func(av, bv float64) bool {
		return math.Abs(av-bv) <= atol+rtol*math.Abs(bv)
	}

	// Dense fast-path: operate over flat slices when both are *Dense.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := 0; idx < r*c; idx++ {
				if !within(da.data[idx], db.data[idx]) {
					return false, nil // early-exit on first violation
				}
			}

			return true, nil
		}
	}

	var av, bv float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if !within(av, bv) {
				return false, nil
			}
		}
	}

	return true, nil
}

// ewEqual is the exact-comparison kernel behind Equal.
func ewEqual(a, b Matrix) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false, nil
	}

	var av, bv float64
	var err error
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opEqual, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opEqual, err)
			}
			if av != bv {
				return false, nil
			}
		}
	}

	return true, nil
}

// SPDX-License-Identifier: MIT

package matrix

// Determinant computes det(m) by recursive cofactor expansion along the first row.
// MAIN DESCRIPTION:
//   - Exact textbook definition; no pivoting, no LU.
//
// Implementation:
//   - Stage 1: ValidateSquare(m).
//   - Stage 2: base cases: 0×0 → 1 (empty product), 1×1 → m[0,0], 2×2 → ad − bc.
//   - Stage 3: for c = 0..n-1 build the (n-1)×(n-1) minor without row 0 and
//     column c (Dense.Induced), recurse, accumulate sign*m[0,c]*det(minor)
//     with sign = +1 for even c and −1 for odd c, then release the minor.
//
// Behavior highlights:
//   - Integer-valued inputs of small n produce exact integer results.
//   - Every minor allocated during recursion is released before the next one.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrNonSquare (also matches ErrDimensionMismatch).
//
// Complexity:
//   - Time O(n!), Space O(n²) live at any recursion depth.
//     Only suitable for small matrices (n ≲ 10).
func Determinant(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	d, tmp, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	if tmp {
		defer func() { _ = d.Release() }()
	}

	det, err := cofactorDet(d)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return det, nil
}

// cofactorDet is the recursive kernel behind Determinant; d is square and live.
func cofactorDet(d *Dense) (float64, error) {
	n := d.r
	switch n {
	case 0:
		return 1, nil
	case 1:
		return d.data[0], nil
	case 2:
		return d.data[0]*d.data[3] - d.data[1]*d.data[2], nil
	}

	// Rows 1..n-1 are shared by every minor.
	rowsIdx := make([]int, n-1)
	for i := range rowsIdx {
		rowsIdx[i] = i + 1
	}
	colsIdx := make([]int, n-1)

	var det, sign float64
	var c, j, sub int
	for c = 0; c < n; c++ {
		sub = 0
		for j = 0; j < n; j++ {
			if j == c {
				continue
			}
			colsIdx[sub] = j
			sub++
		}
		minor, err := d.Induced(rowsIdx, colsIdx)
		if err != nil {
			return 0, err
		}
		minorDet, err := cofactorDet(minor)
		_ = minor.Release()
		if err != nil {
			return 0, err
		}

		sign = 1
		if c%2 == 1 {
			sign = -1
		}
		det += sign * d.data[c] * minorDet
	}

	return det, nil
}

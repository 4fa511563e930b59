// SPDX-License-Identifier: MIT
// Package matrix provides value-semantic operations on any Matrix implementation:
// element-wise addition and subtraction, matrix multiplication, transpose and
// deep copy. All functions perform strict fail-fast validation and return
// clear errors on dimension mismatches.
//
// Purpose:
//   - Define the canonical arithmetic kernels and their operation tags.
//   - Every kernel allocates a fresh *Dense result; operands are neither
//     mutated nor retained after the call.
//
// Notes:
//   - Validation always happens before allocation; on error the result is nil.

package matrix

import "fmt"

// ZeroSum is the initial value of every dot-product accumulator in Mul.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opCopy        = "Copy"
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opDeterminant = "Determinant"
	opAllClose    = "AllClose"
	opEqual       = "Equal"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asDense returns m as a *Dense, copying through At when m is another implementation.
// The boolean reports whether a temporary copy was made (the caller releases it).
func asDense(m Matrix) (*Dense, bool, error) {
	if d, ok := m.(*Dense); ok {
		return d, false, nil
	}
	rows, cols := m.Rows(), m.Cols()
	d, err := NewDense(rows, cols)
	if err != nil {
		return nil, false, err
	}
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, false, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			d.data[i*cols+j] = v
		}
	}

	return d, true, nil
}

// Copy returns an independent deep copy of m as a fresh *Dense.
// Mutating the copy never affects m and vice versa.
//
// Errors:
//   - ErrNilMatrix, ErrReleased.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Copy(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opCopy, err)
	}
	if d, ok := m.(*Dense); ok {
		return d.clone(), nil
	}
	d, _, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opCopy, err)
	}

	return d, nil
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation, and fast-path.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At/Set with fixed i→j order.
//
// Errors:
//   - ErrNilMatrix / ErrReleased (operand not usable).
//   - ErrDimensionMismatch (shapes differ).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			length := rows * cols
			for idx := 0; idx < length; idx++ {
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: Validate A,B (usable) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: For each (i,j) accumulate sum = 0.0; sum += A[i,k]*B[k,j]
//     for k = 0..n-1 in strict ascending order.
//
// Behavior highlights:
//   - The accumulation order is fixed and identical on the *Dense fast path
//     and the generic path, so results are bit-reproducible across both.
//   - No zero-skipping: 0*Inf still yields NaN as IEEE-754 requires.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - *Dense C with shape (r × c). n == 0 yields an all-zero r×c result.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k int
		av, bv  float64
		sum     float64
	)

	// Fast-path for two Dense matrices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k; db.data layout: k*bCols + j
			var rowOffsetA int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				for j = 0; j < bCols; j++ {
					sum = ZeroSum
					for k = 0; k < aCols; k++ {
						sum += da.data[rowOffsetA+k] * db.data[k*bCols+j]
					}
					res.data[i*bCols+j] = sum
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k).
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			sum = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				sum += av * bv
			}
			res.data[i*bCols+j] = sum
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated; there is no shape constraint, and an
// empty r×0 input yields an empty 0×r result.
//
// Errors:
//   - ErrNilMatrix, ErrReleased.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (optionally wrapped with
// context) and tests MUST check them via errors.Is. No kernel panics on
// user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap these with an operation tag via
// matrixErrorf; callers still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil/released -> shape -> index -> allocation.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	// Zero rows or zero columns are legal and produce an empty matrix.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	// It wraps ErrDimensionMismatch, so errors.Is matches both sentinels.
	ErrNonSquare = fmt.Errorf("%w: matrix must be square", ErrDimensionMismatch)

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrReleased indicates use of a matrix after Release, or a second Release.
	ErrReleased = errors.New("matrix: matrix already released")

	// ErrAllocation indicates that backing storage for rows*cols elements
	// cannot be represented (element count overflows int).
	ErrAllocation = errors.New("matrix: cannot allocate backing storage")
)

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.

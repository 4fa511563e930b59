// SPDX-License-Identifier: MIT

// Package matrix is a small dense linear-algebra engine over float64.
//
// The package provides:
//
//   - Dense, a row-major matrix backed by a single contiguous buffer
//     (offset = i*cols + j) with bounds-checked At/Set.
//   - Value-semantic kernels: Add, Sub, Mul, Transpose and Copy always return
//     a freshly allocated *Dense; operands are never mutated or retained.
//   - Determinant via first-row cofactor expansion (O(n!), small n only).
//   - An explicit ownership lifecycle: every matrix is released exactly once
//     through Release, and use-after-release or double release is reported
//     as ErrReleased instead of being silently ignored.
//
// Shape violations are detected before any allocation and returned as
// sentinel errors (ErrDimensionMismatch, ErrNonSquare, ...) wrapped with the
// operation name, so callers match them with errors.Is and decide on their
// own whether to recover or abort.
//
// Text load/save and printing live in the sibling package matrixio.
package matrix

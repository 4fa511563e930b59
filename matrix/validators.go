// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/lifecycle/shape checks here.
//  - Every check runs before any allocation, so a failing kernel never
//    produces a partial result.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and O(1).
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).
//  - Shape errors carry both shapes in the message for diagnostics.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is usable.
//
// Inputs: Matrix interface value.
// Returns ErrNilMatrix for nil (including a typed nil *Dense) and
// ErrReleased for a matrix whose storage was already released.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if r, ok := m.(releaser); ok && r.Released() {
		return validatorErrorf("ValidateNotNil", ErrReleased)
	}

	return nil
}

// ValidateSameShape – Ensures matrices a and b have equal dimensions.
//
// Implementation: Assumes a and b are usable (caller must ensure).
// Return: nil or wrapped ErrDimensionMismatch naming both shapes.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape",
			fmt.Errorf("%dx%d vs %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch))
	}

	return nil
}

// ValidateSquare checks that m is usable and square (Rows == Cols).
//
// Errors: ErrNilMatrix/ErrReleased, ErrNonSquare (matches ErrDimensionMismatch too).
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", fmt.Errorf("%dx%d: %w", m.Rows(), m.Cols(), ErrNonSquare))
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
//
// Errors: ErrNilMatrix, ErrReleased and ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateMulCompatible – Composite: NotNil(a) → NotNil(b) → a.Cols == b.Rows.
//
// Errors: ErrNilMatrix, ErrReleased and ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible",
			fmt.Errorf("%dx%d * %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch))
	}

	return nil
}

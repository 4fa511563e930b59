// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matcalc/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateBinarySameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateBinarySameShape(t *testing.T) {
	t.Parallel()

	dense := func(r, c int) matrix.Matrix { return MustDense(t, r, c) }
	released := MustDense(t, 2, 2)
	MustRelease(t, released)

	tests := []struct {
		name    string
		a, b    matrix.Matrix
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, dense(2, 2), matrix.ErrNilMatrix},
		{"second nil", dense(2, 2), nil, matrix.ErrNilMatrix},
		{"released", released, dense(2, 2), matrix.ErrReleased},
		{"equal 2x3", dense(2, 3), dense(2, 3), nil},
		{"equal empty", dense(0, 3), dense(0, 3), nil},
		{"row mismatch", dense(2, 3), dense(3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", dense(2, 3), dense(2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateBinarySameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestValidateSquare covers nil inputs, square and non-square cases.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		m    matrix.Matrix
		want error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"0x0", MustDense(t, 0, 0), nil},
		{"3x3", MustDense(t, 3, 3), nil},
		{"2x3", MustDense(t, 2, 3), matrix.ErrNonSquare},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSquare(tc.m)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestValidateMulCompatible checks the inner-dimension rule.
func TestValidateMulCompatible(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 3, 5)))
	require.NoError(t, matrix.ValidateMulCompatible(MustDense(t, 2, 0), MustDense(t, 0, 5)))
	require.ErrorIs(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 2, 3)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), nil), matrix.ErrNilMatrix)
}

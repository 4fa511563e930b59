// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/matcalc/matrix"
	"github.com/stretchr/testify/require"
)

// tol is the absolute tolerance used by property tests.
const tol = 1e-6

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the generic (non-*Dense) kernel paths.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// NewFilledDense BUILDS r×c *Dense from a row-major flat slice.
// Prefer for small exact-equality tests.
func NewFilledDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, vals)
	require.NoError(t, err, "NewDenseFrom(%d,%d)", r, c)

	return m
}

// RandFilledDense RETURNS a new r×c Dense filled with deterministic U(-1,1).
// Deterministic per seed; use identical seeds across fast vs fallback paths.
func RandFilledDense(t *testing.T, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustDense(t, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(t, m.Set(i, j, rng.Float64()*2-1))
		}
	}

	return m
}

// MustAt READS m(i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// RequireClose ASSERTS identical shapes and |a-b| ≤ atol element-wise.
func RequireClose(t *testing.T, want, got matrix.Matrix, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, 0, atol)
	require.NoError(t, err)
	require.Truef(t, ok, "matrices differ beyond %g:\nwant\n%v\ngot\n%v", atol, want, got)
}

// RequireEqual ASSERTS identical shapes and bitwise-equal elements.
func RequireEqual(t *testing.T, want, got matrix.Matrix) {
	t.Helper()
	ok, err := matrix.Equal(got, want)
	require.NoError(t, err)
	require.Truef(t, ok, "matrices differ:\nwant\n%v\ngot\n%v", want, got)
}

// MustRelease RELEASES m or fails the test.
func MustRelease(t *testing.T, m *matrix.Dense) {
	t.Helper()
	require.NoError(t, m.Release())
}

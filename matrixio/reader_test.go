// SPDX-License-Identifier: MIT
package matrixio_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/katalvlaran/matcalc/matrix"
	"github.com/katalvlaran/matcalc/matrixio"
	"github.com/stretchr/testify/require"
)

// writeFile CREATES a file with content under t.TempDir and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

// requireValues ASSERTS shape and row-major contents of m.
func requireValues(t *testing.T, m *matrix.Dense, rows, cols int, vals []float64) {
	t.Helper()
	require.Equal(t, rows, m.Rows())
	require.Equal(t, cols, m.Cols())
	for i := 0; i < rows; i++ {
		row, err := m.RawRow(i)
		require.NoError(t, err)
		require.Equal(t, vals[i*cols:(i+1)*cols], row)
	}
}

func TestReadWhitespaceLenient(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"canonical", "2 3\n1.0 2.0 3.0\n4.0 5.0 6.0\n"},
		{"single line", "2 3 1 2 3 4 5 6"},
		{"one per line", "2\n3\n1\n2\n3\n4\n5\n6\n"},
		{"tabs and blank lines", "\n\t2\t3\n\n1 2\t3\r\n4  5 6  \n"},
		{"trailing tokens ignored", "2 3\n1 2 3\n4 5 6\n7 8 9\n"},
		{"exponent form", "2 3\n1e0 2.0E0 3\n+4 5.000000 6\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrixio.Read(strings.NewReader(tc.in))
			require.NoError(t, err)
			requireValues(t, m, 2, 3, []float64{1, 2, 3, 4, 5, 6})
		})
	}
}

func TestReadEmptyShapes(t *testing.T) {
	m, err := matrixio.Read(strings.NewReader("0 0\n"))
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 0, m.Cols())

	m, err = matrixio.Read(strings.NewReader("3 0"))
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 0, m.Cols())
}

func TestReadParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"only rows", "2"},
		{"non-integer rows", "two 3\n"},
		{"fractional cols", "2 3.5\n"},
		{"negative rows", "-1 3\n"},
		{"short content", "2 3\n1 2 3\n4 5\n"},
		{"bad element", "2 2\n1 2\nx 4\n"},
		{"digit separator", "1 1\n1_000\n"},
		{"overflowing header", "9223372036854775807 9223372036854775807\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrixio.Read(strings.NewReader(tc.in))
			require.ErrorIs(t, err, matrixio.ErrParse)
			require.Nil(t, m)
		})
	}
}

func TestReadIOError(t *testing.T) {
	_, err := matrixio.Read(iotest.ErrReader(iotest.ErrTimeout))
	require.ErrorIs(t, err, matrixio.ErrIO)
	require.ErrorIs(t, err, iotest.ErrTimeout)
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "m.txt", "2 2\n1.5 -2.25\n0 1e3\n")
	m, err := matrixio.Load(path)
	require.NoError(t, err)
	requireValues(t, m, 2, 2, []float64{1.5, -2.25, 0, 1000})
}

func TestLoadTruncated(t *testing.T) {
	path := writeFile(t, "short.txt", "2 3\n1 2 3\n4 5\n")
	m, err := matrixio.Load(path)
	require.ErrorIs(t, err, matrixio.ErrParse)
	require.Nil(t, m)
	require.ErrorContains(t, err, "element 5 of 6")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := matrixio.Load(filepath.Join(t.TempDir(), "absent.txt"))
	require.ErrorIs(t, err, matrixio.ErrIO)
	require.ErrorIs(t, err, fs.ErrNotExist)
}

// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Track ownership: a Dense is released exactly once; later use reports ErrReleased.
//   - Support copy-based submatrix extraction (Induced), used for determinant minors.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Induced: O(r'*c'); Release: O(1).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"      // method tag used in error wrappers
	ctxSet     = "Set"     // method tag used in error wrappers
	ctxInduce  = "Induced" // ctor/tag for Dense.Induced
	ctxRelease = "Release" // lifecycle tag
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): <sentinel>"; the sentinel is preserved via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); both may be zero.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - released marks that the owner gave the storage back; data is nil afterwards.
type Dense struct {
	r, c     int       // row and column counts (>=0)
	data     []float64 // contiguous row-major storage (len == r*c)
	released bool      // set once by Release
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with shape validation.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: guard rows*cols against int overflow; else ErrAllocation.
//   - Stage 3: allocate zero-filled buffer.
//
// Behavior highlights:
//   - 0×N, N×0 and 0×0 are legal and hold no elements.
//   - No panics on user errors; returns sentinel errors.
//
// Errors:
//   - ErrInvalidDimensions (negative dimension).
//   - ErrAllocation (element count not representable).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	if rows != 0 && cols > math.MaxInt/rows {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrAllocation)
	}

	// make() zero-fills deterministically; a zero-length buffer is fine for empty shapes.
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFrom creates an r×c matrix holding a copy of data (row-major).
// len(data) must equal rows*cols; otherwise ErrDimensionMismatch.
// The caller keeps ownership of data; later writes to it do not affect the result.
// Complexity: O(r*c).
func NewDenseFrom(rows, cols int, data []float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("NewDenseFrom(%d,%d): got %d values: %w", rows, cols, len(data), ErrDimensionMismatch)
	}
	copy(m.data, data)

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Released reports whether Release has been called on m.
func (m *Dense) Released() bool { return m.released }

// indexOf computes the row-major offset or returns a plain sentinel.
// MAIN DESCRIPTION:
//   - Check lifecycle, bounds-check (row,col) and compute flat offset.
//
// Implementation:
//   - Stage 1: reject released storage (ErrReleased).
//   - Stage 2: validate 0 ≤ row < m.r and 0 ≤ col < m.c.
//   - Stage 3: compute row*m.c + col.
//
// Returns:
//   - (offset, nil) on success; (0, sentinel) otherwise. Public methods wrap
//     with coordinates and method name.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if m.released {
		return 0, ErrReleased
	}
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns a wrapped sentinel instead.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange / ErrReleased.
// Direct element assignment is the only in-place mutation the package offers.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same shape).
// MAIN DESCRIPTION:
//   - Produce an independent Dense with identical shape/data.
//
// Behavior highlights:
//   - Independence: mutations of either side never reach the other.
//   - Cloning a released matrix yields an empty released-shape copy with no
//     storage; kernels reject it earlier through ValidateNotNil.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Clone() Matrix {
	return m.clone()
}

// clone is the typed form of Clone used inside the package.
func (m *Dense) clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp, released: m.released}
}

// Release gives the backing storage back. It must be called exactly once per
// matrix value; a second call returns ErrReleased.
// After Release the matrix reports a 0×0 shape and every accessor fails.
// Complexity: O(1).
func (m *Dense) Release() error {
	if m == nil {
		return fmt.Errorf("Dense.%s: %w", ctxRelease, ErrNilMatrix)
	}
	if m.released {
		return fmt.Errorf("Dense.%s: %w", ctxRelease, ErrReleased)
	}
	m.data = nil
	m.r, m.c = 0, 0
	m.released = true

	return nil
}

// RawRow returns a copy of row i. Intended for serializers that stream rows.
// Complexity: O(c).
func (m *Dense) RawRow(i int) ([]float64, error) {
	if m.released {
		return nil, fmt.Errorf("Dense.RawRow(%d): %w", i, ErrReleased)
	}
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Dense.RawRow(%d): %w", i, ErrOutOfRange)
	}
	row := make([]float64, m.c)
	copy(row, m.data[i*m.c:(i+1)*m.c])

	return row, nil
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write values into strings.Builder with standard delimiters.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Induced materializes a copy submatrix using explicit index sets.
// MAIN DESCRIPTION:
//   - Copy rows/cols at the given index lists (duplicates allowed).
//
// Implementation:
//   - Stage 1: allocate result via NewDense (zero-area is legal).
//   - Stage 2: nested loops with direct offset math; bounds-check each index.
//
// Errors:
//   - ErrReleased (source released), ErrOutOfRange (index outside bounds).
//
// Determinism:
//   - Fixed nested loops i→j.
//
// Complexity:
//   - Time O(rp*cp), Space O(rp*cp).
func (m *Dense) Induced(rowsIdx, colsIdx []int) (*Dense, error) {
	if m.released {
		return nil, fmt.Errorf("Dense.%s: %w", ctxInduce, ErrReleased)
	}
	rp := len(rowsIdx) // result rows
	cp := len(colsIdx) // result cols
	res, err := NewDense(rp, cp)
	if err != nil {
		return nil, err
	}

	var i, j int
	var ri, cj int
	for i = 0; i < rp; i++ {
		ri = rowsIdx[i]
		if ri < 0 || ri >= m.r {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxInduce, ri, ErrOutOfRange)
		}
		for j = 0; j < cp; j++ {
			cj = colsIdx[j]
			if cj < 0 || cj >= m.c {
				return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, cj, ErrOutOfRange)
			}
			res.data[i*cp+j] = m.data[ri*m.c+cj]
		}
	}

	return res, nil
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Read-only visitor; stops early when f returns false. A released matrix is
// visited as empty.
// Complexity: O(r*c), no allocations.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

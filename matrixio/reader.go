// SPDX-License-Identifier: MIT

package matrixio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/matcalc/matrix"
)

// preallocCap bounds the element slice reserved up-front from the header, so
// a hostile header cannot force a huge allocation before any element is read.
const preallocCap = 1 << 16

// Load reads a matrix from the text file at path.
//
// Errors:
//   - ErrIO when the file cannot be opened or read.
//   - ErrParse for a bad header or fewer than rows*cols valid elements.
func Load(path string) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Load(%q): %w: %w", path, ErrIO, err)
	}
	defer f.Close()

	m, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("Load(%q): %w", path, err)
	}

	return m, nil
}

// Read parses one matrix from r. Tokens may be separated by any mix of
// spaces, tabs and newlines. Tokens after the last declared element are not
// consumed.
//
// Implementation:
//   - Stage 1: read "rows cols" as two non-negative integers.
//   - Stage 2: read rows*cols float tokens into a scratch slice.
//   - Stage 3: build the matrix only after every element parsed.
func Read(r io.Reader) (*matrix.Dense, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	rows, err := readDim(sc, "rows")
	if err != nil {
		return nil, err
	}
	cols, err := readDim(sc, "cols")
	if err != nil {
		return nil, err
	}
	if rows != 0 && cols > math.MaxInt/rows {
		return nil, fmt.Errorf("header %dx%d: %w: %w", rows, cols, ErrParse, matrix.ErrAllocation)
	}

	n := rows * cols
	vals := make([]float64, 0, min(n, preallocCap))
	for len(vals) < n {
		tok, err := nextToken(sc)
		if err != nil {
			return nil, fmt.Errorf("element %d of %d: %w", len(vals), n, err)
		}
		v, err := parseElement(tok)
		if err != nil {
			return nil, fmt.Errorf("element %d of %d: %q: %w", len(vals), n, tok, ErrParse)
		}
		vals = append(vals, v)
	}

	return matrix.NewDenseFrom(rows, cols, vals)
}

// parseElement parses one float token. Digit separators ("1_000") are
// rejected: ParseFloat accepts them only as Go literal syntax.
func parseElement(tok string) (float64, error) {
	if strings.ContainsRune(tok, '_') {
		return 0, strconv.ErrSyntax
	}

	return strconv.ParseFloat(tok, 64)
}

// readDim reads one non-negative integer header field.
func readDim(sc *bufio.Scanner, name string) (int, error) {
	tok, err := nextToken(sc)
	if err != nil {
		return 0, fmt.Errorf("header %s: %w", name, err)
	}
	v, err := strconv.Atoi(tok)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("header %s %q: %w", name, tok, ErrParse)
	}

	return v, nil
}

// nextToken returns the next whitespace-delimited token. End of input is a
// parse error; an underlying read failure is an I/O error.
func nextToken(sc *bufio.Scanner) (string, error) {
	if sc.Scan() {
		return sc.Text(), nil
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return "", fmt.Errorf("%w: %w", ErrParse, err)
		}
		return "", fmt.Errorf("%w: %w", ErrIO, err)
	}

	return "", fmt.Errorf("unexpected end of input: %w", ErrParse)
}

// SPDX-License-Identifier: MIT

package matrixio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/matcalc/matrix"
)

// savePrecision is the fixed number of fractional digits written by Save.
const savePrecision = 6

// Save writes m to path in the matrix text format, truncating any existing
// file. It is the non-fatal output boundary: every failure is returned and
// nothing is printed.
//
// Errors:
//   - ErrInvalidArgument for a nil/released matrix or an empty path.
//   - ErrIO when the file cannot be created, written or closed.
func Save(m matrix.Matrix, path string) (err error) {
	if err = validateMatrix(m); err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	if path == "" {
		return fmt.Errorf("Save: empty path: %w", ErrInvalidArgument)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("Save(%q): %w: %w", path, ErrIO, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("Save(%q): close: %w: %w", path, ErrIO, cerr)
		}
	}()

	if err = Write(f, m); err != nil {
		return fmt.Errorf("Save(%q): %w", path, err)
	}

	return nil
}

// Write emits m in the matrix text format: the "rows cols" header line, then
// one line per row with every element as %.6f followed by a space.
func Write(w io.Writer, m matrix.Matrix) error {
	if err := validateMatrix(m); err != nil {
		return fmt.Errorf("Write: %w", err)
	}

	bw := bufio.NewWriter(w)
	rows, cols := m.Rows(), m.Cols()
	buf := make([]byte, 0, 32)

	buf = strconv.AppendInt(buf, int64(rows), 10)
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, int64(cols), 10)
	buf = append(buf, '\n')
	if _, err := bw.Write(buf); err != nil {
		return fmt.Errorf("Write: %w: %w", ErrIO, err)
	}

	err := eachRow(m, func(row []float64) error {
		buf = buf[:0]
		for _, v := range row {
			buf = strconv.AppendFloat(buf, v, 'f', savePrecision, 64)
			buf = append(buf, ' ')
		}
		buf = append(buf, '\n')
		_, werr := bw.Write(buf)
		return werr
	})
	if err == nil {
		err = bw.Flush()
	}
	if err != nil {
		return fmt.Errorf("Write: %w: %w", ErrIO, err)
	}

	return nil
}

// validateMatrix maps the engine's nil/released sentinels onto ErrInvalidArgument.
func validateMatrix(m matrix.Matrix) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return nil
}

// eachRow calls f with every row of m in order. *Dense rows are copied with
// RawRow; other implementations are read through At.
func eachRow(m matrix.Matrix, f func(row []float64) error) error {
	rows, cols := m.Rows(), m.Cols()
	d, isDense := m.(*matrix.Dense)
	row := make([]float64, cols)

	var err error
	for i := 0; i < rows; i++ {
		if isDense {
			if row, err = d.RawRow(i); err != nil {
				return err
			}
		} else {
			for j := 0; j < cols; j++ {
				if row[j], err = m.At(i, j); err != nil {
					return err
				}
			}
		}
		if err = f(row); err != nil {
			return err
		}
	}

	return nil
}

// SPDX-License-Identifier: MIT

package matrixio

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/matcalc/matrix"
)

// invalidNotice is written to the error stream when a matrix cannot be printed.
const invalidNotice = "matrixio: invalid matrix"

// Printer renders matrices row by row. Out receives the rows; Err receives
// the notice for invalid input. A nil stream falls back to os.Stdout/os.Stderr.
type Printer struct {
	Out io.Writer
	Err io.Writer
}

// NewPrinter returns a Printer writing rows to out and notices to errOut.
func NewPrinter(out, errOut io.Writer) *Printer {
	return &Printer{Out: out, Err: errOut}
}

// Print writes m to standard output with precision fractional digits per element.
func Print(m matrix.Matrix, precision int) error {
	return (&Printer{}).Print(m, precision)
}

// PrintFormatted writes m to standard output rendering each element with format.
func PrintFormatted(m matrix.Matrix, format string) error {
	return (&Printer{}).PrintFormatted(m, format)
}

// Print writes each row of m on its own line, every element as %.<precision>f
// followed by a space. An empty matrix writes nothing.
//
// Errors:
//   - ErrInvalidArgument for a nil/released matrix (notice on Err, no rows on
//     Out) or a negative precision.
//   - ErrIO when Out fails.
func (p *Printer) Print(m matrix.Matrix, precision int) error {
	if precision < 0 {
		return fmt.Errorf("Print: precision %d: %w", precision, ErrInvalidArgument)
	}

	return p.render("Print", m, func(w io.Writer, v float64) error {
		_, err := fmt.Fprintf(w, "%.*f ", precision, v)
		return err
	})
}

// PrintFormatted is Print with a caller-supplied fmt verb per element, e.g.
// "%10.3e " or "%8.2f|". The format is trusted and not inspected beyond being
// non-empty: a malformed verb is rendered inline by fmt as a %!-marker.
func (p *Printer) PrintFormatted(m matrix.Matrix, format string) error {
	if format == "" {
		return fmt.Errorf("PrintFormatted: empty format: %w", ErrInvalidArgument)
	}

	return p.render("PrintFormatted", m, func(w io.Writer, v float64) error {
		_, err := fmt.Fprintf(w, format, v)
		return err
	})
}

// render validates m, then walks its rows through cell and a newline per row.
func (p *Printer) render(op string, m matrix.Matrix, cell func(io.Writer, float64) error) error {
	if err := validateMatrix(m); err != nil {
		fmt.Fprintf(p.errOut(), "%s: %v\n", invalidNotice, err)
		return fmt.Errorf("%s: %w", op, err)
	}

	bw := bufio.NewWriter(p.out())
	err := eachRow(m, func(row []float64) error {
		for _, v := range row {
			if err := cell(bw, v); err != nil {
				return err
			}
		}
		return bw.WriteByte('\n')
	})
	if err == nil {
		err = bw.Flush()
	}
	if err != nil {
		return fmt.Errorf("%s: %w: %w", op, ErrIO, err)
	}

	return nil
}

func (p *Printer) out() io.Writer {
	if p.Out == nil {
		return os.Stdout
	}
	return p.Out
}

func (p *Printer) errOut() io.Writer {
	if p.Err == nil {
		return os.Stderr
	}
	return p.Err
}

// SPDX-License-Identifier: MIT

package pipeline

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/matcalc/matrix"
)

// Step identifies one stage of the expression.
type Step int

const (
	StepProduct   Step = iota + 1 // C * D
	StepSum                       // B + (C * D)
	StepTranspose                 // (B + C * D)^T
	StepResult                    // A - (B + C * D)^T
)

var stepTitles = map[Step]string{
	StepProduct:   "C * D",
	StepSum:       "B + (C * D)",
	StepTranspose: "(B + C * D)^T",
	StepResult:    "A - (B + C * D)^T",
}

// String returns the expression computed by the step.
func (s Step) String() string {
	if t, ok := stepTitles[s]; ok {
		return t
	}
	return fmt.Sprintf("Step(%d)", int(s))
}

// Reporter observes each intermediate result. The matrix is only valid for
// the duration of the call; copy it with matrix.Copy to keep it.
type Reporter func(step Step, m *matrix.Dense) error

// Inputs holds the four operands. Run never mutates or releases them.
type Inputs struct {
	A, B, C, D *matrix.Dense
}

// Release releases every non-nil operand, joining the failures.
func (in Inputs) Release() error {
	var errs []error
	for _, m := range []*matrix.Dense{in.A, in.B, in.C, in.D} {
		if m != nil {
			errs = append(errs, m.Release())
		}
	}

	return errors.Join(errs...)
}

// Run computes A - (B + C*D)ᵀ. Intermediates are passed to rep (when non-nil)
// and released before Run returns; the caller owns the returned matrix.
//
// Errors:
//   - matrix.ErrDimensionMismatch (wrapped with the failing step) when the
//     operand shapes do not fit the expression.
//   - Any error returned by rep, which aborts the run.
func Run(in Inputs, rep Reporter) (*matrix.Dense, error) {
	report := func(step Step, m *matrix.Dense) error {
		if rep == nil {
			return nil
		}
		if err := rep(step, m); err != nil {
			return fmt.Errorf("report %s: %w", step, err)
		}
		return nil
	}

	cd, err := matrix.Mul(in.C, in.D)
	if err != nil {
		return nil, stepError(StepProduct, err)
	}
	defer release(cd)
	if err = report(StepProduct, cd); err != nil {
		return nil, err
	}

	sum, err := matrix.Add(in.B, cd)
	if err != nil {
		return nil, stepError(StepSum, err)
	}
	defer release(sum)
	if err = report(StepSum, sum); err != nil {
		return nil, err
	}

	tr, err := matrix.Transpose(sum)
	if err != nil {
		return nil, stepError(StepTranspose, err)
	}
	defer release(tr)
	if err = report(StepTranspose, tr); err != nil {
		return nil, err
	}

	res, err := matrix.Sub(in.A, tr)
	if err != nil {
		return nil, stepError(StepResult, err)
	}
	if err = report(StepResult, res); err != nil {
		release(res)
		return nil, err
	}

	return res, nil
}

func stepError(step Step, err error) error {
	return fmt.Errorf("pipeline: %s: %w", step, err)
}

// release drops an intermediate owned by Run; each is released exactly once.
func release(m *matrix.Dense) { _ = m.Release() }

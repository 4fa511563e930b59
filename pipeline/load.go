// SPDX-License-Identifier: MIT

package pipeline

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/katalvlaran/matcalc/matrix"
)

// Loader reads one matrix from a path (matrixio.Load or matrixio.LoadMapped).
type Loader func(path string) (*matrix.Dense, error)

// Files names the four operand files relative to a directory.
type Files struct {
	A, B, C, D string
}

// LoadInputs loads A, B, C and D from dir. If any load fails, the operands
// loaded so far are released and no Inputs are returned.
func LoadInputs(load Loader, dir string, files Files) (Inputs, error) {
	var in Inputs
	targets := []struct {
		name string
		file string
		dst  **matrix.Dense
	}{
		{"A", files.A, &in.A},
		{"B", files.B, &in.B},
		{"C", files.C, &in.C},
		{"D", files.D, &in.D},
	}

	for _, t := range targets {
		m, err := load(filepath.Join(dir, t.file))
		if err != nil {
			return Inputs{}, errors.Join(fmt.Errorf("pipeline: load %s: %w", t.name, err), in.Release())
		}
		*t.dst = m
	}

	return in, nil
}

// SPDX-License-Identifier: MIT
package pipeline_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/matcalc/matrix"
	"github.com/katalvlaran/matcalc/matrixio"
	"github.com/katalvlaran/matcalc/pipeline"
	"github.com/stretchr/testify/require"
)

func dense(t *testing.T, rows, cols int, vals ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows, cols, vals)
	require.NoError(t, err)

	return m
}

func fixture(t *testing.T) pipeline.Inputs {
	t.Helper()
	return pipeline.Inputs{
		A: dense(t, 2, 2, 10, 20, 30, 40),
		B: dense(t, 2, 2, 1, 1, 1, 1),
		C: dense(t, 2, 3, 1, 2, 3, 4, 5, 6),
		D: dense(t, 3, 2, 1, 0, 0, 1, 1, 1),
	}
}

func requireEqual(t *testing.T, want, got matrix.Matrix) {
	t.Helper()
	ok, err := matrix.Equal(want, got)
	require.NoError(t, err)
	require.Truef(t, ok, "want\n%v\ngot\n%v", want, got)
}

func TestRun(t *testing.T) {
	in := fixture(t)

	var steps []pipeline.Step
	var seen []*matrix.Dense
	snapshots := map[pipeline.Step]*matrix.Dense{}
	rep := func(step pipeline.Step, m *matrix.Dense) error {
		steps = append(steps, step)
		seen = append(seen, m)
		cp, err := matrix.Copy(m)
		require.NoError(t, err)
		snapshots[step] = cp
		return nil
	}

	res, err := pipeline.Run(in, rep)
	require.NoError(t, err)

	require.Equal(t, []pipeline.Step{
		pipeline.StepProduct, pipeline.StepSum, pipeline.StepTranspose, pipeline.StepResult,
	}, steps)
	requireEqual(t, dense(t, 2, 2, 4, 5, 10, 11), snapshots[pipeline.StepProduct])
	requireEqual(t, dense(t, 2, 2, 5, 6, 11, 12), snapshots[pipeline.StepSum])
	requireEqual(t, dense(t, 2, 2, 5, 11, 6, 12), snapshots[pipeline.StepTranspose])
	requireEqual(t, dense(t, 2, 2, 5, 9, 24, 28), res)

	// intermediates released, result and inputs still owned by the caller
	for _, m := range seen[:3] {
		require.True(t, m.Released())
	}
	require.False(t, res.Released())
	requireEqual(t, dense(t, 2, 2, 10, 20, 30, 40), in.A)

	require.NoError(t, res.Release())
	require.NoError(t, in.Release())
	require.ErrorIs(t, in.Release(), matrix.ErrReleased)
}

func TestRunNilReporter(t *testing.T) {
	res, err := pipeline.Run(fixture(t), nil)
	require.NoError(t, err)
	requireEqual(t, dense(t, 2, 2, 5, 9, 24, 28), res)
}

func TestRunShapeMismatch(t *testing.T) {
	tests := []struct {
		name string
		edit func(in *pipeline.Inputs)
		step pipeline.Step
	}{
		{"inner", func(in *pipeline.Inputs) { in.D = dense(t, 2, 2, 1, 0, 0, 1) }, pipeline.StepProduct},
		{"sum", func(in *pipeline.Inputs) { in.B = dense(t, 1, 2, 1, 1) }, pipeline.StepSum},
		{"final", func(in *pipeline.Inputs) { in.A = dense(t, 1, 1, 1) }, pipeline.StepResult},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := fixture(t)
			tc.edit(&in)

			var seen []*matrix.Dense
			res, err := pipeline.Run(in, func(_ pipeline.Step, m *matrix.Dense) error {
				seen = append(seen, m)
				return nil
			})
			require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
			require.ErrorContains(t, err, tc.step.String())
			require.Nil(t, res)
			for _, m := range seen {
				require.True(t, m.Released())
			}
		})
	}
}

func TestRunReporterAbort(t *testing.T) {
	stop := errors.New("stop")
	var seen []*matrix.Dense
	res, err := pipeline.Run(fixture(t), func(step pipeline.Step, m *matrix.Dense) error {
		seen = append(seen, m)
		if step == pipeline.StepResult {
			return stop
		}
		return nil
	})
	require.ErrorIs(t, err, stop)
	require.Nil(t, res)
	require.Len(t, seen, 4)
	for _, m := range seen {
		require.True(t, m.Released())
	}
}

func TestStepString(t *testing.T) {
	require.Equal(t, "A - (B + C * D)^T", pipeline.StepResult.String())
	require.Equal(t, "Step(9)", pipeline.Step(9).String())
}

func writeMatrix(t *testing.T, dir, name string, m *matrix.Dense) {
	t.Helper()
	require.NoError(t, matrixio.Save(m, filepath.Join(dir, name)))
}

func TestLoadInputs(t *testing.T) {
	dir := t.TempDir()
	src := fixture(t)
	writeMatrix(t, dir, "A.txt", src.A)
	writeMatrix(t, dir, "B.txt", src.B)
	writeMatrix(t, dir, "C.txt", src.C)
	writeMatrix(t, dir, "D.txt", src.D)

	in, err := pipeline.LoadInputs(matrixio.Load, dir, pipeline.Files{A: "A.txt", B: "B.txt", C: "C.txt", D: "D.txt"})
	require.NoError(t, err)
	res, err := pipeline.Run(in, nil)
	require.NoError(t, err)
	requireEqual(t, dense(t, 2, 2, 5, 9, 24, 28), res)
}

func TestLoadInputsReleasesOnFailure(t *testing.T) {
	dir := t.TempDir()
	writeMatrix(t, dir, "A.txt", dense(t, 1, 1, 1))
	writeMatrix(t, dir, "B.txt", dense(t, 1, 1, 2))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "C.txt"), []byte("2 2\n1 2 3\n"), 0o600))

	var loaded []*matrix.Dense
	load := func(path string) (*matrix.Dense, error) {
		m, err := matrixio.Load(path)
		if err == nil {
			loaded = append(loaded, m)
		}
		return m, err
	}

	in, err := pipeline.LoadInputs(load, dir, pipeline.Files{A: "A.txt", B: "B.txt", C: "C.txt", D: "D.txt"})
	require.ErrorIs(t, err, matrixio.ErrParse)
	require.ErrorContains(t, err, "load C")
	require.Nil(t, in.A)
	require.Len(t, loaded, 2)
	for _, m := range loaded {
		require.True(t, m.Released())
	}
}

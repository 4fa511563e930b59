// Package matcalc is a small dense-matrix calculator: a value-semantic
// float64 matrix engine, a plain-text matrix file format, and a command
// that evaluates A - (B + C*D)ᵀ over four matrix files.
//
// Everything is organized under a handful of packages:
//
//	matrix/          — Dense storage, Add/Sub/Mul/Transpose/Copy, Determinant, Release
//	matrixio/        — Load/LoadMapped/Read, Save/Write, Print/PrintFormatted
//	pipeline/        — the four-step expression with per-step reporting
//	internal/config/ — matcalc.yaml, .env and MATCALC_* settings
//	cmd/matcalc/     — the command-line entry point
//
// Quick example:
//
//	a, _ := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3, 4})
//	det, _ := matrix.Determinant(a) // -2
//	_ = matrixio.Save(a, "a.txt")
//
// Every operation returns a fresh matrix owned by the caller, who releases
// it exactly once with Release.
//
//	go get github.com/katalvlaran/matcalc
package matcalc

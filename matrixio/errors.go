// SPDX-License-Identifier: MIT

package matrixio

import "errors"

var (
	// ErrIO indicates that a file could not be opened, read, mapped or written.
	ErrIO = errors.New("matrixio: i/o failure")

	// ErrParse indicates a malformed header, negative dimensions, or fewer
	// valid element tokens than the header declares.
	ErrParse = errors.New("matrixio: malformed matrix text")

	// ErrInvalidArgument indicates a nil/released matrix, an empty path,
	// a negative precision or an empty format.
	ErrInvalidArgument = errors.New("matrixio: invalid argument")
)

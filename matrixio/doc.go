// SPDX-License-Identifier: MIT

// Package matrixio reads, writes and prints matrices in the plain-text
// matrix format:
//
//	<rows> <cols>
//	<e00> <e01> ... <e0,cols-1>
//	...
//
// The reader is lenient about whitespace: header and elements are just
// whitespace-separated tokens consumed in row-major order. The writer always
// emits one line per row, every element with exactly six fractional digits
// followed by a single space.
//
// Loading never yields a partially populated matrix: a missing file reports
// ErrIO and malformed or truncated content reports ErrParse. Save and the
// print helpers report ErrInvalidArgument for a nil or released matrix and
// leave the decision to continue with the caller.
package matrixio

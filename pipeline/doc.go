// SPDX-License-Identifier: MIT

// Package pipeline evaluates the fixed four-matrix expression
//
//	R = A - (B + C*D)ᵀ
//
// one step at a time on top of package matrix, reporting every intermediate
// result and releasing it as soon as the next step no longer needs it.
package pipeline

// SPDX-License-Identifier: MIT

// Package matrix: domain types. This file intentionally contains ONLY the
// value types (Dimension, Matrix, variants) and the read-only Shaped surface.
// Errors live in errors.go, guards in validators.go, rendering options in
// options.go, per the global conventions.
package matrix

// Dimension is an immutable (rows, cols) pair attached to every Matrix.
// Both counts are >= 1 for any Dimension produced by a constructor; the
// zero Dimension only occurs inside invalid, never-returned matrices.
type Dimension struct {
	rows, cols int
}

// Rows returns the number of rows.
// Complexity: O(1).
func (d Dimension) Rows() int { return d.rows }

// Cols returns the number of columns.
// Complexity: O(1).
func (d Dimension) Cols() int { return d.cols }

// Matrix is a rectangular float32 value object.
//   - state holds rows × cols entries; every row has length dim.cols.
//   - state is exclusively owned: constructors deep-copy input, accessors
//     and derived views copy output, and nothing mutates state afterwards.
//
// Complexity notes: shape queries are O(1); anything that produces a new
// Matrix is O(rows*cols).
type Matrix struct {
	state [][]float32 // rectangular buffer, never aliased with caller storage
	dim   Dimension   // rows == len(state), cols == len(state[r]) for all r
}

// SquareMatrix is a Matrix whose row and column counts match.
// Obtained via AsSquare; carries no extra state beyond the invariant.
type SquareMatrix struct {
	Matrix
}

// Vector is a single-column Matrix. Obtained via AsVector or Column.
type Vector struct {
	Matrix
}

// AugmentedMatrix is a Matrix with at least two columns, read as a
// coefficient block followed by one or more augmented columns.
// Obtained via AsAugmented.
type AugmentedMatrix struct {
	Matrix
}

// Shaped is the read-only surface shared by Matrix and all its variants.
// Equal constrains both operands to one Shaped type, so comparisons only
// type-check between values of the same declared variant.
type Shaped interface {
	Rows() int
	Cols() int
	At(row, col int) (float32, error)
}

// Compile-time conformance of the base value and every variant.
var (
	_ Shaped = (*Matrix)(nil)
	_ Shaped = (*SquareMatrix)(nil)
	_ Shaped = (*Vector)(nil)
	_ Shaped = (*AugmentedMatrix)(nil)
)

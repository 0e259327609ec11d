// SPDX-License-Identifier: MIT

// Package matrix - queries, element access, derived views, conversions and
// structural equality.
//
// Everything here reads from the immutable state buffer; anything returned
// to the caller is an independent copy. Guards delegate to validators.go and
// return wrapped sentinels, never panic.
package matrix

import "fmt"

// Dimension returns the (rows, cols) pair of the matrix.
// Complexity: O(1).
func (m *Matrix) Dimension() Dimension { return m.dim }

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Matrix) Rows() int { return m.dim.rows }

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Matrix) Cols() int { return m.dim.cols }

// IsSquare reports whether the matrix could be represented as a square matrix.
func (m *Matrix) IsSquare() bool { return m.dim.rows == m.dim.cols }

// IsRowVector reports whether the matrix has exactly one row.
func (m *Matrix) IsRowVector() bool { return m.dim.rows == 1 }

// IsColumnVector reports whether the matrix has exactly one column.
func (m *Matrix) IsColumnVector() bool { return m.dim.cols == 1 }

// At retrieves the element at (row, col). Indexing is zero-based.
//
// Errors:
//   - ErrOutOfRange if either index is negative or beyond its dimension.
//
// Complexity: O(1).
func (m *Matrix) At(row, col int) (float32, error) {
	if err := validateRowIndex(row, m.dim.rows); err != nil {
		return 0, err
	}
	if err := validateColIndex(col, m.dim.cols); err != nil {
		return 0, err
	}

	return m.state[row][col], nil
}

// Row extracts row index as a new 1×cols Matrix. The result copies the row,
// so later use of either value cannot observe the other.
//
// Errors:
//   - ErrOutOfRange if index is outside [0, Rows()).
//
// Complexity: O(cols).
func (m *Matrix) Row(index int) (*Matrix, error) {
	if err := validateRowIndex(index, m.dim.rows); err != nil {
		return nil, fmt.Errorf("cannot extract row vector: %w", err)
	}

	return New([][]float32{m.state[index]})
}

// Column extracts column index as a new rows×1 Vector, reading one entry
// from every row.
//
// Errors:
//   - ErrOutOfRange if index is outside [0, Cols()).
//
// Complexity: O(rows).
func (m *Matrix) Column(index int) (*Vector, error) {
	if err := validateColIndex(index, m.dim.cols); err != nil {
		return nil, fmt.Errorf("cannot extract column vector: %w", err)
	}

	state := make([][]float32, m.dim.rows)
	for r := 0; r < m.dim.rows; r++ {
		state[r] = []float32{m.state[r][index]}
	}
	col, err := New(state)
	if err != nil {
		return nil, err
	}

	return &Vector{Matrix: *col}, nil
}

// AsSquare converts the matrix into a SquareMatrix.
//
// Errors:
//   - ErrBadShape unless Rows() == Cols().
//
// Complexity: O(rows*cols) for the copy.
func (m *Matrix) AsSquare() (*SquareMatrix, error) {
	if !m.IsSquare() {
		return nil, fmt.Errorf("cannot convert a %d x %d matrix into a square matrix: %w",
			m.dim.rows, m.dim.cols, ErrBadShape)
	}
	c, err := New(m.state)
	if err != nil {
		return nil, err
	}

	return &SquareMatrix{Matrix: *c}, nil
}

// AsVector converts a single-column matrix into a Vector.
//
// Errors:
//   - ErrBadShape unless Cols() == 1.
//
// Complexity: O(rows).
func (m *Matrix) AsVector() (*Vector, error) {
	if !m.IsColumnVector() {
		return nil, fmt.Errorf("cannot convert a matrix with %d columns into a vector: %w",
			m.dim.cols, ErrBadShape)
	}

	return m.Column(0)
}

// AsAugmented converts the matrix into an AugmentedMatrix, read as a
// coefficient block plus at least one augmented column.
//
// Errors:
//   - ErrBadShape unless Cols() >= 2.
//
// Complexity: O(rows*cols) for the copy.
func (m *Matrix) AsAugmented() (*AugmentedMatrix, error) {
	if m.dim.cols < 2 {
		return nil, fmt.Errorf("cannot convert a matrix with %d columns into an augmented matrix: %w",
			m.dim.cols, ErrBadShape)
	}
	c, err := New(m.state)
	if err != nil {
		return nil, err
	}

	return &AugmentedMatrix{Matrix: *c}, nil
}

// AsMatrix returns a plain Matrix copy of the value. Mainly useful to strip
// a variant back down to the generic representation; always succeeds.
//
// Complexity: O(rows*cols).
func (m *Matrix) AsMatrix() *Matrix {
	c, _ := New(m.state) // state is rectangular by construction

	return c
}

// Len returns the number of entries in the vector.
// Complexity: O(1).
func (v *Vector) Len() int { return v.dim.rows }

// Entry retrieves the vector entry at index.
//
// Errors:
//   - ErrOutOfRange if index is outside [0, Len()).
//
// Complexity: O(1).
func (v *Vector) Entry(index int) (float32, error) {
	return v.At(index, 0)
}

// Equal reports whether a and b hold identical entries in identical shape.
// It returns false immediately on a dimension mismatch and otherwise
// compares every element under exact floating-point equality, with no
// tolerance. Both operands must share one declared variant type.
//
// Complexity: O(rows*cols).
func Equal[M Shaped](a, b M) bool {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	for r := 0; r < a.Rows(); r++ {
		for c := 0; c < a.Cols(); c++ {
			av, _ := a.At(r, c) // indices are in range by the loop bounds
			bv, _ := b.At(r, c)
			if av != bv {
				return false
			}
		}
	}

	return true
}

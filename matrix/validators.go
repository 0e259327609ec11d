// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape and index checks.
//  - Keep constructors and accessors minimal by delegating guard logic here.
//  - Return wrapped sentinel errors so call sites stay uniform.
//
// Determinism & Performance:
//  - All checks are pure and deterministic.
//  - validateRect runs O(rows); index checks are O(1).

package matrix

import "fmt"

// validateRect ensures input is non-nil, non-empty and rectangular: every
// row must match the length of row 0. Returns a wrapped ErrBadShape naming
// the first offending row.
func validateRect(rows [][]float32) error {
	if len(rows) == 0 {
		return fmt.Errorf("input must have at least one row: %w", ErrBadShape)
	}
	width := len(rows[0])
	for r := 1; r < len(rows); r++ {
		if len(rows[r]) != width {
			return fmt.Errorf("row %d has length %d, want %d: %w", r, len(rows[r]), width, ErrBadShape)
		}
	}

	return nil
}

// validateRowIndex checks 0 <= row < rows.
// Complexity: O(1).
func validateRowIndex(row, rows int) error {
	if row < 0 || row >= rows {
		return fmt.Errorf("row index %d outside [0,%d): %w", row, rows, ErrOutOfRange)
	}

	return nil
}

// validateColIndex checks 0 <= col < cols.
// Complexity: O(1).
func validateColIndex(col, cols int) error {
	if col < 0 || col >= cols {
		return fmt.Errorf("column index %d outside [0,%d): %w", col, cols, ErrOutOfRange)
	}

	return nil
}

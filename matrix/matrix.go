// SPDX-License-Identifier: MIT

// Package matrix - construction of Matrix values.
//
// Purpose:
//   - New: validated construction from structured 2D input.
//   - Pad: explicit zero-fill of ragged input, a separate pre-step that a
//     caller applies BEFORE New; construction itself never pads.
//   - Formulate: construction from a flat row-major entry list.
//
// All three paths deep-copy: a constructed Matrix never shares storage with
// the caller's slices, which is the core ownership invariant of the package.
package matrix

import "fmt"

// copyState deep-copies a rectangular buffer row by row.
// Complexity: O(rows*cols) time and memory.
func copyState(rows [][]float32) [][]float32 {
	out := make([][]float32, len(rows))
	for r := range rows {
		out[r] = make([]float32, len(rows[r]))
		copy(out[r], rows[r])
	}

	return out
}

// New creates a Matrix from a rectangular 2D slice.
// Stage 1 (Validate): input must be non-empty and rectangular.
// Stage 2 (Prepare): deep-copy the input buffer.
// Stage 3 (Finalize): record Dimension(len(rows), len(rows[0])).
//
// Errors:
//   - ErrBadShape on nil/empty input or rows of differing lengths.
//
// Complexity: O(rows*cols).
func New(rows [][]float32) (*Matrix, error) {
	if err := validateRect(rows); err != nil {
		return nil, err
	}

	return &Matrix{
		state: copyState(rows),
		dim:   Dimension{rows: len(rows), cols: len(rows[0])},
	}, nil
}

// Pad returns a copy of rows in which every row is extended to the length
// of the longest row, filling new trailing cells with zeros. Existing values
// keep their original positions. Pad never fails and never mutates its input.
//
// Pad is deliberately NOT invoked by New: ragged input still fails
// construction unless the caller pads first, so shape mismatches surface
// instead of being silently absorbed.
//
// Complexity: O(rows*maxLen).
func Pad(rows [][]float32) [][]float32 {
	longest := 0
	for r := range rows {
		if len(rows[r]) > longest {
			longest = len(rows[r])
		}
	}

	out := make([][]float32, len(rows))
	for r := range rows {
		out[r] = make([]float32, longest)
		copy(out[r], rows[r])
	}

	return out
}

// Formulate builds a rows×cols Matrix by consuming entries in row-major
// order: all of row 0 first, then row 1, and so on.
//
// Errors:
//   - ErrBadShape unless rows*cols == len(entries).
//
// Complexity: O(rows*cols).
func Formulate(rows, cols int, entries ...float32) (*Matrix, error) {
	if rows*cols != len(entries) {
		return nil, fmt.Errorf("cannot formulate %d entries into a %d x %d matrix: %w",
			len(entries), rows, cols, ErrBadShape)
	}

	state := make([][]float32, rows)
	next := 0
	for r := 0; r < rows; r++ {
		state[r] = make([]float32, cols)
		for c := 0; c < cols; c++ {
			state[r][c] = entries[next]
			next++
		}
	}

	return New(state)
}

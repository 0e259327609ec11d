// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions;
// panics are reserved for programmer errors in option constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the detection site — callers still match via errors.Is.

var (
	// ErrBadShape is returned when input cannot form a rectangular matrix:
	// nil or empty input, rows of differing lengths, a row*col product that
	// does not match a flat entry list, or a failed variant-conversion
	// precondition. The wrapped context names the violated shape rule.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrBadFormat is returned by Parse when the notation string is empty
	// after whitespace stripping or contains a token that is not a valid
	// floating-point literal. The wrapped context echoes the source string
	// and preserves the underlying strconv failure.
	ErrBadFormat = errors.New("matrix: unparseable notation")

	// ErrOutOfRange indicates that a row, column or vector index is outside
	// valid bounds. Public indexers MUST return this, not panic. The wrapped
	// context carries the offending index and the valid range.
	ErrOutOfRange = errors.New("matrix: index out of range")
)

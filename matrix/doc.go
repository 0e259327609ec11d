// Package matrix provides the Matrix value object and its shape-constrained
// variants.
//
// The matrix package provides:
//
//   - Validated construction from structured 2D input, from a flat row-major
//     entry list (Formulate), and from a compact text notation (Parse).
//   - Explicit zero-padding of ragged input (Pad) as a separate pre-step,
//     never applied implicitly by a constructor.
//   - Row/column extraction and variant conversions (SquareMatrix, Vector,
//     AugmentedMatrix) that always copy, never alias.
//   - Console, notation and TeX rendering of any matrix value.
//
// Matrices are immutable after construction: every operation that looks like
// it could share storage instead deep-copies, so no two values ever observe
// each other's buffer.
//
// See the examples in this package for usage patterns.
package matrix

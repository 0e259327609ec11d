// Package linmat is a compact linear-algebra playground: rectangular
// matrices as immutable value objects, with validated construction,
// a human-friendly text notation, and console / TeX rendering.
//
// 🚀 What is linmat?
//
//	A small, deterministic library that brings together:
//		• Matrix values: rectangular float32 buffers, validated and defensively copied
//		• Construction: structured 2D input, row-major formulation, text notation parsing
//		• Padding: explicit zero-fill of ragged input before construction
//		• Views: row and column extraction as independent values
//		• Variants: square matrices, vectors, augmented matrices as typed conversions
//		• Rendering: console bracket art, round-trip notation, TeX (bmatrix/vmatrix)
//
// ✨ Why choose linmat?
//
//   - Value semantics – every operation returns a fresh, independently owned matrix
//   - Rock-solid guarantees – sentinel errors, no panics on user input
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – fixed iteration orders, stable formatting
//
// Under the hood, everything is organized under two subpackages:
//
//	matrix/ — the Matrix value, its variants, parsing and rendering
//	numfmt/ — display formatting and whitespace stripping helpers
//
// Quick ASCII example:
//
//	⌈4 2 6⌉
//	|3 6 9|
//	⌊2 2 6⌋
//
// is how a 3×3 matrix prints on the console.
//
//	go get github.com/katalvlaran/linmat/matrix
package linmat

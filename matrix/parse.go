// SPDX-License-Identifier: MIT

// Package matrix - text-notation parsing.
//
// Notation grammar:
//
//	matrix := row (";" row)*
//	row    := entry ("," entry)*
//	entry  := floating-point literal
//
// Whitespace is insignificant everywhere; it is stripped before
// tokenization, so the same matrix may be written on one line or spread
// across several for readability:
//
//	"4, 2, 6, 3;
//	 5, 2, 6, 2;
//	 12, 13.5, 5, 2;
//	 3, 5, 6, 2"
package matrix

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/linmat/numfmt"
)

// Notation delimiters. Kept as constants for grep-ability and to keep
// Parse and Notation in lockstep.
const (
	rowSep   = ";"
	entrySep = ","
)

// Parse builds a Matrix from its text notation.
// Stage 1 (Strip): remove all whitespace; empty result is ErrBadFormat.
// Stage 2 (Tokenize): split rows on ";" and entries on ",", converting each
// token with strconv. Ragged rows are permitted at this stage.
// Stage 3 (Construct): hand the structured buffer to New, so a row-length
// mismatch surfaces as ErrBadShape, not ErrBadFormat.
//
// Errors:
//   - ErrBadFormat on empty-after-strip input or an unparseable entry token;
//     the error echoes the source string and wraps the strconv failure.
//   - ErrBadShape when tokenized rows have differing lengths.
//
// Complexity: O(len(s)).
func Parse(s string) (*Matrix, error) {
	cleaned := numfmt.StripSpace(s)
	if cleaned == "" {
		return nil, fmt.Errorf("cannot parse an empty string into a matrix: %w", ErrBadFormat)
	}

	rowStrings := strings.Split(cleaned, rowSep)
	state := make([][]float32, len(rowStrings))
	for r, rowString := range rowStrings {
		tokens := strings.Split(rowString, entrySep)
		state[r] = make([]float32, len(tokens))
		for c, token := range tokens {
			v, err := strconv.ParseFloat(token, 32)
			if err != nil {
				return nil, fmt.Errorf("cannot parse %q into a matrix: %w: %w", s, ErrBadFormat, err)
			}
			state[r][c] = float32(v)
		}
	}

	return New(state)
}

// Package numfmt holds the two small text helpers the matrix package leans
// on: canonical display formatting of float32 values and whitespace
// stripping ahead of notation parsing.
//
// Format is deterministic and uses the shortest decimal form that
// round-trips a float32, so a displayed matrix can be re-parsed into a
// structurally equal one.
package numfmt

import (
	"strconv"
	"strings"
	"unicode"
)

// Format returns the canonical display string for v: the shortest decimal
// representation that parses back to the same float32. Whole values print
// without a decimal point ("4", not "4.0").
// Complexity: O(1).
func Format(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

// StripSpace returns s with every Unicode whitespace rune removed.
// Complexity: O(len(s)).
func StripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, s)
}

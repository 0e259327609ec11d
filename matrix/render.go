// SPDX-License-Identifier: MIT

// Package matrix - rendering.
//
// Three independent surfaces:
//   - String: console bracket art, the way a matrix is drawn in mathematics.
//   - Notation: the compact ","/";" form accepted back by Parse.
//   - Tex: a TeX environment block (bmatrix by default, vmatrix for
//     determinants).
//
// All three format entries through numfmt.Format, so a value renders
// identically everywhere it appears.
package matrix

import (
	"strings"

	"github.com/katalvlaran/linmat/numfmt"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen     = "["
	_fmtRowClose    = "]"
	_fmtTopOpen     = "⌈"
	_fmtTopClose    = "⌉"
	_fmtBottomOpen  = "⌊"
	_fmtBottomClose = "⌋"
	_fmtBar         = "|"
	_fmtEntrySep    = " "

	_texColSep = "&"
	_texRowSep = "\\\\"
)

// String renders the matrix as console art. A single-row matrix is wrapped
// in plain square brackets; taller matrices draw the top row with ⌈ ⌉, the
// bottom row with ⌊ ⌋ and interior rows with vertical bars, e.g.
//
//	⌈4 2 6 1 5⌉
//	|3 6 9 2 2|
//	⌊0 2 2 2 4⌋
//
// Every row ends with a newline.
// Complexity: O(rows*cols).
func (m *Matrix) String() string {
	var sb strings.Builder
	last := m.dim.rows - 1
	for r := 0; r < m.dim.rows; r++ {
		left, right := _fmtRowOpen, _fmtRowClose
		if m.dim.rows > 1 {
			switch r {
			case 0:
				left, right = _fmtTopOpen, _fmtTopClose
			case last:
				left, right = _fmtBottomOpen, _fmtBottomClose
			default:
				left, right = _fmtBar, _fmtBar
			}
		}
		sb.WriteString(left)
		for c := 0; c < m.dim.cols; c++ {
			if c > 0 {
				sb.WriteString(_fmtEntrySep)
			}
			sb.WriteString(numfmt.Format(m.state[r][c]))
		}
		sb.WriteString(right)
		sb.WriteString("\n")
	}

	return sb.String()
}

// Notation renders the matrix in the compact text form accepted by Parse:
// entries separated by ",", rows separated by ";", no whitespace.
// Parse(m.Notation()) always yields a matrix Equal to m for entries with
// exact decimal representations.
// Complexity: O(rows*cols).
func (m *Matrix) Notation() string {
	rows := make([]string, m.dim.rows)
	entries := make([]string, m.dim.cols)
	for r := 0; r < m.dim.rows; r++ {
		for c := 0; c < m.dim.cols; c++ {
			entries[c] = numfmt.Format(m.state[r][c])
		}
		rows[r] = strings.Join(entries, entrySep)
	}

	return strings.Join(rows, rowSep)
}

// Tex renders the matrix as a TeX environment block:
//
//	\begin{bmatrix}
//	1&2\\
//	3&4
//	\end{bmatrix}
//
// Columns are separated by "&", rows by "\\"; the final row carries no row
// separator. The environment defaults to bmatrix and can be overridden with
// WithTexEnv.
// Complexity: O(rows*cols).
func (m *Matrix) Tex(opts ...TexOption) string {
	o := gatherTexOptions(opts...)

	var sb strings.Builder
	sb.WriteString("\\begin{" + o.env + "}\n")
	last := m.dim.rows - 1
	for r := 0; r < m.dim.rows; r++ {
		for c := 0; c < m.dim.cols; c++ {
			if c > 0 {
				sb.WriteString(_texColSep)
			}
			sb.WriteString(numfmt.Format(m.state[r][c]))
		}
		if r != last {
			sb.WriteString(_texRowSep)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\\end{" + o.env + "}")

	return sb.String()
}

// TexDeterminant renders the matrix in the vmatrix environment, the
// conventional vertical-bar notation for a determinant.
func (m *Matrix) TexDeterminant() string {
	return m.Tex(WithTexEnv(TexEnvDeterminant))
}

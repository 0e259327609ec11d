package matrix_test

import (
	"testing"

	"github.com/katalvlaran/linmat/matrix"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) *matrix.Matrix {
	t.Helper()
	m, err := matrix.Parse(s)
	require.NoError(t, err)

	return m
}

func TestAt_OutOfRange(t *testing.T) {
	m := mustParse(t, "1,2;3,4")

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(m.Rows(), 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, m.Cols())
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestShapeQueries(t *testing.T) {
	square := mustParse(t, "1,2;3,4")
	require.True(t, square.IsSquare())
	require.False(t, square.IsRowVector())
	require.False(t, square.IsColumnVector())

	row := mustParse(t, "1,2,3")
	require.True(t, row.IsRowVector())

	col := mustParse(t, "1;2;3")
	require.True(t, col.IsColumnVector())

	dim := square.Dimension()
	require.Equal(t, 2, dim.Rows())
	require.Equal(t, 2, dim.Cols())
}

func TestRow_ExtractsIndependentCopy(t *testing.T) {
	m := mustParse(t, "1,2,3;4,5,6")

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, 1, row.Rows())
	require.Equal(t, "4,5,6", row.Notation())

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Row(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestColumn_ExtractsVector(t *testing.T) {
	m := mustParse(t, "1,2,3;4,5,6")

	col, err := m.Column(2)
	require.NoError(t, err)
	require.Equal(t, 2, col.Len())
	v, err := col.Entry(0)
	require.NoError(t, err)
	require.Equal(t, float32(3), v)
	v, err = col.Entry(1)
	require.NoError(t, err)
	require.Equal(t, float32(6), v)

	_, err = col.Entry(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.Column(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestAsSquare(t *testing.T) {
	m := mustParse(t, "1,2;3,4")
	sq, err := m.AsSquare()
	require.NoError(t, err)
	require.True(t, sq.IsSquare())

	_, err = mustParse(t, "1,2,3;4,5,6").AsSquare()
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestAsVector(t *testing.T) {
	v, err := mustParse(t, "1;2;3").AsVector()
	require.NoError(t, err)
	require.Equal(t, 3, v.Len())

	_, err = mustParse(t, "1,2;3,4").AsVector()
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestAsAugmented(t *testing.T) {
	aug, err := mustParse(t, "1,2,5;3,4,6").AsAugmented()
	require.NoError(t, err)
	require.Equal(t, 3, aug.Cols())

	_, err = mustParse(t, "1;2").AsAugmented()
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestAsMatrix_StripsVariant(t *testing.T) {
	sq, err := mustParse(t, "1,2;3,4").AsSquare()
	require.NoError(t, err)

	m := sq.AsMatrix()
	require.True(t, matrix.Equal(m, sq.AsMatrix()))
	require.Equal(t, "1,2;3,4", m.Notation())
}

func TestEqual(t *testing.T) {
	a := mustParse(t, "1,2;3,4")
	require.True(t, matrix.Equal(a, a))

	b := mustParse(t, "1,2;3,4")
	require.True(t, matrix.Equal(a, b))

	// One differing entry.
	c := mustParse(t, "1,2;3,5")
	require.False(t, matrix.Equal(a, c))

	// Dimension mismatch is false even when overlapping entries agree.
	d := mustParse(t, "1,2")
	require.False(t, matrix.Equal(a, d))
}

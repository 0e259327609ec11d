package matrix_test

import (
	"testing"

	"github.com/katalvlaran/linmat/matrix"
	"github.com/stretchr/testify/require"
)

func TestNew_PreservesEveryEntry(t *testing.T) {
	in := [][]float32{{1, 2, 3}, {4, 5, 6}}
	m, err := matrix.New(in)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			v, err := m.At(r, c)
			require.NoError(t, err)
			require.Equal(t, in[r][c], v)
		}
	}
}

func TestNew_RejectsNilAndEmpty(t *testing.T) {
	_, err := matrix.New(nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.New([][]float32{})
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestNew_RejectsRaggedRows(t *testing.T) {
	_, err := matrix.New([][]float32{{1, 2, 3}, {4, 5}})
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestNew_DefensivelyCopiesInput(t *testing.T) {
	in := [][]float32{{1, 2}, {3, 4}}
	m, err := matrix.New(in)
	require.NoError(t, err)

	// Mutating the caller's buffer must not be visible through the matrix.
	in[0][0] = 99
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, float32(1), v)
}

func TestPad_ZeroFillsToLongestRow(t *testing.T) {
	ragged := [][]float32{{1}, {2, 3, 4}, {5, 6}}
	padded := matrix.Pad(ragged)

	m, err := matrix.New(padded)
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 3, m.Cols())

	want := [][]float32{{1, 0, 0}, {2, 3, 4}, {5, 6, 0}}
	for r := range want {
		for c := range want[r] {
			v, err := m.At(r, c)
			require.NoError(t, err)
			require.Equal(t, want[r][c], v)
		}
	}
}

func TestPad_LeavesInputUntouched(t *testing.T) {
	ragged := [][]float32{{1}, {2, 3}}
	_ = matrix.Pad(ragged)
	require.Len(t, ragged[0], 1)
	require.Len(t, ragged[1], 2)
}

func TestFormulate_RowMajorFill(t *testing.T) {
	m, err := matrix.Formulate(2, 3, 1, 2, 3, 4, 5, 6)
	require.NoError(t, err)

	row0, err := m.Row(0)
	require.NoError(t, err)
	row1, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, "1,2,3", row0.Notation())
	require.Equal(t, "4,5,6", row1.Notation())
}

func TestFormulate_RejectsProductMismatch(t *testing.T) {
	_, err := matrix.Formulate(2, 3, 1, 2, 3, 4, 5)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

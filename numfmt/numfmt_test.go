package numfmt_test

import (
	"testing"

	"github.com/katalvlaran/linmat/numfmt"
	"github.com/stretchr/testify/require"
)

func TestFormat_WholeValuesHaveNoDecimalPoint(t *testing.T) {
	require.Equal(t, "4", numfmt.Format(4))
	require.Equal(t, "-12", numfmt.Format(-12))
	require.Equal(t, "0", numfmt.Format(0))
}

func TestFormat_FractionalValues(t *testing.T) {
	require.Equal(t, "13.5", numfmt.Format(13.5))
	require.Equal(t, "-0.25", numfmt.Format(-0.25))
}

func TestStripSpace(t *testing.T) {
	require.Equal(t, "1,2;3,4", numfmt.StripSpace(" 1, 2;\n\t3, 4 "))
	require.Equal(t, "", numfmt.StripSpace("   \n\t"))
	require.Equal(t, "abc", numfmt.StripSpace("abc"))
}

package shape_test

import (
	"testing"

	"github.com/katalvlaran/packsat/shape"
	"github.com/stretchr/testify/require"
)

func TestParseASCII_SquareHasOneOrientation(t *testing.T) {
	ss := shape.ParseASCII("##\n##")
	require.NoError(t, ss.Validate())
	require.Len(t, ss, 1)
	require.Equal(t, 4, ss.Cardinality())
}

func TestParseASCII_LShapeHasFourOrientations(t *testing.T) {
	ss := shape.ParseASCII("#\n###")
	require.NoError(t, ss.Validate())
	require.Len(t, ss, 4)
	require.Equal(t, 4, ss.Cardinality())
}

func TestParseASCII_BarHasTwoOrientations(t *testing.T) {
	ss := shape.ParseASCII("####")
	require.NoError(t, ss.Validate())
	require.Len(t, ss, 2)
	require.Equal(t, 4, ss.Cardinality())
}

func TestParseShapes_SplitsOnBlankLines(t *testing.T) {
	sets := shape.ParseShapes("##\n##\n\n####")
	require.Len(t, sets, 2)
}

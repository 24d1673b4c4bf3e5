package ipmodel_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/packsat/ipmodel"
	"github.com/katalvlaran/packsat/shape"
)

func TestWriteMPS_SingleSquare(t *testing.T) {
	inst := shape.Instance{
		Items: []shape.ScheduleItem{
			{Begin: 0, End: 1, Shapes: shape.ShapeSet{
				{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}},
			}},
		},
		Height:   2,
		MaxWidth: 3,
	}

	enc, err := ipmodel.New(inst)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, enc.WriteMPS(&buf))

	out := buf.String()
	require.Contains(t, out, "ROWS")
	require.Contains(t, out, "COLUMNS")
	require.Contains(t, out, "EQ1_0")
	require.Contains(t, out, "WIDTH")
	require.Contains(t, out, "ENDATA")
}

package shape_test

import (
	"testing"

	"github.com/katalvlaran/packsat/shape"
	"github.com/stretchr/testify/require"
)

func square2x2() shape.ShapeSet {
	return shape.ShapeSet{
		{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}},
	}
}

func TestShape_ValidateRejectsEmpty(t *testing.T) {
	var s shape.Shape
	require.ErrorIs(t, s.Validate(), shape.ErrEmptyShape)
}

func TestShape_ValidateRejectsUnnormalized(t *testing.T) {
	s := shape.Shape{{Row: 1, Col: 0}, {Row: 2, Col: 0}}
	require.ErrorIs(t, s.Validate(), shape.ErrUnnormalizedShape)
}

func TestShapeSet_CardinalityMismatch(t *testing.T) {
	ss := shape.ShapeSet{
		{{Row: 0, Col: 0}},
		{{Row: 0, Col: 0}, {Row: 0, Col: 1}},
	}
	require.ErrorIs(t, ss.Validate(), shape.ErrOrientationCardinality)
}

func TestScheduleItem_ValidateBadWindow(t *testing.T) {
	it := shape.ScheduleItem{Begin: 3, End: 3, Shapes: square2x2()}
	require.ErrorIs(t, it.Validate(), shape.ErrBadWindow)
}

func TestInstance_Steps(t *testing.T) {
	in := shape.Instance{
		Height:   2,
		MaxWidth: 4,
		Items: []shape.ScheduleItem{
			{Begin: 0, End: 1, Shapes: square2x2()},
			{Begin: 1, End: 3, Shapes: square2x2()},
		},
	}
	require.NoError(t, in.Validate())
	require.Equal(t, 3, in.Steps())
}

func TestInstance_EmptyScheduleHasZeroSteps(t *testing.T) {
	in := shape.Instance{Height: 2, MaxWidth: 4}
	require.NoError(t, in.Validate())
	require.Equal(t, 0, in.Steps())
}

func TestInstance_BadDimensions(t *testing.T) {
	in := shape.Instance{Height: 0, MaxWidth: 4}
	require.ErrorIs(t, in.Validate(), shape.ErrBadDimensions)
}

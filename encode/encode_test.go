package encode_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/packsat/encode"
	"github.com/katalvlaran/packsat/satsolver"
	"github.com/katalvlaran/packsat/shape"
)

func square2x2() shape.ShapeSet {
	return shape.ShapeSet{
		{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}},
	}
}

func TestNew_ChoiceMapCoverage(t *testing.T) {
	inst := shape.Instance{
		Items: []shape.ScheduleItem{
			{Begin: 0, End: 1, Shapes: square2x2()},
			{Begin: 0, End: 1, Shapes: square2x2()},
		},
		Height:   2,
		MaxWidth: 4,
	}

	solver, err := satsolver.NewGini()
	require.NoError(t, err)

	enc, err := encode.New(inst, solver)
	require.NoError(t, err)
	require.Len(t, enc.BlockVars, 4)
	require.Equal(t, 1, enc.Steps)

	// Every item must have at least one choice literal in the map
	// (spec.md §8 "Choice-map coverage").
	found := map[int]bool{}
	for _, lit := range enc.Choices.Literals() {
		c, ok := enc.Choices.Lookup(lit)
		require.True(t, ok)
		found[c.ItemID] = true
	}
	require.Len(t, found, 2)
}

func TestNew_ShapeExceedsWidth(t *testing.T) {
	// A 1x4 bar cannot fit in a width-2 strip under the strict bound.
	bar := shape.ShapeSet{
		{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3}},
	}
	inst := shape.Instance{
		Items:    []shape.ScheduleItem{{Begin: 0, End: 1, Shapes: bar}},
		Height:   1,
		MaxWidth: 2,
	}

	solver, err := satsolver.NewGini()
	require.NoError(t, err)

	_, err = encode.New(inst, solver)
	require.ErrorIs(t, err, encode.ErrShapeExceedsWidth)
}

func TestNew_EmptySchedule(t *testing.T) {
	inst := shape.Instance{Height: 2, MaxWidth: 3}
	solver, err := satsolver.NewGini()
	require.NoError(t, err)

	enc, err := encode.New(inst, solver)
	require.NoError(t, err)
	require.Equal(t, 0, enc.Steps)
	require.Empty(t, enc.Choices.Literals())
}

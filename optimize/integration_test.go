package optimize_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/packsat/amo"
	"github.com/katalvlaran/packsat/encode"
	"github.com/katalvlaran/packsat/optimize"
	"github.com/katalvlaran/packsat/satsolver"
	"github.com/katalvlaran/packsat/shape"
	"github.com/katalvlaran/packsat/solution"
)

func square2x2() shape.ShapeSet {
	return shape.ShapeSet{
		{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}},
	}
}

func bar1x4() shape.ShapeSet {
	return shape.ShapeSet{
		{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3}},
	}
}

func lTetromino() shape.ShapeSet {
	return shape.ParseASCII("X \nX \nXX")
}

func solveInstance(t *testing.T, inst shape.Instance) *optimize.Result {
	t.Helper()

	solver, err := satsolver.NewGini()
	require.NoError(t, err)

	enc, err := encode.New(inst, solver)
	require.NoError(t, err)

	driver := optimize.New(enc, solution.NewMemorySink())
	result, err := driver.Optimize(context.Background())
	require.NoError(t, err)
	return result
}

// Scenario 1 (spec.md §8): single 2x2 square, W* = 2.
func TestOptimize_SingleSquare(t *testing.T) {
	inst := shape.Instance{
		Items:    []shape.ScheduleItem{{Begin: 0, End: 1, Shapes: square2x2()}},
		Height:   2,
		MaxWidth: 4,
	}
	result := solveInstance(t, inst)
	require.Equal(t, 2, result.Width)
}

// Scenario 2: two 2x2 squares overlapping in time, W* = 4.
func TestOptimize_TwoSquaresOverlapping(t *testing.T) {
	inst := shape.Instance{
		Items: []shape.ScheduleItem{
			{Begin: 0, End: 1, Shapes: square2x2()},
			{Begin: 0, End: 1, Shapes: square2x2()},
		},
		Height:   2,
		MaxWidth: 4,
	}
	result := solveInstance(t, inst)
	require.Equal(t, 4, result.Width)
}

// Scenario 3: two 2x2 squares disjoint in time, W* = 2.
func TestOptimize_TwoSquaresDisjoint(t *testing.T) {
	inst := shape.Instance{
		Items: []shape.ScheduleItem{
			{Begin: 0, End: 1, Shapes: square2x2()},
			{Begin: 1, End: 2, Shapes: square2x2()},
		},
		Height:   2,
		MaxWidth: 4,
	}
	result := solveInstance(t, inst)
	require.Equal(t, 2, result.Width)
}

// Scenario 4: one L-tetromino alone, W* = 3.
func TestOptimize_LTetromino(t *testing.T) {
	inst := shape.Instance{
		Items:    []shape.ScheduleItem{{Begin: 0, End: 1, Shapes: lTetromino()}},
		Height:   2,
		MaxWidth: 5,
	}
	result := solveInstance(t, inst)
	require.Equal(t, 3, result.Width)
}

// Scenario 5: three 1x4 horizontal bars simultaneous, W* = 4.
func TestOptimize_ThreeBars(t *testing.T) {
	inst := shape.Instance{
		Items: []shape.ScheduleItem{
			{Begin: 0, End: 1, Shapes: bar1x4()},
			{Begin: 0, End: 1, Shapes: bar1x4()},
			{Begin: 0, End: 1, Shapes: bar1x4()},
		},
		Height:   3,
		MaxWidth: 5,
	}
	result := solveInstance(t, inst)
	require.Equal(t, 4, result.Width)
}

// Scenario 6: empty schedule, W* = 0, grid has no painted cells.
func TestOptimize_EmptySchedule(t *testing.T) {
	inst := shape.Instance{Height: 1, MaxWidth: 1}
	result := solveInstance(t, inst)
	require.Equal(t, 0, result.Width)
	require.Equal(t, 0, result.Artifact.Width)
}

// Scheme invariance (spec.md §8): the optimum does not depend on the
// at-most-one scheme used, nor on whether cardinality clauses are enabled.
func TestOptimize_SchemeInvariance(t *testing.T) {
	inst := shape.Instance{
		Items: []shape.ScheduleItem{
			{Begin: 0, End: 1, Shapes: square2x2()},
			{Begin: 0, End: 1, Shapes: square2x2()},
		},
		Height:   2,
		MaxWidth: 4,
	}

	schemes := []amo.Scheme{amo.Pairwise, amo.Binary, amo.Commander, amo.Product}
	for _, scheme := range schemes {
		for _, useCardinality := range []bool{true, false} {
			solver, err := satsolver.NewGini()
			require.NoError(t, err)

			enc, err := encode.New(inst, solver,
				encode.WithAMOScheme(scheme),
				encode.WithCardinality(useCardinality))
			require.NoError(t, err)

			driver := optimize.New(enc, solution.NewMemorySink())
			result, err := driver.Optimize(context.Background())
			require.NoError(t, err)
			require.Equal(t, 4, result.Width, "scheme=%v useCardinality=%v", scheme, useCardinality)
		}
	}
}

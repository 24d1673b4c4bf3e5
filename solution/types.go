package solution

import "errors"

// Empty marks an unpainted cell in an Artifact grid.
const Empty = -1

// ErrCellPaintedTwice indicates reconstruction found two distinct items
// claiming the same (t, i, j) cell in the same step -- an encoder bug per
// spec.md §7 ("must abort with a diagnostic, not be silently masked").
var ErrCellPaintedTwice = errors.New("solution: cell painted by two items in the same step")

// Artifact is a [steps][height][width] grid of cell labels. Each entry is
// either Empty or the ItemID of the block occupying that cell at that
// step.
type Artifact struct {
	Width  int
	Height int
	Steps  int
	Grid   [][][]int // [t][i][j]
}

// NewArtifact allocates a width x height x steps grid with every cell set
// to Empty.
func NewArtifact(steps, height, width int) Artifact {
	grid := make([][][]int, steps)
	for t := range grid {
		grid[t] = make([][]int, height)
		for i := range grid[t] {
			row := make([]int, width)
			for j := range row {
				row[j] = Empty
			}
			grid[t][i] = row
		}
	}
	return Artifact{Width: width, Height: height, Steps: steps, Grid: grid}
}

// Paint marks cell (t, i, j) as occupied by itemID, returning
// ErrCellPaintedTwice if it is already occupied by a different item.
func (a Artifact) Paint(t, i, j, itemID int) error {
	cur := a.Grid[t][i][j]
	if cur != Empty && cur != itemID {
		return ErrCellPaintedTwice
	}
	a.Grid[t][i][j] = itemID
	return nil
}

// Sink receives a new best-known artifact each time package optimize
// improves the upper bound, keyed by the achieved width (spec.md §6).
type Sink interface {
	Put(width int, artifact Artifact) error
}

package encode

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/packsat/amo"
	"github.com/katalvlaran/packsat/cardinality"
	"github.com/katalvlaran/packsat/satsolver"
	"github.com/katalvlaran/packsat/shape"
	"github.com/katalvlaran/packsat/varalloc"
)

// Encoder holds the immutable artifacts of one placement encoding: the
// ChoiceMap and block variables package optimize needs to drive search and
// reconstruct solutions. Its clauses have already been pushed into Solver
// by the time New returns; Encoder itself never calls Solve.
type Encoder struct {
	Solver    satsolver.Solver
	Choices   *ChoiceMap
	BlockVars []int
	Steps     int
	Height    int
	MaxWidth  int
	Instance  shape.Instance
}

// cellKey addresses one (t, i, j) cell during encoding.
type cellKey struct{ t, i, j int }

// New builds the full placement encoding for inst against solver and
// returns the artifacts needed to drive optimization. Every clause
// described by spec.md §4.F has been emitted by the time this returns
// without error.
func New(inst shape.Instance, solver satsolver.Solver, opts ...Option) (*Encoder, error) {
	if err := inst.Validate(); err != nil {
		if errors.Is(err, shape.ErrBadDimensions) {
			return nil, fmt.Errorf("%w: %w", ErrBadDimensions, err)
		}
		return nil, err
	}

	cfg := DefaultOptions()
	for _, o := range opts {
		o(&cfg)
	}
	switch cfg.AMOScheme {
	case amo.Pairwise, amo.Binary, amo.Commander, amo.Product:
	default:
		return nil, ErrUnknownScheme
	}

	steps := inst.Steps()
	height := inst.Height
	maxWidth := inst.MaxWidth

	alloc := varalloc.New()
	occ := newOccupancy(steps, height, maxWidth)
	posUsed := make([]int, steps)

	var mapBuilder choiceMapBuilder

	for itemID, item := range inst.Items {
		itemChoices := make([]int, 0)
		for orientID, shp := range item.Shapes {
			mh, mw := shp.MaxRow(), shp.MaxCol()
			for i := 0; i < height-mh; i++ {
				for j := 0; j < maxWidth-mw; j++ {
					lit := alloc.Next()
					mapBuilder.record(lit, Choice{ItemID: itemID, Row: i, Col: j, Orientation: orientID})
					itemChoices = append(itemChoices, lit)

					for _, p := range shp {
						for t := item.Begin; t < item.End; t++ {
							occ.add(t, i+p.Row, j+p.Col, lit)
						}
					}
				}
			}
		}
		if len(itemChoices) == 0 {
			return nil, ErrShapeExceedsWidth
		}

		solver.AddClause(itemChoices)
		amo.Encode(alloc, solver.AddClause, itemChoices, cfg.AMOScheme)

		cardinalityPerStep := item.Shapes.Cardinality()
		for t := item.Begin; t < item.End; t++ {
			posUsed[t] += cardinalityPerStep
		}
	}

	choiceMap := mapBuilder.build()

	if cfg.UseCardinality {
		for t := 0; t < steps; t++ {
			inUse := make([]int, 0, height*maxWidth)
			for j := 0; j < maxWidth; j++ {
				for i := 0; i < height; i++ {
					cell := occ.get(t, i, j)
					lit := alloc.Next()
					for _, c := range cell {
						solver.AddClause([]int{-c, lit})
					}
					clause := append([]int{-lit}, cell...)
					solver.AddClause(clause)
					inUse = append(inUse, lit)
				}
			}
			if err := cardinality.Encode(alloc, solver.AddClause, inUse, posUsed[t], posUsed[t]); err != nil {
				return nil, err
			}
		}
	}

	blockVars := alloc.NextN(maxWidth)
	for j, b := range blockVars {
		for t := 0; t < steps; t++ {
			for i := 0; i < height; i++ {
				occ.add(t, i, j, b)
			}
		}
		if j < maxWidth-1 {
			solver.AddClause([]int{-b, blockVars[j+1]})
		}
	}

	for t := 0; t < steps; t++ {
		for i := 0; i < height; i++ {
			for j := 0; j < maxWidth; j++ {
				amo.Encode(alloc, solver.AddClause, occ.get(t, i, j), cfg.AMOScheme)
			}
		}
	}

	return &Encoder{
		Solver:    solver,
		Choices:   choiceMap,
		BlockVars: blockVars,
		Steps:     steps,
		Height:    height,
		MaxWidth:  maxWidth,
		Instance:  inst,
	}, nil
}

// choiceMapBuilder accumulates (lit, Choice) pairs during encoding and
// compacts them into a dense ChoiceMap once the literal range is known.
type choiceMapBuilder struct {
	lits    []int
	choices []Choice
}

func (b *choiceMapBuilder) record(lit int, c Choice) {
	b.lits = append(b.lits, lit)
	b.choices = append(b.choices, c)
}

func (b *choiceMapBuilder) build() *ChoiceMap {
	if len(b.lits) == 0 {
		return &ChoiceMap{first: 0, slots: nil}
	}
	first, last := b.lits[0], b.lits[0]
	for _, l := range b.lits {
		if l < first {
			first = l
		}
		if l > last {
			last = l
		}
	}
	slots := make([]choiceSlot, last-first+1)
	for i, l := range b.lits {
		slots[l-first] = choiceSlot{choice: b.choices[i], valid: true}
	}
	return &ChoiceMap{first: first, slots: slots}
}

// occupancy is CellOccupancy (spec.md §3): a dense array of per-cell
// literal lists, kept only for the lifetime of New (spec.md §3
// "Lifecycle").
type occupancy struct {
	height, width int
	cells         [][]int // flattened [t*height*width + i*width + j]
}

func newOccupancy(steps, height, width int) *occupancy {
	return &occupancy{
		height: height,
		width:  width,
		cells:  make([][]int, steps*height*width),
	}
}

func (o *occupancy) index(t, i, j int) int {
	return t*o.height*o.width + i*o.width + j
}

func (o *occupancy) add(t, i, j, lit int) {
	idx := o.index(t, i, j)
	o.cells[idx] = append(o.cells[idx], lit)
}

func (o *occupancy) get(t, i, j int) []int {
	return o.cells[o.index(t, i, j)]
}

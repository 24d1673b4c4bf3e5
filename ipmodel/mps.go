package ipmodel

import (
	"fmt"
	"io"

	"github.com/katalvlaran/packsat/shape"
)

// Encoder builds the IP formulation of spec.md §4.H for one instance.
type Encoder struct {
	inst   shape.Instance
	steps  int
	rows   []row
	cols   []*column
	colIdx map[string]*column
}

// New builds the full IP model for inst. Unlike package encode, there is
// no separate "add clauses to a live back-end" step -- the whole model is
// assembled in memory and only ever leaves via WriteMPS.
func New(inst shape.Instance) (*Encoder, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}

	e := &Encoder{inst: inst, steps: inst.Steps(), colIdx: make(map[string]*column)}
	e.build()
	return e, nil
}

func (e *Encoder) col(name string, integer bool, upper int) *column {
	if c, ok := e.colIdx[name]; ok {
		return c
	}
	c := &column{name: name, integer: integer, upper: upper}
	e.cols = append(e.cols, c)
	e.colIdx[name] = c
	return c
}

func (e *Encoder) addRow(name string, kind byte, rhs int) {
	e.rows = append(e.rows, row{name: name, kind: kind, rhs: rhs})
}

func (e *Encoder) addEntry(colName, rowName string, coeff int) {
	c := e.colIdx[colName]
	c.entries = append(c.entries, entry{row: rowName, coeff: coeff})
}

// build assembles every row/column described in spec.md §4.H: per-item
// exactly-one, in-use equivalence (with the single aggregate inequality
// resolved per DESIGN.md's Open Question #2 decision), per-step
// cardinality, monotone blocks, the width equation, and per-cell mutual
// exclusion.
func (e *Encoder) build() {
	height, width := e.inst.Height, e.inst.MaxWidth
	type covering struct {
		choices []string
		blocks  []string
	}
	cells := make(map[[3]int]*covering)
	posUsed := make([]int, e.steps)

	cellKey := func(t, i, j int) [3]int { return [3]int{t, i, j} }
	cellAt := func(t, i, j int) *covering {
		k := cellKey(t, i, j)
		c, ok := cells[k]
		if !ok {
			c = &covering{}
			cells[k] = c
		}
		return c
	}

	for itemID, item := range e.inst.Items {
		rowName := fmt.Sprintf("EQ1_%d", itemID)
		e.addRow(rowName, 'E', 1)

		for orientID, shp := range item.Shapes {
			mh, mw := shp.MaxRow(), shp.MaxCol()
			for i := 0; i < height-mh; i++ {
				for j := 0; j < width-mw; j++ {
					name := fmt.Sprintf("c_%d_%d_%d_%d", itemID, i, j, orientID)
					e.col(name, true, 0)
					e.addEntry(name, rowName, 1)

					for t := item.Begin; t < item.End; t++ {
						for _, p := range shp {
							cellAt(t, i+p.Row, j+p.Col).choices = append(cellAt(t, i+p.Row, j+p.Col).choices, name)
						}
					}
				}
			}
		}

		card := item.Shapes.Cardinality()
		for t := item.Begin; t < item.End; t++ {
			posUsed[t] += card
		}
	}

	blockNames := make([]string, width)
	for j := 0; j < width; j++ {
		blockNames[j] = fmt.Sprintf("b_%d", j)
		e.col(blockNames[j], true, 0)
	}
	for t := 0; t < e.steps; t++ {
		for i := 0; i < height; i++ {
			for j := 0; j < width; j++ {
				cellAt(t, i, j)
			}
		}
	}
	for j, name := range blockNames {
		for t := 0; t < e.steps; t++ {
			for i := 0; i < height; i++ {
				cellAt(t, i, j).blocks = append(cellAt(t, i, j).blocks, name)
			}
		}
	}
	for j := 0; j+1 < width; j++ {
		rowName := fmt.Sprintf("MONO_%d", j)
		e.addRow(rowName, 'G', 0)
		e.addEntry(blockNames[j+1], rowName, 1)
		e.addEntry(blockNames[j], rowName, -1)
	}

	e.col("b", true, width)
	e.addRow("WIDTH", 'E', width)
	e.addEntry("b", "WIDTH", 1)
	for _, name := range blockNames {
		e.addEntry(name, "WIDTH", 1)
	}

	e.addRow("COST", 'N', 0)
	e.addEntry("b", "COST", 1)

	inUseByStep := make([][]string, e.steps)
	for t := 0; t < e.steps; t++ {
		for i := 0; i < height; i++ {
			for j := 0; j < width; j++ {
				cov := cellAt(t, i, j)
				inUseName := fmt.Sprintf("f_%d_%d_%d", t, j, i)
				e.col(inUseName, true, 0)
				inUseByStep[t] = append(inUseByStep[t], inUseName)

				aggRow := fmt.Sprintf("INUSE_%d_%d_%d", t, i, j)
				e.addRow(aggRow, 'G', 0)
				for _, choiceName := range cov.choices {
					e.addEntry(choiceName, aggRow, 1)
				}
				e.addEntry(inUseName, aggRow, -1)

				for _, choiceName := range cov.choices {
					dirRow := fmt.Sprintf("DIR_%d_%d_%d_%s", t, i, j, choiceName)
					e.addRow(dirRow, 'G', 0)
					e.addEntry(inUseName, dirRow, 1)
					e.addEntry(choiceName, dirRow, -1)
				}

				exclRow := fmt.Sprintf("EXCL_%d_%d_%d", t, i, j)
				e.addRow(exclRow, 'L', 1)
				for _, choiceName := range cov.choices {
					e.addEntry(choiceName, exclRow, 1)
				}
				for _, blockName := range cov.blocks {
					e.addEntry(blockName, exclRow, 1)
				}
			}
		}
	}
	for t := 0; t < e.steps; t++ {
		rowName := fmt.Sprintf("CARD_%d", t)
		e.addRow(rowName, 'E', posUsed[t])
		for _, name := range inUseByStep[t] {
			e.addEntry(name, rowName, 1)
		}
	}
}

// WriteMPS emits the assembled model as a fixed-section MPS file.
func (e *Encoder) WriteMPS(w io.Writer) error {
	bw := &errWriter{w: w}

	bw.printf("NAME          PACKSAT\n")

	bw.printf("ROWS\n")
	for _, r := range e.rows {
		bw.printf(" %c  %s\n", r.kind, r.name)
	}

	bw.printf("COLUMNS\n")
	inInt := false
	markerID := 0
	for _, c := range e.cols {
		if c.integer && !inInt {
			bw.printf("    MARKER                 M%d  'MARKER'                 'INTORG'\n", markerID)
			markerID++
			inInt = true
		} else if !c.integer && inInt {
			bw.printf("    MARKER                 M%d  'MARKER'                 'INTEND'\n", markerID)
			markerID++
			inInt = false
		}
		for _, en := range c.entries {
			bw.printf("    %-10s%-10s%12d\n", c.name, en.row, en.coeff)
		}
	}
	if inInt {
		bw.printf("    MARKER                 M%d  'MARKER'                 'INTEND'\n", markerID)
	}

	bw.printf("RHS\n")
	for _, r := range e.rows {
		if r.rhs != 0 {
			bw.printf("    RHS       %-10s%12d\n", r.name, r.rhs)
		}
	}

	bw.printf("BOUNDS\n")
	for _, c := range e.cols {
		switch {
		case c.upper > 0:
			bw.printf(" UI BND       %-10s%12d\n", c.name, c.upper)
		case c.integer:
			bw.printf(" BV BND       %s\n", c.name)
		}
	}

	bw.printf("ENDATA\n")

	return bw.err
}

// errWriter buffers the first write error so callers only check it once
// at the end, matching the teacher's "check once at the boundary" style.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

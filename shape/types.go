package shape

import "sort"

// Point is a single (row, col) cell offset within a Shape.
type Point struct {
	Row int
	Col int
}

// Shape is a nonempty, normalized set of cell offsets describing one
// orientation of a polyomino. Normalized means the smallest Row and the
// smallest Col across all Points are both zero.
type Shape []Point

// MaxRow returns the largest Row offset used by the Shape. Callers must
// ensure the Shape is non-empty; Validate checks this once up front.
func (s Shape) MaxRow() int {
	m := s[0].Row
	for _, p := range s[1:] {
		if p.Row > m {
			m = p.Row
		}
	}
	return m
}

// MaxCol returns the largest Col offset used by the Shape.
func (s Shape) MaxCol() int {
	m := s[0].Col
	for _, p := range s[1:] {
		if p.Col > m {
			m = p.Col
		}
	}
	return m
}

// Validate reports whether s is nonempty and normalized to (0,0).
func (s Shape) Validate() error {
	if len(s) == 0 {
		return ErrEmptyShape
	}
	minRow, minCol := s[0].Row, s[0].Col
	for _, p := range s[1:] {
		if p.Row < minRow {
			minRow = p.Row
		}
		if p.Col < minCol {
			minCol = p.Col
		}
	}
	if minRow != 0 || minCol != 0 {
		return ErrUnnormalizedShape
	}
	return nil
}

// normalize returns a copy of points translated so the minimum row and
// column are both zero, sorted for deterministic comparison/dedup.
func normalize(points []Point) Shape {
	minRow, minCol := points[0].Row, points[0].Col
	for _, p := range points[1:] {
		if p.Row < minRow {
			minRow = p.Row
		}
		if p.Col < minCol {
			minCol = p.Col
		}
	}
	out := make(Shape, len(points))
	for i, p := range points {
		out[i] = Point{Row: p.Row - minRow, Col: p.Col - minCol}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// ShapeSet is an ordered, fixed list of 1-4 distinct orientations of one
// polyomino. A ShapeSet is treated as immutable once constructed.
type ShapeSet []Shape

// Cardinality returns the number of cells occupied by every orientation in
// the set (all orientations of one item have equal cardinality, per
// spec.md §3). Callers must call Validate first.
func (ss ShapeSet) Cardinality() int {
	return len(ss[0])
}

// Validate reports whether every orientation in ss is individually valid
// and all orientations share the same cardinality.
func (ss ShapeSet) Validate() error {
	if len(ss) == 0 {
		return ErrEmptyShapeSet
	}
	n := len(ss[0])
	for _, s := range ss {
		if err := s.Validate(); err != nil {
			return err
		}
		if len(s) != n {
			return ErrOrientationCardinality
		}
	}
	return nil
}

// ScheduleItem is a single scheduled block: a ShapeSet present during the
// half-open interval [Begin, End).
type ScheduleItem struct {
	Begin  int
	End    int
	Shapes ShapeSet
}

// Validate reports whether the item's window and shape set are well formed.
func (it ScheduleItem) Validate() error {
	if it.Begin < 0 || it.Begin >= it.End {
		return ErrBadWindow
	}
	return it.Shapes.Validate()
}

// Instance is a full packing problem: an ordered schedule plus the fixed
// strip Height and the upper bound MaxWidth to search within.
type Instance struct {
	Items    []ScheduleItem
	Height   int
	MaxWidth int
}

// Validate checks every item and the instance-level dimensions. It does
// not check that any shape actually fits within Height/MaxWidth -- that is
// the encoder's responsibility (spec.md §4.F's deliberate strict bound).
func (in Instance) Validate() error {
	if in.Height <= 0 || in.MaxWidth <= 0 {
		return ErrBadDimensions
	}
	for _, it := range in.Items {
		if err := it.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Steps returns the number of discrete time steps spanned by the
// instance, i.e. max(End) over all items, or zero for an empty schedule.
func (in Instance) Steps() int {
	steps := 0
	for _, it := range in.Items {
		if it.End > steps {
			steps = it.End
		}
	}
	return steps
}

package instance

import (
	"math/rand"
	"sort"

	"github.com/samber/lo"

	"github.com/katalvlaran/packsat/shape"
)

// Random greedily schedules blocks drawn from shapes to approach a target
// per-step fill level, a Go port of original_source/gen_instance.py's
// random_instance. Items are scheduled until every time step's fill level
// exceeds MaxFill minus the smallest usable shape's cardinality, i.e. no
// step can take even the smallest usable shape without exceeding MaxFill.
//
// catalog is first narrowed to shapes with at least one orientation that
// fits within height x maxWidth (spec.md §4.F's strict placement bound);
// ErrNoUsableShapes is returned if none qualify.
func Random(shapes []shape.ShapeSet, steps, height, maxWidth int, opts ...Option) (shape.Instance, error) {
	if len(shapes) == 0 {
		return shape.Instance{}, ErrNoShapes
	}
	lo.ForEach(shapes, func(ss shape.ShapeSet, _ int) { lo.Must0(ss.Validate()) })

	usable := lo.Filter(shapes, func(ss shape.ShapeSet, _ int) bool {
		return lo.SomeBy(ss, func(s shape.Shape) bool {
			return s.MaxRow() < height && s.MaxCol() < maxWidth
		})
	})
	if len(usable) == 0 {
		return shape.Instance{}, ErrNoUsableShapes
	}

	cfg := DefaultOptions()
	for _, o := range opts {
		o(&cfg)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	minCard := lo.Min(lo.Map(usable, func(ss shape.ShapeSet, _ int) int { return ss.Cardinality() }))
	fillLimit := cfg.MaxFill - minCard

	fillLevels := make([]int, steps)
	var items []shape.ScheduleItem

	for {
		open := lo.Filter(lo.Range(steps), func(t int, _ int) bool { return fillLevels[t] <= fillLimit })
		if len(open) == 0 {
			break
		}
		selected := open[rng.Intn(len(open))]

		begin := selected
		for begin-1 >= 0 && fillLevels[begin-1] <= fillLimit {
			begin--
		}
		end := selected + 1
		for end < steps && fillLevels[end] <= fillLimit {
			end++
		}

		duration := 1 + rng.Intn(end-begin)
		if duration > cfg.MaxDuration {
			duration = cfg.MaxDuration
		}

		blockBegin := begin + rng.Intn(end-begin-duration+1)
		blockEnd := blockBegin + duration

		fillLevel := 0
		for t := blockBegin; t < blockEnd; t++ {
			if fillLevels[t] > fillLevel {
				fillLevel = fillLevels[t]
			}
		}
		margin := cfg.MaxFill - fillLevel

		candidates := lo.Filter(usable, func(ss shape.ShapeSet, _ int) bool { return ss.Cardinality() <= margin })
		if len(candidates) == 0 {
			return shape.Instance{}, ErrNoUsableShapes
		}
		blockShape := candidates[rng.Intn(len(candidates))]

		weight := blockShape.Cardinality()
		for t := blockBegin; t < blockEnd; t++ {
			fillLevels[t] += weight
		}

		items = append(items, shape.ScheduleItem{Begin: blockBegin, End: blockEnd, Shapes: blockShape})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Begin != items[j].Begin {
			return items[i].Begin < items[j].Begin
		}
		return items[i].End < items[j].End
	})

	return shape.Instance{Items: items, Height: height, MaxWidth: maxWidth}, nil
}

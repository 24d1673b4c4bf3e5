package encode

import (
	"errors"

	"github.com/katalvlaran/packsat/amo"
)

// Sentinel errors surfaced by New before any solver call (spec.md §7
// error kind 1, "configuration error").
var (
	// ErrUnknownScheme is returned when Options.AMOScheme is not one of
	// the amo package's declared constants.
	ErrUnknownScheme = errors.New("encode: unknown at-most-one scheme")

	// ErrBadDimensions is returned when the instance's Height or MaxWidth
	// is non-positive. New detects this through shape.Instance.Validate and
	// wraps shape.ErrBadDimensions in this sentinel, so errors.Is matches
	// either one.
	ErrBadDimensions = errors.New("encode: height and max_width must be positive")

	// ErrShapeExceedsWidth is returned when an item has zero valid
	// placements for every orientation within [height) x [max_width) --
	// emitting its at-least-one clause empty would force UNSAT, so New
	// rejects it up front instead.
	ErrShapeExceedsWidth = errors.New("encode: item has no orientation that fits within height/max_width")
)

// Choice is a concrete placement: orientation Orientation of item ItemID's
// shape, top-left corner at (Row, Col) (spec.md §3).
type Choice struct {
	ItemID      int
	Row         int
	Col         int
	Orientation int
}

// ChoiceMap is an immutable, densely-indexed table from choice literal to
// Choice. It is backed by a flat slice indexed by literal-first (spec.md
// §9 "Choice -> placement mapping"), not a hash map, since choice literals
// form one contiguous range per item with only small gaps left by that
// item's at-most-one auxiliaries.
type ChoiceMap struct {
	first int
	slots []choiceSlot
}

type choiceSlot struct {
	choice Choice
	valid  bool
}

// Lookup returns the Choice recorded for lit and true, or the zero Choice
// and false if lit is not a choice literal (e.g. an auxiliary or block
// variable).
func (m *ChoiceMap) Lookup(lit int) (Choice, bool) {
	idx := lit - m.first
	if idx < 0 || idx >= len(m.slots) || !m.slots[idx].valid {
		return Choice{}, false
	}
	return m.slots[idx].choice, true
}

// Literals returns every choice literal in allocation order, for callers
// that need to iterate the whole map (e.g. solution reconstruction).
func (m *ChoiceMap) Literals() []int {
	out := make([]int, 0, len(m.slots))
	for i, s := range m.slots {
		if s.valid {
			out = append(out, m.first+i)
		}
	}
	return out
}

// Options configures Placement encoding. Construct via DefaultOptions and
// override with the With* functions, mirroring the teacher's functional
// options style (dijkstra.Options).
type Options struct {
	// UseCardinality enables the §4.F cardinality clauses per time step.
	// Disabling it still leaves the per-cell mutual-exclusion at-most-one
	// clauses, which alone are sufficient for correctness but weaker for
	// solver propagation (spec.md §6 CLI `--no-cardinality`).
	UseCardinality bool

	// AMOScheme selects the at-most-one encoding (spec.md §4.C) used for
	// both per-item and per-cell constraints.
	AMOScheme amo.Scheme
}

// Option is a functional option for Options.
type Option func(*Options)

// WithCardinality toggles the §4.F cardinality clauses.
func WithCardinality(enabled bool) Option {
	return func(o *Options) { o.UseCardinality = enabled }
}

// WithAMOScheme selects the at-most-one encoding scheme.
func WithAMOScheme(scheme amo.Scheme) Option {
	return func(o *Options) { o.AMOScheme = scheme }
}

// DefaultOptions returns cardinality enabled and the product AMO scheme,
// matching spec.md §6's CLI defaults.
func DefaultOptions() Options {
	return Options{UseCardinality: true, AMOScheme: amo.Product}
}

package optimize

import (
	"errors"
	"time"

	"github.com/katalvlaran/packsat/solution"
)

// ErrInfeasible indicates the formula is UNSAT even at max_width, i.e. no
// packing exists within the given bounds (spec.md §7 error kind 4).
var ErrInfeasible = errors.New("optimize: no packing exists within given bounds")

// Result is the optimizer's final answer: the minimum feasible width and
// the solution achieving it.
type Result struct {
	Width    int
	Artifact solution.Artifact
}

// Options configures the driver's initial timeouts (spec.md §4.G).
type Options struct {
	UpperTimeout time.Duration
	LowerTimeout time.Duration
}

// Option is a functional option for Options.
type Option func(*Options)

// WithUpperTimeout overrides the initial timeout for "try to improve
// upper" queries.
func WithUpperTimeout(d time.Duration) Option {
	return func(o *Options) { o.UpperTimeout = d }
}

// WithLowerTimeout overrides the initial timeout for "try to refute
// lower" queries.
func WithLowerTimeout(d time.Duration) Option {
	return func(o *Options) { o.LowerTimeout = d }
}

// DefaultOptions returns both timeouts at 5 seconds, matching spec.md
// §4.G's stated defaults.
func DefaultOptions() Options {
	return Options{UpperTimeout: 5 * time.Second, LowerTimeout: 5 * time.Second}
}

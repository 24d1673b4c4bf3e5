package instance

import "errors"

// Sentinel errors returned by Random.
var (
	// ErrNoShapes indicates Random was called with an empty catalog.
	ErrNoShapes = errors.New("instance: no candidate shapes provided")

	// ErrNoUsableShapes indicates every candidate shape's every
	// orientation exceeds height or max_width.
	ErrNoUsableShapes = errors.New("instance: no candidate shape fits within height/max_width")
)

// Options configures random schedule generation.
type Options struct {
	// MaxFill is the target number of occupied cells to reach at every
	// time step before moving on (spec.md §6 CLI `--fill`).
	MaxFill int
	// MaxDuration bounds how many steps a freshly scheduled item spans
	// (spec.md §6 CLI `--duration`); actual durations are drawn uniformly
	// from [1, length of the open window around the chosen step] and then
	// clamped to MaxDuration.
	MaxDuration int
	// Seed drives the deterministic RNG (spec.md §6 CLI `--seed`).
	Seed int64
}

// Option is a functional option for Options.
type Option func(*Options)

// WithMaxFill sets the target per-step fill level.
func WithMaxFill(n int) Option {
	return func(o *Options) { o.MaxFill = n }
}

// WithMaxDuration sets the maximum item duration.
func WithMaxDuration(n int) Option {
	return func(o *Options) { o.MaxDuration = n }
}

// WithSeed sets the RNG seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// DefaultOptions returns a fill level of 4, a max duration of 3 steps, and
// seed 0.
func DefaultOptions() Options {
	return Options{MaxFill: 4, MaxDuration: 3, Seed: 0}
}

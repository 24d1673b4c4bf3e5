package optimize

import (
	"context"
	"time"

	"github.com/katalvlaran/packsat/encode"
	"github.com/katalvlaran/packsat/satsolver"
	"github.com/katalvlaran/packsat/solution"
)

// infiniteTimeout marks the squeeze-case solve (spec.md §4.G step 1),
// where no deadline is installed at all.
const infiniteTimeout time.Duration = -1

// Driver runs the alternating-bound loop over one *encode.Encoder.
type Driver struct {
	enc  *encode.Encoder
	sink solution.Sink

	lower        int
	upper        int
	blockedWidth int
	upperTimeout time.Duration
	lowerTimeout time.Duration

	best *solution.Artifact
}

// New constructs a Driver over enc's already-encoded formula. sink
// receives each improved solution as soon as it is found.
func New(enc *encode.Encoder, sink solution.Sink, opts ...Option) *Driver {
	cfg := DefaultOptions()
	for _, o := range opts {
		o(&cfg)
	}
	return &Driver{
		enc:          enc,
		sink:         sink,
		lower:        -1,
		upper:        enc.MaxWidth + 1,
		blockedWidth: enc.MaxWidth,
		upperTimeout: cfg.UpperTimeout,
		lowerTimeout: cfg.LowerTimeout,
	}
}

// Optimize runs the main loop (spec.md §4.G) until lower+1 == upper,
// returning the minimum feasible width and its solution, or ErrInfeasible
// if even max_width is unreachable. ctx is checked at the start of every
// round, and during time-limited Solve calls via the installed terminate
// callback; the squeeze-case solve runs with no callback, so ctx does not
// interrupt it.
func (d *Driver) Optimize(ctx context.Context) (*Result, error) {
	for d.lower+1 < d.upper {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if d.lower+2 == d.upper {
			if _, err := d.solveAt(ctx, d.lower+1, infiniteTimeout); err != nil {
				return nil, err
			}
			break
		}

		progress, err := d.solveAt(ctx, d.upper-1, d.upperTimeout)
		if err != nil {
			return nil, err
		}
		if !progress {
			d.upperTimeout *= 2
		}

		if d.lower+1 >= d.upper {
			break
		}

		progress, err = d.solveAt(ctx, d.lower+1, d.lowerTimeout)
		if err != nil {
			return nil, err
		}
		if !progress {
			d.lowerTimeout = time.Duration(float64(d.lowerTimeout) * 1.1)
		}
	}

	if d.upper == d.enc.MaxWidth+1 {
		return nil, ErrInfeasible
	}
	return &Result{Width: d.upper, Artifact: *d.best}, nil
}

// solveAt assumes width w feasible (if not already permanently blocked
// past it), solves under timeout, updates lower/upper, and returns true
// iff the solve reached a verdict rather than being interrupted.
func (d *Driver) solveAt(ctx context.Context, w int, timeout time.Duration) (bool, error) {
	if w < d.blockedWidth {
		d.enc.Solver.Assume(d.enc.BlockVars[w])
	}

	if timeout < 0 {
		d.enc.Solver.SetTerminate(nil)
	} else {
		deadline := time.Now().Add(timeout)
		d.enc.Solver.SetTerminate(func() bool {
			return ctx.Err() != nil || time.Now().After(deadline)
		})
	}

	status, err := d.enc.Solver.Solve()
	if err != nil {
		return false, err
	}

	if status == satsolver.UNSAT {
		d.lower = w
	}

	// Advance lower past any width the solver has itself proven
	// infeasible: Fixed(BlockVars[w]) == False means every model forces
	// BlockVars[w] false, i.e. more than w columns are always needed, so
	// w is refuted independent of the assumption just tried. Fixed(...)
	// == True instead means w's upper bound was already achieved by some
	// earlier blockWidth call and says nothing about feasibility below it.
	for d.lower+1 < d.enc.MaxWidth && d.enc.Solver.Fixed(d.enc.BlockVars[d.lower+1]) == satsolver.False {
		d.lower++
	}

	if status == satsolver.SAT {
		achieved, artifact, err := d.reconstruct()
		if err != nil {
			return false, err
		}
		d.upper = achieved
		d.best = &artifact
		if err := d.sink.Put(achieved, artifact); err != nil {
			return false, err
		}
		d.blockWidth(achieved - 1)
	}

	return status != satsolver.INTERRUPTED, nil
}

// blockWidth permanently forbids every width >= w by asserting B[w],
// never unassuming progress already achieved (spec.md §4.G
// "lower_blocked_width"). w < 0 (after a width-0 solution) has no block
// variable and is a no-op.
func (d *Driver) blockWidth(w int) {
	if w >= 0 && w < d.blockedWidth {
		d.blockedWidth = w
		d.enc.Solver.AddClause([]int{d.enc.BlockVars[w]})
	}
}

// reconstruct paints the current SAT model's true choice literals into a
// fresh solution.Artifact sized to the actually achieved width (spec.md
// §4.F "Solution reconstruction").
func (d *Driver) reconstruct() (int, solution.Artifact, error) {
	blocked := 0
	for _, b := range d.enc.BlockVars {
		if d.enc.Solver.Value(b) == satsolver.True {
			blocked++
		}
	}
	width := d.enc.MaxWidth - blocked

	artifact := solution.NewArtifact(d.enc.Steps, d.enc.Height, width)
	for _, lit := range d.enc.Choices.Literals() {
		if d.enc.Solver.Value(lit) != satsolver.True {
			continue
		}
		choice, ok := d.enc.Choices.Lookup(lit)
		if !ok {
			continue
		}
		item := d.enc.Instance.Items[choice.ItemID]
		mask := item.Shapes[choice.Orientation]
		for t := item.Begin; t < item.End; t++ {
			for _, p := range mask {
				if err := artifact.Paint(t, choice.Row+p.Row, choice.Col+p.Col, choice.ItemID); err != nil {
					return 0, solution.Artifact{}, err
				}
			}
		}
	}
	return width, artifact, nil
}

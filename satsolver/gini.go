package satsolver

import (
	"time"

	"github.com/irifrance/gini"
	"github.com/irifrance/gini/z"
)

// pollInterval bounds how often Solve checks an installed terminate
// callback against gini's Try, since gini itself takes a duration rather
// than a poll function.
const pollInterval = 50 * time.Millisecond

// Gini is a Solver backed by github.com/irifrance/gini, a pure-Go
// incremental CDCL solver with IPASIR-style assumptions.
//
// gini numbers its own z.Var handles starting at 1 in allocation order, so
// Gini grows its variable table lazily as literals with new magnitudes are
// seen -- callers do not need to pre-register every varalloc.Allocator
// identifier.
//
// gini has no native "fixed at decision level 0" query, so Fixed is
// approximated conservatively: it reports True for a literal this adapter
// itself has permanently forced via a unit AddClause (e.g. the optimizer's
// lower_blocked_width unit clauses, spec.md §4.G), False for a literal
// whose negation was forced that way, and Unknown otherwise. This under-reports solver-internal implications but never
// misreports one, which is the safe direction for an optimizer that only
// uses Fixed to skip redundant assumptions.
type Gini struct {
	g        *gini.Gini
	maxVar   int
	assumed  []int
	forced   map[int]bool
	solved   bool
	terminat func() bool
}

// NewGini constructs a Gini adapter. It never fails in practice (gini is
// pure Go), but returns ErrBackendUnavailable symmetrically with other
// back-ends (spec.md §7 error kind 2) so callers have one failure path.
func NewGini() (*Gini, error) {
	g := gini.New()
	if g == nil {
		return nil, ErrBackendUnavailable
	}
	return &Gini{g: g, forced: make(map[int]bool)}, nil
}

func (s *Gini) ensureVar(v int) {
	for s.maxVar < v {
		s.g.NewVar()
		s.maxVar++
	}
}

func toLit(x int) z.Lit {
	v := z.Var(abs(x))
	if x < 0 {
		return v.Neg()
	}
	return v.Pos()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// AddClause implements Solver.
func (s *Gini) AddClause(lits []int) {
	if len(lits) == 1 {
		s.forced[lits[0]] = true
	}
	for _, l := range lits {
		s.ensureVar(abs(l))
		s.g.Add(toLit(l))
	}
	s.g.Add(z.LitNull)
}

// Assume implements Solver.
func (s *Gini) Assume(lit int) {
	s.ensureVar(abs(lit))
	s.assumed = append(s.assumed, lit)
	s.g.Assume(toLit(lit))
}

// Solve implements Solver.
func (s *Gini) Solve() (Status, error) {
	defer func() { s.assumed = s.assumed[:0] }()

	var result int
	if s.terminat == nil {
		result = s.g.Solve()
	} else {
		for {
			for _, lit := range s.assumed {
				s.g.Assume(toLit(lit))
			}
			result = s.g.Try(pollInterval)
			if result != 0 {
				break
			}
			if s.terminat() {
				return INTERRUPTED, nil
			}
		}
	}

	switch result {
	case 1:
		s.solved = true
		return SAT, nil
	case -1:
		s.solved = false
		return UNSAT, nil
	case 0:
		s.solved = false
		return INTERRUPTED, nil
	default:
		return 0, ErrProtocol
	}
}

// Value implements Solver.
func (s *Gini) Value(lit int) Tri {
	if !s.solved {
		return Unknown
	}
	v := s.g.Value(toLit(abs(lit)))
	if lit < 0 {
		v = !v
	}
	if v {
		return True
	}
	return False
}

// Fixed implements Solver. See the Gini doc comment for the approximation.
func (s *Gini) Fixed(lit int) Tri {
	if s.forced[lit] {
		return True
	}
	if s.forced[-lit] {
		return False
	}
	return Unknown
}

// SetTerminate implements Solver.
func (s *Gini) SetTerminate(cb func() bool) {
	s.terminat = cb
}

package satsolver

import "errors"

// Sentinel errors surfaced by satsolver implementations.
var (
	// ErrBackendUnavailable indicates the underlying SAT library could not
	// be initialized (spec.md §7 error kind 2).
	ErrBackendUnavailable = errors.New("satsolver: back-end unavailable")

	// ErrProtocol indicates the back-end returned a status this adapter
	// does not recognize (spec.md §7 error kind 3).
	ErrProtocol = errors.New("satsolver: unrecognized solver status")
)

// Status is the outcome of one Solve call.
type Status int

const (
	// SAT indicates the current clause set plus assumptions is satisfiable.
	SAT Status = iota
	// UNSAT indicates the current clause set plus assumptions has no model.
	UNSAT
	// INTERRUPTED indicates the terminate callback aborted the search
	// before a verdict was reached.
	INTERRUPTED
)

// String renders the status for diagnostics and log output.
func (s Status) String() string {
	switch s {
	case SAT:
		return "SAT"
	case UNSAT:
		return "UNSAT"
	case INTERRUPTED:
		return "INTERRUPTED"
	default:
		return "UNKNOWN"
	}
}

// Tri is a three-valued answer to a Value/Fixed query: the literal is
// known true, known false, or the back-end has no opinion yet.
type Tri int

const (
	// Unknown indicates the back-end cannot currently answer the query.
	Unknown Tri = iota
	// True indicates the literal is known true.
	True
	// False indicates the literal is known false.
	False
)

// Solver is the narrow incremental interface the encoder and optimizer
// consume (spec.md §4.E). Literals are nonzero signed integers, exactly as
// on the DIMACS/IPASIR wire: positive selects the variable, negative its
// negation.
type Solver interface {
	// AddClause appends a permanent clause (a disjunction of literals).
	AddClause(lits []int)

	// Assume asserts lit for the next Solve call only; assumptions do not
	// persist across calls.
	Assume(lit int)

	// Solve runs search under any assumptions made since the last Solve
	// and returns the verdict.
	Solve() (Status, error)

	// Value reports lit's truth value in the most recent SAT model.
	// Unknown before any SAT result or if the back-end cannot say.
	Value(lit int) Tri

	// Fixed reports whether lit is permanently implied by the clause set
	// alone (independent of any assumption), i.e. true/false at decision
	// level 0. Unknown if the back-end has not derived this.
	Fixed(lit int) Tri

	// SetTerminate installs a callback the solver polls during Solve; a
	// true return aborts the in-flight search with status INTERRUPTED. A
	// nil callback clears any previously installed one.
	SetTerminate(cb func() bool)
}

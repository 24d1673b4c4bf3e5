// Package optimize implements the alternating-bound optimization driver
// (spec.md §4.G): it repeatedly queries a satsolver.Solver under block-
// variable assumptions and adaptive timeouts, shrinking [lower, upper]
// until they are one apart, and persists each improved solution through a
// solution.Sink.
//
// The driver owns no solver state beyond lower/upper/blockedWidth and the
// timeouts -- the Solver and the ChoiceMap it reconstructs solutions from
// both live in the *encode.Encoder it is given (spec.md §3 "Lifecycle":
// the optimizer mutates only its own bounds plus at most max_width
// permanent unit clauses over its lifetime).
package optimize

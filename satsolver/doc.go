// Package satsolver narrows an incremental SAT back-end down to the six
// operations the encoder/optimizer core actually needs (spec.md §4.E):
// adding permanent clauses, making transient assumptions, solving under an
// optional deadline, and querying a literal's value or permanently-fixed
// status after a solve.
//
// Solver is the contract; Gini is the only production implementation,
// backed by github.com/irifrance/gini, a pure-Go incremental CDCL solver.
// Callers that only need the contract (e.g. for tests) may supply any
// other implementation.
package satsolver

// Package amo encodes "at most one of N literals is true" constraints
// into CNF clauses, using one of four interchangeable schemes.
//
// What:
//
//   - Pairwise: emits (¬x ∨ ¬y) for every unordered pair. No auxiliary
//     variables; O(n²) clauses.
//   - Binary: log-encodes the chosen index into ⌈log2 n⌉ auxiliary bits.
//     O(n log n) clauses, no recursion.
//   - Commander: partitions the literals into ⌊√n⌋ groups, each guarded by
//     a commander literal, and recurses on groups and commanders.
//   - Product: arranges the literals into an r×c grid and constrains row
//     and column membership, recursing on rows and columns.
//
// Why:
//
//   - Pairwise is simplest but quadratic; for large N the other schemes
//     trade a handful of auxiliary variables for far fewer clauses. Which
//     one wins in practice depends on the SAT solver's clause-learning
//     behavior, hence the encoder lets the caller pick (spec.md §6
//     `--at-most-one`).
//
// Thresholds (spec.md §4.C): each scheme falls back to Pairwise whenever
// N is at or below its threshold -- Pairwise: unbounded, Binary: 4,
// Commander: 16, Product: 16.
//
// Edge cases: N <= 1 emits nothing. N == 2 always emits the single
// pairwise clause, regardless of scheme.
//
// Errors:
//
//   - ErrUnknownScheme: ParseScheme was given a name that isn't one of
//     "pairwise", "binary", "commander", "product".
package amo

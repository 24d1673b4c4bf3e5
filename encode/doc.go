// Package encode implements the placement encoder (spec.md §4.F): it
// translates a shape.Instance into CNF clauses pushed straight into a
// satsolver.Solver, and retains just enough bookkeeping -- a ChoiceMap and
// the per-column BlockVars -- for package optimize to drive the search and
// reconstruct solutions afterward.
//
// Variable allocation and clause emission follow spec.md §4.F's order
// exactly (item choices, per-item at-most-one, per-time-step cardinality,
// block variables, per-cell mutual exclusion), since that order is what
// makes encodings reproducible across runs for a fixed instance (spec.md
// §9 "Determinism").
//
// Complexity:
//
//	– Variables: O(items · orientations · height · max_width) choice
//	  literals, plus, when UseCardinality is set, O(steps · height ·
//	  max_width) in-use literals and two sorting-network auxiliaries per
//	  comparator (O(n · log² n) per step, n = height · max_width), plus
//	  max_width block vars.
//	– Clauses: dominated by the per-cell at-most-one encodings; see
//	  package amo for the scheme-dependent clause counts.
package encode

// Package packsat computes the minimum two-dimensional strip-packing
// width for a schedule of time-windowed polyomino blocks by reduction to
// Boolean satisfiability.
//
// Given an ordered schedule of items -- each a polyomino present during a
// half-open interval of discrete time steps -- packsat finds the smallest
// strip width W* such that every item can be placed, in one of its
// permitted orientations, inside a fixed-height strip so that at every
// time step the occupied cells of simultaneously-present items are
// disjoint.
//
// Under the hood, everything is organized under focused subpackages:
//
//	sortnet/     — Batcher odd-even merge comparator networks
//	varalloc/    — monotone CNF variable allocation
//	amo/         — at-most-one encodings (pairwise/binary/commander/product)
//	cardinality/ — sorting-network cardinality constraints
//	satsolver/   — narrow incremental SAT back-end contract (Gini-backed)
//	encode/      — the placement encoder: schedule -> CNF
//	optimize/    — the alternating-bound optimization driver
//	ipmodel/     — optional parallel IP/MPS formulation
//	shape/       — Shape/ShapeSet/Instance data model
//	instance/    — well-known shape catalog and random instance generation
//	solution/    — solution artifact persistence
//	packctl/     — the "packsat" CLI built on cobra
//
// The SAT core (encode + optimize + satsolver) is single-threaded
// cooperative: one Solve call is in flight at a time, and search is
// aborted only via a terminate callback polled against a deadline. See
// DESIGN.md for the full grounding ledger and SPEC_FULL.md for the
// expanded requirements this module implements.
package packsat

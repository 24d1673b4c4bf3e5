// Package cardinality encodes "low <= sum(lits) <= high" constraints over
// CNF literals using a Batcher odd-even sorting network (package sortnet)
// as a Boolean circuit: each comparator becomes six clauses computing the
// bitwise AND/OR of its two inputs, and the resulting sorted sequence is
// clamped at both ends with unit clauses.
//
// After all comparators are processed the working array is sorted
// ascending by truth value (true literals cluster toward the high
// end, i.e. the end of the array). Reversing it so index 0 is the
// largest, forcing S[i] true for i < low and S[i] false for i >= high
// yields exactly low <= sum <= high (spec.md §4.D).
package cardinality

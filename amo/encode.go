package amo

import (
	"math/bits"

	"github.com/katalvlaran/packsat/varalloc"
	"modernc.org/mathutil"
)

// Encode emits clauses constraining at most one literal in lits to be
// true, using alloc for any auxiliary variables the scheme requires.
//
// n <= 1 emits nothing. n == 2 always emits the single pairwise clause
// regardless of scheme (spec.md §4.C edge cases).
func Encode(alloc *varalloc.Allocator, emit ClauseSink, lits []int, scheme Scheme) {
	n := len(lits)
	if n <= 1 {
		return
	}
	if n == 2 {
		emit([]int{-lits[0], -lits[1]})
		return
	}

	if scheme == Pairwise || n <= threshold(scheme) {
		pairwise(emit, lits)
		return
	}

	switch scheme {
	case Binary:
		encodeBinary(alloc, emit, lits)
	case Commander:
		encodeCommander(alloc, emit, lits, scheme)
	case Product:
		encodeProduct(alloc, emit, lits, scheme)
	}
}

func pairwise(emit ClauseSink, lits []int) {
	for i := 0; i < len(lits); i++ {
		for j := i + 1; j < len(lits); j++ {
			emit([]int{-lits[i], -lits[j]})
		}
	}
}

// encodeBinary log-encodes the selected index into ⌈log2 n⌉ fresh bits,
// with no recursion (spec.md §4.C).
func encodeBinary(alloc *varalloc.Allocator, emit ClauseSink, lits []int) {
	n := len(lits)
	numBits := bits.Len(uint(n - 1))
	bitVars := alloc.NextN(numBits)

	for i, lit := range lits {
		for bit, bitVar := range bitVars {
			if (i>>uint(bit))&1 == 1 {
				emit([]int{-lit, bitVar})
			} else {
				emit([]int{-lit, -bitVar})
			}
		}
	}
}

// encodeCommander partitions lits into ⌊√n⌋ groups by index modulo the
// group count, guards each group with a commander literal, and recurses
// on both the groups and the commander set (spec.md §4.C).
func encodeCommander(alloc *varalloc.Allocator, emit ClauseSink, lits []int, scheme Scheme) {
	n := len(lits)
	groupCount := int(mathutil.ISqrt(uint64(n)))
	if groupCount < 1 {
		groupCount = 1
	}
	commanders := alloc.NextN(groupCount)

	for k, commander := range commanders {
		group := make([]int, 0, n/groupCount+1)
		for i := k; i < n; i += groupCount {
			group = append(group, lits[i])
		}
		group = append(group, -commander)

		emit(group)
		Encode(alloc, emit, group, scheme)
	}

	Encode(alloc, emit, commanders, scheme)
}

// encodeProduct arranges lits into an r×c grid (r = ⌊√n⌋), constrains
// each literal's row and column membership, and recurses on both the row
// and column variable sets (spec.md §4.C).
func encodeProduct(alloc *varalloc.Allocator, emit ClauseSink, lits []int, scheme Scheme) {
	n := len(lits)
	rows := int(mathutil.ISqrt(uint64(n)))
	if rows < 1 {
		rows = 1
	}
	cols := (n + rows - 1) / rows

	rowVars := alloc.NextN(rows)
	colVars := alloc.NextN(cols)

	for k, lit := range lits {
		i, j := k/cols, k%cols
		emit([]int{-lit, rowVars[i]})
		emit([]int{-lit, colVars[j]})
	}

	Encode(alloc, emit, rowVars, scheme)
	Encode(alloc, emit, colVars, scheme)
}

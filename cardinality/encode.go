package cardinality

import (
	"github.com/katalvlaran/packsat/amo"
	"github.com/katalvlaran/packsat/sortnet"
	"github.com/katalvlaran/packsat/varalloc"
)

// Encode emits clauses constraining low <= sum(lits) <= high, where
// 0 <= low <= high <= len(lits). It allocates two auxiliary literals per
// comparator in the underlying sorting network via alloc, and forwards
// every clause to emit.
func Encode(alloc *varalloc.Allocator, emit amo.ClauseSink, lits []int, low, high int) error {
	net, err := sortnet.Network(len(lits))
	if err != nil {
		return err
	}

	working := append([]int(nil), lits...)

	for _, cmp := range net {
		outLow, outHigh := alloc.Next(), alloc.Next()
		inA, inB := working[cmp.A], working[cmp.B]

		emit([]int{-inA, outHigh})
		emit([]int{-inB, outHigh})
		emit([]int{-inA, -inB, outLow})

		emit([]int{inA, -outLow})
		emit([]int{inB, -outLow})
		emit([]int{inA, inB, -outHigh})

		working[cmp.A], working[cmp.B] = outLow, outHigh
	}

	sorted := reversed(working)
	for i, v := range sorted {
		switch {
		case i < low:
			emit([]int{v})
		case i >= high:
			emit([]int{-v})
		}
	}

	return nil
}

func reversed(in []int) []int {
	out := make([]int, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}

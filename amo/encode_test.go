package amo_test

import (
	"testing"

	"github.com/katalvlaran/packsat/amo"
	"github.com/katalvlaran/packsat/satsolver"
	"github.com/katalvlaran/packsat/varalloc"
	"github.com/stretchr/testify/require"
)

func TestParseScheme(t *testing.T) {
	for _, name := range []string{"pairwise", "binary", "commander", "product"} {
		s, err := amo.ParseScheme(name)
		require.NoError(t, err)
		require.Equal(t, name, s.String())
	}
	_, err := amo.ParseScheme("bogus")
	require.ErrorIs(t, err, amo.ErrUnknownScheme)
}

func TestEncode_TrivialSizesEmitNothing(t *testing.T) {
	alloc := varalloc.New()
	lits := alloc.NextN(1)
	var clauses [][]int
	amo.Encode(alloc, func(c []int) { clauses = append(clauses, c) }, lits, amo.Product)
	require.Empty(t, clauses)
}

func TestEncode_SizeTwoAlwaysPairwise(t *testing.T) {
	for _, scheme := range []amo.Scheme{amo.Pairwise, amo.Binary, amo.Commander, amo.Product} {
		alloc := varalloc.New()
		lits := alloc.NextN(2)
		var clauses [][]int
		amo.Encode(alloc, func(c []int) { clauses = append(clauses, c) }, lits, scheme)
		require.Equal(t, [][]int{{-lits[0], -lits[1]}}, clauses, "scheme %v", scheme)
	}
}

func TestEncode_PairwiseClauseCountAndNoAuxVars(t *testing.T) {
	alloc := varalloc.New()
	n := 7
	lits := alloc.NextN(n)
	var clauses [][]int
	amo.Encode(alloc, func(c []int) { clauses = append(clauses, c) }, lits, amo.Pairwise)
	require.Len(t, clauses, n*(n-1)/2)
	require.Equal(t, n, alloc.Count(), "pairwise allocates zero auxiliary variables")
}

// checkSoundness builds one at-most-one encoding for (scheme, n) over a
// fresh solver and checks, via assumptions against that single encoding,
// that: the empty assignment and every singleton are satisfiable, and
// every pair of simultaneously-true literals is not (spec.md §8). Those
// two properties fully characterize "at most one true" — any assignment
// with two or more true literals contains a violating pair — so this
// covers every N without enumerating 2^N input masks.
func checkSoundness(t *testing.T, scheme amo.Scheme, n int) {
	t.Helper()

	solver, err := satsolver.NewGini()
	require.NoError(t, err)

	alloc := varalloc.New()
	lits := alloc.NextN(n)
	amo.Encode(alloc, solver.AddClause, lits, scheme)

	assumeAllFalseExcept := func(idxs ...int) {
		set := make(map[int]bool, len(idxs))
		for _, i := range idxs {
			set[i] = true
		}
		for i, lit := range lits {
			if set[i] {
				solver.Assume(lit)
			} else {
				solver.Assume(-lit)
			}
		}
	}

	assumeAllFalseExcept()
	status, err := solver.Solve()
	require.NoError(t, err)
	require.Equal(t, satsolver.SAT, status, "scheme=%v n=%d empty assignment must be satisfiable", scheme, n)

	for i := 0; i < n; i++ {
		assumeAllFalseExcept(i)
		status, err := solver.Solve()
		require.NoError(t, err)
		require.Equal(t, satsolver.SAT, status, "scheme=%v n=%d singleton i=%d must be satisfiable", scheme, n, i)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			assumeAllFalseExcept(i, j)
			status, err := solver.Solve()
			require.NoError(t, err)
			require.Equal(t, satsolver.UNSAT, status, "scheme=%v n=%d pair (i=%d,j=%d) must be unsatisfiable", scheme, n, i, j)
		}
	}
}

// TestEncode_Soundness checks every scheme for each N <= 32 (spec.md §8),
// using the solver-based technique from cardinality/encode_test.go in
// place of brute-forcing over 2^(n+auxVars) satisfying assignments.
func TestEncode_Soundness(t *testing.T) {
	for _, scheme := range []amo.Scheme{amo.Pairwise, amo.Binary, amo.Commander, amo.Product} {
		t.Run(scheme.String(), func(t *testing.T) {
			for n := 2; n <= 32; n++ {
				checkSoundness(t, scheme, n)
			}
		})
	}
}

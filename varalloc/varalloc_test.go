package varalloc_test

import (
	"testing"

	"github.com/katalvlaran/packsat/varalloc"
	"github.com/stretchr/testify/require"
)

func TestAllocator_NextIsMonotone(t *testing.T) {
	a := varalloc.New()
	require.Equal(t, 1, a.Next())
	require.Equal(t, 2, a.Next())
	require.Equal(t, 3, a.Next())
	require.Equal(t, 3, a.Count())
}

func TestAllocator_NextNIsConsecutive(t *testing.T) {
	a := varalloc.New()
	require.Equal(t, 1, a.Next())
	ids := a.NextN(4)
	require.Equal(t, []int{2, 3, 4, 5}, ids)
	require.Equal(t, 6, a.Next())
}

func TestAllocator_NextNZeroIsEmpty(t *testing.T) {
	a := varalloc.New()
	require.Empty(t, a.NextN(0))
	require.Equal(t, 1, a.Next())
}

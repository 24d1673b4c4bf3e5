package solution_test

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/packsat/solution"
)

func TestSaveLoadJSON_RoundTrip(t *testing.T) {
	art := solution.NewArtifact(2, 2, 2)
	require.NoError(t, art.Paint(0, 0, 0, 7))
	require.NoError(t, art.Paint(0, 0, 1, 7))

	var buf bytes.Buffer
	require.NoError(t, solution.SaveJSON(&buf, art))

	got, err := solution.LoadJSON(&buf)
	require.NoError(t, err)

	if diff := cmp.Diff(art, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestArtifact_PaintTwiceDifferentItemsFails(t *testing.T) {
	art := solution.NewArtifact(1, 1, 1)
	require.NoError(t, art.Paint(0, 0, 0, 1))
	require.ErrorIs(t, art.Paint(0, 0, 0, 2), solution.ErrCellPaintedTwice)
}

func TestMemorySink_Put(t *testing.T) {
	sink := solution.NewMemorySink()
	art := solution.NewArtifact(1, 1, 1)
	require.NoError(t, sink.Put(3, art))
	require.Contains(t, sink.ByWidth, 3)
}

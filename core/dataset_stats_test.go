package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/riondato/truefreq/core"
)

// TestNewDatasetStats_FiveSinglets reproduces end-to-end scenario 1 of
// spec.md §8: five one-item transactions [{1},{2},{3},{4},{5}].
func TestNewDatasetStats_FiveSinglets(t *testing.T) {
	t.Parallel()

	items := map[int]struct{}{1: {}, 2: {}, 3: {}, 4: {}, 5: {}}
	stats, err := core.NewDatasetStats(5, items, 1, 1, map[int]int{1: 5}, 1)
	require.NoError(t, err)
	require.Equal(t, 5, stats.Size)
	require.Equal(t, 5, stats.NumItems())
	require.Equal(t, 1, stats.MaxLen)
	require.Equal(t, 1, stats.MaxSupp)
	require.Equal(t, 1, stats.DIndex)
}

func TestNewDatasetStats_RejectsMismatchedHistogram(t *testing.T) {
	t.Parallel()

	_, err := core.NewDatasetStats(5, map[int]struct{}{1: {}}, 1, 1, map[int]int{1: 4}, 1)
	require.ErrorIs(t, err, core.ErrLengthHistogramMismatch)

	_, err = core.NewDatasetStats(0, map[int]struct{}{}, 0, 0, map[int]int{}, 0)
	require.ErrorIs(t, err, core.ErrNonPositiveSize)
}

func TestDeltaBudget_Split(t *testing.T) {
	t.Parallel()

	db, err := core.NewDeltaBudget(0.05)
	require.NoError(t, err)
	half := db.SplitSqrt()

	// Recombining two phases at the split delta should reconstruct the budget:
	// 1 - (1-half)^2 == delta.
	recombined := 1 - (1-half)*(1-half)
	require.InDelta(t, 0.05, recombined, 1e-9)

	_, err = core.NewDeltaBudget(0)
	require.ErrorIs(t, err, core.ErrBadDelta)
	_, err = core.NewDeltaBudget(1)
	require.ErrorIs(t, err, core.ErrBadDelta)
}

func TestParsePValueMode(t *testing.T) {
	t.Parallel()

	cases := map[string]core.PValueMode{
		"e": core.Exact, "E": core.Exact, "exact": core.Exact,
		"c": core.Chernoff, "C": core.Chernoff,
		"w": core.WeakChernoff, "weak-chernoff": core.WeakChernoff,
	}
	for in, want := range cases {
		got, err := core.ParsePValueMode(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := core.ParsePValueMode("bogus")
	require.ErrorIs(t, err, core.ErrBadPValueMode)
}

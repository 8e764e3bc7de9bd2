package profiler_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/riondato/truefreq/profiler"
)

// TestProfile_FiveSingletons reproduces end-to-end scenario 1 of spec.md §8:
// five one-item transactions [{1},{2},{3},{4},{5}] yield
// size=5, numitems=5, maxlen=1, maxsupp=1, dindex=1, lengths={1:5}.
func TestProfile_FiveSingletons(t *testing.T) {
	t.Parallel()

	stats, err := profiler.Profile(strings.NewReader("1\n2\n3\n4\n5\n"))
	require.NoError(t, err)

	require.Equal(t, 5, stats.Size)
	require.Equal(t, 5, stats.NumItems())
	require.Equal(t, 1, stats.MaxLen)
	require.Equal(t, 1, stats.MaxSupp)
	require.Equal(t, 1, stats.DIndex)
	require.Equal(t, map[int]int{1: 5}, stats.Lengths)
}

func TestProfile_DIndexGrowsWithIncomparableLongerTransactions(t *testing.T) {
	t.Parallel()

	// {1,2} and {3,4} are incomparable and both length 2: dindex should
	// reach 2. A third, {1,2,5}, is not a subset of either previously
	// tracked transaction, so it joins the tracked set and bumps its
	// length to 3, but the tracked set is immediately truncated back to
	// dindex=2 entries, leaving dindex unchanged at 2.
	stats, err := profiler.Profile(strings.NewReader("1 2\n3 4\n1 2 5\n"))
	require.NoError(t, err)

	require.Equal(t, 3, stats.Size)
	require.Equal(t, 3, stats.MaxLen)
	require.Equal(t, 2, stats.DIndex)
}

func TestProfile_EmptyDataset(t *testing.T) {
	t.Parallel()

	_, err := profiler.Profile(strings.NewReader(""))
	require.ErrorIs(t, err, profiler.ErrEmptyDataset)
}

func TestProfile_MalformedTransaction(t *testing.T) {
	t.Parallel()

	_, err := profiler.Profile(strings.NewReader("1 2\nfoo bar\n"))
	require.ErrorIs(t, err, profiler.ErrMalformedTransaction)
}

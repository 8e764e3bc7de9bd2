package binomtfi_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/riondato/truefreq/binomtfi"
	"github.com/riondato/truefreq/core"
	"github.com/riondato/truefreq/logstat"
)

// TestRun_Scenario5 reproduces end-to-end scenario 5 of spec.md §8: n=1000,
// theta=0.05, delta=0.05, mode=chernoff, one itemset with support 80
// accepted, one with support 55 rejected (Bonferroni over numitems>=2).
func TestRun_Scenario5(t *testing.T) {
	t.Parallel()

	const n = 1000
	stats, err := core.NewDatasetStats(n, map[int]struct{}{1: {}, 2: {}}, 2, n, map[int]int{2: n}, 1)
	require.NoError(t, err)

	var b core.CollectionBuilder
	b.Add(core.MustItemset(1), 80.0/n)
	high, err := b.Build()
	require.NoError(t, err)

	params := binomtfi.Params{Delta: 0.05, Theta: 0.05, Mode: logstat.ModeChernoff, UseAdditionalKnowledge: false}
	resultHigh := binomtfi.Run(high, stats, n, params)
	require.Equal(t, 1, resultHigh.TFIs.Len(), "support=80 should be accepted")

	var lb core.CollectionBuilder
	lb.Add(core.MustItemset(1), 55.0/n)
	low, err := lb.Build()
	require.NoError(t, err)
	resultLow := binomtfi.Run(low, stats, n, params)
	require.Equal(t, 0, resultLow.TFIs.Len(), "support=55 should be rejected")
}

func TestRun_StopsAtFirstRejection(t *testing.T) {
	t.Parallel()

	const n = 1000
	stats, err := core.NewDatasetStats(n, map[int]struct{}{1: {}, 2: {}}, 2, n, map[int]int{2: n}, 1)
	require.NoError(t, err)

	var b core.CollectionBuilder
	b.Add(core.MustItemset(1), 80.0/n)  // accepted
	b.Add(core.MustItemset(2), 55.0/n)  // rejected: traversal stops here
	b.Add(core.MustItemset(1, 2), 90.0/n) // highest freq: traversed first and accepted
	c, err := b.Build()
	require.NoError(t, err)

	params := binomtfi.Params{Delta: 0.05, Theta: 0.05, Mode: logstat.ModeChernoff}
	result := binomtfi.Run(c, stats, n, params)

	// Traversal order by decreasing frequency: {1,2}(0.09), {1}(0.08),
	// {2}(0.055). The first two are accepted; {2} is rejected and
	// traversal stops there, so {1,2} and {1} survive, {2} does not.
	require.Equal(t, 2, result.TFIs.Len())
	require.True(t, result.TFIs.Contains(core.MustItemset(1, 2)))
	require.True(t, result.TFIs.Contains(core.MustItemset(1)))
	require.False(t, result.TFIs.Contains(core.MustItemset(2)))
}

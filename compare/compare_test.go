package compare_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/riondato/truefreq/compare"
	"github.com/riondato/truefreq/core"
)

// TestCompare_Scenario6 reproduces end-to-end scenario 6 of spec.md §8:
// R_true={A:0.6,B:0.4}, R_sample={A:0.58,B:0.41,C:0.3}, eps=0.05 =>
// intersection=2, fn=0, fp=1 (C), jaccard=2/3, max_abs_err=0.02, wrong_eps=0.
func TestCompare_Scenario6(t *testing.T) {
	t.Parallel()

	a := core.MustItemset(1) // stand-in for "A"
	b := core.MustItemset(2) // stand-in for "B"
	c := core.MustItemset(3) // stand-in for "C"

	var trueB core.CollectionBuilder
	trueB.Add(a, 0.6)
	trueB.Add(b, 0.4)
	rTrue, err := trueB.Build()
	require.NoError(t, err)

	var sampleB core.CollectionBuilder
	sampleB.Add(a, 0.58)
	sampleB.Add(b, 0.41)
	sampleB.Add(c, 0.3)
	rSample, err := sampleB.Build()
	require.NoError(t, err)

	result := compare.Compare(rTrue, rSample, 0.05, nil)

	require.Equal(t, 2, result.Intersection)
	require.Equal(t, 0, result.FalseNegatives)
	require.Equal(t, 1, result.FalsePositives)
	require.InDelta(t, 2.0/3.0, result.Jaccard, 1e-9)
	require.InDelta(t, 0.02, result.MaxAbsoluteError, 1e-9)
	require.Equal(t, 0, result.WrongEps)
}

func TestCompare_EmptyIntersectionHasZeroedErrors(t *testing.T) {
	t.Parallel()

	var ob core.CollectionBuilder
	ob.Add(core.MustItemset(1), 0.5)
	orig, err := ob.Build()
	require.NoError(t, err)

	var tb core.CollectionBuilder
	tb.Add(core.MustItemset(2), 0.5)
	other, err := tb.Build()
	require.NoError(t, err)

	result := compare.Compare(orig, other, 0.05, nil)
	require.Equal(t, 0, result.Intersection)
	require.Equal(t, 0.0, result.AvgAbsoluteError)
	require.Equal(t, 0.0, result.AvgRelativeError)
}

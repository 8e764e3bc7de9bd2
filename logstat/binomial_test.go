package logstat_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/riondato/truefreq/logstat"
)

func TestLogBinomial_SymmetricAndKnownValues(t *testing.T) {
	t.Parallel()

	// C(5,2) == C(5,3) == 10
	require.InDelta(t, math.Log(10), logstat.LogBinomial(5, 2), 1e-9)
	require.InDelta(t, math.Log(10), logstat.LogBinomial(5, 3), 1e-9)
	// C(n,0) == 1
	require.InDelta(t, 0, logstat.LogBinomial(5, 0), 1e-9)
}

func TestUnionBoundFactor_SingleItem(t *testing.T) {
	t.Parallel()

	// spec.md §8 boundary: single-item universe -> union bound factor = log 2.
	got := logstat.UnionBoundFactor(1, 1)
	require.InDelta(t, math.Log(2), got, 1e-9)
}

func TestPValueExact_MatchesDirectSummation(t *testing.T) {
	t.Parallel()

	// Brute-force P[X >= 8] for Binomial(10, 0.5) by summing the pmf
	// directly in linear space (safe for this tiny n) and compare logs.
	const n, p = 10, 0.5
	want := 0.0
	for k := 8; k <= n; k++ {
		want += math.Exp(logstat.LogBinomial(n, k)) * math.Pow(p, float64(k)) * math.Pow(1-p, float64(n-k))
	}
	got := logstat.PValueExact(8, n, p)
	require.InDelta(t, math.Log(want), got, 1e-6)
}

func TestPValueExact_EdgeCases(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0.0, logstat.PValueExact(0, 10, 0.3))
	require.True(t, math.IsInf(logstat.PValueExact(11, 10, 0.3), -1))
}

// TestBinomialEngine_AcceptReject reproduces end-to-end scenario 5 of
// spec.md §8: n=1000, theta=0.05, delta=0.05, mode=chernoff, Bonferroni
// over numitems>=2 items. Support 80 is accepted, support 55 is rejected.
func TestBinomialEngine_AcceptReject(t *testing.T) {
	t.Parallel()

	const n = 1000
	const theta = 0.05
	const delta = 0.05
	const numItems = 2

	p0 := (math.Ceil(n*theta) - 1) / n
	critical := math.Log(delta) - float64(numItems)*math.Log(2)

	pvHigh := logstat.PValueChernoff(80, n, p0)
	require.LessOrEqual(t, pvHigh, critical, "support=80 should be accepted")

	pvLow := logstat.PValueChernoff(55, n, p0)
	require.Greater(t, pvLow, critical, "support=55 should be rejected")
}

func TestEpsilons_Monotonicity(t *testing.T) {
	t.Parallel()

	// Increasing v (VC-dimension bound) must never decrease eps_vc.
	small := logstat.EpsVC(0.05, 10000, 5)
	large := logstat.EpsVC(0.05, 10000, 50)
	require.Less(t, small, large)

	// Weaker confidence (larger delta) must never decrease eps_vc, i.e.
	// a smaller delta yields an eps_vc that is >= the eps_vc for a larger delta.
	tighter := logstat.EpsVC(0.01, 10000, 5)
	looser := logstat.EpsVC(0.10, 10000, 5)
	require.Greater(t, tighter, looser)
}

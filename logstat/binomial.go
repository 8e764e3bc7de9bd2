package logstat

import (
	"math"

	"github.com/riondato/truefreq/telemetry"
)

// logFactorialRange returns the natural log of m * (m+1) * ... * n
// (spec.md §4.1: "log_binomial(n,k) via log-factorial ranges"). Callers
// always pick the shorter of the two ranges in LogBinomial, so this stays
// cheap even for n in the millions.
func logFactorialRange(m, n int) float64 {
	sum := 0.0
	for i := m; i <= n; i++ {
		sum += math.Log(float64(i))
	}
	return sum
}

// LogBinomial returns log(C(n,k)), computed over whichever of the two
// equivalent factorial ranges is shorter. Returns -Inf (log 0) when k < 0
// or k > n.
func LogBinomial(n, k int) float64 {
	if k < 0 || k > n {
		return math.Inf(-1)
	}
	if k < n-k {
		return logFactorialRange(n-k+1, n) - logFactorialRange(2, k)
	}
	return logFactorialRange(k+1, n) - logFactorialRange(2, n-k)
}

// logAddExp computes log(e^a + e^b) without overflow.
func logAddExp(a, b float64) float64 {
	if math.IsInf(a, -1) {
		return b
	}
	if math.IsInf(b, -1) {
		return a
	}
	if a < b {
		a, b = b, a
	}
	return a + math.Log1p(math.Exp(b-a))
}

// UnionBoundFactor returns log(sum_{i=1..d} C(n,i)), the Bonferroni
// union-bound factor over all itemsets of size up to d drawn from a
// universe of n items (spec.md §4.1).
func UnionBoundFactor(n, d int) float64 {
	acc := math.Inf(-1)
	for i := 1; i <= d; i++ {
		acc = logAddExp(acc, LogBinomial(n, i))
	}
	return acc
}

// PValueExact returns log P[X >= support], X ~ Binomial(size, supposedFreq),
// computed directly in log space by summing the tail term by term with an
// O(1)-per-term recurrence on the binomial coefficient, starting from
// LogBinomial(size, support) and log-sum-exp'ing forward to size. This
// mirrors scipy.stats.binom.logsf(support-1, size, supposedFreq) in the
// reference implementation (_examples/original_source/code/utils.py)
// without depending on an external statistics library.
//
// Complexity: O(size - support) term evaluations, each O(1) after the
// initial O(min(support, size-support)) coefficient.
func PValueExact(support, size int, supposedFreq float64) float64 {
	if support <= 0 {
		return 0 // P[X >= 0] = 1, log(1) = 0
	}
	if support > size {
		return math.Inf(-1)
	}

	logP := math.Log(supposedFreq)
	log1mP := math.Log1p(-supposedFreq)

	logCoeff := LogBinomial(size, support)
	logTerm := logCoeff + float64(support)*logP + float64(size-support)*log1mP
	acc := logTerm

	for i := support; i < size; i++ {
		// log C(n,i+1) = log C(n,i) + log(n-i) - log(i+1)
		logCoeff += math.Log(float64(size-i)) - math.Log(float64(i+1))
		logTerm = logCoeff + float64(i+1)*logP + float64(size-i-1)*log1mP
		acc = logAddExp(acc, logTerm)
	}
	return acc
}

// PValueChernoff returns an upper bound on log P[X >= support] using
// Equation 4.1 / Thm. 4.4 of Mitzenmacher & Upfal, "Probability and
// Computing" (Cambridge University Press, 2005), matching spec.md §4.1.
// Valid only when support > size*supposedFreq; callers must guard (the
// bound is otherwise not an upper bound on the tail).
func PValueChernoff(support, size int, supposedFreq float64) float64 {
	mu := supposedFreq * float64(size)
	delta := (float64(support) - mu) / mu
	onePlusDelta := float64(support) / mu
	return mu * (delta - onePlusDelta*math.Log(onePlusDelta))
}

// PValueWeakChernoff returns a weaker, monotone-in-support Chernoff-style
// tail bound: -(support - mu)^2 / (3*mu), mu = size*supposedFreq
// (SPEC_FULL.md §C.1). It is looser than PValueChernoff but cheaper and
// well-defined even when support is far from mu.
func PValueWeakChernoff(support, size int, supposedFreq float64) float64 {
	mu := supposedFreq * float64(size)
	diff := float64(support) - mu
	return -(diff * diff) / (3 * mu)
}

// Mode tags which tail-bound formula PValue dispatches to.
type Mode int

const (
	ModeExact Mode = iota
	ModeChernoff
	ModeWeakChernoff
)

// label is the telemetry-facing name for mode (spec.md §4.1's three
// tail-bound formulas, matching the counter's "mode" label documented in
// telemetry/metrics.go).
func (m Mode) label() string {
	switch m {
	case ModeExact:
		return "exact"
	case ModeWeakChernoff:
		return "weak-chernoff"
	default:
		return "chernoff"
	}
}

// PValue dispatches to the formula named by mode. Callers using Chernoff
// must ensure support > size*supposedFreq themselves (PValueChernoff's
// contract); PValue does not guard it to avoid masking caller bugs with a
// silently wrong fallback.
func PValue(mode Mode, support, size int, supposedFreq float64) float64 {
	telemetry.ObservePValue(mode.label())
	switch mode {
	case ModeExact:
		return PValueExact(support, size, supposedFreq)
	case ModeChernoff:
		return PValueChernoff(support, size, supposedFreq)
	case ModeWeakChernoff:
		return PValueWeakChernoff(support, size, supposedFreq)
	default:
		panic("logstat: unknown p-value mode")
	}
}

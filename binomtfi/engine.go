package binomtfi

import (
	"math"

	"github.com/riondato/truefreq/core"
	"github.com/riondato/truefreq/logstat"
	"github.com/riondato/truefreq/telemetry"
)

// Params bundles the Binomial engine's inputs (spec.md §4.5).
type Params struct {
	Delta                  float64
	Theta                  float64
	Mode                   logstat.Mode
	UseAdditionalKnowledge bool
}

// Result is the engine's output: the certified TFIs and the uniform
// deviation bound epsilon that justifies them.
type Result struct {
	TFIs    core.Collection
	Epsilon float64
}

// Run executes the Binomial TFI engine over sampleSupports, a collection
// of empirical frequencies observed on a sample of size n, given dataset
// statistics stats and parameters p.
func Run(sampleSupports core.Collection, stats core.DatasetStats, n int, p Params) Result {
	critical := criticalValue(stats, n, p)
	p0 := p0Value(n, p.Theta)

	var b core.CollectionBuilder
	for _, is := range sampleSupports.Itemsets() { // already non-increasing by frequency
		freq, _ := sampleSupports.Frequency(is)
		support := supportCount(freq, n)
		pv := logstat.PValue(p.Mode, support, n, p0)
		if pv > critical {
			break // subsequent itemsets have lower support and cannot improve
		}
		b.Add(is, freq)
	}
	tfis, _ := b.Build() // itemsets/frequencies are a subset of a valid input collection

	eps := searchEpsilon(n, p.Theta, p.Mode, p0, critical)
	telemetry.ObserveCertified("binomial", tfis.Len())
	return Result{TFIs: tfis, Epsilon: eps}
}

func criticalValue(stats core.DatasetStats, n int, p Params) float64 {
	var ubf float64
	if p.UseAdditionalKnowledge {
		ubf = logstat.UnionBoundFactor(stats.NumItems(), 2*stats.MaxLen)
	} else {
		ubf = float64(stats.NumItems()) * math.Log(2)
	}
	return math.Log(p.Delta) - ubf
}

func p0Value(n int, theta float64) float64 {
	return (math.Ceil(float64(n)*theta) - 1) / float64(n)
}

func supportCount(freq float64, n int) int {
	return int(math.Round(freq * float64(n)))
}

// searchEpsilon binary-searches (resolution 1e-5) the smallest frequency
// f* in [theta, 1] whose p-value still passes critical, and returns
// epsilon = f* - theta (spec.md §4.5 step 5).
func searchEpsilon(n int, theta float64, mode logstat.Mode, p0, critical float64) float64 {
	lo, hi := theta, 1.0
	for hi-lo > 1e-5 {
		mid := (lo + hi) / 2
		support := supportCount(mid, n)
		pv := logstat.PValue(mode, support, n, p0)
		if pv <= critical {
			hi = mid
		} else {
			lo = mid
		}
	}
	return hi - theta
}

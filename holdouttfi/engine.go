package holdouttfi

import (
	"math"

	"github.com/riondato/truefreq/core"
	"github.com/riondato/truefreq/logstat"
	"github.com/riondato/truefreq/telemetry"
)

// Filter is the union type spec.md's Open Questions section asks for: the
// holdout exploratory pre-filter is either off, or on with a numeric
// Bonferroni offset D (e.g. numitems) subtracted from the lowered-delta
// critical value.
type Filter struct {
	Enabled bool
	D       float64
}

// Params bundles the Holdout engine's inputs (spec.md §4.6).
type Params struct {
	Delta  float64
	Theta  float64
	Mode   logstat.Mode
	Filter Filter
}

// Result is the engine's output.
type Result struct {
	TFIs    core.Collection
	Epsilon float64
}

// Run executes the Holdout TFI engine: exp is the exploratory-phase sample
// supports (size nE), eval is the evaluation-phase sample supports (size
// nV).
func Run(exp, eval core.Collection, nE, nV int, p Params) Result {
	n := nE + nV
	p0 := (math.Ceil(float64(n)*p.Theta) - 1) / float64(n)

	deltaPrime := p.Delta
	var filterAccepted core.CollectionBuilder
	survivors := exp // E': itemsets from exp not already certified by the filter

	if p.Filter.Enabled {
		deltaPrime = 1 - math.Sqrt(1-p.Delta)
		filterCritical := math.Log(deltaPrime) - p.Filter.D

		var filteredOut core.CollectionBuilder
		for _, is := range exp.Itemsets() {
			freq, _ := exp.Frequency(is)
			support := int(math.Round(freq * float64(nE)))
			pv := logstat.PValue(p.Mode, support, nE, p0)
			if pv <= filterCritical {
				filterAccepted.Add(is, freq)
			} else {
				filteredOut.Add(is, freq)
			}
		}
		var err error
		survivors, err = filteredOut.Build()
		if err != nil {
			survivors = core.EmptyCollection()
		}
	}

	certified, _ := filterAccepted.Build()

	if survivors.Len() == 0 {
		telemetry.ObserveCertified("holdout", certified.Len())
		return Result{TFIs: certified, Epsilon: 0}
	}

	intersection := survivors.Intersect(eval)
	critical := math.Log(deltaPrime) - math.Log(float64(survivors.Len()))

	var evalAccepted core.CollectionBuilder
	// Traverse in decreasing evaluation frequency, not exploratory frequency.
	evalOrdered := eval.Filter(func(is core.Itemset, _ float64) bool { return intersection.Contains(is) })
	for _, is := range evalOrdered.Itemsets() {
		freq, _ := evalOrdered.Frequency(is)
		support := int(math.Round(freq * float64(nV)))
		pv := logstat.PValue(p.Mode, support, nV, p0)
		if pv > critical {
			break
		}
		evalAccepted.Add(is, freq)
	}
	evalResult, _ := evalAccepted.Build()

	tfis := certified.Merge(evalResult)
	eps := searchEpsilon(nV, p.Theta, p.Mode, p0, critical)
	telemetry.ObserveCertified("holdout", tfis.Len())
	return Result{TFIs: tfis, Epsilon: eps}
}

// searchEpsilon mirrors binomtfi's binary search (resolution 1e-5) for the
// uniform deviation bound this critical value justifies.
func searchEpsilon(n int, theta float64, mode logstat.Mode, p0, critical float64) float64 {
	lo, hi := theta, 1.0
	for hi-lo > 1e-5 {
		mid := (lo + hi) / 2
		support := int(math.Round(mid * float64(n)))
		pv := logstat.PValue(mode, support, n, p0)
		if pv <= critical {
			hi = mid
		} else {
			lo = mid
		}
	}
	return hi - theta
}

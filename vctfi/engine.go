package vctfi

import (
	"math"

	"github.com/riondato/truefreq/chaingraph"
	"github.com/riondato/truefreq/core"
	"github.com/riondato/truefreq/itemsetalg"
	"github.com/riondato/truefreq/logstat"
	"github.com/riondato/truefreq/milp"
	"github.com/riondato/truefreq/telemetry"
)

// Params bundles the VC TFI engine's inputs (spec.md §4.7).
type Params struct {
	Delta                  float64
	Theta                  float64
	RelGapTarget           float64
	TimeLimitSec           float64
	UseAdditionalKnowledge bool
}

// Result is the engine's output, including the intermediate diagnostics the
// reference implementation reports alongside the certified TFIs.
type Result struct {
	TFIs core.Collection

	Epsilon1 float64
	Epsilon2 float64

	BaseSetSize       int
	NegativeBorder    int
	VCDimNotEmpirical int
	VCDimEmpirical    int
}

// Run executes the VC TFI engine's full pipeline (spec.md §4.7): a dataset
// uniform-deviation bound ε₁ narrows the sample down to a base set whose
// negative border is then run through the chain-constrained knapsack MILP
// (twice: once directly, once per empirical-VC iteration) to derive ε₂.
// solver backs both MILP solves.
func Run(solver milp.Solver, sampleSupports core.Collection, stats core.DatasetStats, n int, p Params) (Result, error) {
	deltaPrime := 1 - math.Sqrt(1-p.Delta)

	vcdimBound := stats.NumItems() - 1
	if p.UseAdditionalKnowledge {
		vcdimBound = 2*stats.MaxLen - 1
	}
	fmax := stats.MaxItemFrequency()
	eps1 := math.Min(
		logstat.EpsVC(deltaPrime, n, vcdimBound),
		logstat.EpsShatter(deltaPrime, n, float64(stats.DIndex), fmax),
	)

	// Step 3: the first (and largest) set of itemsets at the lowered bound,
	// split into itemsets immediately certified at theta+eps1 and the
	// narrower base set still requiring the negative-border MILP pass.
	lowerBound := p.Theta - eps1 - 1/float64(n)
	freqItemsets1 := sampleSupports.Filter(func(_ core.Itemset, f float64) bool { return f >= lowerBound })
	certifiedDirect := freqItemsets1.Filter(func(_ core.Itemset, f float64) bool { return f >= p.Theta+eps1 })
	baseSet := freqItemsets1.Filter(func(_ core.Itemset, f float64) bool { return f < p.Theta+eps1 })

	// Step 4: closed -> maximal -> negative border, all computed over the
	// base set but checked for frequent-subset membership against the full
	// (unsplit) freqItemsets1 family.
	closed := itemsetalg.Closed(baseSet)
	maximal := itemsetalg.Maximal(closed)
	membership := itemsetalg.NewMembership(freqItemsets1)

	freqItems1 := make([]int, 0, len(freqItemsets1.SingleItems()))
	for item := range freqItemsets1.SingleItems() {
		freqItems1 = append(freqItems1, item)
	}

	negBorder := itemsetalg.NegativeBorder(maximal.Itemsets(), freqItems1, membership)
	nb := make([]core.Itemset, 0, baseSet.Len()+len(negBorder))
	nb = append(nb, baseSet.Itemsets()...)
	nb = append(nb, negBorder...)
	telemetry.ObserveNegativeBorderSize(len(nb))

	// Step 5: chain graph + knapsack MILP over NB.
	capacity := len(freqItems1) - 1
	if p.UseAdditionalKnowledge && 2*stats.MaxLen < capacity {
		capacity = 2 * stats.MaxLen
	}

	graph, err := chaingraph.New(nb)
	if err != nil {
		return Result{}, err
	}
	cliques := graph.MaximalCliques()

	problem := milp.BuildKnapsackChainProblem(nb, capacity, cliques, p.RelGapTarget, p.TimeLimitSec)
	sol, err := solver.Solve(problem)
	if err != nil {
		return Result{}, err
	}
	u := sol.UpperBound()
	vcdimNotEmp := milp.VCDimFromUpperBound(u, len(nb))

	// Step 6: empirical-VC loop over the length histogram.
	vcdimEmp, err := milp.EmpiricalVCDimension(solver, nb, stats.NumItems(), cliques, stats.SortedLengths(), stats.Lengths, p.RelGapTarget, p.TimeLimitSec)
	if err != nil {
		return Result{}, err
	}

	// Step 7: three eps2 candidates, take the min.
	fmaxBase := baseSet.MaxFrequency()

	eps2VC := logstat.EpsVC(deltaPrime, n, vcdimNotEmp)

	logShatterEmp := math.Log(float64(u))
	if u <= 0 {
		logShatterEmp = 0
	}
	if vcdimEmp > 0 {
		logShatterEmp = logstat.LogShatterBound(n, u, vcdimEmp)
	}
	eps2Emp := logstat.EpsShatter(deltaPrime, n, logShatterEmp, fmaxBase)

	eps2Shatter := logstat.EpsShatter(deltaPrime, n, float64(len(nb)), fmaxBase)

	eps2 := math.Min(eps2VC, math.Min(eps2Emp, eps2Shatter))

	// Step 8: certify every itemset at theta+eps2, merged with the
	// itemsets already certified directly in step 3.
	certifiedFinal := sampleSupports.Filter(func(_ core.Itemset, f float64) bool { return f >= p.Theta+eps2 })
	tfis := certifiedDirect.Merge(certifiedFinal)
	telemetry.ObserveCertified("vc", tfis.Len())

	return Result{
		TFIs:              tfis,
		Epsilon1:          eps1,
		Epsilon2:          eps2,
		BaseSetSize:       baseSet.Len(),
		NegativeBorder:    len(negBorder),
		VCDimNotEmpirical: vcdimNotEmp,
		VCDimEmpirical:    vcdimEmp,
	}, nil
}

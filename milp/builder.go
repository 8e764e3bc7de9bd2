package milp

import (
	"fmt"
	"math"

	"github.com/riondato/truefreq/core"
)

// BuildKnapsackChainProblem assembles the abstract MILP of spec.md §4.4:
// maximize the number of chosen itemsets subject to a capacity on the
// union of their items, plus optional chain constraints (cliques of
// pairwise-comparable itemsets, at most one of which may be chosen).
//
// itemVar(a) deterministically names the y_a variable for item a and
// setVar(i) deterministically names the x_T variable for itemsets[i], so
// callers can read Solution.Values back against the same itemsets slice.
func BuildKnapsackChainProblem(itemsets []core.Itemset, capacity int, cliques [][]int, relGapTarget, timeLimitSec float64) *Problem {
	p := NewProblem(relGapTarget, timeLimitSec)

	for i := range itemsets {
		p.AddVariable(Variable{Name: setVar(i), LowerBound: 0, UpperBound: 1, Integer: true, ObjCoeff: 1})
	}

	itemSeen := map[int]bool{}
	for _, is := range itemsets {
		for _, a := range is.Items() {
			if !itemSeen[a] {
				itemSeen[a] = true
				p.AddVariable(Variable{Name: itemVar(a), LowerBound: 0, UpperBound: 1, Integer: true, ObjCoeff: 0})
			}
		}
	}

	// Linkage: y_a >= x_T for every (T, a) with a in T, i.e. -x_T + y_a >= 0.
	for i, is := range itemsets {
		for _, a := range is.Items() {
			p.AddConstraint(Constraint{
				Terms: []Term{{Var: setVar(i), Coeff: -1}, {Var: itemVar(a), Coeff: 1}},
				Sense: SenseGE,
				RHS:   0,
			})
		}
	}

	// Capacity: Σ y_a <= C.
	capTerms := make([]Term, 0, len(itemSeen))
	for a := range itemSeen {
		capTerms = append(capTerms, Term{Var: itemVar(a), Coeff: 1})
	}
	p.AddConstraint(Constraint{Terms: capTerms, Sense: SenseLE, RHS: float64(capacity)})

	// Chain constraints: for every clique K with |K| >= 2, Σ_{T in K} x_T <= 1.
	for _, clique := range cliques {
		if len(clique) < 2 {
			continue
		}
		terms := make([]Term, len(clique))
		for j, idx := range clique {
			terms[j] = Term{Var: setVar(idx), Coeff: 1}
		}
		p.AddConstraint(Constraint{Terms: terms, Sense: SenseLE, RHS: 1})
	}

	return p
}

func setVar(i int) string  { return fmt.Sprintf("x_%d", i) }
func itemVar(a int) string { return fmt.Sprintf("y_%d", a) }

// VCDimFromUpperBound derives vcdim = floor(log2(U)) + 1, capped by
// floor(log2(numSets)) (spec.md §4.4).
func VCDimFromUpperBound(u, numSets int) int {
	if u <= 0 {
		return 0
	}
	vcdim := int(math.Floor(math.Log2(float64(u)))) + 1
	ceiling := int(math.Floor(math.Log2(float64(numSets))))
	if vcdim > ceiling {
		return ceiling
	}
	return vcdim
}

// EmpiricalVCDimension runs the empirical-VC loop of spec.md §4.4: for each
// distinct transaction length (in non-increasing order), re-solve the
// knapsack/chain MILP with capacity = min(length, numItems-1), derive the
// empirical VC-dimension candidate, and stop at the first length whose
// "longer_equal" witness count (cumulative transaction count for lengths >=
// current) is at least that candidate.
//
// sortedLengthsDesc and lengthCounts should come from
// core.DatasetStats.SortedLengths and .Lengths respectively.
func EmpiricalVCDimension(solver Solver, itemsets []core.Itemset, numItems int, cliques [][]int, sortedLengthsDesc []int, lengthCounts map[int]int, relGapTarget, timeLimitSec float64) (int, error) {
	cumulative := 0
	lastCandidate := 0
	for _, length := range sortedLengthsDesc {
		cumulative += lengthCounts[length]

		capacity := length
		if numItems-1 < capacity {
			capacity = numItems - 1
		}
		problem := BuildKnapsackChainProblem(itemsets, capacity, cliques, relGapTarget, timeLimitSec)
		sol, err := solver.Solve(problem)
		if err != nil {
			return 0, err
		}
		candidate := VCDimFromUpperBound(sol.UpperBound(), len(itemsets))
		lastCandidate = candidate

		if candidate <= cumulative {
			return candidate, nil
		}
	}
	return lastCandidate, nil
}

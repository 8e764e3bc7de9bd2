package milp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/riondato/truefreq/chaingraph"
	"github.com/riondato/truefreq/core"
	"github.com/riondato/truefreq/milp"
)

func TestBruteForceSolver_ChainLimitsSelectionToOne(t *testing.T) {
	t.Parallel()

	// {1} ⊊ {1,2} is a chain: the chain constraint must cap the selection
	// to at most one of the two even though capacity alone would allow both.
	itemsets := []core.Itemset{core.MustItemset(1), core.MustItemset(1, 2)}
	g, err := chaingraph.New(itemsets)
	require.NoError(t, err)
	cliques := g.MaximalCliques()

	p := milp.BuildKnapsackChainProblem(itemsets, 2, cliques, 0, 60)
	sol, err := milp.BruteForceSolver{}.Solve(p)
	require.NoError(t, err)
	require.Equal(t, 1.0, sol.BestObjective)
}

func TestBruteForceSolver_IncomparableSetsBothSelected(t *testing.T) {
	t.Parallel()

	// {1} and {2} are incomparable: no chain constraint between them, so
	// with capacity covering both items, both can be selected.
	itemsets := []core.Itemset{core.MustItemset(1), core.MustItemset(2)}
	g, err := chaingraph.New(itemsets)
	require.NoError(t, err)
	cliques := g.MaximalCliques()

	p := milp.BuildKnapsackChainProblem(itemsets, 2, cliques, 0, 60)
	sol, err := milp.BruteForceSolver{}.Solve(p)
	require.NoError(t, err)
	require.Equal(t, 2.0, sol.BestObjective)
}

func TestBruteForceSolver_CapacityLimitsUnionSize(t *testing.T) {
	t.Parallel()

	// Three incomparable singletons but capacity 1: only one item can be
	// "turned on", so at most one itemset may be chosen.
	itemsets := []core.Itemset{core.MustItemset(1), core.MustItemset(2), core.MustItemset(3)}
	g, err := chaingraph.New(itemsets)
	require.NoError(t, err)
	cliques := g.MaximalCliques()

	p := milp.BuildKnapsackChainProblem(itemsets, 1, cliques, 0, 60)
	sol, err := milp.BruteForceSolver{}.Solve(p)
	require.NoError(t, err)
	require.Equal(t, 1.0, sol.BestObjective)
}

func TestVCDimFromUpperBound(t *testing.T) {
	t.Parallel()

	require.Equal(t, 3, milp.VCDimFromUpperBound(4, 100)) // floor(log2(4))+1 = 3
	require.Equal(t, 0, milp.VCDimFromUpperBound(0, 100))
}

func TestEmpiricalVCDimension_StopsAtFirstSufficientWitnessCount(t *testing.T) {
	t.Parallel()

	itemsets := []core.Itemset{core.MustItemset(1), core.MustItemset(1, 2)}
	g, err := chaingraph.New(itemsets)
	require.NoError(t, err)
	cliques := g.MaximalCliques()

	lengths := map[int]int{2: 3, 1: 5}
	vcdim, err := milp.EmpiricalVCDimension(milp.BruteForceSolver{}, itemsets, 3, cliques, []int{2, 1}, lengths, 0, 60)
	require.NoError(t, err)
	require.GreaterOrEqual(t, vcdim, 0)
}

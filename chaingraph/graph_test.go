package chaingraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/riondato/truefreq/chaingraph"
	"github.com/riondato/truefreq/core"
)

func TestGraph_ChainIsAClique(t *testing.T) {
	t.Parallel()

	// {1} ⊊ {1,2} ⊊ {1,2,3} is a chain: every pair comparable, so it must
	// form a clique, and {4} (incomparable to all) must not join it.
	g, err := chaingraph.New([]core.Itemset{
		core.MustItemset(1),
		core.MustItemset(1, 2),
		core.MustItemset(1, 2, 3),
		core.MustItemset(4),
	})
	require.NoError(t, err)

	i1, _ := g.IndexOf(core.MustItemset(1))
	i2, _ := g.IndexOf(core.MustItemset(1, 2))
	i3, _ := g.IndexOf(core.MustItemset(1, 2, 3))
	i4, _ := g.IndexOf(core.MustItemset(4))

	require.True(t, g.AreAdjacent(i1, i2))
	require.True(t, g.AreAdjacent(i2, i3))
	require.True(t, g.AreAdjacent(i1, i3))
	require.False(t, g.AreAdjacent(i1, i4))
	require.False(t, g.AreAdjacent(i2, i4))

	cliques := g.MaximalCliques()
	foundChain := false
	for _, c := range cliques {
		if len(c) == 3 && containsAll(c, i1, i2, i3) {
			foundChain = true
		}
		require.False(t, containsAll(c, i1, i4), "incomparable node must never share a clique")
	}
	require.True(t, foundChain, "the three-element chain must appear as a maximal clique")
}

func TestGraph_IncomparableItemsetsHaveNoEdges(t *testing.T) {
	t.Parallel()

	g, err := chaingraph.New([]core.Itemset{
		core.MustItemset(1, 2),
		core.MustItemset(3, 4),
	})
	require.NoError(t, err)

	cliques := g.MaximalCliques()
	require.Len(t, cliques, 2, "two incomparable singleton-cliques, no pairwise edge")
}

func TestGraph_DuplicateNode(t *testing.T) {
	t.Parallel()

	_, err := chaingraph.New([]core.Itemset{core.MustItemset(1), core.MustItemset(1)})
	require.ErrorIs(t, err, chaingraph.ErrDuplicateNode)
}

func containsAll(s []int, vs ...int) bool {
	set := make(map[int]struct{}, len(s))
	for _, v := range s {
		set[v] = struct{}{}
	}
	for _, v := range vs {
		if _, ok := set[v]; !ok {
			return false
		}
	}
	return true
}

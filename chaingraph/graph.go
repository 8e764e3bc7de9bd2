package chaingraph

import (
	"sync"

	"github.com/riondato/truefreq/core"
)

// Graph is an undirected comparability graph: nodes are itemsets, and an
// edge joins U and V iff one is a strict subset of the other. A Graph is
// built once from a fixed node set via New and never mutated afterward,
// matching the "all data produced by a single pass or pure transformation"
// lifecycle of spec.md §3; the adjacency lists are computed eagerly in New,
// and the embedded mutex is only ever taken for reading.
type Graph struct {
	mu sync.RWMutex

	nodes []core.Itemset
	index map[string]int // itemset key -> position in nodes
	adj   []map[int]struct{}
}

// New builds the comparability graph over itemsets: O(n^2) pairwise subset
// checks, the same complexity as the reference nested scan
// (_examples/original_source/code/getTrueFIsVC.py's chain-graph loop), with
// each check itself O(|U|+|V|) via core.Itemset.IsSubsetOf. Returns
// ErrDuplicateNode if the same itemset appears twice.
func New(itemsets []core.Itemset) (*Graph, error) {
	g := &Graph{
		nodes: make([]core.Itemset, len(itemsets)),
		index: make(map[string]int, len(itemsets)),
		adj:   make([]map[int]struct{}, len(itemsets)),
	}
	copy(g.nodes, itemsets)
	for i, is := range g.nodes {
		if _, exists := g.index[is.Key()]; exists {
			return nil, ErrDuplicateNode
		}
		g.index[is.Key()] = i
		g.adj[i] = make(map[int]struct{})
	}

	for i := 0; i < len(g.nodes); i++ {
		for j := i + 1; j < len(g.nodes); j++ {
			if g.nodes[i].IsStrictSubsetOf(g.nodes[j]) || g.nodes[j].IsStrictSubsetOf(g.nodes[i]) {
				g.adj[i][j] = struct{}{}
				g.adj[j][i] = struct{}{}
			}
		}
	}
	return g, nil
}

// NumNodes returns the number of itemsets in the graph.
func (g *Graph) NumNodes() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.nodes)
}

// Node returns the itemset at position i.
func (g *Graph) Node(i int) core.Itemset {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.nodes[i]
}

// IndexOf returns the position of is in the graph, or ErrNodeNotFound.
func (g *Graph) IndexOf(is core.Itemset) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, ok := g.index[is.Key()]
	if !ok {
		return 0, ErrNodeNotFound
	}
	return i, nil
}

// AreAdjacent reports whether nodes i and j are connected.
func (g *Graph) AreAdjacent(i, j int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[i][j]
	return ok
}

// Neighbors returns the neighbor indices of node i.
func (g *Graph) Neighbors(i int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]int, 0, len(g.adj[i]))
	for n := range g.adj[i] {
		out = append(out, n)
	}
	return out
}

// MaximalCliques enumerates every maximal clique via the Bron-Kerbosch
// algorithm with pivoting (spec.md §9: "a correct fallback is to enumerate
// all maximal cliques before solving"). Each returned clique is a slice of
// node indices with length >= 1; callers building chain constraints should
// skip cliques of size < 2 (a lone node needs no constraint).
func (g *Graph) MaximalCliques() [][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.nodes)
	if n == 0 {
		return nil
	}
	all := make(map[int]struct{}, n)
	for i := 0; i < n; i++ {
		all[i] = struct{}{}
	}

	var cliques [][]int
	var bronKerbosch func(r, p, x map[int]struct{})
	bronKerbosch = func(r, p, x map[int]struct{}) {
		if len(p) == 0 && len(x) == 0 {
			clique := make([]int, 0, len(r))
			for v := range r {
				clique = append(clique, v)
			}
			cliques = append(cliques, clique)
			return
		}
		pivot := choosePivot(p, x)
		candidates := make([]int, 0, len(p))
		for v := range p {
			if _, isNeighbor := g.adj[pivot][v]; !isNeighbor {
				candidates = append(candidates, v)
			}
		}
		for _, v := range candidates {
			nv := g.adj[v]
			rNext := copyWith(r, v)
			pNext := intersectSet(p, nv)
			xNext := intersectSet(x, nv)
			bronKerbosch(rNext, pNext, xNext)
			delete(p, v)
			x[v] = struct{}{}
		}
	}

	bronKerbosch(map[int]struct{}{}, all, map[int]struct{}{})
	return cliques
}

func choosePivot(p, x map[int]struct{}) int {
	for v := range p {
		return v
	}
	for v := range x {
		return v
	}
	return -1
}

func copyWith(s map[int]struct{}, extra int) map[int]struct{} {
	out := make(map[int]struct{}, len(s)+1)
	for k := range s {
		out[k] = struct{}{}
	}
	out[extra] = struct{}{}
	return out
}

func intersectSet(s, nv map[int]struct{}) map[int]struct{} {
	out := make(map[int]struct{})
	for k := range s {
		if _, ok := nv[k]; ok {
			out[k] = struct{}{}
		}
	}
	return out
}

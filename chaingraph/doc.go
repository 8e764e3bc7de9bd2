// Package chaingraph builds the comparability graph over a family of
// itemsets needed by the chain constraints of spec.md §4.4: an edge joins
// two itemsets U, V whenever U is a strict subset of V or vice versa.
// Cliques in this graph are exactly chains under set inclusion, since any
// two itemsets in a clique are pairwise comparable.
//
// The type follows the teacher's (_examples/katalvlaran-lvlath/core)
// adjacency-list-under-RWMutex shape and sentinel-error convention, sized
// down to the one operation this domain needs: build the graph once from a
// fixed node set, then enumerate maximal cliques for the MILP builder.
package chaingraph

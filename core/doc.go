// Package core defines the fundamental data types shared by every component
// of the True-Frequent-Itemsets core: Itemset, Collection, DatasetStats, a
// Delta confidence budget, and Epsilon, the uniform-deviation bound the
// statistical engines compute.
//
// All types here are immutable after construction: an Itemset never mutates
// its members, and a Collection is built once (via NewCollection or a
// parser) and never mutated in place. Downstream packages transform one
// Collection into another rather than editing in place, which keeps the
// TFI engines pure functions of their inputs (see the concurrency model in
// spec.md §5).
package core

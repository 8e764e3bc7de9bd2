// Package vctfi implements the VC TFI engine of spec.md §4.7: the
// three-epsilon pipeline combining a non-empirical VC-dimension bound, an
// empirical VC-dimension bound, and a shatter-coefficient bound derived
// from a chain-constrained knapsack MILP over the negative border.
//
// Ported from _examples/original_source/code/getTrueFIsVC.py's main(),
// wiring together package logstat (epsilon formulas), itemsetalg (closed,
// maximal, negative border), chaingraph (comparability graph + maximal
// cliques) and milp (knapsack/chain MILP + empirical-VC loop).
package vctfi

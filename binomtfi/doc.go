// Package binomtfi implements the Binomial TFI engine of spec.md §4.5: a
// Bonferroni-corrected per-itemset binomial test over sample supports,
// traversed in decreasing frequency order with early stopping, plus a
// binary search for the engine's uniform deviation bound epsilon.
//
// Ported from _examples/original_source/code/getTrueFIsBinom.py's main();
// the p-value formulas themselves live in package logstat
// (_examples/original_source/code/utils.py's pvalue_exact/pvalue_chernoff).
package binomtfi

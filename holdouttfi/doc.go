// Package holdouttfi implements the Holdout TFI engine of spec.md §4.6: an
// optional exploratory-phase pre-filter followed by a Bonferroni-corrected
// evaluation-phase test over the itemsets that survive the filter.
//
// Ported from _examples/original_source/code/getTrueFIsHoldout.py's
// get_trueFIs().
package holdouttfi

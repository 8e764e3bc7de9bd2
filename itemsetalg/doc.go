// Package itemsetalg implements the itemset-algebra operations of
// spec.md §4.2: the closed-itemset filter, the maximal-itemset filter, and
// negative-border computation, all operating on core.Collection values.
//
// The closed and maximal filters are ported from
// _examples/original_source/code/utils.py's get_closed_itemsets and
// get_maximal_itemsets; the negative-border construction (sibling/child
// candidates checked against a frequent-itemset membership set) is ported
// from the maximal-itemset loop in
// _examples/original_source/code/getTrueFIsVC.py.
package itemsetalg

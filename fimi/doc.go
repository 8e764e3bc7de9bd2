// Package fimi reads and writes itemset-support files in the FIMI format
// used throughout spec.md §6: a header line "(SIZE)" giving the originating
// dataset's transaction count, followed by lines "item1 item2 ... (SUPPORT)"
// in non-increasing support order.
//
// Ported from _examples/original_source/code/utils.py's create_results
// (reader) and print_itemset/print_itemsets (writer).
package fimi

// Package compare implements the TFI comparator of spec.md §4.8: given a
// reference ("true") collection and a candidate collection, report set
// overlap (intersection, false negatives/positives, Jaccard) and
// frequency-error statistics (max/avg absolute error, avg relative error,
// wrong_eps count), plus a false-positive warning log.
//
// Ported from _examples/original_source/code/compareFIs.py's compare().
package compare

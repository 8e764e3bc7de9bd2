// Package profiler computes core.DatasetStats with a single pass over a
// FIMI-format transaction file, per spec.md §4.3.
//
// The d-index computation is ported from
// _examples/original_source/code/getDatasetInfo.py's compute_ds_stats: it
// maintains a list, truncated to at most d-index entries, of the longest
// transactions seen so far that are not subsets of an earlier entry,
// re-deriving d-index as the length of the longest prefix (after sorting by
// non-increasing length) in which every entry's length is at least its
// rank.
package profiler

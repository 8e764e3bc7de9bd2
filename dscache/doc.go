// Package dscache memoizes core.DatasetStats by canonical dataset path, the
// "Global-state substitution" of spec.md §4.9: the original pipeline kept a
// module-level dict keyed by file basename (datasetsinfo.ds_stats in
// getDatasetInfo.py); this package replaces that with an explicit cache
// object a caller constructs, passes around, and queries.
//
// Cache has two backends, selected the way etalazz-vsa's persistence
// package selects a RedisEvaler: a zero-dependency in-process sync.Map
// memo by default, or a shared github.com/redis/go-redis/v9 Ring client
// when a caller supplies one or more Redis addresses (useful when several
// CLI invocations across machines profile the same dataset). The in-process
// tier is always consulted first; a Redis hit is copied into the in-process
// tier, and after a miss the caller's Put populates both tiers.
package dscache

package dscache

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/riondato/truefreq/core"
)

// Cache memoizes core.DatasetStats by canonical key. The in-process sync.Map
// tier is always consulted first; a remote miss (or no remote at all) falls
// through to the caller re-profiling the dataset.
type Cache struct {
	local     sync.Map // string -> core.DatasetStats
	writerIDs sync.Map // string -> string, the uuid stamped by the Put that populated local[key]
	remote    Remote
	ttl       time.Duration
}

// New returns a Cache with only the in-process tier.
func New() *Cache { return &Cache{} }

// NewWithRemote returns a Cache backed additionally by remote, with entries
// expiring after ttl (defaulted to 24h if ttl <= 0).
func NewWithRemote(remote Remote, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Cache{remote: remote, ttl: ttl}
}

// CanonicalKey derives a cache key from path's absolute form and its
// modification time, so an edited dataset file never serves a stale entry
// (spec.md §4.9: "cache it in a process-scoped memo keyed by canonical
// path when the same dataset is reused").
func CanonicalKey(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("dscache:v1:%s:%d", abs, info.ModTime().UnixNano()), nil
}

// Get returns the cached stats for key, if present in either tier.
func (c *Cache) Get(ctx context.Context, key string) (core.DatasetStats, bool) {
	if v, ok := c.local.Load(key); ok {
		return v.(core.DatasetStats), true
	}
	if c.remote == nil {
		return core.DatasetStats{}, false
	}
	raw, err := c.remote.Get(ctx, key)
	if err != nil {
		return core.DatasetStats{}, false
	}
	stats, writerID, err := decode(raw)
	if err != nil {
		return core.DatasetStats{}, false
	}
	c.local.Store(key, stats)
	c.writerIDs.Store(key, writerID)
	return stats, true
}

// Put stores stats under key in both tiers, stamping the entry with a
// fresh writer id. A remote write failure is swallowed: caching is an
// optimization, and a profiling pass must never fail because the shared
// cache is unreachable.
func (c *Cache) Put(ctx context.Context, key string, stats core.DatasetStats) {
	writerID := newWriterID()
	c.local.Store(key, stats)
	c.writerIDs.Store(key, writerID)
	if c.remote == nil {
		return
	}
	raw, err := encode(stats, writerID)
	if err != nil {
		return
	}
	_ = c.remote.Set(ctx, key, raw, c.ttl)
}

// WriterID returns the id stamped by whichever Put populated key's current
// in-process entry, for diagnosing which process last profiled a dataset
// shared across a Redis-backed cache tier.
func (c *Cache) WriterID(key string) (string, bool) {
	v, ok := c.writerIDs.Load(key)
	if !ok {
		return "", false
	}
	return v.(string), true
}

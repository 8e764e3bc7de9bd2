package dscache_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/riondato/truefreq/core"
	"github.com/riondato/truefreq/dscache"
)

type fakeRemote struct {
	mu sync.Mutex
	m  map[string]string
}

func newFakeRemote() *fakeRemote { return &fakeRemote{m: map[string]string{}} }

func (f *fakeRemote) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.m[key]
	if !ok {
		return "", dscache.ErrMiss
	}
	return v, nil
}

func (f *fakeRemote) Set(_ context.Context, key, value string, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.m[key] = value
	return nil
}

func buildStats(t *testing.T) core.DatasetStats {
	t.Helper()
	stats, err := core.NewDatasetStats(5, map[int]struct{}{1: {}, 2: {}}, 2, 5, map[int]int{1: 3, 2: 2}, 1)
	require.NoError(t, err)
	return stats
}

func TestCache_InProcessRoundTrip(t *testing.T) {
	t.Parallel()

	c := dscache.New()
	stats := buildStats(t)

	_, ok := c.Get(context.Background(), "key")
	require.False(t, ok)

	c.Put(context.Background(), "key", stats)
	got, ok := c.Get(context.Background(), "key")
	require.True(t, ok)
	require.Equal(t, stats, got)
}

func TestCache_RemoteTierServesAFreshInProcessCache(t *testing.T) {
	t.Parallel()

	remote := newFakeRemote()
	stats := buildStats(t)

	writer := dscache.NewWithRemote(remote, time.Hour)
	writer.Put(context.Background(), "key", stats)

	reader := dscache.NewWithRemote(remote, time.Hour)
	got, ok := reader.Get(context.Background(), "key")
	require.True(t, ok)
	require.Equal(t, stats, got)
}

func TestCache_LoggingRemoteAlwaysMisses(t *testing.T) {
	t.Parallel()

	c := dscache.NewWithRemote(dscache.LoggingRemote{}, time.Hour)
	stats := buildStats(t)

	c.Put(context.Background(), "key", stats)
	// The logging remote never actually stores anything, but Put also
	// populates the local tier, so the same Cache still serves the value.
	got, ok := c.Get(context.Background(), "key")
	require.True(t, ok)
	require.Equal(t, stats, got)

	_, ok = dscache.NewWithRemote(dscache.LoggingRemote{}, time.Hour).Get(context.Background(), "key")
	require.False(t, ok)
}

func TestCache_WriterIDIsStampedPerPutAndSurvivesRemoteRoundTrip(t *testing.T) {
	t.Parallel()

	remote := newFakeRemote()
	stats := buildStats(t)

	writer := dscache.NewWithRemote(remote, time.Hour)
	_, ok := writer.WriterID("key")
	require.False(t, ok)

	writer.Put(context.Background(), "key", stats)
	id1, ok := writer.WriterID("key")
	require.True(t, ok)
	require.NotEmpty(t, id1)

	reader := dscache.NewWithRemote(remote, time.Hour)
	_, ok = reader.Get(context.Background(), "key")
	require.True(t, ok)
	id2, ok := reader.WriterID("key")
	require.True(t, ok)
	require.Equal(t, id1, id2)

	writer.Put(context.Background(), "key", stats)
	id3, ok := writer.WriterID("key")
	require.True(t, ok)
	require.NotEqual(t, id1, id3)
}

func TestCanonicalKey_ChangesWithModTime(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "data.dat")
	require.NoError(t, os.WriteFile(path, []byte("1 2\n"), 0o644))

	k1, err := dscache.CanonicalKey(path)
	require.NoError(t, err)

	older := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(path, older, older))

	k2, err := dscache.CanonicalKey(path)
	require.NoError(t, err)
	require.NotEqual(t, k1, k2)
}

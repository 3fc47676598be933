package jsonfile

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/hupe1980/jsonfile/blobstore"
	"github.com/hupe1980/jsonfile/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicMetricsCollector(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	store := newTestStore(WithMetricsCollector(metrics), WithBundle(blobstore.NewMemoryStore()))
	dir := t.TempDir()
	ctx := context.Background()

	path := filepath.Join(dir, "save.json")
	require.NoError(t, store.Write(path, testutil.Profile{Name: "Ava", Level: 3}))
	assert.False(t, store.TryWrite(filepath.Join(dir, "missing", "save.json"), testutil.Profile{}))

	var p testutil.Profile
	require.NoError(t, store.Read(path, &p))
	assert.False(t, store.TryRead(filepath.Join(dir, "missing.json"), &p))
	assert.False(t, store.TryRead(testutil.WriteFile(t, dir, "bad.json", "{"), &p))

	require.NoError(t, store.WriteToBundle(ctx, "defaults", p))
	require.NoError(t, store.ReadFromBundle(ctx, "defaults", &p))
	assert.Error(t, store.ReadFromBundle(ctx, "missing", &p))

	stats := metrics.GetStats()
	assert.Equal(t, int64(2), stats.WriteCount)
	assert.Equal(t, int64(1), stats.WriteErrors)
	assert.Equal(t, int64(len(testutil.ReadFile(t, path))), stats.WriteBytes)
	assert.Equal(t, int64(3), stats.ReadCount)
	assert.Equal(t, int64(2), stats.ReadErrors)
	assert.Equal(t, int64(1), stats.ReadNotFound)
	assert.Equal(t, stats.WriteBytes, stats.ReadBytes)
	assert.Equal(t, int64(2), stats.BundleReadCount)
	assert.Equal(t, int64(1), stats.BundleReadErrors)
	assert.Equal(t, int64(1), stats.BundleWriteCount)
	assert.Equal(t, int64(0), stats.BundleWriteErrors)
	assert.GreaterOrEqual(t, stats.ReadAvgNanos, int64(0))
}

func TestNoopMetricsCollector(t *testing.T) {
	store := newTestStore(WithMetricsCollector(nil))
	path := filepath.Join(t.TempDir(), "save.json")

	assert.NotPanics(t, func() {
		assert.True(t, store.TryWrite(path, testutil.Profile{}))
	})
}

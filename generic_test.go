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

// useDefault installs s as the default Store for the duration of the test.
func useDefault(t *testing.T, s *Store) {
	t.Helper()
	prev := Default()
	SetDefault(s)
	t.Cleanup(func() { SetDefault(prev) })
}

func TestGeneric_FileOps(t *testing.T) {
	useDefault(t, newTestStore())
	path := filepath.Join(t.TempDir(), "save.json")

	require.NoError(t, Write(path, testutil.Profile{Name: "Ava", Level: 3}))

	got, err := Read[testutil.Profile](path)
	require.NoError(t, err)
	assert.Equal(t, testutil.Profile{Name: "Ava", Level: 3}, got)

	p, ok := TryRead[testutil.Profile](path)
	assert.True(t, ok)
	assert.Equal(t, got, p)

	assert.True(t, TryWrite(path, testutil.Profile{Name: "Bram", Level: 4}))
	p, ok = TryRead[testutil.Profile](path)
	assert.True(t, ok)
	assert.Equal(t, "Bram", p.Name)
}

func TestGeneric_Failures(t *testing.T) {
	useDefault(t, newTestStore())
	dir := t.TempDir()

	got, err := Read[testutil.Profile]("/nonexistent/path.json")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, testutil.Profile{}, got)

	p, ok := TryRead[testutil.Profile]("/nonexistent/path.json")
	assert.False(t, ok)
	assert.Equal(t, testutil.Profile{}, p)

	bad := testutil.WriteFile(t, dir, "bad.json", "{oops")
	p, ok = TryRead[testutil.Profile](bad)
	assert.False(t, ok)
	assert.Equal(t, testutil.Profile{}, p)

	assert.False(t, TryWrite(filepath.Join(dir, "missing", "save.json"), testutil.Profile{}))
}

func TestGeneric_Slices(t *testing.T) {
	useDefault(t, newTestStore())
	path := filepath.Join(t.TempDir(), "saves.json")
	saves := testutil.NewRNG(8).SaveGames(5)

	require.NoError(t, Write(path, saves))

	got, err := Read[[]testutil.SaveGame](path)
	require.NoError(t, err)
	assert.Equal(t, saves, got)
}

func TestGeneric_Bundle(t *testing.T) {
	ctx := context.Background()
	useDefault(t, newTestStore(WithBundle(blobstore.NewMemoryStore())))

	_, err := ReadFromBundle[testutil.Profile](ctx, "defaults")
	assert.ErrorIs(t, err, ErrNotFound)

	_, ok := TryReadFromBundle[testutil.Profile](ctx, "defaults")
	assert.False(t, ok)

	require.NoError(t, WriteToBundle(ctx, "defaults", testutil.Profile{Name: "Ava", Level: 3}))

	got, err := ReadFromBundle[testutil.Profile](ctx, "defaults")
	require.NoError(t, err)
	assert.Equal(t, testutil.Profile{Name: "Ava", Level: 3}, got)

	got, ok = TryReadFromBundle[testutil.Profile](ctx, "defaults")
	assert.True(t, ok)
	assert.Equal(t, 3, got.Level)
}

func TestSetDefault_Nil(t *testing.T) {
	prev := Default()
	t.Cleanup(func() { SetDefault(prev) })

	SetDefault(nil)
	assert.NotNil(t, Default())
	assert.NotSame(t, prev, Default())
}

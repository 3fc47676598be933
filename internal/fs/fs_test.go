package fs

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFS(t *testing.T) {
	tmp := t.TempDir()
	lfs := LocalFS{}

	// Test MkdirAll
	dir := filepath.Join(tmp, "subdir")
	assert.NoError(t, lfs.MkdirAll(dir, 0755))

	// Test OpenFile (Create)
	fpath := filepath.Join(dir, "test.json")
	f, err := lfs.OpenFile(fpath, os.O_CREATE|os.O_RDWR, 0644)
	require.NoError(t, err)
	assert.Equal(t, fpath, f.Name())

	_, err = f.Write([]byte(`{"a":1}`))
	assert.NoError(t, err)
	assert.NoError(t, f.Sync())

	info, err := f.Stat()
	assert.NoError(t, err)
	assert.Equal(t, int64(7), info.Size())
	assert.NoError(t, f.Close())

	// CreateTemp lands in the requested directory
	tf, err := lfs.CreateTemp(dir, "test.json.tmp-*")
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(tf.Name()))
	assert.NoError(t, tf.Close())

	// Rename over the existing file
	assert.NoError(t, lfs.Rename(tf.Name(), fpath))
	info2, err := lfs.Stat(fpath)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), info2.Size())

	// Remove
	assert.NoError(t, lfs.Remove(fpath))
	_, err = lfs.Stat(fpath)
	assert.True(t, os.IsNotExist(err))
}

func TestFaultyFS_WriteLimit(t *testing.T) {
	tmp := t.TempDir()
	ffs := NewFaultyFS(LocalFS{})
	ffs.AddRule("limited", Fault{FailAfterBytes: 5})

	fpath := filepath.Join(tmp, "limited.json")
	f, err := ffs.OpenFile(fpath, os.O_CREATE|os.O_RDWR, 0644)
	require.NoError(t, err)

	// Write 5 bytes - OK
	n, err := f.Write([]byte("hello"))
	assert.NoError(t, err)
	assert.Equal(t, 5, n)

	// Write 1 byte - Fail
	n, err = f.Write([]byte("!"))
	assert.ErrorIs(t, err, ErrInjected)
	assert.Equal(t, 0, n)

	assert.Equal(t, int64(5), ffs.Written())
	assert.NoError(t, f.Close())
}

func TestFaultyFS_Rules(t *testing.T) {
	tmp := t.TempDir()
	custom := errors.New("disk on fire")

	ffs := NewFaultyFS(nil)
	ffs.AddRule("open", Fault{FailOnOpen: true, FailAfterBytes: -1})
	ffs.AddRule("sync", Fault{FailOnSync: true, FailAfterBytes: -1, Err: custom})
	ffs.AddRule("close", Fault{FailOnClose: true, FailAfterBytes: -1})
	ffs.AddRule("rename", Fault{FailOnRename: true, FailAfterBytes: -1})

	t.Run("open", func(t *testing.T) {
		_, err := ffs.OpenFile(filepath.Join(tmp, "open.json"), os.O_CREATE|os.O_WRONLY, 0644)
		var pe *os.PathError
		require.ErrorAs(t, err, &pe)
		assert.ErrorIs(t, err, ErrInjected)

		_, err = ffs.CreateTemp(filepath.Join(tmp, "open"), "x-*")
		assert.ErrorIs(t, err, ErrInjected)
	})

	t.Run("sync", func(t *testing.T) {
		f, err := ffs.OpenFile(filepath.Join(tmp, "sync.json"), os.O_CREATE|os.O_WRONLY, 0644)
		require.NoError(t, err)
		_, err = f.Write([]byte("data"))
		require.NoError(t, err)
		assert.ErrorIs(t, f.Sync(), custom)
		assert.NoError(t, f.Close())
	})

	t.Run("close", func(t *testing.T) {
		f, err := ffs.OpenFile(filepath.Join(tmp, "close.json"), os.O_CREATE|os.O_WRONLY, 0644)
		require.NoError(t, err)
		assert.ErrorIs(t, f.Close(), ErrInjected)
	})

	t.Run("rename", func(t *testing.T) {
		src := filepath.Join(tmp, "src.json")
		f, err := ffs.OpenFile(src, os.O_CREATE|os.O_WRONLY, 0644)
		require.NoError(t, err)
		require.NoError(t, f.Close())

		assert.ErrorIs(t, ffs.Rename(src, filepath.Join(tmp, "rename.json")), ErrInjected)
		assert.NoError(t, ffs.Rename(src, filepath.Join(tmp, "moved.json")))
	})

	t.Run("longest pattern wins", func(t *testing.T) {
		ffs := NewFaultyFS(nil)
		ffs.AddRule(".json", Fault{FailOnOpen: true})
		ffs.AddRule("allowed.json", Fault{FailAfterBytes: -1})

		f, err := ffs.OpenFile(filepath.Join(tmp, "allowed.json"), os.O_CREATE|os.O_RDWR, 0644)
		require.NoError(t, err)
		_, err = f.Write([]byte("ok"))
		assert.NoError(t, err)
		assert.NoError(t, f.Close())

		_, err = ffs.OpenFile(filepath.Join(tmp, "denied.json"), os.O_CREATE|os.O_RDWR, 0644)
		assert.Error(t, err)
	})
}

func TestFaultyFS_Delegation(t *testing.T) {
	tmp := t.TempDir()
	ffs := NewFaultyFS(LocalFS{})

	dir := filepath.Join(tmp, "subdir")
	assert.NoError(t, ffs.MkdirAll(dir, 0755))

	fpath := filepath.Join(dir, "test.json")
	f, err := ffs.OpenFile(fpath, os.O_CREATE|os.O_RDWR, 0644)
	require.NoError(t, err)
	_, err = f.Write([]byte("{}"))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	rf, err := ffs.OpenFile(fpath, os.O_RDONLY, 0)
	require.NoError(t, err)
	data, err := io.ReadAll(rf)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
	require.NoError(t, rf.Close())

	_, err = ffs.Stat(fpath)
	assert.NoError(t, err)
	assert.NoError(t, ffs.Remove(fpath))
}

package blobstore

import (
	"context"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// FSStore is a read-only BlobStore over an fs.FS.
//
// It is the natural home for assets compiled into the binary:
//
//	//go:embed assets
//	var assets embed.FS
//
//	sub, _ := fs.Sub(assets, "assets")
//	store := blobstore.NewFSStore(sub)
type FSStore struct {
	fsys fs.FS
}

// NewFSStore creates a read-only store over fsys.
func NewFSStore(fsys fs.FS) *FSStore {
	return &FSStore{fsys: fsys}
}

// Open reads the named file. The whole file is loaded; bundle entries are small.
func (s *FSStore) Open(ctx context.Context, name string) (Blob, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: ErrInvalidName}
	}
	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		return nil, err
	}
	return &memoryBlob{data: data}, nil
}

// Put always fails with ErrReadOnly.
func (s *FSStore) Put(_ context.Context, name string, _ []byte) error {
	return &fs.PathError{Op: "put", Path: name, Err: ErrReadOnly}
}

// Delete always fails with ErrReadOnly.
func (s *FSStore) Delete(_ context.Context, name string) error {
	return &fs.PathError{Op: "delete", Path: name, Err: ErrReadOnly}
}

// List returns all files matching the prefix.
func (s *FSStore) List(ctx context.Context, prefix string) ([]string, error) {
	names := []string{}
	err := fs.WalkDir(s.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		name := path.Clean(p)
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

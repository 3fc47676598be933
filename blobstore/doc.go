// Package blobstore provides the text blob stores behind jsonfile bundles.
//
// A bundle is a flat namespace of named blobs: packaged assets shipped with a
// program, a resources directory, or a bucket. BlobStore is the interface for
// reading and writing them. Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: Directory on the local filesystem
//   - FSStore: Read-only view of an fs.FS, e.g. a //go:embed tree
//   - MemoryStore: In-memory store for tests
//   - CachingStore: Whole-blob LRU cache in front of another store
//   - ThrottledStore: Request and bandwidth limits in front of another store
//   - s3.Store, minio.Store, dynamodb.Store: Remote backends (sub-packages)
//
// # Custom Implementations
//
// Implement the BlobStore interface to support custom storage backends:
//
//	type BlobStore interface {
//	    Open(ctx, name) (Blob, error)
//	    Put(ctx, name, data) error
//	    Delete(ctx, name) error
//	    List(ctx, prefix) ([]string, error)
//	}
//
// Open must return an error satisfying errors.Is(err, ErrNotFound) for a
// missing blob. Read-only stores return ErrReadOnly from Put and Delete.
package blobstore

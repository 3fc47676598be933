package blobstore

import (
	"context"

	"github.com/hupe1980/jsonfile/internal/resource"
)

// Controller bounds memory, request concurrency, request rate and bandwidth
// for CachingStore and ThrottledStore. A nil *Controller imposes no limits.
type Controller = resource.Controller

// Limits configures a Controller. Zero fields mean unlimited.
type Limits struct {
	// MemoryLimitBytes caps bytes held by caching stores sharing the controller.
	MemoryLimitBytes int64
	// MaxConcurrentRequests caps in-flight store calls.
	MaxConcurrentRequests int64
	// RequestsPerSecond caps the sustained store call rate.
	RequestsPerSecond float64
	// BytesPerSecond caps transferred blob bytes.
	BytesPerSecond int64
}

// NewController creates a Controller enforcing l.
func NewController(l Limits) *Controller {
	return resource.NewController(resource.Config{
		MemoryLimitBytes:      l.MemoryLimitBytes,
		MaxConcurrentRequests: l.MaxConcurrentRequests,
		RequestsPerSecond:     l.RequestsPerSecond,
		IOLimitBytesPerSec:    l.BytesPerSecond,
	})
}

// ThrottledStore wraps a BlobStore and applies a Controller's request and
// bandwidth limits to every call. It is meant for remote stores with quotas.
type ThrottledStore struct {
	inner BlobStore
	rc    *Controller
}

// NewThrottledStore creates a ThrottledStore.
func NewThrottledStore(inner BlobStore, rc *Controller) *ThrottledStore {
	return &ThrottledStore{inner: inner, rc: rc}
}

// Open waits for a request slot, then opens the blob. Reads from the returned
// blob are charged against the bandwidth limit.
func (s *ThrottledStore) Open(ctx context.Context, name string) (Blob, error) {
	if err := s.rc.AcquireRequest(ctx); err != nil {
		return nil, err
	}
	defer s.rc.ReleaseRequest()

	b, err := s.inner.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	return &throttledBlob{Blob: b, rc: s.rc}, nil
}

// Put waits for a request slot and bandwidth for len(data) bytes.
func (s *ThrottledStore) Put(ctx context.Context, name string, data []byte) error {
	if err := s.rc.AcquireRequest(ctx); err != nil {
		return err
	}
	defer s.rc.ReleaseRequest()

	if err := s.rc.AcquireIO(ctx, len(data)); err != nil {
		return err
	}
	return s.inner.Put(ctx, name, data)
}

// Delete waits for a request slot.
func (s *ThrottledStore) Delete(ctx context.Context, name string) error {
	if err := s.rc.AcquireRequest(ctx); err != nil {
		return err
	}
	defer s.rc.ReleaseRequest()
	return s.inner.Delete(ctx, name)
}

// List waits for a request slot.
func (s *ThrottledStore) List(ctx context.Context, prefix string) ([]string, error) {
	if err := s.rc.AcquireRequest(ctx); err != nil {
		return nil, err
	}
	defer s.rc.ReleaseRequest()
	return s.inner.List(ctx, prefix)
}

type throttledBlob struct {
	Blob
	rc *Controller
}

func (b *throttledBlob) ReadAt(ctx context.Context, p []byte, off int64) (int, error) {
	if err := b.rc.AcquireIO(ctx, len(p)); err != nil {
		return 0, err
	}
	return b.Blob.ReadAt(ctx, p, off)
}

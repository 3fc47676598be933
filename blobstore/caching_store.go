package blobstore

import (
	"context"
	"sync"

	"github.com/hupe1980/jsonfile/internal/cache"
	"golang.org/x/sync/errgroup"
)

// DefaultWarmConcurrency bounds the parallel fetches of CachingStore.Warm.
const DefaultWarmConcurrency = 8

// CachingStore wraps a BlobStore and keeps recently read blobs in memory.
type CachingStore struct {
	inner BlobStore
	cache *cache.LRU

	// gens counts writes per name. A load only caches what it fetched if
	// no Put or Delete touched the name meanwhile.
	mu   sync.Mutex
	gens map[string]uint64
}

// NewCachingStore creates a new CachingStore holding at most capacityBytes of
// blob content. capacityBytes defaults to 8MB if <= 0. If rc is not nil, cached
// bytes are also charged against its memory limit.
func NewCachingStore(inner BlobStore, capacityBytes int64, rc *Controller) *CachingStore {
	if capacityBytes <= 0 {
		capacityBytes = 8 << 20
	}
	return &CachingStore{
		inner: inner,
		cache: cache.NewLRU(capacityBytes, rc),
		gens:  make(map[string]uint64),
	}
}

// Open serves name from the cache, loading it from the inner store on a miss.
func (s *CachingStore) Open(ctx context.Context, name string) (Blob, error) {
	data, err := s.load(ctx, name)
	if err != nil {
		return nil, err
	}
	return &memoryBlob{data: data}, nil
}

func (s *CachingStore) load(ctx context.Context, name string) ([]byte, error) {
	if data, ok := s.cache.Get(name); ok {
		return data, nil
	}

	s.mu.Lock()
	gen := s.gens[name]
	s.mu.Unlock()

	data, err := Get(ctx, s.inner, name)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.gens[name] == gen {
		s.cache.Set(name, data)
	}
	s.mu.Unlock()
	return data, nil
}

// invalidate drops name from the cache and moves it to a new generation.
func (s *CachingStore) invalidate(name string) {
	s.mu.Lock()
	s.gens[name]++
	s.cache.Remove(name)
	s.mu.Unlock()
}

// Put invalidates the cached entry and writes through to the inner store.
// The entry is invalidated again once the write lands so a load that
// started mid-write cannot cache the previous content.
func (s *CachingStore) Put(ctx context.Context, name string, data []byte) error {
	s.invalidate(name)
	defer s.invalidate(name)
	return s.inner.Put(ctx, name, data)
}

// Delete invalidates the cached entry and deletes from the inner store.
func (s *CachingStore) Delete(ctx context.Context, name string) error {
	s.invalidate(name)
	defer s.invalidate(name)
	return s.inner.Delete(ctx, name)
}

// List is not cached.
func (s *CachingStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}

// Warm loads the named blobs into the cache concurrently. It stops at the first
// error, which is returned.
func (s *CachingStore) Warm(ctx context.Context, names ...string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(DefaultWarmConcurrency)
	for _, name := range names {
		g.Go(func() error {
			_, err := s.load(ctx, name)
			return err
		})
	}
	return g.Wait()
}

// Stats returns cache hit and miss counts.
func (s *CachingStore) Stats() (hits, misses int64) {
	return s.cache.Stats()
}

package cache

// BlobCache is a byte-oriented cache for blob contents keyed by blob name.
// Returned slices must be treated as read-only.
type BlobCache interface {
	// Get returns a cached blob. ok=false if missing.
	Get(name string) (b []byte, ok bool)
	// Set caches a blob. Implementations may retain b; caller must treat it as immutable.
	Set(name string, b []byte)
	// Invalidate removes entries matching the predicate.
	Invalidate(predicate func(name string) bool)
	// Stats returns cache statistics.
	Stats() (hits, misses int64)
}

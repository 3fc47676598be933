// Package cache provides an LRU cache for whole blobs.
//
// Entries are keyed by blob name and bounded by total bytes. When a
// resource.Controller is supplied, every cached byte is also reserved there,
// so several caches can share one memory budget.
package cache

package jsonfile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hupe1980/jsonfile/blobstore"
)

// ReadFromBundle decodes the bundle entry for key into out.
//
// The key has no extension; the configured bundle extension is appended to
// form the blob name. A missing entry yields a *NotFoundError.
func (s *Store) ReadFromBundle(ctx context.Context, key string, out any) error {
	start := time.Now()
	n, err := s.readFromBundle(ctx, key, out)
	s.opts.metricsCollector.RecordBundleRead(n, time.Since(start), err)
	s.opts.logger.LogBundleRead(ctx, key, n, err)
	return err
}

// TryReadFromBundle is like ReadFromBundle but reports failure as false and
// resets out to its zero value.
func (s *Store) TryReadFromBundle(ctx context.Context, key string, out any) (ok bool) {
	defer s.recoverTry("bundle read", key, &ok, func() { reset(out) })
	if err := s.ReadFromBundle(ctx, key, out); err != nil {
		reset(out)
		return false
	}
	return true
}

// WriteToBundle encodes v and stores it as the bundle entry for key.
// Read-only bundles fail with an error matching blobstore.ErrReadOnly.
func (s *Store) WriteToBundle(ctx context.Context, key string, v any) error {
	start := time.Now()
	n, err := s.writeToBundle(ctx, key, v)
	s.opts.metricsCollector.RecordBundleWrite(n, time.Since(start), err)
	s.opts.logger.LogBundleWrite(ctx, key, n, err)
	return err
}

// BundleName returns the blob name key resolves to.
func (s *Store) BundleName(key string) string {
	return key + s.opts.bundleExt
}

func (s *Store) readFromBundle(ctx context.Context, key string, out any) (int, error) {
	if s.opts.bundle == nil {
		return 0, ErrNoBundle
	}
	if key == "" {
		// No entry can exist for an empty key.
		return 0, &NotFoundError{Path: key, cause: ErrInvalidKey}
	}
	name := s.BundleName(key)
	if err := checkTarget(out); err != nil {
		return 0, &DecodeError{Path: name, Codec: s.opts.codec.Name(), cause: err}
	}

	data, err := blobstore.Get(ctx, s.opts.bundle, name)
	if err != nil {
		if errors.Is(err, blobstore.ErrNotFound) {
			return 0, &NotFoundError{Path: name, cause: err}
		}
		return 0, fmt.Errorf("jsonfile: bundle read %s: %w", name, err)
	}

	if err := s.decode(name, data, out); err != nil {
		return 0, err
	}
	return len(data), nil
}

func (s *Store) writeToBundle(ctx context.Context, key string, v any) (int, error) {
	if s.opts.bundle == nil {
		return 0, ErrNoBundle
	}
	if key == "" {
		return 0, ErrInvalidKey
	}
	name := s.BundleName(key)

	data, err := s.encode(name, v)
	if err != nil {
		return 0, err
	}
	if err := s.opts.bundle.Put(ctx, name, data); err != nil {
		return 0, fmt.Errorf("jsonfile: bundle write %s: %w", name, err)
	}
	return len(data), nil
}

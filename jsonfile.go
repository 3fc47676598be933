package jsonfile

import (
	"context"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"reflect"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/hupe1980/jsonfile/internal/compress"
)

// Store reads and writes JSON files. It holds only configuration and is safe
// for concurrent use. It does not arbitrate concurrent writers to one path:
// the last completed write wins.
type Store struct {
	opts options
}

// New creates a Store.
// Every log line the Store emits carries the codec name.
func New(optFns ...Option) *Store {
	opts := applyOptions(optFns)
	opts.logger = opts.logger.WithCodec(opts.codec.Name())
	return &Store{opts: opts}
}

var defaultStore atomic.Pointer[Store]

func init() {
	defaultStore.Store(New())
}

// Default returns the Store used by the package-level functions.
func Default() *Store {
	return defaultStore.Load()
}

// SetDefault replaces the Store used by the package-level functions.
// Passing nil restores a Store with default options.
func SetDefault(s *Store) {
	if s == nil {
		s = New()
	}
	defaultStore.Store(s)
}

// Write encodes v and writes it to path, replacing any existing file.
//
// The file holds exactly the encoded value followed by a newline. Missing
// parent directories are an error unless WithCreateDirs is set.
func (s *Store) Write(path string, v any) error {
	start := time.Now()
	n, err := s.write(path, v)
	s.opts.metricsCollector.RecordWrite(n, time.Since(start), err)
	s.opts.logger.LogWrite(context.Background(), path, n, err)
	return err
}

// TryWrite is like Write but reports failure as false. The error is logged,
// never returned. A panicking codec counts as a failure.
func (s *Store) TryWrite(path string, v any) (ok bool) {
	defer s.recoverTry("write", path, &ok, nil)
	return s.Write(path, v) == nil
}

// Read decodes the file at path into out, which must be a non-nil pointer.
//
// A path with no regular file yields a *NotFoundError, undecodable content a
// *DecodeError. On error out is left unchanged.
func (s *Store) Read(path string, out any) error {
	start := time.Now()
	n, err := s.read(path, out)
	s.opts.metricsCollector.RecordRead(n, time.Since(start), err)
	s.opts.logger.LogRead(context.Background(), path, n, err)
	return err
}

// TryRead is like Read but reports failure as false and resets out to its
// zero value. The error is logged, never returned.
func (s *Store) TryRead(path string, out any) (ok bool) {
	defer s.recoverTry("read", path, &ok, func() { reset(out) })
	if err := s.Read(path, out); err != nil {
		reset(out)
		return false
	}
	return true
}

// Exists reports whether path names a regular file.
func (s *Store) Exists(path string) (bool, error) {
	info, err := s.opts.fs.Stat(path)
	if err != nil {
		if isNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}

func (s *Store) write(path string, v any) (int, error) {
	data, err := s.encode(path, v)
	if err != nil {
		return 0, err
	}

	if s.opts.createDirs {
		if dir := filepath.Dir(path); dir != "." {
			if err := s.opts.fs.MkdirAll(dir, 0o755); err != nil {
				return 0, fmt.Errorf("jsonfile: write %s: %w", path, err)
			}
		}
	}

	if s.opts.atomicWrites {
		err = s.writeAtomic(path, data)
	} else {
		err = s.writeInPlace(path, data)
	}
	if err != nil {
		return 0, fmt.Errorf("jsonfile: write %s: %w", path, err)
	}
	return len(data), nil
}

func (s *Store) writeInPlace(path string, data []byte) error {
	f, err := s.opts.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, s.opts.perm)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func (s *Store) writeAtomic(path string, data []byte) (err error) {
	fsys := s.opts.fs

	tmp, err := fsys.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = fsys.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = fsys.Chmod(tmpName, s.opts.perm); err != nil {
		return err
	}
	return fsys.Rename(tmpName, path)
}

func (s *Store) read(path string, out any) (int, error) {
	if err := checkTarget(out); err != nil {
		return 0, &DecodeError{Path: path, Codec: s.opts.codec.Name(), cause: err}
	}

	info, err := s.opts.fs.Stat(path)
	if err != nil {
		if isNotExist(err) {
			return 0, &NotFoundError{Path: path, cause: err}
		}
		return 0, fmt.Errorf("jsonfile: read %s: %w", path, err)
	}
	if info.IsDir() {
		return 0, &NotFoundError{Path: path}
	}

	f, err := s.opts.fs.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		if isNotExist(err) {
			return 0, &NotFoundError{Path: path, cause: err}
		}
		return 0, fmt.Errorf("jsonfile: read %s: %w", path, err)
	}
	data, err := io.ReadAll(f)
	_ = f.Close()
	if err != nil {
		return 0, fmt.Errorf("jsonfile: read %s: %w", path, err)
	}

	if err := s.decode(path, data, out); err != nil {
		return 0, err
	}
	return len(data), nil
}

// encode marshals v, appends the trailing newline and compresses if the
// name asks for it.
func (s *Store) encode(name string, v any) ([]byte, error) {
	c := s.opts.codec

	var (
		data []byte
		err  error
	)
	if s.opts.prefix == "" && s.opts.indent == "" {
		data, err = c.Marshal(v)
	} else {
		data, err = c.MarshalIndent(v, s.opts.prefix, s.opts.indent)
	}
	if err != nil {
		return nil, &EncodeError{Path: name, Codec: c.Name(), cause: err}
	}
	data = append(data, '\n')

	if alg := s.algorithm(name); alg != compress.None {
		data, err = compress.Compress(alg, data)
		if err != nil {
			return nil, fmt.Errorf("jsonfile: compress %s (%s): %w", name, alg, err)
		}
	}
	return data, nil
}

// decode decompresses data if needed and unmarshals it into a fresh value
// that replaces *out only on success.
func (s *Store) decode(name string, data []byte, out any) error {
	c := s.opts.codec

	if alg := s.algorithm(name); alg != compress.None {
		plain, err := compress.Decompress(alg, data)
		if err != nil {
			return &DecodeError{Path: name, Codec: c.Name(), cause: err}
		}
		data = plain
	}

	target := reflect.ValueOf(out).Elem()
	fresh := reflect.New(target.Type())
	if err := c.Unmarshal(data, fresh.Interface()); err != nil {
		return &DecodeError{Path: name, Codec: c.Name(), cause: err}
	}
	target.Set(fresh.Elem())
	return nil
}

func (s *Store) algorithm(name string) compress.Algorithm {
	if !s.opts.compression {
		return compress.None
	}
	return compress.FromPath(name)
}

// recoverTry turns a panic inside a try operation into a logged failure.
// It must be deferred directly.
func (s *Store) recoverTry(op, target string, ok *bool, cleanup func()) {
	if r := recover(); r != nil {
		*ok = false
		if cleanup != nil {
			cleanup()
		}
		s.opts.logger.LogPanic(context.Background(), op, target, r)
	}
}

// isNotExist reports whether err means path does not exist, including a
// parent component that is a regular file.
func isNotExist(err error) bool {
	return errors.Is(err, iofs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}

func checkTarget(out any) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: got %T", ErrInvalidTarget, out)
	}
	return nil
}

// reset sets *out to its zero value. Invalid targets are ignored.
func reset(out any) {
	rv := reflect.ValueOf(out)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv.Elem().SetZero()
	}
}

package jsonfile

import (
	"errors"
	"fmt"

	"github.com/hupe1980/jsonfile/blobstore"
)

var (
	// ErrNotFound is matched by errors for files or bundle entries that do not exist.
	ErrNotFound = errors.New("not found")

	// ErrDecode is matched by errors for content that is not valid JSON for the target.
	ErrDecode = errors.New("decode failed")

	// ErrEncode is matched by errors for values the codec cannot serialize.
	ErrEncode = errors.New("encode failed")

	// ErrNoBundle is returned by bundle operations on a Store without a bundle.
	ErrNoBundle = errors.New("no bundle configured")

	// ErrInvalidTarget is returned when the output argument is not a non-nil pointer.
	ErrInvalidTarget = errors.New("output must be a non-nil pointer")

	// ErrInvalidKey is returned for an empty bundle key. Reads wrap it in a
	// *NotFoundError.
	ErrInvalidKey = errors.New("invalid bundle key")
)

// NotFoundError reports a missing file or bundle entry.
//
// It matches ErrNotFound. The original underlying error (if any) can be
// accessed via errors.Unwrap, so errors.Is(err, fs.ErrNotExist) also holds
// when the filesystem reported the miss.
type NotFoundError struct {
	// Path is the file path or the resolved bundle blob name.
	Path  string
	cause error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("jsonfile: %s: not found", e.Path)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

func (e *NotFoundError) Unwrap() error { return e.cause }

// DecodeError reports content that could not be decoded.
//
// It matches ErrDecode. The codec error can be accessed via errors.Unwrap.
type DecodeError struct {
	Path  string
	Codec string
	cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("jsonfile: decode %s (%s): %v", e.Path, e.Codec, e.cause)
}

func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

func (e *DecodeError) Unwrap() error { return e.cause }

// EncodeError reports a value that could not be encoded.
//
// It matches ErrEncode. The codec error can be accessed via errors.Unwrap.
type EncodeError struct {
	Path  string
	Codec string
	cause error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("jsonfile: encode %s (%s): %v", e.Path, e.Codec, e.cause)
}

func (e *EncodeError) Is(target error) bool { return target == ErrEncode }

func (e *EncodeError) Unwrap() error { return e.cause }

// ErrorKind classifies the errors returned by a Store.
type ErrorKind int

const (
	// KindNone is the kind of a nil error.
	KindNone ErrorKind = iota
	// KindNotFound means the file or bundle entry does not exist.
	KindNotFound
	// KindDecode means the content is not valid JSON for the target.
	KindDecode
	// KindEncode means the value could not be serialized.
	KindEncode
	// KindReadOnly means the bundle cannot be written.
	KindReadOnly
	// KindNoBundle means a bundle operation ran on a Store without a bundle.
	KindNoBundle
	// KindIO covers every other failure: permissions, missing directories,
	// full disks, remote store errors.
	KindIO
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindNotFound:
		return "not_found"
	case KindDecode:
		return "decode"
	case KindEncode:
		return "encode"
	case KindReadOnly:
		return "read_only"
	case KindNoBundle:
		return "no_bundle"
	case KindIO:
		return "io"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// KindOf returns the kind of err.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrDecode):
		return KindDecode
	case errors.Is(err, ErrEncode):
		return KindEncode
	case errors.Is(err, blobstore.ErrReadOnly):
		return KindReadOnly
	case errors.Is(err, ErrNoBundle):
		return KindNoBundle
	default:
		return KindIO
	}
}

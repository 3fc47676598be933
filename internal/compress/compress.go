// Package compress wraps JSON text in an optional compression layer selected by
// file extension.
package compress

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Algorithm identifies a compression format.
type Algorithm uint8

const (
	// None stores the data as-is.
	None Algorithm = iota
	// Gzip is RFC 1952 gzip (".gz").
	Gzip
	// Zstd is a Zstandard frame (".zst").
	Zstd
	// LZ4 is an LZ4 frame (".lz4").
	LZ4
)

func (a Algorithm) String() string {
	switch a {
	case None:
		return "none"
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	default:
		return fmt.Sprintf("Algorithm(%d)", uint8(a))
	}
}

// FromPath returns the algorithm implied by the extension of path.
func FromPath(path string) Algorithm {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".gzip":
		return Gzip
	case ".zst", ".zstd":
		return Zstd
	case ".lz4":
		return LZ4
	default:
		return None
	}
}

// ZSTD encoder/decoder pools. Both are safe to reuse once returned.
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() (*zstd.Encoder, error) {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder), nil
	}
	return zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
}

func getZstdDecoder() (*zstd.Decoder, error) {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder), nil
	}
	return zstd.NewReader(nil)
}

// Compress returns data compressed with alg. None returns data unchanged.
func Compress(alg Algorithm, data []byte) ([]byte, error) {
	switch alg {
	case None:
		return data, nil
	case Gzip:
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		if _, err := zw.Write(data); err != nil {
			return nil, err
		}
		if err := zw.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case Zstd:
		enc, err := getZstdEncoder()
		if err != nil {
			return nil, err
		}
		out := enc.EncodeAll(data, make([]byte, 0, len(data)/2))
		zstdEncoderPool.Put(enc)
		return out, nil
	case LZ4:
		var buf bytes.Buffer
		zw := lz4.NewWriter(&buf)
		if _, err := zw.Write(data); err != nil {
			return nil, err
		}
		if err := zw.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("compress: unknown algorithm %s", alg)
	}
}

// Decompress reverses Compress.
func Decompress(alg Algorithm, data []byte) ([]byte, error) {
	switch alg {
	case None:
		return data, nil
	case Gzip:
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		return io.ReadAll(zr)
	case Zstd:
		dec, err := getZstdDecoder()
		if err != nil {
			return nil, err
		}
		out, err := dec.DecodeAll(data, nil)
		zstdDecoderPool.Put(dec)
		return out, err
	case LZ4:
		return io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
	default:
		return nil, fmt.Errorf("compress: unknown algorithm %s", alg)
	}
}

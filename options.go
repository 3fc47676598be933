package jsonfile

import (
	"log/slog"
	"os"

	"github.com/hupe1980/jsonfile/blobstore"
	"github.com/hupe1980/jsonfile/codec"
	"github.com/hupe1980/jsonfile/internal/fs"
)

// DefaultBundleExtension is appended to bundle keys to form blob names.
const DefaultBundleExtension = ".json"

type options struct {
	codec            codec.Codec
	logger           *Logger
	metricsCollector MetricsCollector
	bundle           blobstore.BlobStore
	bundleExt        string
	prefix           string
	indent           string
	perm             os.FileMode
	createDirs       bool
	atomicWrites     bool
	compression      bool
	fs               fs.FileSystem
}

// Option configures a Store.
type Option func(*options)

// WithCodec configures the codec used to encode and decode values.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := jsonfile.NewJSONLogger(slog.LevelDebug)
//	store := jsonfile.New(jsonfile.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &jsonfile.BasicMetricsCollector{}
//	store := jsonfile.New(jsonfile.WithMetricsCollector(metrics))
//	// ... use store ...
//	stats := metrics.GetStats()
//	fmt.Printf("Writes: %d, Avg latency: %dns\n", stats.WriteCount, stats.WriteAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithBundle sets the blob store that bundle operations resolve keys against.
//
// Assets compiled into the binary are served with a read-only FSStore:
//
//	//go:embed resources
//	var resources embed.FS
//
//	sub, _ := fs.Sub(resources, "resources")
//	store := jsonfile.New(jsonfile.WithBundle(blobstore.NewFSStore(sub)))
func WithBundle(bundle blobstore.BlobStore) Option {
	return func(o *options) {
		o.bundle = bundle
	}
}

// WithBundleExtension sets the suffix appended to bundle keys.
// The default is ".json". An empty string uses keys verbatim.
func WithBundleExtension(ext string) Option {
	return func(o *options) {
		o.bundleExt = ext
	}
}

// WithIndent sets the prefix and indent applied to encoded output.
// WithIndent("", "") writes compact JSON.
func WithIndent(prefix, indent string) Option {
	return func(o *options) {
		o.prefix = prefix
		o.indent = indent
	}
}

// WithFileMode sets the permission bits of files created by Write.
func WithFileMode(perm os.FileMode) Option {
	return func(o *options) {
		o.perm = perm
	}
}

// WithCreateDirs makes Write create missing parent directories.
func WithCreateDirs(enabled bool) Option {
	return func(o *options) {
		o.createDirs = enabled
	}
}

// WithAtomicWrites makes Write go through a temporary file in the target
// directory that is synced and renamed over the destination. Readers then see
// either the old or the new content, never a truncated file.
func WithAtomicWrites(enabled bool) Option {
	return func(o *options) {
		o.atomicWrites = enabled
	}
}

// WithCompression enables transparent compression chosen by file extension:
// ".gz" gzip, ".zst" zstd, ".lz4" LZ4. Other paths stay plain JSON.
func WithCompression(enabled bool) Option {
	return func(o *options) {
		o.compression = enabled
	}
}

// withFileSystem swaps the filesystem, for fault injection in tests.
func withFileSystem(fsys fs.FileSystem) Option {
	return func(o *options) {
		o.fs = fsys
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		codec:            codec.Default,
		logger:           NewLogger(nil),
		metricsCollector: NoopMetricsCollector{},
		bundleExt:        DefaultBundleExtension,
		indent:           "  ",
		perm:             0o644,
		fs:               fs.Default,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

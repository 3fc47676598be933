package s3

// DefaultPartSize is the multipart threshold and part size used for uploads.
const DefaultPartSize = 8 << 20

// Option configures a Store.
type Option func(*options)

type options struct {
	prefix      string
	region      string
	endpoint    string
	pathStyle   bool
	partSize    int64
	concurrency int
}

func defaultOptions() options {
	return options{
		partSize:    DefaultPartSize,
		concurrency: 5,
	}
}

// WithPrefix sets the key prefix prepended to every blob name.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithRegion overrides the region from the shared AWS configuration.
// Only used by New.
func WithRegion(region string) Option {
	return func(o *options) {
		o.region = region
	}
}

// WithEndpoint sets a custom endpoint URL for S3-compatible services.
// Only used by New.
func WithEndpoint(endpoint string) Option {
	return func(o *options) {
		o.endpoint = endpoint
	}
}

// WithPathStyle forces path-style addressing (bucket in the path, not the host).
// Only used by New.
func WithPathStyle(enabled bool) Option {
	return func(o *options) {
		o.pathStyle = enabled
	}
}

// WithPartSize sets the upload part size. Values below the S3 minimum of 5MB
// are raised by the upload manager.
func WithPartSize(size int64) Option {
	return func(o *options) {
		if size > 0 {
			o.partSize = size
		}
	}
}

// WithConcurrency sets the number of parts uploaded in parallel.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

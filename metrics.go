package jsonfile

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    writeCounter  prometheus.Counter
//	    readHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordWrite(bytes int, duration time.Duration, err error) {
//	    p.writeCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordWrite is called after each file write.
	// bytes is the size written, err is nil if successful.
	RecordWrite(bytes int, duration time.Duration, err error)

	// RecordRead is called after each file read.
	RecordRead(bytes int, duration time.Duration, err error)

	// RecordBundleRead is called after each bundle read.
	RecordBundleRead(bytes int, duration time.Duration, err error)

	// RecordBundleWrite is called after each bundle write.
	RecordBundleWrite(bytes int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordWrite(int, time.Duration, error)       {}
func (NoopMetricsCollector) RecordRead(int, time.Duration, error)        {}
func (NoopMetricsCollector) RecordBundleRead(int, time.Duration, error)  {}
func (NoopMetricsCollector) RecordBundleWrite(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	WriteCount        atomic.Int64
	WriteErrors       atomic.Int64
	WriteBytes        atomic.Int64
	WriteTotalNanos   atomic.Int64
	ReadCount         atomic.Int64
	ReadErrors        atomic.Int64
	ReadNotFound      atomic.Int64
	ReadBytes         atomic.Int64
	ReadTotalNanos    atomic.Int64
	BundleReadCount   atomic.Int64
	BundleReadErrors  atomic.Int64
	BundleWriteCount  atomic.Int64
	BundleWriteErrors atomic.Int64
}

// RecordWrite implements MetricsCollector.
func (b *BasicMetricsCollector) RecordWrite(bytes int, duration time.Duration, err error) {
	b.WriteCount.Add(1)
	b.WriteTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.WriteErrors.Add(1)
		return
	}
	b.WriteBytes.Add(int64(bytes))
}

// RecordRead implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRead(bytes int, duration time.Duration, err error) {
	b.ReadCount.Add(1)
	b.ReadTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ReadErrors.Add(1)
		if KindOf(err) == KindNotFound {
			b.ReadNotFound.Add(1)
		}
		return
	}
	b.ReadBytes.Add(int64(bytes))
}

// RecordBundleRead implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBundleRead(_ int, _ time.Duration, err error) {
	b.BundleReadCount.Add(1)
	if err != nil {
		b.BundleReadErrors.Add(1)
	}
}

// RecordBundleWrite implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBundleWrite(_ int, _ time.Duration, err error) {
	b.BundleWriteCount.Add(1)
	if err != nil {
		b.BundleWriteErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		WriteCount:        b.WriteCount.Load(),
		WriteErrors:       b.WriteErrors.Load(),
		WriteBytes:        b.WriteBytes.Load(),
		WriteAvgNanos:     avg(b.WriteTotalNanos.Load(), b.WriteCount.Load()),
		ReadCount:         b.ReadCount.Load(),
		ReadErrors:        b.ReadErrors.Load(),
		ReadNotFound:      b.ReadNotFound.Load(),
		ReadBytes:         b.ReadBytes.Load(),
		ReadAvgNanos:      avg(b.ReadTotalNanos.Load(), b.ReadCount.Load()),
		BundleReadCount:   b.BundleReadCount.Load(),
		BundleReadErrors:  b.BundleReadErrors.Load(),
		BundleWriteCount:  b.BundleWriteCount.Load(),
		BundleWriteErrors: b.BundleWriteErrors.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	WriteCount        int64
	WriteErrors       int64
	WriteBytes        int64
	WriteAvgNanos     int64
	ReadCount         int64
	ReadErrors        int64
	ReadNotFound      int64
	ReadBytes         int64
	ReadAvgNanos      int64
	BundleReadCount   int64
	BundleReadErrors  int64
	BundleWriteCount  int64
	BundleWriteErrors int64
}

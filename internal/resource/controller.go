package resource

import (
	"context"
	"errors"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// ErrMemoryLimitExceeded is returned when memory limit would be exceeded.
var ErrMemoryLimitExceeded = errors.New("memory limit exceeded")

// Config holds resource limits.
type Config struct {
	// MemoryLimitBytes is the hard limit for managed memory (cached blobs).
	// If 0, no hard limit is enforced (only tracking).
	MemoryLimitBytes int64

	// MaxConcurrentRequests is the maximum number of in-flight store requests.
	// If 0, unlimited.
	MaxConcurrentRequests int64

	// RequestsPerSecond is the sustained request rate against a store.
	// If 0, unlimited.
	RequestsPerSecond float64

	// IOLimitBytesPerSec is the maximum transfer throughput.
	// If 0, unlimited.
	IOLimitBytesPerSec int64
}

// Controller manages shared resources (memory, concurrency, rate).
type Controller struct {
	cfg Config

	// Memory
	memSem  *semaphore.Weighted // nil if unlimited
	memUsed atomic.Int64

	// Requests
	reqSem     *semaphore.Weighted // nil if unlimited
	reqLimiter *rate.Limiter       // nil if unlimited

	// IO
	ioLimiter *rate.Limiter
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	c := &Controller{cfg: cfg}

	if cfg.MemoryLimitBytes > 0 {
		c.memSem = semaphore.NewWeighted(cfg.MemoryLimitBytes)
	}

	if cfg.MaxConcurrentRequests > 0 {
		c.reqSem = semaphore.NewWeighted(cfg.MaxConcurrentRequests)
	}

	if cfg.RequestsPerSecond > 0 {
		burst := int(cfg.RequestsPerSecond)
		if burst < 1 {
			burst = 1
		}
		c.reqLimiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	if cfg.IOLimitBytesPerSec > 0 {
		c.ioLimiter = rate.NewLimiter(rate.Limit(cfg.IOLimitBytesPerSec), int(cfg.IOLimitBytesPerSec))
	}

	return c
}

// TryAcquireMemory attempts to reserve memory without blocking.
func (c *Controller) TryAcquireMemory(bytes int64) bool {
	if c == nil || bytes <= 0 {
		return true
	}
	if c.memSem != nil && !c.memSem.TryAcquire(bytes) {
		return false
	}
	c.memUsed.Add(bytes)
	return true
}

// AcquireMemory is like TryAcquireMemory but reports failure as ErrMemoryLimitExceeded.
func (c *Controller) AcquireMemory(bytes int64) error {
	if !c.TryAcquireMemory(bytes) {
		return ErrMemoryLimitExceeded
	}
	return nil
}

// ReleaseMemory releases reserved memory.
func (c *Controller) ReleaseMemory(bytes int64) {
	if c == nil || bytes <= 0 {
		return
	}
	if c.memSem != nil {
		c.memSem.Release(bytes)
	}
	c.memUsed.Add(-bytes)
}

// MemoryUsage returns the current memory usage in bytes.
func (c *Controller) MemoryUsage() int64 {
	if c == nil {
		return 0
	}
	return c.memUsed.Load()
}

// MemoryLimit returns the configured memory limit in bytes (0 if unlimited).
func (c *Controller) MemoryLimit() int64 {
	if c == nil {
		return 0
	}
	return c.cfg.MemoryLimitBytes
}

// AcquireRequest blocks until a request slot is free and the request rate allows
// one more call. Every successful AcquireRequest must be paired with ReleaseRequest.
func (c *Controller) AcquireRequest(ctx context.Context) error {
	if c == nil {
		return nil
	}
	if c.reqSem != nil {
		if err := c.reqSem.Acquire(ctx, 1); err != nil {
			return err
		}
	}
	if c.reqLimiter != nil {
		if err := c.reqLimiter.Wait(ctx); err != nil {
			if c.reqSem != nil {
				c.reqSem.Release(1)
			}
			return err
		}
	}
	return nil
}

// ReleaseRequest releases a request slot.
func (c *Controller) ReleaseRequest() {
	if c == nil || c.reqSem == nil {
		return
	}
	c.reqSem.Release(1)
}

// AcquireIO waits until the IO limit allows the specified number of bytes.
// Transfers larger than one second of budget are admitted in burst-sized steps.
func (c *Controller) AcquireIO(ctx context.Context, bytes int) error {
	if c == nil || c.ioLimiter == nil {
		return nil
	}
	burst := c.ioLimiter.Burst()
	for bytes > 0 {
		n := min(bytes, burst)
		if err := c.ioLimiter.WaitN(ctx, n); err != nil {
			return err
		}
		bytes -= n
	}
	return nil
}

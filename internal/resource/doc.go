// Package resource bounds what blob store wrappers may consume.
//
// A Controller tracks three budgets:
//
//   - memory held by caches, reserved with TryAcquireMemory (never blocks)
//   - in-flight requests and their sustained rate, via AcquireRequest
//   - transferred bytes per second, via AcquireIO
//
// Zero limits disable a budget. A nil *Controller disables all of them, so
// callers never need to check before use:
//
//	if err := rc.AcquireRequest(ctx); err != nil {
//	    return err
//	}
//	defer rc.ReleaseRequest()
package resource

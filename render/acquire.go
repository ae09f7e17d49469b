// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"log/slog"

	"cogentcore.org/gpuhost/base/errors"
)

// MaxAcquireFailures is the number of consecutive failures to acquire
// a surface texture after which the surface is considered lost.
const MaxAcquireFailures = 3

// ErrSurfaceLost is returned by [Renderer.RenderFrame] when the surface
// texture could not be acquired [MaxAcquireFailures] times in a row.
var ErrSurfaceLost = errors.New("render: surface lost")

// acquireTracker counts consecutive surface acquire failures.
// On each failure the surface is reconfigured and the frame skipped,
// until too many have failed in a row.
type acquireTracker struct {
	failures int
}

// failed records a failure, calling reconfigure to recover the surface.
// It returns a non-nil error once the failure is fatal.
func (at *acquireTracker) failed(err error, reconfigure func()) error {
	at.failures++
	if at.failures >= MaxAcquireFailures {
		return fmt.Errorf("%w: %d consecutive failures: %w", ErrSurfaceLost, at.failures, err)
	}
	slog.Warn("render: could not acquire surface texture, reconfiguring", "err", err, "failures", at.failures)
	reconfigure()
	return nil
}

// succeeded resets the failure count.
func (at *acquireTracker) succeeded() {
	at.failures = 0
}

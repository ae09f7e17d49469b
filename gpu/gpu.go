// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu owns the WebGPU instance, adapter, device, queue,
// and the window surface, and keeps the surface configuration in
// sync with the window size.
package gpu

import (
	"sync"

	"cogentcore.org/gpuhost/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// Debug enables detailed logging of adapter, device, and surface setup.
var Debug = false

var (
	// ErrNoAdapter is returned when no adapter compatible
	// with the surface is available.
	ErrNoAdapter = errors.New("gpu: no compatible adapter")

	// ErrNoDevice is returned when the adapter cannot provide
	// a device with the requested limits.
	ErrNoDevice = errors.New("gpu: device request failed")
)

var (
	instanceOnce sync.Once
	instance     *wgpu.Instance
)

// Instance returns the process-wide WebGPU instance, creating it on first use.
func Instance() *wgpu.Instance {
	instanceOnce.Do(func() {
		instance = wgpu.CreateInstance(nil)
	})
	return instance
}

// SurfaceSource is implemented by platform windows that
// can describe a WebGPU surface for themselves.
type SurfaceSource interface {
	SurfaceDescriptor() *wgpu.SurfaceDescriptor
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
)

// Options are the optional parameters for [New].
type Options struct {

	// Label is used for the device and its resources in GPU debug tools.
	Label string

	// PresentMode is the name of the requested present mode,
	// as in [PresentModeNames]; the empty string selects the first
	// mode supported by the surface.
	PresentMode string

	// MaxFrameLatency is the desired frame latency, clamped to [1, 2].
	MaxFrameLatency int

	// ForceFallbackAdapter requests a software adapter.
	ForceFallbackAdapter bool
}

// Device is the graphics device for one window: the surface, the
// adapter and logical device that render to it, and the surface
// configuration. Exactly one exists per window, created after the
// window and released before it.
type Device struct {
	Surface *wgpu.Surface
	Adapter *wgpu.Adapter
	Device  *wgpu.Device
	Queue   *wgpu.Queue

	// Profile is the platform profile the device was created with.
	Profile Profile

	// Config is the current surface configuration.
	Config SurfaceConfig
}

// New creates the surface described by sd, requests an adapter that can
// present to it and a device with the limits of the given profile, and
// configures the surface at the given size (clamped to at least 1x1).
// It blocks until the device is available; use it from a goroutine
// where blocking is not allowed, such as in a browser.
func New(sd *wgpu.SurfaceDescriptor, size image.Point, prof Profile, opts *Options) (*Device, error) {
	if opts == nil {
		opts = &Options{}
	}
	inst := Instance()
	dv := &Device{Profile: prof}
	dv.Surface = inst.CreateSurface(sd)
	if dv.Surface == nil {
		return nil, fmt.Errorf("gpu: could not create surface")
	}

	adapter, err := inst.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface:    dv.Surface,
		ForceFallbackAdapter: opts.ForceFallbackAdapter,
	})
	if err != nil || adapter == nil {
		dv.Release()
		return nil, fmt.Errorf("%w: %v", ErrNoAdapter, err)
	}
	dv.Adapter = adapter

	limits := prof.Limits()
	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: opts.Label,
		RequiredLimits: &wgpu.RequiredLimits{
			Limits: limits,
		},
	})
	if err != nil || device == nil {
		dv.Release()
		return nil, fmt.Errorf("%w: %v", ErrNoDevice, err)
	}
	dv.Device = device
	dv.Queue = device.GetQueue()

	caps := dv.Surface.GetCapabilities(dv.Adapter)
	format, err := SelectSurfaceFormat(caps.Formats)
	if err != nil {
		dv.Release()
		return nil, err
	}
	dv.Config = SurfaceConfig{
		Format:          format,
		PresentMode:     SelectPresentMode(caps.PresentModes, opts.PresentMode),
		AlphaMode:       SelectAlphaMode(caps.AlphaModes),
		MaxFrameLatency: min(max(opts.MaxFrameLatency, 1), 2),
	}
	dv.Config.SetSize(size.X, size.Y)
	dv.Reconfigure()
	if Debug {
		slog.Info("gpu device created", "profile", prof.Name, "surface", dv.Config.String())
	}
	return dv, nil
}

// Reconfigure applies the current [Device.Config] to the surface.
// It is also used to recover a surface that has become outdated or lost.
func (dv *Device) Reconfigure() {
	dv.Surface.Configure(dv.Adapter, dv.Device, dv.Config.configuration())
}

// Resize sets the surface size, clamped to at least 1x1,
// and reconfigures the surface.
func (dv *Device) Resize(width, height int) {
	dv.Config.SetSize(width, height)
	dv.Reconfigure()
	if Debug {
		slog.Info("gpu surface resized", "size", dv.Config.Size())
	}
}

// Size returns the current surface size.
func (dv *Device) Size() image.Point {
	return dv.Config.Size()
}

// AspectRatio returns the surface width / height.
func (dv *Device) AspectRatio() float32 {
	return dv.Config.AspectRatio()
}

// Format returns the surface color format.
func (dv *Device) Format() wgpu.TextureFormat {
	return dv.Config.Format
}

// Release releases everything in reverse order of creation.
func (dv *Device) Release() {
	if dv.Queue != nil {
		dv.Queue.Release()
		dv.Queue = nil
	}
	if dv.Device != nil {
		dv.Device.Release()
		dv.Device = nil
	}
	if dv.Adapter != nil {
		dv.Adapter.Release()
		dv.Adapter = nil
	}
	if dv.Surface != nil {
		dv.Surface.Release()
		dv.Surface = nil
	}
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"image"

	"github.com/cogentcore/webgpu/wgpu"
)

// SurfaceConfig is the current configuration of the window surface.
// Width and Height are always at least 1.
type SurfaceConfig struct {
	Width  int
	Height int

	// Format is the color format of the surface textures.
	Format wgpu.TextureFormat

	PresentMode wgpu.PresentMode

	AlphaMode wgpu.CompositeAlphaMode

	// MaxFrameLatency is the desired number of queued frames, 1 or 2.
	// The WebGPU surface configuration has no such setting, so it is
	// only recorded and reported; it does not reach the surface.
	MaxFrameLatency int
}

// ClampSize returns the given size with each dimension raised to at least 1.
// Windows report zero sizes while minimized, which surfaces cannot accept.
func ClampSize(width, height int) image.Point {
	return image.Pt(max(width, 1), max(height, 1))
}

// Size returns the surface size.
func (sc *SurfaceConfig) Size() image.Point {
	return image.Pt(sc.Width, sc.Height)
}

// SetSize sets the surface size, clamped by [ClampSize].
func (sc *SurfaceConfig) SetSize(width, height int) {
	sz := ClampSize(width, height)
	sc.Width, sc.Height = sz.X, sz.Y
}

// AspectRatio returns width / height.
func (sc *SurfaceConfig) AspectRatio() float32 {
	return float32(sc.Width) / float32(sc.Height)
}

func (sc *SurfaceConfig) String() string {
	return fmt.Sprintf("%dx%d format: %v present: %v alpha: %v latency: %d", sc.Width, sc.Height, sc.Format, sc.PresentMode, sc.AlphaMode, sc.MaxFrameLatency)
}

// configuration returns the WebGPU configuration for the surface.
func (sc *SurfaceConfig) configuration() *wgpu.SurfaceConfiguration {
	return &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      sc.Format,
		Width:       uint32(sc.Width),
		Height:      uint32(sc.Height),
		PresentMode: sc.PresentMode,
		AlphaMode:   sc.AlphaMode,
	}
}

// srgbFormats are the surface formats that apply sRGB encoding on write.
var srgbFormats = map[wgpu.TextureFormat]bool{
	wgpu.TextureFormatRGBA8UnormSrgb: true,
	wgpu.TextureFormatBGRA8UnormSrgb: true,
}

// IsSrgb returns whether the format is an sRGB-encoded color format.
func IsSrgb(f wgpu.TextureFormat) bool {
	return srgbFormats[f]
}

// SelectSurfaceFormat returns the first of the supported formats that
// is not sRGB-encoded, falling back on the first supported format.
// Colors are written linearly and the overlay output is already
// gamma encoded, so a linear format keeps both passes consistent.
func SelectSurfaceFormat(formats []wgpu.TextureFormat) (wgpu.TextureFormat, error) {
	if len(formats) == 0 {
		return wgpu.TextureFormatUndefined, fmt.Errorf("gpu: surface reports no supported formats")
	}
	for _, f := range formats {
		if !IsSrgb(f) {
			return f, nil
		}
	}
	return formats[0], nil
}

// PresentModeNames maps config names to present modes.
var PresentModeNames = map[string]wgpu.PresentMode{
	"fifo":      wgpu.PresentModeFifo,
	"immediate": wgpu.PresentModeImmediate,
	"mailbox":   wgpu.PresentModeMailbox,
}

// SelectPresentMode returns the present mode with the given name if it is
// supported, and otherwise the first supported mode. The empty name
// always selects the first supported mode.
func SelectPresentMode(supported []wgpu.PresentMode, name string) wgpu.PresentMode {
	if pm, ok := PresentModeNames[name]; ok {
		for _, s := range supported {
			if s == pm {
				return pm
			}
		}
	}
	if len(supported) == 0 {
		return wgpu.PresentModeFifo
	}
	return supported[0]
}

// SelectAlphaMode returns the first supported alpha mode.
func SelectAlphaMode(supported []wgpu.CompositeAlphaMode) wgpu.CompositeAlphaMode {
	if len(supported) == 0 {
		return wgpu.CompositeAlphaModeAuto
	}
	return supported[0]
}

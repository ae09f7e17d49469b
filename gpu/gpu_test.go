// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampSize(t *testing.T) {
	assert.Equal(t, image.Pt(1, 1), ClampSize(0, 0))
	assert.Equal(t, image.Pt(1, 600), ClampSize(-5, 600))
	assert.Equal(t, image.Pt(800, 600), ClampSize(800, 600))
}

func TestSurfaceConfigSize(t *testing.T) {
	sc := SurfaceConfig{}
	sizes := []image.Point{{800, 600}, {0, 0}, {1024, 1}, {0, 300}}
	want := []image.Point{{800, 600}, {1, 1}, {1024, 1}, {1, 300}}
	for i, sz := range sizes {
		sc.SetSize(sz.X, sz.Y)
		assert.Equal(t, want[i], sc.Size())
		assert.GreaterOrEqual(t, sc.Width, 1)
		assert.GreaterOrEqual(t, sc.Height, 1)
	}
	sc.SetSize(1280, 720)
	assert.InDelta(t, 1280.0/720.0, sc.AspectRatio(), 1e-6)

	cfg := sc.configuration()
	assert.Equal(t, uint32(1280), cfg.Width)
	assert.Equal(t, uint32(720), cfg.Height)
	assert.Equal(t, wgpu.TextureUsageRenderAttachment, cfg.Usage)
}

func TestSelectSurfaceFormat(t *testing.T) {
	f, err := SelectSurfaceFormat([]wgpu.TextureFormat{wgpu.TextureFormatBGRA8UnormSrgb, wgpu.TextureFormatBGRA8Unorm})
	require.NoError(t, err)
	assert.Equal(t, wgpu.TextureFormatBGRA8Unorm, f)

	f, err = SelectSurfaceFormat([]wgpu.TextureFormat{wgpu.TextureFormatRGBA8UnormSrgb})
	require.NoError(t, err)
	assert.Equal(t, wgpu.TextureFormatRGBA8UnormSrgb, f)

	_, err = SelectSurfaceFormat(nil)
	assert.Error(t, err)

	assert.True(t, IsSrgb(wgpu.TextureFormatBGRA8UnormSrgb))
	assert.False(t, IsSrgb(wgpu.TextureFormatRGBA8Unorm))
}

func TestSelectPresentMode(t *testing.T) {
	supported := []wgpu.PresentMode{wgpu.PresentModeFifo, wgpu.PresentModeMailbox}
	assert.Equal(t, wgpu.PresentModeFifo, SelectPresentMode(supported, ""))
	assert.Equal(t, wgpu.PresentModeMailbox, SelectPresentMode(supported, "mailbox"))
	assert.Equal(t, wgpu.PresentModeFifo, SelectPresentMode(supported, "immediate"))
	assert.Equal(t, wgpu.PresentModeFifo, SelectPresentMode(nil, "mailbox"))
}

func TestProfiles(t *testing.T) {
	d, b := DesktopProfile(), BrowserProfile()
	assert.Greater(t, d.MaxTextureDimension2D, b.MaxTextureDimension2D)
	assert.Equal(t, uint32(4096), d.Limits().MaxTextureDimension2D)
	assert.Equal(t, uint32(2048), b.Limits().MaxTextureDimension2D)
}

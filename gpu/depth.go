// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"

	"github.com/cogentcore/webgpu/wgpu"
)

// DepthFormat is the format of depth attachments.
const DepthFormat = wgpu.TextureFormatDepth32Float

// DepthAttachment is a depth texture matching the surface size,
// used as the depth target of the frame render pass.
type DepthAttachment struct {
	Texture *wgpu.Texture
	View    *wgpu.TextureView
	Size    image.Point
}

// NewDepthAttachment returns a new [DepthFormat] depth attachment
// of the given size, clamped to at least 1x1.
func (dv *Device) NewDepthAttachment(width, height int) (*DepthAttachment, error) {
	sz := ClampSize(width, height)
	tex, err := dv.Device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "depth texture",
		Size: wgpu.Extent3D{
			Width:              uint32(sz.X),
			Height:             uint32(sz.Y),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        DepthFormat,
		Usage:         wgpu.TextureUsageRenderAttachment | wgpu.TextureUsageTextureBinding,
	})
	if err != nil {
		return nil, err
	}
	view, err := tex.CreateView(nil)
	if err != nil {
		tex.Release()
		return nil, err
	}
	return &DepthAttachment{Texture: tex, View: view, Size: sz}, nil
}

// Release releases the view and texture.
func (da *DepthAttachment) Release() {
	if da == nil {
		return
	}
	if da.View != nil {
		da.View.Release()
		da.View = nil
	}
	if da.Texture != nil {
		da.Texture.Release()
		da.Texture = nil
	}
}

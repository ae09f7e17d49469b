// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package overlay

import (
	"errors"
	"image"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	err    error
	writes int
	origin wgpu.Origin3D
	size   wgpu.Extent3D
	stride uint32
	data   int
}

func (f *fakeWriter) WriteTexture(dst *wgpu.ImageCopyTexture, data []byte, layout *wgpu.TextureDataLayout, size *wgpu.Extent3D) error {
	f.writes++
	f.origin = dst.Origin
	f.size = *size
	f.stride = layout.BytesPerRow
	f.data = len(data)
	return f.err
}

func TestRendererUpdateWrites(t *testing.T) {
	fw := &fakeWriter{}
	r := &Renderer{writer: fw}
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	require.NoError(t, r.Update(&gpuTexture{}, image.Pt(5, 7), img))
	assert.Equal(t, 1, fw.writes)
	assert.Equal(t, wgpu.Origin3D{X: 5, Y: 7}, fw.origin)
	assert.Equal(t, wgpu.Extent3D{Width: 3, Height: 2, DepthOrArrayLayers: 1}, fw.size)
	assert.Equal(t, uint32(12), fw.stride)
	assert.Equal(t, 24, fw.data)
}

func TestRendererUpdateSubImage(t *testing.T) {
	fw := &fakeWriter{}
	r := &Renderer{writer: fw}
	img := image.NewRGBA(image.Rect(0, 0, 4, 4)).SubImage(image.Rect(1, 2, 3, 4)).(*image.RGBA)
	require.NoError(t, r.Update(&gpuTexture{}, image.Point{}, img))
	assert.Equal(t, wgpu.Extent3D{Width: 2, Height: 2, DepthOrArrayLayers: 1}, fw.size)
	assert.Equal(t, uint32(16), fw.stride)
	assert.Equal(t, 64-(2*16+4), fw.data)
}

func TestRendererUpdateError(t *testing.T) {
	fw := &fakeWriter{err: errors.New("queue lost")}
	r := &Renderer{writer: fw}
	err := r.Update(&gpuTexture{}, image.Point{}, image.NewRGBA(image.Rect(0, 0, 2, 2)))
	assert.ErrorIs(t, err, fw.err)
}

func TestRendererUpdateEmpty(t *testing.T) {
	fw := &fakeWriter{err: errors.New("queue lost")}
	r := &Renderer{writer: fw}
	assert.NoError(t, r.Update(&gpuTexture{}, image.Point{}, image.NewRGBA(image.Rect(0, 0, 0, 4))))
	assert.Zero(t, fw.writes)
}

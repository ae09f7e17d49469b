// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js

package overlay

import (
	"image"
	"testing"
	"time"

	"cogentcore.org/gpuhost/events"
	"cogentcore.org/gpuhost/events/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImGuiFrames(t *testing.T) {
	b := NewImGui()
	defer b.Release()

	screen := ScreenDescriptor{SizeInPixels: image.Pt(800, 600), PixelsPerPoint: 1}
	ui := func(bl Builder) {
		bl.Window("Controls", func() {
			bl.Heading("gpuhost")
			bl.Text("hello")
			bl.Button("Click me")
		})
	}

	out := b.Run(screen, time.Second/60, ui)
	require.NotEmpty(t, out.Textures.Set)
	assert.Equal(t, FontTexture, out.Textures.Set[0].ID)
	font := out.Textures.Set[0].Delta
	assert.True(t, font.IsWhole())
	assert.NotZero(t, font.Image.Rect.Dx())
	assert.NotEmpty(t, out.Primitives)
	for _, p := range out.Primitives {
		assert.NotEmpty(t, p.Mesh.Indices)
		for _, i := range p.Mesh.Indices {
			assert.Less(t, int(i), len(p.Mesh.Vertices))
		}
	}

	out = b.Run(screen, time.Second/60, ui)
	assert.True(t, out.Textures.IsEmpty())
	assert.NotEmpty(t, out.Primitives)
}

func TestImGuiUserImages(t *testing.T) {
	b := NewImGui()
	defer b.Release()

	b.SetImage(3, image.NewRGBA(image.Rect(0, 0, 8, 8)))
	out := b.Run(ScreenDescriptor{SizeInPixels: image.Pt(100, 100), PixelsPerPoint: 1}, 0, nil)
	ids := []TextureID{}
	for _, s := range out.Textures.Set {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []TextureID{FontTexture, 3}, ids)
}

func TestImGuiIdleEventsNotConsumed(t *testing.T) {
	b := NewImGui()
	defer b.Release()

	b.Run(ScreenDescriptor{SizeInPixels: image.Pt(400, 300), PixelsPerPoint: 1}, time.Second/60, nil)
	assert.False(t, b.OnEvent(events.NewMouse(events.MouseMove, events.NoButton, image.Pt(200, 150), 0)))
	assert.False(t, b.OnEvent(events.NewKey(events.KeyDown, 'a', key.CodeA, 0)))
	assert.False(t, b.OnEvent(events.NewResize(image.Pt(10, 10))))
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package overlay

import (
	"image"
	"image/color"
	"testing"
	"time"

	"cogentcore.org/gpuhost/events"
	"cogentcore.org/gpuhost/events/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScissor(t *testing.T) {
	fb := image.Pt(200, 100)
	r := Rect{MinX: 10, MinY: 10, MaxX: 50, MaxY: 40}
	assert.Equal(t, image.Rect(10, 10, 50, 40), r.Scissor(1, fb))
	assert.Equal(t, image.Rect(20, 20, 100, 80), r.Scissor(2, fb))

	big := Rect{MinX: -10, MinY: -10, MaxX: 500, MaxY: 500}
	assert.Equal(t, image.Rect(0, 0, 200, 100), big.Scissor(1, fb))

	off := Rect{MinX: 300, MinY: 10, MaxX: 400, MaxY: 20}
	assert.True(t, off.Scissor(1, fb).Empty())
}

func TestScreenSizeInPoints(t *testing.T) {
	sd := ScreenDescriptor{SizeInPixels: image.Pt(1600, 1200), PixelsPerPoint: 2}
	w, h := sd.SizeInPoints()
	assert.Equal(t, float32(800), w)
	assert.Equal(t, float32(600), h)
}

func TestPackMeshes(t *testing.T) {
	shared := []Vertex{{Pos: [2]float32{0, 0}}, {Pos: [2]float32{1, 0}}, {Pos: [2]float32{0, 1}}, {Pos: [2]float32{1, 1}}}
	other := []Vertex{{Pos: [2]float32{5, 5}}, {Pos: [2]float32{6, 5}}, {Pos: [2]float32{5, 6}}}
	prims := []ClippedPrimitive{
		{Mesh: Mesh{Vertices: shared, Indices: []uint32{0, 1, 2}, Texture: 0}},
		{Mesh: Mesh{Vertices: shared, Indices: []uint32{1, 3, 2}, Texture: 7}},
		{Mesh: Mesh{Vertices: other, Indices: nil}},
		{Mesh: Mesh{Vertices: other, Indices: []uint32{0, 1, 2}, Texture: 0}},
	}
	var p packed
	p.packMeshes(prims)

	assert.Len(t, p.Vertices, 7)
	assert.Len(t, p.Indices, 9)
	require.Len(t, p.Draws, 3)
	assert.Equal(t, drawCall{Texture: 0, FirstIndex: 0, IndexCount: 3, BaseVertex: 0}, p.Draws[0])
	assert.Equal(t, drawCall{Texture: 7, FirstIndex: 3, IndexCount: 3, BaseVertex: 0}, p.Draws[1])
	assert.Equal(t, drawCall{Texture: 0, FirstIndex: 6, IndexCount: 3, BaseVertex: 4}, p.Draws[2])

	p.packMeshes(nil)
	assert.Empty(t, p.Vertices)
	assert.Empty(t, p.Draws)
}

func TestNextPow2(t *testing.T) {
	assert.Equal(t, uint64(1), nextPow2(0))
	assert.Equal(t, uint64(1), nextPow2(1))
	assert.Equal(t, uint64(64), nextPow2(64))
	assert.Equal(t, uint64(128), nextPow2(65))
}

func TestVertexSize(t *testing.T) {
	assert.Equal(t, uint64(20), VertexSize)
}

func TestToRGBA(t *testing.T) {
	rgba := image.NewRGBA(image.Rect(0, 0, 4, 4))
	assert.Same(t, rgba, ToRGBA(rgba, 16))

	gray := image.NewGray(image.Rect(2, 2, 6, 5))
	gray.SetGray(2, 2, color.Gray{Y: 200})
	got := ToRGBA(gray, 16)
	assert.Equal(t, image.Rect(0, 0, 4, 3), got.Rect)
	assert.Equal(t, color.RGBA{200, 200, 200, 255}, got.RGBAAt(0, 0))

	wide := image.NewRGBA(image.Rect(0, 0, 100, 10))
	assert.Equal(t, image.Rect(0, 0, 50, 5), ToRGBA(wide, 50).Rect)
	tall := image.NewRGBA(image.Rect(0, 0, 10, 1000))
	assert.Equal(t, image.Rect(0, 0, 1, 50), ToRGBA(tall, 50).Rect)
}

func TestPassive(t *testing.T) {
	p := NewPassive()
	defer p.Release()

	assert.False(t, p.OnEvent(events.NewMouse(events.MouseDown, events.Left, image.Pt(3, 4), 0)))
	assert.False(t, p.OnEvent(events.NewKey(events.KeyDown, 'a', key.CodeA, 0)))

	p.SetImage(5, image.NewRGBA(image.Rect(0, 0, 2, 2)))
	p.FreeImage(6)

	called := 0
	var windowBody bool
	out := p.Run(ScreenDescriptor{SizeInPixels: image.Pt(100, 100)}, time.Second/60, func(b Builder) {
		called++
		b.Window("test", func() { windowBody = true })
		assert.False(t, b.Button("ok"))
	})
	assert.Equal(t, 1, called)
	assert.True(t, windowBody)
	assert.Empty(t, out.Primitives)
	assert.Equal(t, float32(1), out.PixelsPerPoint)
	require.Len(t, out.Textures.Set, 1)
	assert.Equal(t, TextureID(5), out.Textures.Set[0].ID)
	assert.Equal(t, []TextureID{6}, out.Textures.Free)

	out = p.Run(ScreenDescriptor{SizeInPixels: image.Pt(100, 100), PixelsPerPoint: 2}, 0, nil)
	assert.True(t, out.Textures.IsEmpty())
	assert.Equal(t, float32(2), out.PixelsPerPoint)
}

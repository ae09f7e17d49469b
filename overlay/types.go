// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package overlay

import (
	"image"

	"github.com/chewxy/math32"
)

// TextureID identifies a texture used by the overlay.
// [FontTexture] is reserved for the font atlas.
type TextureID uint64

// FontTexture is the id of the font atlas texture.
const FontTexture TextureID = 0

// FilterModes are the sampling filters of a texture.
type FilterModes int32

const (
	// Linear filtering, for images and the font atlas.
	Linear FilterModes = iota

	// Nearest filtering, for pixel art.
	Nearest
)

// ImageDelta is a change to a texture. If Pos is nil, Image replaces
// the whole texture, creating it if needed; otherwise Image is written
// into the existing texture at Pos.
type ImageDelta struct {
	Image  *image.RGBA
	Pos    *image.Point
	Filter FilterModes
}

// IsWhole returns whether the delta replaces the whole texture.
func (d *ImageDelta) IsWhole() bool {
	return d.Pos == nil
}

// TextureSet is one set entry of a [TexturesDelta].
type TextureSet struct {
	ID    TextureID
	Delta ImageDelta
}

// TexturesDelta is the set of texture changes produced by one UI frame.
// All sets are applied before any frees.
type TexturesDelta struct {
	Set  []TextureSet
	Free []TextureID
}

// Append appends the changes in o after those in td.
func (td *TexturesDelta) Append(o TexturesDelta) {
	td.Set = append(td.Set, o.Set...)
	td.Free = append(td.Free, o.Free...)
}

// IsEmpty returns whether there are no changes.
func (td *TexturesDelta) IsEmpty() bool {
	return len(td.Set) == 0 && len(td.Free) == 0
}

// Vertex is an overlay vertex, positioned in points.
type Vertex struct {
	Pos   [2]float32
	UV    [2]float32
	Color [4]uint8
}

// Mesh is an indexed triangle list textured by one texture.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Texture  TextureID
}

// Rect is a rectangle in points.
type Rect struct {
	MinX, MinY, MaxX, MaxY float32
}

// Scissor returns the pixel rectangle covered by r at the given pixels
// per point, clamped to a framebuffer of the given size. The result
// is empty if nothing is visible.
func (r Rect) Scissor(pixelsPerPoint float32, fb image.Point) image.Rectangle {
	x0 := int(math32.Round(r.MinX * pixelsPerPoint))
	y0 := int(math32.Round(r.MinY * pixelsPerPoint))
	x1 := int(math32.Round(r.MaxX * pixelsPerPoint))
	y1 := int(math32.Round(r.MaxY * pixelsPerPoint))
	return image.Rect(x0, y0, x1, y1).Intersect(image.Rectangle{Max: fb})
}

// ClippedPrimitive is a mesh with the rectangle it is clipped to.
type ClippedPrimitive struct {
	ClipRect Rect
	Mesh     Mesh
}

// FullOutput is the output of one UI frame.
type FullOutput struct {
	Primitives     []ClippedPrimitive
	Textures       TexturesDelta
	PixelsPerPoint float32
}

// ScreenDescriptor describes the framebuffer the overlay is drawn to.
type ScreenDescriptor struct {
	SizeInPixels   image.Point
	PixelsPerPoint float32
}

// SizeInPoints returns the framebuffer size in points.
func (sd ScreenDescriptor) SizeInPoints() (width, height float32) {
	ppp := sd.PixelsPerPoint
	if ppp <= 0 {
		ppp = 1
	}
	return float32(sd.SizeInPixels.X) / ppp, float32(sd.SizeInPixels.Y) / ppp
}

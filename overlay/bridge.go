// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package overlay provides the immediate-mode UI overlay: the bridge
// that feeds window events to the UI and runs it each frame, and the
// GPU renderer that draws its output on top of the scene.
package overlay

import (
	"image"
	"sync"
	"time"

	"cogentcore.org/gpuhost/events"
	"golang.org/x/image/draw"
)

// Bridge connects the UI to the window and the renderer.
type Bridge interface {
	// OnEvent offers a window event to the UI and returns whether the UI
	// consumed it, in which case it must not be handled by anything else.
	OnEvent(e events.Event) bool

	// Run runs one UI frame for the given screen and frame time,
	// calling build to declare the UI, and returns the output to render.
	Run(screen ScreenDescriptor, dt time.Duration, build func(Builder)) *FullOutput

	// SetImage registers or replaces the image shown for the given id.
	// The image is uploaded with the output of the next [Bridge.Run].
	SetImage(id TextureID, img image.Image)

	// FreeImage frees the image with the given id after the next [Bridge.Run].
	FreeImage(id TextureID)

	// Release releases the UI state.
	Release()
}

// MaxImageSize is the largest image dimension accepted by
// [Bridge.SetImage]; larger images are scaled down to fit.
var MaxImageSize = 2048

// images collects user image changes between frames.
type images struct {
	mu    sync.Mutex
	delta TexturesDelta
}

func (im *images) set(id TextureID, img image.Image) {
	rgba := ToRGBA(img, MaxImageSize)
	im.mu.Lock()
	defer im.mu.Unlock()
	im.delta.Set = append(im.delta.Set, TextureSet{ID: id, Delta: ImageDelta{Image: rgba}})
}

func (im *images) free(id TextureID) {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.delta.Free = append(im.delta.Free, id)
}

// take returns and clears the collected changes.
func (im *images) take() TexturesDelta {
	im.mu.Lock()
	defer im.mu.Unlock()
	td := im.delta
	im.delta = TexturesDelta{}
	return td
}

// ToRGBA returns img as an [image.RGBA] with its origin at (0, 0),
// scaled down if needed so that neither dimension exceeds maxSize.
// An *image.RGBA already in that form is returned as is.
func ToRGBA(img image.Image, maxSize int) *image.RGBA {
	b := img.Bounds()
	sz := b.Size()
	if maxSize > 0 && (sz.X > maxSize || sz.Y > maxSize) {
		if sz.X >= sz.Y {
			sz = image.Pt(maxSize, max(1, sz.Y*maxSize/sz.X))
		} else {
			sz = image.Pt(max(1, sz.X*maxSize/sz.Y), maxSize)
		}
		dst := image.NewRGBA(image.Rectangle{Max: sz})
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
		return dst
	}
	if rgba, ok := img.(*image.RGBA); ok && b.Min == (image.Point{}) {
		return rgba
	}
	dst := image.NewRGBA(image.Rectangle{Max: sz})
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

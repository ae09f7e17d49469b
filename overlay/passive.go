// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package overlay

import (
	"image"
	"time"

	"cogentcore.org/gpuhost/events"
)

// Passive is a [Bridge] without a widget backend, used where no UI
// library is available. It never consumes events and produces no
// primitives, but still calls the build function each frame and
// passes registered images through to the renderer.
type Passive struct {
	images images
}

// NewPassive returns a new [Passive] bridge.
func NewPassive() *Passive {
	return &Passive{}
}

func (p *Passive) OnEvent(e events.Event) bool {
	return false
}

func (p *Passive) Run(screen ScreenDescriptor, dt time.Duration, build func(Builder)) *FullOutput {
	if build != nil {
		build(nopBuilder{})
	}
	ppp := screen.PixelsPerPoint
	if ppp <= 0 {
		ppp = 1
	}
	return &FullOutput{Textures: p.images.take(), PixelsPerPoint: ppp}
}

func (p *Passive) SetImage(id TextureID, img image.Image) {
	p.images.set(id, img)
}

func (p *Passive) FreeImage(id TextureID) {
	p.images.free(id)
}

func (p *Passive) Release() {}

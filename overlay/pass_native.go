// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js

package overlay

import (
	"image"

	"github.com/cogentcore/webgpu/wgpu"
)

func setViewport(rp *wgpu.RenderPassEncoder, fb image.Point) {
	rp.SetViewport(0, 0, float32(fb.X), float32(fb.Y), 0, 1)
}

func setScissor(rp *wgpu.RenderPassEncoder, sc image.Rectangle) {
	rp.SetScissorRect(uint32(sc.Min.X), uint32(sc.Min.Y), uint32(sc.Dx()), uint32(sc.Dy()))
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

package overlay

import (
	"image"

	"github.com/cogentcore/webgpu/wgpu"
)

// The js render pass has no viewport or scissor state, so the pass
// keeps its defaults of the full target. The [Passive] bridge used
// on the web emits no primitives to clip.

func setViewport(rp *wgpu.RenderPassEncoder, fb image.Point) {}

func setScissor(rp *wgpu.RenderPassEncoder, sc image.Rectangle) {}

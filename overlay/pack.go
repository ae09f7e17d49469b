// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package overlay

import "unsafe"

// drawCall is one indexed draw into the packed buffers.
type drawCall struct {
	Clip       Rect
	Texture    TextureID
	FirstIndex uint32
	IndexCount uint32
	BaseVertex int32
}

// packed holds the meshes of one frame in single vertex
// and index arrays.
type packed struct {
	Vertices []Vertex
	Indices  []uint32
	Draws    []drawCall
}

// packMeshes packs the primitives into p, reusing its storage.
// Consecutive primitives sharing the same vertex slice share
// their vertices in the packed array. Primitives with no indices
// are dropped.
func (p *packed) packMeshes(prims []ClippedPrimitive) {
	p.Vertices = p.Vertices[:0]
	p.Indices = p.Indices[:0]
	p.Draws = p.Draws[:0]
	var last *Vertex
	base := int32(0)
	for i := range prims {
		m := &prims[i].Mesh
		if len(m.Indices) == 0 || len(m.Vertices) == 0 {
			continue
		}
		vp := unsafe.SliceData(m.Vertices)
		if vp != last {
			base = int32(len(p.Vertices))
			p.Vertices = append(p.Vertices, m.Vertices...)
			last = vp
		}
		p.Draws = append(p.Draws, drawCall{
			Clip:       prims[i].ClipRect,
			Texture:    m.Texture,
			FirstIndex: uint32(len(p.Indices)),
			IndexCount: uint32(len(m.Indices)),
			BaseVertex: base,
		})
		p.Indices = append(p.Indices, m.Indices...)
	}
}

// nextPow2 returns the smallest power of two that is >= n, and at least 1.
func nextPow2(n uint64) uint64 {
	p := uint64(1)
	for p < n {
		p <<= 1
	}
	return p
}


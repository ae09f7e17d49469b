// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
)

// Vertex is an interleaved position and color vertex.
type Vertex struct {
	Position [4]float32
	Color    [4]float32
}

// VertexSize is the stride of [Vertex] in bytes.
const VertexSize = uint64(unsafe.Sizeof(Vertex{}))

// Triangle is the scene geometry.
var Triangle = []Vertex{
	{Position: [4]float32{1, -1, 0, 1}, Color: [4]float32{1, 0, 0, 1}},
	{Position: [4]float32{-1, -1, 0, 1}, Color: [4]float32{0, 1, 0, 1}},
	{Position: [4]float32{0, 1, 0, 1}, Color: [4]float32{0, 0, 1, 1}},
}

// TriangleIndices are the indices of [Triangle], in clockwise order.
var TriangleIndices = []uint32{0, 1, 2}

// VertexLayout returns the vertex buffer layout of [Vertex]:
// position at location 0 and color at location 1.
func VertexLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: VertexSize,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x4, Offset: 0, ShaderLocation: 0},
			{Format: wgpu.VertexFormatFloat32x4, Offset: 16, ShaderLocation: 1},
		},
	}
}

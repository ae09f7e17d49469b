// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// UniformSize is the size of the uniform block: one 4x4 float32 matrix.
const UniformSize = 64

// BufferWriter writes data to a GPU buffer; it is implemented by [wgpu.Queue].
type BufferWriter interface {
	WriteBuffer(buffer *wgpu.Buffer, offset uint64, data []byte) error
}

// UniformBinding is the model-view-projection uniform buffer,
// visible to the vertex stage at group 0, binding 0.
type UniformBinding struct {
	Buffer    *wgpu.Buffer
	Layout    *wgpu.BindGroupLayout
	BindGroup *wgpu.BindGroup
}

// NewUniformBinding creates the uniform buffer, initialized to zero,
// with its bind group layout and bind group.
func NewUniformBinding(dev *wgpu.Device) (*UniformBinding, error) {
	ub := &UniformBinding{}
	var err error
	ub.Buffer, err = dev.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "uniform buffer",
		Contents: make([]byte, UniformSize),
		Usage:    wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, err
	}
	ub.Layout, err = dev.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "uniform bind group layout",
		Entries: []wgpu.BindGroupLayoutEntry{{
			Binding:    0,
			Visibility: wgpu.ShaderStageVertex,
			Buffer: wgpu.BufferBindingLayout{
				Type:           wgpu.BufferBindingTypeUniform,
				MinBindingSize: UniformSize,
			},
		}},
	})
	if err != nil {
		ub.Release()
		return nil, err
	}
	ub.BindGroup, err = dev.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "uniform bind group",
		Layout: ub.Layout,
		Entries: []wgpu.BindGroupEntry{{
			Binding: 0,
			Buffer:  ub.Buffer,
			Size:    wgpu.WholeSize,
		}},
	})
	if err != nil {
		ub.Release()
		return nil, err
	}
	return ub, nil
}

// MatrixBytes returns the column-major bytes of m, as WGSL mat4x4 expects.
func MatrixBytes(m mgl32.Mat4) []byte {
	return wgpu.ToBytes(m[:])
}

// Write writes the matrix to the uniform buffer.
func (ub *UniformBinding) Write(q BufferWriter, m mgl32.Mat4) error {
	return q.WriteBuffer(ub.Buffer, 0, MatrixBytes(m))
}

// Release releases the GPU objects.
func (ub *UniformBinding) Release() {
	if ub.BindGroup != nil {
		ub.BindGroup.Release()
		ub.BindGroup = nil
	}
	if ub.Layout != nil {
		ub.Layout.Release()
		ub.Layout = nil
	}
	if ub.Buffer != nil {
		ub.Buffer.Release()
		ub.Buffer = nil
	}
}

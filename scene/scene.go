// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides the 3D scene: a colored triangle spinning
// about the vertical axis, with its buffers, uniform, and pipeline.
package scene

import (
	_ "embed"
	"time"

	"cogentcore.org/gpuhost/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

//go:embed scene.wgsl
var shaderSource string

// Scene holds the GPU resources of the scene, created once at startup,
// and the [Transform] animated each frame.
type Scene struct {
	Transform Transform

	vertexBuffer *wgpu.Buffer
	indexBuffer  *wgpu.Buffer
	indexCount   uint32
	uniform      *UniformBinding
	pipeline     *wgpu.RenderPipeline
}

// New creates the scene resources for rendering to the given color
// format with the given depth format, spinning at the given speed
// in degrees per second.
func New(dev *wgpu.Device, colorFormat, depthFormat wgpu.TextureFormat, degreesPerSecond float32) (*Scene, error) {
	sc := &Scene{Transform: NewTransform(degreesPerSecond)}
	var err error
	sc.vertexBuffer, err = dev.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "vertex buffer",
		Contents: wgpu.ToBytes(Triangle),
		Usage:    wgpu.BufferUsageVertex,
	})
	if err != nil {
		return nil, err
	}
	sc.indexBuffer, err = dev.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "index buffer",
		Contents: wgpu.ToBytes(TriangleIndices),
		Usage:    wgpu.BufferUsageIndex,
	})
	if err != nil {
		sc.Release()
		return nil, err
	}
	sc.indexCount = uint32(len(TriangleIndices))
	sc.uniform, err = NewUniformBinding(dev)
	if err != nil {
		sc.Release()
		return nil, err
	}
	sc.pipeline, err = newPipeline(dev, sc.uniform.Layout, colorFormat, depthFormat)
	if err != nil {
		sc.Release()
		return nil, err
	}
	return sc, nil
}

func newPipeline(dev *wgpu.Device, layout *wgpu.BindGroupLayout, colorFormat, depthFormat wgpu.TextureFormat) (*wgpu.RenderPipeline, error) {
	module, err := dev.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "scene shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: shaderSource},
	})
	if err != nil {
		return nil, err
	}
	defer module.Release()

	pl, err := dev.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "scene pipeline layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{layout},
	})
	if err != nil {
		return nil, err
	}
	defer pl.Release()

	return dev.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "scene pipeline",
		Layout: pl,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: "vertex_main",
			Buffers:    []wgpu.VertexBufferLayout{VertexLayout()},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:         wgpu.PrimitiveTopologyTriangleStrip,
			StripIndexFormat: wgpu.IndexFormatUint32,
			FrontFace:        wgpu.FrontFaceCW,
			CullMode:         wgpu.CullModeNone,
		},
		DepthStencil: &wgpu.DepthStencilState{
			Format:            depthFormat,
			DepthWriteEnabled: true,
			DepthCompare:      wgpu.CompareFunctionLess,
			StencilFront:      wgpu.StencilFaceState{Compare: wgpu.CompareFunctionAlways},
			StencilBack:       wgpu.StencilFaceState{Compare: wgpu.CompareFunctionAlways},
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: "fragment_main",
			Targets: []wgpu.ColorTargetState{{
				Format:    colorFormat,
				Blend:     &wgpu.BlendStateAlphaBlending,
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
	})
}

// Update advances the model rotation by dt and writes the resulting
// model-view-projection matrix for the given aspect ratio to the
// uniform buffer, once.
func (sc *Scene) Update(q BufferWriter, aspect float32, dt time.Duration) error {
	sc.Transform.Advance(dt)
	return errors.Log(sc.uniform.Write(q, sc.Transform.MVP(aspect)))
}

// MVP returns the current model-view-projection matrix for the given aspect ratio.
func (sc *Scene) MVP(aspect float32) mgl32.Mat4 {
	return sc.Transform.MVP(aspect)
}

// Draw records the scene draw commands into the render pass.
func (sc *Scene) Draw(rp *wgpu.RenderPassEncoder) {
	rp.SetPipeline(sc.pipeline)
	rp.SetBindGroup(0, sc.uniform.BindGroup, nil)
	rp.SetVertexBuffer(0, sc.vertexBuffer, 0, wgpu.WholeSize)
	rp.SetIndexBuffer(sc.indexBuffer, wgpu.IndexFormatUint32, 0, wgpu.WholeSize)
	rp.DrawIndexed(sc.indexCount, 1, 0, 0, 0)
}

// Release releases all GPU resources.
func (sc *Scene) Release() {
	if sc.pipeline != nil {
		sc.pipeline.Release()
		sc.pipeline = nil
	}
	if sc.uniform != nil {
		sc.uniform.Release()
		sc.uniform = nil
	}
	if sc.indexBuffer != nil {
		sc.indexBuffer.Release()
		sc.indexBuffer = nil
	}
	if sc.vertexBuffer != nil {
		sc.vertexBuffer.Release()
		sc.vertexBuffer = nil
	}
}

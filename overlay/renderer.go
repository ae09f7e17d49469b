// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package overlay

import (
	_ "embed"
	"encoding/binary"
	"image"
	"math"
	"unsafe"

	"cogentcore.org/gpuhost/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

//go:embed overlay.wgsl
var shaderSource string

// VertexSize is the size of a [Vertex] in bytes.
const VertexSize = uint64(unsafe.Sizeof(Vertex{}))

// ScreenUniformSize is the size of the screen uniform in bytes.
const ScreenUniformSize = 16

// premultipliedBlend blends premultiplied colors over the target.
var premultipliedBlend = wgpu.BlendState{
	Color: wgpu.BlendComponent{
		SrcFactor: wgpu.BlendFactorOne,
		DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
		Operation: wgpu.BlendOperationAdd,
	},
	Alpha: wgpu.BlendComponent{
		SrcFactor: wgpu.BlendFactorOne,
		DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
		Operation: wgpu.BlendOperationAdd,
	},
}

// gpuTexture is a device texture with its bind group.
type gpuTexture struct {
	texture   *wgpu.Texture
	view      *wgpu.TextureView
	bindGroup *wgpu.BindGroup
}

func (t *gpuTexture) release() {
	if t.bindGroup != nil {
		t.bindGroup.Release()
	}
	if t.view != nil {
		t.view.Release()
	}
	if t.texture != nil {
		t.texture.Release()
	}
}

// textureWriter uploads texel data, as [wgpu.Queue] does.
type textureWriter interface {
	WriteTexture(destination *wgpu.ImageCopyTexture, data []byte, dataLayout *wgpu.TextureDataLayout, writeSize *wgpu.Extent3D) error
}

// Renderer draws the output of a [Bridge] into a render pass.
// It owns the overlay pipeline, buffers, and textures.
type Renderer struct {
	device *wgpu.Device
	queue  *wgpu.Queue
	writer textureWriter

	pipeline      *wgpu.RenderPipeline
	screenBuffer  *wgpu.Buffer
	screenLayout  *wgpu.BindGroupLayout
	screenGroup   *wgpu.BindGroup
	textureLayout *wgpu.BindGroupLayout
	samplers      [2]*wgpu.Sampler

	vertexBuffer *wgpu.Buffer
	vertexSize   uint64
	indexBuffer  *wgpu.Buffer
	indexSize    uint64

	textures *Textures[*gpuTexture]
	packed   packed
}

// NewRenderer returns a new overlay renderer drawing to targets of the
// given color format, in a pass with the given depth format.
func NewRenderer(dev *wgpu.Device, queue *wgpu.Queue, colorFormat, depthFormat wgpu.TextureFormat) (*Renderer, error) {
	r := &Renderer{device: dev, queue: queue, writer: queue}
	r.textures = NewTextures[*gpuTexture](r)
	if err := r.init(colorFormat, depthFormat); err != nil {
		r.Release()
		return nil, err
	}
	return r, nil
}

func (r *Renderer) init(colorFormat, depthFormat wgpu.TextureFormat) error {
	var err error
	r.screenBuffer, err = r.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "overlay screen uniform",
		Size:  ScreenUniformSize,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if errors.Log(err) != nil {
		return err
	}
	r.screenLayout, err = r.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "overlay screen layout",
		Entries: []wgpu.BindGroupLayoutEntry{{
			Binding:    0,
			Visibility: wgpu.ShaderStageVertex,
			Buffer: wgpu.BufferBindingLayout{
				Type:           wgpu.BufferBindingTypeUniform,
				MinBindingSize: ScreenUniformSize,
			},
		}},
	})
	if errors.Log(err) != nil {
		return err
	}
	r.screenGroup, err = r.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "overlay screen group",
		Layout: r.screenLayout,
		Entries: []wgpu.BindGroupEntry{{
			Binding: 0,
			Buffer:  r.screenBuffer,
			Size:    ScreenUniformSize,
		}},
	})
	if errors.Log(err) != nil {
		return err
	}
	r.textureLayout, err = r.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "overlay texture layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageFragment,
				Sampler:    wgpu.SamplerBindingLayout{Type: wgpu.SamplerBindingTypeFiltering},
			},
			{
				Binding:    1,
				Visibility: wgpu.ShaderStageFragment,
				Texture: wgpu.TextureBindingLayout{
					SampleType:    wgpu.TextureSampleTypeFloat,
					ViewDimension: wgpu.TextureViewDimension2D,
				},
			},
		},
	})
	if errors.Log(err) != nil {
		return err
	}
	for i, f := range []wgpu.FilterMode{wgpu.FilterModeLinear, wgpu.FilterModeNearest} {
		r.samplers[i], err = r.device.CreateSampler(&wgpu.SamplerDescriptor{
			Label:         "overlay sampler",
			AddressModeU:  wgpu.AddressModeClampToEdge,
			AddressModeV:  wgpu.AddressModeClampToEdge,
			AddressModeW:  wgpu.AddressModeClampToEdge,
			MagFilter:     f,
			MinFilter:     f,
			MipmapFilter:  wgpu.MipmapFilterModeNearest,
			LodMaxClamp:   32,
			MaxAnisotropy: 1,
		})
		if errors.Log(err) != nil {
			return err
		}
	}
	r.pipeline, err = r.newPipeline(colorFormat, depthFormat)
	errors.Log(err)
	return err
}

func (r *Renderer) newPipeline(colorFormat, depthFormat wgpu.TextureFormat) (*wgpu.RenderPipeline, error) {
	module, err := r.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "overlay shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: shaderSource},
	})
	if err != nil {
		return nil, err
	}
	defer module.Release()

	pl, err := r.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "overlay pipeline layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{r.screenLayout, r.textureLayout},
	})
	if err != nil {
		return nil, err
	}
	defer pl.Release()

	return r.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "overlay pipeline",
		Layout: pl,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: "vertex_main",
			Buffers: []wgpu.VertexBufferLayout{{
				ArrayStride: VertexSize,
				StepMode:    wgpu.VertexStepModeVertex,
				Attributes: []wgpu.VertexAttribute{
					{Format: wgpu.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
					{Format: wgpu.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},
					{Format: wgpu.VertexFormatUnorm8x4, Offset: 16, ShaderLocation: 2},
				},
			}},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		DepthStencil: &wgpu.DepthStencilState{
			Format:            depthFormat,
			DepthWriteEnabled: false,
			DepthCompare:      wgpu.CompareFunctionAlways,
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
				Blend:     &premultipliedBlend,
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
	})
}

// Create implements [Uploader].
func (r *Renderer) Create(id TextureID, img *image.RGBA, filter FilterModes) (*gpuTexture, error) {
	sz := img.Rect.Size()
	t := &gpuTexture{}
	var err error
	t.texture, err = r.device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "overlay texture",
		Size: wgpu.Extent3D{
			Width:              uint32(sz.X),
			Height:             uint32(sz.Y),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatRGBA8Unorm,
		Usage:         wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
	})
	if err != nil {
		return nil, err
	}
	t.view, err = t.texture.CreateView(nil)
	if err != nil {
		t.release()
		return nil, err
	}
	smp := r.samplers[0]
	if filter == Nearest {
		smp = r.samplers[1]
	}
	t.bindGroup, err = r.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "overlay texture group",
		Layout: r.textureLayout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Sampler: smp},
			{Binding: 1, TextureView: t.view},
		},
	})
	if err != nil {
		t.release()
		return nil, err
	}
	if err := r.write(t, image.Point{}, img); err != nil {
		t.release()
		return nil, err
	}
	return t, nil
}

// Update implements [Uploader].
func (r *Renderer) Update(t *gpuTexture, pos image.Point, img *image.RGBA) error {
	return r.write(t, pos, img)
}

// Destroy implements [Uploader].
func (r *Renderer) Destroy(t *gpuTexture) {
	t.release()
}

func (r *Renderer) write(t *gpuTexture, pos image.Point, img *image.RGBA) error {
	sz := img.Rect.Size()
	if sz.X == 0 || sz.Y == 0 {
		return nil
	}
	size := wgpu.Extent3D{Width: uint32(sz.X), Height: uint32(sz.Y), DepthOrArrayLayers: 1}
	return r.writer.WriteTexture(
		&wgpu.ImageCopyTexture{
			Aspect:   wgpu.TextureAspectAll,
			Texture:  t.texture,
			MipLevel: 0,
			Origin:   wgpu.Origin3D{X: uint32(pos.X), Y: uint32(pos.Y), Z: 0},
		},
		img.Pix[img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y):],
		&wgpu.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  uint32(img.Stride),
			RowsPerImage: uint32(sz.Y),
		},
		&size,
	)
}

// UpdateTextures applies the texture changes of one UI frame.
func (r *Renderer) UpdateTextures(td TexturesDelta) error {
	return errors.Log(r.textures.Apply(td))
}

// Textures returns the registry of live textures.
func (r *Renderer) Textures() *Textures[*gpuTexture] {
	return r.textures
}

// UpdateBuffers packs the primitives of one UI frame and uploads them
// along with the screen size, growing the buffers as needed.
func (r *Renderer) UpdateBuffers(prims []ClippedPrimitive, screen ScreenDescriptor) error {
	w, h := screen.SizeInPoints()
	var sb [ScreenUniformSize]byte
	binary.LittleEndian.PutUint32(sb[0:], math.Float32bits(w))
	binary.LittleEndian.PutUint32(sb[4:], math.Float32bits(h))
	if err := r.queue.WriteBuffer(r.screenBuffer, 0, sb[:]); err != nil {
		return err
	}

	r.packed.packMeshes(prims)
	if len(r.packed.Draws) == 0 {
		return nil
	}
	vbytes := wgpu.ToBytes(r.packed.Vertices)
	if err := r.ensureBuffer(&r.vertexBuffer, &r.vertexSize, uint64(len(vbytes)), wgpu.BufferUsageVertex, "overlay vertex buffer"); err != nil {
		return err
	}
	if err := r.queue.WriteBuffer(r.vertexBuffer, 0, vbytes); err != nil {
		return err
	}
	ibytes := wgpu.ToBytes(r.packed.Indices)
	if err := r.ensureBuffer(&r.indexBuffer, &r.indexSize, uint64(len(ibytes)), wgpu.BufferUsageIndex, "overlay index buffer"); err != nil {
		return err
	}
	return r.queue.WriteBuffer(r.indexBuffer, 0, ibytes)
}

func (r *Renderer) ensureBuffer(buf **wgpu.Buffer, size *uint64, need uint64, usage wgpu.BufferUsage, label string) error {
	if *buf != nil && *size >= need {
		return nil
	}
	if *buf != nil {
		(*buf).Release()
		*buf = nil
	}
	n := nextPow2(need)
	b, err := r.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: label,
		Size:  n,
		Usage: usage | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		*size = 0
		return err
	}
	*buf = b
	*size = n
	return nil
}

// Draw records the draws packed by the last [Renderer.UpdateBuffers]
// into the render pass. Draws that are clipped away or whose texture
// is not live are skipped.
func (r *Renderer) Draw(rp *wgpu.RenderPassEncoder, screen ScreenDescriptor) {
	if len(r.packed.Draws) == 0 || r.vertexBuffer == nil || r.indexBuffer == nil {
		return
	}
	fb := screen.SizeInPixels
	ppp := screen.PixelsPerPoint
	if ppp <= 0 {
		ppp = 1
	}
	setViewport(rp, fb)
	rp.SetPipeline(r.pipeline)
	rp.SetBindGroup(0, r.screenGroup, nil)
	rp.SetVertexBuffer(0, r.vertexBuffer, 0, wgpu.WholeSize)
	rp.SetIndexBuffer(r.indexBuffer, wgpu.IndexFormatUint32, 0, wgpu.WholeSize)
	for _, d := range r.packed.Draws {
		sc := d.Clip.Scissor(ppp, fb)
		if sc.Empty() {
			continue
		}
		t, ok := r.textures.Get(d.Texture)
		if !ok {
			continue
		}
		setScissor(rp, sc)
		rp.SetBindGroup(1, t.bindGroup, nil)
		rp.DrawIndexed(d.IndexCount, 1, d.FirstIndex, d.BaseVertex, 0)
	}
	setScissor(rp, image.Rectangle{Max: fb})
}

// Release releases all GPU resources.
func (r *Renderer) Release() {
	if r.textures != nil {
		r.textures.Release()
	}
	for _, b := range []*wgpu.Buffer{r.vertexBuffer, r.indexBuffer, r.screenBuffer} {
		if b != nil {
			b.Release()
		}
	}
	r.vertexBuffer, r.indexBuffer, r.screenBuffer = nil, nil, nil
	if r.pipeline != nil {
		r.pipeline.Release()
		r.pipeline = nil
	}
	for i, s := range r.samplers {
		if s != nil {
			s.Release()
			r.samplers[i] = nil
		}
	}
	if r.screenGroup != nil {
		r.screenGroup.Release()
		r.screenGroup = nil
	}
	if r.textureLayout != nil {
		r.textureLayout.Release()
		r.textureLayout = nil
	}
	if r.screenLayout != nil {
		r.screenLayout.Release()
		r.screenLayout = nil
	}
}

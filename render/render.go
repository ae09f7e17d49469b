// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render draws one frame: the scene and then the UI overlay
// on top, in a single render pass into the window surface.
package render

import (
	"image"
	"time"

	"cogentcore.org/gpuhost/base/errors"
	"cogentcore.org/gpuhost/config"
	"cogentcore.org/gpuhost/gpu"
	"cogentcore.org/gpuhost/overlay"
	"cogentcore.org/gpuhost/scene"
	"github.com/cogentcore/webgpu/wgpu"
)

// target is a resizable surface that makes depth attachments
// matching it, as [gpu.Device] does.
type target interface {
	Resize(width, height int)
	Size() image.Point
	NewDepthAttachment(width, height int) (*gpu.DepthAttachment, error)
}

// Renderer owns everything needed to draw a frame on a [gpu.Device]:
// the depth attachment, the scene, and the overlay renderer.
type Renderer struct {
	// Device is the graphics device rendered to.
	Device *gpu.Device

	// ClearColor is the background color of each frame.
	ClearColor wgpu.Color

	target  target
	depth   *gpu.DepthAttachment
	scene   *scene.Scene
	overlay *overlay.Renderer
	acquire acquireTracker
}

// New returns a new renderer for the given device, with the
// clear color and rotation speed of the given config. The renderer
// owns the device, which is released by [Renderer.Release], and also
// if New fails.
func New(dev *gpu.Device, cfg *config.Config) (*Renderer, error) {
	r := &Renderer{Device: dev, target: dev}
	if cfg == nil {
		cfg = config.New()
	}
	cc := cfg.ClearColor
	r.ClearColor = wgpu.Color{R: cc[0], G: cc[1], B: cc[2], A: cc[3]}

	sz := dev.Size()
	var err error
	r.depth, err = dev.NewDepthAttachment(sz.X, sz.Y)
	if errors.Log(err) != nil {
		r.Release()
		return nil, err
	}
	r.scene, err = scene.New(dev.Device, dev.Format(), gpu.DepthFormat, cfg.AngularVelocity)
	if errors.Log(err) != nil {
		r.Release()
		return nil, err
	}
	r.overlay, err = overlay.NewRenderer(dev.Device, dev.Queue, dev.Format(), gpu.DepthFormat)
	if errors.Log(err) != nil {
		r.Release()
		return nil, err
	}
	return r, nil
}

// Resize resizes the surface and recreates the depth attachment to
// match, with both dimensions clamped to at least 1.
// If the new depth attachment cannot be made, the old one is kept
// and the error returned.
func (r *Renderer) Resize(width, height int) error {
	r.target.Resize(width, height)
	sz := r.target.Size()
	if r.depth != nil && r.depth.Size == sz {
		return nil
	}
	depth, err := r.target.NewDepthAttachment(sz.X, sz.Y)
	if errors.Log(err) != nil {
		return err
	}
	r.depth.Release()
	r.depth = depth
	return nil
}

// Size returns the current surface size.
func (r *Renderer) Size() image.Point {
	return r.target.Size()
}

// DepthSize returns the size of the depth attachment,
// which always matches the surface size after [Renderer.Resize].
func (r *Renderer) DepthSize() image.Point {
	return r.depth.Size
}

// Scene returns the scene.
func (r *Renderer) Scene() *scene.Scene {
	return r.scene
}

// Overlay returns the overlay renderer.
func (r *Renderer) Overlay() *overlay.Renderer {
	return r.overlay
}

// RenderFrame draws one frame: it advances the scene by dt, applies the
// overlay texture changes and uploads its meshes, then acquires the
// surface texture and records a single pass drawing the scene and then
// the overlay, which is submitted and presented. If the surface texture
// cannot be acquired, the surface is reconfigured and the frame skipped;
// [ErrSurfaceLost] is returned once that has happened too many times
// in a row.
func (r *Renderer) RenderFrame(screen overlay.ScreenDescriptor, out *overlay.FullOutput, dt time.Duration) error {
	dev := r.Device
	if err := r.scene.Update(dev.Queue, dev.AspectRatio(), dt); err != nil {
		return err
	}
	if out != nil {
		r.overlay.UpdateTextures(out.Textures)
	}

	enc, err := dev.Device.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{Label: "frame encoder"})
	if errors.Log(err) != nil {
		return err
	}
	defer enc.Release()

	var prims []overlay.ClippedPrimitive
	if out != nil {
		prims = out.Primitives
	}
	if err := r.overlay.UpdateBuffers(prims, screen); errors.Log(err) != nil {
		return err
	}

	tex, err := dev.Surface.GetCurrentTexture()
	if err != nil {
		return r.acquire.failed(err, dev.Reconfigure)
	}
	r.acquire.succeeded()
	defer tex.Release()
	view, err := tex.CreateView(nil)
	if errors.Log(err) != nil {
		return err
	}
	defer view.Release()

	rp := enc.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "frame pass",
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     wgpu.LoadOpClear,
			StoreOp:    wgpu.StoreOpStore,
			ClearValue: r.ClearColor,
		}},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            r.depth.View,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpStore,
			DepthClearValue: 1,
		},
	})
	r.scene.Draw(rp)
	r.overlay.Draw(rp, screen)
	rp.End()
	rp.Release() // must happen before Finish

	cmd, err := enc.Finish(nil)
	if errors.Log(err) != nil {
		return err
	}
	defer cmd.Release()
	dev.Queue.Submit(cmd)
	dev.Surface.Present()
	return nil
}

// Release releases all resources, in reverse order of creation,
// ending with the device.
func (r *Renderer) Release() {
	if r.overlay != nil {
		r.overlay.Release()
		r.overlay = nil
	}
	if r.scene != nil {
		r.scene.Release()
		r.scene = nil
	}
	r.depth.Release()
	r.depth = nil
	if r.Device != nil {
		r.Device.Release()
		r.Device = nil
	}
	r.target = nil
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system runs an [App] in a window: it owns the window,
// the renderer, and the UI overlay, routes window events between
// them, and drives a continuous redraw loop on a [Platform].
package system

import (
	"image"
	"time"

	"cogentcore.org/gpuhost/events"
	"cogentcore.org/gpuhost/gpu"
	"cogentcore.org/gpuhost/overlay"
)

// App is implemented by applications hosted by a [Controller].
// Embed [NoopApp] to only implement some of the hooks.
type App interface {

	// Initialize is called once, when the renderer first becomes
	// available, before any other hook.
	Initialize(ctx *Context)

	// Resize is called after every accepted resize of the window,
	// once the surface and depth attachment have been resized,
	// with the new size clamped to at least 1x1.
	Resize(ctx *Context, width, height int)

	// ReceiveEvent is called with every window event that is neither
	// consumed by the UI overlay nor handled by the controller.
	ReceiveEvent(ctx *Context, e events.Event)

	// Update is called once per frame, before the UI is built.
	Update(ctx *Context)

	// UI is called once per frame, after Update, to build the UI overlay.
	UI(ctx *Context, b overlay.Builder)
}

// NoopApp implements every [App] hook as a no-op.
type NoopApp struct{}

func (NoopApp) Initialize(ctx *Context)                   {}
func (NoopApp) Resize(ctx *Context, width, height int)    {}
func (NoopApp) ReceiveEvent(ctx *Context, e events.Event) {}
func (NoopApp) Update(ctx *Context)                       {}
func (NoopApp) UI(ctx *Context, b overlay.Builder)        {}

// Renderer draws frames to a window. *render.Renderer is the
// standard implementation.
type Renderer interface {

	// Resize resizes the surface and depth attachment, clamped to at least 1x1.
	Resize(width, height int) error

	// RenderFrame draws one frame advanced by dt, with the given UI output on top.
	// A non-nil error means rendering cannot continue.
	RenderFrame(screen overlay.ScreenDescriptor, out *overlay.FullOutput, dt time.Duration) error

	// Size returns the current surface size.
	Size() image.Point

	// Release releases the renderer resources.
	Release()
}

// RendererFactory creates the [Renderer] for a window with the given
// framebuffer size and device profile. It may block; it runs in the
// background on platforms where blocking is not allowed.
type RendererFactory func(win Window, size image.Point, prof gpu.Profile) (Renderer, error)

// OverlayFactory creates the UI overlay bridge for a window.
type OverlayFactory func(win Window) overlay.Bridge

// Context is passed to every [App] hook.
type Context struct {
	renderer Renderer
	window   Window
	overlay  overlay.Bridge
	dt       time.Duration
}

// Renderer returns the renderer, for changing the scene.
func (ctx *Context) Renderer() Renderer {
	return ctx.renderer
}

// Window returns a read-only view of the window.
func (ctx *Context) Window() WindowView {
	return ctx.window
}

// Overlay returns the UI overlay bridge, for registering images.
func (ctx *Context) Overlay() overlay.Bridge {
	return ctx.overlay
}

// DeltaTime returns the time elapsed since the previous frame,
// as of the current frame.
func (ctx *Context) DeltaTime() time.Duration {
	return ctx.dt
}

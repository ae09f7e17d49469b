// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js

// Package desktop implements the [system.Platform] for
// desktop operating systems, using glfw.
package desktop

import (
	"errors"
	"image"
	"runtime"

	"cogentcore.org/gpuhost/events"
	"cogentcore.org/gpuhost/gpu"
	"cogentcore.org/gpuhost/system"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// glfw calls must be made on the main thread
	runtime.LockOSThread()
}

// Platform is the desktop [system.Platform]. It has one window and
// delivers its events, queued by the glfw callbacks, in order.
type Platform struct {
	win    *Window
	inited bool
}

// New returns a new desktop platform.
func New() *Platform {
	return &Platform{}
}

func (p *Platform) Name() string                 { return "desktop" }
func (p *Platform) SupportsBlockingDevice() bool { return true }
func (p *Platform) Profile() gpu.Profile         { return gpu.DesktopProfile() }

func (p *Platform) NewWindow(opts *system.WindowOptions) (system.Window, error) {
	if p.win != nil {
		return nil, errors.New("desktop: window already exists")
	}
	if !p.inited {
		if err := gpu.Init(); err != nil {
			return nil, err
		}
		p.inited = true
	}
	sz := gpu.ClampSize(opts.Size.X, opts.Size.Y)
	glw, err := glfw.CreateWindow(sz.X, sz.Y, opts.Title, nil, nil)
	if err != nil {
		return nil, err
	}
	w := &Window{glw: glw}
	w.queue.Init()
	glw.SetKeyCallback(w.keyEvent)
	glw.SetCharModsCallback(w.charEvent)
	glw.SetMouseButtonCallback(w.mouseButtonEvent)
	glw.SetScrollCallback(w.scrollEvent)
	glw.SetCursorPosCallback(w.cursorPosEvent)
	glw.SetFramebufferSizeCallback(w.framebufferSizeEvent)
	glw.SetContentScaleCallback(w.contentScaleEvent)
	glw.SetFocusCallback(w.focusEvent)
	glw.SetCloseCallback(w.closeEvent)
	glw.SetRefreshCallback(w.refreshEvent)
	p.win = w
	return w, nil
}

// Run runs the event loop: it polls glfw, delivers the queued events,
// and then a paint event if a redraw was requested, until the handler
// is exiting.
func (p *Platform) Run(h system.Handler) error {
	defer func() {
		if p.inited {
			gpu.Terminate()
			p.inited = false
		}
	}()
	h.Resumed()
	for !h.Exiting() {
		if p.win == nil {
			return errors.New("desktop: no window was created")
		}
		if p.win.redraw {
			glfw.PollEvents()
		} else {
			glfw.WaitEvents()
		}
		h.Poll()
		for ev := p.win.queue.Next(); ev != nil; ev = p.win.queue.Next() {
			h.HandleEvent(ev)
			if h.Exiting() {
				return nil
			}
		}
		if p.win.redraw {
			p.win.redraw = false
			h.HandleEvent(events.NewWindow(events.WindowPaint))
		}
	}
	return nil
}

// Window is a glfw window.
type Window struct {
	glw    *glfw.Window
	queue  events.Queue
	redraw bool
}

// Size returns the framebuffer size.
func (w *Window) Size() image.Point {
	if w.glw == nil {
		return image.Point{}
	}
	return image.Pt(w.glw.GetFramebufferSize())
}

// DevicePixelRatio returns the content scale of the window.
func (w *Window) DevicePixelRatio() float32 {
	if w.glw == nil {
		return 1
	}
	x, _ := w.glw.GetContentScale()
	if x <= 0 {
		return 1
	}
	return x
}

func (w *Window) RequestRedraw() {
	w.redraw = true
}

func (w *Window) Close() {
	if w.glw != nil {
		w.glw.Destroy()
		w.glw = nil
	}
}

// SurfaceDescriptor implements [gpu.SurfaceSource].
func (w *Window) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return gpu.GLFWSurfaceDescriptor(w.glw)
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

// Package web implements the [system.Platform] in the browser through WASM.
package web

import (
	"errors"
	"fmt"
	"image"
	"syscall/js"

	"cogentcore.org/gpuhost/events"
	"cogentcore.org/gpuhost/events/key"
	"cogentcore.org/gpuhost/gpu"
	"cogentcore.org/gpuhost/system"
	"github.com/cogentcore/webgpu/wgpu"
)

// Platform is the web [system.Platform]. Device creation cannot block
// in the browser, so it runs in the background and is polled every
// animation frame.
type Platform struct {
	win *Window
}

// New returns a new web platform.
func New() *Platform {
	return &Platform{}
}

func (p *Platform) Name() string                 { return "web" }
func (p *Platform) SupportsBlockingDevice() bool { return false }
func (p *Platform) Profile() gpu.Profile         { return gpu.BrowserProfile() }

func (p *Platform) NewWindow(opts *system.WindowOptions) (system.Window, error) {
	if p.win != nil {
		return nil, errors.New("web: window already exists")
	}
	doc := js.Global().Get("document")
	canvas := doc.Call("getElementById", opts.CanvasID)
	if !canvas.Truthy() {
		return nil, fmt.Errorf("web: no element with id %q", opts.CanvasID)
	}
	if opts.Title != "" {
		doc.Set("title", opts.Title)
	}
	w := &Window{canvasID: opts.CanvasID, canvas: canvas, size: opts.Size}
	w.queue.Init()
	w.resize()
	w.addEventListeners()
	p.win = w
	return w, nil
}

// Run starts the animation frame loop and blocks until the handler is exiting.
func (p *Platform) Run(h system.Handler) error {
	done := make(chan struct{})
	h.Resumed()
	if h.Exiting() {
		return nil
	}
	if p.win == nil {
		return errors.New("web: no window was created")
	}
	w := p.win
	var frame js.Func
	frame = js.FuncOf(func(this js.Value, args []js.Value) any {
		h.Poll()
		for ev := w.queue.Next(); ev != nil && !h.Exiting(); ev = w.queue.Next() {
			h.HandleEvent(ev)
		}
		if !h.Exiting() && w.redraw {
			w.redraw = false
			h.HandleEvent(events.NewWindow(events.WindowPaint))
		}
		if h.Exiting() {
			frame.Release()
			close(done)
			return nil
		}
		js.Global().Call("requestAnimationFrame", frame)
		return nil
	})
	js.Global().Call("requestAnimationFrame", frame)
	<-done
	return nil
}

// Window is a canvas element in the page.
type Window struct {
	canvasID string
	canvas   js.Value
	size     image.Point
	pixels   image.Point
	ratio    float32
	queue    events.Queue
	redraw   bool
	keyMods  key.Modifiers
	funcs    []js.Func
}

// Size returns the canvas size in physical pixels.
func (w *Window) Size() image.Point {
	return w.pixels
}

func (w *Window) DevicePixelRatio() float32 {
	return w.ratio
}

func (w *Window) RequestRedraw() {
	w.redraw = true
}

// Close removes the event listeners.
func (w *Window) Close() {
	for _, f := range w.funcs {
		f.Release()
	}
	w.funcs = nil
}

// SurfaceDescriptor implements [gpu.SurfaceSource]: the surface is
// the webgpu context of the window canvas.
func (w *Window) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return &wgpu.SurfaceDescriptor{Canvas: w.canvas, Label: w.canvasID}
}

// resize sizes the canvas to its logical size times the device
// pixel ratio.
func (w *Window) resize() {
	w.ratio = float32(js.Global().Get("devicePixelRatio").Float())
	if w.ratio <= 0 {
		w.ratio = 1
	}
	cw := w.canvas.Get("clientWidth").Int()
	ch := w.canvas.Get("clientHeight").Int()
	if cw == 0 || ch == 0 {
		cw, ch = w.size.X, w.size.Y
	}
	w.pixels = gpu.ClampSize(int(float32(cw)*w.ratio), int(float32(ch)*w.ratio))
	w.canvas.Set("width", w.pixels.X)
	w.canvas.Set("height", w.pixels.Y)
	style := w.canvas.Get("style")
	style.Set("width", fmt.Sprintf("%gpx", float32(w.pixels.X)/w.ratio))
	style.Set("height", fmt.Sprintf("%gpx", float32(w.pixels.Y)/w.ratio))
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"fmt"
	"log/slog"
	"time"

	"cogentcore.org/gpuhost/base/future"
	"cogentcore.org/gpuhost/events"
	"cogentcore.org/gpuhost/events/key"
	"cogentcore.org/gpuhost/gpu"
	"cogentcore.org/gpuhost/overlay"
)

// Controller is the [Handler] that hosts an [App]: it creates the
// window and renderer, offers every event to the UI overlay first,
// handles exit and resize, and runs a frame on every redraw.
type Controller struct {

	// App is the hosted application.
	App App

	// Platform is the platform the controller runs on.
	Platform Platform

	// WindowOptions are the options the window is created with.
	WindowOptions WindowOptions

	// NewRenderer creates the renderer once the window exists.
	NewRenderer RendererFactory

	// NewOverlay creates the UI overlay once the window exists.
	// If nil, a [overlay.Passive] bridge is used.
	NewOverlay OverlayFactory

	// CancelKey is the key that exits when pressed,
	// or [key.CodeUnknown] for none.
	CancelKey key.Codes

	// Now returns the current time; it defaults to [time.Now].
	Now func() time.Time

	state   state
	overlay overlay.Bridge
	err     error
}

// NewController returns a new controller hosting app on the given platform.
func NewController(app App, pl Platform, opts WindowOptions, newRenderer RendererFactory) *Controller {
	if app == nil {
		app = NoopApp{}
	}
	return &Controller{
		App:           app,
		Platform:      pl,
		WindowOptions: opts,
		NewRenderer:   newRenderer,
		CancelKey:     key.CodeEscape,
		state:         uninitialized{},
	}
}

// State returns the current state.
func (c *Controller) State() States {
	if c.state == nil {
		return Uninitialized
	}
	return c.state.kind()
}

// Exiting returns whether the controller has exited; the platform
// loop stops once it returns true.
func (c *Controller) Exiting() bool {
	return c.State() == Exiting
}

// Err returns the error that made the controller exit, if any.
func (c *Controller) Err() error {
	return c.err
}

// Context returns the application context, or nil if not [Ready].
func (c *Controller) Context() *Context {
	if r, ok := c.state.(*ready); ok {
		return r.ctx
	}
	return nil
}

func (c *Controller) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// Resumed creates the window on the first activation and starts
// creating its renderer: in place if the platform supports blocking
// device creation, and otherwise in the background. Later activations
// do nothing.
func (c *Controller) Resumed() {
	if c.State() != Uninitialized {
		return
	}
	win, err := c.Platform.NewWindow(&c.WindowOptions)
	if err != nil {
		c.fail(fmt.Errorf("system: could not create window: %w", err))
		return
	}
	if c.NewOverlay != nil {
		c.overlay = c.NewOverlay(win)
	}
	if c.overlay == nil {
		c.overlay = overlay.NewPassive()
	}
	size := gpu.ClampSize(win.Size().X, win.Size().Y)
	prof := c.Platform.Profile()
	slog.Debug("system: window created", "platform", c.Platform.Name(), "size", size)

	if c.Platform.SupportsBlockingDevice() {
		c.state = windowRequested{win: win}
		r, err := c.NewRenderer(win, size, prof)
		c.adopt(win, r, err)
		return
	}
	pending := future.Go(func() (Renderer, error) {
		return c.NewRenderer(win, size, prof)
	})
	c.state = awaitingDevice{win: win, pending: pending}
	win.RequestRedraw()
}

// Poll adopts the renderer created in the background, if it is done.
func (c *Controller) Poll() {
	ad, ok := c.state.(awaitingDevice)
	if !ok {
		return
	}
	r, err, done := ad.pending.TryTake()
	if !done {
		return
	}
	c.adopt(ad.win, r, err)
}

// adopt moves to [Ready] with the given renderer and initializes
// the app, or exits if the renderer could not be created.
// The window may have been resized while the renderer was being
// created, so the renderer is first resized to the current window size.
func (c *Controller) adopt(win Window, r Renderer, err error) {
	if err == nil && r == nil {
		err = gpu.ErrNoDevice
	}
	if err != nil {
		c.state = windowRequested{win: win}
		c.fail(fmt.Errorf("system: could not create renderer: %w", err))
		return
	}
	size := gpu.ClampSize(win.Size().X, win.Size().Y)
	if size != r.Size() {
		if err := r.Resize(size.X, size.Y); err != nil {
			r.Release()
			c.state = windowRequested{win: win}
			c.fail(fmt.Errorf("system: could not resize to %v: %w", size, err))
			return
		}
	}
	ctx := &Context{renderer: r, window: win, overlay: c.overlay}
	c.state = &ready{win: win, ctx: ctx, size: r.Size(), lastFrame: c.now()}
	slog.Debug("system: renderer ready", "size", r.Size())
	c.App.Initialize(ctx)
	win.RequestRedraw()
}

// HandleEvent handles one window event. Any renderer created in the
// background is adopted first. The event is then offered to the UI
// overlay and goes no further if consumed. Otherwise, until [Ready],
// it is dropped; once Ready, it exits, resizes, draws a frame, or is
// passed to [App.ReceiveEvent], and then another redraw is requested.
func (c *Controller) HandleEvent(e events.Event) {
	c.Poll()
	if c.Exiting() {
		return
	}
	if c.overlay != nil && c.overlay.OnEvent(e) {
		return
	}
	r, ok := c.state.(*ready)
	if !ok {
		return
	}
	switch e.Type() {
	case events.WindowClose:
		c.Exit()
		return
	case events.KeyDown:
		if ke, ok := e.(*events.Key); ok && c.CancelKey != key.CodeUnknown && ke.Code == c.CancelKey {
			c.Exit()
			return
		}
		c.App.ReceiveEvent(r.ctx, e)
	case events.WindowResize:
		c.resize(r, e)
	case events.WindowPaint:
		c.frame(r)
	default:
		c.App.ReceiveEvent(r.ctx, e)
	}
	if !c.Exiting() {
		r.win.RequestRedraw()
	}
}

func (c *Controller) resize(r *ready, e events.Event) {
	size := r.win.Size()
	if re, ok := e.(*events.Resize); ok {
		size = re.Size
	}
	size = gpu.ClampSize(size.X, size.Y)
	if err := r.ctx.renderer.Resize(size.X, size.Y); err != nil {
		c.fail(fmt.Errorf("system: could not resize to %v: %w", size, err))
		return
	}
	r.size = size
	c.App.Resize(r.ctx, size.X, size.Y)
}

// frame runs one full frame.
func (c *Controller) frame(r *ready) {
	now := c.now()
	dt := now.Sub(r.lastFrame)
	r.lastFrame = now
	r.ctx.dt = dt

	c.App.Update(r.ctx)
	screen := overlay.ScreenDescriptor{
		SizeInPixels:   r.size,
		PixelsPerPoint: r.win.DevicePixelRatio(),
	}
	out := c.overlay.Run(screen, dt, func(b overlay.Builder) {
		c.App.UI(r.ctx, b)
	})
	if out != nil && out.PixelsPerPoint > 0 {
		screen.PixelsPerPoint = out.PixelsPerPoint
	}
	if err := r.ctx.renderer.RenderFrame(screen, out, dt); err != nil {
		c.fail(fmt.Errorf("system: frame failed: %w", err))
	}
}

// Exit releases everything and moves to [Exiting], which stops the
// platform loop after the current iteration. Calling it again does nothing.
func (c *Controller) Exit() {
	if c.Exiting() {
		return
	}
	var win Window
	switch s := c.state.(type) {
	case *ready:
		s.ctx.renderer.Release()
		win = s.win
	case awaitingDevice:
		win = s.win
	case windowRequested:
		win = s.win
	}
	if c.overlay != nil {
		c.overlay.Release()
		c.overlay = nil
	}
	if win != nil {
		win.Close()
	}
	c.state = exiting{}
	slog.Debug("system: exiting")
}

func (c *Controller) fail(err error) {
	slog.Error(err.Error())
	if c.err == nil {
		c.err = err
	}
	c.Exit()
}

// Run runs the controller on its platform until it exits, and
// returns the error that made it exit, if any.
func (c *Controller) Run() error {
	if err := c.Platform.Run(c); err != nil {
		return err
	}
	return c.err
}

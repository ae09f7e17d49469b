// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"image"

	"cogentcore.org/gpuhost/events"
	"cogentcore.org/gpuhost/gpu"
)

// WindowView is the read-only view of a window given to applications.
type WindowView interface {

	// Size returns the size of the framebuffer in physical pixels.
	Size() image.Point

	// DevicePixelRatio returns the number of physical pixels per logical pixel.
	DevicePixelRatio() float32
}

// Window is a platform window with a surface to render to.
// Windows also implement [gpu.SurfaceSource].
type Window interface {
	WindowView

	// RequestRedraw requests a [events.WindowPaint] event.
	RequestRedraw()

	// Close closes the window.
	Close()
}

// WindowOptions are the options for [Platform.NewWindow].
type WindowOptions struct {

	// Title is the window title.
	Title string

	// Size is the initial size in logical pixels.
	Size image.Point

	// CanvasID is the id of the canvas element to bind to on the web.
	CanvasID string
}

// Handler handles the events of a [Platform] loop.
// [Controller] is the standard implementation.
type Handler interface {

	// Resumed is called when the platform is activated,
	// at least once at the start of the loop.
	Resumed()

	// HandleEvent handles one window event.
	HandleEvent(e events.Event)

	// Poll is called on every loop iteration with no event,
	// to make progress on background work.
	Poll()

	// Exiting returns whether the loop should stop.
	Exiting() bool
}

// Platform is a windowing system that can run a [Handler] loop.
// Exactly one is in effect, chosen by the driver package.
type Platform interface {

	// Name returns the name of the platform.
	Name() string

	// NewWindow creates the window. Only one is ever created.
	NewWindow(opts *WindowOptions) (Window, error)

	// SupportsBlockingDevice returns whether device creation may block
	// the loop. If not, it is done in the background.
	SupportsBlockingDevice() bool

	// Profile returns the device profile of the platform.
	Profile() gpu.Profile

	// Run runs the loop until the handler is exiting or the platform
	// shuts down. It returns an error if the loop could not be started.
	Run(h Handler) error
}

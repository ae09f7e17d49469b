// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Types determines the type of window event. Platform drivers
// translate their native events into these types, and the
// application controller dispatches on them.
type Types int32

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// MouseDown happens when a mouse button is pressed down.
	MouseDown

	// MouseUp happens when a mouse button is released.
	MouseUp

	// MouseMove is sent when the mouse moves.
	MouseMove

	// Scroll is a scroll wheel or trackpad scroll.
	Scroll

	// KeyDown is a physical key press, including repeats.
	KeyDown

	// KeyUp is a physical key release.
	KeyUp

	// KeyChord is text input: the rune produced by the current
	// keyboard layout, after any key down that produced text.
	KeyChord

	// WindowResize is sent when the framebuffer size changes.
	// The size is in physical pixels and can be zero, for example
	// when the window is minimized.
	WindowResize

	// WindowClose is sent when the user asks to close the window.
	WindowClose

	// WindowPaint is a request to redraw the window contents.
	WindowPaint

	// WindowScale is sent when the device pixel ratio changes.
	WindowScale

	// WindowFocus is sent when the window gains input focus.
	WindowFocus

	// WindowFocusLost is sent when the window loses input focus.
	WindowFocusLost

	typesN
)

var typeNames = [...]string{
	UnknownType:     "UnknownType",
	MouseDown:       "MouseDown",
	MouseUp:         "MouseUp",
	MouseMove:       "MouseMove",
	Scroll:          "Scroll",
	KeyDown:         "KeyDown",
	KeyUp:           "KeyUp",
	KeyChord:        "KeyChord",
	WindowResize:    "WindowResize",
	WindowClose:     "WindowClose",
	WindowPaint:     "WindowPaint",
	WindowScale:     "WindowScale",
	WindowFocus:     "WindowFocus",
	WindowFocusLost: "WindowFocusLost",
}

func (tp Types) String() string {
	if tp < 0 || tp >= typesN {
		return "UnknownType"
	}
	return typeNames[tp]
}

// IsMouse returns whether the type is a pointer event.
func (tp Types) IsMouse() bool {
	return tp >= MouseDown && tp <= Scroll
}

// IsKey returns whether the type is a keyboard event.
func (tp Types) IsKey() bool {
	return tp >= KeyDown && tp <= KeyChord
}

// IsWindow returns whether the type is a window lifecycle event.
func (tp Types) IsWindow() bool {
	return tp >= WindowResize && tp < typesN
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js

package desktop

import (
	"image"

	"cogentcore.org/gpuhost/events"
	"cogentcore.org/gpuhost/events/key"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// GlfwMods returns the modifiers for the given glfw modifier keys.
func GlfwMods(mod glfw.ModifierKey) key.Modifiers {
	var m key.Modifiers
	if mod&glfw.ModShift != 0 {
		m.SetFlag(true, key.Shift)
	}
	if mod&glfw.ModControl != 0 {
		m.SetFlag(true, key.Control)
	}
	if mod&glfw.ModAlt != 0 {
		m.SetFlag(true, key.Alt)
	}
	if mod&glfw.ModSuper != 0 {
		m.SetFlag(true, key.Meta)
	}
	return m
}

// physical key
func (w *Window) keyEvent(gw *glfw.Window, ky glfw.Key, scancode int, action glfw.Action, mod glfw.ModifierKey) {
	typ := events.KeyDown
	if action == glfw.Release {
		typ = events.KeyUp
	}
	w.queue.Send(events.NewKey(typ, 0, GlfwKeyCode(ky), GlfwMods(mod)))
}

// char input
func (w *Window) charEvent(gw *glfw.Window, char rune, mod glfw.ModifierKey) {
	w.queue.Send(events.NewKey(events.KeyChord, char, key.CodeUnknown, GlfwMods(mod)))
}

// cursorPoint converts a cursor position in screen coordinates
// to framebuffer pixels.
func (w *Window) cursorPoint(x, y float64) image.Point {
	ws, hs := w.glw.GetSize()
	fb := w.Size()
	sx, sy := 1.0, 1.0
	if ws > 0 && hs > 0 {
		sx = float64(fb.X) / float64(ws)
		sy = float64(fb.Y) / float64(hs)
	}
	return image.Pt(int(x*sx), int(y*sy))
}

func (w *Window) mouseButtonEvent(gw *glfw.Window, button glfw.MouseButton, action glfw.Action, mod glfw.ModifierKey) {
	but := events.Left
	switch button {
	case glfw.MouseButtonMiddle:
		but = events.Middle
	case glfw.MouseButtonRight:
		but = events.Right
	}
	typ := events.MouseDown
	if action == glfw.Release {
		typ = events.MouseUp
	}
	where := w.cursorPoint(gw.GetCursorPos())
	w.queue.Send(events.NewMouse(typ, but, where, GlfwMods(mod)))
}

func (w *Window) scrollEvent(gw *glfw.Window, xoff, yoff float64) {
	where := w.cursorPoint(gw.GetCursorPos())
	w.queue.Send(events.NewScroll(where, float32(xoff), float32(yoff), 0))
}

func (w *Window) cursorPosEvent(gw *glfw.Window, x, y float64) {
	w.queue.Send(events.NewMouse(events.MouseMove, events.NoButton, w.cursorPoint(x, y), 0))
}

func (w *Window) framebufferSizeEvent(gw *glfw.Window, width, height int) {
	w.queue.Send(events.NewResize(image.Pt(width, height)))
}

func (w *Window) contentScaleEvent(gw *glfw.Window, x, y float32) {
	w.queue.Send(events.NewScale(x))
}

func (w *Window) focusEvent(gw *glfw.Window, focused bool) {
	if focused {
		w.queue.Send(events.NewWindow(events.WindowFocus))
	} else {
		w.queue.Send(events.NewWindow(events.WindowFocusLost))
	}
}

func (w *Window) closeEvent(gw *glfw.Window) {
	// the controller decides whether to close
	gw.SetShouldClose(false)
	w.queue.Send(events.NewWindow(events.WindowClose))
}

func (w *Window) refreshEvent(gw *glfw.Window) {
	w.RequestRedraw()
}

var glfwKeyCodes = map[glfw.Key]key.Codes{
	glfw.KeyA: key.CodeA, glfw.KeyB: key.CodeB, glfw.KeyC: key.CodeC,
	glfw.KeyD: key.CodeD, glfw.KeyE: key.CodeE, glfw.KeyF: key.CodeF,
	glfw.KeyG: key.CodeG, glfw.KeyH: key.CodeH, glfw.KeyI: key.CodeI,
	glfw.KeyJ: key.CodeJ, glfw.KeyK: key.CodeK, glfw.KeyL: key.CodeL,
	glfw.KeyM: key.CodeM, glfw.KeyN: key.CodeN, glfw.KeyO: key.CodeO,
	glfw.KeyP: key.CodeP, glfw.KeyQ: key.CodeQ, glfw.KeyR: key.CodeR,
	glfw.KeyS: key.CodeS, glfw.KeyT: key.CodeT, glfw.KeyU: key.CodeU,
	glfw.KeyV: key.CodeV, glfw.KeyW: key.CodeW, glfw.KeyX: key.CodeX,
	glfw.KeyY: key.CodeY, glfw.KeyZ: key.CodeZ,
	glfw.Key0: key.Code0, glfw.Key1: key.Code1, glfw.Key2: key.Code2,
	glfw.Key3: key.Code3, glfw.Key4: key.Code4, glfw.Key5: key.Code5,
	glfw.Key6: key.Code6, glfw.Key7: key.Code7, glfw.Key8: key.Code8,
	glfw.Key9: key.Code9,
	glfw.KeyEscape:    key.CodeEscape,
	glfw.KeyEnter:     key.CodeReturnEnter,
	glfw.KeyKPEnter:   key.CodeReturnEnter,
	glfw.KeyTab:       key.CodeTab,
	glfw.KeySpace:     key.CodeSpacebar,
	glfw.KeyBackspace: key.CodeBackspace,
	glfw.KeyDelete:    key.CodeDelete,
	glfw.KeyInsert:    key.CodeInsert,
	glfw.KeyHome:      key.CodeHome,
	glfw.KeyEnd:       key.CodeEnd,
	glfw.KeyPageUp:    key.CodePageUp,
	glfw.KeyPageDown:  key.CodePageDown,
	glfw.KeyLeft:      key.CodeLeftArrow,
	glfw.KeyRight:     key.CodeRightArrow,
	glfw.KeyUp:        key.CodeUpArrow,
	glfw.KeyDown:      key.CodeDownArrow,
	glfw.KeyF1:        key.CodeF1, glfw.KeyF2: key.CodeF2, glfw.KeyF3: key.CodeF3,
	glfw.KeyF4: key.CodeF4, glfw.KeyF5: key.CodeF5, glfw.KeyF6: key.CodeF6,
	glfw.KeyF7: key.CodeF7, glfw.KeyF8: key.CodeF8, glfw.KeyF9: key.CodeF9,
	glfw.KeyF10: key.CodeF10, glfw.KeyF11: key.CodeF11, glfw.KeyF12: key.CodeF12,
	glfw.KeyLeftShift:    key.CodeLeftShift,
	glfw.KeyRightShift:   key.CodeRightShift,
	glfw.KeyLeftControl:  key.CodeLeftControl,
	glfw.KeyRightControl: key.CodeRightControl,
	glfw.KeyLeftAlt:      key.CodeLeftAlt,
	glfw.KeyRightAlt:     key.CodeRightAlt,
	glfw.KeyLeftSuper:    key.CodeLeftMeta,
	glfw.KeyRightSuper:   key.CodeRightMeta,
}

// GlfwKeyCode returns the key code for the given glfw key.
func GlfwKeyCode(kcode glfw.Key) key.Codes {
	return glfwKeyCodes[kcode]
}

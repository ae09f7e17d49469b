// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

package web

import (
	"image"
	"syscall/js"

	"cogentcore.org/gpuhost/events"
	"cogentcore.org/gpuhost/events/key"
)

func (w *Window) listen(target js.Value, typ string, fn func(e js.Value)) {
	f := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) > 0 {
			fn(args[0])
		}
		return nil
	})
	target.Call("addEventListener", typ, f)
	w.funcs = append(w.funcs, f)
}

func (w *Window) addEventListeners() {
	g := js.Global()
	c := w.canvas
	c.Call("setAttribute", "tabindex", "0")
	w.listen(c, "mousedown", w.onMouseButton(events.MouseDown))
	w.listen(c, "mouseup", w.onMouseButton(events.MouseUp))
	w.listen(c, "mousemove", w.onMouseMove)
	w.listen(c, "wheel", w.onWheel)
	w.listen(c, "contextmenu", func(e js.Value) {
		// no-op, but needed to prevent browser context menus on right clicks
		e.Call("preventDefault")
	})
	w.listen(c, "focus", func(e js.Value) { w.queue.Send(events.NewWindow(events.WindowFocus)) })
	w.listen(c, "blur", func(e js.Value) { w.queue.Send(events.NewWindow(events.WindowFocusLost)) })
	w.listen(g, "keydown", w.onKey(events.KeyDown))
	w.listen(g, "keyup", w.onKey(events.KeyUp))
	w.listen(g, "resize", func(e js.Value) {
		w.resize()
		w.queue.Send(events.NewResize(w.pixels))
	})
	w.listen(g, "beforeunload", func(e js.Value) {
		w.queue.Send(events.NewWindow(events.WindowClose))
	})
}

// eventPos returns the position of the given event in canvas pixels.
func (w *Window) eventPos(e js.Value) image.Point {
	rect := w.canvas.Call("getBoundingClientRect")
	x := e.Get("clientX").Float() - rect.Get("left").Float()
	y := e.Get("clientY").Float() - rect.Get("top").Float()
	return image.Pt(int(x*float64(w.ratio)), int(y*float64(w.ratio)))
}

func jsButton(b int) events.Buttons {
	switch b {
	case 1:
		return events.Middle
	case 2:
		return events.Right
	}
	return events.Left
}

func (w *Window) onMouseButton(typ events.Types) func(e js.Value) {
	return func(e js.Value) {
		but := jsButton(e.Get("button").Int())
		w.queue.Send(events.NewMouse(typ, but, w.eventPos(e), w.keyMods))
		e.Call("preventDefault")
	}
}

func (w *Window) onMouseMove(e js.Value) {
	w.queue.Send(events.NewMouse(events.MouseMove, events.NoButton, w.eventPos(e), w.keyMods))
	e.Call("preventDefault")
}

func (w *Window) onWheel(e js.Value) {
	// wheel deltas are in pixels and point down; scroll deltas are in lines and point up
	dx := -float32(e.Get("deltaX").Float()) / 50
	dy := -float32(e.Get("deltaY").Float()) / 50
	w.queue.Send(events.NewScroll(w.eventPos(e), dx, dy, w.keyMods))
	e.Call("preventDefault")
}

func (w *Window) onKey(typ events.Types) func(e js.Value) {
	return func(e js.Value) {
		k := e.Get("key").String()
		if k == "Unidentified" {
			return
		}
		down := typ == events.KeyDown
		r, code := w.runeAndCodeFromKey(k, down)
		if code != key.CodeUnknown || typ == events.KeyUp {
			w.queue.Send(events.NewKey(typ, r, code, w.keyMods))
		}
		if down && r != 0 && !w.keyMods.HasFlag(key.Control) && !w.keyMods.HasFlag(key.Meta) {
			w.queue.Send(events.NewKey(events.KeyChord, r, code, w.keyMods))
		}
		if code != key.CodeUnknown && r == 0 {
			e.Call("preventDefault")
		}
	}
}

// runeAndCodeFromKey returns the rune and key code corresponding to the given key string.
// down is whether this is from a keydown event (as opposed to a keyup one)
func (w *Window) runeAndCodeFromKey(k string, down bool) (rune, key.Codes) {
	switch k {
	case "Shift":
		w.keyMods.SetFlag(down, key.Shift)
		return 0, key.CodeLeftShift
	case "Control":
		w.keyMods.SetFlag(down, key.Control)
		return 0, key.CodeLeftControl
	case "Alt":
		w.keyMods.SetFlag(down, key.Alt)
		return 0, key.CodeLeftAlt
	case "Meta":
		w.keyMods.SetFlag(down, key.Meta)
		return 0, key.CodeLeftMeta
	case " ", "Spacebar":
		return ' ', key.CodeSpacebar
	case "Esc":
		return 0, key.CodeEscape
	}
	if c := key.CodeFromName(k); c != key.CodeUnknown {
		rs := []rune(k)
		if len(rs) == 1 {
			return rs[0], c
		}
		return 0, c
	}
	if rs := []rune(k); len(rs) == 1 {
		return rs[0], key.CodeUnknown
	}
	switch k {
	case "ArrowDown":
		return 0, key.CodeDownArrow
	case "ArrowLeft":
		return 0, key.CodeLeftArrow
	case "ArrowRight":
		return 0, key.CodeRightArrow
	case "ArrowUp":
		return 0, key.CodeUpArrow
	}
	return 0, key.CodeUnknown
}

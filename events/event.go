// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the platform independent window events
// that drivers deliver to the application controller.
package events

import (
	"fmt"
	"image"
	"time"

	"cogentcore.org/gpuhost/events/key"
)

// Event is the interface implemented by all events.
type Event interface {
	fmt.Stringer

	// Type returns the type of event.
	Type() Types

	// Time returns the time at which the event was generated.
	Time() time.Time

	// KeyMods returns the modifier keys held during the event.
	KeyMods() key.Modifiers
}

// Base is the basic event, which all other events embed.
type Base struct {

	// Typ is the type of event.
	Typ Types

	// GenTime records the time when the event was first generated.
	GenTime time.Time

	// Mods are the modifier keys present at time of event.
	Mods key.Modifiers
}

// NewBase returns a [Base] of the given type, stamped now.
func NewBase(typ Types, mods key.Modifiers) Base {
	return Base{Typ: typ, GenTime: time.Now(), Mods: mods}
}

func (ev *Base) Type() Types            { return ev.Typ }
func (ev *Base) Time() time.Time        { return ev.GenTime }
func (ev *Base) KeyMods() key.Modifiers { return ev.Mods }

func (ev *Base) String() string {
	return fmt.Sprintf("%v{Time: %v}", ev.Typ, ev.GenTime.Format("04:05.000"))
}

// Key is a physical key or text input event.
type Key struct {
	Base

	// Code is the physical key, or [key.CodeUnknown] for pure text input.
	Code key.Codes

	// Rune is the text produced, or 0 for non-text keys.
	Rune rune
}

// NewKey returns a new [Key] event; typ is one of [KeyDown], [KeyUp], or [KeyChord].
func NewKey(typ Types, r rune, code key.Codes, mods key.Modifiers) *Key {
	return &Key{Base: NewBase(typ, mods), Code: code, Rune: r}
}

func (ev *Key) String() string {
	if ev.Rune != 0 {
		return fmt.Sprintf("%v{Code: %v, Rune: %q, Mods: %v}", ev.Typ, ev.Code, ev.Rune, ev.Mods)
	}
	return fmt.Sprintf("%v{Code: %v, Mods: %v}", ev.Typ, ev.Code, ev.Mods)
}

// Buttons is a mouse button.
type Buttons int32

const (
	NoButton Buttons = iota
	Left
	Middle
	Right
)

func (b Buttons) String() string {
	switch b {
	case Left:
		return "Left"
	case Middle:
		return "Middle"
	case Right:
		return "Right"
	}
	return "NoButton"
}

// Mouse is a mouse button or motion event. Positions are in
// physical pixels relative to the top-left of the framebuffer.
type Mouse struct {
	Base

	// Button is the button pressed or released, if any.
	Button Buttons

	// Where is the pointer position.
	Where image.Point
}

// NewMouse returns a new [Mouse] event.
func NewMouse(typ Types, but Buttons, where image.Point, mods key.Modifiers) *Mouse {
	return &Mouse{Base: NewBase(typ, mods), Button: but, Where: where}
}

func (ev *Mouse) String() string {
	return fmt.Sprintf("%v{Button: %v, Pos: %v, Mods: %v}", ev.Typ, ev.Button, ev.Where, ev.Mods)
}

// ScrollEvent is a scroll wheel or trackpad event.
type ScrollEvent struct {
	Base

	// Where is the pointer position.
	Where image.Point

	// Delta is the scroll amount in wheel steps; positive Y scrolls up.
	Delta [2]float32
}

// NewScroll returns a new [ScrollEvent].
func NewScroll(where image.Point, dx, dy float32, mods key.Modifiers) *ScrollEvent {
	return &ScrollEvent{Base: NewBase(Scroll, mods), Where: where, Delta: [2]float32{dx, dy}}
}

func (ev *ScrollEvent) String() string {
	return fmt.Sprintf("%v{Pos: %v, Delta: %v}", ev.Typ, ev.Where, ev.Delta)
}

// Resize is a [WindowResize] event.
type Resize struct {
	Base

	// Size is the new framebuffer size in physical pixels. It is passed
	// through as reported by the platform, and may be zero.
	Size image.Point
}

// NewResize returns a new [Resize] event.
func NewResize(size image.Point) *Resize {
	return &Resize{Base: NewBase(WindowResize, 0), Size: size}
}

func (ev *Resize) String() string {
	return fmt.Sprintf("%v{Size: %v}", ev.Typ, ev.Size)
}

// Scale is a [WindowScale] event.
type Scale struct {
	Base

	// Ratio is the new device pixel ratio.
	Ratio float32
}

// NewScale returns a new [Scale] event.
func NewScale(ratio float32) *Scale {
	return &Scale{Base: NewBase(WindowScale, 0), Ratio: ratio}
}

func (ev *Scale) String() string {
	return fmt.Sprintf("%v{Ratio: %v}", ev.Typ, ev.Ratio)
}

// Window is an event with no payload: [WindowClose], [WindowPaint],
// [WindowFocus], and [WindowFocusLost].
type Window struct {
	Base
}

// NewWindow returns a new [Window] event of the given type.
func NewWindow(typ Types) *Window {
	return &Window{Base: NewBase(typ, 0)}
}

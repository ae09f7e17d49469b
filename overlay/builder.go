// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package overlay

// Builder declares the immediate-mode UI for one frame.
// Widgets are declared inside the body of a [Builder.Window];
// they return whether they were activated this frame.
type Builder interface {
	// Window declares a window with the given title, calling body
	// to declare its contents if it is open.
	Window(title string, body func())

	Heading(text string)
	Text(text string)
	Button(label string) bool
	Checkbox(label string, value *bool) bool
	SliderFloat(label string, value *float32, min, max float32) bool

	// Image shows the texture registered with [Bridge.SetImage]
	// at the given size in points.
	Image(id TextureID, width, height float32)

	Separator()
}

// nopBuilder declares nothing; its widgets are never activated.
type nopBuilder struct{}

func (nopBuilder) Window(title string, body func()) {
	if body != nil {
		body()
	}
}

func (nopBuilder) Heading(text string)                                         {}
func (nopBuilder) Text(text string)                                            {}
func (nopBuilder) Button(label string) bool                                    { return false }
func (nopBuilder) Checkbox(label string, value *bool) bool                     { return false }
func (nopBuilder) SliderFloat(label string, v *float32, min, max float32) bool { return false }
func (nopBuilder) Image(id TextureID, width, height float32)                   {}
func (nopBuilder) Separator()                                                  {}

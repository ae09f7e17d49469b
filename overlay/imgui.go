// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js

package overlay

import (
	"encoding/binary"
	"image"
	"math"
	"time"
	"unsafe"

	"cogentcore.org/gpuhost/events"
	"cogentcore.org/gpuhost/events/key"
	"github.com/inkyblackness/imgui-go/v4"
)

// ImGui is a [Bridge] backed by Dear ImGui.
type ImGui struct {
	context  *imgui.Context
	io       imgui.IO
	images   images
	fontSent bool

	// ppp is the pixels per point of the last frame,
	// used to convert event positions to points.
	ppp float32
}

// NewImGui returns a new [ImGui] bridge with its own UI context.
// Only one may exist at a time.
func NewImGui() *ImGui {
	b := &ImGui{ppp: 1}
	b.context = imgui.CreateContext(nil)
	b.io = imgui.CurrentIO()
	b.io.SetIniFilename("")
	b.mapKeys()
	return b
}

func (b *ImGui) mapKeys() {
	for ik, c := range map[int]key.Codes{
		imgui.KeyTab:        key.CodeTab,
		imgui.KeyLeftArrow:  key.CodeLeftArrow,
		imgui.KeyRightArrow: key.CodeRightArrow,
		imgui.KeyUpArrow:    key.CodeUpArrow,
		imgui.KeyDownArrow:  key.CodeDownArrow,
		imgui.KeyPageUp:     key.CodePageUp,
		imgui.KeyPageDown:   key.CodePageDown,
		imgui.KeyHome:       key.CodeHome,
		imgui.KeyEnd:        key.CodeEnd,
		imgui.KeyInsert:     key.CodeInsert,
		imgui.KeyDelete:     key.CodeDelete,
		imgui.KeyBackspace:  key.CodeBackspace,
		imgui.KeySpace:      key.CodeSpacebar,
		imgui.KeyEnter:      key.CodeReturnEnter,
		imgui.KeyEscape:     key.CodeEscape,
		imgui.KeyA:          key.CodeA,
		imgui.KeyC:          key.CodeC,
		imgui.KeyV:          key.CodeV,
		imgui.KeyX:          key.CodeX,
		imgui.KeyY:          key.CodeY,
		imgui.KeyZ:          key.CodeZ,
	} {
		b.io.KeyMap(ik, int(c))
	}
}

func (b *ImGui) point(p image.Point) imgui.Vec2 {
	return imgui.Vec2{X: float32(p.X) / b.ppp, Y: float32(p.Y) / b.ppp}
}

func (b *ImGui) setMods(m key.Modifiers) {
	down := func(on bool, c key.Codes) {
		if on {
			b.io.KeyPress(int(c))
		} else {
			b.io.KeyRelease(int(c))
		}
	}
	down(m.HasFlag(key.Control), key.CodeLeftControl)
	down(m.HasFlag(key.Shift), key.CodeLeftShift)
	down(m.HasFlag(key.Alt), key.CodeLeftAlt)
	down(m.HasFlag(key.Meta), key.CodeLeftMeta)
	b.io.KeyCtrl(int(key.CodeLeftControl), int(key.CodeRightControl))
	b.io.KeyShift(int(key.CodeLeftShift), int(key.CodeRightShift))
	b.io.KeyAlt(int(key.CodeLeftAlt), int(key.CodeRightAlt))
	b.io.KeySuper(int(key.CodeLeftMeta), int(key.CodeRightMeta))
}

func mouseButton(but events.Buttons) int {
	switch but {
	case events.Right:
		return 1
	case events.Middle:
		return 2
	}
	return 0
}

func (b *ImGui) OnEvent(e events.Event) bool {
	switch ev := e.(type) {
	case *events.Mouse:
		b.io.SetMousePosition(b.point(ev.Where))
		switch ev.Type() {
		case events.MouseDown:
			b.io.SetMouseButtonDown(mouseButton(ev.Button), true)
		case events.MouseUp:
			b.io.SetMouseButtonDown(mouseButton(ev.Button), false)
		}
		return b.io.WantCaptureMouse()
	case *events.ScrollEvent:
		b.io.SetMousePosition(b.point(ev.Where))
		b.io.AddMouseWheelDelta(ev.Delta[0], ev.Delta[1])
		return b.io.WantCaptureMouse()
	case *events.Key:
		b.setMods(ev.Mods)
		switch ev.Type() {
		case events.KeyDown:
			if ev.Code != key.CodeUnknown {
				b.io.KeyPress(int(ev.Code))
			}
		case events.KeyUp:
			if ev.Code != key.CodeUnknown {
				b.io.KeyRelease(int(ev.Code))
			}
		case events.KeyChord:
			if ev.Rune != 0 {
				b.io.AddInputCharacters(string(ev.Rune))
			}
		}
		return b.io.WantCaptureKeyboard()
	case *events.Window:
		if ev.Type() == events.WindowFocusLost {
			for _, c := range []key.Codes{key.CodeLeftControl, key.CodeLeftShift, key.CodeLeftAlt, key.CodeLeftMeta} {
				b.io.KeyRelease(int(c))
			}
			for i := range 3 {
				b.io.SetMouseButtonDown(i, false)
			}
		}
	}
	return false
}

func (b *ImGui) Run(screen ScreenDescriptor, dt time.Duration, build func(Builder)) *FullOutput {
	b.ppp = screen.PixelsPerPoint
	if b.ppp <= 0 {
		b.ppp = 1
	}
	w, h := screen.SizeInPoints()
	b.io.SetDisplaySize(imgui.Vec2{X: w, Y: h})
	// a zero frame time is rejected by the UI library
	b.io.SetDeltaTime(max(float32(dt.Seconds()), 1e-6))

	out := &FullOutput{PixelsPerPoint: b.ppp}
	if !b.fontSent {
		out.Textures.Set = append(out.Textures.Set, b.fontAtlas())
		b.fontSent = true
	}
	out.Textures.Append(b.images.take())

	imgui.NewFrame()
	if build != nil {
		build(imguiBuilder{})
	}
	imgui.Render()
	out.Primitives = convertDrawData(imgui.RenderedDrawData())
	return out
}

// fontAtlas returns the set of the font atlas texture.
func (b *ImGui) fontAtlas() TextureSet {
	fonts := b.io.Fonts()
	data := fonts.TextureDataRGBA32()
	img := image.NewRGBA(image.Rect(0, 0, data.Width, data.Height))
	copy(img.Pix, unsafe.Slice((*byte)(data.Pixels), data.Width*data.Height*4))
	fonts.SetTextureID(imgui.TextureID(FontTexture))
	return TextureSet{ID: FontTexture, Delta: ImageDelta{Image: img, Filter: Linear}}
}

func (b *ImGui) SetImage(id TextureID, img image.Image) {
	b.images.set(id, img)
}

func (b *ImGui) FreeImage(id TextureID) {
	b.images.free(id)
}

func (b *ImGui) Release() {
	if b.context != nil {
		b.context.Destroy()
		b.context = nil
	}
}

// convertDrawData copies the rendered UI lists into primitives,
// one per draw command, sharing the vertices of each list.
func convertDrawData(dd imgui.DrawData) []ClippedPrimitive {
	if !dd.Valid() {
		return nil
	}
	vsize, posOff, uvOff, colOff := imgui.VertexBufferLayout()
	isize := imgui.IndexBufferLayout()
	var prims []ClippedPrimitive
	for _, list := range dd.CommandLists() {
		vp, vn := list.VertexBuffer()
		ip, in := list.IndexBuffer()
		vb := unsafe.Slice((*byte)(vp), vn)
		ib := unsafe.Slice((*byte)(ip), in)

		verts := make([]Vertex, vn/vsize)
		for i := range verts {
			v := vb[i*vsize:]
			verts[i] = Vertex{
				Pos:   [2]float32{float32At(v, posOff), float32At(v, posOff+4)},
				UV:    [2]float32{float32At(v, uvOff), float32At(v, uvOff+4)},
				Color: [4]uint8{v[colOff], v[colOff+1], v[colOff+2], v[colOff+3]},
			}
		}
		idx := make([]uint32, in/isize)
		for i := range idx {
			if isize == 2 {
				idx[i] = uint32(binary.LittleEndian.Uint16(ib[i*2:]))
			} else {
				idx[i] = binary.LittleEndian.Uint32(ib[i*4:])
			}
		}

		off := 0
		for _, cmd := range list.Commands() {
			n := cmd.ElementCount()
			if cmd.HasUserCallback() {
				off += n
				continue
			}
			cr := cmd.ClipRect()
			prims = append(prims, ClippedPrimitive{
				ClipRect: Rect{MinX: cr.X, MinY: cr.Y, MaxX: cr.Z, MaxY: cr.W},
				Mesh: Mesh{
					Vertices: verts,
					Indices:  idx[off : off+n],
					Texture:  TextureID(cmd.TextureID()),
				},
			})
			off += n
		}
	}
	return prims
}

func float32At(b []byte, off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b[off:]))
}

// imguiBuilder declares widgets with Dear ImGui.
type imguiBuilder struct{}

func (imguiBuilder) Window(title string, body func()) {
	imgui.SetNextWindowPosV(imgui.Vec2{X: 10, Y: 10}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	if imgui.Begin(title) && body != nil {
		body()
	}
	imgui.End()
}

func (imguiBuilder) Heading(text string) {
	imgui.Text(text)
	imgui.Separator()
}

func (imguiBuilder) Text(text string) {
	imgui.Text(text)
}

func (imguiBuilder) Button(label string) bool {
	return imgui.Button(label)
}

func (imguiBuilder) Checkbox(label string, value *bool) bool {
	return imgui.Checkbox(label, value)
}

func (imguiBuilder) SliderFloat(label string, value *float32, min, max float32) bool {
	return imgui.SliderFloat(label, value, min, max)
}

func (imguiBuilder) Image(id TextureID, width, height float32) {
	imgui.Image(imgui.TextureID(id), imgui.Vec2{X: width, Y: height})
}

func (imguiBuilder) Separator() {
	imgui.Separator()
}

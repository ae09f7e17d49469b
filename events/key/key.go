// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package key defines physical key codes and modifier keys
// shared by all platform drivers.
package key

import (
	"strings"
)

// Codes are the physical key codes, independent of keyboard layout.
type Codes int32

const (
	CodeUnknown Codes = iota
	CodeA
	CodeB
	CodeC
	CodeD
	CodeE
	CodeF
	CodeG
	CodeH
	CodeI
	CodeJ
	CodeK
	CodeL
	CodeM
	CodeN
	CodeO
	CodeP
	CodeQ
	CodeR
	CodeS
	CodeT
	CodeU
	CodeV
	CodeW
	CodeX
	CodeY
	CodeZ
	Code0
	Code1
	Code2
	Code3
	Code4
	Code5
	Code6
	Code7
	Code8
	Code9
	CodeEscape
	CodeReturnEnter
	CodeTab
	CodeSpacebar
	CodeBackspace
	CodeDelete
	CodeInsert
	CodeHome
	CodeEnd
	CodePageUp
	CodePageDown
	CodeLeftArrow
	CodeRightArrow
	CodeUpArrow
	CodeDownArrow
	CodeF1
	CodeF2
	CodeF3
	CodeF4
	CodeF5
	CodeF6
	CodeF7
	CodeF8
	CodeF9
	CodeF10
	CodeF11
	CodeF12
	CodeLeftShift
	CodeRightShift
	CodeLeftControl
	CodeRightControl
	CodeLeftAlt
	CodeRightAlt
	CodeLeftMeta
	CodeRightMeta

	codesN
)

var codeNames = [...]string{
	CodeUnknown: "Unknown", CodeA: "A", CodeB: "B", CodeC: "C", CodeD: "D",
	CodeE: "E", CodeF: "F", CodeG: "G", CodeH: "H", CodeI: "I", CodeJ: "J",
	CodeK: "K", CodeL: "L", CodeM: "M", CodeN: "N", CodeO: "O", CodeP: "P",
	CodeQ: "Q", CodeR: "R", CodeS: "S", CodeT: "T", CodeU: "U", CodeV: "V",
	CodeW: "W", CodeX: "X", CodeY: "Y", CodeZ: "Z",
	Code0: "0", Code1: "1", Code2: "2", Code3: "3", Code4: "4",
	Code5: "5", Code6: "6", Code7: "7", Code8: "8", Code9: "9",
	CodeEscape: "Escape", CodeReturnEnter: "Enter", CodeTab: "Tab",
	CodeSpacebar: "Space", CodeBackspace: "Backspace", CodeDelete: "Delete",
	CodeInsert: "Insert", CodeHome: "Home", CodeEnd: "End",
	CodePageUp: "PageUp", CodePageDown: "PageDown",
	CodeLeftArrow: "LeftArrow", CodeRightArrow: "RightArrow",
	CodeUpArrow: "UpArrow", CodeDownArrow: "DownArrow",
	CodeF1: "F1", CodeF2: "F2", CodeF3: "F3", CodeF4: "F4", CodeF5: "F5",
	CodeF6: "F6", CodeF7: "F7", CodeF8: "F8", CodeF9: "F9", CodeF10: "F10",
	CodeF11: "F11", CodeF12: "F12",
	CodeLeftShift: "LeftShift", CodeRightShift: "RightShift",
	CodeLeftControl: "LeftControl", CodeRightControl: "RightControl",
	CodeLeftAlt: "LeftAlt", CodeRightAlt: "RightAlt",
	CodeLeftMeta: "LeftMeta", CodeRightMeta: "RightMeta",
}

func (c Codes) String() string {
	if c < 0 || c >= codesN {
		return "Unknown"
	}
	return codeNames[c]
}

// CodeFromName returns the code with the given name, as returned by
// [Codes.String], ignoring case. "esc" is accepted for Escape.
// It returns [CodeUnknown] for unknown names.
func CodeFromName(name string) Codes {
	name = strings.TrimSpace(name)
	if strings.EqualFold(name, "esc") {
		return CodeEscape
	}
	for c, nm := range codeNames {
		if strings.EqualFold(name, nm) {
			return Codes(c)
		}
	}
	return CodeUnknown
}

// IsModifier returns whether the code is a modifier key.
func (c Codes) IsModifier() bool {
	return c >= CodeLeftShift && c <= CodeRightMeta
}

// Modifiers are the modifier keys held down during an event.
type Modifiers int32

const (
	Shift Modifiers = 1 << iota
	Control
	Alt
	Meta
)

// HasFlag returns whether m contains all of the given modifiers.
func (m Modifiers) HasFlag(f Modifiers) bool {
	return m&f == f
}

// SetFlag sets or clears the given modifiers.
func (m *Modifiers) SetFlag(on bool, f Modifiers) {
	if on {
		*m |= f
	} else {
		*m &^= f
	}
}

func (m Modifiers) String() string {
	var b strings.Builder
	for _, f := range []struct {
		m  Modifiers
		nm string
	}{{Control, "Control"}, {Alt, "Alt"}, {Shift, "Shift"}, {Meta, "Meta"}} {
		if !m.HasFlag(f.m) {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('+')
		}
		b.WriteString(f.nm)
	}
	return b.String()
}

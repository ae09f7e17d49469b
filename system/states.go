// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"fmt"
	"image"
	"time"

	"cogentcore.org/gpuhost/base/future"
)

// States are the states of a [Controller].
type States int32

const (
	// Uninitialized is the state before any window exists.
	Uninitialized States = iota

	// WindowRequested is the state once the window exists
	// and its renderer is being created in place.
	WindowRequested

	// AwaitingDevice is the state while the renderer is being
	// created in the background.
	AwaitingDevice

	// Ready is the state once the renderer exists.
	Ready

	// Exiting is the final state.
	Exiting
)

var statesNames = [...]string{"Uninitialized", "WindowRequested", "AwaitingDevice", "Ready", "Exiting"}

func (s States) String() string {
	if s < 0 || int(s) >= len(statesNames) {
		return fmt.Sprintf("States(%d)", int32(s))
	}
	return statesNames[s]
}

// state is the data of one [States] value; each has exactly
// the resources that exist in that state.
type state interface {
	kind() States
}

type uninitialized struct{}

type windowRequested struct {
	win Window
}

type awaitingDevice struct {
	win     Window
	pending *future.Future[Renderer]
}

type ready struct {
	win       Window
	ctx       *Context
	size      image.Point
	lastFrame time.Time
}

type exiting struct{}

func (uninitialized) kind() States   { return Uninitialized }
func (windowRequested) kind() States { return WindowRequested }
func (awaitingDevice) kind() States  { return AwaitingDevice }
func (*ready) kind() States          { return Ready }
func (exiting) kind() States         { return Exiting }

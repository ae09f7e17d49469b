// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"image"
	"sync"
	"testing"

	"cogentcore.org/gpuhost/events/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypes(t *testing.T) {
	assert.Equal(t, "WindowResize", WindowResize.String())
	assert.Equal(t, "UnknownType", Types(-1).String())
	assert.True(t, MouseMove.IsMouse())
	assert.True(t, Scroll.IsMouse())
	assert.True(t, KeyChord.IsKey())
	assert.False(t, KeyDown.IsMouse())
	assert.True(t, WindowPaint.IsWindow())
	assert.False(t, MouseDown.IsWindow())
}

func TestEvents(t *testing.T) {
	var e Event = NewKey(KeyDown, 0, key.CodeEscape, key.Control)
	assert.Equal(t, KeyDown, e.Type())
	assert.Equal(t, key.Control, e.KeyMods())
	assert.False(t, e.Time().IsZero())
	assert.Contains(t, e.String(), "Escape")

	e = NewMouse(MouseDown, Left, image.Pt(3, 4), 0)
	assert.Contains(t, e.String(), "(3,4)")

	e = NewResize(image.Point{})
	assert.Equal(t, image.Point{}, e.(*Resize).Size)

	e = NewWindow(WindowClose)
	assert.Equal(t, WindowClose, e.Type())
}

func TestQueue(t *testing.T) {
	var q Queue
	q.Init()
	assert.Nil(t, q.Next())

	for i := range 5 {
		q.Send(NewResize(image.Pt(i, i)))
	}
	assert.Equal(t, 5, q.Len())
	for i := range 5 {
		e := q.Next()
		require.NotNil(t, e)
		assert.Equal(t, image.Pt(i, i), e.(*Resize).Size)
	}
	assert.Nil(t, q.Next())
	assert.Equal(t, 0, q.Len())
}

func TestQueueConcurrent(t *testing.T) {
	var q Queue
	q.Init()
	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				q.Send(NewWindow(WindowPaint))
			}
		}()
	}
	wg.Wait()
	n := 0
	for q.Next() != nil {
		n++
	}
	assert.Equal(t, 400, n)
}

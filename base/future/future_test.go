// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package future

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromise(t *testing.T) {
	f, resolve := NewPromise[int]()
	_, _, ok := f.TryTake()
	assert.False(t, ok)
	assert.False(t, f.Done())

	resolve(7, nil)
	resolve(8, errors.New("late"))
	assert.True(t, f.Done())

	v, err, ok := f.TryTake()
	require.True(t, ok)
	assert.NoError(t, err)
	assert.Equal(t, 7, v)

	_, _, ok = f.TryTake()
	assert.False(t, ok, "result must only be taken once")
}

func TestGo(t *testing.T) {
	release := make(chan struct{})
	f := Go(func() (string, error) {
		<-release
		return "device", nil
	})
	_, _, ok := f.TryTake()
	assert.False(t, ok)
	close(release)

	require.Eventually(t, f.Done, time.Second, time.Millisecond)
	v, err, ok := f.TryTake()
	require.True(t, ok)
	assert.NoError(t, err)
	assert.Equal(t, "device", v)
}

func TestGoPanic(t *testing.T) {
	f := Go(func() (int, error) {
		panic("no adapter")
	})
	require.Eventually(t, f.Done, time.Second, time.Millisecond)
	_, err, ok := f.TryTake()
	require.True(t, ok)
	assert.ErrorContains(t, err, "no adapter")
}

func TestReady(t *testing.T) {
	want := errors.New("failed")
	f := Ready(0, want)
	_, err, ok := f.TryTake()
	require.True(t, ok)
	assert.ErrorIs(t, err, want)
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"errors"
	"image"
	"testing"

	"cogentcore.org/gpuhost/gpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTarget is a surface that records the depth attachments made for it.
type fakeTarget struct {
	size     image.Point
	resizes  int
	depths   []image.Point
	depthErr error
}

func (f *fakeTarget) Resize(width, height int) {
	f.resizes++
	f.size = gpu.ClampSize(width, height)
}

func (f *fakeTarget) Size() image.Point { return f.size }

func (f *fakeTarget) NewDepthAttachment(width, height int) (*gpu.DepthAttachment, error) {
	if f.depthErr != nil {
		return nil, f.depthErr
	}
	sz := gpu.ClampSize(width, height)
	f.depths = append(f.depths, sz)
	return &gpu.DepthAttachment{Size: sz}, nil
}

func newResizeRenderer(t *testing.T, size image.Point) (*Renderer, *fakeTarget) {
	ft := &fakeTarget{size: size}
	r := &Renderer{target: ft}
	var err error
	r.depth, err = ft.NewDepthAttachment(size.X, size.Y)
	require.NoError(t, err)
	return r, ft
}

func TestResizeDepthMatchesSurface(t *testing.T) {
	r, ft := newResizeRenderer(t, image.Pt(800, 600))
	sizes := []image.Point{{0, 0}, {1, 1}, {640, 480}, {0, 300}, {1920, 1080}, {1920, 1080}, {2, 0}}
	for _, sz := range sizes {
		require.NoError(t, r.Resize(sz.X, sz.Y))
		assert.Equal(t, gpu.ClampSize(sz.X, sz.Y), r.Size(), "resize to %v", sz)
		assert.Equal(t, r.Size(), r.DepthSize(), "resize to %v", sz)
	}
	assert.Equal(t, len(sizes), ft.resizes)
}

func TestResizeSameSizeKeepsDepth(t *testing.T) {
	r, ft := newResizeRenderer(t, image.Pt(800, 600))
	depth := r.depth
	require.NoError(t, r.Resize(800, 600))
	assert.Same(t, depth, r.depth)
	assert.Len(t, ft.depths, 1)

	// (0, 0) and (1, 1) clamp to the same size
	require.NoError(t, r.Resize(0, 0))
	require.NoError(t, r.Resize(1, 1))
	assert.Equal(t, []image.Point{{800, 600}, {1, 1}}, ft.depths)
}

func TestResizeDepthFailureKeepsOld(t *testing.T) {
	r, ft := newResizeRenderer(t, image.Pt(800, 600))
	depth := r.depth
	ft.depthErr = errors.New("out of memory")
	err := r.Resize(1024, 768)
	assert.ErrorIs(t, err, ft.depthErr)
	assert.Same(t, depth, r.depth)
	assert.Equal(t, image.Pt(800, 600), r.DepthSize())

	ft.depthErr = nil
	require.NoError(t, r.Resize(1024, 768))
	assert.Equal(t, image.Pt(1024, 768), r.DepthSize())
}

var errTimeout = errors.New("surface texture timeout")

func TestAcquireReconfiguresAndSkips(t *testing.T) {
	var at acquireTracker
	reconfigured := 0
	reconfigure := func() { reconfigured++ }

	for i := range MaxAcquireFailures - 1 {
		assert.NoError(t, at.failed(errTimeout, reconfigure), "failure %d", i)
	}
	assert.Equal(t, MaxAcquireFailures-1, reconfigured)

	at.succeeded()
	for range MaxAcquireFailures - 1 {
		assert.NoError(t, at.failed(errTimeout, reconfigure))
	}
	assert.Equal(t, 2*(MaxAcquireFailures-1), reconfigured)
}

func TestAcquireFatalAfterConsecutiveFailures(t *testing.T) {
	var at acquireTracker
	reconfigure := func() {}
	var err error
	for range MaxAcquireFailures {
		err = at.failed(errTimeout, reconfigure)
	}
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSurfaceLost)
	assert.ErrorIs(t, err, errTimeout)
}

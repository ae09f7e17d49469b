// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package overlay

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTexture struct {
	id      TextureID
	serial  int
	updates int
}

type fakeUploader struct {
	serial    int
	live      map[int]bool
	failNext  bool
	destroyed int
}

func newFakeUploader() *fakeUploader {
	return &fakeUploader{live: map[int]bool{}}
}

func (f *fakeUploader) Create(id TextureID, img *image.RGBA, filter FilterModes) (*fakeTexture, error) {
	if f.failNext {
		f.failNext = false
		return nil, errors.New("out of memory")
	}
	f.serial++
	f.live[f.serial] = true
	return &fakeTexture{id: id, serial: f.serial}, nil
}

func (f *fakeUploader) Update(h *fakeTexture, pos image.Point, img *image.RGBA) error {
	h.updates++
	return nil
}

func (f *fakeUploader) Destroy(h *fakeTexture) {
	delete(f.live, h.serial)
	f.destroyed++
}

func whole(id TextureID, w, h int) TextureSet {
	return TextureSet{ID: id, Delta: ImageDelta{Image: image.NewRGBA(image.Rect(0, 0, w, h))}}
}

func partial(id TextureID, x, y, w, h int) TextureSet {
	pos := image.Pt(x, y)
	return TextureSet{ID: id, Delta: ImageDelta{Image: image.NewRGBA(image.Rect(0, 0, w, h)), Pos: &pos}}
}

func TestTexturesSetSetFree(t *testing.T) {
	up := newFakeUploader()
	tx := NewTextures[*fakeTexture](up)

	require.NoError(t, tx.Apply(TexturesDelta{Set: []TextureSet{whole(5, 8, 8)}}))
	require.NoError(t, tx.Apply(TexturesDelta{Set: []TextureSet{whole(5, 16, 16)}}))
	assert.Equal(t, 1, tx.Len())
	assert.Equal(t, image.Pt(16, 16), tx.Size(5))
	assert.Len(t, up.live, 1, "replaced texture must be destroyed")

	require.NoError(t, tx.Apply(TexturesDelta{Free: []TextureID{5}}))
	assert.False(t, tx.Active(5))
	assert.Equal(t, 0, tx.Len())
	assert.Empty(t, up.live)
}

func TestTexturesSetsBeforeFrees(t *testing.T) {
	tx := NewTextures[*fakeTexture](newFakeUploader())
	require.NoError(t, tx.Apply(TexturesDelta{
		Set:  []TextureSet{whole(1, 4, 4), whole(2, 4, 4)},
		Free: []TextureID{1},
	}))
	assert.False(t, tx.Active(1))
	assert.True(t, tx.Active(2))
}

func TestTexturesPartial(t *testing.T) {
	tx := NewTextures[*fakeTexture](newFakeUploader())
	require.NoError(t, tx.Apply(TexturesDelta{Set: []TextureSet{whole(FontTexture, 32, 32)}}))
	require.NoError(t, tx.Apply(TexturesDelta{Set: []TextureSet{partial(FontTexture, 16, 16, 16, 16)}}))
	h, ok := tx.Get(FontTexture)
	require.True(t, ok)
	assert.Equal(t, 1, h.updates)

	assert.Error(t, tx.Apply(TexturesDelta{Set: []TextureSet{partial(FontTexture, 20, 20, 16, 16)}}))
	assert.Error(t, tx.Apply(TexturesDelta{Set: []TextureSet{partial(9, 0, 0, 1, 1)}}))
	assert.False(t, tx.Active(9))
}

func TestTexturesFailedSetKeepsOld(t *testing.T) {
	up := newFakeUploader()
	tx := NewTextures[*fakeTexture](up)
	require.NoError(t, tx.Apply(TexturesDelta{Set: []TextureSet{whole(3, 4, 4)}}))
	up.failNext = true
	assert.Error(t, tx.Apply(TexturesDelta{Set: []TextureSet{whole(3, 8, 8)}}))
	assert.True(t, tx.Active(3))
	assert.Equal(t, image.Pt(4, 4), tx.Size(3))
}

func TestTexturesFailedCreateNotLive(t *testing.T) {
	up := newFakeUploader()
	tx := NewTextures[*fakeTexture](up)
	up.failNext = true
	assert.Error(t, tx.Apply(TexturesDelta{Set: []TextureSet{whole(5, 4, 4)}}))
	assert.False(t, tx.Active(5))
	_, ok := tx.Get(5)
	assert.False(t, ok)
}

func TestTexturesFreeUnknown(t *testing.T) {
	up := newFakeUploader()
	tx := NewTextures[*fakeTexture](up)
	assert.NoError(t, tx.Apply(TexturesDelta{Free: []TextureID{42}}))
	assert.Equal(t, 0, up.destroyed)
}

func TestTexturesRelease(t *testing.T) {
	up := newFakeUploader()
	tx := NewTextures[*fakeTexture](up)
	require.NoError(t, tx.Apply(TexturesDelta{Set: []TextureSet{whole(1, 2, 2), whole(2, 2, 2)}}))
	tx.Release()
	assert.Equal(t, 0, tx.Len())
	assert.Empty(t, up.live)
}

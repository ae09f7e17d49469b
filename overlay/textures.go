// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package overlay

import (
	"fmt"
	"image"

	"cogentcore.org/gpuhost/base/errors"
)

// Uploader creates, updates, and destroys the device textures
// behind a [Textures] registry. H is the device texture handle.
type Uploader[H any] interface {
	// Create creates a texture holding img.
	Create(id TextureID, img *image.RGBA, filter FilterModes) (H, error)

	// Update writes img into the texture at pos.
	Update(h H, pos image.Point, img *image.RGBA) error

	// Destroy releases the texture.
	Destroy(h H)
}

type textureEntry[H any] struct {
	handle H
	size   image.Point
}

// Textures is the registry of live overlay textures, keyed by id.
// A texture is live from its first whole set until it is freed.
type Textures[H any] struct {
	uploader Uploader[H]
	entries  map[TextureID]*textureEntry[H]
}

// NewTextures returns a new registry backed by the given uploader.
func NewTextures[H any](up Uploader[H]) *Textures[H] {
	return &Textures[H]{uploader: up, entries: map[TextureID]*textureEntry[H]{}}
}

// Apply applies all sets in order and then all frees. A whole set
// replaces any existing texture with the same id; a partial set
// patches an existing texture. Freeing an unknown id does nothing.
// Sets that fail are skipped and reported in the returned error.
func (tx *Textures[H]) Apply(td TexturesDelta) error {
	var errs []error
	for _, s := range td.Set {
		if err := tx.set(s.ID, &s.Delta); err != nil {
			errs = append(errs, err)
		}
	}
	for _, id := range td.Free {
		tx.free(id)
	}
	return errors.Join(errs...)
}

func (tx *Textures[H]) set(id TextureID, d *ImageDelta) error {
	if d.Image == nil {
		return fmt.Errorf("overlay: texture %d: nil image", id)
	}
	sz := d.Image.Rect.Size()
	if d.IsWhole() {
		h, err := tx.uploader.Create(id, d.Image, d.Filter)
		if err != nil {
			return fmt.Errorf("overlay: texture %d: %w", id, err)
		}
		tx.free(id)
		tx.entries[id] = &textureEntry[H]{handle: h, size: sz}
		return nil
	}
	e, ok := tx.entries[id]
	if !ok {
		return fmt.Errorf("overlay: texture %d: partial update of unknown texture", id)
	}
	r := image.Rectangle{Min: *d.Pos, Max: d.Pos.Add(sz)}
	if !r.In(image.Rectangle{Max: e.size}) {
		return fmt.Errorf("overlay: texture %d: update %v outside of %v", id, r, e.size)
	}
	if err := tx.uploader.Update(e.handle, *d.Pos, d.Image); err != nil {
		return fmt.Errorf("overlay: texture %d: %w", id, err)
	}
	return nil
}

func (tx *Textures[H]) free(id TextureID) {
	e, ok := tx.entries[id]
	if !ok {
		return
	}
	delete(tx.entries, id)
	tx.uploader.Destroy(e.handle)
}

// Get returns the handle of the texture with the given id, if it is live.
func (tx *Textures[H]) Get(id TextureID) (H, bool) {
	e, ok := tx.entries[id]
	if !ok {
		var zero H
		return zero, false
	}
	return e.handle, true
}

// Active returns whether the texture with the given id is live.
func (tx *Textures[H]) Active(id TextureID) bool {
	_, ok := tx.entries[id]
	return ok
}

// Size returns the size of the texture with the given id.
func (tx *Textures[H]) Size(id TextureID) image.Point {
	if e, ok := tx.entries[id]; ok {
		return e.size
	}
	return image.Point{}
}

// Len returns the number of live textures.
func (tx *Textures[H]) Len() int {
	return len(tx.entries)
}

// Release destroys all textures.
func (tx *Textures[H]) Release() {
	for id := range tx.entries {
		tx.free(id)
	}
}

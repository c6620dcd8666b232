// Copyright (c) 2026, The luGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"image"
	"io/fs"

	"lugl.org/lugl/base/errors"
	"lugl.org/lugl/base/iox/imagex"
)

// Texture is a 2D RGBA texture on the GPU.
type Texture struct {
	gp     Backend
	handle uint32
	size   image.Point
}

// NewTexture uploads the given image as a new texture.
// The image is flipped vertically so that texture coordinate (0, 0)
// is its bottom-left corner, and sampled with a linear minifying
// filter and a nearest magnifying filter. The texture is left unbound.
func NewTexture(gp Backend, img image.Image) (*Texture, error) {
	if img == nil {
		return nil, errors.Log(errors.New("gpu.NewTexture: nil image"))
	}
	sz := img.Bounds().Size()
	if sz.X <= 0 || sz.Y <= 0 {
		return nil, errors.Log(fmt.Errorf("gpu.NewTexture: empty image of size %v", sz))
	}
	rgba := imagex.AsRGBA(imagex.FlipV(img))

	tx := &Texture{gp: gp, size: sz}
	tx.handle = gp.GenTexture()
	gp.BindTexture2D(tx.handle)
	gp.TexFilters(Linear, Nearest)
	gp.TexImage2DRGBA(sz.X, sz.Y, rgba.Pix)
	gp.BindTexture2D(0)
	return tx, nil
}

// LoadTexture decodes the given image file and uploads it
// with [NewTexture].
func LoadTexture(gp Backend, filename string) (*Texture, error) {
	img, _, err := imagex.Open(filename)
	if err != nil {
		return nil, errors.Log(fmt.Errorf("gpu.LoadTexture: %w", err))
	}
	return NewTexture(gp, img)
}

// LoadTextureFS is like [LoadTexture] but reads from the given filesystem.
func LoadTextureFS(gp Backend, fsys fs.FS, filename string) (*Texture, error) {
	img, _, err := imagex.OpenFS(fsys, filename)
	if err != nil {
		return nil, errors.Log(fmt.Errorf("gpu.LoadTextureFS: %w", err))
	}
	return NewTexture(gp, img)
}

// SendUniformTexture loads the given image file as a texture and
// assigns it to texture unit 0 of the named sampler uniform in the
// program, which is left current.
func SendUniformTexture(gp Backend, filename string, pr *Program, uniform string) (*Texture, error) {
	tx, err := LoadTexture(gp, filename)
	if err != nil {
		return nil, err
	}
	tx.SendUniform(pr, uniform, 0)
	return tx, nil
}

// SendUniform makes the program current, points the named sampler
// uniform at the given texture unit, and binds the texture there
// before unbinding it again. Bind the texture before drawing.
func (tx *Texture) SendUniform(pr *Program, uniform string, unit int) {
	pr.Use()
	pr.SetInt(uniform, unit)
	tx.Bind(unit)
	tx.gp.BindTexture2D(0)
}

// Bind binds the texture to the given texture unit.
func (tx *Texture) Bind(unit int) {
	tx.gp.ActiveTexture(unit)
	tx.gp.BindTexture2D(tx.handle)
}

// Size returns the size of the texture in pixels.
func (tx *Texture) Size() image.Point {
	return tx.size
}

// Handle returns the GPU handle of the texture, 0 after Delete.
func (tx *Texture) Handle() uint32 {
	return tx.handle
}

// Delete deletes the GPU texture. It is safe to call more than once.
func (tx *Texture) Delete() {
	if tx.handle == 0 {
		return
	}
	tx.gp.DeleteTexture(tx.handle)
	tx.handle = 0
}

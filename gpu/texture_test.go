// Copyright (c) 2026, The luGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lugl.org/lugl/gpu"
	"lugl.org/lugl/gpu/gputest"
)

var (
	red  = color.RGBA{255, 0, 0, 255}
	blue = color.RGBA{0, 0, 255, 255}
)

// stripes returns a 3x2 image with a red top row and a blue bottom row.
func stripes() *image.RGBA {
	im := image.NewRGBA(image.Rect(0, 0, 3, 2))
	for x := 0; x < 3; x++ {
		im.SetRGBA(x, 0, red)
		im.SetRGBA(x, 1, blue)
	}
	return im
}

func stripesPNG(t *testing.T) []byte {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, stripes()))
	return buf.Bytes()
}

func TestNewTexture(t *testing.T) {
	gp := gputest.New()
	tx, err := gpu.NewTexture(gp, stripes())
	require.NoError(t, err)
	assert.Equal(t, image.Pt(3, 2), tx.Size())

	rec := gp.Textures[tx.Handle()]
	require.NotNil(t, rec)
	assert.Equal(t, 3, rec.Width)
	assert.Equal(t, 2, rec.Height)
	assert.Equal(t, gpu.Linear, rec.Min)
	assert.Equal(t, gpu.Nearest, rec.Mag)
	require.Len(t, rec.Pix, 3*2*4)
	// flipped: the first uploaded row is the bottom (blue) row
	assert.Equal(t, []byte{0, 0, 255, 255}, rec.Pix[0:4])
	assert.Equal(t, []byte{255, 0, 0, 255}, rec.Pix[12:16])
	assert.Zero(t, gp.BoundTexture)

	tx.Delete()
	assert.True(t, rec.Deleted)
	assert.Zero(t, tx.Handle())
	tx.Delete()
}

func TestNewTextureSubImage(t *testing.T) {
	im := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			im.SetRGBA(x, y, color.RGBA{uint8(x), uint8(y), 0, 255})
		}
	}
	gp := gputest.New()
	tx, err := gpu.NewTexture(gp, im.SubImage(image.Rect(1, 1, 3, 3)))
	require.NoError(t, err)
	assert.Equal(t, image.Pt(2, 2), tx.Size())

	rec := gp.Textures[tx.Handle()]
	require.Len(t, rec.Pix, 2*2*4)
	// bottom row of the sub-image first: (1,2) (2,2) then (1,1) (2,1)
	assert.Equal(t, []byte{1, 2, 0, 255}, rec.Pix[0:4])
	assert.Equal(t, []byte{2, 2, 0, 255}, rec.Pix[4:8])
	assert.Equal(t, []byte{1, 1, 0, 255}, rec.Pix[8:12])
	assert.Equal(t, []byte{2, 1, 0, 255}, rec.Pix[12:16])
}

func TestNewTextureErrors(t *testing.T) {
	gp := gputest.New()
	_, err := gpu.NewTexture(gp, nil)
	assert.Error(t, err)
	_, err = gpu.NewTexture(gp, image.NewRGBA(image.Rect(0, 0, 0, 4)))
	assert.Error(t, err)
	assert.Empty(t, gp.Textures)
}

func TestLoadTexture(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "stripes.png")
	require.NoError(t, os.WriteFile(fn, stripesPNG(t), 0o644))

	gp := gputest.New()
	tx, err := gpu.LoadTexture(gp, fn)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(3, 2), tx.Size())

	_, err = gpu.LoadTexture(gp, filepath.Join(t.TempDir(), "none.png"))
	assert.Error(t, err)

	fsys := fstest.MapFS{"tex/stripes.png": {Data: stripesPNG(t)}, "tex/bad.png": {Data: []byte("not png")}}
	tx, err = gpu.LoadTextureFS(gp, fsys, "tex/stripes.png")
	require.NoError(t, err)
	assert.Equal(t, 3, gp.Textures[tx.Handle()].Width)
	_, err = gpu.LoadTextureFS(gp, fsys, "tex/bad.png")
	assert.Error(t, err)
}

func TestSendUniformTexture(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "stripes.png")
	require.NoError(t, os.WriteFile(fn, stripesPNG(t), 0o644))

	gp := gputest.New()
	pr, err := gpu.NewProgramFS(gp, shaderFS(), []string{"shaders/quad.vert", "shaders/quad.frag"})
	require.NoError(t, err)

	tx, err := gpu.SendUniformTexture(gp, fn, pr, "tex")
	require.NoError(t, err)
	assert.Equal(t, pr.Handle(), gp.Current)
	loc := pr.UniformLocation("tex")
	assert.Equal(t, int32(0), gp.Programs[pr.Handle()].Values[loc])
	assert.Equal(t, 0, gp.ActiveUnit)
	assert.Zero(t, gp.BoundTexture)

	tx.Bind(2)
	assert.Equal(t, 2, gp.ActiveUnit)
	assert.Equal(t, tx.Handle(), gp.BoundTexture)

	_, err = gpu.SendUniformTexture(gp, filepath.Join(t.TempDir(), "none.png"), pr, "tex")
	assert.Error(t, err)
}

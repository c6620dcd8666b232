// Copyright (c) 2026, The luGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

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
)

// twoRows returns a 2x2 image with a red top row and a blue bottom row.
func twoRows() *image.RGBA {
	im := image.NewRGBA(image.Rect(0, 0, 2, 2))
	red := color.RGBA{255, 0, 0, 255}
	blue := color.RGBA{0, 0, 255, 255}
	im.Set(0, 0, red)
	im.Set(1, 0, red)
	im.Set(0, 1, blue)
	im.Set(1, 1, blue)
	return im
}

func encodePNG(t *testing.T, im image.Image) []byte {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, im))
	return buf.Bytes()
}

func TestExtToFormat(t *testing.T) {
	f, err := ExtToFormat(".JPG")
	assert.NoError(t, err)
	assert.Equal(t, JPEG, f)

	f, err = ExtToFormat("webp")
	assert.NoError(t, err)
	assert.Equal(t, WebP, f)

	_, err = ExtToFormat("")
	assert.Error(t, err)
	_, err = ExtToFormat("tga")
	assert.Error(t, err)
	assert.Equal(t, "PNG", PNG.String())
}

func TestRead(t *testing.T) {
	im, f, err := Read(bytes.NewReader(encodePNG(t, twoRows())))
	require.NoError(t, err)
	assert.Equal(t, PNG, f)
	assert.Equal(t, image.Pt(2, 2), im.Bounds().Size())
}

func TestReadNotImage(t *testing.T) {
	_, _, err := Read(bytes.NewReader([]byte("%PDF-1.4\n%some document body\n")))
	assert.ErrorIs(t, err, ErrNotImage)

	_, _, err = Read(bytes.NewReader(nil))
	assert.Error(t, err)

	_, _, err = Read(bytes.NewReader([]byte("plain text, not anything")))
	assert.Error(t, err)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "rows.png")
	require.NoError(t, os.WriteFile(fn, encodePNG(t, twoRows()), 0o644))

	im, f, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, PNG, f)
	assert.Equal(t, 2, im.Bounds().Dx())

	_, _, err = Open(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)
}

func TestOpenFS(t *testing.T) {
	fsys := fstest.MapFS{"tex/rows.png": {Data: encodePNG(t, twoRows())}}
	im, _, err := OpenFS(fsys, "tex/rows.png")
	require.NoError(t, err)
	assert.Equal(t, 2, im.Bounds().Dy())
}

func TestAsRGBA(t *testing.T) {
	src := twoRows()
	assert.Same(t, src, AsRGBA(src))

	sub := src.SubImage(image.Rect(0, 1, 2, 2))
	rgba := AsRGBA(sub)
	assert.Equal(t, image.Rect(0, 0, 2, 1), rgba.Bounds())
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, rgba.RGBAAt(0, 0))

	gray := image.NewGray(image.Rect(0, 0, 1, 1))
	gray.SetGray(0, 0, color.Gray{Y: 10})
	assert.Equal(t, color.RGBA{10, 10, 10, 255}, AsRGBA(gray).RGBAAt(0, 0))
	assert.Nil(t, AsRGBA(nil))
}

func TestFlipV(t *testing.T) {
	fl := FlipV(twoRows())
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, fl.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, fl.RGBAAt(1, 1))
	assert.Nil(t, FlipV(nil))

	im := image.NewRGBA(image.Rect(0, 0, 3, 3))
	im.SetRGBA(1, 1, color.RGBA{1, 1, 0, 255})
	im.SetRGBA(1, 2, color.RGBA{1, 2, 0, 255})
	sub := FlipV(im.SubImage(image.Rect(1, 1, 2, 3)))
	assert.Equal(t, image.Rect(0, 0, 1, 2), sub.Bounds())
	assert.Equal(t, color.RGBA{1, 2, 0, 255}, sub.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{1, 1, 0, 255}, sub.RGBAAt(0, 1))
}

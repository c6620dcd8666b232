// Copyright (c) 2026, The luGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"image"
	"image/draw"

	"github.com/anthonynsimon/bild/transform"
)

// CloneAsRGBA returns an RGBA copy of the supplied image,
// with bounds starting at the origin.
func CloneAsRGBA(src image.Image) *image.RGBA {
	if src == nil {
		return nil
	}
	bounds := src.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(img, img.Bounds(), src, bounds.Min, draw.Src)
	return img
}

// AsRGBA returns the image as an RGBA: if it already is one with
// a tightly packed origin-based layout, then it returns that image
// directly. Otherwise it returns a clone.
func AsRGBA(src image.Image) *image.RGBA {
	if src == nil {
		return nil
	}
	if rgba, ok := src.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) && rgba.Stride == 4*rgba.Rect.Dx() {
		return rgba
	}
	return CloneAsRGBA(src)
}

// FlipV returns a vertically flipped RGBA copy of the image,
// so that the first row of pixels is the bottom of the image,
// as OpenGL texture coordinates expect. The result starts at the origin.
func FlipV(src image.Image) *image.RGBA {
	if src == nil {
		return nil
	}
	return transform.FlipV(AsRGBA(src))
}

// Copyright (c) 2026, The luGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imagex decodes image files into RGBA pixel data
// suitable for uploading as GPU textures.
package imagex

//go:generate core generate

import (
	"bufio"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"lugl.org/lugl/base/errors"
)

// Formats are the supported image decoding formats
type Formats int32 //enums:enum

// The supported image formats
const (
	None Formats = iota
	PNG
	JPEG
	GIF
	TIFF
	BMP
	WebP
)

// ErrNotImage is returned by [Read] when the data is recognized
// as some other kind of file.
var ErrNotImage = errors.New("not an image")

// ExtToFormat returns a Format based on a filename extension,
// which can start with a . or not
func ExtToFormat(ext string) (Formats, error) {
	if len(ext) == 0 {
		return None, errors.New("ExtToFormat: ext is empty")
	}
	if ext[0] == '.' {
		ext = ext[1:]
	}
	ext = strings.ToLower(ext)
	switch ext {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "gif":
		return GIF, nil
	case "tif", "tiff":
		return TIFF, nil
	case "bmp":
		return BMP, nil
	case "webp":
		return WebP, nil
	}
	return None, fmt.Errorf("ExtToFormat: extension %q not recognized", ext)
}

// Open opens an image from the given filename.
// The format is inferred from the content,
// and is returned using the Formats enum.
func Open(filename string) (image.Image, Formats, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, None, err
	}
	defer file.Close()
	im, f, err := Read(file)
	if err != nil {
		return nil, None, fmt.Errorf("imagex.Open %q: %w", filename, err)
	}
	return im, f, nil
}

// OpenFS opens an image from the given filename
// using the given [fs.FS] filesystem (e.g., for embed files).
func OpenFS(fsys fs.FS, filename string) (image.Image, Formats, error) {
	file, err := fsys.Open(filename)
	if err != nil {
		return nil, None, err
	}
	defer file.Close()
	im, f, err := Read(file)
	if err != nil {
		return nil, None, fmt.Errorf("imagex.OpenFS %q: %w", filename, err)
	}
	return im, f, nil
}

// Read reads an image from the given reader.
// The header is sniffed first so that non-image files
// are reported as [ErrNotImage] rather than a decoder error.
func Read(r io.Reader) (image.Image, Formats, error) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(262)
	if len(head) == 0 {
		return nil, None, errors.New("empty image data")
	}
	if kind, err := filetype.Match(head); err == nil && kind != filetype.Unknown && !filetype.IsImage(head) {
		return nil, None, fmt.Errorf("%w: detected %s", ErrNotImage, kind.MIME.Value)
	}
	im, ext, err := image.Decode(br)
	if err != nil {
		return nil, None, err
	}
	f, err := ExtToFormat(ext)
	return im, f, err
}

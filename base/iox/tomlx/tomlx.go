// Copyright (c) 2026, The luGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tomlx reads and writes Go values as TOML.
package tomlx

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"

	"lugl.org/lugl/base/errors"
)

// Open reads the given object from the given TOML file.
func Open(v any, filename string) error {
	fp, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	return Read(v, bufio.NewReader(fp))
}

// OpenFiles reads the given object from the given TOML files in order,
// so that later files override values set by earlier ones.
// It returns the joined errors of any files that failed.
func OpenFiles(v any, filenames ...string) error {
	var errs []error
	for _, fn := range filenames {
		if err := Open(v, fn); err != nil {
			errs = append(errs, fmt.Errorf("tomlx.OpenFiles %q: %w", fn, err))
		}
	}
	return errors.Join(errs...)
}

// OpenFS reads the given object from the given TOML file
// in the given [fs.FS] filesystem.
func OpenFS(v any, fsys fs.FS, filename string) error {
	b, err := fs.ReadFile(fsys, filename)
	if err != nil {
		return err
	}
	return toml.Unmarshal(b, v)
}

// Read reads the given object from the given reader.
func Read(v any, r io.Reader) error {
	return toml.NewDecoder(r).Decode(v)
}

// Save writes the given object to the given TOML file.
func Save(v any, filename string) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	if err := Write(v, bw); err != nil {
		return err
	}
	return bw.Flush()
}

// Write writes the given object to the given writer.
func Write(v any, w io.Writer) error {
	return toml.NewEncoder(w).Encode(v)
}

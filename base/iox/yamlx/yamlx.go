// Copyright (c) 2026, The luGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package yamlx reads and writes Go values as YAML.
package yamlx

import (
	"bufio"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Open reads the given object from the given YAML file.
func Open(v any, filename string) error {
	fp, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	return Read(v, bufio.NewReader(fp))
}

// OpenFS reads the given object from the given YAML file
// in the given [fs.FS] filesystem.
func OpenFS(v any, fsys fs.FS, filename string) error {
	b, err := fs.ReadFile(fsys, filename)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, v)
}

// Read reads the given object from the given reader.
// An empty document leaves v unchanged.
func Read(v any, r io.Reader) error {
	err := yaml.NewDecoder(r).Decode(v)
	if err == io.EOF {
		return nil
	}
	return err
}

// Save writes the given object to the given YAML file.
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
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

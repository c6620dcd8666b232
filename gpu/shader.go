// Copyright (c) 2026, The luGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"lugl.org/lugl/base/errors"
)

var (
	// ErrNoShaders is returned when a program is created from no files.
	ErrNoShaders = errors.New("no shader files given")

	// ErrUnsupportedShader is returned for shader files whose
	// extension does not name a shader stage.
	ErrUnsupportedShader = errors.New("unsupported shader extension (use .vert, .frag, .geom or .comp)")

	// ErrEmptyShader is returned for empty shader files.
	ErrEmptyShader = errors.New("shader file is empty")

	// ErrCompile is wrapped by a [ShaderError] when a shader fails to compile.
	ErrCompile = errors.New("shader compilation failed")

	// ErrLink is wrapped by a [ShaderError] when a program fails to link.
	ErrLink = errors.New("shader program linking failed")
)

// ShaderError reports a compile or link failure with the driver info log.
type ShaderError struct {
	// Path is the shader file, empty for link errors.
	Path string

	// Log is the info log reported by the driver.
	Log string

	Err error
}

func (se *ShaderError) Error() string {
	if se.Path == "" {
		return fmt.Sprintf("%v:\n%s", se.Err, se.Log)
	}
	return fmt.Sprintf("%s: %v:\n%s", se.Path, se.Err, se.Log)
}

func (se *ShaderError) Unwrap() error {
	return se.Err
}

// ShaderTypeFromPath returns the shader stage for the file extension
// of the given path: .vert, .frag, .geom or .comp.
func ShaderTypeFromPath(fpath string) (ShaderTypes, error) {
	switch strings.ToLower(filepath.Ext(fpath)) {
	case ".vert":
		return VertexShader, nil
	case ".frag":
		return FragmentShader, nil
	case ".geom":
		return GeometryShader, nil
	case ".comp":
		return ComputeShader, nil
	}
	return VertexShader, fmt.Errorf("%q: %w", fpath, ErrUnsupportedShader)
}

// Program is a linked shader program.
type Program struct {
	gp     Backend
	handle uint32
	unis   map[string]int32
}

// NewProgram compiles the given shader files, in order, and links them
// into a program. The stage of each shader comes from its extension
// (see [ShaderTypeFromPath]). On failure no GPU objects are left behind
// and the error is logged and returned.
func NewProgram(gp Backend, paths []string) (*Program, error) {
	return newProgram(gp, paths, os.ReadFile)
}

// NewProgramFS is like [NewProgram] but reads the shader files
// from the given filesystem (e.g., embedded files).
func NewProgramFS(gp Backend, fsys fs.FS, paths []string) (*Program, error) {
	return newProgram(gp, paths, func(name string) ([]byte, error) {
		return fs.ReadFile(fsys, path.Clean(filepath.ToSlash(name)))
	})
}

func newProgram(gp Backend, paths []string, readFile func(string) ([]byte, error)) (*Program, error) {
	if len(paths) == 0 {
		return nil, errors.Log(fmt.Errorf("gpu.NewProgram: %w", ErrNoShaders))
	}
	shaders := make([]uint32, 0, len(paths))
	deleteShaders := func() {
		for _, sh := range shaders {
			gp.DeleteShader(sh)
		}
	}
	for _, fp := range paths {
		sh, err := compileShader(gp, fp, readFile)
		if err != nil {
			deleteShaders()
			return nil, errors.Log(fmt.Errorf("gpu.NewProgram: %w", err))
		}
		shaders = append(shaders, sh)
	}

	handle := gp.CreateProgram()
	for _, sh := range shaders {
		gp.AttachShader(handle, sh)
	}
	ok, lg := gp.LinkProgram(handle)
	deleteShaders()
	if !ok {
		gp.DeleteProgram(handle)
		return nil, errors.Log(fmt.Errorf("gpu.NewProgram: %w", &ShaderError{Log: lg, Err: ErrLink}))
	}
	slog.Debug("gpu.NewProgram: linked", "program", handle, "shaders", paths)
	return &Program{gp: gp, handle: handle, unis: map[string]int32{}}, nil
}

func compileShader(gp Backend, fpath string, readFile func(string) ([]byte, error)) (uint32, error) {
	typ, err := ShaderTypeFromPath(fpath)
	if err != nil {
		return 0, err
	}
	src, err := readFile(fpath)
	if err != nil {
		return 0, fmt.Errorf("reading shader: %w", err)
	}
	if len(src) == 0 {
		return 0, fmt.Errorf("%q: %w", fpath, ErrEmptyShader)
	}
	sh := gp.CreateShader(typ)
	if sh == 0 {
		return 0, fmt.Errorf("%q: %v shaders not available: %w", fpath, typ, ErrUnsupportedShader)
	}
	ok, lg := gp.CompileShader(sh, string(src))
	if !ok {
		gp.DeleteShader(sh)
		return 0, &ShaderError{Path: fpath, Log: lg, Err: ErrCompile}
	}
	return sh, nil
}

// Handle returns the GPU handle of the program, 0 after Delete.
func (pr *Program) Handle() uint32 {
	return pr.handle
}

// Use makes this the current program.
func (pr *Program) Use() {
	pr.gp.UseProgram(pr.handle)
}

// UniformLocation returns the location of the named uniform,
// or -1 if the program has no active uniform of that name.
// Locations are cached.
func (pr *Program) UniformLocation(name string) int32 {
	if loc, ok := pr.unis[name]; ok {
		return loc
	}
	loc := pr.gp.UniformLocation(pr.handle, name)
	if loc < 0 {
		slog.Debug("gpu.Program: uniform not found", "program", pr.handle, "name", name)
	}
	pr.unis[name] = loc
	return loc
}

// SetInt sets the named integer or sampler uniform.
// The program must be current. Unknown names are ignored,
// as the graphics API does.
func (pr *Program) SetInt(name string, v int) {
	pr.gp.Uniform1i(pr.UniformLocation(name), int32(v))
}

// Delete deletes the GPU program. It is safe to call more than once.
func (pr *Program) Delete() {
	if pr.handle == 0 {
		return
	}
	pr.gp.DeleteProgram(pr.handle)
	pr.handle = 0
	clear(pr.unis)
}

// Copyright (c) 2026, The luGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gputest provides a fake [gpu.Backend] that records
// the calls made to it, for testing code that uses package gpu
// without a graphics context.
package gputest

import (
	"fmt"
	"strings"

	"lugl.org/lugl/gpu"
)

// Attrib is a recorded vertex attribute binding.
type Attrib struct {
	Count      int
	Type       gpu.Types
	Normalized bool
	Stride     int
	Offset     int
	Buffer     uint32 // array buffer bound when the attribute was set
	Enabled    bool
}

// Draw is a recorded draw call.
type Draw struct {
	VAO   uint32
	Mode  gpu.Primitives
	First int
	Count int
}

// Shader is a recorded shader object.
type Shader struct {
	Type    gpu.ShaderTypes
	Source  string
	Deleted bool
}

// Program is a recorded program object.
type Program struct {
	Shaders  []uint32
	Linked   bool
	Deleted  bool
	Uniforms map[string]int32 // locations handed out
	Values   map[int32]int32  // values set with Uniform1i
}

// Texture is a recorded texture object.
type Texture struct {
	Width, Height int
	Pix           []byte
	Min, Mag      gpu.Filters
	Deleted       bool
}

// Backend is a fake [gpu.Backend]. Handles are assigned from a single
// counter starting at 1, so they are unique across object kinds.
type Backend struct {
	// Calls lists the name of every call made, in order.
	Calls []string

	VertexArrays map[uint32]map[uint32]*Attrib // live vertex arrays and their attributes
	Buffers      map[uint32][]byte             // live buffers and their uploaded data
	Uploads      map[uint32]int                // number of BufferData calls per buffer
	Shaders      map[uint32]*Shader
	Programs     map[uint32]*Program
	Textures     map[uint32]*Texture
	Draws        []Draw

	BoundVAO     uint32
	BoundVBO     uint32
	BoundTexture uint32
	ActiveUnit   int
	Current      uint32 // current program
	Color        [4]float32
	Clears       int

	// CompileError, if set, is called with each shader source; a non-empty
	// result fails the compile with that log.
	CompileError func(src string) string

	// LinkError, if non-empty, fails every link with this log.
	LinkError string

	// MissingUniforms are uniform names that no program has,
	// as if the shader compiler had optimized them away.
	MissingUniforms map[string]bool

	next uint32
}

var _ gpu.Backend = (*Backend)(nil)

// New returns a new empty Backend.
func New() *Backend {
	return &Backend{
		VertexArrays: map[uint32]map[uint32]*Attrib{},
		Buffers:      map[uint32][]byte{},
		Uploads:      map[uint32]int{},
		Shaders:      map[uint32]*Shader{},
		Programs:     map[uint32]*Program{},
		Textures:     map[uint32]*Texture{},
	}
}

func (b *Backend) call(format string, args ...any) {
	b.Calls = append(b.Calls, fmt.Sprintf(format, args...))
}

func (b *Backend) gen() uint32 {
	b.next++
	return b.next
}

// CallNames returns the names of the recorded calls, without arguments.
func (b *Backend) CallNames() []string {
	names := make([]string, len(b.Calls))
	for i, c := range b.Calls {
		names[i], _, _ = strings.Cut(c, "(")
	}
	return names
}

// Reset forgets the recorded calls and draws, keeping all objects.
func (b *Backend) Reset() {
	b.Calls = nil
	b.Draws = nil
}

func (b *Backend) GenVertexArray() uint32 {
	h := b.gen()
	b.VertexArrays[h] = map[uint32]*Attrib{}
	b.call("GenVertexArray() %d", h)
	return h
}

func (b *Backend) BindVertexArray(vao uint32) {
	b.BoundVAO = vao
	b.call("BindVertexArray(%d)", vao)
}

func (b *Backend) DeleteVertexArray(vao uint32) {
	delete(b.VertexArrays, vao)
	if b.BoundVAO == vao {
		b.BoundVAO = 0
	}
	b.call("DeleteVertexArray(%d)", vao)
}

func (b *Backend) GenBuffer() uint32 {
	h := b.gen()
	b.Buffers[h] = nil
	b.call("GenBuffer() %d", h)
	return h
}

func (b *Backend) BindArrayBuffer(vbo uint32) {
	b.BoundVBO = vbo
	b.call("BindArrayBuffer(%d)", vbo)
}

func (b *Backend) BufferData(data []byte, usage gpu.BufferUsages) {
	b.call("BufferData(%d, %d)", len(data), usage)
	if b.BoundVBO == 0 {
		return
	}
	b.Buffers[b.BoundVBO] = append([]byte(nil), data...)
	b.Uploads[b.BoundVBO]++
}

func (b *Backend) DeleteBuffer(vbo uint32) {
	delete(b.Buffers, vbo)
	if b.BoundVBO == vbo {
		b.BoundVBO = 0
	}
	b.call("DeleteBuffer(%d)", vbo)
}

func (b *Backend) VertexAttribPointer(index uint32, count int, typ gpu.Types, normalized bool, stride, offset int) {
	b.call("VertexAttribPointer(%d, %d, %v, %v, %d, %d)", index, count, typ, normalized, stride, offset)
	attrs, ok := b.VertexArrays[b.BoundVAO]
	if !ok {
		return
	}
	at := attrs[index]
	if at == nil {
		at = &Attrib{}
		attrs[index] = at
	}
	at.Count, at.Type, at.Normalized, at.Stride, at.Offset, at.Buffer = count, typ, normalized, stride, offset, b.BoundVBO
}

func (b *Backend) EnableVertexAttribArray(index uint32) {
	b.call("EnableVertexAttribArray(%d)", index)
	if at := b.VertexArrays[b.BoundVAO][index]; at != nil {
		at.Enabled = true
	}
}

func (b *Backend) DrawArrays(mode gpu.Primitives, first, count int) {
	b.call("DrawArrays(%v, %d, %d)", mode, first, count)
	b.Draws = append(b.Draws, Draw{VAO: b.BoundVAO, Mode: mode, First: first, Count: count})
}

func (b *Backend) CreateShader(typ gpu.ShaderTypes) uint32 {
	h := b.gen()
	b.Shaders[h] = &Shader{Type: typ}
	b.call("CreateShader(%v) %d", typ, h)
	return h
}

func (b *Backend) CompileShader(shader uint32, src string) (bool, string) {
	b.call("CompileShader(%d)", shader)
	if sh := b.Shaders[shader]; sh != nil {
		sh.Source = src
	}
	if b.CompileError != nil {
		if lg := b.CompileError(src); lg != "" {
			return false, lg
		}
	}
	return true, ""
}

func (b *Backend) DeleteShader(shader uint32) {
	b.call("DeleteShader(%d)", shader)
	if sh := b.Shaders[shader]; sh != nil {
		sh.Deleted = true
	}
}

func (b *Backend) CreateProgram() uint32 {
	h := b.gen()
	b.Programs[h] = &Program{Uniforms: map[string]int32{}, Values: map[int32]int32{}}
	b.call("CreateProgram() %d", h)
	return h
}

func (b *Backend) AttachShader(program, shader uint32) {
	b.call("AttachShader(%d, %d)", program, shader)
	if pr := b.Programs[program]; pr != nil {
		pr.Shaders = append(pr.Shaders, shader)
	}
}

func (b *Backend) LinkProgram(program uint32) (bool, string) {
	b.call("LinkProgram(%d)", program)
	if b.LinkError != "" {
		return false, b.LinkError
	}
	if pr := b.Programs[program]; pr != nil {
		pr.Linked = true
	}
	return true, ""
}

func (b *Backend) UseProgram(program uint32) {
	b.Current = program
	b.call("UseProgram(%d)", program)
}

func (b *Backend) DeleteProgram(program uint32) {
	b.call("DeleteProgram(%d)", program)
	if pr := b.Programs[program]; pr != nil {
		pr.Deleted = true
	}
	if b.Current == program {
		b.Current = 0
	}
}

// UniformLocation hands out locations in order of first request per
// program. Names in MissingUniforms are reported as not found.
func (b *Backend) UniformLocation(program uint32, name string) int32 {
	b.call("UniformLocation(%d, %q)", program, name)
	pr := b.Programs[program]
	if pr == nil || b.MissingUniforms[name] {
		return -1
	}
	if loc, ok := pr.Uniforms[name]; ok {
		return loc
	}
	loc := int32(len(pr.Uniforms))
	pr.Uniforms[name] = loc
	return loc
}

func (b *Backend) Uniform1i(location int32, v int32) {
	b.call("Uniform1i(%d, %d)", location, v)
	if location < 0 {
		return
	}
	if pr := b.Programs[b.Current]; pr != nil {
		pr.Values[location] = v
	}
}

func (b *Backend) GenTexture() uint32 {
	h := b.gen()
	b.Textures[h] = &Texture{}
	b.call("GenTexture() %d", h)
	return h
}

func (b *Backend) ActiveTexture(unit int) {
	b.ActiveUnit = unit
	b.call("ActiveTexture(%d)", unit)
}

func (b *Backend) BindTexture2D(tex uint32) {
	b.BoundTexture = tex
	b.call("BindTexture2D(%d)", tex)
}

func (b *Backend) TexFilters(min, mag gpu.Filters) {
	b.call("TexFilters(%d, %d)", min, mag)
	if tx := b.Textures[b.BoundTexture]; tx != nil {
		tx.Min, tx.Mag = min, mag
	}
}

func (b *Backend) TexImage2DRGBA(width, height int, pix []byte) {
	b.call("TexImage2DRGBA(%d, %d)", width, height)
	if tx := b.Textures[b.BoundTexture]; tx != nil {
		tx.Width, tx.Height = width, height
		tx.Pix = append([]byte(nil), pix...)
	}
}

func (b *Backend) DeleteTexture(tex uint32) {
	b.call("DeleteTexture(%d)", tex)
	if tx := b.Textures[tex]; tx != nil {
		tx.Deleted = true
	}
}

func (b *Backend) ClearColor(r, g, bl, a float32) {
	b.Color = [4]float32{r, g, bl, a}
	b.call("ClearColor(%g, %g, %g, %g)", r, g, bl, a)
}

func (b *Backend) Clear() {
	b.Clears++
	b.call("Clear()")
}

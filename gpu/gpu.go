// Copyright (c) 2026, The luGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu provides small helpers over an OpenGL-style graphics
// API: vertex layouts, growable meshes, shader programs and textures.
//
// All calls go through a [Backend], which is implemented for OpenGL
// in package glgpu and by a recording fake in package gputest.
// The graphics context is bound to one OS thread, so every function
// here must be called on the thread that created the window.
package gpu

// Backend is the set of graphics API calls used by this package.
// Handles are opaque non-zero identifiers; 0 means "none" and binding
// 0 unbinds the current object.
type Backend interface {
	// GenVertexArray creates a new vertex array object.
	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)

	// GenBuffer creates a new buffer object.
	GenBuffer() uint32

	// BindArrayBuffer binds the buffer as the current vertex data buffer.
	BindArrayBuffer(vbo uint32)

	// BufferData copies data into the currently bound vertex data buffer,
	// replacing any previous contents.
	BufferData(data []byte, usage BufferUsages)
	DeleteBuffer(vbo uint32)

	// VertexAttribPointer describes attribute slot index of the currently
	// bound vertex array as count elements of typ, starting offset bytes
	// into each vertex of stride bytes in the bound buffer.
	VertexAttribPointer(index uint32, count int, typ Types, normalized bool, stride, offset int)
	EnableVertexAttribArray(index uint32)

	// DrawArrays draws count vertices starting at first from the bound vertex array.
	DrawArrays(mode Primitives, first, count int)

	CreateShader(typ ShaderTypes) uint32

	// CompileShader sets the source of the shader and compiles it,
	// returning false and the info log on failure.
	CompileShader(shader uint32, src string) (ok bool, log string)
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)

	// LinkProgram links the program, returning false and the
	// info log on failure.
	LinkProgram(program uint32) (ok bool, log string)
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	// UniformLocation returns the location of the named uniform
	// in the program, or -1 if it does not exist.
	UniformLocation(program uint32, name string) int32

	// Uniform1i sets an integer (or sampler) uniform of the current program.
	Uniform1i(location int32, v int32)

	GenTexture() uint32

	// ActiveTexture selects the texture unit (0-based) that BindTexture2D affects.
	ActiveTexture(unit int)
	BindTexture2D(tex uint32)

	// TexFilters sets the sampling filters of the bound 2D texture.
	TexFilters(min, mag Filters)

	// TexImage2DRGBA uploads tightly packed 8-bit RGBA pixels
	// to the bound 2D texture.
	TexImage2DRGBA(width, height int, pix []byte)
	DeleteTexture(tex uint32)

	ClearColor(r, g, b, a float32)

	// Clear clears the color buffer of the current render target.
	Clear()
}

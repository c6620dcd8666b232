// Copyright (c) 2026, The luGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glgpu implements [gpu.Backend] on OpenGL 4.1 core profile.
// [Init] must be called once a context is current, before any other call.
package glgpu

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"lugl.org/lugl/gpu"
)

// Init loads the OpenGL function pointers for the current context.
func Init() error {
	return gl.Init()
}

// Version returns the OpenGL version string of the current context.
func Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// vertex attribute types; see [gpu.Types.IsAttrib].
var glTypes = map[gpu.Types]uint32{
	gpu.Byte:    gl.BYTE,
	gpu.UByte:   gl.UNSIGNED_BYTE,
	gpu.Short:   gl.SHORT,
	gpu.UShort:  gl.UNSIGNED_SHORT,
	gpu.Int:     gl.INT,
	gpu.UInt:    gl.UNSIGNED_INT,
	gpu.Float32: gl.FLOAT,
	gpu.Float64: gl.DOUBLE,
}

var glPrimitives = map[gpu.Primitives]uint32{
	gpu.Points:        gl.POINTS,
	gpu.Lines:         gl.LINES,
	gpu.LineLoop:      gl.LINE_LOOP,
	gpu.LineStrip:     gl.LINE_STRIP,
	gpu.Triangles:     gl.TRIANGLES,
	gpu.TriangleStrip: gl.TRIANGLE_STRIP,
	gpu.TriangleFan:   gl.TRIANGLE_FAN,
}

// compute shaders need OpenGL 4.3, so CreateShader returns 0 for them.
var glShaders = map[gpu.ShaderTypes]uint32{
	gpu.VertexShader:   gl.VERTEX_SHADER,
	gpu.FragmentShader: gl.FRAGMENT_SHADER,
	gpu.GeometryShader: gl.GEOMETRY_SHADER,
}

var glUsages = map[gpu.BufferUsages]uint32{
	gpu.StaticDraw:  gl.STATIC_DRAW,
	gpu.DynamicDraw: gl.DYNAMIC_DRAW,
	gpu.StreamDraw:  gl.STREAM_DRAW,
}

var glFilters = map[gpu.Filters]int32{
	gpu.Nearest: gl.NEAREST,
	gpu.Linear:  gl.LINEAR,
}

// Backend is the OpenGL [gpu.Backend]. It has no state of its own;
// all state lives in the current context.
type Backend struct{}

var _ gpu.Backend = (*Backend)(nil)

func (b *Backend) GenVertexArray() uint32 {
	var h uint32
	gl.GenVertexArrays(1, &h)
	return h
}

func (b *Backend) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

func (b *Backend) DeleteVertexArray(vao uint32) {
	gl.DeleteVertexArrays(1, &vao)
}

func (b *Backend) GenBuffer() uint32 {
	var h uint32
	gl.GenBuffers(1, &h)
	return h
}

func (b *Backend) BindArrayBuffer(vbo uint32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
}

func (b *Backend) BufferData(data []byte, usage gpu.BufferUsages) {
	if len(data) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, glUsages[usage])
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(data), gl.Ptr(data), glUsages[usage])
}

func (b *Backend) DeleteBuffer(vbo uint32) {
	gl.DeleteBuffers(1, &vbo)
}

func (b *Backend) VertexAttribPointer(index uint32, count int, typ gpu.Types, normalized bool, stride, offset int) {
	gl.VertexAttribPointerWithOffset(index, int32(count), glTypes[typ], normalized, int32(stride), uintptr(offset))
}

func (b *Backend) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (b *Backend) DrawArrays(mode gpu.Primitives, first, count int) {
	gl.DrawArrays(glPrimitives[mode], int32(first), int32(count))
}

func (b *Backend) CreateShader(typ gpu.ShaderTypes) uint32 {
	st, ok := glShaders[typ]
	if !ok {
		return 0
	}
	return gl.CreateShader(st)
}

func (b *Backend) CompileShader(shader uint32, src string) (bool, string) {
	csources, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status != gl.FALSE {
		return true, ""
	}
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	msg := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(msg))
	return false, strings.TrimRight(msg, "\x00")
}

func (b *Backend) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (b *Backend) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (b *Backend) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (b *Backend) LinkProgram(program uint32) (bool, string) {
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status != gl.FALSE {
		return true, ""
	}
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	msg := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(msg))
	return false, strings.TrimRight(msg, "\x00")
}

func (b *Backend) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (b *Backend) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (b *Backend) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (b *Backend) Uniform1i(location int32, v int32) {
	gl.Uniform1i(location, v)
}

func (b *Backend) GenTexture() uint32 {
	var h uint32
	gl.GenTextures(1, &h)
	return h
}

func (b *Backend) ActiveTexture(unit int) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
}

func (b *Backend) BindTexture2D(tex uint32) {
	gl.BindTexture(gl.TEXTURE_2D, tex)
}

func (b *Backend) TexFilters(min, mag gpu.Filters) {
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, glFilters[min])
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, glFilters[mag])
}

func (b *Backend) TexImage2DRGBA(width, height int, pix []byte) {
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
}

func (b *Backend) DeleteTexture(tex uint32) {
	gl.DeleteTextures(1, &tex)
}

func (b *Backend) ClearColor(r, g, bl, a float32) {
	gl.ClearColor(r, g, bl, a)
}

func (b *Backend) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

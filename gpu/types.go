// Copyright (c) 2026, The luGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

//go:generate core generate

// Types is a list of GPU element data types,
// as used for vertex attribute components.
type Types int32 //enums:enum

const (
	UndefType Types = iota
	Bool
	Byte
	UByte
	Short
	UShort
	Int
	UInt
	Float32
	Float64
)

var typeBytes = [...]int{0, 4, 1, 1, 2, 2, 4, 4, 4, 8}

// Bytes returns the number of bytes for one element of this type.
// It is 0 for UndefType and out-of-range values.
func (tp Types) Bytes() int {
	if tp < 0 || tp >= TypesN {
		return 0
	}
	return typeBytes[tp]
}

// Primitives are the kinds of primitives a mesh can be drawn as.
type Primitives int32 //enums:enum

const (
	Points Primitives = iota
	Lines
	LineLoop
	LineStrip
	Triangles
	TriangleStrip
	TriangleFan
)

// ShaderTypes are the kinds of shader stages.
type ShaderTypes int32 //enums:enum

const (
	VertexShader ShaderTypes = iota
	FragmentShader
	GeometryShader
	ComputeShader
)

// BufferUsages are hints for how buffer data will be used.
type BufferUsages int32 //enums:enum

const (
	// StaticDraw data is uploaded once and drawn many times.
	StaticDraw BufferUsages = iota

	// DynamicDraw data is uploaded repeatedly and drawn many times.
	DynamicDraw

	// StreamDraw data is uploaded once and drawn a few times.
	StreamDraw
)

// Filters are texture sampling filters.
type Filters int32 //enums:enum

const (
	Nearest Filters = iota
	Linear
)

// IsAttrib returns whether values of this type can be
// vertex attribute components.
func (tp Types) IsAttrib() bool {
	return tp >= Byte && tp <= Float64
}

// Copyright (c) 2026, The luGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"log/slog"
	"unsafe"

	"lugl.org/lugl/base/errors"
)

// InitialCapacity is the number of bytes allocated by the
// first [Mesh.AddBytes] on an empty mesh.
const InitialCapacity = 64

type bufferStates int32

const (
	bufferEmpty bufferStates = iota
	bufferAllocated
)

// Mesh accumulates raw interleaved vertex bytes on the CPU,
// uploads them to a GPU buffer with [Mesh.Send], and draws them
// with [Mesh.Render].
//
// The CPU buffer doubles in size as needed. [Mesh.FreeCPU] drops
// it after sending while keeping the byte count, so the mesh can
// still be rendered; [Mesh.Reset] drops it and zeroes the count.
type Mesh struct {
	gp      Backend
	stride  int
	handles Handles

	state  bufferStates
	data   []byte // len(data) is the capacity
	length int
}

// NewMesh returns an empty mesh for vertices of the given layout,
// creating its vertex array and buffer. An invalid layout is logged
// but the mesh is still created; a zero-stride mesh never draws.
func NewMesh(gp Backend, l Layout) *Mesh {
	errors.Log(l.Validate())
	ms := &Mesh{gp: gp}
	ms.stride, _ = DefineLayout(gp, l, &ms.handles)
	ms.unbind()
	return ms
}

// Stride returns the number of bytes per vertex.
func (ms *Mesh) Stride() int {
	return ms.stride
}

// Handles returns the GPU objects of the mesh.
func (ms *Mesh) Handles() Handles {
	return ms.handles
}

// Len returns the number of bytes written since the buffer was
// last allocated. It is not reset by [Mesh.FreeCPU].
func (ms *Mesh) Len() int {
	return ms.length
}

// Cap returns the number of bytes currently allocated on the CPU.
func (ms *Mesh) Cap() int {
	return len(ms.data)
}

// Allocated returns whether the mesh currently holds a CPU buffer.
func (ms *Mesh) Allocated() bool {
	return ms.state == bufferAllocated
}

// Bytes returns the bytes written so far, or nil if there is no
// CPU buffer. The slice aliases the mesh buffer until the next AddBytes.
func (ms *Mesh) Bytes() []byte {
	if ms.state != bufferAllocated {
		return nil
	}
	return ms.data[:ms.length]
}

// VertexCount returns the number of whole vertices written,
// ignoring any trailing partial vertex. It is 0 if the stride is 0.
func (ms *Mesh) VertexCount() int {
	if ms.stride <= 0 {
		return 0
	}
	return ms.length / ms.stride
}

// AddBytes appends src to the CPU buffer. It does nothing if the mesh
// is nil or src is empty. Appending to a mesh without a CPU buffer
// allocates [InitialCapacity] bytes and starts counting from 0.
func (ms *Mesh) AddBytes(src []byte) {
	if ms == nil || len(src) == 0 {
		return
	}
	if ms.state == bufferEmpty {
		ms.data = make([]byte, InitialCapacity)
		ms.length = 0
		ms.state = bufferAllocated
	}
	need := ms.length + len(src)
	if need > len(ms.data) {
		nc := len(ms.data)
		for need > nc {
			nc *= 2
		}
		nd := make([]byte, nc)
		copy(nd, ms.data[:ms.length])
		ms.data = nd
	}
	copy(ms.data[ms.length:], src)
	ms.length = need
}

// AddVertices appends the raw memory of the given vertices to the mesh.
// T must be a plain value type with no pointers, laid out to match the
// mesh layout, such as a struct of float32 arrays.
func AddVertices[T any](ms *Mesh, vs []T) {
	if len(vs) == 0 {
		return
	}
	var v T
	n := len(vs) * int(unsafe.Sizeof(v))
	ms.AddBytes(unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(vs))), n))
}

// Send uploads the bytes written so far to the GPU buffer as static
// draw data. It does nothing if there is no CPU buffer, for example
// after [Mesh.FreeCPU], leaving any earlier upload in place.
func (ms *Mesh) Send() {
	if ms == nil || ms.state != bufferAllocated {
		return
	}
	ms.bind()
	ms.gp.BufferData(ms.data[:ms.length], StaticDraw)
	ms.unbind()
	slog.Debug("gpu.Mesh: sent", "bytes", ms.length, "vertices", ms.VertexCount())
}

// FreeCPU releases the CPU buffer. The byte count is kept, so that
// [Mesh.Render] still draws what was sent; the next AddBytes starts
// a new buffer from 0.
func (ms *Mesh) FreeCPU() {
	if ms == nil {
		return
	}
	ms.data = nil
	ms.state = bufferEmpty
}

// Reset releases the CPU buffer and zeroes the byte count,
// so that the mesh draws nothing until more data is sent.
func (ms *Mesh) Reset() {
	if ms == nil {
		return
	}
	ms.FreeCPU()
	ms.length = 0
}

// Render draws [Mesh.VertexCount] vertices as the given primitive,
// using whatever program and textures are currently bound.
// Rendering a mesh that was never sent draws undefined data.
func (ms *Mesh) Render(mode Primitives) {
	if ms == nil {
		return
	}
	ms.bind()
	ms.gp.DrawArrays(mode, 0, ms.VertexCount())
	ms.unbind()
}

// Delete releases the CPU buffer and deletes the GPU objects.
// The mesh must not be used afterwards. It is safe to call more than once.
func (ms *Mesh) Delete() {
	if ms == nil {
		return
	}
	ms.FreeCPU()
	if ms.handles.VAO != 0 {
		ms.gp.DeleteVertexArray(ms.handles.VAO)
	}
	if ms.handles.VBO != 0 {
		ms.gp.DeleteBuffer(ms.handles.VBO)
	}
	ms.handles = Handles{}
}

func (ms *Mesh) bind() {
	ms.gp.BindVertexArray(ms.handles.VAO)
	ms.gp.BindArrayBuffer(ms.handles.VBO)
}

func (ms *Mesh) unbind() {
	ms.gp.BindVertexArray(0)
	ms.gp.BindArrayBuffer(0)
}

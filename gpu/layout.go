// Copyright (c) 2026, The luGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"lugl.org/lugl/base/errors"
)

// Component is one interleaved vertex attribute, such as a position
// or a texture coordinate: Count elements of Size bytes each,
// interpreted by the GPU as Type.
type Component struct {
	// Name is for diagnostics only; attribute slots are assigned by order.
	Name string

	// Type is the element type passed to the GPU.
	Type Types

	// Size is the size of one element in bytes.
	Size int

	// Count is the number of elements, e.g. 2 for a vec2.
	Count int
}

// NewComponent returns a Component of count elements of the given
// type, with Size set from [Types.Bytes].
func NewComponent(name string, typ Types, count int) Component {
	return Component{Name: name, Type: typ, Size: typ.Bytes(), Count: count}
}

// Bytes returns the number of bytes the component takes in each vertex.
func (c Component) Bytes() int {
	return c.Size * c.Count
}

// Layout describes how the attributes of one vertex are packed,
// in order, into an interleaved vertex buffer.
type Layout struct {
	Components []Component
}

// NewLayout returns a Layout of the given components.
// The components are copied.
func NewLayout(comps ...Component) Layout {
	return Layout{Components: append([]Component(nil), comps...)}
}

// Stride returns the number of bytes in one vertex.
func (l Layout) Stride() int {
	stride := 0
	for _, c := range l.Components {
		stride += c.Bytes()
	}
	return stride
}

// Offsets returns the byte offset of each component within a vertex.
func (l Layout) Offsets() []int {
	offs := make([]int, len(l.Components))
	off := 0
	for i, c := range l.Components {
		offs[i] = off
		off += c.Bytes()
	}
	return offs
}

// Validate returns an error if the layout has no components,
// or any component has a non-positive size or count or a type
// that cannot be a vertex attribute (see [Types.IsAttrib]).
func (l Layout) Validate() error {
	if len(l.Components) == 0 {
		return errors.New("gpu.Layout: no components")
	}
	var errs []error
	for i, c := range l.Components {
		if c.Size <= 0 || c.Count <= 0 {
			errs = append(errs, fmt.Errorf("gpu.Layout: component %d (%q) has size %d and count %d, both must be positive", i, c.Name, c.Size, c.Count))
		}
		if !c.Type.IsAttrib() {
			errs = append(errs, fmt.Errorf("gpu.Layout: component %d (%q) has type %v, which is not a vertex attribute type", i, c.Name, c.Type))
		}
	}
	return errors.Join(errs...)
}

// Handles are the GPU objects behind a vertex layout:
// the vertex array object and the vertex buffer object.
type Handles struct {
	VAO uint32
	VBO uint32
}

// DefineLayout recreates the vertex array and buffer in h, deleting any
// existing ones, and binds attribute slot i of the new vertex array to
// component i of the layout. Both objects are left bound.
// It returns the layout stride and component offsets.
// The layout is not validated; an empty layout has stride 0.
func DefineLayout(gp Backend, l Layout, h *Handles) (stride int, offsets []int) {
	if h.VBO != 0 {
		gp.DeleteBuffer(h.VBO)
	}
	h.VBO = gp.GenBuffer()
	gp.BindArrayBuffer(h.VBO)

	if h.VAO != 0 {
		gp.DeleteVertexArray(h.VAO)
	}
	h.VAO = gp.GenVertexArray()
	gp.BindVertexArray(h.VAO)

	stride = l.Stride()
	offsets = l.Offsets()
	for i, c := range l.Components {
		gp.VertexAttribPointer(uint32(i), c.Count, c.Type, false, stride, offsets[i])
		gp.EnableVertexAttribArray(uint32(i))
	}
	return stride, offsets
}

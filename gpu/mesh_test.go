// Copyright (c) 2026, The luGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu_test

import (
	"bytes"
	"encoding/binary"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lugl.org/lugl/gpu"
	"lugl.org/lugl/gpu/gputest"
)

type vertex struct {
	Pos      [2]float32
	TexCoord [2]float32
}

var quad = []vertex{
	{[2]float32{-1, 1}, [2]float32{0, 1}},
	{[2]float32{-1, -1}, [2]float32{0, 0}},
	{[2]float32{1, -1}, [2]float32{1, 0}},
	{[2]float32{1, 1}, [2]float32{1, 1}},
	{[2]float32{-1, 1}, [2]float32{0, 1}},
	{[2]float32{1, -1}, [2]float32{1, 0}},
}

func seq(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

// expectedCap is the smallest power-of-two multiple of the initial
// capacity that holds n bytes.
func expectedCap(n int) int {
	c := gpu.InitialCapacity
	for c < n {
		c *= 2
	}
	return c
}

func TestNewMesh(t *testing.T) {
	gp := gputest.New()
	ms := gpu.NewMesh(gp, posUVLayout())
	assert.Equal(t, 16, ms.Stride())
	assert.Equal(t, 0, ms.Len())
	assert.Equal(t, 0, ms.Cap())
	assert.False(t, ms.Allocated())
	assert.Nil(t, ms.Bytes())
	h := ms.Handles()
	assert.Contains(t, gp.VertexArrays, h.VAO)
	assert.Contains(t, gp.Buffers, h.VBO)
	assert.Zero(t, gp.BoundVAO)
	assert.Zero(t, gp.BoundVBO)
}

func TestAddBytesChunking(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		ms := gpu.NewMesh(gputest.New(), posUVLayout())
		var want []byte
		nchunks := rnd.Intn(20)
		for i := 0; i < nchunks; i++ {
			chunk := make([]byte, rnd.Intn(100))
			rnd.Read(chunk)
			want = append(want, chunk...)
			ms.AddBytes(chunk)
			require.LessOrEqual(t, ms.Len(), ms.Cap())
		}
		assert.Equal(t, len(want), ms.Len())
		if len(want) == 0 {
			assert.Equal(t, 0, ms.Cap())
			continue
		}
		assert.Equal(t, want, ms.Bytes())
		assert.Equal(t, expectedCap(len(want)), ms.Cap())
	}
}

func TestAddBytesGrowth(t *testing.T) {
	ms := gpu.NewMesh(gputest.New(), posUVLayout())
	ms.AddBytes([]byte{1})
	assert.Equal(t, 64, ms.Cap())
	ms.AddBytes(seq(63))
	assert.Equal(t, 64, ms.Cap())
	ms.AddBytes([]byte{2})
	assert.Equal(t, 128, ms.Cap())
	ms.AddBytes(seq(200))
	assert.Equal(t, 265, ms.Len())
	assert.Equal(t, 512, ms.Cap())

	b := ms.Bytes()
	assert.Equal(t, byte(1), b[0])
	assert.Equal(t, seq(63), b[1:64])
	assert.Equal(t, byte(2), b[64])
	assert.Equal(t, seq(200), b[65:])
}

func TestAddBytesEmpty(t *testing.T) {
	ms := gpu.NewMesh(gputest.New(), posUVLayout())
	ms.AddBytes(nil)
	ms.AddBytes([]byte{})
	assert.Equal(t, 0, ms.Len())
	assert.Equal(t, 0, ms.Cap())
	assert.False(t, ms.Allocated())

	ms.AddBytes(seq(10))
	ms.AddBytes(nil)
	assert.Equal(t, 10, ms.Len())
	assert.Equal(t, 64, ms.Cap())

	var nilMesh *gpu.Mesh
	assert.NotPanics(t, func() {
		nilMesh.AddBytes(seq(4))
		nilMesh.Send()
		nilMesh.FreeCPU()
		nilMesh.Reset()
		nilMesh.Render(gpu.Triangles)
		nilMesh.Delete()
	})
}

func TestSendUploadsWrittenBytes(t *testing.T) {
	gp := gputest.New()
	ms := gpu.NewMesh(gp, posUVLayout())
	gpu.AddVertices(ms, quad)
	require.Equal(t, 6*16, ms.Len())
	gp.Reset()
	ms.Send()

	vbo := ms.Handles().VBO
	got := gp.Buffers[vbo]
	assert.Equal(t, ms.Bytes(), got)
	assert.Len(t, got, 96)
	assert.Equal(t, []string{"BindVertexArray", "BindArrayBuffer", "BufferData", "BindVertexArray", "BindArrayBuffer"}, gp.CallNames())
	assert.Equal(t, "BufferData(96, 0)", gp.Calls[2])

	// vertex 2 is {{1, -1}, {1, 0}}
	v2 := got[2*16:]
	assert.Equal(t, float32(1), math.Float32frombits(binary.NativeEndian.Uint32(v2[0:])))
	assert.Equal(t, float32(-1), math.Float32frombits(binary.NativeEndian.Uint32(v2[4:])))
	assert.Equal(t, float32(1), math.Float32frombits(binary.NativeEndian.Uint32(v2[8:])))
	assert.Equal(t, float32(0), math.Float32frombits(binary.NativeEndian.Uint32(v2[12:])))
}

func TestSendWithoutData(t *testing.T) {
	gp := gputest.New()
	ms := gpu.NewMesh(gp, posUVLayout())
	gp.Reset()
	ms.Send()
	assert.Empty(t, gp.Calls)
}

func TestFreeCPUThenSend(t *testing.T) {
	gp := gputest.New()
	ms := gpu.NewMesh(gp, posUVLayout())
	data := seq(12)
	ms.AddBytes(data)
	ms.Send()
	vbo := ms.Handles().VBO
	require.Equal(t, data, gp.Buffers[vbo])

	ms.FreeCPU()
	assert.False(t, ms.Allocated())
	assert.Equal(t, 0, ms.Cap())
	assert.Equal(t, 12, ms.Len())
	assert.Nil(t, ms.Bytes())

	ms.Send()
	assert.Equal(t, 1, gp.Uploads[vbo])
	assert.Equal(t, data, gp.Buffers[vbo])
}

func TestFreeCPUThenAdd(t *testing.T) {
	ms := gpu.NewMesh(gputest.New(), posUVLayout())
	ms.AddBytes(seq(40))
	ms.FreeCPU()
	ms.AddBytes([]byte{9, 8, 7})
	assert.Equal(t, 3, ms.Len())
	assert.Equal(t, 64, ms.Cap())
	assert.Equal(t, []byte{9, 8, 7}, ms.Bytes())
}

func TestReset(t *testing.T) {
	gp := gputest.New()
	ms := gpu.NewMesh(gp, posUVLayout())
	gpu.AddVertices(ms, quad)
	ms.Send()
	ms.Reset()
	assert.Equal(t, 0, ms.Len())
	assert.Equal(t, 0, ms.Cap())
	assert.Equal(t, 0, ms.VertexCount())
	ms.Render(gpu.Triangles)
	require.Len(t, gp.Draws, 1)
	assert.Equal(t, 0, gp.Draws[0].Count)
}

func TestRenderVertexCount(t *testing.T) {
	gp := gputest.New()
	ms := gpu.NewMesh(gp, posUVLayout())
	ms.AddBytes(seq(50))
	ms.Send()
	assert.Equal(t, 3, ms.VertexCount())

	gp.Reset()
	ms.Render(gpu.TriangleStrip)
	require.Len(t, gp.Draws, 1)
	assert.Equal(t, gputest.Draw{VAO: ms.Handles().VAO, Mode: gpu.TriangleStrip, First: 0, Count: 3}, gp.Draws[0])
	assert.Zero(t, gp.BoundVAO)
	assert.Zero(t, gp.BoundVBO)
}

func TestRenderAfterFreeCPU(t *testing.T) {
	gp := gputest.New()
	ms := gpu.NewMesh(gp, posUVLayout())
	gpu.AddVertices(ms, quad)
	ms.Send()
	ms.FreeCPU()
	ms.Render(gpu.Triangles)
	ms.Render(gpu.Triangles)
	require.Len(t, gp.Draws, 2)
	assert.Equal(t, 6, gp.Draws[1].Count)
}

func TestZeroStride(t *testing.T) {
	gp := gputest.New()
	ms := gpu.NewMesh(gp, gpu.Layout{})
	ms.AddBytes(seq(32))
	assert.Equal(t, 0, ms.Stride())
	assert.Equal(t, 0, ms.VertexCount())
	assert.NotPanics(t, func() { ms.Render(gpu.Points) })
	assert.Equal(t, 0, gp.Draws[0].Count)
}

func TestDelete(t *testing.T) {
	gp := gputest.New()
	ms := gpu.NewMesh(gp, posUVLayout())
	h := ms.Handles()
	gpu.AddVertices(ms, quad)
	ms.Send()
	ms.FreeCPU()
	ms.Delete()
	assert.NotContains(t, gp.VertexArrays, h.VAO)
	assert.NotContains(t, gp.Buffers, h.VBO)
	assert.Equal(t, gpu.Handles{}, ms.Handles())

	gp.Reset()
	ms.Delete()
	assert.Empty(t, gp.Calls)
}

func TestAddVertices(t *testing.T) {
	ms := gpu.NewMesh(gputest.New(), posUVLayout())
	gpu.AddVertices[vertex](ms, nil)
	assert.Equal(t, 0, ms.Len())

	gpu.AddVertices(ms, quad[:1])
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.NativeEndian, quad[0]))
	assert.Equal(t, buf.Bytes(), ms.Bytes())
}

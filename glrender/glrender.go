// Package glrender implements the batch.Backend interface on OpenGL 4.1
// core: vertex data goes into a VAO/VBO pair (plus an element buffer for
// indexed meshes) and draws map to glDrawArrays/glDrawElements.
//
// All methods require a current OpenGL context on the calling thread.
package glrender

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/gogpu/gl3d"
	"github.com/gogpu/gl3d/batch"
)

// Backend is the OpenGL implementation of batch.Backend.
type Backend struct{}

var _ batch.Backend = (*Backend)(nil)

// New returns an OpenGL backend. gl.Init must have been called on a
// current context before any buffers are created.
func New() *Backend { return &Backend{} }

// buffers holds one vertex array object with its vertex buffer and an
// optional element buffer.
type buffers struct {
	vao uint32
	vbo uint32
	ebo uint32
}

// Release deletes the GL objects. Safe to call more than once.
func (b *buffers) Release() {
	if b.vao == 0 {
		return
	}
	gl.DeleteVertexArrays(1, &b.vao)
	gl.DeleteBuffers(1, &b.vbo)
	if b.ebo != 0 {
		gl.DeleteBuffers(1, &b.ebo)
	}
	b.vao, b.vbo, b.ebo = 0, 0, 0
}

// CreateBuffers uploads a non-indexed vertex stream.
func (be *Backend) CreateBuffers(verts []gl3d.Vertex) (batch.Buffers, error) {
	return be.create(verts, nil)
}

// CreateIndexedBuffers uploads a vertex stream with an element buffer.
func (be *Backend) CreateIndexedBuffers(verts []gl3d.Vertex, indices []uint32) (batch.Buffers, error) {
	return be.create(verts, indices)
}

func (be *Backend) create(verts []gl3d.Vertex, indices []uint32) (batch.Buffers, error) {
	// Clear any stale error so the check below reports only this upload.
	for gl.GetError() != gl.NO_ERROR {
	}

	b := &buffers{}
	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*gl3d.VertexStride, gl.Ptr(verts), gl.STATIC_DRAW)

	// Interleaved layout: position at offset 0, color right after it.
	const colorOffset = 3 * 4
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(gl3d.VertexStride), 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, int32(gl3d.VertexStride), colorOffset)

	if len(indices) > 0 {
		gl.GenBuffers(1, &b.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	if b.ebo != 0 {
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
	}

	if errno := gl.GetError(); errno != gl.NO_ERROR {
		b.Release()
		return nil, fmt.Errorf("gl3d: buffer upload failed: gl error 0x%04x", errno)
	}
	return b, nil
}

// Draw issues one glDrawArrays call for the whole vertex stream.
func (be *Backend) Draw(buf batch.Buffers, prim gl3d.Primitive, count int) {
	b := buf.(*buffers)
	gl.BindVertexArray(b.vao)
	gl.DrawArrays(glPrim(prim), 0, int32(count))
	gl.BindVertexArray(0)
}

// DrawIndexed issues one glDrawElements call over the element buffer.
func (be *Backend) DrawIndexed(buf batch.Buffers, prim gl3d.Primitive, count int) {
	b := buf.(*buffers)
	gl.BindVertexArray(b.vao)
	gl.DrawElementsWithOffset(glPrim(prim), int32(count), gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

func glPrim(p gl3d.Primitive) uint32 {
	switch p {
	case gl3d.Points:
		return gl.POINTS
	case gl3d.Lines:
		return gl.LINES
	default:
		return gl.TRIANGLES
	}
}

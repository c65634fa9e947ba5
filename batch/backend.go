// Package batch implements the batch rendering pipeline: geometry
// instances added with per-instance transforms are transformed on the
// CPU, merged into one combined vertex/index buffer per primitive class,
// and submitted with exactly one draw command per non-empty batch.
//
// The package talks to the GPU through the [Backend] interface, so the
// pipeline can run against a real OpenGL backend (glrender) or a test
// double without a graphics context.
package batch

import "github.com/gogpu/gl3d"

// Buffers is an opaque handle to device buffers created by a Backend.
// A handle is exclusively owned by the batch that created it.
type Buffers interface {
	// Release frees the underlying device resources. Release must be
	// safe to call more than once.
	Release()
}

// Backend is the GPU buffer and draw-submission collaborator.
//
// Implementations must size device buffers exactly to the data passed in
// and must bind, draw and restore prior binding state inside Draw and
// DrawIndexed. The batch pipeline never issues more than one draw per
// built batch.
type Backend interface {
	// CreateBuffers materializes device buffers for a non-indexed
	// vertex stream.
	CreateBuffers(verts []gl3d.Vertex) (Buffers, error)

	// CreateIndexedBuffers materializes device buffers for an indexed
	// vertex stream. Indices are valid against verts.
	CreateIndexedBuffers(verts []gl3d.Vertex, indices []uint32) (Buffers, error)

	// Draw issues one non-indexed draw command covering count vertices.
	Draw(buf Buffers, prim gl3d.Primitive, count int)

	// DrawIndexed issues one indexed draw command covering count indices.
	DrawIndexed(buf Buffers, prim gl3d.Primitive, count int)
}

package batch

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/gl3d"
)

// Renderer owns one batch per primitive class and the draw-call counter.
// It is the surface the rest of the engine talks to: add instances per
// frame (or once for a static scene), then Flush to draw everything with
// at most one draw command per primitive class.
//
// A Renderer is designed for a single-threaded render loop; it performs
// no internal locking.
type Renderer struct {
	backend Backend
	batches []*Batch // indexed by gl3d.Primitive

	drawCalls int
}

// NewRenderer creates a renderer with one empty batch per primitive
// class, all drawing through the given backend. Options apply to every
// batch.
func NewRenderer(backend Backend, opts ...Option) *Renderer {
	prims := gl3d.Primitives()
	batches := make([]*Batch, len(prims))
	for _, p := range prims {
		batches[p] = New(p, backend, opts...)
	}
	return &Renderer{backend: backend, batches: batches}
}

// Add appends one geometry instance to the batch for prim.
// It returns an error for an unknown primitive class.
func (r *Renderer) Add(prim gl3d.Primitive, mesh gl3d.Mesh, transform mgl32.Mat4) error {
	if !prim.Valid() {
		return fmt.Errorf("gl3d: add geometry: unknown primitive %d", prim)
	}
	r.batches[prim].Add(mesh, transform)
	return nil
}

// Batch returns the batch for a primitive class, or nil for an unknown
// class. Useful for per-batch operations (Clear, Build, Flush) when the
// caller manages primitive classes individually.
func (r *Renderer) Batch(prim gl3d.Primitive) *Batch {
	if !prim.Valid() {
		return nil
	}
	return r.batches[prim]
}

// Clear empties every batch. Device buffers are reused on the next build
// rather than freed.
func (r *Renderer) Clear() {
	for _, b := range r.batches {
		b.Clear()
	}
}

// Flush builds every dirty batch and submits each non-empty one with
// exactly one draw command, in primitive declaration order. Draw commands
// issued are added to the draw-call counter.
//
// Per-batch failures (degenerate transform, capacity, mixed indexing) do
// not stop the flush: remaining batches are still submitted and the
// errors are joined into the return value.
func (r *Renderer) Flush() error {
	var errs []error
	for _, b := range r.batches {
		drawn, err := b.Flush()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if drawn {
			r.drawCalls++
		}
	}
	return errors.Join(errs...)
}

// DrawCalls returns the number of draw commands issued since the last
// ResetDrawCalls. The render loop forwards this to the performance
// recorder once per frame.
func (r *Renderer) DrawCalls() int { return r.drawCalls }

// ResetDrawCalls zeroes the draw-call counter. Call once per frame.
func (r *Renderer) ResetDrawCalls() { r.drawCalls = 0 }

// Release frees all device buffers owned by the renderer's batches.
func (r *Renderer) Release() {
	for _, b := range r.batches {
		b.Release()
	}
}

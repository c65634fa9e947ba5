package batch

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/gl3d"
)

// transformFunc applies a model transform to a vertex block. It exists as
// an indirection point so tests can observe how often the transform step
// runs; production code always uses gl3d.TransformVertices.
type transformFunc func([]gl3d.Vertex, mgl32.Mat4) ([]gl3d.Vertex, error)

// entry is one pending geometry instance in a batch: a deep copy of the
// caller's mesh plus its model transform. Offset and count fields are
// assigned during build and are meaningless before the first build.
type entry struct {
	mesh      gl3d.Mesh
	transform mgl32.Mat4

	vertexOffset int
	vertexCount  int
	indexOffset  int
	indexCount   int
}

// Batch accumulates geometry instances of a single primitive class and
// merges them into one combined vertex/index buffer pair.
//
// Mutations (Add, Clear) mark the batch dirty; the combined buffers are
// rebuilt lazily on the next Flush. Between a build and the next mutation
// the built state is stable: building again is a no-op.
//
// A Batch is not safe for concurrent use.
type Batch struct {
	prim    gl3d.Primitive
	backend Backend
	opts    options

	entries []entry
	dirty   bool
	built   bool

	// Built state, valid only while built is true.
	combinedVerts   []gl3d.Vertex
	combinedIndices []uint32
	indexed         bool
	buffers         Buffers

	transform transformFunc
}

// New creates an empty batch for one primitive class drawing through the
// given backend.
func New(prim gl3d.Primitive, backend Backend, opts ...Option) *Batch {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Batch{
		prim:      prim,
		backend:   backend,
		opts:      o,
		entries:   make([]entry, 0, o.capacity),
		transform: gl3d.TransformVertices,
	}
}

// Primitive returns the primitive class this batch draws.
func (b *Batch) Primitive() gl3d.Primitive { return b.prim }

// Len returns the number of accumulated entries.
func (b *Batch) Len() int { return len(b.entries) }

// Add appends one geometry instance with its model transform.
//
// The mesh is deep-copied and the transform is copied by value, so the
// caller's buffers remain independently mutable afterwards. Meshes with
// no vertices are ignored. Add marks the batch dirty.
func (b *Batch) Add(mesh gl3d.Mesh, transform mgl32.Mat4) {
	if len(mesh.Vertices) == 0 {
		return
	}
	m := mesh.Clone()
	b.entries = append(b.entries, entry{
		mesh:        m,
		transform:   transform,
		vertexCount: len(m.Vertices),
		indexCount:  len(m.Indices),
	})
	b.dirty = true
}

// Clear empties the entry list and marks the batch dirty. Previously
// built buffers are treated as stale; the device resources are released
// on the next build (or immediately if the batch is never rebuilt before
// Release).
func (b *Batch) Clear() {
	b.entries = b.entries[:0]
	b.dirty = true
}

// Release frees the batch's device buffers and discards built state.
func (b *Batch) Release() {
	if b.buffers != nil {
		b.buffers.Release()
		b.buffers = nil
	}
	b.combinedVerts = nil
	b.combinedIndices = nil
	b.built = false
	b.dirty = len(b.entries) > 0
}

// VertexCount returns the combined vertex count of the last build.
func (b *Batch) VertexCount() int { return len(b.combinedVerts) }

// IndexCount returns the combined index count of the last build.
func (b *Batch) IndexCount() int { return len(b.combinedIndices) }

// Build transforms and merges all pending entries into one combined
// buffer pair and hands it to the backend. Build is idempotent: if the
// batch is clean and already built it returns immediately without
// re-running the transform step.
//
// Entries are processed in insertion order, never reordered. Each entry's
// vertex block is transformed by its own matrix, vertex offsets are
// assigned contiguously, and in indexed mode every index is re-based by
// its entry's vertex offset so it stays valid against the concatenated
// vertex buffer.
//
// Build fails with ErrMixedIndexing if entries inconsistently carry
// indices, with a *CapacityError if the combined vertex count exceeds the
// configured maximum, and with gl3d.ErrDegenerateTransform if a transform
// maps a vertex to homogeneous w = 0. A failed build leaves the batch
// dirty; other batches are unaffected.
func (b *Batch) Build() error {
	if !b.dirty && b.built {
		return nil
	}

	if len(b.entries) == 0 {
		// Empty built state: zero counts, stale device buffers released.
		if b.buffers != nil {
			b.buffers.Release()
			b.buffers = nil
		}
		b.combinedVerts = nil
		b.combinedIndices = nil
		b.indexed = false
		b.dirty = false
		b.built = true
		return nil
	}

	indexedEntries := 0
	totalVerts := 0
	totalIndices := 0
	for i := range b.entries {
		if b.entries[i].mesh.Indexed() {
			indexedEntries++
		}
		totalVerts += b.entries[i].vertexCount
		totalIndices += b.entries[i].indexCount
	}
	if indexedEntries != 0 && indexedEntries != len(b.entries) {
		return fmt.Errorf("%w (%s: %d of %d entries indexed)",
			ErrMixedIndexing, b.prim, indexedEntries, len(b.entries))
	}
	indexed := indexedEntries == len(b.entries)

	if totalVerts > b.opts.maxVertices {
		return &CapacityError{Primitive: b.prim, Vertices: totalVerts, Max: b.opts.maxVertices}
	}

	combined := make([]gl3d.Vertex, 0, totalVerts)
	vertexOffset := 0
	for i := range b.entries {
		e := &b.entries[i]
		transformed, err := b.transform(e.mesh.Vertices, e.transform)
		if err != nil {
			return fmt.Errorf("batch %s entry %d: %w", b.prim, i, err)
		}
		e.vertexOffset = vertexOffset
		vertexOffset += e.vertexCount
		combined = append(combined, transformed...)
	}

	var combinedIndices []uint32
	if indexed {
		combinedIndices = make([]uint32, 0, totalIndices)
		indexOffset := 0
		for i := range b.entries {
			e := &b.entries[i]
			e.indexOffset = indexOffset
			indexOffset += e.indexCount
			base := uint32(e.vertexOffset)
			for _, idx := range e.mesh.Indices {
				combinedIndices = append(combinedIndices, idx+base)
			}
		}
	}

	var (
		buffers Buffers
		err     error
	)
	if indexed {
		buffers, err = b.backend.CreateIndexedBuffers(combined, combinedIndices)
	} else {
		buffers, err = b.backend.CreateBuffers(combined)
	}
	if err != nil {
		return fmt.Errorf("batch %s: create buffers: %w", b.prim, err)
	}
	if b.buffers != nil {
		b.buffers.Release()
	}
	b.buffers = buffers
	b.combinedVerts = combined
	b.combinedIndices = combinedIndices
	b.indexed = indexed
	b.dirty = false
	b.built = true

	gl3d.Logger().Debug("batch built",
		"primitive", b.prim.String(),
		"entries", len(b.entries),
		"vertices", len(combined),
		"indices", len(combinedIndices),
	)
	return nil
}

// Flush builds the batch if it is dirty and submits it with at most one
// draw command. It reports whether a draw command was issued: a batch
// whose combined vertex count is zero is skipped entirely.
func (b *Batch) Flush() (drawn bool, err error) {
	if b.dirty || !b.built {
		if err := b.Build(); err != nil {
			return false, err
		}
	}
	if len(b.combinedVerts) == 0 {
		return false, nil
	}
	if b.indexed {
		b.backend.DrawIndexed(b.buffers, b.prim, len(b.combinedIndices))
	} else {
		b.backend.Draw(b.buffers, b.prim, len(b.combinedVerts))
	}
	return true, nil
}

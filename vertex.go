package gl3d

import "github.com/go-gl/mathgl/mgl32"

// VertexFloats is the number of float32 components per vertex record:
// three for position followed by three for color. The in-memory layout of
// a []Vertex is exactly this interleaved stream, so a backend can upload
// it without repacking.
const VertexFloats = 6

// VertexStride is the size of one vertex record in bytes.
const VertexStride = VertexFloats * 4

// Vertex is a single position+color vertex record.
type Vertex struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
}

// V constructs a vertex from position and color components.
func V(x, y, z, r, g, b float32) Vertex {
	return Vertex{Position: mgl32.Vec3{x, y, z}, Color: mgl32.Vec3{r, g, b}}
}

// RGB constructs a color vector from its components.
func RGB(r, g, b float32) mgl32.Vec3 { return mgl32.Vec3{r, g, b} }

// Mesh is one geometry instance in its own local space: a vertex block
// and an optional index block. Indices are 0-based and local to Vertices.
// A nil Indices slice marks the mesh as non-indexed (vertices are drawn
// sequentially).
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// Indexed reports whether the mesh carries an index block.
func (m Mesh) Indexed() bool { return m.Indices != nil }

// Clone returns a deep copy of the mesh. The copy shares no storage with
// the original, so either side may be mutated independently afterwards.
func (m Mesh) Clone() Mesh {
	out := Mesh{}
	if m.Vertices != nil {
		out.Vertices = make([]Vertex, len(m.Vertices))
		copy(out.Vertices, m.Vertices)
	}
	if m.Indices != nil {
		out.Indices = make([]uint32, len(m.Indices))
		copy(out.Indices, m.Indices)
	}
	return out
}

package gl3d

// Primitive is the topology the GPU uses to interpret a vertex stream.
// A batch is homogeneous in Primitive: instances of different primitives
// are merged into different batches.
type Primitive uint8

const (
	// Points renders each vertex as an individual point.
	Points Primitive = iota
	// Lines renders each consecutive vertex pair as a line segment.
	Lines
	// Triangles renders each consecutive vertex triple as a triangle.
	Triangles

	numPrimitives
)

// Primitives returns all primitive classes in declaration order.
func Primitives() []Primitive {
	return []Primitive{Points, Lines, Triangles}
}

// Valid reports whether p is a known primitive class.
func (p Primitive) Valid() bool { return p < numPrimitives }

// String returns the primitive name for logs and error messages.
func (p Primitive) String() string {
	switch p {
	case Points:
		return "points"
	case Lines:
		return "lines"
	case Triangles:
		return "triangles"
	default:
		return "unknown"
	}
}

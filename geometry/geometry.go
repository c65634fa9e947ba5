// Package geometry provides generators for the basic shapes the engine
// draws: cubes, spheres, rectangles, grids, axes and point clouds.
//
// Every generator returns a fresh [gl3d.Mesh] in the shape's local space
// with color baked in per call. Color is a parameter, never shared
// mutable state: generating two cubes with different colors never
// touches the same storage.
package geometry

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/gl3d"
)

// Provider is the capability every geometry source implements: it
// produces a vertex block (plus optional index block) for one instance
// in its own local space, and names the primitive class it is drawn as.
type Provider interface {
	Primitive() gl3d.Primitive
	Mesh() gl3d.Mesh
}

// Shape is the simplest Provider: a mesh paired with its primitive class.
type Shape struct {
	Class gl3d.Primitive
	Data  gl3d.Mesh
}

// Primitive returns the primitive class the shape is drawn as.
func (s Shape) Primitive() gl3d.Primitive { return s.Class }

// Mesh returns the shape's mesh.
func (s Shape) Mesh() gl3d.Mesh { return s.Data }

// Cube returns an indexed unit cube scaled to the given edge length,
// centered on the origin: 8 vertices and 36 indices (12 triangles).
func Cube(size float32, color mgl32.Vec3) gl3d.Mesh {
	h := size / 2
	corners := [8]mgl32.Vec3{
		{-h, -h, -h}, {h, -h, -h}, {h, h, -h}, {-h, h, -h},
		{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h},
	}
	verts := make([]gl3d.Vertex, 8)
	for i, p := range corners {
		verts[i] = gl3d.Vertex{Position: p, Color: color}
	}
	indices := []uint32{
		4, 5, 6, 6, 7, 4, // front (+z)
		1, 0, 3, 3, 2, 1, // back (-z)
		0, 4, 7, 7, 3, 0, // left (-x)
		5, 1, 2, 2, 6, 5, // right (+x)
		7, 6, 2, 2, 3, 7, // top (+y)
		0, 1, 5, 5, 4, 0, // bottom (-y)
	}
	return gl3d.Mesh{Vertices: verts, Indices: indices}
}

// Rectangle returns an indexed rectangle in the XY plane, centered on
// the origin: 4 vertices and 6 indices.
func Rectangle(width, height float32, color mgl32.Vec3) gl3d.Mesh {
	hw, hh := width/2, height/2
	verts := []gl3d.Vertex{
		{Position: mgl32.Vec3{-hw, -hh, 0}, Color: color},
		{Position: mgl32.Vec3{hw, -hh, 0}, Color: color},
		{Position: mgl32.Vec3{hw, hh, 0}, Color: color},
		{Position: mgl32.Vec3{-hw, hh, 0}, Color: color},
	}
	return gl3d.Mesh{Vertices: verts, Indices: []uint32{0, 1, 2, 2, 3, 0}}
}

// PointCloud returns a non-indexed points mesh with one vertex per
// position, all in the given color.
func PointCloud(positions []mgl32.Vec3, color mgl32.Vec3) gl3d.Mesh {
	verts := make([]gl3d.Vertex, len(positions))
	for i, p := range positions {
		verts[i] = gl3d.Vertex{Position: p, Color: color}
	}
	return gl3d.Mesh{Vertices: verts}
}

// Axes returns a non-indexed lines mesh with the three coordinate axes
// from the origin: +X red, +Y green, +Z blue.
func Axes(length float32) gl3d.Mesh {
	return gl3d.Mesh{Vertices: []gl3d.Vertex{
		gl3d.V(0, 0, 0, 1, 0, 0), gl3d.V(length, 0, 0, 1, 0, 0),
		gl3d.V(0, 0, 0, 0, 1, 0), gl3d.V(0, length, 0, 0, 1, 0),
		gl3d.V(0, 0, 0, 0, 0, 1), gl3d.V(0, 0, length, 0, 0, 1),
	}}
}

// Grid returns a non-indexed lines mesh forming a square grid in the XZ
// plane, centered on the origin. halfExtent is the distance from the
// center to each edge and step the spacing between lines.
func Grid(halfExtent, step float32, color mgl32.Vec3) gl3d.Mesh {
	if halfExtent <= 0 || step <= 0 {
		return gl3d.Mesh{}
	}
	var verts []gl3d.Vertex
	for d := -halfExtent; d <= halfExtent; d += step {
		// Line parallel to X at z = d, and parallel to Z at x = d.
		verts = append(verts,
			gl3d.Vertex{Position: mgl32.Vec3{-halfExtent, 0, d}, Color: color},
			gl3d.Vertex{Position: mgl32.Vec3{halfExtent, 0, d}, Color: color},
			gl3d.Vertex{Position: mgl32.Vec3{d, 0, -halfExtent}, Color: color},
			gl3d.Vertex{Position: mgl32.Vec3{d, 0, halfExtent}, Color: color},
		)
	}
	return gl3d.Mesh{Vertices: verts}
}

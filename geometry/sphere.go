package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/gl3d"
)

// Sphere returns an indexed UV sphere centered on the origin.
// rings is the number of latitudinal subdivisions and sectors the number
// of longitudinal ones; both are clamped to a minimum of 3. The mesh has
// (rings+1)*(sectors+1) vertices and rings*sectors*6 indices.
func Sphere(radius float32, rings, sectors int, color mgl32.Vec3) gl3d.Mesh {
	if rings < 3 {
		rings = 3
	}
	if sectors < 3 {
		sectors = 3
	}

	verts := make([]gl3d.Vertex, 0, (rings+1)*(sectors+1))
	for r := 0; r <= rings; r++ {
		// Latitude from +pi/2 (north pole) down to -pi/2.
		lat := math32.Pi/2 - math32.Pi*float32(r)/float32(rings)
		y := radius * math32.Sin(lat)
		ringRadius := radius * math32.Cos(lat)
		for s := 0; s <= sectors; s++ {
			lon := 2 * math32.Pi * float32(s) / float32(sectors)
			verts = append(verts, gl3d.Vertex{
				Position: mgl32.Vec3{
					ringRadius * math32.Cos(lon),
					y,
					ringRadius * math32.Sin(lon),
				},
				Color: color,
			})
		}
	}

	indices := make([]uint32, 0, rings*sectors*6)
	stride := uint32(sectors + 1)
	for r := 0; r < rings; r++ {
		for s := 0; s < sectors; s++ {
			a := uint32(r)*stride + uint32(s)
			b := a + stride
			indices = append(indices,
				a, b, a+1,
				a+1, b, b+1,
			)
		}
	}

	return gl3d.Mesh{Vertices: verts, Indices: indices}
}

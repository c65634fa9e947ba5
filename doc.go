// Package gl3d provides a small OpenGL 3D rendering library for Go.
//
// # Overview
//
// gl3d is built around a batch rendering pipeline: many independently
// transformed geometry instances are transformed on the CPU, merged into
// one vertex/index buffer per primitive class, and submitted to the GPU
// with a single draw call per class. The package tree also carries the
// supporting pieces a small engine needs: geometry generators, cameras,
// shader programs, a GLFW window wrapper and frame instrumentation.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/gl3d"
//	    "github.com/gogpu/gl3d/batch"
//	    "github.com/gogpu/gl3d/geometry"
//	    "github.com/gogpu/gl3d/glrender"
//	)
//
//	r := batch.NewRenderer(glrender.New())
//	cube := geometry.Cube(1, gl3d.RGB(1, 0, 0))
//	for _, m := range instanceTransforms {
//	    r.Add(gl3d.Triangles, cube, m)
//	}
//	if err := r.Flush(); err != nil {
//	    // degenerate transform, capacity overflow or mixed indexing
//	}
//
// # Architecture
//
// The library is organized into:
//   - Root: Vertex, Mesh, Primitive, TransformVertices, shared logger
//   - batch: accumulation, build (transform + merge) and draw submission
//   - perf: frame/operation timing and draw-call statistics
//   - geometry, camera, shader, window, glrender, overlay: collaborators
//
// # Coordinate System
//
// Right-handed OpenGL coordinates. Transforms are 4x4 float32 matrices in
// column-vector convention: world = M * local.
//
// # Concurrency
//
// All types are designed for a single-threaded render loop. No method is
// safe for concurrent use without external synchronization.
package gl3d

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)

// Package camera provides the view/projection matrix sources for the
// render loop: a 3D perspective look-at camera, a 2D orthographic camera
// and an orbit controller that drives the 3D camera from pointer input.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is any source of view and projection matrices.
type Camera interface {
	View() mgl32.Mat4
	Projection() mgl32.Mat4
}

// Perspective camera defaults.
const (
	DefaultFOV  = 45.0
	DefaultNear = 0.1
	DefaultFar  = 100.0
)

// Perspective is a 3D look-at camera with a perspective projection.
// Matrices are cached and recomputed on mutation.
type Perspective struct {
	position mgl32.Vec3
	target   mgl32.Vec3
	up       mgl32.Vec3

	fov    float32 // vertical field of view, degrees
	near   float32
	far    float32
	width  int
	height int

	view mgl32.Mat4
	proj mgl32.Mat4
}

// NewPerspective creates a camera at (0, 0, 5) looking at the origin
// with +Y up, a 45 degree field of view and 0.1/100 clip planes.
func NewPerspective(width, height int) *Perspective {
	c := &Perspective{
		position: mgl32.Vec3{0, 0, 5},
		target:   mgl32.Vec3{0, 0, 0},
		up:       mgl32.Vec3{0, 1, 0},
		fov:      DefaultFOV,
		near:     DefaultNear,
		far:      DefaultFar,
		width:    width,
		height:   height,
	}
	c.updateView()
	c.updateProjection()
	return c
}

// View returns the view matrix (world to camera space).
func (c *Perspective) View() mgl32.Mat4 { return c.view }

// Projection returns the projection matrix (camera to clip space).
func (c *Perspective) Projection() mgl32.Mat4 { return c.proj }

// Position returns the camera position.
func (c *Perspective) Position() mgl32.Vec3 { return c.position }

// Target returns the point the camera looks at.
func (c *Perspective) Target() mgl32.Vec3 { return c.target }

// FOV returns the vertical field of view in degrees.
func (c *Perspective) FOV() float32 { return c.fov }

// Aspect returns the viewport aspect ratio.
func (c *Perspective) Aspect() float32 {
	if c.height <= 0 {
		return 1
	}
	return float32(c.width) / float32(c.height)
}

// SetPosition moves the camera.
func (c *Perspective) SetPosition(p mgl32.Vec3) {
	c.position = p
	c.updateView()
}

// SetTarget changes the point the camera looks at.
func (c *Perspective) SetTarget(t mgl32.Vec3) {
	c.target = t
	c.updateView()
}

// SetUp changes the camera's up vector.
func (c *Perspective) SetUp(up mgl32.Vec3) {
	c.up = up
	c.updateView()
}

// SetFOV sets the vertical field of view in degrees, clamped to [1, 179].
func (c *Perspective) SetFOV(deg float32) {
	c.fov = clamp(deg, 1, 179)
	c.updateProjection()
}

// SetClipPlanes sets the near and far clip distances.
func (c *Perspective) SetClipPlanes(near, far float32) {
	c.near = near
	c.far = far
	c.updateProjection()
}

// SetViewport updates the viewport size and recomputes the aspect ratio.
func (c *Perspective) SetViewport(width, height int) {
	c.width = width
	c.height = height
	c.updateProjection()
}

// Translate pans the camera: position and target move together so the
// viewing direction is preserved.
func (c *Perspective) Translate(d mgl32.Vec3) {
	c.position = c.position.Add(d)
	c.target = c.target.Add(d)
	c.updateView()
}

// SetOrbit places the camera on a sphere around its target. Azimuth and
// elevation are in degrees; distance is the sphere radius.
func (c *Perspective) SetOrbit(azimuth, elevation, distance float32) {
	az := mgl32.DegToRad(azimuth)
	el := mgl32.DegToRad(elevation)
	offset := mgl32.Vec3{
		distance * math32.Cos(el) * math32.Sin(az),
		distance * math32.Sin(el),
		distance * math32.Cos(el) * math32.Cos(az),
	}
	c.position = c.target.Add(offset)
	c.updateView()
}

func (c *Perspective) updateView() {
	c.view = mgl32.LookAtV(c.position, c.target, c.up)
}

func (c *Perspective) updateProjection() {
	c.proj = mgl32.Perspective(mgl32.DegToRad(c.fov), c.Aspect(), c.near, c.far)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package camera

import "github.com/go-gl/mathgl/mgl32"

// Orthographic is a 2D camera with pan and zoom over an orthographic
// projection. At zoom 1 the view spans two world units vertically,
// scaled horizontally by the aspect ratio.
type Orthographic struct {
	x, y   float32
	zoom   float32
	width  int
	height int

	view mgl32.Mat4
	proj mgl32.Mat4
}

const minZoom = 0.01

// NewOrthographic creates a 2D camera centered on the origin at zoom 1.
func NewOrthographic(width, height int) *Orthographic {
	c := &Orthographic{zoom: 1, width: width, height: height}
	c.updateView()
	c.updateProjection()
	return c
}

// View returns the view matrix.
func (c *Orthographic) View() mgl32.Mat4 { return c.view }

// Projection returns the projection matrix.
func (c *Orthographic) Projection() mgl32.Mat4 { return c.proj }

// Zoom returns the current zoom factor.
func (c *Orthographic) Zoom() float32 { return c.zoom }

// SetZoom sets the zoom factor, clamped to a small positive minimum.
func (c *Orthographic) SetZoom(z float32) {
	if z < minZoom {
		z = minZoom
	}
	c.zoom = z
	c.updateProjection()
}

// Pan moves the camera in the XY plane.
func (c *Orthographic) Pan(dx, dy float32) {
	c.x += dx
	c.y += dy
	c.updateView()
}

// SetViewport updates the viewport size and recomputes the aspect ratio.
func (c *Orthographic) SetViewport(width, height int) {
	c.width = width
	c.height = height
	c.updateProjection()
}

func (c *Orthographic) aspect() float32 {
	if c.height <= 0 {
		return 1
	}
	return float32(c.width) / float32(c.height)
}

func (c *Orthographic) updateView() {
	c.view = mgl32.Translate3D(-c.x, -c.y, 0)
}

func (c *Orthographic) updateProjection() {
	hh := 1 / c.zoom
	hw := hh * c.aspect()
	c.proj = mgl32.Ortho(-hw, hw, -hh, hh, -1, 1)
}

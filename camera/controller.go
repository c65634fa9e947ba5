package camera

// Orbit controller defaults and limits.
const (
	DefaultOrbitSensitivity = 0.5  // degrees per pixel
	DefaultPanSensitivity   = 0.01 // world units per pixel at distance 1
	DefaultZoomSensitivity  = 0.1  // fraction of distance per scroll step

	maxElevation = 89.0
	minDistance  = 0.2
	maxDistance  = 50.0
)

// OrbitController drives a Perspective camera from pointer input:
// drag to orbit around the target, scroll to dolly in and out.
//
// The caller feeds it pointer deltas; it owns the spherical coordinates
// and keeps them within limits (elevation clamped short of the poles,
// distance kept positive and finite).
type OrbitController struct {
	cam *Perspective

	azimuth   float32 // degrees around +Y
	elevation float32 // degrees above the horizon
	distance  float32

	orbitSensitivity float32
	zoomSensitivity  float32
	enabled          bool
}

// NewOrbitController creates a controller positioned at the camera's
// current distance from its target, on the horizon at azimuth zero.
func NewOrbitController(cam *Perspective) *OrbitController {
	c := &OrbitController{
		cam:              cam,
		distance:         cam.Position().Sub(cam.Target()).Len(),
		orbitSensitivity: DefaultOrbitSensitivity,
		zoomSensitivity:  DefaultZoomSensitivity,
		enabled:          true,
	}
	if c.distance < minDistance {
		c.distance = minDistance
	}
	c.apply()
	return c
}

// Enabled reports whether the controller reacts to input.
func (c *OrbitController) Enabled() bool { return c.enabled }

// SetEnabled toggles input handling, e.g. while a GUI overlay captures
// the pointer.
func (c *OrbitController) SetEnabled(v bool) { c.enabled = v }

// Orbit returns the current azimuth, elevation (degrees) and distance.
func (c *OrbitController) Orbit() (azimuth, elevation, distance float32) {
	return c.azimuth, c.elevation, c.distance
}

// SetOrbitSensitivity sets the rotation speed in degrees per pixel.
func (c *OrbitController) SetOrbitSensitivity(v float32) {
	if v > 0 {
		c.orbitSensitivity = v
	}
}

// SetZoomSensitivity sets the dolly speed as a fraction of the current
// distance per scroll step.
func (c *OrbitController) SetZoomSensitivity(v float32) {
	if v > 0 {
		c.zoomSensitivity = v
	}
}

// Rotate orbits the camera by a pointer drag of (dx, dy) pixels.
// Horizontal drag changes azimuth, vertical drag elevation; elevation is
// clamped short of the poles so the view never flips.
func (c *OrbitController) Rotate(dx, dy float32) {
	if !c.enabled {
		return
	}
	c.azimuth -= dx * c.orbitSensitivity
	c.elevation = clamp(c.elevation+dy*c.orbitSensitivity, -maxElevation, maxElevation)
	c.apply()
}

// Pan moves the orbit target (and the camera with it) in the camera's
// right/up plane, scaled by the current distance so panning feels
// uniform at any zoom.
func (c *OrbitController) Pan(dx, dy float32) {
	if !c.enabled {
		return
	}
	forward := c.cam.Target().Sub(c.cam.Position()).Normalize()
	right := forward.Cross(c.cam.up).Normalize()
	up := right.Cross(forward)

	scale := DefaultPanSensitivity * c.distance
	delta := right.Mul(-dx * scale).Add(up.Mul(dy * scale))
	c.cam.Translate(delta)
}

// Zoom dollies the camera toward (positive steps) or away from the
// target, keeping the distance within fixed limits.
func (c *OrbitController) Zoom(steps float32) {
	if !c.enabled {
		return
	}
	c.distance = clamp(c.distance*(1-steps*c.zoomSensitivity), minDistance, maxDistance)
	c.apply()
}

func (c *OrbitController) apply() {
	c.cam.SetOrbit(c.azimuth, c.elevation, c.distance)
}

package glrender

import "github.com/go-gl/gl/v4.1-core/gl"

// Setup applies the fixed render state used by the engine: depth testing
// on, back-face culling off (lines and points have no winding) and a
// dark clear color.
func Setup() {
	gl.Enable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.ClearColor(0.08, 0.09, 0.11, 1)
}

// Clear clears the color and depth buffers.
func Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SetClearColor sets the background color.
func SetClearColor(r, g, b float32) {
	gl.ClearColor(r, g, b, 1)
}

// SetPointSize sets the rasterized size of point primitives.
func SetPointSize(px float32) {
	gl.PointSize(px)
}

// SetLineWidth sets the rasterized width of line primitives. Core
// profiles only guarantee width 1.
func SetLineWidth(px float32) {
	gl.LineWidth(px)
}

// Viewport sets the GL viewport in framebuffer pixels.
func Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

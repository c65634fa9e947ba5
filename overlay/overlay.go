package overlay

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/gogpu/gl3d/perf"
	"github.com/gogpu/gl3d/shader"
)

const margin = 10 // pixels from the window corner

const vertexSource = `#version 330 core

layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aUV;

out vec2 vUV;

void main() {
	gl_Position = vec4(aPos, 0.0, 1.0);
	vUV = aUV;
}
`

const fragmentSource = `#version 330 core

in vec2 vUV;

uniform sampler2D uPanel;

out vec4 fragColor;

void main() {
	fragColor = texture(uPanel, vUV);
}
`

// Overlay draws the frame snapshot as a textured quad in the top-left
// corner of the framebuffer.
type Overlay struct {
	prog *shader.Program
	tex  uint32
	vao  uint32
	vbo  uint32
}

// New compiles the overlay's shader and allocates its texture and quad
// buffers. Requires a current OpenGL context.
func New() (*Overlay, error) {
	prog, err := shader.New(vertexSource, fragmentSource)
	if err != nil {
		return nil, err
	}

	o := &Overlay{prog: prog}
	gl.GenTextures(1, &o.tex)
	gl.BindTexture(gl.TEXTURE_2D, o.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.GenVertexArrays(1, &o.vao)
	gl.BindVertexArray(o.vao)
	gl.GenBuffers(1, &o.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	// 4 vertices of vec2 position + vec2 uv, rewritten each frame.
	gl.BufferData(gl.ARRAY_BUFFER, 4*4*4, nil, gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 16, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 16, 8)
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return o, nil
}

// Draw rasterizes the snapshot and blends it over the scene. The
// framebuffer size is needed to place the panel in pixels.
func (o *Overlay) Draw(stats perf.FrameStats, fbWidth, fbHeight int) {
	img := Rasterize(Lines(stats))
	if img == nil || fbWidth <= 0 || fbHeight <= 0 {
		return
	}
	o.upload(img)

	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	x0 := -1 + 2*float32(margin)/float32(fbWidth)
	x1 := -1 + 2*float32(margin+w)/float32(fbWidth)
	y0 := 1 - 2*float32(margin)/float32(fbHeight)
	y1 := 1 - 2*float32(margin+h)/float32(fbHeight)

	// Image row 0 is the top of the panel, so the top vertices get v=0.
	quad := []float32{
		x0, y0, 0, 0,
		x0, y1, 0, 1,
		x1, y0, 1, 0,
		x1, y1, 1, 1,
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, gl.Ptr(quad), gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)

	o.prog.Use()
	o.prog.SetInt("uPanel", 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, o.tex)
	gl.BindVertexArray(o.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	o.prog.Unuse()

	gl.Enable(gl.DEPTH_TEST)
	gl.Disable(gl.BLEND)
}

// Release frees the overlay's GL resources.
func (o *Overlay) Release() {
	if o.tex != 0 {
		gl.DeleteTextures(1, &o.tex)
		gl.DeleteVertexArrays(1, &o.vao)
		gl.DeleteBuffers(1, &o.vbo)
		o.tex, o.vao, o.vbo = 0, 0, 0
	}
	o.prog.Release()
}

func (o *Overlay) upload(img *image.RGBA) {
	b := img.Bounds()
	gl.BindTexture(gl.TEXTURE_2D, o.tex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

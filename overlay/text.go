// Package overlay draws the per-frame performance snapshot as a text
// panel in the corner of the window. Text is rasterized on the CPU with
// a fixed 7x13 bitmap font and uploaded as a texture each frame.
package overlay

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/gl3d/perf"
)

const (
	padding    = 6 // pixels around the text block
	lineHeight = 14
)

var (
	textColor  = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	panelColor = color.RGBA{A: 160}
)

// Lines formats a frame snapshot into the overlay's text lines.
func Lines(stats perf.FrameStats) []string {
	s := strings.TrimRight(stats.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Rasterize renders the lines onto a translucent panel image. Returns
// nil when there is nothing to draw.
func Rasterize(lines []string) *image.RGBA {
	if len(lines) == 0 {
		return nil
	}

	face := basicfont.Face7x13
	width := 0
	for _, line := range lines {
		if w := font.MeasureString(face, line).Ceil(); w > width {
			width = w
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, width+2*padding, len(lines)*lineHeight+2*padding))
	draw.Draw(img, img.Bounds(), image.NewUniform(panelColor), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(textColor),
		Face: face,
	}
	for i, line := range lines {
		d.Dot = fixed.P(padding, padding+i*lineHeight+face.Ascent)
		d.DrawString(line)
	}
	return img
}

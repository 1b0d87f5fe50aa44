// Package surface holds the CPU pixel buffer shared by the window backends.
package surface

import (
	"image"
	"image/color"
)

// Framebuffer is a logical-resolution RGBA image. Row 0 is the top row.
type Framebuffer struct {
	Img *image.RGBA
}

// NewFramebuffer allocates a width x height framebuffer.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{Img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

func (fb *Framebuffer) Width() int  { return fb.Img.Rect.Dx() }
func (fb *Framebuffer) Height() int { return fb.Img.Rect.Dy() }

// Clear fills every pixel with c.
func (fb *Framebuffer) Clear(c color.RGBA) {
	pix := fb.Img.Pix
	if len(pix) < 4 {
		return
	}
	pix[0], pix[1], pix[2], pix[3] = c.R, c.G, c.B, c.A
	for filled := 4; filled < len(pix); filled *= 2 {
		copy(pix[filled:], pix[:filled])
	}
}

// PlotPoint sets one pixel. Points outside the buffer are dropped.
func (fb *Framebuffer) PlotPoint(x, y int, c color.RGBA) {
	if x < 0 || x >= fb.Width() || y < 0 || y >= fb.Height() {
		return
	}
	offset := fb.Img.PixOffset(x, y)
	fb.Img.Pix[offset] = c.R
	fb.Img.Pix[offset+1] = c.G
	fb.Img.Pix[offset+2] = c.B
	fb.Img.Pix[offset+3] = c.A
}

// Lit reports whether the pixel at x, y differs from bg.
func (fb *Framebuffer) Lit(x, y int, bg color.RGBA) bool {
	return fb.Img.RGBAAt(x, y) != bg
}

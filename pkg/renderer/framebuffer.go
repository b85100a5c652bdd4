package renderer

import "github.com/df07/go-smallpt/pkg/core"

// Framebuffer holds one radiance value per pixel, top row first
type Framebuffer struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewFramebuffer creates a black framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// Row returns the pixels of camera row y (y = 0 is the bottom of the view).
// Rows are disjoint, so each may be filled by a different goroutine.
func (fb *Framebuffer) Row(y int) []core.Vec3 {
	start := (fb.Height - 1 - y) * fb.Width
	return fb.Pixels[start : start+fb.Width : start+fb.Width]
}

// At returns the pixel at column x of image row r (r = 0 is the top)
func (fb *Framebuffer) At(x, r int) core.Vec3 {
	return fb.Pixels[r*fb.Width+x]
}

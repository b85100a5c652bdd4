package output

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/df07/go-smallpt/pkg/renderer"
)

// ToImage converts fb to an 8-bit image with the same tone mapping as the PPM writer
func ToImage(fb *renderer.Framebuffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for r := 0; r < fb.Height; r++ {
		for x := 0; x < fb.Width; x++ {
			p := fb.At(x, r)
			img.SetRGBA(x, r, color.RGBA{
				R: uint8(ToInt(p.X)),
				G: uint8(ToInt(p.Y)),
				B: uint8(ToInt(p.Z)),
				A: 255,
			})
		}
	}
	return img
}

// WritePNG encodes fb as a PNG image
func WritePNG(w io.Writer, fb *renderer.Framebuffer) error {
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	return enc.Encode(w, ToImage(fb))
}

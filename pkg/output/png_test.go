package output

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/df07/go-smallpt/pkg/core"
	"github.com/df07/go-smallpt/pkg/renderer"
)

func TestWritePNG(t *testing.T) {
	fb := renderer.NewFramebuffer(5, 3)
	fb.Pixels[0] = core.NewVec3(1, 0.5, 0)

	var buf bytes.Buffer
	if err := WritePNG(&buf, fb); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 5 || b.Dy() != 3 {
		t.Fatalf("Expected 5x3 image, got %v", b)
	}

	// The first framebuffer slot is the top-left pixel
	r, g, b, a := img.At(0, 0).RGBA()
	if r>>8 != 255 || g>>8 != 186 || b>>8 != 0 || a>>8 != 255 {
		t.Errorf("Unexpected top-left pixel: %d %d %d %d", r>>8, g>>8, b>>8, a>>8)
	}
}

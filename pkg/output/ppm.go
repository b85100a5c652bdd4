package output

import (
	"fmt"
	"io"

	"github.com/df07/go-smallpt/pkg/renderer"
)

// WritePPM writes fb as a plain-text (P3) pixel map, top row first
func WritePPM(w io.Writer, fb *renderer.Framebuffer) error {
	if _, err := fmt.Fprintf(w, "P3\n%d %d\n255\n", fb.Width, fb.Height); err != nil {
		return err
	}
	for i, p := range fb.Pixels {
		sep := " "
		if i == len(fb.Pixels)-1 {
			sep = "\n"
		}
		if _, err := fmt.Fprintf(w, "%d %d %d%s", ToInt(p.X), ToInt(p.Y), ToInt(p.Z), sep); err != nil {
			return err
		}
	}
	return nil
}

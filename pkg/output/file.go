package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-smallpt/pkg/renderer"
)

// writerFor picks the image writer for a file extension
func writerFor(path string) (func(io.Writer, *renderer.Framebuffer) error, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ppm":
		return WritePPM, nil
	case ".png":
		return WritePNG, nil
	default:
		return nil, fmt.Errorf("unsupported image format %q (use .ppm or .png)", ext)
	}
}

// SaveFile writes fb to path, choosing the format from the extension. The image
// is written to a temporary file in the same directory and renamed into place,
// so a failed write never leaves a partial file at path.
func SaveFile(path string, fb *renderer.Framebuffer) (err error) {
	write, err := writerFor(path)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmpName)
		}
	}()

	// CreateTemp uses 0600, which the rename would carry over
	if err = f.Chmod(0o644); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}

	w := bufio.NewWriter(f)
	if err = write(w, fb); err != nil {
		return fmt.Errorf("write image: %w", err)
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("flush image: %w", err)
	}
	if err = f.Sync(); err != nil {
		return fmt.Errorf("sync image: %w", err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("close image: %w", err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename image: %w", err)
	}
	return nil
}

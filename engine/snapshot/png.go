package snapshot

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

// EncodePNG writes img to w as PNG.
//
// Parameters:
//   - w: the destination writer
//   - img: the image to encode
//
// Returns:
//   - error: a wrapped encoder error
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// WritePNG creates or truncates path and writes img to it as PNG.
//
// Parameters:
//   - path: the output file path
//   - img: the image to write
//
// Returns:
//   - error: a wrapped file or encoder error
func WritePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()
	return EncodePNG(f, img)
}

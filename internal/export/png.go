package export

import (
	"fmt"
	"image/png"
	"io"

	"life-ca/internal/render"
	"life-ca/pkg/core"
)

// WritePNG writes a single snapshot as a grayscale PNG.
func WritePNG(w io.Writer, s core.Snapshot, scale int) error {
	if err := png.Encode(w, render.GrayImage(s, scale)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

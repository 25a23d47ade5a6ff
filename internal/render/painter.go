//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads live/dead cell data into a single image and draws it
// scaled onto the screen.
type GridPainter struct {
	n   int
	img *ebiten.Image
	buf []byte
}

// NewGridPainter allocates a painter for an n×n grid.
func NewGridPainter(n int) *GridPainter {
	return &GridPainter{n: n, img: ebiten.NewImage(n, n), buf: make([]byte, 4*n*n)}
}

// Blit uploads cells into the painter image and draws it onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, on, off color.Color, scale int) {
	if len(cells) != gp.n*gp.n {
		return
	}
	FillBinaryRGBA(gp.buf, cells, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the grid edge the painter was built for.
func (gp *GridPainter) Size() int { return gp.n }

package core

import "image"

// Snapshot is a frozen copy of a grid taken between generations. Later steps
// of the simulation never alter it.
type Snapshot struct {
	n     int
	cells []uint8
}

// Size returns the edge length N.
func (s Snapshot) Size() int { return s.n }

// At returns the cell at (row, col) using toroidal indexing.
func (s Snapshot) At(row, col int) uint8 {
	if s.n == 0 {
		return Dead
	}
	row, col = wrap(row, s.n), wrap(col, s.n)
	return s.cells[row*s.n+col]
}

// Alive reports whether the cell at (row, col) is alive.
func (s Snapshot) Alive(row, col int) bool { return s.At(row, col) == Alive }

// Cells returns a copy of the row-major cell values.
func (s Snapshot) Cells() []uint8 { return append([]uint8(nil), s.cells...) }

// Population counts the live cells.
func (s Snapshot) Population() int { return countAlive(s.cells) }

// Equal reports whether both snapshots hold the same cells.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.n != o.n || len(s.cells) != len(o.cells) {
		return false
	}
	for i := range s.cells {
		if s.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Gray returns the snapshot as a new grayscale image, one pixel per cell.
func (s Snapshot) Gray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, s.n, s.n))
	copy(img.Pix, s.cells)
	return img
}

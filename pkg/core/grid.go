package core

import (
	"fmt"
	"math"
)

// Cell values double as 8-bit grayscale intensities.
const (
	Dead  uint8 = 0
	Alive uint8 = 255
)

// MinSize is the smallest grid edge that hosts every bundled pattern without
// the pattern overlapping itself across the wrap.
const MinSize = 9

// DefaultAliveProbability is the fraction of live cells used by random seeding
// when no probability is configured.
const DefaultAliveProbability = 0.2

// Grid is an N×N toroidal matrix of cells stored in row-major order.
type Grid struct {
	n    int
	data []uint8
}

// NewEmptyGrid allocates an all-dead grid with edge n.
func NewEmptyGrid(n int) (*Grid, error) {
	if n < MinSize {
		return nil, fmt.Errorf("grid size %d below minimum %d: %w", n, MinSize, ErrInvalidSize)
	}
	return &Grid{n: n, data: make([]uint8, n*n)}, nil
}

// NewRandomGrid allocates a grid with edge n where every cell is independently
// alive with probability p. The fill is deterministic for a given seed.
func NewRandomGrid(n int, p float64, seed int64) (*Grid, error) {
	g, err := NewEmptyGrid(n)
	if err != nil {
		return nil, err
	}
	if err := g.Randomize(p, seed); err != nil {
		return nil, err
	}
	return g, nil
}

// Randomize refills every cell, alive with probability p.
func (g *Grid) Randomize(p float64, seed int64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("alive probability %v: %w", p, ErrInvalidProbability)
	}
	NewRNG(seed).FillChance(g.data, p)
	return nil
}

// Size returns the edge length N.
func (g *Grid) Size() int {
	if g == nil {
		return 0
	}
	return g.n
}

// Cells exposes the backing slice so renderers can read values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for already wrapped coordinates.
func (g *Grid) Index(row, col int) int { return row*g.n + col }

// Wrap maps any integer coordinates onto the torus.
func (g *Grid) Wrap(row, col int) (int, int) {
	return wrap(row, g.n), wrap(col, g.n)
}

func wrap(v, n int) int {
	return (v%n + n) % n
}

// Get returns the cell at (row, col) after toroidal normalisation. An empty
// grid reports Dead.
func (g *Grid) Get(row, col int) uint8 {
	if g.Size() == 0 {
		return Dead
	}
	row, col = g.Wrap(row, col)
	return g.data[g.Index(row, col)]
}

// Set stores v at (row, col) after toroidal normalisation. Any non-zero value
// is stored as Alive. Set on an empty grid is a no-op.
func (g *Grid) Set(row, col int, v uint8) {
	if g.Size() == 0 {
		return
	}
	row, col = g.Wrap(row, col)
	if v != Dead {
		v = Alive
	}
	g.data[g.Index(row, col)] = v
}

// IsAlive reports whether the cell at (row, col) is alive.
func (g *Grid) IsAlive(row, col int) bool { return g.Get(row, col) == Alive }

// LiveNeighbors counts the live cells among the eight toroidal neighbours of
// (row, col).
func (g *Grid) LiveNeighbors(row, col int) int {
	if g.Size() == 0 {
		return 0
	}
	row, col = g.Wrap(row, col)
	return liveNeighbors(g.data, g.n, row, col)
}

// liveNeighbors sums the neighbour intensities and normalises by Alive. row and
// col must already be in range.
func liveNeighbors(cells []uint8, n, row, col int) int {
	up := (row - 1 + n) % n
	down := (row + 1) % n
	left := (col - 1 + n) % n
	right := (col + 1) % n

	sum := int(cells[up*n+left]) + int(cells[up*n+col]) + int(cells[up*n+right]) +
		int(cells[row*n+left]) + int(cells[row*n+right]) +
		int(cells[down*n+left]) + int(cells[down*n+col]) + int(cells[down*n+right])
	return sum / int(Alive)
}

// NextCell applies the classical rule to the cell at (row, col) of src, an n×n
// row-major buffer, and returns its value in the following generation.
func NextCell(src []uint8, n, row, col int) uint8 {
	live := liveNeighbors(src, n, row, col)
	cur := src[row*n+col]
	if cur == Alive {
		if live < 2 || live > 3 {
			return Dead
		}
		return Alive
	}
	if live == 3 {
		return Alive
	}
	return Dead
}

// Stamp writes every cell of p into the grid with its top-left corner at
// (row, col), wrapping past the edges and overwriting existing values.
func (g *Grid) Stamp(p Pattern, row, col int) {
	if g.Size() == 0 {
		return
	}
	for r := 0; r < p.Rows(); r++ {
		for c := 0; c < p.Cols(); c++ {
			g.Set(row+r, col+c, p.At(r, c))
		}
	}
}

// Population counts the live cells.
func (g *Grid) Population() int {
	return countAlive(g.data)
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = Dead
	}
}

// Snapshot returns an immutable copy of the grid.
func (g *Grid) Snapshot() Snapshot {
	return Snapshot{n: g.n, cells: append([]uint8(nil), g.data...)}
}

func countAlive(cells []uint8) int {
	total := 0
	for _, c := range cells {
		if c == Alive {
			total++
		}
	}
	return total
}

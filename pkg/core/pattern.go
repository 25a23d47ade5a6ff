package core

import "fmt"

// Pattern is a fixed rectangular block of cells. The zero value is an empty
// pattern. Patterns are values and never change after construction.
type Pattern struct {
	name  string
	rows  int
	cols  int
	cells string
}

// NewPattern builds a pattern from text rows where '#' (or 'O') marks a live
// cell and any other rune a dead one. Every row must have the same width.
func NewPattern(name string, rows ...string) (Pattern, error) {
	if len(rows) == 0 {
		return Pattern{name: name}, nil
	}
	cols := len(rows[0])
	buf := make([]byte, 0, cols*len(rows))
	for i, r := range rows {
		if len(r) != cols {
			return Pattern{}, fmt.Errorf("pattern %q row %d has width %d, want %d", name, i, len(r), cols)
		}
		buf = append(buf, r...)
	}
	return Pattern{name: name, rows: len(rows), cols: cols, cells: string(buf)}, nil
}

// MustPattern is like NewPattern but panics on malformed rows. It is meant for
// package-level pattern tables.
func MustPattern(name string, rows ...string) Pattern {
	p, err := NewPattern(name, rows...)
	if err != nil {
		panic(err)
	}
	return p
}

// Name returns the pattern identifier.
func (p Pattern) Name() string { return p.name }

// Rows returns the pattern height.
func (p Pattern) Rows() int { return p.rows }

// Cols returns the pattern width.
func (p Pattern) Cols() int { return p.cols }

// At returns the cell value at (row, col) inside the pattern.
func (p Pattern) At(row, col int) uint8 {
	switch p.cells[row*p.cols+col] {
	case '#', 'O':
		return Alive
	default:
		return Dead
	}
}

// Population counts the live cells of the pattern.
func (p Pattern) Population() int {
	total := 0
	for r := 0; r < p.rows; r++ {
		for c := 0; c < p.cols; c++ {
			if p.At(r, c) == Alive {
				total++
			}
		}
	}
	return total
}

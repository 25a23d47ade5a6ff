// Package export turns a run of snapshots into files: an MJPEG movie of the
// generations, single PNG frames, and a population chart.
package export

import (
	"bytes"
	"fmt"
	"image/jpeg"

	"github.com/icza/mjpeg"

	"life-ca/internal/render"
	"life-ca/pkg/core"
)

// DefaultFPS matches the frame rate the animation driver exports at.
const DefaultFPS = 30

// MovieWriter appends snapshots as frames of an MJPEG AVI file.
type MovieWriter struct {
	avi     mjpeg.AviWriter
	size    int
	scale   int
	quality int
	frames  int
	buf     bytes.Buffer
}

// NewMovieWriter creates path and prepares it for gridSize×gridSize snapshots,
// each cell drawn as a scale×scale block.
func NewMovieWriter(path string, gridSize, scale, fps int) (*MovieWriter, error) {
	if gridSize < core.MinSize {
		return nil, fmt.Errorf("movie for %d×%d grid: %w", gridSize, gridSize, core.ErrInvalidSize)
	}
	if scale < 1 {
		scale = 1
	}
	if fps <= 0 {
		fps = DefaultFPS
	}
	side := int32(gridSize * scale)
	avi, err := mjpeg.New(path, side, side, int32(fps))
	if err != nil {
		return nil, fmt.Errorf("create movie %s: %w", path, err)
	}
	return &MovieWriter{avi: avi, size: gridSize, scale: scale, quality: 90}, nil
}

// AddFrame encodes s as the next frame.
func (m *MovieWriter) AddFrame(s core.Snapshot) error {
	if s.Size() != m.size {
		return fmt.Errorf("frame %d×%d in %d×%d movie: %w", s.Size(), s.Size(), m.size, m.size, core.ErrInvalidSize)
	}
	m.buf.Reset()
	if err := jpeg.Encode(&m.buf, render.GrayImage(s, m.scale), &jpeg.Options{Quality: m.quality}); err != nil {
		return fmt.Errorf("encode frame %d: %w", m.frames, err)
	}
	if err := m.avi.AddFrame(m.buf.Bytes()); err != nil {
		return fmt.Errorf("write frame %d: %w", m.frames, err)
	}
	m.frames++
	return nil
}

// Frames returns how many frames were written so far.
func (m *MovieWriter) Frames() int { return m.frames }

// Close finalises the AVI index and closes the file.
func (m *MovieWriter) Close() error {
	return m.avi.Close()
}

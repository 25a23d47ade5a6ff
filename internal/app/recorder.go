package app

import (
	"errors"
	"fmt"
	"os"

	"life-ca/internal/export"
	"life-ca/pkg/core"
)

// Recorder feeds generations to the optional movie and population chart
// outputs selected on the command line.
type Recorder struct {
	movie     *export.MovieWriter
	history   *export.PopulationHistory
	chartPath string
	frames    int
}

// NewRecorder opens the outputs named by cfg for a gridSize×gridSize run.
// It returns nil when no output was requested.
func NewRecorder(cfg *Config, gridSize int) (*Recorder, error) {
	if cfg.MovFile == "" && cfg.Chart == "" {
		return nil, nil
	}
	r := &Recorder{chartPath: cfg.Chart}
	if cfg.MovFile != "" {
		m, err := export.NewMovieWriter(cfg.MovFile, gridSize, cfg.Scale, export.DefaultFPS)
		if err != nil {
			return nil, err
		}
		r.movie = m
	}
	if cfg.Chart != "" {
		r.history = &export.PopulationHistory{}
	}
	return r, nil
}

// AddFrame records one generation.
func (r *Recorder) AddFrame(s core.Snapshot) error {
	if r.history != nil {
		r.history.Record(r.frames, s.Population())
	}
	if r.movie != nil {
		if err := r.movie.AddFrame(s); err != nil {
			return err
		}
	}
	r.frames++
	return nil
}

// Frames returns how many generations were recorded.
func (r *Recorder) Frames() int { return r.frames }

// Close finalises the movie and writes the chart.
func (r *Recorder) Close() error {
	var errs []error
	if r.movie != nil {
		errs = append(errs, r.movie.Close())
	}
	if r.history != nil {
		errs = append(errs, r.writeChart())
	}
	return errors.Join(errs...)
}

func (r *Recorder) writeChart() error {
	f, err := os.Create(r.chartPath)
	if err != nil {
		return fmt.Errorf("create chart: %w", err)
	}
	if err := export.WritePopulationChart(f, r.history); err != nil {
		f.Close()
		return fmt.Errorf("write chart %s: %w", r.chartPath, err)
	}
	return f.Close()
}

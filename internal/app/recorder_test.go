package app

import (
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"life-ca/internal/export"
	"life-ca/pkg/sims/life"
)

func TestNewRecorderNothingRequested(t *testing.T) {
	r, err := NewRecorder(NewConfig(), 20)
	if err != nil || r != nil {
		t.Fatalf("NewRecorder = %v, %v; want nil, nil", r, err)
	}
}

func TestRecorderWritesMovieAndChart(t *testing.T) {
	dir := t.TempDir()
	cfg := NewConfig()
	cfg.MovFile = filepath.Join(dir, "run.avi")
	cfg.Chart = filepath.Join(dir, "pop.png")
	cfg.Scale = 2

	lc := life.DefaultConfig()
	lc.Size = 20
	lc.Pattern = life.Glider.Name()
	sim, err := life.NewWithConfig(lc)
	if err != nil {
		t.Fatal(err)
	}

	r, err := NewRecorder(cfg, lc.Size)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		if err := r.AddFrame(sim.Snapshot()); err != nil {
			t.Fatal(err)
		}
		if err := sim.Advance(); err != nil {
			t.Fatal(err)
		}
	}
	if r.Frames() != 5 {
		t.Fatalf("frames = %d", r.Frames())
	}
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}

	if st, err := os.Stat(cfg.MovFile); err != nil || st.Size() == 0 {
		t.Fatalf("movie not written: %v", err)
	}
	f, err := os.Open(cfg.Chart)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Fatalf("chart is not a PNG: %v", err)
	}
}

func TestRecorderChartNeedsSamples(t *testing.T) {
	cfg := NewConfig()
	cfg.Chart = filepath.Join(t.TempDir(), "pop.png")
	r, err := NewRecorder(cfg, 20)
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Close(); !errors.Is(err, export.ErrTooFewSamples) {
		t.Fatalf("Close = %v, want ErrTooFewSamples", err)
	}
}

package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"life-ca/internal/app"
	"life-ca/pkg/sims/life"
)

func TestRunWritesOutputs(t *testing.T) {
	dir := t.TempDir()
	cfg := app.NewConfig()
	cfg.GridSize = 16
	cfg.Glider = true
	cfg.Frames = 8
	cfg.Scale = 2
	cfg.MovFile = filepath.Join(dir, "glider.avi")
	cfg.Chart = filepath.Join(dir, "pop.png")
	cfg.FinalPNG = filepath.Join(dir, "last.png")

	if err := run(cfg); err != nil {
		t.Fatal(err)
	}
	for _, p := range []string{cfg.MovFile, cfg.Chart, cfg.FinalPNG} {
		if st, err := os.Stat(p); err != nil || st.Size() == 0 {
			t.Fatalf("%s not written: %v", p, err)
		}
	}

	f, err := os.Open(cfg.FinalPNG)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 32 {
		t.Fatalf("final frame width %d, want 32", img.Bounds().Dx())
	}
}

func TestRunNeedsAnOutput(t *testing.T) {
	if err := run(app.NewConfig()); err == nil {
		t.Fatal("expected an error with no outputs selected")
	}
}

func TestSimulateWithoutRecorder(t *testing.T) {
	sim, err := life.NewWithConfig(life.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if err := simulate(sim, nil, 3); err != nil {
		t.Fatal(err)
	}
	if sim.Generation() != 3 {
		t.Fatalf("generation %d, want 3", sim.Generation())
	}
}

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"life-ca/internal/app"
	"life-ca/internal/export"
	"life-ca/pkg/sims/life"
)

func main() {
	cfg := app.NewConfig()
	cfg.MovFile = "life.avi"
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *app.Config) error {
	sim, err := cfg.NewSim()
	if err != nil {
		return err
	}
	rec, err := app.NewRecorder(cfg, sim.Grid().Size())
	if err != nil {
		return err
	}
	if rec == nil && cfg.FinalPNG == "" {
		return fmt.Errorf("nothing to export: set -m, -chart or -png")
	}

	start := time.Now()
	if err := simulate(sim, rec, cfg.Frames); err != nil {
		return err
	}

	if cfg.FinalPNG != "" {
		if err := writeFinal(cfg.FinalPNG, sim, cfg.Scale); err != nil {
			return err
		}
	}
	log.Printf("exported %d generations of a %d×%d grid in %s",
		sim.Generation(), sim.Grid().Size(), sim.Grid().Size(), time.Since(start).Round(time.Millisecond))
	return nil
}

// simulate advances sim frames times, recording the seed generation and every
// one after it. rec may be nil.
func simulate(sim *life.Life, rec *app.Recorder, frames int) error {
	record := func() error {
		if rec == nil {
			return nil
		}
		return rec.AddFrame(sim.Snapshot())
	}
	if err := record(); err != nil {
		rec.Close()
		return err
	}
	for gen := 1; gen <= frames; gen++ {
		if err := sim.Advance(); err != nil {
			if rec != nil {
				rec.Close()
			}
			return err
		}
		if err := record(); err != nil {
			rec.Close()
			return err
		}
		if gen%100 == 0 {
			log.Printf("generation %d  population %d", gen, sim.Population())
		}
	}
	if rec == nil {
		return nil
	}
	return rec.Close()
}

func writeFinal(path string, sim *life.Life, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.WritePNG(f, sim.Snapshot(), scale); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

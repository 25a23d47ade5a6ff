//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"life-ca/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := cfg.NewSim()
	if err != nil {
		log.Fatalf("new simulation: %v", err)
	}
	n := sim.Grid().Size()

	game := app.New(sim, cfg.Scale, cfg.StepInterval())
	rec, err := app.NewRecorder(cfg, n)
	if err != nil {
		log.Fatalf("open outputs: %v", err)
	}
	if rec != nil {
		if err := game.SetFrameSink(rec); err != nil {
			log.Fatalf("record: %v", err)
		}
	}

	ebiten.SetWindowTitle(fmt.Sprintf("life-ca %d×%d", n, n))
	ebiten.SetWindowSize(n*cfg.Scale, n*cfg.Scale)

	runErr := ebiten.RunGame(game)
	if rec != nil {
		if err := rec.Close(); err != nil {
			log.Printf("close outputs: %v", err)
		} else {
			log.Printf("recorded %d generations", rec.Frames())
		}
	}
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		log.Fatal(runErr)
	}
}

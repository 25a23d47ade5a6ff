package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"life-ca/internal/app"
	"life-ca/internal/term"
	"life-ca/pkg/sims/life"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := run(cfg, openTerminal); err != nil {
		log.Fatal(err)
	}
}

// openTerminal returns an initialised screen on the controlling terminal.
func openTerminal() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return screen, nil
}

// run animates the configured simulation on the screen returned by open. The
// movie and chart outputs are opened only once the screen is up and are always
// closed before run returns.
func run(cfg *app.Config, open func() (tcell.Screen, error)) (err error) {
	sim, err := cfg.NewSim()
	if err != nil {
		return err
	}

	screen, err := open()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	var rec *app.Recorder
	defer func() {
		screen.Fini()
		if rec == nil {
			return
		}
		if cerr := rec.Close(); cerr != nil {
			err = errors.Join(err, cerr)
			return
		}
		log.Printf("recorded %d generations", rec.Frames())
	}()

	if rec, err = app.NewRecorder(cfg, sim.Grid().Size()); err != nil {
		return err
	}
	if rec != nil {
		if err := rec.AddFrame(sim.Snapshot()); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	d := term.NewDriver(screen, sim, cfg.StepInterval())
	if rec != nil {
		d.OnStep = func(l *life.Life) error { return rec.AddFrame(l.Snapshot()) }
	}
	if err := d.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

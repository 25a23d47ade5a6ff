// Package term animates a Life simulation in a terminal using tcell.
package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"life-ca/internal/ui"
	"life-ca/pkg/sims/life"
)

const (
	cellGlyph = '█'
	// each cell is two columns wide so it renders roughly square
	cellWidth = 2
)

// Driver draws the simulation onto a screen and advances it on a timer.
type Driver struct {
	screen   tcell.Screen
	sim      *life.Life
	interval time.Duration
	seed     int64
	paused   bool

	// OnStep, when set, is called after every generation. An error stops Run.
	OnStep func(*life.Life) error

	alive  tcell.Style
	status tcell.Style
}

// NewDriver builds a driver for an initialised screen. Non-positive intervals
// fall back to 50ms.
func NewDriver(screen tcell.Screen, sim *life.Life, interval time.Duration) *Driver {
	if interval <= 0 {
		interval = 50 * time.Millisecond
	}
	return &Driver{
		screen:   screen,
		sim:      sim,
		interval: interval,
		seed:     sim.Config().Seed,
		alive:    tcell.StyleDefault.Foreground(tcell.ColorWhite),
		status:   tcell.StyleDefault.Reverse(true),
	}
}

// Paused reports whether the timer is currently ignored.
func (d *Driver) Paused() bool { return d.paused }

// Draw renders the current generation and a status line.
func (d *Driver) Draw() {
	d.screen.Clear()
	w, h := d.screen.Size()
	cells := d.sim.Cells()
	n := d.sim.Size().W
	rows := min(n, h-1)
	cols := min(n, w/cellWidth)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if cells[r*n+c] == 0 {
				continue
			}
			for k := 0; k < cellWidth; k++ {
				d.screen.SetContent(c*cellWidth+k, r, cellGlyph, nil, d.alive)
			}
		}
	}

	line := " " + ui.StatusLine(d.sim.Generation(), d.sim.Population(), d.paused) + "  q quit  space pause  n step  r reset "
	for i, ch := range []rune(line) {
		if i >= w {
			break
		}
		d.screen.SetContent(i, h-1, ch, nil, d.status)
	}
	d.screen.Show()
}

// HandleKey applies a key press and reports whether the driver should exit.
func (d *Driver) HandleKey(ev *tcell.EventKey) (bool, error) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true, nil
	case tcell.KeyRune:
	default:
		return false, nil
	}
	switch ev.Rune() {
	case 'q', 'Q':
		return true, nil
	case ' ':
		d.paused = !d.paused
	case 'n', 'N':
		return false, d.step()
	case 'r', 'R':
		d.sim.Reset(d.seed)
	}
	return false, nil
}

func (d *Driver) step() error {
	if err := d.sim.Advance(); err != nil {
		return err
	}
	if d.OnStep != nil {
		return d.OnStep(d.sim)
	}
	return nil
}

// Run loops until a quit key, ctx cancellation, or a step error.
func (d *Driver) Run(ctx context.Context) error {
	events := make(chan tcell.Event)
	quit := make(chan struct{})
	defer close(quit)
	go d.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	d.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				done, err := d.HandleKey(ev)
				if err != nil || done {
					return err
				}
			case *tcell.EventResize:
				d.screen.Sync()
			}
			d.Draw()
		case <-ticker.C:
			if d.paused {
				continue
			}
			if err := d.step(); err != nil {
				return err
			}
			d.Draw()
		}
	}
}

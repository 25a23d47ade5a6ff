package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"

	"life-ca/internal/app"
)

type countingScreen struct {
	tcell.Screen
	finis int
}

func (s *countingScreen) Fini() {
	s.finis++
	s.Screen.Fini()
}

// quitScreen returns an opener for a simulation screen that already holds a
// pending q key press.
func quitScreen(t *testing.T, wrap *countingScreen) func() (tcell.Screen, error) {
	t.Helper()
	return func() (tcell.Screen, error) {
		s := tcell.NewSimulationScreen("")
		if err := s.Init(); err != nil {
			return nil, err
		}
		s.SetSize(40, 20)
		s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
		wrap.Screen = s
		return wrap, nil
	}
}

func smallConfig(t *testing.T) *app.Config {
	cfg := app.NewConfig()
	cfg.GridSize = 12
	cfg.Glider = true
	cfg.MovFile = filepath.Join(t.TempDir(), "run.avi")
	return cfg
}

func TestRunScreenFailureOpensNoOutputs(t *testing.T) {
	cfg := smallConfig(t)
	boom := errors.New("no tty")
	err := run(cfg, func() (tcell.Screen, error) { return nil, boom })
	if !errors.Is(err, boom) {
		t.Fatalf("run = %v, want screen error", err)
	}
	if _, err := os.Stat(cfg.MovFile); !os.IsNotExist(err) {
		t.Fatalf("movie created before the screen opened: %v", err)
	}
}

func TestRunRecordsUntilQuit(t *testing.T) {
	cfg := smallConfig(t)
	screen := &countingScreen{}
	if err := run(cfg, quitScreen(t, screen)); err != nil {
		t.Fatal(err)
	}
	if screen.finis != 1 {
		t.Fatalf("screen finalised %d times", screen.finis)
	}
	if st, err := os.Stat(cfg.MovFile); err != nil || st.Size() == 0 {
		t.Fatalf("movie not finalised: %v", err)
	}
}

func TestRunRecorderErrorReleasesScreen(t *testing.T) {
	cfg := smallConfig(t)
	cfg.MovFile = filepath.Join(t.TempDir(), "missing", "run.avi")
	screen := &countingScreen{}
	if err := run(cfg, quitScreen(t, screen)); err == nil {
		t.Fatal("expected an error for an unwritable movie path")
	}
	if screen.finis != 1 {
		t.Fatalf("screen finalised %d times", screen.finis)
	}
}

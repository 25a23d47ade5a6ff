package app

import (
	"errors"
	"flag"
	"testing"
	"time"

	"life-ca/pkg/core"
	"life-ca/pkg/sims/life"
)

func parse(t *testing.T, args ...string) *Config {
	t.Helper()
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatal(err)
	}
	return cfg
}

func TestDefaults(t *testing.T) {
	cfg := parse(t)
	lc := cfg.Life()
	if lc.Size != 100 || lc.Pattern != "" || lc.AliveProbability != 0.2 {
		t.Fatalf("default life config %+v", lc)
	}
	if cfg.StepInterval() != 50*time.Millisecond {
		t.Fatalf("interval %s", cfg.StepInterval())
	}
}

func TestShortAndLongFlags(t *testing.T) {
	short := parse(t, "-g", "40", "-i", "120", "-o", "-m", "out.avi")
	long := parse(t, "-grid_size", "40", "-interval", "120", "-gosper_gun", "-mov_file", "out.avi")
	for _, cfg := range []*Config{short, long} {
		lc := cfg.Life()
		if lc.Size != 40 || lc.Pattern != life.GosperGun.Name() {
			t.Fatalf("life config %+v", lc)
		}
		if cfg.StepInterval() != 120*time.Millisecond || cfg.MovFile != "out.avi" {
			t.Fatalf("config %+v", cfg)
		}
	}
}

func TestSmallGridKeepsDefault(t *testing.T) {
	if got := parse(t, "-g", "8").Life().Size; got != 100 {
		t.Fatalf("size %d, want default 100", got)
	}
	if got := parse(t, "-g", "9").Life().Size; got != 9 {
		t.Fatalf("size %d, want 9", got)
	}
}

func TestPatternPrecedence(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{nil, ""},
		{[]string{"-o"}, "gosper-gun"},
		{[]string{"-b", "-o"}, "block"},
		{[]string{"-l", "-b", "-o"}, "glider"},
	}
	for _, tc := range cases {
		if got := parse(t, tc.args...).Pattern(); got != tc.want {
			t.Fatalf("%v: pattern %q, want %q", tc.args, got, tc.want)
		}
	}
}

func TestNewSimUsesRegistry(t *testing.T) {
	cfg := parse(t, "-g", "20", "-b", "-seed", "9", "-workers", "3")
	sim, err := cfg.NewSim()
	if err != nil {
		t.Fatal(err)
	}
	lc := sim.Config()
	if sim.Grid().Size() != 20 || lc.Pattern != "block" || lc.Seed != 9 || lc.Workers != 3 {
		t.Fatalf("config %+v", lc)
	}
	if sim.Population() != 4 || !sim.Grid().IsAlive(1, 1) || !sim.Grid().IsAlive(2, 2) {
		t.Fatal("block not stamped at (1,1)")
	}
}

func TestNewSimRejectsBadInput(t *testing.T) {
	if _, err := parse(t, "-p", "1.5").NewSim(); !errors.Is(err, core.ErrInvalidProbability) {
		t.Fatalf("-p 1.5: err = %v", err)
	}
	if _, err := parse(t, "-sim", "wireworld").NewSim(); err == nil {
		t.Fatal("expected an unknown sim error")
	}
}

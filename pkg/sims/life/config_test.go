package life

import (
	"errors"
	"testing"
)

func TestFromMapFallsBackToDefaults(t *testing.T) {
	def := DefaultConfig()
	if got := FromMap(nil); got != def {
		t.Fatalf("FromMap(nil) = %+v, want %+v", got, def)
	}

	got := FromMap(map[string]string{
		"n":       "8",
		"p":       "1.5",
		"pattern": "spaceship",
		"workers": "0",
		"seed":    "abc",
		"row":     "x",
	})
	if got != def {
		t.Fatalf("invalid values leaked into config: %+v", got)
	}
}

func TestFromMapParsesValues(t *testing.T) {
	got := FromMap(map[string]string{
		"n":       "64",
		"p":       "0.35",
		"pattern": "gosper-gun",
		"row":     "-2",
		"col":     "5",
		"workers": "4",
		"seed":    "-7",
	})
	want := Config{Size: 64, AliveProbability: 0.35, Pattern: "gosper-gun", Row: -2, Col: 5, Workers: 4, Seed: -7}
	if got != want {
		t.Fatalf("FromMap = %+v, want %+v", got, want)
	}
	if back := FromMap(got.ToMap()); back != got {
		t.Fatalf("ToMap round trip = %+v, want %+v", back, got)
	}
}

func TestLookupPattern(t *testing.T) {
	for _, name := range Patterns() {
		p, err := LookupPattern(name)
		if err != nil {
			t.Fatal(err)
		}
		if p.Name() != name {
			t.Fatalf("pattern %q reports name %q", name, p.Name())
		}
	}
	if _, err := LookupPattern("spaceship"); !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("err = %v, want ErrUnknownPattern", err)
	}

	sizes := map[string][2]int{
		"glider":     {3, 3},
		"block":      {3, 3},
		"blinker":    {3, 3},
		"gosper-gun": {9, 38},
	}
	for name, dims := range sizes {
		p, _ := LookupPattern(name)
		if p.Rows() != dims[0] || p.Cols() != dims[1] {
			t.Fatalf("%s is %dx%d, want %dx%d", name, p.Rows(), p.Cols(), dims[0], dims[1])
		}
	}
	if GosperGun.Population() != 36 {
		t.Fatalf("gosper gun has %d cells, want 36", GosperGun.Population())
	}
}

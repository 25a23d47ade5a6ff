package app

import (
	"flag"
	"fmt"
	"math"
	"strings"
	"time"

	"life-ca/pkg/core"
	"life-ca/pkg/sims/life"
)

// Config represents the command-line parameters shared by the drivers.
type Config struct {
	Sim       string
	GridSize  int
	Interval  int
	Glider    bool
	Block     bool
	GosperGun bool
	MovFile   string

	Probability float64
	Seed        int64
	Workers     int
	Scale       int
	Frames      int
	Chart       string
	FinalPNG    string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := life.DefaultConfig()
	return &Config{
		Sim:         "life",
		GridSize:    def.Size,
		Interval:    50,
		Probability: def.AliveProbability,
		Seed:        def.Seed,
		Workers:     def.Workers,
		Scale:       4,
		Frames:      50,
	}
}

// Bind attaches the configuration to the provided FlagSet. The grid, interval,
// pattern and movie flags accept a short and a long spelling.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run ("+strings.Join(core.SimNames(), ", ")+")")
	for _, name := range []string{"g", "grid_size"} {
		fs.IntVar(&c.GridSize, name, c.GridSize, "size of the N×N grid (values below 9 keep the default)")
	}
	for _, name := range []string{"i", "interval"} {
		fs.IntVar(&c.Interval, name, c.Interval, "milliseconds between generations")
	}
	for _, name := range []string{"l", "glider"} {
		fs.BoolVar(&c.Glider, name, c.Glider, "start with a glider")
	}
	for _, name := range []string{"b", "block"} {
		fs.BoolVar(&c.Block, name, c.Block, "start with a block")
	}
	for _, name := range []string{"o", "gosper_gun"} {
		fs.BoolVar(&c.GosperGun, name, c.GosperGun, "start with a Gosper glider gun")
	}
	for _, name := range []string{"m", "mov_file"} {
		fs.StringVar(&c.MovFile, name, c.MovFile, "write the generations to this MJPEG .avi file")
	}
	fs.Float64Var(&c.Probability, "p", c.Probability, "alive probability for random seeding")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random seeding and reset")
	fs.IntVar(&c.Workers, "workers", c.Workers, "row bands computed in parallel per generation")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.Frames, "frames", c.Frames, "generations to export in headless mode")
	fs.StringVar(&c.Chart, "chart", c.Chart, "write a population chart PNG to this file")
	fs.StringVar(&c.FinalPNG, "png", c.FinalPNG, "write the last generation as a PNG to this file")
}

// Pattern returns the selected starting pattern, or "" for a random start.
// Glider wins over block, which wins over the gun.
func (c *Config) Pattern() string {
	switch {
	case c.Glider:
		return life.Glider.Name()
	case c.Block:
		return life.Block.Name()
	case c.GosperGun:
		return life.GosperGun.Name()
	}
	return ""
}

// Life converts the command-line options into a simulation config.
func (c *Config) Life() life.Config {
	cfg := life.DefaultConfig()
	if c.GridSize >= core.MinSize {
		cfg.Size = c.GridSize
	}
	cfg.AliveProbability = c.Probability
	cfg.Pattern = c.Pattern()
	cfg.Seed = c.Seed
	if c.Workers > 0 {
		cfg.Workers = c.Workers
	}
	return cfg
}

// StepInterval returns the pacing between generations.
func (c *Config) StepInterval() time.Duration {
	if c.Interval <= 0 {
		return 50 * time.Millisecond
	}
	return time.Duration(c.Interval) * time.Millisecond
}

// NewSim builds the selected simulation through the registry.
func (c *Config) NewSim() (*life.Life, error) {
	if math.IsNaN(c.Probability) || c.Probability < 0 || c.Probability > 1 {
		return nil, fmt.Errorf("-p %v: %w", c.Probability, core.ErrInvalidProbability)
	}
	sim, err := core.NewSim(c.Sim, c.Life().ToMap())
	if err != nil {
		return nil, err
	}
	l, ok := sim.(*life.Life)
	if !ok {
		return nil, fmt.Errorf("sim %q is not a Life engine", c.Sim)
	}
	return l, nil
}

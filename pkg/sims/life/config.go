package life

import (
	"strconv"

	"life-ca/pkg/core"
)

// Config controls how a Life engine is seeded and stepped.
type Config struct {
	Size int

	// AliveProbability is used for random seeding when Pattern is empty.
	AliveProbability float64

	// Pattern names a library pattern to stamp at (Row, Col) on an empty grid.
	Pattern string
	Row     int
	Col     int

	// Workers > 1 computes each generation in that many row bands concurrently.
	Workers int

	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Size:             100,
		AliveProbability: core.DefaultAliveProbability,
		Row:              1,
		Col:              1,
		Workers:          1,
		Seed:             42,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["n"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= core.MinSize {
			c.Size = parsed
		}
	}
	if v, ok := cfg["p"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.AliveProbability = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok {
		if _, err := LookupPattern(v); err == nil {
			c.Pattern = v
		}
	}
	if v, ok := cfg["row"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Row = parsed
		}
	}
	if v, ok := cfg["col"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Col = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// ToMap is the inverse of FromMap.
func (c Config) ToMap() map[string]string {
	m := map[string]string{
		"n":       strconv.Itoa(c.Size),
		"p":       strconv.FormatFloat(c.AliveProbability, 'f', -1, 64),
		"row":     strconv.Itoa(c.Row),
		"col":     strconv.Itoa(c.Col),
		"workers": strconv.Itoa(c.Workers),
		"seed":    strconv.FormatInt(c.Seed, 10),
	}
	if c.Pattern != "" {
		m["pattern"] = c.Pattern
	}
	return m
}

// seed fills g according to the config: an empty grid with the pattern
// stamped, or a random fill.
func (c Config) seed(g *core.Grid, seed int64) error {
	if c.Pattern == "" {
		return g.Randomize(c.AliveProbability, seed)
	}
	p, err := LookupPattern(c.Pattern)
	if err != nil {
		return err
	}
	g.Clear()
	g.Stamp(p, c.Row, c.Col)
	return nil
}

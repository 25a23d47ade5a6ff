package life

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"life-ca/pkg/core"
)

// Life implements Conway's Game of Life on a toroidal grid.
type Life struct {
	cfg        Config
	cur, nxt   *core.Grid
	generation int
}

// New wraps an existing grid. The grid is owned by the simulation from then on.
func New(grid *core.Grid) *Life {
	cfg := DefaultConfig()
	cfg.Size = grid.Size()
	return &Life{cfg: cfg, cur: grid}
}

// NewWithConfig builds and seeds a grid as described by cfg.
func NewWithConfig(cfg Config) (*Life, error) {
	grid, err := core.NewEmptyGrid(cfg.Size)
	if err != nil {
		return nil, err
	}
	if err := cfg.seed(grid, cfg.Seed); err != nil {
		return nil, err
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &Life{cfg: cfg, cur: grid}, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size {
	n := l.cur.Size()
	return core.Size{W: n, H: n}
}

// Cells exposes the current grid values. The slice is only valid until the
// next Advance.
func (l *Life) Cells() []uint8 { return l.cur.Cells() }

// Grid returns the current generation. The grid is recycled as the write
// buffer by the Advance after next; take a Snapshot to keep it.
func (l *Life) Grid() *core.Grid { return l.cur }

// Generation returns how many generations have been computed since the last reset.
func (l *Life) Generation() int { return l.generation }

// Population counts the live cells of the current generation.
func (l *Life) Population() int { return l.cur.Population() }

// Snapshot returns an immutable copy of the current generation.
func (l *Life) Snapshot() core.Snapshot { return l.cur.Snapshot() }

// Config returns the configuration the simulation was built with.
func (l *Life) Config() Config { return l.cfg }

// SetWorkers changes how many row bands each generation is split into.
func (l *Life) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	l.cfg.Workers = n
}

// Reset reseeds the grid from the configuration. A pattern config restamps the
// pattern; otherwise the grid is refilled at random from seed. The seed is kept
// in the config from then on.
func (l *Life) Reset(seed int64) {
	if l.cur.Size() == 0 {
		return
	}
	if err := l.cfg.seed(l.cur, seed); err != nil {
		panic(err)
	}
	l.cfg.Seed = seed
	l.generation = 0
}

// Step advances the simulation by one generation. It panics if the grid is
// missing; use Advance to get the error instead.
func (l *Life) Step() {
	if err := l.Advance(); err != nil {
		panic(err)
	}
}

// Advance computes the next generation into the spare buffer and swaps it in.
// Every cell reads only the previous generation.
func (l *Life) Advance() error {
	if l == nil || l.cur.Size() == 0 {
		return fmt.Errorf("advance: %w", core.ErrInvalidState)
	}
	n := l.cur.Size()
	if l.nxt.Size() != n {
		next, err := core.NewEmptyGrid(n)
		if err != nil {
			return fmt.Errorf("advance: %w", core.ErrInvalidState)
		}
		l.nxt = next
	}

	src, dst := l.cur.Cells(), l.nxt.Cells()
	if l.cfg.Workers <= 1 {
		stepRows(src, dst, n, 0, n)
	} else {
		var g errgroup.Group
		for _, band := range splitRows(n, l.cfg.Workers) {
			g.Go(func() error {
				stepRows(src, dst, n, band.start, band.end)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return fmt.Errorf("advance: %w", err)
		}
	}

	l.cur, l.nxt = l.nxt, l.cur
	l.generation++
	return nil
}

// stepRows writes generation N+1 of rows [start, end) into dst.
func stepRows(src, dst []uint8, n, start, end int) {
	for row := start; row < end; row++ {
		for col := 0; col < n; col++ {
			dst[row*n+col] = core.NextCell(src, n, row, col)
		}
	}
}

type rowBand struct{ start, end int }

// splitRows divides n rows into at most parts contiguous bands whose sizes
// differ by at most one.
func splitRows(n, parts int) []rowBand {
	if parts > n {
		parts = n
	}
	if parts < 1 {
		parts = 1
	}
	each, extra := n/parts, n%parts
	bands := make([]rowBand, 0, parts)
	start := 0
	for i := 0; i < parts; i++ {
		size := each
		if i < extra {
			size++
		}
		bands = append(bands, rowBand{start: start, end: start + size})
		start += size
	}
	return bands
}

// Parameters describes the configuration for HUDs and logs.
func (l *Life) Parameters() core.ParameterSnapshot {
	seeding := []core.Parameter{core.Int64Param("seed", "Seed", l.cfg.Seed)}
	if l.cfg.Pattern != "" {
		seeding = append(seeding,
			core.StringParam("pattern", "Pattern", l.cfg.Pattern),
			core.IntParam("row", "Row", l.cfg.Row),
			core.IntParam("col", "Col", l.cfg.Col),
		)
	} else {
		seeding = append(seeding, core.FloatParam("p", "Alive probability", l.cfg.AliveProbability))
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("n", "Size", l.cur.Size()),
				core.IntParam("workers", "Workers", l.cfg.Workers),
			},
		},
		{Name: "Seeding", Params: seeding},
	}}
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		l, err := NewWithConfig(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return l, nil
	})
}

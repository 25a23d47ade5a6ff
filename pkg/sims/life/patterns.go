package life

import (
	"errors"
	"fmt"
	"sort"

	"life-ca/pkg/core"
)

// ErrUnknownPattern is returned when a pattern name is not in the library.
var ErrUnknownPattern = errors.New("unknown pattern")

// Glider is the classic period-4 spaceship. Every four generations it reappears
// one cell down and one cell right.
var Glider = core.MustPattern("glider",
	"..#",
	"#.#",
	".##",
)

// Block is the 2×2 still life framed by a dead row and column so that it
// occupies a 3×3 footprint.
var Block = core.MustPattern("block",
	"##.",
	"##.",
	"...",
)

// Blinker is a period-2 oscillator.
var Blinker = core.MustPattern("blinker",
	"...",
	"###",
	"...",
)

// GosperGun is Gosper's glider gun. It emits a new glider every 30 generations.
var GosperGun = core.MustPattern("gosper-gun",
	"........................#.............",
	"......................#.#.............",
	"............##......##............##..",
	"...........#...#....##............##..",
	"##........#.....#...##................",
	"##........#...#.##....#.#.............",
	"..........#.....#.......#.............",
	"...........#...#......................",
	"............##........................",
)

var patterns = map[string]core.Pattern{
	Glider.Name():    Glider,
	Block.Name():     Block,
	Blinker.Name():   Blinker,
	GosperGun.Name(): GosperGun,
}

// LookupPattern returns the named pattern from the library.
func LookupPattern(name string) (core.Pattern, error) {
	p, ok := patterns[name]
	if !ok {
		return core.Pattern{}, fmt.Errorf("%w %q (have %v)", ErrUnknownPattern, name, Patterns())
	}
	return p, nil
}

// Patterns lists the library's pattern names in lexical order.
func Patterns() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

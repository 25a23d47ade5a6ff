//go:build ebiten

package ui

import (
	"image/color"

	"life-ca/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding    = 6
	hudLineHeight = 14
)

// HUD draws the status bar and, when toggled with H, the simulation parameters
// over the top-left corner of the grid.
type HUD struct {
	source     core.ParameterProvider
	showParams bool

	text color.Color
	back color.Color
}

// NewHUD constructs a HUD that reads its parameter panel from source.
func NewHUD(source core.ParameterProvider) *HUD {
	return &HUD{
		source: source,
		text:   color.RGBA{R: 255, G: 220, B: 90, A: 255},
		back:   color.RGBA{A: 180},
	}
}

// Update handles the HUD's own key bindings.
func (h *HUD) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.showParams = !h.showParams
	}
}

// Draw renders the HUD onto screen.
func (h *HUD) Draw(screen *ebiten.Image, generation, population int, paused bool) {
	lines := []string{StatusLine(generation, population, paused)}
	if h.showParams && h.source != nil {
		lines = append(lines, h.source.Parameters().Lines()...)
	}

	width := 0
	for _, l := range lines {
		if w := len(l) * basicfont.Face7x13.Advance; w > width {
			width = w
		}
	}
	height := len(lines)*hudLineHeight + hudPadding
	vector.DrawFilledRect(screen, 0, 0, float32(width+2*hudPadding), float32(height), h.back, false)

	for i, l := range lines {
		text.Draw(screen, l, basicfont.Face7x13, hudPadding, hudPadding+basicfont.Face7x13.Ascent+i*hudLineHeight, h.text)
	}
}

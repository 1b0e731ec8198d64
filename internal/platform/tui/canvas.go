package tui

import (
	"strings"

	"github.com/vovakirdan/typecatch/internal/assets"
	"github.com/vovakirdan/typecatch/internal/core"
)

// Canvas is the terminal core.Renderer: it resolves asset handles through
// the library and writes cells into a Screen.
type Canvas struct {
	screen *core.Screen
	lib    *assets.Library
}

// NewCanvas creates a renderer drawing into screen.
func NewCanvas(screen *core.Screen, lib *assets.Library) *Canvas {
	return &Canvas{screen: screen, lib: lib}
}

var _ core.Renderer = (*Canvas)(nil)

// Size returns the screen dimensions.
func (c *Canvas) Size() (int, int) {
	return c.screen.Width(), c.screen.Height()
}

// DrawBackground scatters the backdrop pattern over the surface and writes
// its decoration, letter-spaced, just above the gallery.
func (c *Canvas) DrawBackground(bg core.Handle) {
	b, ok := c.lib.Backdrop(bg)
	if !ok {
		return
	}
	w, h := c.Size()
	if b.Pattern != 0 && b.Density > 0 {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if (x*7+y*13)%b.Density == 0 {
					c.screen.SetColored(x, y, b.Pattern, b.Color)
				}
			}
		}
	}
	if b.Decoration != "" {
		spaced := strings.Join(strings.Split(b.Decoration, ""), " ")
		c.screen.DrawColoredTextCentered(h-9, spaced, b.Color)
	}
}

// DrawSprite draws multi-line art or a single icon glyph.
func (c *Canvas) DrawSprite(h core.Handle, x, y int) {
	art, ok := c.lib.Art(h)
	if !ok {
		return
	}
	for i, line := range art.Lines {
		c.drawArtLine(x, y+i, line, art.Color)
	}
}

// drawArtLine writes a sprite row leaving spaces transparent.
func (c *Canvas) drawArtLine(x, y int, line string, color core.Color) {
	col := x
	for _, r := range line {
		if r != ' ' {
			col += c.screen.DrawColoredText(col, y, string(r), color)
			continue
		}
		col++
	}
}

// DrawText writes one line of text.
func (c *Canvas) DrawText(x, y int, text string, color core.Color) {
	c.screen.DrawColoredText(x, y, text, color)
}

// DrawGlyph writes a single rune.
func (c *Canvas) DrawGlyph(x, y int, r rune, color core.Color) {
	c.screen.DrawColoredText(x, y, string(r), color)
}

// DrawTimerBar draws the remaining-time bar. The filled part shifts from
// green to amber to red as the ratio grows.
func (c *Canvas) DrawTimerBar(x, y, w int, ratio float64) {
	if w <= 0 {
		return
	}
	ratio = core.ClampF(ratio, 0, 1)
	color := core.ColorBrightGreen
	switch {
	case ratio >= 0.8:
		color = core.ColorBrightRed
	case ratio >= 0.55:
		color = core.ColorAmber
	}
	remaining := int(float64(w)*(1-ratio) + 0.5)
	for i := 0; i < w; i++ {
		if i < remaining {
			c.screen.SetColored(x+i, y, '█', color)
		} else {
			c.screen.SetColored(x+i, y, '░', core.ColorDimGray)
		}
	}
}

// DrawRoundedRect outlines r.
func (c *Canvas) DrawRoundedRect(r core.Rect, color core.Color) {
	c.screen.DrawRoundedBox(r, color)
}

// DrawGradientRect shades r from one colour to the other, left to right.
func (c *Canvas) DrawGradientRect(r core.Rect, from, to core.Color) {
	for x := r.X; x < r.Right(); x++ {
		color := core.Gradient(from, to, x-r.X, r.W)
		for y := r.Y; y < r.Bottom(); y++ {
			c.screen.SetColored(x, y, '░', color)
		}
	}
}

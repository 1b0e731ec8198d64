package typecatch

import (
	"fmt"
	"math"

	"github.com/vovakirdan/typecatch/internal/core"
)

const (
	messageWidth = 26
	ballRune     = '●'
)

// Render draws the current frame.
func (g *Game) Render(dst core.Renderer) {
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	s := g.session
	switch s.Phase() {
	case PhaseTransitioning:
		g.renderTransition(dst)
		return
	case PhaseEnded:
		g.renderEnd(dst)
		return
	}

	dst.DrawBackground(g.opts.Assets.SceneFor(s.TierInfo().Background))
	g.renderTarget(dst)
	g.renderHUD(dst)
	g.renderMessages(dst)
	g.renderGallery(dst)
	g.renderBall(dst)
	g.renderHelp(dst, "type the name   esc pause   ctrl+r restart")

	if s.Phase() == PhasePaused {
		g.renderMenu(dst, "PAUSED", pauseItems, g.pauseSel)
	}
}

func (g *Game) renderTooSmall(dst core.Renderer) {
	w, h := dst.Size()
	lines := []string{
		"Window too small",
		fmt.Sprintf("Need %dx%d, have %dx%d", MinWidth, MinHeight, w, h),
	}
	for i, l := range lines {
		dst.DrawText((w-core.TextWidth(l))/2, h/2+i, l, core.ColorDefault)
	}
}

func (g *Game) renderHUD(dst core.Renderer) {
	s := g.session
	cfg := g.opts.Config.Rules
	w := g.layout.W

	dst.DrawText(1, 0, "TYPECATCH", core.ColorBrightCyan)
	dst.DrawText(12, 0, fmt.Sprintf("Score %s", s.Score().StringFixed(0)), core.ColorBrightWhite)

	tier := s.TierInfo()
	right := fmt.Sprintf("%s  %d/%d  Window %d", tier.Name, s.Tier()+1, g.opts.Catalog.TierCount(), s.Window())
	dst.DrawText(w-core.TextWidth(right)-1, 0, right, core.ColorBrightYellow)

	stats := fmt.Sprintf("Caught %d/%d   Mistakes %d/%d   Total %d/%d",
		s.Caught(), cfg.CaptureCap, s.Mistakes(), cfg.MaxMistake, s.TotalMistakes(), cfg.MistakeCap)
	dst.DrawText(1, 1, stats, core.ColorGray)
	if c := s.Combo(); c >= minComboSpan {
		combo := fmt.Sprintf("Combo x%d", c)
		dst.DrawText(w-core.TextWidth(combo)-1, 1, combo, core.ColorOrange)
	}

	if sp := s.Special(); sp != "" {
		dst.DrawText((w-core.TextWidth(sp))/2, 3, sp, core.ColorBrightYellow)
	}
}

func (g *Game) renderMessages(dst core.Renderer) {
	x := g.layout.W - messageWidth - 1
	for i, m := range g.session.Messages() {
		c := core.ColorWhite
		if m == "Missed!" {
			c = core.ColorBrightRed
		}
		dst.DrawText(x, 4+i, core.Truncate(m, messageWidth), c)
	}
}

func (g *Game) renderTarget(dst core.Renderer) {
	s := g.session
	t := s.Target()
	if t == nil {
		return
	}

	dst.DrawBackground(t.Background)
	if !t.BallImpact {
		x, y := g.layout.SpriteOrigin(t.Walk + s.Jiggle())
		dst.DrawSprite(t.Sprite, x, y)
	}

	if !s.NameVisible() {
		return
	}
	name := []rune(t.Name)
	nameW := core.TextWidth(t.Name)
	box := g.layout.NameBox(nameW, t.Walk)
	border := core.ColorGray
	if t.Rare {
		border = core.ColorBrightYellow
	}
	dst.DrawRoundedRect(box, border)

	x := box.X + (box.W-nameW)/2
	typed := []rune(s.Typed())
	for i, r := range name {
		c := core.ColorBrightWhite
		if i < len(typed) {
			c = core.ColorBrightRed
			if i == len(typed)-1 && s.Pulsing() {
				c = core.ColorBrightYellow
			}
		}
		dst.DrawGlyph(x, box.Y+1, r, c)
		x += core.TextWidth(string(r))
	}

	if !t.Captured {
		dst.DrawTimerBar(box.X+2, box.Y+2, box.W-4, t.Ratio())
	}
}

func (g *Game) renderBall(dst core.Renderer) {
	a := g.session.Animation()
	switch a.Phase() {
	case AnimParabolic:
		x, y := a.Pos().Cell()
		dst.DrawGlyph(x, y, ballRune, core.ColorBrightRed)
	case AnimHalo:
		g.renderHalo(dst, a.HaloCenter(), a.HaloScale())
	case AnimBeeline:
		x, y := a.Pos().Cell()
		dst.DrawSprite(a.Icon(), x, y)
	}
}

// renderHalo draws a ring whose radius follows the halo scale.
func (g *Game) renderHalo(dst core.Renderer, center core.Vec, scale float64) {
	r := 1 + scale*3
	cx, cy := center.Cell()
	dst.DrawGlyph(cx, cy, ballRune, core.ColorBrightRed)
	for i := 0; i < 16; i++ {
		angle := float64(i) * math.Pi / 8
		x := cx + int(math.Round(math.Cos(angle)*r*2))
		y := cy + int(math.Round(math.Sin(angle)*r))
		dst.DrawGlyph(x, y, '*', core.ColorBrightYellow)
	}
}

func (g *Game) renderGallery(dst core.Renderer) {
	s := g.session
	frame := g.layout.Gallery()
	dst.DrawRoundedRect(frame, core.ColorGray)
	dst.DrawText(frame.X+2, frame.Y, " Gallery ", core.ColorGray)

	for _, sp := range s.Spans() {
		g.renderSpan(dst, sp)
	}

	// the slot of a capture still in flight stays empty until the ball lands
	history := s.History()
	pending := -1
	if s.Animation().Active() {
		pending = len(history) - 1
	}
	for i, rec := range history {
		if i >= GalleryCols*GalleryRows {
			break
		}
		if i == pending {
			continue
		}
		x, y := g.layout.Slot(i)
		dst.DrawSprite(rec.Icon, x, y)
		if r, c := badge(rec); r != 0 {
			dst.DrawGlyph(x+1, y, r, c)
		}
	}
}

// renderSpan highlights a combo span, one rectangle per gallery row it covers.
func (g *Game) renderSpan(dst core.Renderer, sp ComboSpan) {
	last := GalleryCols*GalleryRows - 1
	for i := sp.Start; i < sp.End && i <= last; {
		row := i / GalleryCols
		end := min(sp.End, (row+1)*GalleryCols, last+1)
		x0, y := g.layout.Slot(i)
		x1, _ := g.layout.Slot(end - 1)
		dst.DrawGradientRect(core.NewRect(x0-1, y, x1-x0+slotWidth, 1), core.ColorOrange, core.ColorDarkOrange)
		i = end
	}
}

func badge(rec CapturedRecord) (rune, core.Color) {
	switch {
	case rec.Rare:
		return '★', core.ColorBrightYellow
	case rec.SuperFast:
		return '»', core.ColorBrightCyan
	case rec.Fast:
		return '›', core.ColorBrightGreen
	}
	return 0, core.ColorDefault
}

func (g *Game) renderTransition(dst core.Renderer) {
	s := g.session
	tier := s.TierInfo()
	w, h := g.layout.W, g.layout.H
	dst.DrawBackground(g.opts.Assets.SceneFor(tier.Background))

	type line struct {
		text string
		c    core.Color
	}
	lines := []line{
		{fmt.Sprintf("Tier %d/%d", s.Tier()+1, g.opts.Catalog.TierCount()), core.ColorGray},
		{tier.Name, core.ColorBrightYellow},
		{"", core.ColorDefault},
	}
	for _, m := range s.Messages() {
		lines = append(lines, line{m, core.ColorWhite})
	}

	top := h/2 - len(lines)/2
	for i, l := range lines {
		dst.DrawText((w-core.TextWidth(l.text))/2, top+i, l.text, l.c)
	}
	g.renderGallery(dst)
}

func (g *Game) renderEnd(dst core.Renderer) {
	s := g.session
	sum := s.Summary()
	w := g.layout.W

	lines := []string{
		"RUN OVER",
		sum.Reason,
		"",
		fmt.Sprintf("Score         %s", sum.Score.StringFixed(0)),
		fmt.Sprintf("Caught        %d", sum.Caught),
		fmt.Sprintf("Mistakes      %d", sum.TotalMistakes),
		fmt.Sprintf("Best tier     %s", sum.TierName),
		fmt.Sprintf("Longest combo %d", sum.LongestCombo),
	}
	for i, l := range lines {
		c := core.ColorWhite
		if i == 0 {
			c = core.ColorBrightYellow
		}
		dst.DrawText((w-core.TextWidth(l))/2, 2+i, l, c)
	}

	g.renderGallery(dst)
	g.renderMenu(dst, "", endItems, g.endSel)
	g.renderHelp(dst, "enter select   ctrl+r restart   ctrl+c quit")
}

// renderMenu draws a small boxed menu on the right side of the screen.
func (g *Game) renderMenu(dst core.Renderer, title string, items []string, sel int) {
	width := 18
	rows := len(items)
	if title != "" {
		rows += 2
	}
	box := core.NewRect(g.layout.W-width-3, g.layout.H-rows-4, width, rows+2)
	dst.DrawRoundedRect(box, core.ColorBrightWhite)

	y := box.Y + 1
	if title != "" {
		dst.DrawText(box.X+(width-core.TextWidth(title))/2, y, title, core.ColorBrightYellow)
		y += 2
	}
	for i, item := range items {
		prefix, c := "  ", core.ColorGray
		if i == sel {
			prefix, c = "> ", core.ColorBrightWhite
		}
		dst.DrawText(box.X+2, y+i, prefix+item, c)
	}
}

func (g *Game) renderHelp(dst core.Renderer, help string) {
	dst.DrawText(g.layout.W-core.TextWidth(help)-1, g.layout.H-1, help, core.ColorDimGray)
}

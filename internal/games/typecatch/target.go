package typecatch

import (
	"strings"

	"github.com/vovakirdan/typecatch/internal/assets"
	"github.com/vovakirdan/typecatch/internal/core"
	"github.com/vovakirdan/typecatch/internal/registry"
)

// walkRange is how far, in cells, a target strolls either side of centre.
const walkRange = 3

// Target is one spawned creature with live timing.
type Target struct {
	ID        int
	Name      string // uppercase comparison form
	Localized map[string]string
	Rare      bool

	SpawnTime   int64
	Budget      int64
	PausedTotal int64
	Elapsed     int64
	CapturedAt  *int64

	Captured   bool
	BallImpact bool
	HintShown  bool

	Icon       core.Handle
	Sprite     core.Handle
	Background core.Handle
	Cry        core.Handle
	NameSound  core.Handle // core.None when the creature has no spoken name

	Walk    int
	walkDir int
}

func newTarget(d registry.Descriptor, rare bool, budget, now int64, p assets.Provider) *Target {
	t := &Target{
		ID:         d.ID,
		Name:       strings.ToUpper(d.Name),
		Localized:  d.Localized,
		Rare:       rare,
		SpawnTime:  now,
		Budget:     budget,
		Icon:       p.IconFor(d.ID),
		Sprite:     p.SpriteFor(d.ID),
		Background: p.BackgroundFor(d.ID),
		Cry:        p.CrySoundFor(d.ID),
		walkDir:    1,
	}
	if h, ok := p.NameSoundFor(d.ID); ok {
		t.NameSound = h
	}
	return t
}

// elapsedAt computes pause-compensated elapsed time without storing it.
func (t *Target) elapsedAt(now int64) int64 {
	e := now - t.SpawnTime - t.PausedTotal
	return max(e, t.Elapsed)
}

// Tick refreshes Elapsed. Elapsed never decreases and stops at capture.
func (t *Target) Tick(now int64) {
	if t.Captured {
		return
	}
	t.Elapsed = t.elapsedAt(now)
}

// Expired reports whether the budget has run out.
func (t *Target) Expired() bool {
	return !t.Captured && t.Elapsed > t.Budget
}

// Ratio is the used fraction of the budget, 0 to 1.
func (t *Target) Ratio() float64 {
	if t.Budget <= 0 {
		return 1
	}
	return core.ClampF(float64(t.Elapsed)/float64(t.Budget), 0, 1)
}

// Match compares typed input against the name.
func (t *Target) Match(typed []rune) (prefix, full bool) {
	name := []rune(t.Name)
	if len(typed) > len(name) {
		return false, false
	}
	for i, r := range typed {
		if name[i] != r {
			return false, false
		}
	}
	return true, len(typed) == len(name)
}

// step moves the walk offset one cell, turning at the edges.
func (t *Target) step() {
	if t.Walk+t.walkDir > walkRange || t.Walk+t.walkDir < -walkRange {
		t.walkDir = -t.walkDir
	}
	t.Walk += t.walkDir
}

package typecatch

import (
	"github.com/vovakirdan/typecatch/internal/config"
)

// Decision is the outcome of a window evaluation.
type Decision int

const (
	DecisionStay Decision = iota
	DecisionAdvance
	DecisionRegress
)

func (d Decision) String() string {
	switch d {
	case DecisionAdvance:
		return "advance"
	case DecisionRegress:
		return "regress"
	default:
		return "stay"
	}
}

// Progression decides tier moves from a window of captures.
type Progression struct {
	PassMark   float64
	MaxMistake int
	Enabled    bool
}

// NewProgression builds the engine from config.
func NewProgression(cfg config.GameConfig) Progression {
	return Progression{
		PassMark:   cfg.Rules.PassMark,
		MaxMistake: cfg.Rules.MaxMistake,
		Enabled:    cfg.Difficulty.Enabled,
	}
}

// Signal scores a window: one point per rare or super fast capture,
// half a point per fast capture.
func (p Progression) Signal(window []CapturedRecord) float64 {
	var full, half int
	for _, r := range window {
		switch {
		case r.Rare || r.SuperFast:
			full++
		case r.Fast:
			half++
		}
	}
	return float64(full) + float64(half)/2
}

// Evaluate returns the tier decision for a completed window.
// A disabled engine always stays.
func (p Progression) Evaluate(window []CapturedRecord, mistakes int) Decision {
	if !p.Enabled {
		return DecisionStay
	}
	signal := p.Signal(window)
	switch {
	case signal >= p.PassMark && mistakes <= p.MaxMistake:
		return DecisionAdvance
	case signal < p.PassMark/2 || mistakes > 2*p.MaxMistake:
		return DecisionRegress
	default:
		return DecisionStay
	}
}

// Apply moves tier by the decision, clamped to [0, tiers-1].
func (p Progression) Apply(d Decision, tier, tiers int) int {
	switch d {
	case DecisionAdvance:
		tier++
	case DecisionRegress:
		tier--
	}
	if tier >= tiers {
		tier = tiers - 1
	}
	if tier < 0 {
		tier = 0
	}
	return tier
}

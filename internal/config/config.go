// Package config provides YAML/TOML game configuration loading, validation
// and difficulty presets for typecatch.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// GameConfig contains every tunable of a typecatch session.
type GameConfig struct {
	Rules      RulesConfig      `yaml:"rules" toml:"rules"`
	Timing     TimingConfig     `yaml:"timing" toml:"timing"`
	Scoring    ScoringConfig    `yaml:"scoring" toml:"scoring"`
	Rarity     RarityConfig     `yaml:"rarity" toml:"rarity"`
	Animation  AnimationConfig  `yaml:"animation" toml:"animation"`
	Display    DisplayConfig    `yaml:"display" toml:"display"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// RulesConfig defines progression windows and run termination.
type RulesConfig struct {
	WindowSize int     `yaml:"window_size" toml:"window_size"` // captures per evaluation window
	PassMark   float64 `yaml:"pass_mark" toml:"pass_mark"`
	MaxMistake int     `yaml:"max_mistake" toml:"max_mistake"`
	CaptureCap int     `yaml:"capture_cap" toml:"capture_cap"` // lifetime captures that end the run
	MistakeCap int     `yaml:"mistake_cap" toml:"mistake_cap"` // lifetime mistakes above which the run ends
}

// TimingConfig holds budgets and deferred-action delays, all in milliseconds.
type TimingConfig struct {
	NormalBudgetMs   int64 `yaml:"normal_budget_ms" toml:"normal_budget_ms"`
	RareBudgetMs     int64 `yaml:"rare_budget_ms" toml:"rare_budget_ms"`
	CatchDelayMs     int64 `yaml:"catch_delay_ms" toml:"catch_delay_ms"`
	TypoFirstDelayMs int64 `yaml:"typo_first_delay_ms" toml:"typo_first_delay_ms"`
	TypoMidDelayMs   int64 `yaml:"typo_mid_delay_ms" toml:"typo_mid_delay_ms"`
	TimeoutDelayMs   int64 `yaml:"timeout_delay_ms" toml:"timeout_delay_ms"`
	MessageClearMs   int64 `yaml:"message_clear_ms" toml:"message_clear_ms"`
	SpecialMessageMs int64 `yaml:"special_message_ms" toml:"special_message_ms"`
	TransitionMs     int64 `yaml:"transition_ms" toml:"transition_ms"`
	NameHintMs       int64 `yaml:"name_hint_ms" toml:"name_hint_ms"`
	JiggleMs         int64 `yaml:"jiggle_ms" toml:"jiggle_ms"`
	WalkMs           int64 `yaml:"walk_ms" toml:"walk_ms"`
}

// ScoringConfig defines the combo reward schedule and speed buckets.
type ScoringConfig struct {
	ComboTable          []int   `yaml:"combo_table" toml:"combo_table"`
	OverflowStep        int     `yaml:"overflow_step" toml:"overflow_step"`     // reward per combo beyond the table
	OverflowOffset      int     `yaml:"overflow_offset" toml:"overflow_offset"` // combo count the overflow is measured from
	RareScore           int     `yaml:"rare_score" toml:"rare_score"`
	SuperFastRatio      float64 `yaml:"super_fast_ratio" toml:"super_fast_ratio"`
	FastRatio           float64 `yaml:"fast_ratio" toml:"fast_ratio"`
	SuperFastMultiplier float64 `yaml:"super_fast_multiplier" toml:"super_fast_multiplier"`
	FastMultiplier      float64 `yaml:"fast_multiplier" toml:"fast_multiplier"`
}

// RarityConfig sets the six-attribute total at or above which a creature is rare.
type RarityConfig struct {
	Cutoff int `yaml:"cutoff" toml:"cutoff"`
}

// AnimationConfig tunes the capture animation, in cells and milliseconds.
type AnimationConfig struct {
	ParabolicSpeed   float64 `yaml:"parabolic_speed" toml:"parabolic_speed"` // cells per second
	ArcHeight        float64 `yaml:"arc_height" toml:"arc_height"`
	ArrivalThreshold float64 `yaml:"arrival_threshold" toml:"arrival_threshold"`
	HaloMs           int64   `yaml:"halo_ms" toml:"halo_ms"`
	BeelineSpeed     float64 `yaml:"beeline_speed" toml:"beeline_speed"` // cells per second
	PulseMs          int64   `yaml:"pulse_ms" toml:"pulse_ms"`
}

// DisplayConfig holds presentation-only settings.
type DisplayConfig struct {
	Locale string `yaml:"locale" toml:"locale"` // localized name shown as backdrop decoration
}

// DifficultyConfig controls tier progression.
type DifficultyConfig struct {
	Enabled         bool    `yaml:"enabled" toml:"enabled"` // false pins the run to StartTier
	StartTier       int     `yaml:"start_tier" toml:"start_tier"`
	BudgetReduction float64 `yaml:"budget_reduction" toml:"budget_reduction"` // budget shrink at the last tier, 0..0.9
}

// Validate checks that the configuration can drive a session.
func (c GameConfig) Validate() error {
	var problems []string
	check := func(ok bool, msg string, args ...any) {
		if !ok {
			problems = append(problems, fmt.Sprintf(msg, args...))
		}
	}

	check(c.Rules.WindowSize > 0, "rules.window_size must be positive, got %d", c.Rules.WindowSize)
	check(c.Rules.PassMark > 0, "rules.pass_mark must be positive, got %v", c.Rules.PassMark)
	check(c.Rules.MaxMistake >= 0, "rules.max_mistake must not be negative")
	check(c.Rules.CaptureCap > 0, "rules.capture_cap must be positive, got %d", c.Rules.CaptureCap)
	check(c.Rules.MistakeCap >= 0, "rules.mistake_cap must not be negative")

	t := c.Timing
	check(t.NormalBudgetMs > 0, "timing.normal_budget_ms must be positive, got %d", t.NormalBudgetMs)
	check(t.RareBudgetMs > 0, "timing.rare_budget_ms must be positive, got %d", t.RareBudgetMs)
	for _, d := range []struct {
		name string
		v    int64
	}{
		{"catch_delay_ms", t.CatchDelayMs},
		{"typo_first_delay_ms", t.TypoFirstDelayMs},
		{"typo_mid_delay_ms", t.TypoMidDelayMs},
		{"timeout_delay_ms", t.TimeoutDelayMs},
		{"message_clear_ms", t.MessageClearMs},
		{"special_message_ms", t.SpecialMessageMs},
		{"transition_ms", t.TransitionMs},
		{"name_hint_ms", t.NameHintMs},
	} {
		check(d.v >= 0, "timing.%s must not be negative, got %d", d.name, d.v)
	}
	check(t.JiggleMs > 0 && t.WalkMs > 0, "timing.jiggle_ms and timing.walk_ms must be positive")

	s := c.Scoring
	check(len(s.ComboTable) > 0, "scoring.combo_table must not be empty")
	for i, v := range s.ComboTable {
		check(v >= 0, "scoring.combo_table[%d] must not be negative, got %d", i, v)
	}
	check(s.RareScore >= 0, "scoring.rare_score must not be negative")
	check(s.SuperFastRatio > 0 && s.SuperFastRatio <= s.FastRatio && s.FastRatio <= 1,
		"scoring ratios must satisfy 0 < super_fast_ratio <= fast_ratio <= 1, got %v and %v", s.SuperFastRatio, s.FastRatio)
	check(s.SuperFastMultiplier >= s.FastMultiplier && s.FastMultiplier >= 1,
		"scoring multipliers must satisfy super_fast >= fast >= 1")

	a := c.Animation
	check(a.ParabolicSpeed > 0 && a.BeelineSpeed > 0, "animation speeds must be positive")
	check(a.ArrivalThreshold > 0, "animation.arrival_threshold must be positive")
	check(a.HaloMs > 0, "animation.halo_ms must be positive")

	check(c.Difficulty.StartTier >= 0, "difficulty.start_tier must not be negative")
	check(c.Difficulty.BudgetReduction >= 0 && c.Difficulty.BudgetReduction <= 0.9,
		"difficulty.budget_reduction must be within [0, 0.9], got %v", c.Difficulty.BudgetReduction)

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	for _, p := range Presets {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", ErrInvalid, s)
}

// IsFixedPreset returns true if the preset disables tier progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Next cycles through the presets, wrapping at the end.
func (p DifficultyPreset) Next() DifficultyPreset {
	for i, q := range Presets {
		if q == p {
			return Presets[(i+1)%len(Presets)]
		}
	}
	return DifficultyNormal
}

package config

import (
	_ "embed"
)

//go:embed defaults/typecatch.yaml
var defaultGameYAML []byte

// DefaultComboTable is the reward schedule for combos 1 through 20.
var DefaultComboTable = []int{
	100, 150, 200, 250, 300, 400, 500, 600, 800, 1000,
	1200, 1400, 1600, 1800, 2000, 2200, 2400, 2600, 2800, 3000,
}

// DefaultConfig returns the hardcoded configuration used when no file and
// no embedded default can be read.
func DefaultConfig() GameConfig {
	return GameConfig{
		Rules: RulesConfig{
			WindowSize: 10,
			PassMark:   7,
			MaxMistake: 5,
			CaptureCap: 50,
			MistakeCap: 10,
		},
		Timing: TimingConfig{
			NormalBudgetMs:   9000,
			RareBudgetMs:     4000,
			CatchDelayMs:     1000,
			TypoFirstDelayMs: 500,
			TypoMidDelayMs:   300,
			TimeoutDelayMs:   10,
			MessageClearMs:   1000,
			SpecialMessageMs: 1000,
			TransitionMs:     3000,
			NameHintMs:       3000,
			JiggleMs:         110,
			WalkMs:           200,
		},
		Scoring: ScoringConfig{
			ComboTable:          append([]int(nil), DefaultComboTable...),
			OverflowStep:        500,
			OverflowOffset:      14,
			RareScore:           10000,
			SuperFastRatio:      0.35,
			FastRatio:           0.55,
			SuperFastMultiplier: 1.5,
			FastMultiplier:      1.2,
		},
		Rarity: RarityConfig{
			Cutoff: 580,
		},
		Animation: AnimationConfig{
			ParabolicSpeed:   40,
			ArcHeight:        6,
			ArrivalThreshold: 1,
			HaloMs:           300,
			BeelineSpeed:     60,
			PulseMs:          150,
		},
		Display: DisplayConfig{
			Locale: "ko",
		},
		Difficulty: DifficultyConfig{
			Enabled:         true,
			StartTier:       0,
			BudgetReduction: 0,
		},
	}
}

package config

import "math"

// BudgetScaler shrinks capture budgets as the run climbs tiers.
// With a zero reduction every tier uses the configured budgets unchanged.
type BudgetScaler struct {
	normal    int64
	rare      int64
	reduction float64
	tiers     int
}

// NewBudgetScaler creates a scaler for a catalog with the given tier count.
func NewBudgetScaler(cfg GameConfig, tiers int) *BudgetScaler {
	return &BudgetScaler{
		normal:    cfg.Timing.NormalBudgetMs,
		rare:      cfg.Timing.RareBudgetMs,
		reduction: clampF(cfg.Difficulty.BudgetReduction, 0, 0.9),
		tiers:     tiers,
	}
}

// Level returns how far tier is through the tier list, 0.0 to 1.0.
func (b *BudgetScaler) Level(tier int) float64 {
	if b.tiers <= 1 {
		return 0
	}
	return clampF(float64(tier)/float64(b.tiers-1), 0, 1)
}

// Budget returns the capture budget in milliseconds for a creature in tier.
// The result is always at least one millisecond.
func (b *BudgetScaler) Budget(rare bool, tier int) int64 {
	base := b.normal
	if rare {
		base = b.rare
	}
	scaled := int64(math.Round(float64(base) * (1 - b.Level(tier)*b.reduction)))
	if scaled < 1 {
		scaled = 1
	}
	return scaled
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}

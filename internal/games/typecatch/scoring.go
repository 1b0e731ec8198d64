package typecatch

import (
	"github.com/shopspring/decimal"

	"github.com/vovakirdan/typecatch/internal/config"
)

// SpeedBucket classifies how quickly a target was caught.
type SpeedBucket int

const (
	SpeedNormal SpeedBucket = iota
	SpeedFast
	SpeedSuperFast
)

func (b SpeedBucket) String() string {
	switch b {
	case SpeedFast:
		return "fast"
	case SpeedSuperFast:
		return "super fast"
	default:
		return "normal"
	}
}

// Award is the breakdown of one capture's points.
type Award struct {
	Base       decimal.Decimal
	Multiplier decimal.Decimal
	Bucket     SpeedBucket
	Points     decimal.Decimal
}

// Scorer computes capture rewards. It holds its own copy of the reward
// table and never modifies it.
type Scorer struct {
	table          []int
	overflowStep   int
	overflowOffset int
	rareScore      decimal.Decimal
	superFastRatio decimal.Decimal
	fastRatio      decimal.Decimal
	superFastMul   decimal.Decimal
	fastMul        decimal.Decimal
}

// NewScorer creates a scorer from the scoring config.
func NewScorer(cfg config.ScoringConfig) *Scorer {
	return &Scorer{
		table:          append([]int(nil), cfg.ComboTable...),
		overflowStep:   cfg.OverflowStep,
		overflowOffset: cfg.OverflowOffset,
		rareScore:      decimal.NewFromInt(int64(cfg.RareScore)),
		superFastRatio: decimal.NewFromFloat(cfg.SuperFastRatio),
		fastRatio:      decimal.NewFromFloat(cfg.FastRatio),
		superFastMul:   decimal.NewFromFloat(cfg.SuperFastMultiplier),
		fastMul:        decimal.NewFromFloat(cfg.FastMultiplier),
	}
}

// ComboReward returns the base reward for the n-th consecutive capture.
// Counts past the table continue linearly from the overflow offset, which
// does not join up with the last table entry.
func (s *Scorer) ComboReward(n int) int {
	if n < 1 {
		return 0
	}
	if n <= len(s.table) {
		return s.table[n-1]
	}
	return s.overflowStep * (n - s.overflowOffset)
}

// Bucket classifies elapsed/budget. Boundaries belong to the faster bucket.
func (s *Scorer) Bucket(elapsed, budget int64) SpeedBucket {
	if budget <= 0 {
		return SpeedNormal
	}
	e := decimal.NewFromInt(elapsed)
	b := decimal.NewFromInt(budget)
	switch {
	case e.LessThanOrEqual(s.superFastRatio.Mul(b)):
		return SpeedSuperFast
	case e.LessThanOrEqual(s.fastRatio.Mul(b)):
		return SpeedFast
	default:
		return SpeedNormal
	}
}

// SpeedMultiplier returns the score multiplier for a capture time.
func (s *Scorer) SpeedMultiplier(elapsed, budget int64) decimal.Decimal {
	return s.multiplier(s.Bucket(elapsed, budget))
}

func (s *Scorer) multiplier(b SpeedBucket) decimal.Decimal {
	switch b {
	case SpeedSuperFast:
		return s.superFastMul
	case SpeedFast:
		return s.fastMul
	default:
		return decimal.NewFromInt(1)
	}
}

// CaptureScore scores a capture. Rare targets earn the flat rare score in
// place of the combo reward.
func (s *Scorer) CaptureScore(combo int, rare bool, elapsed, budget int64) Award {
	base := decimal.NewFromInt(int64(s.ComboReward(combo)))
	if rare {
		base = s.rareScore
	}
	bucket := s.Bucket(elapsed, budget)
	mul := s.multiplier(bucket)
	return Award{
		Base:       base,
		Multiplier: mul,
		Bucket:     bucket,
		Points:     base.Mul(mul),
	}
}

package typecatch

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/vovakirdan/typecatch/internal/config"
)

func defaultScorer() *Scorer {
	return NewScorer(config.DefaultConfig().Scoring)
}

func TestComboReward(t *testing.T) {
	s := defaultScorer()
	tests := []struct {
		combo int
		want  int
	}{
		{-1, 0},
		{0, 0},
		{1, 100},
		{2, 150},
		{10, 1000},
		{14, 1800},
		{20, 3000},
		{21, 3500},
		{22, 4000},
		{30, 8000},
	}
	for _, tt := range tests {
		if got := s.ComboReward(tt.combo); got != tt.want {
			t.Errorf("ComboReward(%d) = %d, want %d", tt.combo, got, tt.want)
		}
	}
}

func TestComboRewardDoesNotShareTable(t *testing.T) {
	cfg := config.DefaultConfig().Scoring
	s := NewScorer(cfg)
	cfg.ComboTable[0] = 1
	if got := s.ComboReward(1); got != 100 {
		t.Errorf("scorer table changed with config: ComboReward(1) = %d", got)
	}
}

func TestSpeedBuckets(t *testing.T) {
	s := defaultScorer()
	tests := []struct {
		elapsed, budget int64
		want            SpeedBucket
		mul             string
	}{
		{0, 9000, SpeedSuperFast, "1.5"},
		{3150, 9000, SpeedSuperFast, "1.5"},
		{3151, 9000, SpeedFast, "1.2"},
		{4950, 9000, SpeedFast, "1.2"},
		{4951, 9000, SpeedNormal, "1"},
		{1400, 4000, SpeedSuperFast, "1.5"},
		{2200, 4000, SpeedFast, "1.2"},
		{9000, 9000, SpeedNormal, "1"},
		{10, 0, SpeedNormal, "1"},
	}
	for _, tt := range tests {
		if got := s.Bucket(tt.elapsed, tt.budget); got != tt.want {
			t.Errorf("Bucket(%d, %d) = %v, want %v", tt.elapsed, tt.budget, got, tt.want)
		}
		if got := s.SpeedMultiplier(tt.elapsed, tt.budget).String(); got != tt.mul {
			t.Errorf("SpeedMultiplier(%d, %d) = %s, want %s", tt.elapsed, tt.budget, got, tt.mul)
		}
	}
}

func TestCaptureScore(t *testing.T) {
	s := defaultScorer()

	a := s.CaptureScore(3, false, 1000, 9000)
	if !a.Points.Equal(decimal.NewFromInt(300)) {
		t.Errorf("combo 3 super fast = %s, want 300", a.Points)
	}
	a = s.CaptureScore(2, false, 4000, 9000)
	if !a.Points.Equal(decimal.NewFromInt(180)) {
		t.Errorf("combo 2 fast = %s, want 180", a.Points)
	}
	a = s.CaptureScore(1, false, 8000, 9000)
	if !a.Points.Equal(decimal.NewFromInt(100)) {
		t.Errorf("combo 1 normal = %s, want 100", a.Points)
	}
}

func TestRareScoreIgnoresCombo(t *testing.T) {
	s := defaultScorer()
	for _, combo := range []int{1, 5, 20, 40} {
		a := s.CaptureScore(combo, true, 3000, 4000)
		if !a.Points.Equal(decimal.NewFromInt(10000)) {
			t.Errorf("rare at combo %d = %s, want 10000", combo, a.Points)
		}
	}
	a := s.CaptureScore(7, true, 500, 4000)
	if !a.Points.Equal(decimal.NewFromInt(15000)) {
		t.Errorf("super fast rare = %s, want 15000", a.Points)
	}
}

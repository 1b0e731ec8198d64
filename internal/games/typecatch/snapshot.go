package typecatch

// Snapshot captures the observable session state for determinism testing
// and replay.
type Snapshot struct {
	Phase         string
	Score         string
	Caught        int
	Combo         int
	Mistakes      int
	TotalMistakes int
	Tier          int
	Window        int
	HighestTier   int
	TargetID      int // 0 when no target is live
	TargetRare    bool
	Elapsed       int64
	Typed         string
	History       []int
	Spans         []ComboSpan
	Messages      []string
	Special       string
	Anim          string
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:         s.phase.String(),
		Score:         s.score.String(),
		Caught:        s.caught,
		Combo:         s.combo,
		Mistakes:      s.mistakes,
		TotalMistakes: s.totalMistakes,
		Tier:          s.tier,
		Window:        s.window,
		HighestTier:   s.highestTier,
		Elapsed:       s.elapsed,
		Typed:         string(s.typed),
		Spans:         s.Spans(),
		Messages:      s.feed.Lines(),
		Special:       s.feed.Special(),
		Anim:          s.anim.Phase().String(),
	}
	if t := s.target; t != nil {
		snap.TargetID = t.ID
		snap.TargetRare = t.Rare
	}
	for _, rec := range s.history {
		snap.History = append(snap.History, rec.TargetID)
	}
	return snap
}

// Snapshot returns the snapshot of the running session.
func (g *Game) Snapshot() Snapshot {
	return g.session.Snapshot()
}

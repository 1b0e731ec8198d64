package typecatch

import (
	"fmt"
	"io"
	"math/rand"
	"unicode"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vovakirdan/typecatch/internal/assets"
	"github.com/vovakirdan/typecatch/internal/audio"
	"github.com/vovakirdan/typecatch/internal/config"
	"github.com/vovakirdan/typecatch/internal/core"
	"github.com/vovakirdan/typecatch/internal/registry"
)

// Phase is the top-level state of a session.
type Phase int

const (
	PhaseActive Phase = iota
	PhasePaused
	PhaseTransitioning
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhasePaused:
		return "paused"
	case PhaseTransitioning:
		return "transitioning"
	case PhaseEnded:
		return "ended"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// phaseTransitions lists every legal phase change. Ended has no way out;
// Restart rebuilds the session instead.
var phaseTransitions = map[Phase][]Phase{
	PhaseActive:        {PhasePaused, PhaseTransitioning, PhaseEnded},
	PhasePaused:        {PhaseActive, PhaseEnded},
	PhaseTransitioning: {PhaseActive},
}

func canTransition(from, to Phase) bool {
	for _, p := range phaseTransitions[from] {
		if p == to {
			return true
		}
	}
	return false
}

// PauseReason tells a user pause apart from a tier transition.
// Only user pauses silence the music.
type PauseReason int

const (
	PauseUser PauseReason = iota
	PauseTransition
)

// CapturedRecord is one entry of the capture history.
type CapturedRecord struct {
	Icon      core.Handle
	TargetID  int
	Name      string
	Rare      bool
	Fast      bool
	SuperFast bool
	Tier      int
	Points    decimal.Decimal
}

// ComboSpan is a half-open range [Start, End) of history indices that
// formed one combo of at least three captures.
type ComboSpan struct {
	Start, End int
}

// Len returns the number of captures in the span.
func (c ComboSpan) Len() int { return c.End - c.Start }

// minComboSpan is the shortest combo that is archived and highlighted.
const minComboSpan = 3

// Deps are the collaborators a session calls out to.
type Deps struct {
	Catalog *registry.Catalog
	Assets  assets.Provider
	Audio   audio.Output
	Logger  *log.Logger
	Rand    *rand.Rand
}

// Summary describes a finished (or running) run.
type Summary struct {
	RunID         string
	Score         decimal.Decimal
	Caught        int
	TotalMistakes int
	HighestTier   int
	TierName      string
	LongestCombo  int
	Reason        string
}

// Session owns all state of one run. It is driven by a single goroutine
// and does no locking.
type Session struct {
	cfg      config.GameConfig
	catalog  *registry.Catalog
	assets   assets.Provider
	audio    audio.Output
	logger   *log.Logger
	rng      *rand.Rand
	cosmetic *rand.Rand

	scorer  *Scorer
	prog    Progression
	budgets *config.BudgetScaler
	layout  Layout

	runID       uuid.UUID
	phase       Phase
	pauseReason PauseReason
	pausedAt    int64
	start       int64
	pausedTotal int64
	elapsed     int64
	now         int64

	caught        int
	combo         int
	mistakes      int
	totalMistakes int
	score         decimal.Decimal

	tier        int
	window      int
	highestTier int
	windowStart int
	decision    Decision

	history []CapturedRecord
	spans   []ComboSpan
	typed   []rune
	target  *Target

	timers     Timers
	feed       Feed
	anim       *CaptureAnimation
	jiggle     int
	pulseUntil int64
	endReason  string

	onEnd func(Summary)
}

// NewSession creates a session and starts the first run at now.
func NewSession(cfg config.GameConfig, deps Deps, now int64) *Session {
	if deps.Audio == nil {
		deps.Audio = audio.Null{}
	}
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}
	if deps.Rand == nil {
		deps.Rand = rand.New(rand.NewSource(now))
	}

	s := &Session{
		cfg:      cfg,
		catalog:  deps.Catalog,
		assets:   deps.Assets,
		audio:    deps.Audio,
		logger:   deps.Logger,
		rng:      deps.Rand,
		cosmetic: rand.New(rand.NewSource(deps.Rand.Int63())),
		scorer:   NewScorer(cfg.Scoring),
		prog:     NewProgression(cfg),
		budgets:  config.NewBudgetScaler(cfg, deps.Catalog.TierCount()),
		layout:   Layout{W: MinWidth, H: MinHeight},
	}
	s.Restart(now)
	return s
}

// SetLayout updates the screen geometry used for animation endpoints.
func (s *Session) SetLayout(l Layout) { s.layout = l }

// OnEnd registers a callback run once each time the session ends.
func (s *Session) OnEnd(fn func(Summary)) { s.onEnd = fn }

// Restart throws the current run away and starts a fresh one at tier
// start_tier with every counter at zero.
func (s *Session) Restart(now int64) {
	s.runID = uuid.New()
	s.phase = PhaseActive
	s.pauseReason = PauseUser
	s.pausedAt = 0
	s.start = now
	s.pausedTotal = 0
	s.elapsed = 0
	s.now = now

	s.caught = 0
	s.combo = 0
	s.mistakes = 0
	s.totalMistakes = 0
	s.score = decimal.Zero

	s.tier = core.Clamp(s.cfg.Difficulty.StartTier, 0, s.catalog.TierCount()-1)
	s.window = 1
	s.highestTier = s.tier
	s.windowStart = 0
	s.decision = DecisionStay

	s.history = nil
	s.spans = nil
	s.typed = nil
	s.target = nil

	s.timers.Clear()
	s.feed = Feed{}
	s.anim = NewCaptureAnimation(s.cfg.Animation)
	s.anim.onTransfer = func(from, to AnimPhase) {
		s.logger.Debug("capture animation", "from", from, "to", to)
	}
	s.jiggle = 0
	s.pulseUntil = 0
	s.endReason = ""

	tier := s.catalog.Tier(s.tier)
	s.audio.StopMusic()
	s.audio.PlayMusic(s.assets.MusicFor(tier.Music))
	s.logger.Info("run started", "run", s.runID, "tier", tier.Name)

	s.scheduleJiggle(now)
	s.scheduleWalk(now)
	s.SpawnTarget(now)
}

// transition moves to phase to if the table allows it.
func (s *Session) transition(to Phase) bool {
	if !canTransition(s.phase, to) {
		s.logger.Debug("illegal phase transition", "from", s.phase, "to", to)
		return false
	}
	s.phase = to
	return true
}

// SpawnTarget draws a creature from the active tier and makes it the target.
func (s *Session) SpawnTarget(now int64) {
	if s.phase != PhaseActive {
		return
	}
	if _, pending := s.timers.Pending(KeyTransitionEnd); pending {
		return
	}

	d := s.catalog.PickRandom(s.rng, s.tier)
	rare := d.Base.Total() >= s.cfg.Rarity.Cutoff
	s.target = newTarget(d, rare, s.budgets.Budget(rare, s.tier), now, s.assets)
	s.typed = s.typed[:0]
	s.jiggle = 0
	s.timers.Cancel(KeySpawnNext)
	s.audio.Play(s.target.Cry)

	if rare {
		s.target.HintShown = true
		s.setSpecial(now, "Get this one!")
	}
}

// RecordKeystroke applies one typed character.
func (s *Session) RecordKeystroke(now int64, r rune) {
	if s.phase != PhaseActive || s.target == nil || s.target.Captured {
		return
	}
	s.typed = append(s.typed, unicode.ToUpper(r))
	s.pulseUntil = now + s.cfg.Animation.PulseMs

	prefix, full := s.target.Match(s.typed)
	switch {
	case full:
		s.capture(now)
	case prefix:
	case len(s.typed) == 1:
		s.miss(now, s.cfg.Timing.TypoFirstDelayMs)
	default:
		s.miss(now, s.cfg.Timing.TypoMidDelayMs)
	}
}

func (s *Session) capture(now int64) {
	t := s.target
	t.Tick(now)
	at := t.Elapsed
	t.CapturedAt = &at
	t.Captured = true

	s.caught++
	s.combo++

	award := s.scorer.CaptureScore(s.combo, t.Rare, at, t.Budget)
	s.score = s.score.Add(award.Points)
	s.history = append(s.history, CapturedRecord{
		Icon:      t.Icon,
		TargetID:  t.ID,
		Name:      t.Name,
		Rare:      t.Rare,
		Fast:      award.Bucket == SpeedFast,
		SuperFast: award.Bucket == SpeedSuperFast,
		Tier:      s.tier,
		Points:    award.Points,
	})

	rare := ""
	if t.Rare {
		rare = "RARE "
	}
	s.addMessage(now, fmt.Sprintf("%s%s caught!", rare, t.Name))
	switch award.Bucket {
	case SpeedSuperFast:
		s.addMessage(now, fmt.Sprintf("Super Fast! %s x %s", award.Base.Round(0), award.Multiplier))
	case SpeedFast:
		s.addMessage(now, fmt.Sprintf("Fast! %s x %s", award.Base.Round(0), award.Multiplier))
	}
	if s.combo > 3 {
		s.addMessage(now, fmt.Sprintf("Combo %d!", s.combo))
	}

	s.audio.Play(s.assets.CatchCue())
	if t.NameSound != core.None {
		s.audio.Play(t.NameSound)
	}

	s.anim.Start(now, s.layout.Launch(), s.layout.TargetAnchor(t.Walk), s.layout.SlotVec(len(s.history)-1),
		t.Icon, func() { t.BallImpact = true })

	switch {
	case s.caught >= s.cfg.Rules.CaptureCap:
		s.end(now, "capture cap reached")
	case len(s.history)-s.windowStart >= s.cfg.Rules.WindowSize:
		s.evaluate(now)
	default:
		s.timers.Schedule(KeySpawnNext, now, s.cfg.Timing.CatchDelayMs, s.SpawnTarget)
	}
}

func (s *Session) miss(now, delay int64) {
	s.addMessage(now, "Missed!")
	s.archiveCombo()
	s.combo = 0
	s.mistakes++
	s.totalMistakes++
	s.audio.Play(s.assets.MissCue())
	s.target = nil
	s.typed = s.typed[:0]

	if s.totalMistakes > s.cfg.Rules.MistakeCap {
		s.end(now, "mistake cap exceeded")
		return
	}
	s.timers.Schedule(KeySpawnNext, now, delay, s.SpawnTarget)
}

// archiveCombo records the running combo as a span if it is long enough.
func (s *Session) archiveCombo() {
	if s.combo < minComboSpan {
		return
	}
	n := len(s.history)
	s.spans = append(s.spans, ComboSpan{Start: n - s.combo, End: n})
}

// evaluate closes the current window and starts the transition.
func (s *Session) evaluate(now int64) {
	window := s.history[s.windowStart:]
	d := s.prog.Evaluate(window, s.mistakes)
	prev := s.tier
	next := s.prog.Apply(d, prev, s.catalog.TierCount())
	if next == prev {
		d = DecisionStay
	}

	name := s.catalog.Tier(next).Name
	switch d {
	case DecisionAdvance:
		s.addMessage(now, fmt.Sprintf("Excellent! %s unlocked!", name))
	case DecisionRegress:
		s.addMessage(now, fmt.Sprintf("Back to %s...", name))
	default:
		s.addMessage(now, fmt.Sprintf("Too slow! Stay in %s.", name))
	}

	s.logger.Info("window evaluated",
		"run", s.runID,
		"window", s.window,
		"signal", s.prog.Signal(window),
		"mistakes", s.mistakes,
		"decision", d,
		"tier", name,
	)

	s.decision = d
	s.mistakes = 0
	s.window++
	s.windowStart = len(s.history)
	s.tier = next
	s.highestTier = max(s.highestTier, next)
	s.beginTransition(now)
}

func (s *Session) beginTransition(now int64) {
	if !s.Pause(now, PauseTransition) {
		return
	}
	s.audio.PlayMusic(s.assets.MusicFor(s.catalog.Tier(s.tier).Music))
	s.timers.ScheduleWall(KeyTransitionEnd, now, s.cfg.Timing.TransitionMs, func(now int64) {
		s.Resume(now)
		s.SpawnTarget(now)
	})
}

// Tick recomputes elapsed times and misses a target whose budget ran out.
// Nothing moves unless the session is active.
func (s *Session) Tick(now int64) {
	if s.phase != PhaseActive {
		return
	}
	s.refresh(now)
	if s.target != nil && s.target.Expired() {
		s.miss(now, s.cfg.Timing.TimeoutDelayMs)
	}
}

func (s *Session) refresh(now int64) {
	s.elapsed = max(s.elapsed, now-s.start-s.pausedTotal)
	if s.target != nil {
		s.target.Tick(now)
	}
}

// Pause freezes the session clock. It returns false if the session cannot
// pause from its current phase.
func (s *Session) Pause(now int64, reason PauseReason) bool {
	if s.phase == PhaseActive {
		s.refresh(now)
	}
	to := PhasePaused
	if reason == PauseTransition {
		to = PhaseTransitioning
	}
	if !s.transition(to) {
		return false
	}
	s.pausedAt = now
	s.pauseReason = reason
	if reason == PauseUser {
		s.audio.PauseMusic()
	}
	return true
}

// Resume restarts the clock, crediting the paused interval to the session,
// the live target and every pending game-time action.
func (s *Session) Resume(now int64) {
	if s.phase != PhasePaused && s.phase != PhaseTransitioning {
		s.logger.Debug("resume ignored", "phase", s.phase)
		return
	}
	if !s.transition(PhaseActive) {
		return
	}
	delta := max(0, now-s.pausedAt)
	s.pausedTotal += delta
	if s.target != nil {
		s.target.PausedTotal += delta
	}
	s.timers.Shift(delta)
	if s.pauseReason == PauseUser {
		s.audio.ResumeMusic()
	}
}

// EndSession finishes the run at the player's request.
func (s *Session) EndSession(now int64) {
	s.end(now, "ended by player")
}

func (s *Session) end(now int64, reason string) {
	if !s.transition(PhaseEnded) {
		return
	}
	s.refresh(now)
	s.archiveCombo()
	s.target = nil
	s.typed = s.typed[:0]
	s.timers.Clear()
	s.feed.SetSpecial("")
	s.audio.StopMusic()
	s.endReason = reason

	sum := s.Summary()
	s.logger.Info("run ended",
		"run", sum.RunID,
		"reason", reason,
		"score", sum.Score.StringFixed(0),
		"caught", sum.Caught,
		"mistakes", sum.TotalMistakes,
		"highest_tier", sum.TierName,
	)
	if s.onEnd != nil {
		s.onEnd(sum)
	}
}

// Update advances presentation state: the capture animation and the
// last-letter pulse.
func (s *Session) Update(now int64) {
	s.now = now
	if s.phase == PhasePaused {
		return
	}
	s.anim.Update(now)
}

// FireDue runs deferred actions that are due. Game-time actions only run
// while the session is active.
func (s *Session) FireDue(now int64) {
	s.timers.FireDue(now, s.phase == PhaseActive)
}

func (s *Session) addMessage(now int64, text string) {
	s.feed.Add(text)
	s.timers.ScheduleWall(KeyClearMessage, now, s.cfg.Timing.MessageClearMs, func(int64) {
		s.feed.Clear()
	})
}

func (s *Session) setSpecial(now int64, text string) {
	s.feed.SetSpecial(text)
	s.timers.ScheduleWall(KeyClearSpecial, now, s.cfg.Timing.SpecialMessageMs, func(int64) {
		s.feed.SetSpecial("")
	})
}

func (s *Session) scheduleJiggle(now int64) {
	s.timers.ScheduleWall(KeyJiggle, now, s.cfg.Timing.JiggleMs, func(now int64) {
		s.jiggle = 0
		if s.phase == PhaseActive && s.target != nil && !s.target.Captured {
			s.jiggle = s.cosmetic.Intn(3) - 1
		}
		s.scheduleJiggle(now)
	})
}

func (s *Session) scheduleWalk(now int64) {
	s.timers.ScheduleWall(KeyWalk, now, s.cfg.Timing.WalkMs, func(now int64) {
		if s.phase == PhaseActive && s.target != nil && !s.target.Captured {
			s.target.step()
		}
		s.scheduleWalk(now)
	})
}

// Summary reports the run so far.
func (s *Session) Summary() Summary {
	longest := s.combo
	for _, sp := range s.spans {
		longest = max(longest, sp.Len())
	}
	return Summary{
		RunID:         s.runID.String(),
		Score:         s.score,
		Caught:        s.caught,
		TotalMistakes: s.totalMistakes,
		HighestTier:   s.highestTier,
		TierName:      s.catalog.Tier(s.highestTier).Name,
		LongestCombo:  longest,
		Reason:        s.endReason,
	}
}

func (s *Session) Phase() Phase                 { return s.phase }
func (s *Session) RunID() uuid.UUID             { return s.runID }
func (s *Session) Caught() int                  { return s.caught }
func (s *Session) Combo() int                   { return s.combo }
func (s *Session) Mistakes() int                { return s.mistakes }
func (s *Session) TotalMistakes() int           { return s.totalMistakes }
func (s *Session) Score() decimal.Decimal       { return s.score }
func (s *Session) Tier() int                    { return s.tier }
func (s *Session) Window() int                  { return s.window }
func (s *Session) HighestTier() int             { return s.highestTier }
func (s *Session) LastDecision() Decision       { return s.decision }
func (s *Session) Elapsed() int64               { return s.elapsed }
func (s *Session) Target() *Target              { return s.target }
func (s *Session) Typed() string                { return string(s.typed) }
func (s *Session) Messages() []string           { return s.feed.Lines() }
func (s *Session) Special() string              { return s.feed.Special() }
func (s *Session) Animation() *CaptureAnimation { return s.anim }
func (s *Session) EndReason() string            { return s.endReason }

// History returns a copy of the capture history.
func (s *Session) History() []CapturedRecord {
	return append([]CapturedRecord(nil), s.history...)
}

// Spans returns the archived combo spans plus the open combo when it is
// long enough to be highlighted.
func (s *Session) Spans() []ComboSpan {
	out := append([]ComboSpan(nil), s.spans...)
	if s.phase != PhaseEnded && s.combo >= minComboSpan {
		n := len(s.history)
		out = append(out, ComboSpan{Start: n - s.combo, End: n})
	}
	return out
}

// ArchivedSpans returns only the closed combo spans.
func (s *Session) ArchivedSpans() []ComboSpan {
	return append([]ComboSpan(nil), s.spans...)
}

// NameVisible reports whether the target's name and timer bar are shown.
// Rare targets show them at once; others after the hint delay or the first
// keystroke.
func (s *Session) NameVisible() bool {
	t := s.target
	return t != nil && (t.HintShown || t.Captured || len(s.typed) > 0 || t.Elapsed > s.cfg.Timing.NameHintMs)
}

// Pulsing reports whether the last typed letter is highlighted.
func (s *Session) Pulsing() bool {
	return len(s.typed) > 0 && s.now < s.pulseUntil
}

// Jiggle returns the current horizontal jitter of the sprite.
func (s *Session) Jiggle() int { return s.jiggle }

// TierInfo returns the active tier.
func (s *Session) TierInfo() registry.Tier { return s.catalog.Tier(s.tier) }

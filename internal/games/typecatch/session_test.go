package typecatch

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/vovakirdan/typecatch/internal/assets"
	"github.com/vovakirdan/typecatch/internal/audio"
	"github.com/vovakirdan/typecatch/internal/config"
	"github.com/vovakirdan/typecatch/internal/core"
	"github.com/vovakirdan/typecatch/internal/registry"
)

func creature(id int, name string, rare bool) registry.Descriptor {
	v := 50
	if rare {
		v = 100
	}
	return registry.Descriptor{
		ID:        id,
		Name:      name,
		Localized: map[string]string{"ko": name},
		Base:      registry.Stats{HP: v, Attack: v, Defense: v, SpAttack: v, SpDefense: v, Speed: v},
		Pitch:     440,
		Voiced:    true,
	}
}

// fixture builds a catalog with one tier per argument. Tier i is named Ti
// and uses the scene and music key ti.
func fixture(t *testing.T, tiers ...[]registry.Descriptor) *registry.Catalog {
	t.Helper()
	cat := &registry.Catalog{}
	for i, ds := range tiers {
		key := fmt.Sprintf("t%d", i)
		cat.Tiers = append(cat.Tiers, registry.Tier{
			Name:       fmt.Sprintf("T%d", i),
			Start:      len(cat.Creatures),
			End:        len(cat.Creatures) + len(ds),
			Background: key,
			Music:      key,
		})
		cat.Creatures = append(cat.Creatures, ds...)
	}
	if err := cat.Validate(); err != nil {
		t.Fatalf("fixture catalog: %v", err)
	}
	return cat
}

func antCatalog(t *testing.T) *registry.Catalog {
	return fixture(t, []registry.Descriptor{creature(1, "ANT", false)})
}

type harness struct {
	t    *testing.T
	s    *Session
	rec  *audio.Recorder
	now  int64
	ends []Summary
}

func newHarness(t *testing.T, cat *registry.Catalog, tweak func(*config.GameConfig)) *harness {
	t.Helper()
	cfg := config.DefaultConfig()
	if tweak != nil {
		tweak(&cfg)
	}
	h := &harness{t: t, rec: &audio.Recorder{}}
	h.s = NewSession(cfg, Deps{
		Catalog: cat,
		Assets:  assets.NewLibrary(cat, "ko"),
		Audio:   h.rec,
		Rand:    rand.New(rand.NewSource(1)),
	}, 0)
	h.s.OnEnd(func(s Summary) { h.ends = append(h.ends, s) })
	return h
}

// frame runs one frame at time at, typing text during input routing.
func (h *harness) frame(at int64, text string) {
	h.now = at
	h.s.FireDue(at)
	for _, r := range text {
		h.s.RecordKeystroke(at, r)
	}
	h.s.Tick(at)
	h.s.Update(at)
}

// catchAfter types the live target's name once it has been alive for ms.
func (h *harness) catchAfter(ms int64) {
	h.t.Helper()
	tg := h.s.Target()
	if tg == nil || tg.Captured {
		h.t.Fatalf("no live target at %d", h.now)
	}
	h.frame(tg.SpawnTime+tg.PausedTotal+ms, tg.Name)
	if !tg.Captured {
		h.t.Fatalf("typing %q did not capture", tg.Name)
	}
}

// typo types a character no creature name contains.
func (h *harness) typo() {
	h.frame(h.now, "#")
}

// settle runs frames at pending deadlines until a fresh target is live.
func (h *harness) settle() {
	h.t.Helper()
	for i := 0; i < 4; i++ {
		if h.s.Phase() == PhaseEnded {
			return
		}
		if tg := h.s.Target(); h.s.Phase() == PhaseActive && tg != nil && !tg.Captured {
			return
		}
		due, ok := h.s.timers.Pending(KeySpawnNext)
		if !ok {
			due, ok = h.s.timers.Pending(KeyTransitionEnd)
		}
		if !ok {
			h.t.Fatalf("nothing pending at %d in phase %v", h.now, h.s.Phase())
		}
		h.frame(due, "")
	}
	h.t.Fatal("session did not settle")
}

func (h *harness) played(handle string) bool {
	return slices.Contains(h.rec.Events, audio.Event{Op: "play", Handle: core.Handle(handle)})
}

func TestNewSessionSpawns(t *testing.T) {
	h := newHarness(t, antCatalog(t), nil)
	s := h.s

	if s.Phase() != PhaseActive {
		t.Fatalf("phase = %v", s.Phase())
	}
	tg := s.Target()
	if tg == nil || tg.ID != 1 || tg.Name != "ANT" {
		t.Fatalf("target = %+v", tg)
	}
	if tg.Budget != 9000 || tg.Rare {
		t.Errorf("budget = %d rare = %v, want 9000 normal", tg.Budget, tg.Rare)
	}
	if s.Window() != 1 || s.Tier() != 0 || !s.Score().IsZero() {
		t.Errorf("window %d tier %d score %s", s.Window(), s.Tier(), s.Score())
	}
	if !h.played("cry:1") {
		t.Error("spawn did not play the cry")
	}
	if ev, ok := h.rec.Last("music"); !ok || ev.Handle != "music:t0" {
		t.Errorf("music = %+v", ev)
	}
}

func TestCaptureFlow(t *testing.T) {
	tests := []struct {
		name     string
		after    int64
		score    string
		messages []string
		fast     bool
		super    bool
	}{
		{"super fast", 1000, "150", []string{"ANT caught!", "Super Fast! 100 x 1.5"}, false, true},
		{"fast", 4000, "120", []string{"ANT caught!", "Fast! 100 x 1.2"}, true, false},
		{"normal", 6000, "100", []string{"ANT caught!"}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, antCatalog(t), nil)
			s := h.s
			caught := s.Target()
			h.catchAfter(tt.after)

			if got := s.Score().String(); got != tt.score {
				t.Errorf("score = %s, want %s", got, tt.score)
			}
			if s.Caught() != 1 || s.Combo() != 1 {
				t.Errorf("caught %d combo %d", s.Caught(), s.Combo())
			}
			if got := s.Messages(); !slices.Equal(got, tt.messages) {
				t.Errorf("messages = %q, want %q", got, tt.messages)
			}
			rec := s.History()[0]
			if rec.TargetID != 1 || rec.Fast != tt.fast || rec.SuperFast != tt.super {
				t.Errorf("record = %+v", rec)
			}
			if *caught.CapturedAt != tt.after {
				t.Errorf("captured at %d, want %d", *caught.CapturedAt, tt.after)
			}
			if s.Animation().Phase() != AnimParabolic {
				t.Errorf("animation = %v", s.Animation().Phase())
			}

			due, ok := s.timers.Pending(KeySpawnNext)
			if !ok || due != tt.after+1000 {
				t.Fatalf("spawn-next due %d (%v), want %d", due, ok, tt.after+1000)
			}
			h.frame(due-1, "")
			if s.Target() != caught {
				t.Fatal("next target spawned early")
			}
			h.frame(due, "")
			if s.Target() == caught || s.Target().SpawnTime != due {
				t.Errorf("next target not spawned at %d", due)
			}
		})
	}
}

func TestComboMessagesAndScore(t *testing.T) {
	h := newHarness(t, antCatalog(t), nil)
	for i := 1; i <= 4; i++ {
		h.catchAfter(100)
		hasCombo := slices.Contains(h.s.Messages(), fmt.Sprintf("Combo %d!", i))
		if hasCombo != (i > 3) {
			t.Errorf("capture %d: combo message shown = %v", i, hasCombo)
		}
		h.settle()
	}
	// (100 + 150 + 200 + 250) x 1.5
	if got := h.s.Score().String(); got != "1050" {
		t.Errorf("score = %s, want 1050", got)
	}
	if h.s.Combo() != 4 {
		t.Errorf("combo = %d", h.s.Combo())
	}
}

func TestTypoMisses(t *testing.T) {
	h := newHarness(t, antCatalog(t), nil)
	s := h.s

	h.typo()
	if s.Target() != nil || s.Mistakes() != 1 || s.TotalMistakes() != 1 {
		t.Fatalf("after first-letter typo: target %v mistakes %d", s.Target(), s.Mistakes())
	}
	if !slices.Equal(s.Messages(), []string{"Missed!"}) {
		t.Errorf("messages = %q", s.Messages())
	}
	if ev, _ := h.rec.Last("play"); ev.Handle != "cue:miss" {
		t.Errorf("last sound = %q", ev.Handle)
	}
	if due, _ := s.timers.Pending(KeySpawnNext); due != 500 {
		t.Errorf("first-letter typo respawns at %d, want 500", due)
	}

	h.settle()
	h.catchAfter(100)
	h.settle()
	h.frame(h.now+50, "A#")
	if s.Combo() != 0 || s.TotalMistakes() != 2 {
		t.Errorf("combo %d total %d", s.Combo(), s.TotalMistakes())
	}
	if due, _ := s.timers.Pending(KeySpawnNext); due != h.now+300 {
		t.Errorf("mid-word typo respawns at %d, want %d", due, h.now+300)
	}
}

func TestLowercaseTyping(t *testing.T) {
	h := newHarness(t, antCatalog(t), nil)
	h.frame(100, "an")
	if got := h.s.Typed(); got != "AN" {
		t.Errorf("typed = %q", got)
	}
	h.frame(200, "t")
	if h.s.Caught() != 1 {
		t.Error("lowercase name did not capture")
	}
}

func TestTimeoutMisses(t *testing.T) {
	h := newHarness(t, antCatalog(t), nil)
	h.frame(9000, "")
	if h.s.Target() == nil {
		t.Fatal("target missed at exactly its budget")
	}
	h.frame(9001, "")
	if h.s.Target() != nil || h.s.TotalMistakes() != 1 {
		t.Fatal("target survived past its budget")
	}
	if due, _ := h.s.timers.Pending(KeySpawnNext); due != 9011 {
		t.Errorf("timeout respawns at %d, want 9011", due)
	}
}

func TestCatchBeatsTimeoutInSameFrame(t *testing.T) {
	h := newHarness(t, antCatalog(t), nil)
	h.frame(8990, "")
	h.frame(9005, "ANT")
	if h.s.Caught() != 1 || h.s.TotalMistakes() != 0 {
		t.Errorf("caught %d mistakes %d", h.s.Caught(), h.s.TotalMistakes())
	}
}

func TestMistakeCapEndsSession(t *testing.T) {
	h := newHarness(t, antCatalog(t), nil)
	for i := 1; i <= 11; i++ {
		h.typo()
		if i <= 10 {
			if h.s.Phase() != PhaseActive {
				t.Fatalf("ended after %d mistakes", i)
			}
			h.settle()
		}
	}
	s := h.s
	if s.Phase() != PhaseEnded {
		t.Fatalf("phase = %v after 11 mistakes", s.Phase())
	}
	if s.EndReason() != "mistake cap exceeded" {
		t.Errorf("reason = %q", s.EndReason())
	}
	if s.timers.Len() != 0 {
		t.Errorf("%d actions pending after end", s.timers.Len())
	}
	if last := h.rec.Events[len(h.rec.Events)-1]; last.Op != "stop" {
		t.Errorf("last audio event = %+v, want stop", last)
	}
	if len(h.ends) != 1 || h.ends[0].TotalMistakes != 11 {
		t.Errorf("end callbacks = %+v", h.ends)
	}

	h.frame(h.now+5000, "ANT")
	if s.Target() != nil || s.Caught() != 0 {
		t.Error("ended session still accepts input")
	}
}

func TestCaptureCapEndsSession(t *testing.T) {
	h := newHarness(t, antCatalog(t), func(c *config.GameConfig) { c.Rules.CaptureCap = 3 })
	for i := 0; i < 3; i++ {
		h.settle()
		h.catchAfter(100)
	}
	if h.s.Phase() != PhaseEnded || h.s.EndReason() != "capture cap reached" {
		t.Fatalf("phase %v reason %q", h.s.Phase(), h.s.EndReason())
	}
	if got := h.s.ArchivedSpans(); !slices.Equal(got, []ComboSpan{{0, 3}}) {
		t.Errorf("spans = %v", got)
	}
}

func TestWindowAdvances(t *testing.T) {
	cat := fixture(t,
		[]registry.Descriptor{creature(1, "RAY", true)},
		[]registry.Descriptor{creature(2, "BEE", false)},
	)
	h := newHarness(t, cat, nil)
	s := h.s

	if s.Special() != "Get this one!" {
		t.Errorf("rare spawn banner = %q", s.Special())
	}
	if s.Target().Budget != 4000 {
		t.Errorf("rare budget = %d", s.Target().Budget)
	}

	for i := 0; i < 10; i++ {
		if i > 0 {
			h.settle()
		}
		h.catchAfter(500)
	}
	end := h.now

	if s.Phase() != PhaseTransitioning {
		t.Fatalf("phase = %v, want transitioning", s.Phase())
	}
	if s.Tier() != 1 || s.HighestTier() != 1 || s.Window() != 2 || s.Mistakes() != 0 {
		t.Errorf("tier %d highest %d window %d mistakes %d", s.Tier(), s.HighestTier(), s.Window(), s.Mistakes())
	}
	if s.LastDecision() != DecisionAdvance {
		t.Errorf("decision = %v", s.LastDecision())
	}
	if !slices.Contains(s.Messages(), "Excellent! T1 unlocked!") {
		t.Errorf("messages = %q", s.Messages())
	}
	if got := s.Score().String(); got != "150000" {
		t.Errorf("score = %s, want 150000", got)
	}
	if ev, _ := h.rec.Last("music"); ev.Handle != "music:t1" {
		t.Errorf("music = %q, want music:t1", ev.Handle)
	}
	if h.rec.Count("pause") != 0 {
		t.Error("transition paused the music")
	}

	h.frame(end+100, "BEE")
	if s.Typed() != "RAY" || s.Caught() != 10 {
		t.Errorf("input accepted during transition: %q", s.Typed())
	}
	h.frame(end+2999, "")
	if s.Phase() != PhaseTransitioning {
		t.Fatalf("transition ended early")
	}
	h.frame(end+3000, "")
	if s.Phase() != PhaseActive {
		t.Fatalf("phase = %v after transition", s.Phase())
	}
	if tg := s.Target(); tg == nil || tg.ID != 2 || tg.SpawnTime != end+3000 {
		t.Errorf("tier 1 target = %+v", tg)
	}
}

func TestWindowDecisions(t *testing.T) {
	threeTiers := func(t *testing.T) *registry.Catalog {
		return fixture(t,
			[]registry.Descriptor{creature(1, "ANT", false)},
			[]registry.Descriptor{creature(2, "BEE", false)},
			[]registry.Descriptor{creature(3, "CAT", false)},
		)
	}
	fast := []int64{1000, 1000, 1000, 1000, 1000, 1000, 1000, 1000, 1000, 1000}
	slow := []int64{6000, 6000, 6000, 6000, 6000, 6000, 6000, 6000, 6000, 6000}
	mixed := []int64{1000, 1000, 1000, 1000, 1000, 6000, 6000, 6000, 6000, 6000}

	tests := []struct {
		name     string
		start    int
		fixed    bool
		times    []int64
		decision Decision
		tier     int
		message  string
	}{
		{"regress", 1, false, slow, DecisionRegress, 0, "Back to T0..."},
		{"stay", 1, false, mixed, DecisionStay, 1, "Too slow! Stay in T1."},
		{"regress clamped at bottom", 0, false, slow, DecisionStay, 0, "Too slow! Stay in T0."},
		{"advance clamped at top", 2, false, fast, DecisionStay, 2, "Too slow! Stay in T2."},
		{"fixed preset", 0, true, fast, DecisionStay, 0, "Too slow! Stay in T0."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, threeTiers(t), func(c *config.GameConfig) {
				c.Difficulty.StartTier = tt.start
				if tt.fixed {
					config.ApplyPreset(c, config.DifficultyFixed)
				}
			})
			h.typo()
			for _, ms := range tt.times {
				h.settle()
				h.catchAfter(ms)
			}
			s := h.s
			if s.LastDecision() != tt.decision || s.Tier() != tt.tier {
				t.Errorf("decision %v tier %d, want %v tier %d", s.LastDecision(), s.Tier(), tt.decision, tt.tier)
			}
			if !slices.Contains(s.Messages(), tt.message) {
				t.Errorf("messages = %q, want %q", s.Messages(), tt.message)
			}
			if s.Window() != 2 || s.Mistakes() != 0 || s.TotalMistakes() != 1 {
				t.Errorf("window %d mistakes %d total %d", s.Window(), s.Mistakes(), s.TotalMistakes())
			}
			if s.Phase() != PhaseTransitioning {
				t.Errorf("phase = %v", s.Phase())
			}
		})
	}
}

func TestPauseFreezesTime(t *testing.T) {
	h := newHarness(t, antCatalog(t), nil)
	s := h.s
	h.frame(1000, "")

	if !s.Pause(1000, PauseUser) {
		t.Fatal("pause refused")
	}
	if h.rec.Count("pause") != 1 {
		t.Error("user pause did not pause the music")
	}
	h.frame(5000, "")
	if s.Target().Elapsed != 1000 || s.Elapsed() != 1000 {
		t.Errorf("elapsed moved while paused: target %d session %d", s.Target().Elapsed, s.Elapsed())
	}
	h.frame(5000, "ANT")
	if s.Caught() != 0 {
		t.Error("capture while paused")
	}

	s.Resume(5000)
	h.frame(5000, "")
	if s.Target().Elapsed != 1000 {
		t.Errorf("elapsed jumped on resume: %d", s.Target().Elapsed)
	}
	h.frame(6000, "")
	if s.Target().Elapsed != 2000 || s.Elapsed() != 2000 {
		t.Errorf("elapsed after resume: target %d session %d", s.Target().Elapsed, s.Elapsed())
	}
	if h.rec.Count("resume") != 1 {
		t.Error("resume did not resume the music")
	}

	h.frame(13000, "")
	if s.Target() == nil {
		t.Fatal("budget did not exclude the paused interval")
	}
	h.frame(13001, "")
	if s.Target() != nil {
		t.Error("target outlived its shifted budget")
	}
}

func TestPauseResumeSameInstant(t *testing.T) {
	h := newHarness(t, antCatalog(t), nil)
	h.catchAfter(500)
	before := h.s.Snapshot()

	h.s.Pause(800, PauseUser)
	h.s.Resume(800)

	if due, _ := h.s.timers.Pending(KeySpawnNext); due != 1500 {
		t.Errorf("spawn-next moved to %d", due)
	}
	after := h.s.Snapshot()
	if after.Elapsed != 800 || after.Phase != before.Phase || after.Caught != before.Caught {
		t.Errorf("before %+v after %+v", before, after)
	}
}

func TestPauseDefersSpawn(t *testing.T) {
	h := newHarness(t, antCatalog(t), nil)
	s := h.s
	h.catchAfter(500)
	caught := s.Target()

	h.frame(1000, "")
	s.Pause(1000, PauseUser)
	h.frame(3000, "")
	if s.Target() != caught {
		t.Fatal("spawn-next fired while paused")
	}
	s.Resume(3000)
	if due, _ := s.timers.Pending(KeySpawnNext); due != 3500 {
		t.Errorf("spawn-next due %d, want 3500", due)
	}
	h.frame(3499, "")
	if s.Target() != caught {
		t.Fatal("spawned before the shifted deadline")
	}
	h.frame(3500, "")
	if tg := s.Target(); tg == caught || tg.SpawnTime != 3500 {
		t.Errorf("target after deadline = %+v", tg)
	}
}

func TestIllegalTransitionsIgnored(t *testing.T) {
	h := newHarness(t, antCatalog(t), nil)
	s := h.s

	s.Resume(10)
	if s.Phase() != PhaseActive || h.rec.Count("resume") != 0 {
		t.Error("resume from active changed something")
	}

	s.Pause(20, PauseUser)
	if s.Pause(30, PauseTransition) || s.Pause(30, PauseUser) {
		t.Error("paused twice")
	}
	s.Resume(40)

	if !s.Pause(50, PauseTransition) {
		t.Fatal("transition refused from active")
	}
	if s.Pause(60, PauseUser) {
		t.Error("user pause accepted during transition")
	}
	s.EndSession(60)
	if s.Phase() != PhaseTransitioning {
		t.Errorf("transition ended the run: %v", s.Phase())
	}
	s.Resume(70)

	s.EndSession(80)
	s.EndSession(90)
	if s.Phase() != PhaseEnded || len(h.ends) != 1 {
		t.Errorf("phase %v, %d end callbacks", s.Phase(), len(h.ends))
	}
	if s.Pause(100, PauseUser) {
		t.Error("paused an ended session")
	}
	s.Resume(100)
	if s.Phase() != PhaseEnded {
		t.Error("resumed an ended session")
	}

	id := s.RunID()
	s.Restart(200)
	if s.Phase() != PhaseActive || s.RunID() == id {
		t.Errorf("restart: phase %v, same run id %v", s.Phase(), s.RunID() == id)
	}
}

func TestComboSpans(t *testing.T) {
	h := newHarness(t, antCatalog(t), nil)
	s := h.s
	catch := func(n int) {
		for i := 0; i < n; i++ {
			h.settle()
			h.catchAfter(100)
		}
	}

	catch(4)
	if got := s.Spans(); !slices.Equal(got, []ComboSpan{{0, 4}}) {
		t.Errorf("open combo spans = %v", got)
	}
	if len(s.ArchivedSpans()) != 0 {
		t.Error("open combo archived early")
	}
	h.settle()
	h.typo()

	catch(2)
	h.settle()
	h.typo()
	if got := s.ArchivedSpans(); !slices.Equal(got, []ComboSpan{{0, 4}}) {
		t.Errorf("short combo archived: %v", got)
	}

	catch(3)
	s.EndSession(h.now)
	spans := s.ArchivedSpans()
	if !slices.Equal(spans, []ComboSpan{{0, 4}, {6, 9}}) {
		t.Fatalf("spans = %v", spans)
	}
	for i, sp := range spans {
		if sp.Len() < minComboSpan || sp.End > len(s.History()) {
			t.Errorf("span %v out of shape", sp)
		}
		if i > 0 && sp.Start < spans[i-1].End {
			t.Errorf("span %v overlaps %v", sp, spans[i-1])
		}
	}
	if sum := s.Summary(); sum.LongestCombo != 4 {
		t.Errorf("longest combo = %d", sum.LongestCombo)
	}
}

func TestCaptureSounds(t *testing.T) {
	quiet := creature(2, "OWL", false)
	quiet.Voiced = false
	cat := fixture(t, []registry.Descriptor{creature(1, "ANT", false)}, []registry.Descriptor{quiet})

	h := newHarness(t, cat, nil)
	h.catchAfter(100)
	if !h.played("cue:catch") || !h.played("name:1") {
		t.Errorf("events = %+v", h.rec.Events)
	}

	h2 := newHarness(t, cat, func(c *config.GameConfig) { c.Difficulty.StartTier = 1 })
	h2.catchAfter(100)
	if !h2.played("cue:catch") {
		t.Error("no catch cue")
	}
	for _, ev := range h2.rec.Events {
		if ev.Handle == "name:2" {
			t.Error("unvoiced creature spoke its name")
		}
	}
}

func TestNameVisibility(t *testing.T) {
	h := newHarness(t, antCatalog(t), nil)
	if h.s.NameVisible() {
		t.Error("name visible at spawn")
	}
	h.frame(3000, "")
	if h.s.NameVisible() {
		t.Error("name visible at the hint delay")
	}
	h.frame(3001, "")
	if !h.s.NameVisible() {
		t.Error("name hidden after the hint delay")
	}

	h = newHarness(t, antCatalog(t), nil)
	h.frame(100, "A")
	if !h.s.NameVisible() || !h.s.Pulsing() {
		t.Error("typing did not reveal the name")
	}
	h.frame(100+config.DefaultConfig().Animation.PulseMs, "")
	if h.s.Pulsing() {
		t.Error("pulse did not fade")
	}

	rare := newHarness(t, fixture(t, []registry.Descriptor{creature(1, "RAY", true)}), nil)
	if !rare.s.NameVisible() {
		t.Error("rare name hidden at spawn")
	}
}

func TestRestartResets(t *testing.T) {
	h := newHarness(t, antCatalog(t), nil)
	h.catchAfter(100)
	h.settle()
	h.typo()

	s := h.s
	s.Restart(h.now + 10)
	if s.Caught() != 0 || s.TotalMistakes() != 0 || !s.Score().IsZero() || len(s.History()) != 0 {
		t.Errorf("counters survived restart: %+v", s.Snapshot())
	}
	if s.Window() != 1 || s.Tier() != 0 || s.Phase() != PhaseActive {
		t.Errorf("window %d tier %d phase %v", s.Window(), s.Tier(), s.Phase())
	}
	if tg := s.Target(); tg == nil || tg.SpawnTime != h.now+10 {
		t.Errorf("no fresh target: %+v", tg)
	}
	if len(s.Messages()) != 0 {
		t.Errorf("messages survived restart: %q", s.Messages())
	}
}

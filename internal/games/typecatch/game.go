package typecatch

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/typecatch/internal/assets"
	"github.com/vovakirdan/typecatch/internal/audio"
	"github.com/vovakirdan/typecatch/internal/config"
	"github.com/vovakirdan/typecatch/internal/core"
	"github.com/vovakirdan/typecatch/internal/registry"
)

// GameID is the leaderboard identifier of the game.
const GameID = "typecatch"

// Options configures a Game.
type Options struct {
	Config  config.GameConfig
	Catalog *registry.Catalog
	Assets  assets.Provider
	Audio   audio.Output
	Logger  *log.Logger
	Clock   core.Clock
}

var (
	pauseItems = []string{"Resume", "Restart", "Quit"}
	endItems   = []string{"Play again", "Quit"}
)

// Game adapts a Session to the platform's frame loop. It owns the pause
// and end menus; everything else is the session's.
type Game struct {
	opts    Options
	session *Session
	layout  Layout
	rng     *rand.Rand

	tooSmall bool
	pauseSel int
	endSel   int
	quit     bool

	finished *core.RunSummary
}

// New creates a typecatch game. Reset must be called before Step.
func New(opts Options) *Game {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Audio == nil {
		opts.Audio = audio.Null{}
	}
	if opts.Clock == nil {
		opts.Clock = core.NewSystemClock()
	}
	if opts.Assets == nil {
		opts.Assets = assets.NewLibrary(opts.Catalog, opts.Config.Display.Locale)
	}
	return &Game{opts: opts}
}

// ID returns the game identifier.
func (g *Game) ID() string { return GameID }

// Title returns the display name.
func (g *Game) Title() string { return "typecatch" }

// Reset starts a new run sized to the screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.quit = false
	g.finished = nil
	g.pauseSel = 0
	g.endSel = 0

	g.session = NewSession(g.opts.Config, Deps{
		Catalog: g.opts.Catalog,
		Assets:  g.opts.Assets,
		Audio:   g.opts.Audio,
		Logger:  g.opts.Logger,
		Rand:    g.rng,
	}, g.opts.Clock.Now())
	g.session.OnEnd(g.recordEnd)
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize adapts the layout without restarting the run.
func (g *Game) Resize(w, h int) {
	g.layout = Layout{W: w, H: h}
	g.tooSmall = w < MinWidth || h < MinHeight
	if g.session != nil {
		g.session.SetLayout(g.layout)
	}
}

// Session exposes the running session.
func (g *Game) Session() *Session { return g.session }

func (g *Game) recordEnd(s Summary) {
	g.finished = &core.RunSummary{
		RunID:       s.RunID,
		Score:       s.Score.IntPart(),
		Caught:      s.Caught,
		Mistakes:    s.TotalMistakes,
		HighestTier: s.TierName,
		Combo:       s.LongestCombo,
		Reason:      s.Reason,
	}
}

// Summary returns the most recently finished run once.
func (g *Game) Summary() (core.RunSummary, bool) {
	if g.finished == nil {
		return core.RunSummary{}, false
	}
	s := *g.finished
	g.finished = nil
	return s, true
}

// Step runs one frame: due actions, input, timeout check, animation.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	now := g.opts.Clock.Now()
	s := g.session

	s.FireDue(now)

	switch {
	case in.Has(core.ActionQuit):
		g.leave(now)
	case in.Has(core.ActionRestart):
		g.restart(now)
	default:
		g.route(now, in)
	}

	if g.tooSmall && s.Phase() == PhaseActive {
		s.Pause(now, PauseUser)
	}

	s.Tick(now)
	s.Update(now)
	return core.StepResult{State: g.State()}
}

func (g *Game) route(now int64, in core.InputFrame) {
	s := g.session
	switch s.Phase() {
	case PhaseActive:
		if in.Has(core.ActionPause) {
			g.pauseSel = 0
			s.Pause(now, PauseUser)
			return
		}
		for _, r := range in.Runes {
			s.RecordKeystroke(now, r)
			if s.Phase() != PhaseActive {
				return
			}
		}
	case PhasePaused:
		if in.Has(core.ActionPause) || in.Has(core.ActionBack) {
			if !g.tooSmall {
				s.Resume(now)
			}
			return
		}
		g.pauseSel = moveSelection(g.pauseSel, len(pauseItems), in)
		if in.Has(core.ActionConfirm) {
			switch pauseItems[g.pauseSel] {
			case "Resume":
				if !g.tooSmall {
					s.Resume(now)
				}
			case "Restart":
				g.restart(now)
			case "Quit":
				s.EndSession(now)
			}
		}
	case PhaseEnded:
		g.endSel = moveSelection(g.endSel, len(endItems), in)
		if in.Has(core.ActionConfirm) {
			switch endItems[g.endSel] {
			case "Play again":
				g.restart(now)
			case "Quit":
				g.quit = true
			}
		}
	case PhaseTransitioning:
		// input is dropped until the next tier starts
	}
}

// leave ends a live run so it is recorded, then asks the platform to quit.
func (g *Game) leave(now int64) {
	if g.session.Phase() != PhaseEnded {
		if g.session.Phase() == PhaseTransitioning {
			g.session.Resume(now)
		}
		g.session.EndSession(now)
	}
	g.quit = true
}

func (g *Game) restart(now int64) {
	g.pauseSel = 0
	g.endSel = 0
	g.session.Restart(now)
}

func moveSelection(sel, n int, in core.InputFrame) int {
	if in.Has(core.ActionUp) {
		sel = (sel - 1 + n) % n
	}
	if in.Has(core.ActionDown) {
		sel = (sel + 1) % n
	}
	return sel
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.session
	return core.GameState{
		Score:    int(s.Score().IntPart()),
		GameOver: s.Phase() == PhaseEnded,
		Paused:   s.Phase() == PhasePaused || s.Phase() == PhaseTransitioning,
		Quit:     g.quit,
	}
}

var (
	_ core.Game       = (*Game)(nil)
	_ core.Resizer    = (*Game)(nil)
	_ core.Summarizer = (*Game)(nil)
)

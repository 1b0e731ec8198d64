package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second driven by the platform (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score, truncated to an integer
	GameOver bool // Whether the run has ended
	Paused   bool // Whether the game is paused or in a transition
	Quit     bool // Whether the player asked to leave the game
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
}

// Game is the surface the platform drives once per frame.
// Implementations contain pure logic with no Bubble Tea dependency;
// the platform handles key mapping, timing and terminal output.
type Game interface {
	// ID returns a unique identifier used for the leaderboard.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or restarts the game.
	Reset(cfg RuntimeConfig)

	// Step advances the game by one frame with the input drained since the last one.
	Step(in InputFrame) StepResult

	// Render emits draw intents for the current state.
	Render(dst Renderer)

	// State returns the current game state.
	State() GameState
}

// Resizer is implemented by games that can adapt to a new screen size
// without restarting. The platform falls back to Reset otherwise.
type Resizer interface {
	Resize(w, h int)
}

// RunSummary is the outcome of one finished run.
type RunSummary struct {
	RunID       string
	Score       int64
	Caught      int
	Mistakes    int
	HighestTier string
	Combo       int
	Reason      string
}

// Summarizer is implemented by games that report finished runs for the
// leaderboard. Summary returns false while no run has finished since the
// last call.
type Summarizer interface {
	Summary() (RunSummary, bool)
}

package core

// Action represents a semantic command, abstracted from physical key presses.
// Letters are never mapped to actions: every printable key is typed input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow - menu navigation
	ActionDown           // Down arrow - menu navigation
	ActionConfirm        // Enter - confirm menu selection
	ActionPause          // Esc - pause/unpause
	ActionBack           // Backspace on menus - leave to the main menu
	ActionRestart        // Ctrl+R - restart the run
	ActionQuit           // Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds everything the player did between two frames:
// the semantic actions and the characters typed, in order.
type InputFrame struct {
	Actions map[Action]bool
	Runes   []rune
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Type appends typed characters in arrival order.
func (f *InputFrame) Type(rs ...rune) {
	f.Runes = append(f.Runes, rs...)
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Runes = f.Runes[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Runes = append([]rune(nil), f.Runes...)
	return clone
}

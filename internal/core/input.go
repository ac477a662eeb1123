package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform performs the key mapping; the simulation only ever
// sees edge-triggered actions.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, W, Up - jump while grounded; confirm on the game over screen
	ActionConfirm        // Enter - confirm (restart from game over)
	ActionPause          // P, Esc - pause/unpause
	ActionRestart        // R - restart at any point
	ActionQuit           // Q, Ctrl+C - exit the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the edge-triggered input sampled for one simulation
// frame. Key presses arriving between ticks accumulate here and are cleared
// after the frame is consumed.
type InputFrame struct {
	Actions map[Action]bool
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

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

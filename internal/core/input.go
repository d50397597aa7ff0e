package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow, h - move cursor one column left
	ActionRight          // D, Right arrow, l - move cursor one column right
	ActionDrop           // Space, Down, Enter - drop a piece in the cursor column
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - start a new round
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionDrop:
		return "Drop"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered during one simulation tick.
// Key messages arrive as discrete presses, so every action in a frame is
// an edge: holding a key does not repeat a drop.
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

// Frame builds an input frame with the given actions set.
func Frame(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

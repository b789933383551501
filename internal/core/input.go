package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // W, K, Up arrow
	ActionDown         // S, J, Down arrow
	ActionLeft         // A, H, Left arrow
	ActionRight        // D, L, Right arrow
	ActionPause        // P, Escape
	ActionHelp         // ?
	ActionQuit         // Q, Ctrl+C
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
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPause:
		return "Pause"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMove reports whether the action steers the snake.
func (a Action) IsMove() bool {
	return a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
}

package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // Up arrow, W - move up
	ActionDown         // Down arrow, S - move down
	ActionLeft         // Left arrow, A - move left
	ActionRight        // Right arrow, D - move right
	ActionFire         // Space - fire a beam
	ActionQuit         // Q, Esc, Ctrl+C - end the session
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
	case ActionFire:
		return "Fire"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for the player during one simulation tick.
// Held actions are level-triggered (a key being down); events are
// edge-triggered presses that arrived since the previous tick, in order.
type InputFrame struct {
	// Actions maps action types to whether they are held this frame.
	Actions map[Action]bool

	// Events lists discrete presses (fire, quit) in arrival order.
	Events []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Push records a discrete press of the given action.
func (f *InputFrame) Push(a Action) {
	f.Events = append(f.Events, a)
}

// Count returns how many discrete presses of the action arrived this frame.
func (f InputFrame) Count(a Action) int {
	n := 0
	for _, e := range f.Events {
		if e == a {
			n++
		}
	}
	return n
}

package core

// Action represents a semantic game action, abstracted from physical key presses.
// Press and release are separate actions so holding a key can shape a jump.
type Action int

const (
	ActionNone         Action = iota
	ActionJumpPressed         // Space, Up, W
	ActionJumpReleased        // release of the jump key
	ActionDuckPressed         // Down, S
	ActionDuckReleased        // release of the duck key
	ActionRestart             // R, Enter
	ActionPause               // P
	ActionFocusLost           // terminal lost focus
	ActionFocusGained         // terminal regained focus
	ActionQuit                // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJumpPressed:
		return "JumpPressed"
	case ActionJumpReleased:
		return "JumpReleased"
	case ActionDuckPressed:
		return "DuckPressed"
	case ActionDuckReleased:
		return "DuckReleased"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionFocusLost:
		return "FocusLost"
	case ActionFocusGained:
		return "FocusGained"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions delivered during one tick, in arrival order.
// Order matters: a press followed by a release in the same tick is a short hop.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an input frame with the given actions.
func NewInputFrame(actions ...Action) InputFrame {
	return InputFrame{Actions: append([]Action(nil), actions...)}
}

// Push appends an action. ActionNone is dropped.
func (f *InputFrame) Push(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, x := range f.Actions {
		if x == a {
			return true
		}
	}
	return false
}

// Empty reports whether no actions were delivered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	return NewInputFrame(f.Actions...)
}

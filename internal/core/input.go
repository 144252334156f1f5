package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move paddle left
	ActionRight          // D, Right arrow - move paddle right
	ActionLaunch         // Space - launch ball / continue to next level
	ActionPause          // P, Escape - pause/unpause game
	ActionRestart        // R key - restart game
	ActionConfirm        // Enter - confirm selection in menus
	ActionBack           // B - go back
	ActionQuit           // Q, Ctrl+C - exit game/session
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
	case ActionLaunch:
		return "Launch"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PointerPhase describes what the pointer (mouse or touch) did this frame.
type PointerPhase int

const (
	PointerNone    PointerPhase = iota
	PointerPress                // Button pressed / touch started
	PointerDrag                 // Moved while pressed
	PointerRelease              // Button released
)

// Pointer is the pointer state for one frame, in screen cell coordinates.
type Pointer struct {
	Phase PointerPhase
	X, Y  int
}

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Pointer holds the most recent pointer event of the frame.
	Pointer Pointer
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

// SetPointer records a pointer event. A release never hides an earlier press
// in the same frame from the game, so the press wins until the next frame.
func (f *InputFrame) SetPointer(p Pointer) {
	if f.Pointer.Phase == PointerPress && p.Phase == PointerRelease {
		return
	}
	f.Pointer = p
}

// HasPointer reports whether any pointer event happened this frame.
func (f InputFrame) HasPointer() bool {
	return f.Pointer.Phase != PointerNone
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = Pointer{}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Pointer = f.Pointer
	return clone
}

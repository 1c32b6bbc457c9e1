package core

// Action is a semantic input, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionSelect         // Space - pick option, add brick, toggle cell
	ActionConfirm        // Enter - submit, check, start
	ActionClear          // Backspace - reset piles, clear typed answer
	ActionBack           // Esc - leave the level
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C
	ActionDigit          // 0-9, carried in Press.Digit
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
	case ActionSelect:
		return "Select"
	case ActionConfirm:
		return "Confirm"
	case ActionClear:
		return "Clear"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionDigit:
		return "Digit"
	default:
		return "Unknown"
	}
}

// Press is a single input event. Digit is set only for ActionDigit.
type Press struct {
	Action Action
	Digit  rune
}

// InputFrame collects the input delivered during one simulation tick.
// Presses keeps delivery order; Has answers "was this pressed at all".
type InputFrame struct {
	Presses []Press
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records an action for this frame.
func (f *InputFrame) Set(a Action) {
	f.Presses = append(f.Presses, Press{Action: a})
}

// SetDigit records a typed digit for this frame.
func (f *InputFrame) SetDigit(d rune) {
	if d < '0' || d > '9' {
		return
	}
	f.Presses = append(f.Presses, Press{Action: ActionDigit, Digit: d})
}

// Has reports whether the action was pressed during this frame.
func (f InputFrame) Has(a Action) bool {
	for _, p := range f.Presses {
		if p.Action == a {
			return true
		}
	}
	return false
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	f.Presses = f.Presses[:0]
}

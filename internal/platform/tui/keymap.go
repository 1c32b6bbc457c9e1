package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/island-of-structure/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game presses.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key to a press. The press action is ActionNone for
// unbound keys; isQuit reports a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (p core.Press, isQuit bool) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return core.Press{Action: core.ActionQuit}, true
	case "w", "up":
		return core.Press{Action: core.ActionUp}, false
	case "s", "down":
		return core.Press{Action: core.ActionDown}, false
	case "a", "left":
		return core.Press{Action: core.ActionLeft}, false
	case "d", "right":
		return core.Press{Action: core.ActionRight}, false
	case " ":
		return core.Press{Action: core.ActionSelect}, false
	case "enter":
		return core.Press{Action: core.ActionConfirm}, false
	case "backspace":
		return core.Press{Action: core.ActionClear}, false
	case "esc":
		return core.Press{Action: core.ActionBack}, false
	case "r":
		return core.Press{Action: core.ActionRestart}, false
	}

	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		return core.Press{Action: core.ActionDigit, Digit: rune(key[0])}, false
	}
	return core.Press{}, false
}

// MapKeyToFrame appends the key's press to frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	p, isQuit := km.MapKey(msg)
	switch p.Action {
	case core.ActionNone, core.ActionQuit:
	case core.ActionDigit:
		frame.SetDigit(p.Digit)
	default:
		frame.Set(p.Action)
	}
	return isQuit
}

// MenuAction is a menu command derived from a key.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}

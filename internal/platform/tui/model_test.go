package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/island-of-structure/internal/core"
	"github.com/vovakirdan/island-of-structure/internal/storage"
)

// scriptedGame emits queued events one tick at a time and counts resets.
type scriptedGame struct {
	resets  int
	steps   int
	pressed []core.Press
	events  [][]core.Event
}

func (g *scriptedGame) ID() string               { return "scripted" }
func (g *scriptedGame) Title() string            { return "Scripted" }
func (g *scriptedGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *scriptedGame) Render(dst *core.Screen)  { dst.Clear() }
func (g *scriptedGame) State() core.GameState    { return core.GameState{} }
func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.pressed = append(g.pressed, in.Presses...)
	var evs []core.Event
	if len(g.events) > 0 {
		evs, g.events = g.events[0], g.events[1:]
	}
	return core.StepResult{Events: evs}
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(TickMsg{})
	return next.(Model)
}

func TestModelSavesScoreEvents(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	game := &scriptedGame{events: [][]core.Event{
		{{Kind: core.EventScore, Board: "arena", Score: 640}},
		{{Kind: core.EventScore, Board: "arena", Score: 0}},
		{{Kind: core.EventShake}},
	}}
	m := NewModel(game, store, core.DefaultConfig()).WithPlayer("ada")
	for range 3 {
		m = tick(t, m)
	}

	scores, err := store.TopScores("arena", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 640 || scores[0].Player != "ada" {
		t.Errorf("saved scores = %+v, want one 640 run by ada", scores)
	}
	if !m.fx.Active() {
		t.Error("shake event did not reach the effect layer")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	game := &scriptedGame{}
	m := NewModel(game, nil, core.DefaultConfig())
	m.Init()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)

	if game.resets != 1 {
		t.Errorf("resets = %d, want 1", game.resets)
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, want 120x40", m.screen.Width(), m.screen.Height())
	}
}

func TestModelDeliversKeysOnNextTick(t *testing.T) {
	game := &scriptedGame{}
	m := NewModel(game, nil, core.DefaultConfig())

	for _, msg := range []tea.KeyMsg{runeKey('3'), {Type: tea.KeyEnter}} {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	m = tick(t, m)
	m = tick(t, m)

	want := []core.Press{{Action: core.ActionDigit, Digit: '3'}, {Action: core.ActionConfirm}}
	if len(game.pressed) != len(want) {
		t.Fatalf("pressed = %+v, want %+v", game.pressed, want)
	}
	for i := range want {
		if game.pressed[i] != want[i] {
			t.Errorf("press %d = %+v, want %+v", i, game.pressed[i], want[i])
		}
	}
}

func TestModelMenuReturn(t *testing.T) {
	m := NewModel(&scriptedGame{}, nil, core.DefaultConfig())
	next, _ := m.Update(runeKey('m'))
	if next.(Model).BackToMenu() {
		t.Error("m left the game without menu return enabled")
	}

	m = m.WithMenuReturn()
	next, cmd := m.Update(runeKey('m'))
	if !next.(Model).BackToMenu() || cmd == nil {
		t.Error("m should leave the game when menu return is enabled")
	}
}

func TestSessionReturnsToMenu(t *testing.T) {
	s := NewSessionModel(nil, core.DefaultConfig(), "ada")
	game := NewModel(&scriptedGame{}, nil, core.DefaultConfig()).WithMenuReturn()
	s.game = &game

	next, _ := s.Update(runeKey('m'))
	s = next.(SessionModel)
	if s.game != nil || s.quitting {
		t.Error("session should be back at the menu")
	}
}

package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/island-of-structure/internal/core"
	"github.com/vovakirdan/island-of-structure/internal/registry"
	"github.com/vovakirdan/island-of-structure/internal/storage"
)

// Model is the Bubble Tea model that drives one island mode.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       *KeyMapper
	frame      core.InputFrame
	fx         *Effects
	state      core.GameState
	player     string
	menuReturn bool // "m" leaves the game instead of being ignored
	backToMenu bool
	quitting   bool
	saveErr    error
}

// NewModel creates a model for game. A zero seed is replaced by one from
// the clock.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
		keys:   NewKeyMapper(),
		frame:  core.NewInputFrame(),
		fx:     NewEffects(),
	}
}

// WithPlayer sets the name scores are saved under.
func (m Model) WithPlayer(name string) Model {
	m.player = name
	return m
}

// WithMenuReturn lets the player leave to the menu with "m".
func (m Model) WithMenuReturn() Model {
	m.menuReturn = true
	return m
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// Only the viewport changes; the journey keeps its place.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "m":
		if m.menuReturn {
			m.backToMenu = true
			return m, tea.Quit
		}
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.frame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.frame)
	m.state = result.State
	m.frame.Clear()

	m.fx.Step()
	for _, ev := range result.Events {
		if ev.Kind == core.EventScore {
			m.saveScore(ev)
			continue
		}
		m.fx.Apply(ev)
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScore records a finished run. Empty runs are not worth a row.
func (m *Model) saveScore(ev core.Event) {
	if m.store == nil || ev.Score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(ev.Board, m.player, ev.Score); err != nil {
		m.saveErr = err
	}
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".island", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the game, then the effect layer over it.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	m.fx.Draw(m.screen)
	return renderShifted(m.screen, m.fx.Offset())
}

// IsQuitting reports whether the player asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the player asked for the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// SaveErr returns the last score save failure, if any.
func (m Model) SaveErr() error {
	return m.saveErr
}

// Run starts the Bubble Tea program with game in the alternate screen.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.saveErr != nil {
		return fmt.Errorf("saving score: %w", fm.saveErr)
	}
	return nil
}

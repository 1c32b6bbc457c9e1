package island

import (
	"strconv"
	"time"

	"github.com/vovakirdan/island-of-structure/internal/config"
	"github.com/vovakirdan/island-of-structure/internal/games/island/problem"
)

// ArenaPhase is the state of the timed drill.
type ArenaPhase int

const (
	ArenaIdle ArenaPhase = iota
	ArenaRunning
	ArenaFinished
)

// String returns the phase name.
func (p ArenaPhase) String() string {
	switch p {
	case ArenaIdle:
		return "idle"
	case ArenaRunning:
		return "running"
	case ArenaFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Arena is the timed multiplication drill. Rounds are drawn from the shared
// generator but do not depend on world difficulty.
type Arena struct {
	gen       *problem.Generator
	cfg       config.ArenaConfig
	phase     ArenaPhase
	score     int
	combo     int
	remaining int           // Seconds
	clock     time.Duration // Time not yet converted to whole seconds
	round     problem.Round
	entry     string
}

// NewArena creates an idle drill.
func NewArena(gen *problem.Generator, cfg config.ArenaConfig) *Arena {
	return &Arena{gen: gen, cfg: cfg}
}

// Start resets the score, streak and clock and deals the first round.
// Calling it on a running or finished drill restarts it.
func (a *Arena) Start() {
	a.score = 0
	a.combo = 0
	a.remaining = a.cfg.DurationSecs
	a.round = a.gen.ArenaRound()
	a.entry = ""
	a.clock = 0
	a.phase = ArenaRunning
}

// Tick consumes one elapsed second. It returns true exactly once: on the
// tick that ends the drill.
func (a *Arena) Tick() bool {
	if a.phase != ArenaRunning {
		return false
	}
	a.remaining--
	if a.remaining <= 0 {
		a.remaining = 0
		a.phase = ArenaFinished
		return true
	}
	return false
}

// Elapse feeds wall time to the clock, ticking once per whole second. It
// returns true if the drill finished during this call.
func (a *Arena) Elapse(d time.Duration) bool {
	if a.phase != ArenaRunning || d <= 0 {
		return false
	}
	a.clock += d
	for a.clock >= time.Second {
		a.clock -= time.Second
		if a.Tick() {
			a.clock = 0
			return true
		}
	}
	return false
}

// Submit replaces the typed entry with value and scores it if it matches the
// product. Anything else is kept as a partial entry.
func (a *Arena) Submit(value string) bool {
	if a.phase != ArenaRunning {
		return false
	}
	a.entry = value

	n, err := strconv.Atoi(value)
	if err != nil || n != a.round.Product {
		return false
	}

	a.score += a.cfg.BasePoints + a.cfg.ComboBonus*a.combo
	a.combo++
	a.entry = ""
	a.round = a.gen.ArenaRound()
	return true
}

// Type appends a digit to the entry and submits it.
func (a *Arena) Type(digit rune) bool {
	if a.phase != ArenaRunning || digit < '0' || digit > '9' {
		return false
	}
	return a.Submit(a.entry + string(digit))
}

// Clear empties the typed entry.
func (a *Arena) Clear() {
	if a.phase != ArenaRunning {
		return
	}
	a.entry = ""
}

// Phase returns the drill state.
func (a *Arena) Phase() ArenaPhase { return a.phase }

// Score returns the points earned so far.
func (a *Arena) Score() int { return a.score }

// Combo returns the current streak of correct answers.
func (a *Arena) Combo() int { return a.combo }

// Remaining returns the seconds left on the clock.
func (a *Arena) Remaining() int { return a.remaining }

// Round returns the current question.
func (a *Arena) Round() problem.Round { return a.round }

// Entry returns what the player has typed so far.
func (a *Arena) Entry() string { return a.entry }

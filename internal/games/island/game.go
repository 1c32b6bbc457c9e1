// Package island implements the Island of Structure: a map of six worlds,
// each a run of generated arithmetic challenges, ending in a timed
// multiplication arena.
package island

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/island-of-structure/internal/config"
	"github.com/vovakirdan/island-of-structure/internal/core"
	"github.com/vovakirdan/island-of-structure/internal/games/island/problem"
	"github.com/vovakirdan/island-of-structure/internal/games/island/world"
	"github.com/vovakirdan/island-of-structure/internal/registry"
)

// ArenaBoard is the leaderboard arena scores are recorded on.
const ArenaBoard = "arena"

// Mode selects what the game runs.
type Mode string

const (
	// ModeCampaign is the full island, from the gate to the arena.
	ModeCampaign Mode = "island"
	// ModeDrill is the arena on its own, restartable.
	ModeDrill Mode = "arena"
)

var configPath string

// SetConfigPath sets the island config file used by the next Reset.
// An empty path uses the default search order.
func SetConfigPath(path string) {
	configPath = path
}

func loadConfig() config.IslandConfig {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.DefaultIsland()
	}
	return cfg
}

// cursor is where the player is pointing on the current view.
type cursor struct {
	world  int
	option int
	pile   int
	row    int
	col    int
	choice int // Index into checkpointChoices
}

// Game adapts the island to the platform: it maps input to progression
// actions, converts ticks to time and turns feedback into events.
type Game struct {
	mode     Mode
	cfg      config.IslandConfig
	rng      *rand.Rand
	gen      *problem.Generator
	tick     uint64
	tickRate int

	prog  *Progression // Campaign only
	drill *Arena       // Drill only

	fx     *feedback
	cursor cursor
	seen   problem.ID // Problem the cursor was last reset for
	scored *Arena     // Arena whose final score was already reported

	screenW int
	screenH int
}

// New creates the campaign game.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewDrill creates the standalone arena game.
func NewDrill() *Game {
	return &Game{mode: ModeDrill}
}

func init() {
	registry.Register(string(ModeCampaign), func() registry.Game {
		return New()
	})
	registry.Register(string(ModeDrill), func() registry.Game {
		return NewDrill()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeDrill {
		return "Arena of Speed"
	}
	return "Island of Structure"
}

// Reset starts a fresh journey (or a fresh drill).
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = loadConfig()
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.gen = problem.NewGenerator(g.rng, g.cfg)
	g.tick = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.fx = &feedback{locate: g.locate}
	g.cursor = cursor{}
	g.seen = 0
	g.scored = nil

	g.prog = nil
	g.drill = nil
	switch g.mode {
	case ModeDrill:
		g.drill = NewArena(g.gen, g.cfg.Arena)
		g.drill.Start()
	default:
		g.prog = NewProgression(g.gen, g.cfg, g.fx)
	}
}

// Progression exposes the campaign state machine. It is nil in drill mode.
func (g *Game) Progression() *Progression {
	return g.prog
}

// Step applies this tick's input in delivery order, then advances time.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	for _, p := range in.Presses {
		if g.mode == ModeDrill {
			g.handleDrill(p)
		} else {
			g.handleCampaign(p)
			g.syncCursor()
		}
	}

	g.elapse(g.tickDuration())
	if g.prog != nil {
		g.syncCursor()
	}
	g.reportArena()

	return core.StepResult{State: g.State(), Events: g.fx.drain()}
}

// tickDuration returns the exact time covered by the current tick, so that
// rate ticks always add up to one second.
func (g *Game) tickDuration() time.Duration {
	rate := uint64(g.tickRate)
	n := g.tick
	return time.Duration(n*uint64(time.Second)/rate - (n-1)*uint64(time.Second)/rate)
}

func (g *Game) elapse(d time.Duration) {
	if g.prog != nil {
		g.prog.Elapse(d)
		return
	}
	g.drill.Elapse(d)
}

// reportArena emits the final score once per finished drill.
func (g *Game) reportArena() {
	a := g.activeArena()
	if a == nil || a.Phase() != ArenaFinished || g.scored == a {
		return
	}
	g.scored = a
	g.fx.events = append(g.fx.events, core.Event{
		Kind:  core.EventScore,
		Board: ArenaBoard,
		Score: a.Score(),
	})
}

func (g *Game) activeArena() *Arena {
	if g.prog != nil {
		return g.prog.Arena()
	}
	return g.drill
}

func (g *Game) handleDrill(p core.Press) {
	switch {
	case g.drill.Phase() == ArenaFinished:
		if p.Action == core.ActionRestart || p.Action == core.ActionConfirm {
			g.drill.Start()
			g.scored = nil
		}
	case p.Action == core.ActionDigit:
		if g.drill.Type(p.Digit) {
			g.fx.Celebrate(Spot{Target: TargetArenaInput}, core.ColorBrightGreen)
		}
	case p.Action == core.ActionClear:
		g.drill.Clear()
	}
}

func (g *Game) handleCampaign(p core.Press) {
	st := g.prog.State()

	switch st.View {
	case ViewMap:
		g.handleMap(p)
	case ViewDialogue:
		switch p.Action {
		case core.ActionConfirm, core.ActionSelect:
			g.prog.StartLevel()
		case core.ActionBack:
			g.prog.AbandonLevel()
		}
	case ViewLevel:
		if p.Action == core.ActionBack {
			g.prog.AbandonLevel()
			return
		}
		if st.Checkpoint {
			g.handleCheckpoint(p)
			return
		}
		switch d := st.Problem.(type) {
		case problem.Quiz:
			g.handleQuiz(p, d)
		case problem.Grouping:
			g.handleGrouping(p, d)
		case problem.Array:
			g.handleField(p)
		case problem.Arcade:
			g.handleArena(p)
		}
	}
}

func (g *Game) handleMap(p core.Press) {
	n := world.Count()
	switch p.Action {
	case core.ActionUp, core.ActionLeft:
		g.cursor.world = (g.cursor.world + n - 1) % n
	case core.ActionDown, core.ActionRight:
		g.cursor.world = (g.cursor.world + 1) % n
	case core.ActionDigit:
		if i := int(p.Digit - '1'); i >= 0 && i < n {
			g.cursor.world = i
		}
	case core.ActionSelect, core.ActionConfirm:
		g.prog.EnterWorld(world.All()[g.cursor.world].ID)
	}
}

func (g *Game) handleQuiz(p core.Press, q problem.Quiz) {
	n := len(q.Options)
	switch p.Action {
	case core.ActionLeft, core.ActionUp:
		g.cursor.option = (g.cursor.option + n - 1) % n
	case core.ActionRight, core.ActionDown:
		g.cursor.option = (g.cursor.option + 1) % n
	case core.ActionDigit:
		i := int(p.Digit - '1')
		if i < 0 || i >= n {
			return
		}
		g.cursor.option = i
		g.prog.SubmitAnswer(q.ID(), q.Options[i])
	case core.ActionSelect, core.ActionConfirm:
		g.prog.SubmitAnswer(q.ID(), q.Options[g.cursor.option])
	}
}

func (g *Game) handleGrouping(p core.Press, d problem.Grouping) {
	n := d.GroupCount
	switch p.Action {
	case core.ActionLeft, core.ActionUp:
		g.cursor.pile = (g.cursor.pile + n - 1) % n
	case core.ActionRight, core.ActionDown:
		g.cursor.pile = (g.cursor.pile + 1) % n
	case core.ActionDigit:
		i := int(p.Digit - '1')
		if i < 0 || i >= n {
			return
		}
		g.cursor.pile = i
		g.prog.AddToGroup(i)
	case core.ActionSelect:
		g.prog.AddToGroup(g.cursor.pile)
	case core.ActionConfirm:
		g.prog.CheckGrouping()
	case core.ActionClear:
		g.prog.ResetGroups()
	}
}

func (g *Game) handleField(p core.Press) {
	f := g.prog.Field()
	if f == nil {
		return
	}
	rows, cols := f.Size()
	switch p.Action {
	case core.ActionUp:
		g.cursor.row = core.Clamp(g.cursor.row-1, 0, rows-1)
	case core.ActionDown:
		g.cursor.row = core.Clamp(g.cursor.row+1, 0, rows-1)
	case core.ActionLeft:
		g.cursor.col = core.Clamp(g.cursor.col-1, 0, cols-1)
	case core.ActionRight:
		g.cursor.col = core.Clamp(g.cursor.col+1, 0, cols-1)
	case core.ActionSelect:
		g.prog.ToggleCell(g.cursor.row, g.cursor.col)
	case core.ActionConfirm:
		g.prog.CheckArray()
	}
}

func (g *Game) handleArena(p core.Press) {
	a := g.prog.Arena()
	if a == nil {
		return
	}
	if a.Phase() == ArenaFinished {
		if p.Action == core.ActionConfirm || p.Action == core.ActionSelect {
			g.prog.FinishArena()
		}
		return
	}
	switch p.Action {
	case core.ActionDigit:
		g.prog.TypeArcadeDigit(p.Digit)
	case core.ActionClear:
		g.prog.ClearArcadeAnswer()
	}
}

func (g *Game) handleCheckpoint(p core.Press) {
	choices := g.checkpointChoices()
	n := len(choices)
	switch p.Action {
	case core.ActionLeft, core.ActionUp:
		g.cursor.choice = (g.cursor.choice + n - 1) % n
	case core.ActionRight, core.ActionDown:
		g.cursor.choice = (g.cursor.choice + 1) % n
	case core.ActionSelect, core.ActionConfirm:
		g.prog.ResolveCheckpoint(choices[g.cursor.choice])
		g.cursor.choice = 0
		if g.prog.State().View == ViewMap {
			g.followUnlock()
		}
	}
}

// checkpointChoices lists what the overlay offers. Unlocking is only offered
// when the world has a successor.
func (g *Game) checkpointChoices() []CheckpointChoice {
	if w, ok := world.Lookup(g.prog.State().World); ok && w.HasNext() {
		return []CheckpointChoice{UnlockNext, ContinueInfinite}
	}
	return []CheckpointChoice{ContinueInfinite}
}

// followUnlock moves the map cursor onto the newest unlocked world.
func (g *Game) followUnlock() {
	st := g.prog.State()
	if len(st.Unlocked) == 0 {
		return
	}
	if i := world.Index(st.Unlocked[len(st.Unlocked)-1]); i >= 0 {
		g.cursor.world = i
	}
}

// syncCursor resets per-problem cursors as soon as a new problem is
// installed, so the highlight and the next press agree.
func (g *Game) syncCursor() {
	st := g.prog.State()
	var id problem.ID
	if st.Problem != nil {
		id = st.Problem.ID()
	}
	if id == g.seen {
		return
	}
	g.seen = id
	g.cursor.option = 0
	g.cursor.pile = 0
	g.cursor.row = 0
	g.cursor.col = 0
	g.cursor.choice = 0
}

// State returns the platform-facing status. The campaign never ends; its
// score is the star count.
func (g *Game) State() core.GameState {
	if g.mode == ModeDrill {
		return core.GameState{
			Score:    g.drill.Score(),
			GameOver: g.drill.Phase() == ArenaFinished,
		}
	}
	return core.GameState{Score: g.prog.State().Stars}
}

// feedback turns notifier calls into platform events, placed on screen by
// locate.
type feedback struct {
	events []core.Event
	locate func(Spot) core.Point
}

func (f *feedback) Celebrate(at Spot, color core.Color) {
	p := f.locate(at)
	f.events = append(f.events, core.Event{
		Kind:  core.EventCelebrate,
		X:     p.X,
		Y:     p.Y,
		Color: color,
	})
}

func (f *feedback) Shake() {
	f.events = append(f.events, core.Event{Kind: core.EventShake})
}

func (f *feedback) drain() []core.Event {
	if len(f.events) == 0 {
		return nil
	}
	out := f.events
	f.events = nil
	return out
}

package island

import (
	"time"

	"github.com/vovakirdan/island-of-structure/internal/config"
	"github.com/vovakirdan/island-of-structure/internal/core"
	"github.com/vovakirdan/island-of-structure/internal/games/island/problem"
	"github.com/vovakirdan/island-of-structure/internal/games/island/world"
)

// View is the screen the player is on.
type View int

const (
	ViewMap View = iota
	ViewDialogue
	ViewLevel
)

// String returns the view name.
func (v View) String() string {
	switch v {
	case ViewMap:
		return "map"
	case ViewDialogue:
		return "dialogue"
	case ViewLevel:
		return "level"
	default:
		return "unknown"
	}
}

// CheckpointChoice is the player's answer to the checkpoint overlay.
type CheckpointChoice int

const (
	// UnlockNext opens the next world and returns to the map.
	UnlockNext CheckpointChoice = iota
	// ContinueInfinite keeps generating problems in this world with no
	// further checkpoints.
	ContinueInfinite
)

// Target names the kind of element a Spot points at.
type Target int

const (
	TargetWorld Target = iota
	TargetOption
	TargetPile
	TargetCell
	TargetArenaInput
)

// Spot locates a feedback effect. Index is the option, pile or world index;
// Row and Col are used for field cells.
type Spot struct {
	Target Target
	Index  int
	Row    int
	Col    int
}

// Notifier receives fire-and-forget feedback. Nothing flows back into the
// progression from it.
type Notifier interface {
	Celebrate(at Spot, color core.Color)
	Shake()
}

type nopNotifier struct{}

func (nopNotifier) Celebrate(Spot, core.Color) {}
func (nopNotifier) Shake()                     {}

// State is a read-only copy of the progression, for rendering.
type State struct {
	World      world.ID
	View       View
	Solved     int
	Unlocked   []world.ID // In unlock order; always starts with the first world
	Stars      int
	Problem    problem.Descriptor // nil when no problem is active
	Checkpoint bool
	Infinite   bool
}

// advance is a scheduled move to the next problem. It carries the ID of the
// problem that was solved and only applies while that problem is active.
type advance struct {
	token problem.ID
	wait  time.Duration
}

// Progression is the island's state machine: which world is open, how many
// problems were solved there, which worlds are unlocked and what the player
// is looking at. All methods run on one goroutine; time only moves through
// Elapse.
type Progression struct {
	cfg    config.IslandConfig
	gen    *problem.Generator
	notify Notifier

	world      world.ID
	view       View
	solved     int
	unlocked   []world.ID
	stars      int
	current    problem.Descriptor
	checkpoint bool
	infinite   bool

	grouping *GroupingBoard
	field    *Field
	arena    *Arena

	resolved problem.ID // Last problem answered correctly, 0 if none
	pending  *advance
}

// NewProgression creates a fresh journey: first world unlocked, no stars,
// map view. A nil notifier discards feedback.
func NewProgression(gen *problem.Generator, cfg config.IslandConfig, notify Notifier) *Progression {
	if notify == nil {
		notify = nopNotifier{}
	}
	return &Progression{
		cfg:      cfg,
		gen:      gen,
		notify:   notify,
		world:    world.First(),
		view:     ViewMap,
		unlocked: []world.ID{world.First()},
	}
}

// State returns a snapshot of the progression.
func (p *Progression) State() State {
	unlocked := make([]world.ID, len(p.unlocked))
	copy(unlocked, p.unlocked)
	return State{
		World:      p.world,
		View:       p.view,
		Solved:     p.solved,
		Unlocked:   unlocked,
		Stars:      p.stars,
		Problem:    p.current,
		Checkpoint: p.checkpoint,
		Infinite:   p.infinite,
	}
}

// IsUnlocked reports whether id can be entered.
func (p *Progression) IsUnlocked(id world.ID) bool {
	for _, u := range p.unlocked {
		if u == id {
			return true
		}
	}
	return false
}

// Grouping returns the active grouping board, or nil.
func (p *Progression) Grouping() *GroupingBoard { return p.grouping }

// Field returns the active array field, or nil.
func (p *Progression) Field() *Field { return p.field }

// Arena returns the active drill, or nil.
func (p *Progression) Arena() *Arena { return p.arena }

// Pending reports whether a solved problem is waiting for its advance.
func (p *Progression) Pending() bool { return p.pending != nil }

// EnterWorld opens a world's dialogue with a fresh problem at difficulty 0.
// Locked and unknown worlds are refused.
func (p *Progression) EnterWorld(id world.ID) bool {
	if !p.IsUnlocked(id) {
		p.notify.Shake()
		return false
	}
	d, err := p.gen.Generate(id, 0)
	if err != nil {
		p.notify.Shake()
		return false
	}

	p.world = id
	p.solved = 0
	p.checkpoint = false
	p.infinite = false
	p.setProblem(d)
	p.view = ViewDialogue
	return true
}

// StartLevel leaves the dialogue for the level. Entering the arena starts
// its clock.
func (p *Progression) StartLevel() bool {
	if p.view != ViewDialogue || p.current == nil {
		return false
	}
	p.view = ViewLevel
	if p.arena != nil {
		p.arena.Start()
	}
	return true
}

// AbandonLevel returns to the map without penalty, discarding the problem
// and any scheduled advance.
func (p *Progression) AbandonLevel() bool {
	if p.view == ViewMap {
		return false
	}
	p.toMap()
	return true
}

// SubmitAnswer answers a quiz. The ID must name the active problem, so a
// click on a stale question does nothing.
func (p *Progression) SubmitAnswer(id problem.ID, value string) bool {
	if !p.accepting() || p.current.ID() != id {
		return false
	}
	q, ok := p.current.(problem.Quiz)
	if !ok {
		return false
	}
	if !q.Correct(value) {
		p.notify.Shake()
		return false
	}

	idx := 0
	for i, o := range q.Options {
		if o == value {
			idx = i
		}
	}
	p.notify.Celebrate(Spot{Target: TargetOption, Index: idx}, core.ColorBrightGreen)
	p.resolve()
	return true
}

// AddToGroup puts one brick on pile i.
func (p *Progression) AddToGroup(i int) bool {
	if !p.accepting() || p.grouping == nil {
		return false
	}
	if !p.grouping.Add(i) {
		p.notify.Shake()
		return false
	}
	p.notify.Celebrate(Spot{Target: TargetPile, Index: i}, core.ColorGreen)
	return true
}

// ResetGroups empties every pile.
func (p *Progression) ResetGroups() bool {
	if !p.accepting() || p.grouping == nil {
		return false
	}
	p.grouping.Reset()
	return true
}

// CheckGrouping succeeds only when every brick is placed and all piles are equal.
func (p *Progression) CheckGrouping() bool {
	if !p.accepting() || p.grouping == nil {
		return false
	}
	if !p.grouping.Full() || !p.grouping.Balanced() {
		p.notify.Shake()
		return false
	}
	p.notify.Celebrate(Spot{Target: TargetPile, Index: p.grouping.problem.GroupCount / 2}, core.ColorGreen)
	p.resolve()
	return true
}

// ToggleCell plants or clears a field cell.
func (p *Progression) ToggleCell(row, col int) bool {
	if !p.accepting() || p.field == nil {
		return false
	}
	planted, ok := p.field.Toggle(row, col)
	if !ok {
		return false
	}
	if planted {
		p.notify.Celebrate(Spot{Target: TargetCell, Row: row, Col: col}, core.ColorOrange)
	}
	return true
}

// CheckArray succeeds when the planted cells form the requested rectangle.
func (p *Progression) CheckArray() bool {
	if !p.accepting() || p.field == nil {
		return false
	}
	if !p.field.Rectangular() {
		p.notify.Shake()
		return false
	}
	b, _ := p.field.Bounds()
	col, row := b.Center()
	p.notify.Celebrate(Spot{Target: TargetCell, Row: row, Col: col}, core.ColorOrange)
	p.resolve()
	return true
}

// SubmitArcadeAnswer replaces the arena entry with value and scores it if it
// matches. Partial entries are kept silently.
func (p *Progression) SubmitArcadeAnswer(value string) bool {
	if !p.arenaRunning() {
		return false
	}
	return p.arenaResult(p.arena.Submit(value))
}

// TypeArcadeDigit appends a digit to the arena entry.
func (p *Progression) TypeArcadeDigit(d rune) bool {
	if !p.arenaRunning() {
		return false
	}
	return p.arenaResult(p.arena.Type(d))
}

// ClearArcadeAnswer empties the arena entry.
func (p *Progression) ClearArcadeAnswer() bool {
	if !p.arenaRunning() {
		return false
	}
	p.arena.Clear()
	return true
}

func (p *Progression) arenaResult(correct bool) bool {
	if correct {
		p.notify.Celebrate(Spot{Target: TargetArenaInput}, core.ColorBrightGreen)
	}
	return correct
}

// FinishArena is the single exit from a finished drill. It takes the same
// path as unlocking from a checkpoint.
func (p *Progression) FinishArena() bool {
	if p.view != ViewLevel || p.arena == nil || p.arena.Phase() != ArenaFinished {
		return false
	}
	p.unlockNext()
	return true
}

// ResolveCheckpoint applies the player's choice at the checkpoint overlay.
func (p *Progression) ResolveCheckpoint(choice CheckpointChoice) bool {
	if !p.checkpoint {
		return false
	}
	switch choice {
	case UnlockNext:
		p.unlockNext()
	case ContinueInfinite:
		d, err := p.gen.Generate(p.world, p.solved)
		if err != nil {
			return false
		}
		p.checkpoint = false
		p.infinite = true
		p.setProblem(d)
	default:
		return false
	}
	return true
}

// Elapse moves time forward: it fires a due advance and runs the arena clock.
func (p *Progression) Elapse(d time.Duration) {
	if d <= 0 {
		return
	}

	if p.pending != nil {
		p.pending.wait -= d
		if p.pending.wait <= 0 {
			token := p.pending.token
			p.pending = nil
			p.advance(token)
		}
	}

	if p.arenaRunning() {
		p.arena.Elapse(d)
	}
}

// accepting reports whether level input may change the active problem.
func (p *Progression) accepting() bool {
	return p.view == ViewLevel &&
		!p.checkpoint &&
		p.current != nil &&
		p.current.ID() != p.resolved
}

func (p *Progression) arenaRunning() bool {
	return p.view == ViewLevel && p.arena != nil && p.arena.Phase() == ArenaRunning
}

// resolve marks the active problem solved and schedules the advance.
// Further completions of the same problem are rejected by accepting.
func (p *Progression) resolve() {
	token := p.current.ID()
	p.resolved = token

	delay := p.cfg.Progression.FeedbackDelay()
	if delay <= 0 {
		p.advance(token)
		return
	}
	p.pending = &advance{token: token, wait: delay}
}

// advance counts a solved problem and moves on, unless the problem it was
// scheduled for is no longer active.
func (p *Progression) advance(token problem.ID) {
	if p.current == nil || p.current.ID() != token || p.view != ViewLevel {
		return
	}

	p.solved++
	p.stars++

	if p.solved == p.cfg.Progression.CheckpointAt && !p.infinite {
		p.checkpoint = true
		return
	}

	d, err := p.gen.Generate(p.world, p.solved)
	if err != nil {
		return
	}
	p.setProblem(d)
}

// unlockNext opens the current world's successor, if any, and returns to the map.
func (p *Progression) unlockNext() {
	if w, ok := world.Lookup(p.world); ok && w.HasNext() && !p.IsUnlocked(w.Next) {
		p.unlocked = append(p.unlocked, w.Next)
	}
	p.toMap()
}

func (p *Progression) toMap() {
	p.view = ViewMap
	p.checkpoint = false
	p.setProblem(nil)
}

// setProblem installs d and builds the board for its variant. A nil d clears
// everything, including the arena and any scheduled advance.
func (p *Progression) setProblem(d problem.Descriptor) {
	p.current = d
	p.grouping = nil
	p.field = nil
	p.arena = nil
	p.pending = nil

	switch v := d.(type) {
	case problem.Grouping:
		p.grouping = NewGroupingBoard(v)
	case problem.Array:
		p.field = NewField(v, p.cfg.Boards.FieldMinSize)
	case problem.Arcade:
		p.arena = NewArena(p.gen, p.cfg.Arena)
	}
}

package problem

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/vovakirdan/island-of-structure/internal/config"
	"github.com/vovakirdan/island-of-structure/internal/games/island/world"
)

// ErrUnknownWorld is returned when Generate is asked for a world it has no
// rules for.
var ErrUnknownWorld = errors.New("problem: unknown world")

// Source is the randomness a Generator draws from. *rand.Rand satisfies it;
// tests can supply a scripted sequence.
type Source interface {
	// Intn returns a value in [0, n). n is always > 0.
	Intn(n int) int
}

// Round is one question of the arena drill.
type Round struct {
	Table      int
	Multiplier int
	Product    int
}

// Generator produces problems. It is not safe for concurrent use.
type Generator struct {
	rng    Source
	ramp   config.RampConfig
	boards config.BoardsConfig
	arena  config.ArenaConfig
	lastID ID
}

// NewGenerator creates a generator drawing from rng with the given limits.
func NewGenerator(rng Source, cfg config.IslandConfig) *Generator {
	return &Generator{
		rng:    rng,
		ramp:   cfg.Ramp,
		boards: cfg.Boards,
		arena:  cfg.Arena,
	}
}

// between returns a uniform value in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Intn(hi-lo+1)
}

func (g *Generator) nextMeta() Meta {
	g.lastID++
	return Meta{ProblemID: g.lastID}
}

func (g *Generator) base(difficulty int) int {
	return g.between(g.ramp.BaseMin, g.ramp.UpperAt(difficulty))
}

func (g *Generator) multiplier() int {
	return g.between(g.ramp.MultiplierMin, g.ramp.MultiplierMax)
}

// Generate creates the next problem for a world. Difficulty is the number of
// problems already solved in the current visit and may grow without bound.
func (g *Generator) Generate(id world.ID, difficulty int) (Descriptor, error) {
	if difficulty < 0 {
		difficulty = 0
	}

	switch id {
	case world.Gate:
		return g.pattern(difficulty), nil
	case world.Canyon:
		return g.skipCount(difficulty), nil
	case world.Village:
		return g.grouping(difficulty), nil
	case world.Fields:
		return g.array(difficulty), nil
	case world.Bridge:
		return g.missingFactor(difficulty), nil
	case world.Arena:
		return Arcade{Meta: g.nextMeta()}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownWorld, id)
	}
}

// pattern asks for the fourth term of an arithmetic sequence. Distractors sit
// just below and just above the answer so wrong picks are near misses.
func (g *Generator) pattern(difficulty int) Quiz {
	start := g.between(g.boards.PatternStartMin, g.boards.PatternStartMax)
	step := g.base(difficulty)
	seq := [3]int{start, start + step, start + 2*step}
	answer := seq[2] + step

	return Quiz{
		Meta:     g.nextMeta(),
		Question: fmt.Sprintf("What comes next: %d, %d, %d...?", seq[0], seq[1], seq[2]),
		Options:  options(answer-1, answer, answer+2),
		Answer:   strconv.Itoa(answer),
		Hint:     fmt.Sprintf("The numbers grow by %d each time.", step),
	}
}

// skipCount hides the third of four consecutive multiples of the step.
func (g *Generator) skipCount(difficulty int) Quiz {
	step := g.base(difficulty)
	offset := g.between(0, g.boards.SkipOffsetMax) * step
	seq := [4]int{offset + step, offset + 2*step, offset + 3*step, offset + 4*step}
	missing := seq[2]

	return Quiz{
		Meta:     g.nextMeta(),
		Question: fmt.Sprintf("Fill the gap: %d, %d, __, %d", seq[0], seq[1], seq[3]),
		Options:  options(missing-1, missing, missing+1),
		Answer:   strconv.Itoa(missing),
		Hint:     fmt.Sprintf("Count by %ds.", step),
	}
}

// grouping builds a division-by-sharing problem. The pile count grows with
// difficulty but is capped so every pile fits on screen.
func (g *Generator) grouping(difficulty int) Grouping {
	maxGroups := min(difficulty+g.boards.MinGroups, g.boards.MaxGroups)
	groups := g.between(g.boards.MinGroups, maxGroups)
	perGroup := g.base(difficulty)
	total := groups * perGroup

	return Grouping{
		Meta:        g.nextMeta(),
		TargetTotal: total,
		GroupCount:  groups,
		ItemIcon:    "▣",
		Instruction: fmt.Sprintf("Divide %d bricks into %d equal piles.", total, groups),
	}
}

// array builds a rows x cols planting problem clamped to the visible grid.
func (g *Generator) array(difficulty int) Array {
	rows := min(g.base(difficulty), g.boards.GridLimit)
	cols := min(g.multiplier(), g.boards.GridLimit)

	return Array{
		Meta:        g.nextMeta(),
		Rows:        rows,
		Cols:        cols,
		Target:      rows * cols,
		Instruction: fmt.Sprintf("Plant a field %d rows high and %d columns wide.", rows, cols),
	}
}

// missingFactor hides one factor of a product, chosen with equal odds.
func (g *Generator) missingFactor(difficulty int) Quiz {
	base := g.base(difficulty)
	mult := g.multiplier()
	total := base * mult
	hideFirst := g.rng.Intn(2) == 0

	hidden, shown := mult, base
	question := fmt.Sprintf("%d x ? = %d", base, total)
	if hideFirst {
		hidden, shown = base, mult
		question = fmt.Sprintf("? x %d = %d", mult, total)
	}

	return Quiz{
		Meta:     g.nextMeta(),
		Question: question,
		Options:  options(hidden-1, hidden, hidden+2),
		Answer:   strconv.Itoa(hidden),
		Hint:     fmt.Sprintf("Think: What times %d makes %d?", shown, total),
	}
}

// ArenaRound draws a full-range multiplication fact. The drill does not scale
// with difficulty.
func (g *Generator) ArenaRound() Round {
	table := g.between(g.arena.FactorMin, g.arena.FactorMax)
	mult := g.between(g.arena.FactorMin, g.arena.FactorMax)
	return Round{Table: table, Multiplier: mult, Product: table * mult}
}

func options(a, b, c int) [3]string {
	return [3]string{strconv.Itoa(a), strconv.Itoa(b), strconv.Itoa(c)}
}

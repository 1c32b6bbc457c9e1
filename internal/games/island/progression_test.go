package island

import (
	"math/rand"
	"strconv"
	"testing"
	"time"

	"github.com/vovakirdan/island-of-structure/internal/config"
	"github.com/vovakirdan/island-of-structure/internal/core"
	"github.com/vovakirdan/island-of-structure/internal/games/island/problem"
	"github.com/vovakirdan/island-of-structure/internal/games/island/world"
)

type recorder struct {
	celebrations []Spot
	shakes       int
}

func (r *recorder) Celebrate(at Spot, _ core.Color) {
	r.celebrations = append(r.celebrations, at)
}

func (r *recorder) Shake() {
	r.shakes++
}

func newProgression(delayMS int) (*Progression, *recorder) {
	cfg := config.DefaultIsland()
	cfg.Progression.FeedbackDelayMS = delayMS
	gen := problem.NewGenerator(rand.New(rand.NewSource(1)), cfg)
	rec := &recorder{}
	return NewProgression(gen, cfg, rec), rec
}

func play(t *testing.T, p *Progression, id world.ID) {
	t.Helper()
	if !p.EnterWorld(id) {
		t.Fatalf("EnterWorld(%s) refused", id)
	}
	if !p.StartLevel() {
		t.Fatalf("StartLevel in %s refused", id)
	}
}

// solve completes the active problem correctly, whatever its variant.
func solve(t *testing.T, p *Progression) {
	t.Helper()
	switch d := p.State().Problem.(type) {
	case problem.Quiz:
		if !p.SubmitAnswer(d.ID(), d.Answer) {
			t.Fatalf("correct answer %q rejected", d.Answer)
		}
	case problem.Grouping:
		for i := range d.GroupCount {
			for range d.PerGroup() {
				p.AddToGroup(i)
			}
		}
		if !p.CheckGrouping() {
			t.Fatalf("balanced grouping rejected: %v", p.Grouping().Piles())
		}
	case problem.Array:
		for r := range d.Rows {
			for c := range d.Cols {
				p.ToggleCell(r, c)
			}
		}
		if !p.CheckArray() {
			t.Fatalf("%dx%d rectangle rejected", d.Rows, d.Cols)
		}
	default:
		t.Fatalf("cannot solve %T", d)
	}
}

// clearWorld plays a world up to its checkpoint and unlocks the next one.
func clearWorld(t *testing.T, p *Progression, id world.ID) {
	t.Helper()
	play(t, p, id)
	for i := 0; !p.State().Checkpoint; i++ {
		if i > 20 {
			t.Fatalf("no checkpoint in %s after %d problems", id, i)
		}
		solve(t, p)
	}
	if !p.ResolveCheckpoint(UnlockNext) {
		t.Fatal("ResolveCheckpoint(UnlockNext) refused")
	}
}

func TestNewProgression(t *testing.T) {
	p, _ := newProgression(800)
	st := p.State()

	if st.View != ViewMap {
		t.Errorf("view = %s, want map", st.View)
	}
	if len(st.Unlocked) != 1 || st.Unlocked[0] != world.Gate {
		t.Errorf("unlocked = %v, want [gate]", st.Unlocked)
	}
	if st.Stars != 0 || st.Solved != 0 || st.Problem != nil {
		t.Errorf("unexpected initial state %+v", st)
	}
}

func TestEnterWorldRefusesLockedAndUnknown(t *testing.T) {
	p, rec := newProgression(800)

	for _, id := range []world.ID{world.Canyon, world.Arena, "volcano"} {
		if p.EnterWorld(id) {
			t.Errorf("EnterWorld(%q) succeeded", id)
		}
	}
	if rec.shakes != 3 {
		t.Errorf("shakes = %d, want 3", rec.shakes)
	}
	if st := p.State(); st.View != ViewMap || st.Problem != nil {
		t.Errorf("refused entry changed state: %+v", st)
	}
}

func TestEnterWorldShowsDialogue(t *testing.T) {
	p, _ := newProgression(800)

	if !p.EnterWorld(world.Gate) {
		t.Fatal("EnterWorld(gate) refused")
	}
	st := p.State()
	if st.View != ViewDialogue || st.World != world.Gate || st.Problem == nil {
		t.Fatalf("state after entry: %+v", st)
	}

	// Level actions wait for StartLevel.
	q := st.Problem.(problem.Quiz)
	if p.SubmitAnswer(q.ID(), q.Answer) {
		t.Error("answer accepted from dialogue view")
	}
	if !p.StartLevel() || p.State().View != ViewLevel {
		t.Fatal("StartLevel failed")
	}
	if p.StartLevel() {
		t.Error("StartLevel accepted twice")
	}
}

func TestCorrectAnswerAdvancesAfterDelay(t *testing.T) {
	p, rec := newProgression(800)
	play(t, p, world.Gate)

	q := p.State().Problem.(problem.Quiz)
	if !p.SubmitAnswer(q.ID(), q.Answer) {
		t.Fatal("correct answer rejected")
	}
	if len(rec.celebrations) != 1 || rec.celebrations[0].Target != TargetOption {
		t.Fatalf("celebrations = %+v", rec.celebrations)
	}
	if rec.celebrations[0].Index != 1 {
		t.Errorf("celebrated option %d, want 1 (answer sits between distractors)", rec.celebrations[0].Index)
	}
	if !p.Pending() {
		t.Fatal("advance not scheduled")
	}

	p.Elapse(799 * time.Millisecond)
	if st := p.State(); st.Solved != 0 || st.Problem.ID() != q.ID() {
		t.Fatalf("advanced early: %+v", st)
	}

	p.Elapse(time.Millisecond)
	st := p.State()
	if st.Solved != 1 || st.Stars != 1 {
		t.Errorf("solved/stars = %d/%d, want 1/1", st.Solved, st.Stars)
	}
	if st.Problem == nil || st.Problem.ID() == q.ID() {
		t.Error("no new problem after advance")
	}
	if p.Pending() {
		t.Error("advance still pending")
	}
}

func TestRepeatedCompletionIgnored(t *testing.T) {
	p, rec := newProgression(800)
	play(t, p, world.Gate)

	q := p.State().Problem.(problem.Quiz)
	p.SubmitAnswer(q.ID(), q.Answer)
	if p.SubmitAnswer(q.ID(), q.Answer) {
		t.Error("second completion of a resolved problem accepted")
	}
	p.Elapse(time.Second)
	p.Elapse(time.Second)

	if got := p.State().Solved; got != 1 {
		t.Errorf("solved = %d, want 1", got)
	}
	if len(rec.celebrations) != 1 {
		t.Errorf("celebrations = %d, want 1", len(rec.celebrations))
	}
}

func TestWrongAndStaleAnswers(t *testing.T) {
	p, rec := newProgression(0)
	play(t, p, world.Gate)

	q := p.State().Problem.(problem.Quiz)
	if p.SubmitAnswer(q.ID(), q.Options[0]) {
		t.Error("wrong answer accepted")
	}
	if rec.shakes != 1 {
		t.Errorf("shakes = %d, want 1", rec.shakes)
	}

	if p.SubmitAnswer(q.ID()+1000, q.Answer) {
		t.Error("answer for a stale problem id accepted")
	}
	if rec.shakes != 1 {
		t.Error("stale answer should be silent")
	}
	if p.State().Solved != 0 {
		t.Error("solved count changed")
	}
}

func TestZeroDelayAdvancesImmediately(t *testing.T) {
	p, _ := newProgression(0)
	play(t, p, world.Gate)

	solve(t, p)
	if p.Pending() || p.State().Solved != 1 {
		t.Errorf("state = %+v, want solved 1 with nothing pending", p.State())
	}
}

func TestAbandonDuringDelay(t *testing.T) {
	p, _ := newProgression(800)
	play(t, p, world.Gate)

	solve(t, p)
	if !p.AbandonLevel() {
		t.Fatal("AbandonLevel refused")
	}
	p.Elapse(2 * time.Second)

	st := p.State()
	if st.View != ViewMap || st.Problem != nil || st.Solved != 0 || st.Stars != 0 {
		t.Errorf("stale advance applied after abandon: %+v", st)
	}
	if p.AbandonLevel() {
		t.Error("AbandonLevel accepted on the map")
	}
}

func TestReentryDropsPendingAdvance(t *testing.T) {
	p, _ := newProgression(800)
	play(t, p, world.Gate)
	solve(t, p)

	// Leave and re-enter before the delay runs out; the new problem must
	// not be replaced by the old advance.
	p.AbandonLevel()
	play(t, p, world.Gate)
	id := p.State().Problem.ID()
	p.Elapse(time.Second)

	if st := p.State(); st.Solved != 0 || st.Problem.ID() != id {
		t.Errorf("old advance applied to new visit: %+v", st)
	}
}

func TestCheckpointAtTen(t *testing.T) {
	p, _ := newProgression(0)
	play(t, p, world.Gate)

	for range 9 {
		solve(t, p)
	}
	if p.State().Checkpoint {
		t.Fatal("checkpoint before 10 solves")
	}

	last := p.State().Problem
	solve(t, p)
	st := p.State()
	if !st.Checkpoint || st.Solved != 10 || st.Stars != 10 {
		t.Fatalf("state at 10 = %+v", st)
	}
	if st.Problem.ID() != last.ID() {
		t.Error("a new problem was generated behind the checkpoint")
	}

	q := last.(problem.Quiz)
	if p.SubmitAnswer(q.ID(), q.Answer) {
		t.Error("answer accepted behind the checkpoint")
	}

	if !p.ResolveCheckpoint(UnlockNext) {
		t.Fatal("ResolveCheckpoint refused")
	}
	st = p.State()
	if st.View != ViewMap || st.Checkpoint {
		t.Errorf("after unlock: %+v", st)
	}
	want := []world.ID{world.Gate, world.Canyon}
	if len(st.Unlocked) != 2 || st.Unlocked[0] != want[0] || st.Unlocked[1] != want[1] {
		t.Errorf("unlocked = %v, want %v", st.Unlocked, want)
	}
	if p.ResolveCheckpoint(UnlockNext) {
		t.Error("ResolveCheckpoint accepted without a checkpoint")
	}
}

func TestContinueInfinite(t *testing.T) {
	p, _ := newProgression(0)
	play(t, p, world.Gate)
	for range 10 {
		solve(t, p)
	}

	if !p.ResolveCheckpoint(ContinueInfinite) {
		t.Fatal("ContinueInfinite refused")
	}
	st := p.State()
	if !st.Infinite || st.Checkpoint || st.View != ViewLevel || st.Problem == nil {
		t.Fatalf("after continue: %+v", st)
	}

	for range 15 {
		solve(t, p)
		if p.State().Checkpoint {
			t.Fatalf("checkpoint reappeared at %d", p.State().Solved)
		}
	}
	if got := p.State().Solved; got != 25 {
		t.Errorf("solved = %d, want 25", got)
	}
	if len(p.State().Unlocked) != 1 {
		t.Error("continuing should not unlock anything")
	}
}

func TestEntryResetsSolvedAndInfinite(t *testing.T) {
	p, _ := newProgression(0)
	play(t, p, world.Gate)
	for range 10 {
		solve(t, p)
	}
	p.ResolveCheckpoint(ContinueInfinite)
	p.AbandonLevel()

	play(t, p, world.Gate)
	st := p.State()
	if st.Solved != 0 || st.Infinite || st.Checkpoint {
		t.Errorf("re-entry state = %+v", st)
	}
	if st.Stars != 10 {
		t.Errorf("stars = %d, want 10 (stars are never reset)", st.Stars)
	}
}

func TestUnlockIsIdempotent(t *testing.T) {
	p, _ := newProgression(0)
	clearWorld(t, p, world.Gate)
	clearWorld(t, p, world.Gate)

	if got := p.State().Unlocked; len(got) != 2 {
		t.Errorf("unlocked = %v, want [gate canyon]", got)
	}
}

func TestGroupingThroughProgression(t *testing.T) {
	p, rec := newProgression(0)
	clearWorld(t, p, world.Gate)
	clearWorld(t, p, world.Canyon)
	play(t, p, world.Village)

	d := p.State().Problem.(problem.Grouping)

	// Everything on one pile: full but unbalanced.
	for range d.TargetTotal {
		if !p.AddToGroup(0) {
			t.Fatal("AddToGroup refused below the target")
		}
	}
	if p.AddToGroup(1) {
		t.Error("AddToGroup accepted past the target")
	}
	shakes := rec.shakes
	if p.CheckGrouping() {
		t.Fatal("unbalanced grouping accepted")
	}
	if rec.shakes != shakes+1 {
		t.Error("unbalanced check should shake")
	}
	if p.Grouping().Total() != d.TargetTotal {
		t.Error("failed check changed the piles")
	}

	if !p.ResetGroups() || p.Grouping().Total() != 0 {
		t.Fatal("ResetGroups did not empty the piles")
	}
	if p.CheckGrouping() {
		t.Error("check on empty piles accepted")
	}

	solve(t, p)
	if p.State().Solved != 1 {
		t.Error("balanced grouping did not count")
	}
}

func TestFieldThroughProgression(t *testing.T) {
	p, rec := newProgression(0)
	for _, id := range []world.ID{world.Gate, world.Canyon, world.Village} {
		clearWorld(t, p, id)
	}
	play(t, p, world.Fields)

	d := p.State().Problem.(problem.Array)
	rows, cols := p.Field().Size()
	if rows != max(d.Rows+1, 6) || cols != max(d.Cols+1, 6) {
		t.Errorf("field %dx%d for a %dx%d problem", rows, cols, d.Rows, d.Cols)
	}

	if p.ToggleCell(rows, 0) || p.ToggleCell(0, -1) {
		t.Error("toggle outside the grid accepted")
	}

	// One cell short of the target.
	for i := range d.Target - 1 {
		p.ToggleCell(i/d.Cols, i%d.Cols)
	}
	shakes := rec.shakes
	if p.CheckArray() {
		t.Fatal("incomplete field accepted")
	}
	if rec.shakes != shakes+1 {
		t.Error("wrong field should shake")
	}

	p.ToggleCell((d.Target-1)/d.Cols, (d.Target-1)%d.Cols)
	if !p.CheckArray() {
		t.Fatal("complete rectangle rejected")
	}
	if p.State().Solved != 1 {
		t.Error("field did not count")
	}
}

func unlockAll(t *testing.T, p *Progression) {
	t.Helper()
	for _, w := range world.All() {
		if w.HasNext() {
			clearWorld(t, p, w.ID)
		}
	}
	if n := len(p.State().Unlocked); n != world.Count() {
		t.Fatalf("unlocked %d worlds, want %d", n, world.Count())
	}
}

func TestArenaCountdown(t *testing.T) {
	p, _ := newProgression(0)
	unlockAll(t, p)
	play(t, p, world.Arena)

	a := p.Arena()
	if a == nil || a.Phase() != ArenaRunning || a.Remaining() != 60 {
		t.Fatalf("arena not running after StartLevel: %+v", a)
	}

	for range 59 {
		p.Elapse(time.Second)
	}
	if a.Phase() != ArenaRunning || a.Remaining() != 1 {
		t.Fatalf("after 59s: phase %s, remaining %d", a.Phase(), a.Remaining())
	}
	if p.FinishArena() {
		t.Error("FinishArena accepted while running")
	}

	p.Elapse(time.Second)
	if a.Phase() != ArenaFinished || a.Remaining() != 0 {
		t.Fatalf("after 60s: phase %s, remaining %d", a.Phase(), a.Remaining())
	}
	p.Elapse(5 * time.Second)
	if a.Remaining() != 0 {
		t.Error("clock kept running after finish")
	}
	if p.TypeArcadeDigit('5') || p.SubmitArcadeAnswer("10") {
		t.Error("input accepted after finish")
	}

	if !p.FinishArena() {
		t.Fatal("FinishArena refused")
	}
	st := p.State()
	if st.View != ViewMap || p.Arena() != nil {
		t.Errorf("after finish: %+v", st)
	}
	if len(st.Unlocked) != world.Count() {
		t.Error("finishing the arena changed the unlocked set")
	}
}

func TestArenaScoringThroughProgression(t *testing.T) {
	p, rec := newProgression(0)
	unlockAll(t, p)
	play(t, p, world.Arena)
	a := p.Arena()

	if p.SubmitArcadeAnswer("abc") {
		t.Error("non-numeric answer matched")
	}
	if a.Entry() != "abc" {
		t.Errorf("entry = %q, want partial kept", a.Entry())
	}
	if !p.ClearArcadeAnswer() || a.Entry() != "" {
		t.Error("ClearArcadeAnswer did not empty the entry")
	}

	before := len(rec.celebrations)
	for _, want := range []int{100, 210, 330} {
		if !p.SubmitArcadeAnswer(strconv.Itoa(a.Round().Product)) {
			t.Fatal("correct product rejected")
		}
		if a.Score() != want {
			t.Errorf("score = %d, want %d", a.Score(), want)
		}
	}
	if a.Combo() != 3 {
		t.Errorf("combo = %d, want 3", a.Combo())
	}
	if got := len(rec.celebrations) - before; got != 3 {
		t.Errorf("celebrations = %d, want 3", got)
	}
}

func TestArenaAbandonDropsClock(t *testing.T) {
	p, _ := newProgression(0)
	unlockAll(t, p)
	play(t, p, world.Arena)
	p.Elapse(10 * time.Second)

	p.AbandonLevel()
	if p.Arena() != nil {
		t.Fatal("arena kept after abandon")
	}

	play(t, p, world.Arena)
	if got := p.Arena().Remaining(); got != 60 {
		t.Errorf("re-entered arena has %ds, want a fresh 60s", got)
	}
}

// TestRandomPlayInvariants drives the progression with random actions and
// checks the counters only ever move the allowed way.
func TestRandomPlayInvariants(t *testing.T) {
	p, _ := newProgression(300)
	rng := rand.New(rand.NewSource(42))
	ids := []world.ID{world.Gate, world.Canyon, world.Village, world.Fields, world.Bridge, world.Arena, "volcano"}

	prev := p.State()
	for step := range 5000 {
		entered := false
		switch rng.Intn(9) {
		case 0:
			entered = p.EnterWorld(ids[rng.Intn(len(ids))])
		case 1:
			p.StartLevel()
		case 2, 3:
			if p.State().View == ViewLevel && !p.State().Checkpoint && !p.Pending() {
				if _, arcade := p.State().Problem.(problem.Arcade); !arcade {
					solve(t, p)
				}
			}
		case 4:
			if q, ok := p.State().Problem.(problem.Quiz); ok {
				p.SubmitAnswer(q.ID(), q.Options[rng.Intn(3)])
			}
		case 5:
			if rng.Intn(4) == 0 {
				p.AbandonLevel()
			}
		case 6:
			p.ResolveCheckpoint(CheckpointChoice(rng.Intn(2)))
		case 7:
			p.Elapse(time.Duration(rng.Intn(1500)) * time.Millisecond)
		case 8:
			p.TypeArcadeDigit(rune('0' + rng.Intn(10)))
			p.FinishArena()
		}

		st := p.State()
		if st.Unlocked[0] != world.Gate {
			t.Fatalf("step %d: gate not first in %v", step, st.Unlocked)
		}
		if len(st.Unlocked) < len(prev.Unlocked) {
			t.Fatalf("step %d: unlocked shrank %v -> %v", step, prev.Unlocked, st.Unlocked)
		}
		for i, id := range prev.Unlocked {
			if st.Unlocked[i] != id {
				t.Fatalf("step %d: unlocked reordered %v -> %v", step, prev.Unlocked, st.Unlocked)
			}
		}
		if st.Stars < prev.Stars {
			t.Fatalf("step %d: stars fell %d -> %d", step, prev.Stars, st.Stars)
		}
		if !entered && st.Solved < prev.Solved {
			t.Fatalf("step %d: solved fell %d -> %d without entry", step, prev.Solved, st.Solved)
		}
		if st.Checkpoint && st.Solved != 10 {
			t.Fatalf("step %d: checkpoint at solved %d", step, st.Solved)
		}
		prev = st
	}
}

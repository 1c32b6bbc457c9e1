package island

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/island-of-structure/internal/core"
	"github.com/vovakirdan/island-of-structure/internal/games/island/problem"
)

func newGame(mode Mode, seed int64, rate int) *Game {
	g := &Game{mode: mode}
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24, TickRate: rate})
	return g
}

func press(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

func typeDigit(g *Game, d rune) core.StepResult {
	in := core.NewInputFrame()
	in.SetDigit(d)
	return g.Step(in)
}

func countEvents(events []core.Event, kind core.EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestTickDurationAddsUpToOneSecond(t *testing.T) {
	for _, rate := range []int{7, 30, 60} {
		g := newGame(ModeCampaign, 1, rate)
		var total time.Duration
		for i := 1; i <= rate; i++ {
			g.tick = uint64(i)
			total += g.tickDuration()
		}
		if total != time.Second {
			t.Errorf("rate %d: %d ticks cover %v, want 1s", rate, rate, total)
		}
	}
}

func TestCampaignKeys(t *testing.T) {
	g := newGame(ModeCampaign, 3, 30)

	press(g, core.ActionConfirm)
	if v := g.prog.State().View; v != ViewDialogue {
		t.Fatalf("view after Enter on map = %s, want dialogue", v)
	}
	press(g, core.ActionConfirm)
	if v := g.prog.State().View; v != ViewLevel {
		t.Fatalf("view after Enter in dialogue = %s, want level", v)
	}

	q := g.prog.State().Problem.(problem.Quiz)
	res := typeDigit(g, '2') // answers sit in the middle slot
	if countEvents(res.Events, core.EventCelebrate) != 1 {
		t.Fatalf("events = %+v, want one celebration", res.Events)
	}
	for _, e := range res.Events {
		if e.Kind == core.EventCelebrate && e.Y != optionY+1 {
			t.Errorf("celebration at row %d, want option row %d", e.Y, optionY+1)
		}
	}
	if !g.prog.Pending() {
		t.Errorf("answer %q did not resolve the problem", q.Answer)
	}

	press(g, core.ActionBack)
	if v := g.prog.State().View; v != ViewMap {
		t.Errorf("view after Esc = %s, want map", v)
	}
}

func TestWrongAnswerShakes(t *testing.T) {
	g := newGame(ModeCampaign, 3, 30)
	press(g, core.ActionConfirm)
	press(g, core.ActionConfirm)

	// The cursor starts on the lowest option, which is always a distractor.
	res := press(g, core.ActionSelect)
	if countEvents(res.Events, core.EventShake) != 1 {
		t.Errorf("events = %+v, want one shake", res.Events)
	}
}

func TestCursorResetsWhenNextProblemArrives(t *testing.T) {
	g := newGame(ModeCampaign, 3, 30)
	press(g, core.ActionConfirm)
	press(g, core.ActionConfirm)

	first := g.prog.State().Problem.ID()
	res := press(g, core.ActionRight, core.ActionSelect)
	if countEvents(res.Events, core.EventCelebrate) != 1 {
		t.Fatalf("events = %+v, want one celebration", res.Events)
	}

	for range 30 {
		press(g)
	}
	next := g.prog.State().Problem
	if next.ID() == first {
		t.Fatal("next problem was not installed")
	}
	if g.cursor.option != 0 {
		t.Errorf("highlighted option = %d after advance, want 0", g.cursor.option)
	}

	// The highlighted slot is the one that gets submitted.
	res = press(g, core.ActionRight, core.ActionSelect)
	if countEvents(res.Events, core.EventCelebrate) != 1 || countEvents(res.Events, core.EventShake) != 0 {
		t.Errorf("answering the highlighted middle option: events = %+v", res.Events)
	}
}

func TestLockedWorldShakes(t *testing.T) {
	g := newGame(ModeCampaign, 3, 30)

	res := press(g, core.ActionDown, core.ActionConfirm)
	if countEvents(res.Events, core.EventShake) != 1 {
		t.Errorf("events = %+v, want one shake", res.Events)
	}
	if v := g.prog.State().View; v != ViewMap {
		t.Errorf("view = %s, want map", v)
	}
}

func TestPressesApplyInOrder(t *testing.T) {
	g := newGame(ModeCampaign, 3, 30)

	// Enter, start, leave: all within one tick.
	press(g, core.ActionConfirm, core.ActionConfirm, core.ActionBack)
	if v := g.prog.State().View; v != ViewMap {
		t.Errorf("view = %s, want map", v)
	}
}

func TestDelayedAdvanceRunsOnTicks(t *testing.T) {
	g := newGame(ModeCampaign, 3, 30)
	press(g, core.ActionConfirm)
	press(g, core.ActionConfirm)
	typeDigit(g, '2')

	// 800ms at 30 ticks per second is 24 ticks; the answering tick counts.
	for range 22 {
		press(g)
	}
	if g.prog.State().Solved != 0 {
		t.Fatal("advanced before the feedback delay")
	}
	press(g)
	press(g)
	if g.prog.State().Solved != 1 {
		t.Errorf("solved = %d after the delay, want 1", g.prog.State().Solved)
	}
}

func TestDrillReportsScoreOnce(t *testing.T) {
	g := newGame(ModeDrill, 5, 10)
	if g.State().GameOver {
		t.Fatal("drill over before it started")
	}

	scores := 0
	for range 700 {
		res := press(g)
		scores += countEvents(res.Events, core.EventScore)
		for _, e := range res.Events {
			if e.Kind == core.EventScore && e.Board != ArenaBoard {
				t.Errorf("score on board %q", e.Board)
			}
		}
	}
	if scores != 1 {
		t.Errorf("score events = %d, want 1", scores)
	}
	if !g.State().GameOver {
		t.Fatal("drill not over after 70 seconds")
	}

	press(g, core.ActionRestart)
	if g.State().GameOver || g.drill.Remaining() != 60 {
		t.Error("restart did not start a new drill")
	}
}

func TestDrillScoring(t *testing.T) {
	g := newGame(ModeDrill, 5, 30)
	for _, d := range strconv.Itoa(g.drill.Round().Product) {
		typeDigit(g, d)
	}
	if g.State().Score != 100 {
		t.Errorf("score = %d, want 100", g.State().Score)
	}
}

func TestRenderViews(t *testing.T) {
	g := newGame(ModeCampaign, 3, 30)
	scr := core.NewScreen(80, 24)

	g.Render(scr)
	if out := scr.String(); !strings.Contains(out, "The Gate") || !strings.Contains(out, "(locked)") {
		t.Errorf("map view missing worlds:\n%s", out)
	}

	press(g, core.ActionConfirm)
	g.Render(scr)
	if out := scr.String(); !strings.Contains(out, "Gatekeeper") {
		t.Errorf("dialogue view missing character:\n%s", out)
	}

	press(g, core.ActionConfirm)
	g.Render(scr)
	q := g.prog.State().Problem.(problem.Quiz)
	if out := scr.String(); !strings.Contains(out, q.Question) {
		t.Errorf("level view missing question %q:\n%s", q.Question, out)
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newGame(ModeCampaign, 12345, 30)
	g2 := newGame(ModeCampaign, 12345, 30)

	actions := []core.Action{
		core.ActionNone, core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight,
		core.ActionSelect, core.ActionConfirm, core.ActionClear, core.ActionBack,
	}
	script := rand.New(rand.NewSource(7))

	for i := range 3000 {
		in := core.NewInputFrame()
		if script.Intn(3) == 0 {
			in.Set(actions[script.Intn(len(actions))])
		}
		if script.Intn(10) == 0 {
			in.SetDigit(rune('1' + script.Intn(3)))
		}
		g1.Step(in)
		g2.Step(in)

		if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
			t.Fatalf("tick %d: snapshots diverged\n%+v\n%+v", i, s1, s2)
		}
	}
}

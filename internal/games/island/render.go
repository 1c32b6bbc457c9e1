package island

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/island-of-structure/internal/core"
	"github.com/vovakirdan/island-of-structure/internal/games/island/problem"
	"github.com/vovakirdan/island-of-structure/internal/games/island/world"
)

// Layout constants, in cells.
const (
	mapTop     = 4
	mapX       = 6
	optionY    = 9
	optionW    = 9
	optionGap  = 4
	pileY      = 7
	pileW      = 9
	pileH      = 10
	pileGap    = 2
	fieldY     = 6
	cellW      = 2
	arenaBoxY  = 11
	arenaBoxW  = 14
	brickWidth = pileW - 2
)

func mapRowY(i int) int {
	return mapTop + i*2
}

func optionRect(i, width int) core.Rect {
	total := 3*optionW + 2*optionGap
	x := (width-total)/2 + i*(optionW+optionGap)
	return core.NewRect(x, optionY, optionW, 3)
}

func pileRect(i, n, width int) core.Rect {
	total := n*pileW + (n-1)*pileGap
	x := (width-total)/2 + i*(pileW+pileGap)
	return core.NewRect(x, pileY, pileW, pileH)
}

func fieldOrigin(cols, width int) core.Point {
	return core.Point{X: (width - cols*cellW) / 2, Y: fieldY}
}

func arenaBox(width int) core.Rect {
	return core.NewRect((width-arenaBoxW)/2, arenaBoxY, arenaBoxW, 3)
}

// locate maps a feedback spot to the screen cell the effect starts from.
func (g *Game) locate(s Spot) core.Point {
	w := g.screenW
	switch s.Target {
	case TargetWorld:
		return core.Point{X: mapX, Y: mapRowY(s.Index)}
	case TargetOption:
		x, y := optionRect(s.Index, w).Center()
		return core.Point{X: x, Y: y}
	case TargetPile:
		n := 1
		if b := g.prog.Grouping(); b != nil {
			n = b.Problem().GroupCount
		}
		r := pileRect(s.Index, n, w)
		x, _ := r.Center()
		return core.Point{X: x, Y: r.Y}
	case TargetCell:
		cols := 0
		if f := g.prog.Field(); f != nil {
			_, cols = f.Size()
		}
		o := fieldOrigin(cols, w)
		return core.Point{X: o.X + s.Col*cellW, Y: o.Y + s.Row}
	case TargetArenaInput:
		x, y := arenaBox(w).Center()
		return core.Point{X: x, Y: y}
	}
	return core.Point{X: w / 2, Y: g.screenH / 2}
}

// Render draws the current view.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.screenW, g.screenH = dst.Width(), dst.Height()

	if g.mode == ModeDrill {
		g.renderBar(dst, "Arena of Speed", "")
		g.renderArena(dst, g.drill, "[R] Play again")
		g.renderFooter(dst, "0-9 type answer   Backspace clear   R restart   Q quit")
		return
	}

	st := g.prog.State()
	w, _ := world.Lookup(st.World)

	switch st.View {
	case ViewMap:
		g.renderBar(dst, "Island of Structure", fmt.Sprintf("★ %d", st.Stars))
		g.renderMap(dst, st)
		g.renderFooter(dst, "↑/↓ choose world   Enter travel   Q quit")
	case ViewDialogue:
		g.renderBar(dst, w.Title, fmt.Sprintf("★ %d", st.Stars))
		g.renderDialogue(dst, w)
		g.renderFooter(dst, "Enter begin   Esc back to map")
	case ViewLevel:
		g.renderBar(dst, w.Title, progressLabel(st, g.cfg.Progression.CheckpointAt))
		g.renderLevel(dst, st)
		if st.Checkpoint {
			g.renderCheckpoint(dst, w)
		}
	}
}

func progressLabel(st State, checkpointAt int) string {
	if st.Infinite {
		return fmt.Sprintf("★ %d   Solved %d (endless)", st.Stars, st.Solved)
	}
	return fmt.Sprintf("★ %d   Solved %d/%d", st.Stars, st.Solved, checkpointAt)
}

func (g *Game) renderBar(dst *core.Screen, title, right string) {
	dst.DrawTextColor(1, 0, title, core.ColorBrightCyan)
	dst.DrawTextColor(dst.Width()-len([]rune(right))-1, 0, right, core.ColorBrightYellow)
	for x := range dst.Width() {
		dst.SetColor(x, 1, '─', core.ColorGray)
	}
}

func (g *Game) renderFooter(dst *core.Screen, help string) {
	dst.DrawTextColor(1, dst.Height()-1, help, core.ColorGray)
}

func (g *Game) renderMap(dst *core.Screen, st State) {
	for i, w := range world.All() {
		y := mapRowY(i)
		open := g.prog.IsUnlocked(w.ID)

		if i == g.cursor.world {
			dst.DrawTextColor(mapX-3, y, ">", core.ColorBrightYellow)
		}
		if open {
			dst.SetColor(mapX, y, '●', w.Color)
			dst.DrawTextColor(mapX+2, y, fmt.Sprintf("%d. %s", i+1, w.Title), w.Color)
		} else {
			dst.SetColor(mapX, y, '○', core.ColorGray)
			dst.DrawTextColor(mapX+2, y, fmt.Sprintf("%d. %s  (locked)", i+1, w.Title), core.ColorGray)
		}
		if i < world.Count()-1 {
			dst.SetColor(mapX, y+1, '│', core.ColorGray)
		}
	}

	if n := len(st.Unlocked); n == world.Count() {
		dst.DrawTextColor(mapX+30, mapTop, "Every world is open!", core.ColorBrightGreen)
	}
}

func (g *Game) renderDialogue(dst *core.Screen, w world.World) {
	box := core.NewRect(4, 3, dst.Width()-8, len(w.Dialogue)+6)
	dst.DrawBox(box, w.Color)
	dst.DrawTextColor(box.X+2, box.Y+1, w.Character.Name+" · "+w.Character.Role, w.Color)
	for i, line := range w.Dialogue {
		dst.DrawText(box.X+2, box.Y+3+i, line)
	}
	dst.DrawTextCentered(box.Bottom()+1, "Press Enter to begin", core.ColorBrightYellow)
}

func (g *Game) renderLevel(dst *core.Screen, st State) {
	switch d := st.Problem.(type) {
	case problem.Quiz:
		g.renderQuiz(dst, d)
		g.renderFooter(dst, "←/→ choose   Enter answer   1-3 pick   Esc map")
	case problem.Grouping:
		g.renderGrouping(dst, d)
		g.renderFooter(dst, "←/→ pile   Space add   Enter check   Backspace reset   Esc map")
	case problem.Array:
		g.renderField(dst)
		g.renderFooter(dst, "Arrows move   Space plant   Enter check   Esc map")
	case problem.Arcade:
		g.renderArena(dst, g.prog.Arena(), "[Enter] Return to map")
		g.renderFooter(dst, "0-9 type answer   Backspace clear   Esc map")
	}

	if g.prog.Pending() {
		dst.DrawTextCentered(dst.Height()-3, "✓ Correct!", core.ColorBrightGreen)
	}
}

func (g *Game) renderQuiz(dst *core.Screen, q problem.Quiz) {
	dst.DrawTextCentered(5, q.Question, core.ColorWhite)

	for i, o := range q.Options {
		r := optionRect(i, dst.Width())
		c := core.ColorWhite
		if i == g.cursor.option {
			c = core.ColorBrightYellow
		}
		dst.DrawBox(r, c)
		label := fmt.Sprintf("%d) %s", i+1, o)
		dst.DrawTextColor(r.X+(r.W-len([]rune(label)))/2, r.Y+1, label, c)
	}

	dst.DrawTextCentered(optionY+5, "Hint: "+q.Hint, core.ColorGray)
}

func (g *Game) renderGrouping(dst *core.Screen, d problem.Grouping) {
	b := g.prog.Grouping()
	if b == nil {
		return
	}
	dst.DrawTextCentered(4, d.Instruction, core.ColorWhite)

	piles := b.Piles()
	for i, n := range piles {
		r := pileRect(i, len(piles), dst.Width())
		c := core.ColorYellow
		if i == g.cursor.pile {
			c = core.ColorBrightYellow
		}
		dst.DrawBox(r, c)

		// Bricks stack from the bottom of the pile.
		for k := range n {
			x := r.X + 1 + k%brickWidth
			y := r.Bottom() - 2 - k/brickWidth
			if y <= r.Y {
				break
			}
			dst.DrawTextColor(x, y, d.ItemIcon, core.ColorOrange)
		}

		label := fmt.Sprint(n)
		dst.DrawTextColor(r.X+(r.W-len(label))/2, r.Bottom(), label, c)
		if i == g.cursor.pile {
			dst.SetColor(r.X+r.W/2, r.Bottom()+1, '▲', core.ColorBrightYellow)
		}
	}

	left := d.TargetTotal - b.Total()
	msg := fmt.Sprintf("Bricks left: %d", left)
	if left == 0 {
		msg = "All bricks placed. Press Enter to check."
	}
	dst.DrawTextCentered(pileY+pileH+3, msg, core.ColorGray)
}

func (g *Game) renderField(dst *core.Screen) {
	f := g.prog.Field()
	if f == nil {
		return
	}
	p := f.Problem()
	dst.DrawTextCentered(4, p.Instruction, core.ColorWhite)

	rows, cols := f.Size()
	o := fieldOrigin(cols, dst.Width())
	for r := range rows {
		for c := range cols {
			ch, color := '·', core.ColorGray
			if f.Planted(r, c) {
				ch, color = '█', core.ColorOrange
			}
			if r == g.cursor.row && c == g.cursor.col {
				color = core.ColorBrightYellow
				if ch == '·' {
					ch = '▒'
				}
			}
			dst.SetColor(o.X+c*cellW, o.Y+r, ch, color)
		}
	}

	dst.DrawTextCentered(fieldY+rows+1, fmt.Sprintf("Planted %d of %d", f.Count(), p.Target), core.ColorGray)
}

func (g *Game) renderArena(dst *core.Screen, a *Arena, finishHint string) {
	if a == nil {
		return
	}

	if a.Phase() == ArenaFinished {
		dst.DrawTextCentered(6, "ARENA CONQUERED", core.ColorBrightYellow)
		dst.DrawTextCentered(8, fmt.Sprintf("Final score: %d", a.Score()), core.ColorWhite)
		dst.DrawTextCentered(10, finishHint, core.ColorGray)
		return
	}

	timeColor := core.ColorWhite
	if a.Remaining() <= 10 {
		timeColor = core.ColorRed
	}
	dst.DrawTextColor(4, 3, fmt.Sprintf("Time %2ds", a.Remaining()), timeColor)
	dst.DrawTextColor(16, 3, fmt.Sprintf("Score %d", a.Score()), core.ColorBrightYellow)
	dst.DrawTextColor(32, 3, fmt.Sprintf("Combo x%d", a.Combo()), core.ColorMagenta)
	dst.DrawTextColor(4, 4, strings.Repeat("▮", min(a.Combo(), dst.Width()-8)), core.ColorMagenta)

	r := a.Round()
	dst.DrawTextCentered(8, fmt.Sprintf("%d × %d = ?", r.Table, r.Multiplier), core.ColorBrightCyan)

	box := arenaBox(dst.Width())
	dst.DrawBox(box, core.ColorWhite)
	entry := a.Entry()
	dst.DrawTextColor(box.X+(box.W-len(entry))/2, box.Y+1, entry, core.ColorBrightYellow)
}

func (g *Game) renderCheckpoint(dst *core.Screen, w world.World) {
	box := core.NewRect((dst.Width()-48)/2, (dst.Height()-9)/2, 48, 9)
	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, core.ColorBrightYellow)

	dst.DrawTextCentered(box.Y+2, "Checkpoint reached!", core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, fmt.Sprintf("%d challenges solved in %s.", g.prog.State().Solved, w.Title), core.ColorWhite)

	var labels []string
	for i, c := range g.checkpointChoices() {
		label := "Keep practicing"
		if c == UnlockNext {
			label = "Unlock next world"
		}
		if i == g.cursor.choice {
			label = "> " + label + " <"
		} else {
			label = "  " + label + "  "
		}
		labels = append(labels, label)
	}
	dst.DrawTextCentered(box.Y+6, strings.Join(labels, "   "), core.ColorBrightGreen)
}

package tui

import "github.com/vovakirdan/island-of-structure/internal/core"

const (
	burstLife  = 12 // Ticks a celebration burst stays on screen
	shakeTicks = 8
)

var (
	burstGlyphs = []rune{'✦', '*', '+', '·'}
	burstRays   = []core.Point{
		{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1},
		{X: 1, Y: 1}, {X: -1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: -1},
	}
)

type burst struct {
	at    core.Point
	color core.Color
	age   int
}

// Effects plays the visual feedback games ask for: celebration bursts that
// spread and fade, and a short horizontal shake. Nothing flows back to the
// game.
type Effects struct {
	bursts []burst
	shake  int
}

// NewEffects creates an idle effect layer.
func NewEffects() *Effects {
	return &Effects{}
}

// Apply starts the effect for ev. Events without a visual are ignored.
func (e *Effects) Apply(ev core.Event) {
	switch ev.Kind {
	case core.EventCelebrate:
		e.bursts = append(e.bursts, burst{at: core.Point{X: ev.X, Y: ev.Y}, color: ev.Color})
	case core.EventShake:
		e.shake = shakeTicks
	}
}

// Step ages every effect by one tick.
func (e *Effects) Step() {
	live := e.bursts[:0]
	for _, b := range e.bursts {
		b.age++
		if b.age < burstLife {
			live = append(live, b)
		}
	}
	e.bursts = live

	if e.shake > 0 {
		e.shake--
	}
}

// Active reports whether anything is still playing.
func (e *Effects) Active() bool {
	return len(e.bursts) > 0 || e.shake > 0
}

// Offset is the shake displacement in columns for this frame.
func (e *Effects) Offset() int {
	if e.shake > 0 && e.shake%2 == 0 {
		return 2
	}
	return 0
}

// Draw paints the bursts over the game's frame. Cells are twice as tall as
// they are wide, so rays travel two columns per row.
func (e *Effects) Draw(s *core.Screen) {
	bounds := core.NewRect(0, 0, s.Width(), s.Height())
	for _, b := range e.bursts {
		radius := 1 + b.age/3
		glyph := burstGlyphs[b.age*len(burstGlyphs)/burstLife]
		for _, d := range burstRays {
			x, y := b.at.X+d.X*radius*2, b.at.Y+d.Y*radius
			if bounds.Contains(x, y) {
				s.SetColor(x, y, glyph, b.color)
			}
		}
	}
}

package island

import "github.com/vovakirdan/island-of-structure/internal/games/island/problem"

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick       uint64
	Mode       string
	View       string
	World      string
	Solved     int
	Stars      int
	Unlocked   int
	ProblemID  problem.ID
	Problem    problem.Descriptor
	Checkpoint bool
	Infinite   bool
	Pending    bool

	ArenaPhase     string
	ArenaScore     int
	ArenaRemaining int
	ArenaProduct   int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick: g.tick,
		Mode: string(g.mode),
	}

	if g.prog != nil {
		st := g.prog.State()
		s.View = st.View.String()
		s.World = string(st.World)
		s.Solved = st.Solved
		s.Stars = st.Stars
		s.Unlocked = len(st.Unlocked)
		s.Problem = st.Problem
		if st.Problem != nil {
			s.ProblemID = st.Problem.ID()
		}
		s.Checkpoint = st.Checkpoint
		s.Infinite = st.Infinite
		s.Pending = g.prog.Pending()
	}

	if a := g.activeArena(); a != nil {
		s.ArenaPhase = a.Phase().String()
		s.ArenaScore = a.Score()
		s.ArenaRemaining = a.Remaining()
		s.ArenaProduct = a.Round().Product
	}
	return s
}

package core

// RuntimeConfig is passed to games when they start.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState is the status a game reports to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
}

// EventKind discriminates StepResult events.
type EventKind int

const (
	// EventCelebrate asks the platform for a burst effect at (X, Y).
	EventCelebrate EventKind = iota
	// EventShake asks the platform to shake the screen.
	EventShake
	// EventScore asks the platform to record Score on the Board leaderboard.
	EventScore
)

// Event is a fire-and-forget notification from a game to the platform.
type Event struct {
	Kind  EventKind
	X, Y  int
	Color Color
	Board string
	Score int
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Package problem generates the arithmetic challenges posed in each world.
//
// A generated problem is a Descriptor: a closed sum type over Quiz, Grouping,
// Array and Arcade. Callers switch on the concrete type to get an exhaustively
// typed payload for the matching board.
package problem

// ID uniquely identifies a generated problem. IDs are never reused by a
// Generator, so they can gate stale completion events.
type ID uint64

// Kind discriminates descriptor variants.
type Kind int

const (
	KindQuiz Kind = iota
	KindGrouping
	KindArray
	KindArcade
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindQuiz:
		return "quiz"
	case KindGrouping:
		return "grouping"
	case KindArray:
		return "array"
	case KindArcade:
		return "arcade"
	default:
		return "unknown"
	}
}

// Descriptor is implemented only by the variant types in this package.
type Descriptor interface {
	ID() ID
	Kind() Kind
	sealed()
}

// Meta carries the fields common to every variant.
type Meta struct {
	ProblemID ID
}

// ID returns the problem identifier.
func (m Meta) ID() ID { return m.ProblemID }

func (Meta) sealed() {}

// Quiz is a multiple-choice question with exactly three options.
type Quiz struct {
	Meta
	Question string
	Options  [3]string
	Answer   string
	Hint     string
}

// Kind implements Descriptor.
func (Quiz) Kind() Kind { return KindQuiz }

// Correct reports whether value is the answer.
func (q Quiz) Correct(value string) bool {
	return value == q.Answer
}

// Grouping asks the player to split TargetTotal items into GroupCount equal piles.
type Grouping struct {
	Meta
	TargetTotal int
	GroupCount  int
	ItemIcon    string
	Instruction string
}

// Kind implements Descriptor.
func (Grouping) Kind() Kind { return KindGrouping }

// PerGroup is the size every pile must reach. Never shown to the player.
func (g Grouping) PerGroup() int {
	return g.TargetTotal / g.GroupCount
}

// Array asks the player to plant a Rows x Cols rectangle.
type Array struct {
	Meta
	Rows        int
	Cols        int
	Target      int
	Instruction string
}

// Kind implements Descriptor.
func (Array) Kind() Kind { return KindArray }

// Arcade signals entry into the timed drill; it has no payload.
type Arcade struct {
	Meta
}

// Kind implements Descriptor.
func (Arcade) Kind() Kind { return KindArcade }

package island

import "github.com/vovakirdan/island-of-structure/internal/games/island/problem"

// GroupingBoard holds the piles the player builds for a grouping problem.
type GroupingBoard struct {
	problem problem.Grouping
	piles   []int
}

// NewGroupingBoard creates empty piles for p.
func NewGroupingBoard(p problem.Grouping) *GroupingBoard {
	return &GroupingBoard{
		problem: p,
		piles:   make([]int, p.GroupCount),
	}
}

// Problem returns the descriptor this board was built for.
func (b *GroupingBoard) Problem() problem.Grouping {
	return b.problem
}

// Piles returns a copy of the current pile sizes.
func (b *GroupingBoard) Piles() []int {
	out := make([]int, len(b.piles))
	copy(out, b.piles)
	return out
}

// Total returns the number of items placed so far.
func (b *GroupingBoard) Total() int {
	total := 0
	for _, n := range b.piles {
		total += n
	}
	return total
}

// Full reports whether every item has been placed, which is when a check
// becomes meaningful.
func (b *GroupingBoard) Full() bool {
	return b.Total() == b.problem.TargetTotal
}

// Add puts one item on pile i. It fails once all items are placed or when i
// is not a pile.
func (b *GroupingBoard) Add(i int) bool {
	if i < 0 || i >= len(b.piles) {
		return false
	}
	if b.Total() >= b.problem.TargetTotal {
		return false
	}
	b.piles[i]++
	return true
}

// Reset empties every pile.
func (b *GroupingBoard) Reset() {
	for i := range b.piles {
		b.piles[i] = 0
	}
}

// Balanced reports whether every pile holds exactly total/groups items.
// Uneven splits fail even when the total is right.
func (b *GroupingBoard) Balanced() bool {
	want := b.problem.PerGroup()
	for _, n := range b.piles {
		if n != want {
			return false
		}
	}
	return true
}

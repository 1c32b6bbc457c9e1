package island

import (
	"github.com/vovakirdan/island-of-structure/internal/core"
	"github.com/vovakirdan/island-of-structure/internal/games/island/problem"
)

// Field is the plantable grid for an array problem. It is one cell larger
// than the target in each direction, and never smaller than minSize.
type Field struct {
	problem problem.Array
	rows    int
	cols    int
	active  map[core.Point]bool
}

// NewField creates an empty field for p.
func NewField(p problem.Array, minSize int) *Field {
	return &Field{
		problem: p,
		rows:    max(p.Rows+1, minSize),
		cols:    max(p.Cols+1, minSize),
		active:  make(map[core.Point]bool),
	}
}

// Problem returns the descriptor this field was built for.
func (f *Field) Problem() problem.Array {
	return f.problem
}

// Size returns the grid dimensions.
func (f *Field) Size() (rows, cols int) {
	return f.rows, f.cols
}

// Planted reports whether the cell at (row, col) is active.
func (f *Field) Planted(row, col int) bool {
	return f.active[core.Point{X: col, Y: row}]
}

// Count returns the number of planted cells.
func (f *Field) Count() int {
	return len(f.active)
}

// Toggle flips the cell at (row, col). It returns whether the cell is now
// planted; cells outside the grid are ignored.
func (f *Field) Toggle(row, col int) (planted, ok bool) {
	if row < 0 || row >= f.rows || col < 0 || col >= f.cols {
		return false, false
	}
	p := core.Point{X: col, Y: row}
	if f.active[p] {
		delete(f.active, p)
		return false, true
	}
	f.active[p] = true
	return true, true
}

// Bounds returns the smallest rectangle covering every planted cell, with X
// as the column and Y as the row. It is false when nothing is planted.
func (f *Field) Bounds() (core.Rect, bool) {
	points := make([]core.Point, 0, len(f.active))
	for p := range f.active {
		points = append(points, p)
	}
	return core.Bounds(points)
}

// Rectangular reports whether the planted cells form a solid rows x cols
// rectangle, in either orientation.
func (f *Field) Rectangular() bool {
	if len(f.active) != f.problem.Target {
		return false
	}
	bounds, ok := f.Bounds()
	if !ok {
		return false
	}

	rows, cols := f.problem.Rows, f.problem.Cols
	dims := (bounds.H == rows && bounds.W == cols) || (bounds.H == cols && bounds.W == rows)
	return dims && bounds.Area() == len(f.active)
}

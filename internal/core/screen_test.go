package core

import "testing"

func TestNewScreenBlank(t *testing.T) {
	s := NewScreen(20, 5)
	if s.Width() != 20 || s.Height() != 5 {
		t.Fatalf("size = %dx%d, expected 20x5", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("expected blank at (%d, %d), got %q", x, y, s.Get(x, y))
			}
		}
	}
}

func TestScreenSetColorAndClip(t *testing.T) {
	s := NewScreen(10, 3)
	s.SetColor(2, 1, 'X', ColorGreen)

	cell := s.GetCell(2, 1)
	if cell.Rune != 'X' || cell.Color != ColorGreen {
		t.Errorf("GetCell = %+v, expected green X", cell)
	}

	s.Set(-1, 0, 'A')
	s.Set(10, 0, 'A')
	if s.GetCell(50, 50).Rune != ' ' {
		t.Error("out of bounds GetCell should be blank")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextCentered(1, "Hi", ColorDefault)

	x := (20 - 2) / 2
	if s.Get(x, 1) != 'H' || s.Get(x+1, 1) != 'i' {
		t.Errorf("row = %q, text not centered", s.Row(1))
	}
}

func TestScreenDrawTextRunes(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawText(0, 0, "★a")
	if s.Get(0, 0) != '★' || s.Get(1, 0) != 'a' {
		t.Errorf("row = %q, multi-byte runes should occupy one cell", s.Row(0))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorCyan)

	corners := map[Point]rune{{1, 1}: '┌', {5, 1}: '┐', {1, 4}: '└', {5, 4}: '┘'}
	for p, r := range corners {
		if got := s.Get(p.X, p.Y); got != r {
			t.Errorf("corner at %v = %q, expected %q", p, got, r)
		}
	}
	if s.GetCell(3, 1).Color != ColorCyan {
		t.Error("box edges should carry the box color")
	}
}

func TestScreenResizeClears(t *testing.T) {
	s := NewScreen(5, 2)
	s.DrawText(0, 0, "Hello")
	s.Resize(8, 3)
	if s.Width() != 8 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 8x3", s.Width(), s.Height())
	}
	if s.Row(0) != "        " {
		t.Errorf("row 0 = %q, expected blank after resize", s.Row(0))
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "def")
	if s.String() != "abc\ndef" {
		t.Errorf("String() = %q", s.String())
	}
}

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)
	f.SetDigit('7')
	f.SetDigit('x')
	f.Set(ActionConfirm)

	if len(f.Presses) != 3 {
		t.Fatalf("expected 3 presses, got %d", len(f.Presses))
	}
	if f.Presses[1].Action != ActionDigit || f.Presses[1].Digit != '7' {
		t.Errorf("press 1 = %+v, expected digit 7", f.Presses[1])
	}
	if !f.Has(ActionConfirm) || f.Has(ActionBack) {
		t.Error("Has() mismatch")
	}

	f.Clear()
	if len(f.Presses) != 0 || f.Has(ActionRight) {
		t.Error("Clear() should drop all presses")
	}
}

package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetColored(1, 1, '●', ColorRed)

	cell := s.GetCell(1, 1)
	if cell.Rune != '●' || cell.Color != ColorRed {
		t.Errorf("GetCell(1, 1) = %+v, expected red '●'", cell)
	}

	s.Clear()
	if c := s.GetCell(1, 1); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("After Clear, expected blank cell, got %+v", c)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	for i, ch := range "Hello" {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	s.DrawText(18, 0, "Hello") // Only "He" should fit
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextColoredMultibyte(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextColored(0, 0, "●○●", ColorYellow)

	if s.Get(1, 0) != '○' || s.Get(2, 0) != '●' {
		t.Errorf("Multibyte runes should occupy one cell each, row = %q", s.Row(0))
	}
	if s.GetCell(2, 0).Color != ColorYellow {
		t.Error("DrawTextColored should apply color")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(Rect{X: 2, Y: 2, W: 3, H: 3}, '#')

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if s.Get(x, y) != '#' {
				t.Errorf("FillRect: expected '#' at (%d, %d), got %q", x, y, s.Get(x, y))
			}
		}
	}
	if s.Get(1, 1) != ' ' || s.Get(5, 5) != ' ' {
		t.Error("FillRect should not affect outside area")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(Rect{X: 1, Y: 1, W: 5, H: 4})

	corners := []struct {
		x, y int
		want rune
	}{
		{1, 1, '┌'}, {5, 1, '┐'}, {1, 4, '└'}, {5, 4, '┘'},
	}
	for _, c := range corners {
		if got := s.Get(c.x, c.y); got != c.want {
			t.Errorf("corner (%d, %d) = %q, expected %q", c.x, c.y, got, c.want)
		}
	}

	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("Horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' || s.Get(5, y) != '│' {
			t.Errorf("Vertical edge missing at y=%d", y)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	expected := "AAAAA\nBBBBB\nCCCCC"
	if result := s.String(); result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if strings.TrimSpace(s.String()) != "" {
		t.Error("Resize should leave a blank screen")
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test")

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) should start with 'Test', got %q", row)
	}
	if len(row) != 10 {
		t.Errorf("Row length should be 10, got %d", len(row))
	}

	if outOfBounds := s.Row(-1); outOfBounds != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", outOfBounds)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, want int
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0, 0, 0, 0},
	}
	for _, tt := range tests {
		if got := Clamp(tt.val, tt.min, tt.max); got != tt.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.val, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestInputFrame(t *testing.T) {
	f := Frame(ActionLeft, ActionDrop)
	if !f.Has(ActionLeft) || !f.Has(ActionDrop) {
		t.Error("Frame should set the given actions")
	}
	if f.Has(ActionRight) {
		t.Error("Frame should not set other actions")
	}

	f.Clear()
	if f.Has(ActionLeft) {
		t.Error("Clear should reset actions")
	}

	var zero InputFrame
	if zero.Has(ActionDrop) {
		t.Error("Zero frame should have no actions")
	}
	zero.Set(ActionPause)
	if !zero.Has(ActionPause) {
		t.Error("Set on zero frame should allocate")
	}
	if ActionDrop.String() != "Drop" {
		t.Errorf("ActionDrop.String() = %q", ActionDrop.String())
	}
}

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

	// Check that it's initialized with spaces
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
	s.Set(-1, 0, 'A')  // Should not panic
	s.Set(100, 0, 'A') // Should not panic
	s.Set(0, -1, 'A')  // Should not panic
	s.Set(0, 100, 'A') // Should not panic

	// Out of bounds get should return space
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(3, 3, '@', ColorBrightRed)
	cell := s.GetCell(3, 3)
	if cell.Rune != '@' {
		t.Errorf("GetCell rune = %q, expected '@'", cell.Rune)
	}
	if cell.Color != ColorBrightRed {
		t.Errorf("GetCell color = %v, expected bright red", cell.Color)
	}

	// Plain Set resets the color
	s.Set(3, 3, '#')
	if s.GetCell(3, 3).Color != ColorDefault {
		t.Error("Set should reset the cell color to default")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetColored(x, y, 'X', ColorGreen)
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Errorf("After Clear, expected blank default cell at (%d, %d), got %+v", x, y, cell)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	expected := "Hello"
	for i, ch := range expected {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello") // Only "He" should fit
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)
	s.DrawTextCentered(1, "abc")

	if s.Get(4, 1) != 'a' || s.Get(5, 1) != 'b' || s.Get(6, 1) != 'c' {
		t.Errorf("Centered text misplaced: row %q", s.Row(1))
	}
}

func TestScreenDrawBoxAndLines(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawBox(1, 1, 6, 4)

	if s.Get(1, 1) == ' ' || s.Get(6, 1) == ' ' || s.Get(1, 4) == ' ' || s.Get(6, 4) == ' ' {
		t.Error("Box corners not drawn")
	}
	if s.Get(3, 1) == ' ' || s.Get(3, 4) == ' ' {
		t.Error("Box horizontal edges not drawn")
	}
	if s.Get(1, 2) == ' ' || s.Get(6, 3) == ' ' {
		t.Error("Box vertical edges not drawn")
	}

	s.Clear()
	s.DrawHLine(0, 0, 5, '-')
	for x := 0; x < 5; x++ {
		if s.Get(x, 0) != '-' {
			t.Errorf("DrawHLine missing at x=%d", x)
		}
	}
	s.DrawVLine(0, 0, 4, '|')
	for y := 1; y < 4; y++ {
		if s.Get(0, y) != '|' {
			t.Errorf("DrawVLine missing at y=%d", y)
		}
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(5, 5, 'X')

	s.Resize(20, 15)
	if s.Width() != 20 || s.Height() != 15 {
		t.Errorf("Resize() got %dx%d, want 20x15", s.Width(), s.Height())
	}
	if s.Get(5, 5) != 'X' {
		t.Error("Resize should preserve existing content")
	}

	// Drawing at the new extents must not panic
	s.Set(19, 14, 'Y')
	if s.Get(19, 14) != 'Y' {
		t.Error("Cannot draw at new extents after resize")
	}

	// Shrinking clips content
	s.Resize(4, 4)
	if s.Get(5, 5) != ' ' {
		t.Error("Out-of-bounds read after shrink should return space")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "ab")
	s.DrawText(0, 1, "cd")

	out := s.String()
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("String() produced %d lines, want 2", len(lines))
	}
	if !strings.HasPrefix(lines[0], "ab") || !strings.HasPrefix(lines[1], "cd") {
		t.Errorf("String() content wrong: %q", out)
	}
}

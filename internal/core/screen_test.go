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

func TestScreenSetCellColor(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(3, 4, '#', ColorGreen)
	cell := s.GetCell(3, 4)
	if cell.Rune != '#' || cell.Color != ColorGreen {
		t.Errorf("GetCell(3, 4) = %+v, expected {'#', ColorGreen}", cell)
	}

	if got := s.GetCell(-1, -1); got.Rune != ' ' || got.Color != ColorDefault {
		t.Errorf("out of bounds GetCell = %+v, expected default space", got)
	}

	s.Clear()
	if got := s.GetCell(3, 4); got.Color != ColorDefault {
		t.Error("Clear should reset cell colors")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColored(2, 1, "SCORE", ColorYellow)

	if !strings.Contains(s.Row(1), "SCORE") {
		t.Errorf("Row(1) = %q, expected to contain SCORE", s.Row(1))
	}
	if s.GetCell(2, 1).Color != ColorYellow {
		t.Error("DrawTextColored should set the color")
	}

	// Clipping: text extending past the right edge should not panic
	s.DrawText(18, 0, "LONG TEXT")
	if s.Get(19, 0) != 'O' {
		t.Errorf("expected clipped text to keep in-bounds cells, got %q", s.Get(19, 0))
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(2, 2, 'X')

	s.Resize(20, 20)
	if s.Get(2, 2) != 'X' {
		t.Error("Resize should preserve existing content")
	}
	if s.Width() != 20 || s.Height() != 20 {
		t.Errorf("Resize dimensions = %dx%d, expected 20x20", s.Width(), s.Height())
	}

	s.Resize(5, 5)
	if s.Get(2, 2) != 'X' {
		t.Error("Shrinking resize should keep content inside the new bounds")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'A')
	s.Set(2, 1, 'B')

	expected := "A  \n  B"
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}

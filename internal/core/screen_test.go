package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, want 12x4", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Errorf("cell (%d, %d) = %+v, want blank", x, y, c)
			}
		}
	}
}

func TestScreenSetCellBounds(t *testing.T) {
	s := NewScreen(6, 3)
	tile := Cell{Rune: '4', Fg: ColorText, Bg: TileColor(4)}

	s.SetCell(2, 1, tile)
	if got := s.GetCell(2, 1); got != tile {
		t.Errorf("GetCell(2, 1) = %+v, want %+v", got, tile)
	}

	for _, p := range [][2]int{{-1, 0}, {6, 0}, {0, -1}, {0, 3}} {
		s.SetCell(p[0], p[1], tile)
		if got := s.GetCell(p[0], p[1]); got != blankCell {
			t.Errorf("out of bounds GetCell(%d, %d) = %+v, want blank", p[0], p[1], got)
		}
	}
	if s.Get(99, 99) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenClearResetsColors(t *testing.T) {
	s := NewScreen(4, 2)
	s.FillRect(NewRect(0, 0, 4, 2), 'x', ColorGrid, ColorEmpty)

	s.Clear()

	if got := s.String(); got != "    \n    " {
		t.Errorf("String() after Clear = %q", got)
	}
	if c := s.GetCell(3, 1); c.Fg != ColorDefault || c.Bg != ColorDefault {
		t.Errorf("Clear left colors behind: %+v", c)
	}
}

func TestScreenDrawStyledText(t *testing.T) {
	s := NewScreen(8, 2)
	s.DrawStyledText(5, 1, "2048", ColorText, TileColor(2048))

	if got := s.Row(1); got != "     204" {
		t.Errorf("Row(1) = %q, want clipped text", got)
	}
	c := s.GetCell(6, 1)
	if c.Rune != '0' || c.Fg != ColorText || c.Bg != TileColor(2048) {
		t.Errorf("GetCell(6, 1) = %+v", c)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	tests := []struct {
		width int
		text  string
		wantX int
	}{
		{20, "2048", 8},
		{21, "2048", 8},
		{4, "2048", 0},
		{10, "Window too small", -3},
	}

	for _, tc := range tests {
		t.Run(tc.text, func(t *testing.T) {
			s := NewScreen(tc.width, 1)
			s.DrawTextCentered(0, tc.text, ColorHint)

			first := []rune(tc.text)[max(-tc.wantX, 0)]
			x := max(tc.wantX, 0)
			c := s.GetCell(x, 0)
			if c.Rune != first || c.Fg != ColorHint {
				t.Errorf("cell %d = %+v, want %q in hint color", x, c, first)
			}
		})
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(NewRect(2, 2, 3, 3), ' ', ColorText, TileColor(4))

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			inside := x >= 2 && x < 5 && y >= 2 && y < 5
			c := s.GetCell(x, y)
			if inside && c.Bg != TileColor(4) {
				t.Errorf("(%d, %d) should be filled, got %+v", x, y, c)
			}
			if !inside && c != blankCell {
				t.Errorf("(%d, %d) outside the rect changed: %+v", x, y, c)
			}
		}
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawStyledText(0, 0, "Hello", ColorText, ColorEmpty)
	s.DrawText(0, 5, "World")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, want 8x4", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("row 0 = %q", s.Row(0))
	}
	if c := s.GetCell(0, 0); c.Bg != ColorEmpty {
		t.Errorf("resize dropped colors: %+v", c)
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("row 0 after enlarging = %q", s.Row(0))
	}
	if strings.TrimSpace(s.Row(5)) != "" {
		t.Errorf("row 5 should have been cut by the shrink, got %q", s.Row(5))
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(3, 1)
	if got := s.Row(-1); got != "   " {
		t.Errorf("Row(-1) = %q, want blanks", got)
	}
}

func TestScreenNegativeSize(t *testing.T) {
	s := NewScreen(-3, -1)
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("negative size should clamp to 0x0, got %dx%d", s.Width(), s.Height())
	}
	if s.String() != "" {
		t.Errorf("empty screen should render as empty string")
	}

	s.Resize(-5, 2)
	if s.Width() != 0 || s.Height() != 2 {
		t.Errorf("Resize(-5, 2) gave %dx%d", s.Width(), s.Height())
	}
}

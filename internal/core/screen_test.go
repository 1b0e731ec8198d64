package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(20, 6)

	if s.Width() != 20 || s.Height() != 6 {
		t.Fatalf("size = %dx%d, expected 20x6", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("new screen cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetCellBounds(t *testing.T) {
	s := NewScreen(4, 4)

	s.SetColored(1, 2, '@', ColorCyan)
	if c := s.GetCell(1, 2); c.Rune != '@' || c.Color != ColorCyan {
		t.Errorf("GetCell(1, 2) = %+v, expected cyan '@'", c)
	}

	// Out of bounds writes are dropped, reads return a blank.
	s.Set(-1, 0, 'X')
	s.Set(4, 0, 'X')
	s.Set(0, 9, 'X')
	if s.Get(-1, 0) != ' ' || s.Get(4, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenDrawColoredText(t *testing.T) {
	s := NewScreen(12, 3)
	n := s.DrawColoredText(1, 1, "PIKA", ColorYellow)

	if n != 4 {
		t.Errorf("columns used = %d, expected 4", n)
	}
	for i, ch := range "PIKA" {
		c := s.GetCell(1+i, 1)
		if c.Rune != ch || c.Color != ColorYellow {
			t.Errorf("cell %d = %+v, expected yellow %q", i, c, ch)
		}
	}

	// Clipped at the right edge.
	s.DrawText(10, 0, "abc")
	if s.Get(10, 0) != 'a' || s.Get(11, 0) != 'b' {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenWideRunes(t *testing.T) {
	s := NewScreen(10, 1)
	n := s.DrawText(0, 0, "피카A")

	if n != 5 {
		t.Fatalf("columns used = %d, expected 5", n)
	}
	if s.Get(0, 0) != '피' || s.Get(1, 0) != 0 {
		t.Errorf("wide rune should be followed by a continuation cell, got %q %q", s.Get(0, 0), s.Get(1, 0))
	}
	if s.Get(4, 0) != 'A' {
		t.Errorf("narrow rune after two wide runes should land at column 4, got %q", s.Get(4, 0))
	}
	if row := s.Row(0); row != "피카A     " {
		t.Errorf("Row(0) = %q, continuation cells should be skipped", row)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawColoredTextCentered(1, "GO", ColorGreen)

	x := (20 - 2) / 2
	if s.Get(x, 1) != 'G' || s.Get(x+1, 1) != 'O' {
		t.Errorf("centered text not at column %d: %q", x, s.Row(1))
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(8, 8)
	s.DrawColoredRect(NewRect(2, 2, 3, 2), '#', ColorRed)

	for y := 2; y < 4; y++ {
		for x := 2; x < 5; x++ {
			if c := s.GetCell(x, y); c.Rune != '#' || c.Color != ColorRed {
				t.Errorf("cell (%d, %d) = %+v, expected red '#'", x, y, c)
			}
		}
	}
	if s.Get(1, 1) != ' ' || s.Get(5, 4) != ' ' {
		t.Error("DrawRect should not touch cells outside the rect")
	}
}

func TestScreenFrames(t *testing.T) {
	tests := []struct {
		name   string
		draw   func(s *Screen, r Rect)
		corner [4]rune
	}{
		{"square", func(s *Screen, r Rect) { s.DrawBox(r) }, [4]rune{'┌', '┐', '└', '┘'}},
		{"rounded", func(s *Screen, r Rect) { s.DrawRoundedBox(r, ColorGray) }, [4]rune{'╭', '╮', '╰', '╯'}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(10, 10)
			r := NewRect(1, 1, 5, 4)
			tc.draw(s, r)

			got := [4]rune{s.Get(1, 1), s.Get(5, 1), s.Get(1, 4), s.Get(5, 4)}
			if got != tc.corner {
				t.Errorf("corners = %q, expected %q", got, tc.corner)
			}
			for x := 2; x < 5; x++ {
				if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
					t.Errorf("horizontal edge missing at x=%d", x)
				}
			}
			for y := 2; y < 4; y++ {
				if s.Get(1, y) != '│' || s.Get(5, y) != '│' {
					t.Errorf("vertical edge missing at y=%d", y)
				}
			}
		})
	}
}

func TestScreenLines(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawHLine(2, 2, 5, '-')
	s.DrawVLine(8, 1, 4, '|')

	for x := 2; x < 7; x++ {
		if s.Get(x, 2) != '-' {
			t.Errorf("DrawHLine: expected '-' at (%d, 2), got %q", x, s.Get(x, 2))
		}
	}
	for y := 1; y < 5; y++ {
		if s.Get(8, y) != '|' {
			t.Errorf("DrawVLine: expected '|' at (8, %d), got %q", y, s.Get(8, y))
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "de")

	if got := s.String(); got != "abc\nde " {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenResizeKeepsContent(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawColoredText(0, 0, "Hello", ColorBlue)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("after resize: %dx%d, expected 8x4", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should survive shrinking, row 0 = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") || s.GetCell(0, 0).Color != ColorBlue {
		t.Errorf("content and colour should survive growing, row 0 = %q", s.Row(0))
	}
	if s.Row(-1) != strings.Repeat(" ", 15) {
		t.Error("out of bounds row should be spaces")
	}
}

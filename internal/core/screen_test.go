package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 12x4", s.Width(), s.Height())
	}
	want := strings.Repeat(" ", 12)
	for y := range 4 {
		if s.Row(y) != want {
			t.Errorf("Row(%d) = %q, expected blank", y, s.Row(y))
		}
	}
}

func TestScreenOffScreenAccess(t *testing.T) {
	s := NewScreen(3, 3)

	points := [][2]int{{-1, 0}, {3, 0}, {0, -1}, {0, 3}, {10, 10}}
	for _, p := range points {
		s.SetColored(p[0], p[1], 'X', ColorRed)
		if cell := s.GetCell(p[0], p[1]); cell != blank {
			t.Errorf("GetCell(%d, %d) = %+v, expected blank", p[0], p[1], cell)
		}
	}
	if s.String() != "   \n   \n   " {
		t.Errorf("off-screen writes leaked into the buffer: %q", s.String())
	}
}

func TestScreenDrawTextClips(t *testing.T) {
	s := NewScreen(8, 2)
	s.DrawText(5, 0, "distance")
	s.DrawText(-2, 1, "best")

	if got := s.Row(0); got != "     dis" {
		t.Errorf("Row(0) = %q", got)
	}
	if got := s.Row(1); got != "st      " {
		t.Errorf("Row(1) = %q", got)
	}
}

func TestScreenFillRect(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h int
		want       string
	}{
		{"inside", 1, 1, 2, 2, "    \n ## \n ## \n    "},
		{"clipped top left", -1, -1, 2, 2, "#   \n    \n    \n    "},
		{"clipped bottom right", 3, 2, 5, 5, "    \n    \n   #\n   #"},
		{"empty", 1, 1, 0, 3, "    \n    \n    \n    "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(4, 4)
			s.FillRect(tc.x, tc.y, tc.w, tc.h, '#', ColorGreen)
			if s.String() != tc.want {
				t.Errorf("String() = %q, expected %q", s.String(), tc.want)
			}
		})
	}
}

func TestScreenFillRectColor(t *testing.T) {
	s := NewScreen(4, 4)
	s.FillRect(0, 0, 1, 1, '▒', ColorMagenta)

	if cell := s.GetCell(0, 0); cell.Rune != '▒' || cell.Color != ColorMagenta {
		t.Errorf("GetCell(0, 0) = %+v", cell)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(3, 2)
	s.FillRect(0, 0, 3, 2, '#', ColorRed)
	s.Clear()

	if s.String() != "   \n   " {
		t.Errorf("after Clear: %q", s.String())
	}
	if s.GetCell(1, 1).Color != ColorDefault {
		t.Error("Clear should reset colors")
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(6, 3)
	s.DrawText(0, 0, "abcdef")
	s.DrawText(0, 2, "ghijkl")

	s.Resize(4, 2)
	if s.String() != "abcd\n    " {
		t.Errorf("after shrink: %q", s.String())
	}

	s.Resize(5, 3)
	if s.String() != "abcd \n     \n     " {
		t.Errorf("after grow: %q", s.String())
	}

	s.Resize(-1, 2)
	if s.Width() != 0 || s.String() != "\n" {
		t.Errorf("negative width should clamp to zero, got %dx%d", s.Width(), s.Height())
	}
}

func TestColorANSI(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{ColorDefault, ""},
		{ColorRed, "1"},
		{ColorBrown, "94"},
		{ColorGray, "245"},
	}
	for _, tc := range tests {
		if got := tc.c.ANSI(); got != tc.want {
			t.Errorf("Color(%d).ANSI() = %q, expected %q", tc.c, got, tc.want)
		}
	}
}

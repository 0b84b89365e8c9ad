package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestScrollBarHiddenWhenEverythingFits(t *testing.T) {
	if got := renderTableScrollBar(80, 0, 50, 30); got != "" {
		t.Errorf("scrollbar = %q, want empty when rows fit", got)
	}
	if got := renderTableScrollBar(80, 0, 50, 50); got != "" {
		t.Errorf("scrollbar = %q, want empty at exact fit", got)
	}
}

func TestScrollBarWidth(t *testing.T) {
	for _, offset := range []int{0, 25, 50} {
		bar := renderTableScrollBar(60, offset, 20, 70)
		if bar == "" {
			t.Fatalf("offset %d: empty scrollbar for scrollable table", offset)
		}
		if w := lipgloss.Width(bar); w != 60 {
			t.Errorf("offset %d: width = %d, want 60", offset, w)
		}
	}
}

func TestScrollBarThumbMoves(t *testing.T) {
	top := renderTableScrollBar(60, 0, 20, 100)
	bottom := renderTableScrollBar(60, 80, 20, 100)
	if top == bottom {
		t.Error("thumb did not move between top and bottom offsets")
	}
}

func TestScrollBarNarrowFallback(t *testing.T) {
	bar := renderTableScrollBar(10, 3, 20, 100)
	if !strings.Contains(bar, "3/80") {
		t.Errorf("narrow fallback = %q, want offset counter", bar)
	}
}

func TestFitAnsiWidth(t *testing.T) {
	styled := lipgloss.NewStyle().Foreground(colorAccent).Render("hello world")

	cut := fitAnsiWidth(styled, 5)
	if w := lipgloss.Width(cut); w != 5 {
		t.Errorf("cut width = %d, want 5", w)
	}

	padded := fitAnsiWidth("hi", 6)
	if padded != "hi    " {
		t.Errorf("padded = %q, want trailing spaces", padded)
	}

	if got := fitAnsiWidth("anything", 0); got != "" {
		t.Errorf("zero width = %q, want empty", got)
	}
}

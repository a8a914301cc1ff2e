package ui

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

func withColor(t *testing.T, enabled bool) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = !enabled
	t.Cleanup(func() { color.NoColor = prev })
}

func TestCell(t *testing.T) {
	withColor(t, false)

	tests := []struct {
		name        string
		width       int
		value       string
		highlighted bool
		want        string
	}{
		{"padded", 3, "7", false, "  7"},
		{"exact width", 2, "42", false, "42"},
		{"wider than field", 1, "123", false, "123"},
		{"highlighted without color", 3, "7", true, "  7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cell(tt.width, tt.value, tt.highlighted)
			if got != tt.want {
				t.Errorf("Cell(%d, %q, %v) = %q, want %q", tt.width, tt.value, tt.highlighted, got, tt.want)
			}
		})
	}
}

func TestCellHighlightWithColor(t *testing.T) {
	withColor(t, true)

	got := Cell(4, "23", true)
	if !strings.HasPrefix(got, "  \x1b[") {
		t.Errorf("Cell() = %q, want unstyled padding followed by an escape sequence", got)
	}
	if !strings.Contains(got, "23") {
		t.Errorf("Cell() = %q, want it to contain the value", got)
	}

	if plain := Cell(4, "23", false); plain != "  23" {
		t.Errorf("Cell() without highlight = %q, want %q", plain, "  23")
	}
}

func TestBlank(t *testing.T) {
	if got := Blank(3); got != "   " {
		t.Errorf("Blank(3) = %q, want three spaces", got)
	}
	if got := Blank(0); got != "" {
		t.Errorf("Blank(0) = %q, want empty", got)
	}
}

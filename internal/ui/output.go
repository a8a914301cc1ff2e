package ui

import (
	"strings"

	"github.com/fatih/color"
)

// Highlight styles text the caller wants to point out.
var Highlight = color.New(color.Bold, color.FgGreen).SprintFunc()

// Cell right-aligns value in a field of the given width, styling it with
// Highlight when highlighted is set. Padding is never styled so that columns
// line up with or without color.
func Cell(width int, value string, highlighted bool) string {
	pad := ""
	if n := width - len(value); n > 0 {
		pad = strings.Repeat(" ", n)
	}
	if highlighted {
		value = Highlight(value)
	}
	return pad + value
}

// Blank returns an empty cell of the given width.
func Blank(width int) string {
	return strings.Repeat(" ", width)
}

package spiral

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rickgorman/aoc2017/internal/ui"
)

// Render writes the numbered grid of cells 1..last to w, top row first.
// Numbers are right-aligned to the width of last, and cells listed in
// highlight are styled with ui.Highlight. It panics if last is less than 1.
func Render(w io.Writer, last int, highlight ...int) error {
	if last < 1 {
		panic(fmt.Sprintf("spiral: cell %d must be positive", last))
	}

	marked := make(map[int]bool, len(highlight))
	for _, n := range highlight {
		marked[n] = true
	}

	cells := make(map[Point]int, last)
	var lo, hi Point
	for n := 1; n <= last; n++ {
		p := Coordinate(n)
		cells[p] = n
		lo.Col, hi.Col = min(lo.Col, p.Col), max(hi.Col, p.Col)
		lo.Row, hi.Row = min(lo.Row, p.Row), max(hi.Row, p.Row)
	}

	width := len(strconv.Itoa(last))
	for row := hi.Row; row >= lo.Row; row-- {
		line := make([]string, 0, hi.Col-lo.Col+1)
		for col := lo.Col; col <= hi.Col; col++ {
			n, ok := cells[Point{Col: col, Row: row}]
			if !ok {
				line = append(line, ui.Blank(width))
				continue
			}
			line = append(line, ui.Cell(width, strconv.Itoa(n), marked[n]))
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(line, " "), " ")); err != nil {
			return err
		}
	}
	return nil
}

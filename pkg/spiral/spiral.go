package spiral

import "fmt"

// Point is a grid position relative to cell 1. Col grows to the right and
// Row grows upwards.
type Point struct {
	Col int
	Row int
}

// Neighbors returns the eight points adjacent to p, including diagonals.
func (p Point) Neighbors() []Point {
	ns := make([]Point, 0, 8)
	for dc := -1; dc <= 1; dc++ {
		for dr := -1; dr <= 1; dr++ {
			if dc == 0 && dr == 0 {
				continue
			}
			ns = append(ns, Point{Col: p.Col + dc, Row: p.Row + dr})
		}
	}
	return ns
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
}

// shell describes the position of a cell within its ring.
type shell struct {
	side   int // side length of the enclosing square, always odd
	offset int // half-width of the previous ring
	start  int // first cell on the ring
	index  int // 0-based position along the ring
}

func locate(n int) shell {
	if n < 1 {
		panic(fmt.Sprintf("spiral: cell %d must be positive", n))
	}

	side := 1
	for side*side < n {
		side += 2
	}
	start := (side-2)*(side-2) + 1
	return shell{
		side:   side,
		offset: (side-1)/2 - 1,
		start:  start,
		index:  n - start,
	}
}

// Coordinate returns the grid position of cell n.
// It panics if n is less than 1.
func Coordinate(n int) Point {
	s := locate(n)
	if n == 1 {
		return Point{}
	}

	edge := s.side - 1
	half := s.side / 2
	outer := s.offset + 1

	switch {
	case s.index < edge:
		// right edge, going up
		return Point{Col: outer, Row: s.index - half + 1}
	case s.index < 2*edge:
		// top edge, going left
		return Point{Col: 2*edge - s.index - half - 1, Row: outer}
	case s.index < 3*edge:
		// left edge, going down
		return Point{Col: -outer, Row: 3*edge - s.index - half - 1}
	default:
		// bottom edge, going right
		return Point{Col: s.index - 3*edge - half + 1, Row: -outer}
	}
}

// Distance returns the Manhattan distance from cell n to cell 1.
// It panics if n is less than 1.
func Distance(n int) int {
	s := locate(n)
	if n == 1 {
		return 0
	}

	along := s.index%(s.side-1) - s.offset
	if along < 0 {
		along = -along
	}
	return s.offset + 1 + along
}

package spiral

// Accumulator walks the spiral, storing in each cell the sum of its already
// filled neighbours. Cell 1 holds 1. The zero value is ready to use.
type Accumulator struct {
	grid map[Point]int
	next int
}

// NewAccumulator returns an accumulator positioned before cell 1.
func NewAccumulator() *Accumulator {
	return &Accumulator{
		grid: make(map[Point]int),
		next: 1,
	}
}

// Next fills the next cell and returns its value. The returned values are
// 1, 1, 2, 4, 5, 10, 11, 23, ...
func (a *Accumulator) Next() int {
	if a.grid == nil {
		a.grid = make(map[Point]int)
	}
	if a.next == 0 {
		a.next = 1
	}

	p := Coordinate(a.next)
	a.next++

	if p == (Point{}) {
		a.grid[p] = 1
		return 1
	}

	sum := 0
	for _, q := range p.Neighbors() {
		sum += a.grid[q]
	}
	a.grid[p] = sum
	return sum
}

// Value returns the value written at p, or 0 if the cell is not filled yet.
func (a *Accumulator) Value(p Point) int {
	return a.grid[p]
}

// Cells returns the number of cells filled so far.
func (a *Accumulator) Cells() int {
	return max(a.next-1, 0)
}

// FirstAbove returns the first accumulated value strictly greater than
// threshold.
func FirstAbove(threshold int) int {
	a := NewAccumulator()
	for {
		if v := a.Next(); v > threshold {
			return v
		}
	}
}

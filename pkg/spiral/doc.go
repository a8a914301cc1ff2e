// Package spiral maps cells of an outward square spiral to grid coordinates.
//
// Cells are numbered from 1 at the centre, moving right and then
// counter-clockwise:
//
//	17  16  15  14  13
//	18   5   4   3  12
//	19   6   1   2  11
//	20   7   8   9  10
//	21  22  23  24  25
//
// Each ring of the spiral is a square of odd side length. Coordinate and
// Distance are closed-form over the ring containing the cell, so they never
// walk the spiral. The Accumulator does walk it, writing the sum of already
// filled neighbours into each new cell.
package spiral

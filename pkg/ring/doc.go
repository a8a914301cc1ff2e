// Package ring provides in-place operations on integer rings.
//
// A ring is an ordered slice whose last element is considered adjacent to
// its first. Ranges are given as a start position and a length and may run
// past the end of the slice, in which case they continue from index 0:
//
//	r := []int{0, 1, 2, 3, 4}
//	ring.Reverse(r, 3, 3)
//	// r is now [3 1 2 0 4]: positions 3, 4, 0 were reversed
//
// Out-of-range arguments are programming errors and cause a panic.
package ring

package ring

import "fmt"

// Identity returns the ring [0, 1, ..., n-1].
func Identity(n int) []int {
	if n <= 0 {
		panic(fmt.Sprintf("ring: size %d must be positive", n))
	}

	r := make([]int, n)
	for i := range r {
		r[i] = i
	}
	return r
}

// Reverse reverses, in place, the values at ring positions
// (start+i) mod len(r) for i in [0, length). Positions outside the range are
// left untouched.
//
// It panics if r is empty, start is not a valid index, or length is negative
// or larger than the ring.
func Reverse(r []int, start, length int) {
	n := len(r)
	if n == 0 {
		panic("ring: reverse on empty ring")
	}
	if start < 0 || start >= n {
		panic(fmt.Sprintf("ring: start %d out of range [0, %d)", start, n))
	}
	if length < 0 || length > n {
		panic(fmt.Sprintf("ring: length %d exceeds ring size %d", length, n))
	}

	// Walk inwards from both ends of the range, mapping each logical offset
	// to its absolute ring index.
	for i, j := 0, length-1; i < j; i, j = i+1, j-1 {
		a := (start + i) % n
		b := (start + j) % n
		r[a], r[b] = r[b], r[a]
	}
}

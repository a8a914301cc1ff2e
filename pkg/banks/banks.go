// Package banks simulates memory bank reallocation.
//
// Each cycle empties the bank holding the most blocks (the lowest index wins
// ties) and deals its blocks one at a time to the following banks, wrapping
// around to the first. Reallocate runs cycles until a configuration repeats.
package banks

import (
	"fmt"
	"strings"
)

// Fullest returns the index and block count of the bank with the most
// blocks. Ties go to the lowest index. It panics if b is empty.
func Fullest(b []int) (int, int) {
	if len(b) == 0 {
		panic("banks: no memory banks")
	}

	idx := 0
	for i, v := range b[1:] {
		if v > b[idx] {
			idx = i + 1
		}
	}
	return idx, b[idx]
}

// Redistribute performs one reallocation cycle on b in place.
func Redistribute(b []int) {
	idx, blocks := Fullest(b)
	n := len(b)

	b[idx] = 0
	all, some := blocks/n, blocks%n
	for i := range b {
		b[i] += all
	}
	for i := 1; i <= some; i++ {
		b[(idx+i)%n]++
	}
}

// Reallocate runs cycles on a copy of b until a configuration is seen a
// second time. It returns the number of cycles performed and the number of
// cycles in the loop that was found.
func Reallocate(b []int) (cycles, loop int) {
	cur := append([]int(nil), b...)
	seen := map[string]int{key(cur): 0}

	for {
		Redistribute(cur)
		cycles++

		k := key(cur)
		if first, ok := seen[k]; ok {
			return cycles, cycles - first
		}
		seen[k] = cycles
	}
}

func key(b []int) string {
	var sb strings.Builder
	for i, v := range b {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%d", v)
	}
	return sb.String()
}

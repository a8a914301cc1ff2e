// Package jumps runs the jump offset maze.
//
// The maze is a list of relative jump offsets. Starting at index 0, each
// step jumps by the offset at the current index and then adjusts that
// offset. The run ends when the jump leaves the list.
package jumps

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// Jump jumps from pc using the offset stored there, increments that offset
// and returns the new position.
func Jump(pc int, table []int) int {
	return jump(pc, table, increment)
}

// Steps returns the number of jumps needed to leave the maze when every
// offset is incremented after use. The input is not modified.
func Steps(table []int) int {
	return run(table, increment)
}

// StrangeSteps is like Steps, but offsets of three or more are decremented
// after use instead.
func StrangeSteps(table []int) int {
	return run(table, func(offset int) int {
		if offset >= 3 {
			return offset - 1
		}
		return offset + 1
	})
}

func increment(offset int) int { return offset + 1 }

func jump(pc int, table []int, adjust func(int) int) int {
	offset := table[pc]
	table[pc] = adjust(offset)
	return pc + offset
}

func run(table []int, adjust func(int) int) int {
	t := append([]int(nil), table...)
	steps := 0
	for pc := 0; pc >= 0 && pc < len(t); steps++ {
		pc = jump(pc, t, adjust)
	}
	return steps
}

// Parse reads one offset per line. Blank lines are skipped.
func Parse(s string) ([]int, error) {
	var table []int
	scanner := bufio.NewScanner(strings.NewReader(s))
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		offset, err := strconv.Atoi(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		table = append(table, offset)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read offsets: %w", err)
	}
	return table, nil
}

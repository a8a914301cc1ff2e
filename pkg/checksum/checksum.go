// Package checksum computes spreadsheet checksums over rows of integers.
package checksum

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// Parse reads one row per line, with cells separated by spaces or tabs.
// Blank lines are skipped.
func Parse(s string) ([][]int, error) {
	var rows [][]int
	scanner := bufio.NewScanner(strings.NewReader(s))
	for line := 1; scanner.Scan(); line++ {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		row := make([]int, 0, len(fields))
		for _, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read spreadsheet: %w", err)
	}
	return rows, nil
}

// MinMax returns the sum over all rows of the difference between the
// largest and smallest value. Empty rows count as zero.
func MinMax(rows [][]int) int {
	sum := 0
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		lo, hi := row[0], row[0]
		for _, v := range row[1:] {
			lo, hi = min(lo, v), max(hi, v)
		}
		sum += hi - lo
	}
	return sum
}

// EvenlyDivisible returns the sum over all rows of the quotient of the first
// pair of distinct cells where one evenly divides the other. Zero cells never
// take part in a pair. Rows without such a pair count as zero.
func EvenlyDivisible(rows [][]int) int {
	sum := 0
	for _, row := range rows {
		sum += quotient(row)
	}
	return sum
}

func quotient(row []int) int {
	for i, a := range row {
		for j, b := range row {
			if i == j || a == 0 || b == 0 {
				continue
			}
			if a%b == 0 {
				return a / b
			}
		}
	}
	return 0
}

// Package firewall models a packet crossing a layered firewall.
//
// Each layer at a given depth has a scanner sweeping up and down a range of
// cells, so it is back at the top every 2*(range-1) picoseconds. A packet
// entering at time delay reaches depth d at time delay+d and is caught when
// that layer's scanner is at the top.
package firewall

import (
	"bufio"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ErrNoSafeDelay is returned when every delay is caught by some layer.
var ErrNoSafeDelay = errors.New("firewall: no safe delay")

// Layer is one firewall layer.
type Layer struct {
	Depth int
	Range int
}

// Period returns the number of picoseconds between two visits of the
// scanner to the top cell.
func (l Layer) Period() int {
	if l.Range <= 1 {
		return 1
	}
	return 2 * (l.Range - 1)
}

// Catches reports whether a packet released at delay is caught by l.
func (l Layer) Catches(delay int) bool {
	return (delay+l.Depth)%l.Period() == 0
}

// Parse reads lines of the form "depth: range". Blank lines are skipped.
func Parse(s string) ([]Layer, error) {
	var layers []Layer
	scanner := bufio.NewScanner(strings.NewReader(s))
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		d, r, ok := strings.Cut(text, ":")
		if !ok {
			return nil, fmt.Errorf("line %d: missing \":\" in %q", line, text)
		}
		depth, err := strconv.Atoi(strings.TrimSpace(d))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid depth: %w", line, err)
		}
		rng, err := strconv.Atoi(strings.TrimSpace(r))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid range: %w", line, err)
		}
		if depth < 0 || rng < 1 {
			return nil, fmt.Errorf("line %d: depth must be >= 0 and range >= 1, got %q", line, text)
		}
		layers = append(layers, Layer{Depth: depth, Range: rng})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read firewall: %w", err)
	}
	return layers, nil
}

// Severity returns the sum of depth*range over the layers that catch a
// packet released without delay.
func Severity(layers []Layer) int {
	sum := 0
	for _, l := range layers {
		if l.Catches(0) {
			sum += l.Depth * l.Range
		}
	}
	return sum
}

// SafeDelay returns the smallest delay at which no layer catches the packet.
//
// Every layer forbids one residue of the delay modulo its period. The
// allowed residues are combined one modulus at a time, lifting them to the
// least common multiple of the periods seen so far, so the search never
// simulates individual delays.
func SafeDelay(layers []Layer) (int, error) {
	forbidden := make(map[int]map[int]bool)
	for _, l := range layers {
		m := l.Period()
		if forbidden[m] == nil {
			forbidden[m] = make(map[int]bool)
		}
		forbidden[m][mod(-l.Depth, m)] = true
	}

	moduli := make([]int, 0, len(forbidden))
	for m := range forbidden {
		moduli = append(moduli, m)
	}
	slices.Sort(moduli)

	lcm := 1
	residues := []int{0}
	for _, m := range moduli {
		prev := lcm
		lcm = lcm / gcd(lcm, m) * m

		var next []int
		for _, r := range residues {
			for x := r; x < lcm; x += prev {
				if !forbidden[m][x%m] {
					next = append(next, x)
				}
			}
		}
		if len(next) == 0 {
			return 0, ErrNoSafeDelay
		}
		residues = next
	}
	return slices.Min(residues), nil
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func mod(a, m int) int {
	return ((a % m) + m) % m
}

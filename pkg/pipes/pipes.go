// Package pipes finds groups of programs connected by pipes.
//
// Pipes are bidirectional: a program listed as connected to another can
// reach it and be reached by it, whether or not both lines mention the pipe.
package pipes

import (
	"bufio"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Graph maps each program ID to the programs it has a direct pipe to.
type Graph map[int][]int

// Parse reads lines of the form "2 <-> 0, 3, 4". Blank lines are skipped.
// Every pipe is recorded in both directions.
func Parse(s string) (Graph, error) {
	g := make(Graph)
	scanner := bufio.NewScanner(strings.NewReader(s))
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		left, right, ok := strings.Cut(text, "<->")
		if !ok {
			return nil, fmt.Errorf("line %d: missing \"<->\" in %q", line, text)
		}
		root, err := strconv.Atoi(strings.TrimSpace(left))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if _, ok := g[root]; !ok {
			g[root] = nil
		}

		for _, f := range strings.Split(right, ",") {
			peer, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			g.connect(root, peer)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read pipes: %w", err)
	}
	return g, nil
}

func (g Graph) connect(a, b int) {
	if !slices.Contains(g[a], b) {
		g[a] = append(g[a], b)
	}
	if !slices.Contains(g[b], a) {
		g[b] = append(g[b], a)
	}
}

// Group returns the sorted IDs of every program reachable from id,
// including id itself.
func (g Graph) Group(id int) []int {
	seen := map[int]bool{id: true}
	stack := []int{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, peer := range g[cur] {
			if !seen[peer] {
				seen[peer] = true
				stack = append(stack, peer)
			}
		}
	}

	group := make([]int, 0, len(seen))
	for p := range seen {
		group = append(group, p)
	}
	slices.Sort(group)
	return group
}

// Groups returns the number of disjoint groups in g.
func (g Graph) Groups() int {
	ids := make([]int, 0, len(g))
	for id := range g {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	seen := make(map[int]bool, len(g))
	groups := 0
	for _, id := range ids {
		if seen[id] {
			continue
		}
		groups++
		for _, p := range g.Group(id) {
			seen[p] = true
		}
	}
	return groups
}

// Package day09 solves 2015 day 9, "All in a Single Night".
//
// Distances are loaded into a digraph with an edge in each direction, and
// every Hamiltonian path is enumerated by depth-first search. Inputs have
// eight cities at most, so 8! routes is well within reach.
package day09

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc/challenge"
	"github.com/katalvlaran/aoc/digraph"
	"github.com/katalvlaran/aoc/internal/input"
)

var (
	// ErrBadLine indicates a line not shaped like "A to B = 42".
	ErrBadLine = errors.New("day09: expected \"<from> to <to> = <distance>\"")
	// ErrNoRoute indicates no route visits every city.
	ErrNoRoute = errors.New("day09: no route visits every city")
)

// Challenge registers the puzzle "All in a Single Night".
var Challenge = challenge.Challenge{
	ID:    challenge.ID{Year: 2015, Day: 9},
	Title: "All in a Single Night",
	Description: `Given the distance between pairs of locations, find the length of the
shortest route that visits every location exactly once (part 1) and of
the longest such route (part 2). Routes may start and end anywhere.`,
	Part1: Part1,
	Part2: Part2,
}

type graph = digraph.Graph[string, struct{}, int]

// Part1 returns the length of the shortest route visiting every location once.
func Part1(in string) (string, error) {
	shortest, _, err := routes(in)
	return strconv.Itoa(shortest), err
}

// Part2 returns the length of the longest such route.
func Part2(in string) (string, error) {
	_, longest, err := routes(in)
	return strconv.Itoa(longest), err
}

func parse(in string) (*graph, error) {
	lines := input.Lines(in)
	if len(lines) == 0 {
		return nil, challenge.ErrNoInput
	}

	g := digraph.New[string, struct{}, int]()
	for _, line := range lines {
		var from, to string
		var d int
		if _, err := fmt.Sscanf(strings.TrimSpace(line), "%s to %s = %d", &from, &to, &d); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadLine, line)
		}
		g.AddVertex(from, struct{}{})
		g.AddVertex(to, struct{}{})
		g.AddEdge(from, to, d)
		g.AddEdge(to, from, d)
	}

	return g, nil
}

func routes(in string) (shortest, longest int, err error) {
	g, err := parse(in)
	if err != nil {
		return 0, 0, err
	}

	shortest, longest = math.MaxInt, -1
	seen := make(map[string]bool, g.VertexCount())
	var walk func(at string, dist int)
	walk = func(at string, dist int) {
		if len(seen) == g.VertexCount() {
			shortest = min(shortest, dist)
			longest = max(longest, dist)
			return
		}
		for _, next := range g.Neighbors(at) {
			if seen[next] {
				continue
			}
			w, _ := g.EdgeValue(at, next)
			seen[next] = true
			walk(next, dist+w)
			delete(seen, next)
		}
	}
	for _, start := range g.Vertices() {
		seen[start] = true
		walk(start, 0)
		delete(seen, start)
	}

	if longest < 0 {
		return 0, 0, ErrNoRoute
	}
	return shortest, longest, nil
}

// Package day12 solves 2022 day 12, "Hill Climbing Algorithm".
//
// The heightmap becomes a digraph with every legal step reversed: the edge
// from→to exists when a climber may step from "to" onto "from". One
// shortest-path run from the summit then answers both parts.
package day12

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/aoc/challenge"
	"github.com/katalvlaran/aoc/dijkstra"
	"github.com/katalvlaran/aoc/grid"
	"github.com/katalvlaran/aoc/internal/input"
	"github.com/katalvlaran/aoc/point"
)

var (
	// ErrNoMarker indicates the map lacks an S or E marker.
	ErrNoMarker = errors.New("day12: map must contain S and E")
	// ErrNoPath indicates the summit cannot be reached.
	ErrNoPath = errors.New("day12: no path to the summit")
)

// Challenge registers the puzzle "Hill Climbing Algorithm".
var Challenge = challenge.Challenge{
	ID:    challenge.ID{Year: 2022, Day: 12},
	Title: "Hill Climbing Algorithm",
	Description: `Climb from S to E on a heightmap of letters, stepping at most one level
up (any amount down) per move. Part 1 is the fewest steps from S. Part 2
is the fewest steps from any square at elevation a.`,
	Part1: Part1,
	Part2: Part2,
}

// Part1 returns the fewest steps from S to E.
func Part1(in string) (string, error) {
	h, err := climb(in)
	if err != nil {
		return "", err
	}
	d, ok := h.dist.Distance(h.start)
	if !ok {
		return "", ErrNoPath
	}
	return strconv.Itoa(d), nil
}

// Part2 returns the fewest steps to E from any cell of elevation a.
func Part2(in string) (string, error) {
	h, err := climb(in)
	if err != nil {
		return "", err
	}
	best := math.MaxInt
	for p, v := range h.grid.All() {
		if elevation(v) != 'a' {
			continue
		}
		if d, ok := h.dist.Distance(p); ok {
			best = min(best, d)
		}
	}
	if best == math.MaxInt {
		return "", ErrNoPath
	}
	return strconv.Itoa(best), nil
}

type hill struct {
	grid  *grid.Grid[rune]
	start point.Point
	dist  *dijkstra.Result[point.Point, int]
}

func climb(in string) (*hill, error) {
	lines := input.Lines(in)
	if len(lines) == 0 {
		return nil, challenge.ErrNoInput
	}
	g, err := grid.LoadFromStrings(lines)
	if err != nil {
		return nil, fmt.Errorf("day12: %w", err)
	}
	s, e := g.IndexOf('S', 0), g.IndexOf('E', 0)
	if s < 0 || e < 0 {
		return nil, ErrNoMarker
	}

	reversed := grid.ToGraph(g, grid.Conn4, func(from, to point.Point) (int, bool) {
		return 1, elevation(g.At(from)) <= elevation(g.At(to))+1
	})
	dist, err := dijkstra.ShortestPaths(reversed, g.PointFromIndex(e))
	if err != nil {
		return nil, fmt.Errorf("day12: %w", err)
	}

	return &hill{grid: g, start: g.PointFromIndex(s), dist: dist}, nil
}

func elevation(r rune) rune {
	switch r {
	case 'S':
		return 'a'
	case 'E':
		return 'z'
	}
	return r
}

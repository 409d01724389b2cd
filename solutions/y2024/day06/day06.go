// Package day06 solves 2024 day 6, "Guard Gallivant".
package day06

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/katalvlaran/aoc/challenge"
	"github.com/katalvlaran/aoc/grid"
	"github.com/katalvlaran/aoc/internal/input"
	"github.com/katalvlaran/aoc/point"
)

// ErrNoGuard indicates the map has no guard marker.
var ErrNoGuard = errors.New("day06: no guard on the map")

// Challenge registers the puzzle "Guard Gallivant".
var Challenge = challenge.Challenge{
	ID:    challenge.ID{Year: 2024, Day: 6},
	Title: "Guard Gallivant",
	Description: `A guard walks forward and turns right whenever an obstacle (#) blocks
the way, until leaving the map. Part 1 counts the distinct positions
visited. Part 2 counts the positions where one new obstacle would trap
the guard in a loop.`,
	Part1: Part1,
	Part2: Part2,
}

const obstacle = '#'

var facing = map[rune]point.Point{
	'^': point.Up,
	'>': point.Right,
	'v': point.Down,
	'<': point.Left,
}

// nowhere is outside every map and never blocks the guard.
var nowhere = point.New(-1, -1)

type lab struct {
	g     *grid.Grid[rune]
	start point.Point
	dir   point.Point
}

// Part1 counts the distinct cells the guard visits before leaving the map.
func Part1(in string) (string, error) {
	l, err := parse(in)
	if err != nil {
		return "", err
	}
	visited, _ := l.patrol(nowhere)
	return strconv.Itoa(countTrue(visited)), nil
}

// Part2 only tries cells on the original route: an obstacle anywhere else
// is never touched.
func Part2(in string) (string, error) {
	l, err := parse(in)
	if err != nil {
		return "", err
	}
	route, _ := l.patrol(nowhere)

	count := 0
	for i, seen := range route {
		p := l.g.PointFromIndex(i)
		if !seen || p == l.start {
			continue
		}
		if _, loops := l.patrol(p); loops {
			count++
		}
	}

	return strconv.Itoa(count), nil
}

// patrol walks the guard off the map or into a loop and reports the cells
// visited. extra is treated as one more obstacle.
func (l *lab) patrol(extra point.Point) (visited []bool, loops bool) {
	visited = make([]bool, l.g.Len())
	states := make([]bool, l.g.Len()*len(point.Cardinals))
	pos, dir := l.start, l.dir
	for {
		i := l.g.Index(pos)
		visited[i] = true
		s := i*len(point.Cardinals) + slices.Index(point.Cardinals, dir)
		if states[s] {
			return visited, true
		}
		states[s] = true

		next := pos.Add(dir)
		v, ok := l.g.Lookup(next)
		switch {
		case !ok:
			return visited, false
		case v == obstacle || next == extra:
			// A right turn in screen space, where y grows downwards.
			dir.Rotate(point.CCW, point.Point{})
		default:
			pos = next
		}
	}
}

func parse(in string) (*lab, error) {
	lines := input.Lines(in)
	if len(lines) == 0 {
		return nil, challenge.ErrNoInput
	}
	g, err := grid.LoadFromStrings(lines)
	if err != nil {
		return nil, fmt.Errorf("day06: %w", err)
	}
	for p, v := range g.All() {
		if d, ok := facing[v]; ok {
			return &lab{g: g, start: p, dir: d}, nil
		}
	}
	return nil, ErrNoGuard
}

func countTrue(bs []bool) int {
	n := 0
	for _, b := range bs {
		if b {
			n++
		}
	}
	return n
}

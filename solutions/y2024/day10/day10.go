// Package day10 solves 2024 day 10, "Hoof It".
package day10

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/aoc/challenge"
	"github.com/katalvlaran/aoc/grid"
	"github.com/katalvlaran/aoc/internal/input"
	"github.com/katalvlaran/aoc/point"
)

// Challenge registers the puzzle "Hoof It".
var Challenge = challenge.Challenge{
	ID:    challenge.ID{Year: 2024, Day: 10},
	Title: "Hoof It",
	Description: `Hiking trails climb from height 0 to 9 one step at a time, moving only
up, down, left or right. A trailhead's score is the number of 9s it can
reach (part 1); its rating is the number of distinct trails starting
there (part 2). Both answers sum over every trailhead.`,
	Part1: Part1,
	Part2: Part2,
}

// impassable marks cells that are not digits, as in the smaller examples.
const impassable = -1

const (
	trailhead = 0
	summit    = 9
)

var uphill = grid.FloodOptions[int]{
	IsEqual: func(cur, next int) bool { return next == cur+1 },
}

// Part1 sums, over all trailheads, the number of 9s each can reach.
func Part1(in string) (string, error) {
	g, err := parse(in)
	if err != nil {
		return "", err
	}

	total := 0
	for p, v := range g.All() {
		if v != trailhead {
			continue
		}
		for q := range g.FloodFill(p, uphill) {
			if g.At(q) == summit {
				total++
			}
		}
	}

	return strconv.Itoa(total), nil
}

// Part2 sums, over all trailheads, the number of distinct trails each starts.
func Part2(in string) (string, error) {
	g, err := parse(in)
	if err != nil {
		return "", err
	}

	// trails[i] is the number of distinct trails from cell i to any summit,
	// or -1 when not yet known.
	trails := make([]int, g.Len())
	for i := range trails {
		trails[i] = -1
	}
	var count func(p point.Point) int
	count = func(p point.Point) int {
		i := g.Index(p)
		if trails[i] >= 0 {
			return trails[i]
		}
		h := g.At(p)
		n := 0
		if h == summit {
			n = 1
		} else {
			for q := range g.AdjacentPoints(p, grid.AdjacentOptions{OrthogonalOnly: true}) {
				if g.At(q) == h+1 {
					n += count(q)
				}
			}
		}
		trails[i] = n
		return n
	}

	total := 0
	for p, v := range g.All() {
		if v == trailhead {
			total += count(p)
		}
	}

	return strconv.Itoa(total), nil
}

func parse(in string) (*grid.Grid[int], error) {
	lines := input.Lines(in)
	if len(lines) == 0 {
		return nil, challenge.ErrNoInput
	}
	g, err := grid.LoadFromStringsFunc(lines, func(ch rune, _ point.Point) (int, error) {
		if ch < '0' || ch > '9' {
			return impassable, nil
		}
		return int(ch - '0'), nil
	})
	if err != nil {
		return nil, fmt.Errorf("day10: %w", err)
	}
	return g, nil
}

// Package day15 solves 2021 day 15, "Chiton".
package day15

import (
	"cmp"
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/aoc/challenge"
	"github.com/katalvlaran/aoc/grid"
	"github.com/katalvlaran/aoc/internal/input"
	"github.com/katalvlaran/aoc/point"
	"github.com/katalvlaran/aoc/pqueue"
)

// ErrBadRisk indicates a cell that is not a digit 1-9.
var ErrBadRisk = errors.New("day15: risk level must be a digit 1-9")

// Challenge registers the puzzle "Chiton".
var Challenge = challenge.Challenge{
	ID:    challenge.ID{Year: 2021, Day: 15},
	Title: "Chiton",
	Description: `Find the path from the top-left to the bottom-right of a risk map that
minimises the total risk of the cells entered. In part 2 the map is
tiled five times in each direction, with risk increasing by one per tile
and wrapping from 9 back to 1.`,
	Part1: Part1,
	Part2: Part2,
}

// Part1 returns the lowest total risk from the top-left to the bottom-right cell.
func Part1(in string) (string, error) {
	g, err := parse(in)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(lowestRisk(g)), nil
}

// Part2 returns the lowest total risk across the map tiled five times each way.
func Part2(in string) (string, error) {
	g, err := parse(in)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(lowestRisk(tile(g, 5))), nil
}

func parse(in string) (*grid.Grid[int], error) {
	lines := input.Lines(in)
	if len(lines) == 0 {
		return nil, challenge.ErrNoInput
	}
	return grid.LoadFromStringsFunc(lines, func(ch rune, p point.Point) (int, error) {
		if ch < '1' || ch > '9' {
			return 0, fmt.Errorf("%w: %q at %v", ErrBadRisk, ch, p)
		}
		return int(ch - '0'), nil
	})
}

// tile repeats g n×n times; each tile step adds one to the risk, wrapping 9 to 1.
func tile(g *grid.Grid[int], n int) *grid.Grid[int] {
	w, h := g.Width(), g.Height()
	big, _ := grid.New(w*n, h*n, 0)
	return grid.Map(big, func(_ int, p point.Point) int {
		base := g.At(point.New(p.X%w, p.Y%h))
		return (base+p.X/w+p.Y/h-1)%9 + 1
	})
}

type state struct {
	at   point.Point
	risk int
}

// lowestRisk runs Dijkstra from the top-left corner to the bottom-right one.
// The start cell's own risk is not counted.
func lowestRisk(g *grid.Grid[int]) int {
	goal := point.New(g.Width()-1, g.Height()-1)
	best := make([]int, g.Len())
	for i := range best {
		best[i] = -1
	}

	pq := pqueue.New(func(a, b state) int { return cmp.Compare(a.risk, b.risk) })
	pq.Push(state{})
	best[0] = 0
	for !pq.IsEmpty() {
		cur, _ := pq.Pop()
		if cur.at == goal {
			return cur.risk
		}
		if cur.risk > best[g.Index(cur.at)] {
			continue // stale
		}
		for next := range g.AdjacentPoints(cur.at, grid.AdjacentOptions{OrthogonalOnly: true}) {
			risk := cur.risk + g.At(next)
			i := g.Index(next)
			if best[i] >= 0 && best[i] <= risk {
				continue
			}
			best[i] = risk
			pq.Push(state{at: next, risk: risk})
		}
	}

	return best[g.Index(goal)]
}

// Package day06 solves 2018 day 6, "Chronal Coordinates".
package day06

import (
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/aoc/challenge"
	"github.com/katalvlaran/aoc/grid"
	"github.com/katalvlaran/aoc/internal/input"
	"github.com/katalvlaran/aoc/point"
)

// SafeLimit is the total distance bound used by Part2.
const SafeLimit = 10000

// tie marks a cell equally close to two or more coordinates.
const tie = -1

// Challenge registers the puzzle "Chronal Coordinates".
var Challenge = challenge.Challenge{
	ID:    challenge.ID{Year: 2018, Day: 6},
	Title: "Chronal Coordinates",
	Description: `Each location belongs to the coordinate closest to it by Manhattan
distance; ties belong to nobody. Part 1 finds the size of the largest
area that is not infinite. Part 2 counts the locations whose summed
distance to all coordinates is below 10000.`,
	Part1: Part1,
	Part2: Part2,
}

// Part1 returns the size of the largest finite area.
//
// Areas are computed over the bounding box of the coordinates. Any area
// touching the box edge keeps growing outside it and is infinite.
func Part1(in string) (string, error) {
	coords, err := parse(in)
	if err != nil {
		return "", err
	}
	box, origin, err := boundingGrid(coords, 0)
	if err != nil {
		return "", err
	}

	owners := grid.Map(box, func(_ int, p point.Point) int {
		return closest(coords, p.Add(origin))
	})

	infinite := make([]bool, len(coords))
	for p := range owners.EdgePoints() {
		if o := owners.At(p); o != tie {
			infinite[o] = true
		}
	}

	area := make([]int, len(coords))
	owners.ForEach(func(o int) {
		if o != tie {
			area[o]++
		}
	})

	best := 0
	for i, a := range area {
		if !infinite[i] {
			best = max(best, a)
		}
	}

	return strconv.Itoa(best), nil
}

// Part2 returns the size of the region within SafeLimit of every coordinate.
func Part2(in string) (string, error) {
	n, err := SafeRegionSize(in, SafeLimit)
	return strconv.Itoa(n), err
}

// SafeRegionSize counts the locations whose total distance to every
// coordinate is below limit. The search box is the bounding box padded by
// limit/len(coords) on every side; no point outside it can qualify.
func SafeRegionSize(in string, limit int) (int, error) {
	coords, err := parse(in)
	if err != nil {
		return 0, err
	}
	box, origin, err := boundingGrid(coords, limit/len(coords))
	if err != nil {
		return 0, err
	}

	safe := grid.Map(box, func(_ int, p point.Point) bool {
		p = p.Add(origin)
		total := 0
		for _, c := range coords {
			total += p.ManhattanDistance(c)
		}
		return total < limit
	})

	return safe.Count(true), nil
}

func parse(in string) ([]point.Point, error) {
	lines := input.Lines(in)
	if len(lines) == 0 {
		return nil, challenge.ErrNoInput
	}
	coords := make([]point.Point, 0, len(lines))
	for i, line := range lines {
		p, err := point.FromString(line)
		if err != nil {
			return nil, fmt.Errorf("day06: line %d: %w", i+1, err)
		}
		coords = append(coords, p)
	}

	return coords, nil
}

// boundingGrid returns an empty grid covering the coordinates' bounding box
// grown by pad, and the world position of its (0,0) cell.
func boundingGrid(coords []point.Point, pad int) (*grid.Grid[int], point.Point, error) {
	lo := point.New(math.MaxInt, math.MaxInt)
	hi := point.New(math.MinInt, math.MinInt)
	for _, c := range coords {
		lo = point.New(min(lo.X, c.X), min(lo.Y, c.Y))
		hi = point.New(max(hi.X, c.X), max(hi.Y, c.Y))
	}
	lo = lo.Sub(point.New(pad, pad))
	hi = hi.Add(point.New(pad, pad))

	g, err := grid.New(hi.X-lo.X+1, hi.Y-lo.Y+1, 0)
	return g, lo, err
}

// closest returns the index of the coordinate nearest p, or tie.
func closest(coords []point.Point, p point.Point) int {
	best, owner := math.MaxInt, tie
	for i, c := range coords {
		switch d := p.ManhattanDistance(c); {
		case d < best:
			best, owner = d, i
		case d == best:
			owner = tie
		}
	}

	return owner
}

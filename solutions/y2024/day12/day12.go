// Package day12 solves 2024 day 12, "Garden Groups".
//
// Regions are the 4-connected components of equal plants. A region's number
// of sides equals its number of corners, which can be counted cell by cell
// from each pair of orthogonal neighbours.
package day12

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/aoc/challenge"
	"github.com/katalvlaran/aoc/grid"
	"github.com/katalvlaran/aoc/internal/input"
	"github.com/katalvlaran/aoc/point"
)

// Challenge registers the puzzle "Garden Groups".
var Challenge = challenge.Challenge{
	ID:    challenge.ID{Year: 2024, Day: 12},
	Title: "Garden Groups",
	Description: `A garden is split into regions of the same plant. Fencing a region costs
its area times its perimeter (part 1) or, with the bulk discount, its
area times its number of straight sides (part 2). Sum the price of every
region.`,
	Part1: Part1,
	Part2: Part2,
}

// Part1 sums area times perimeter over every region.
func Part1(in string) (string, error) {
	return price(in, perimeter)
}

// Part2 sums area times number of sides over every region.
func Part2(in string) (string, error) {
	return price(in, sides)
}

type garden = grid.Grid[rune]

func price(in string, measure func(g *garden, region []point.Point) int) (string, error) {
	lines := input.Lines(in)
	if len(lines) == 0 {
		return "", challenge.ErrNoInput
	}
	g, err := grid.LoadFromStrings(lines)
	if err != nil {
		return "", fmt.Errorf("day12: %w", err)
	}

	total := 0
	for _, region := range g.Components(grid.Conn4) {
		total += len(region) * measure(g, region)
	}

	return strconv.Itoa(total), nil
}

// same reports whether q lies inside g and grows the same plant as p.
func same(g *garden, p, q point.Point) bool {
	v, ok := g.Lookup(q)
	return ok && v == g.At(p)
}

// perimeter counts the cell edges that face another plant or the outside.
func perimeter(g *garden, region []point.Point) int {
	n := 0
	opts := grid.AdjacentOptions{IncludeOutOfBounds: true, OrthogonalOnly: true}
	for _, p := range region {
		for q := range g.AdjacentPoints(p, opts) {
			if !same(g, p, q) {
				n++
			}
		}
	}
	return n
}

// sides counts corners. For each cell and each clockwise pair of orthogonal
// directions (a, b), the cell has a convex corner when neither a nor b is
// the same plant, and a concave one when both are but the diagonal a+b is not.
func sides(g *garden, region []point.Point) int {
	n := 0
	for _, p := range region {
		for i, a := range point.Cardinals {
			b := point.Cardinals[(i+1)%len(point.Cardinals)]
			sa, sb := same(g, p, p.Add(a)), same(g, p, p.Add(b))
			switch {
			case !sa && !sb:
				n++
			case sa && sb && !same(g, p, p.Add(a).Add(b)):
				n++
			}
		}
	}
	return n
}

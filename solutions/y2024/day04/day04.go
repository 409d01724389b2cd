// Package day04 solves 2024 day 4, "Ceres Search".
package day04

import (
	"fmt"
	"iter"
	"strconv"

	"github.com/katalvlaran/aoc/challenge"
	"github.com/katalvlaran/aoc/grid"
	"github.com/katalvlaran/aoc/internal/input"
	"github.com/katalvlaran/aoc/point"
)

// Challenge registers the puzzle "Ceres Search".
var Challenge = challenge.Challenge{
	ID:    challenge.ID{Year: 2024, Day: 4},
	Title: "Ceres Search",
	Description: `A word search. Part 1 counts every XMAS, in any of the eight directions,
overlaps allowed. Part 2 counts every X-MAS: two MAS written diagonally
(either way round) crossing on a shared A.`,
	Part1: Part1,
	Part2: Part2,
}

const word = "XMAS"

// Part1 counts XMAS in every direction, overlaps included.
func Part1(in string) (string, error) {
	g, err := parse(in)
	if err != nil {
		return "", err
	}

	count := 0
	for p, v := range g.All() {
		if v != rune(word[0]) {
			continue
		}
		for _, d := range point.Compass {
			line, _ := g.LinePoints(d, p, grid.LineOptions{})
			if spells(g, line) {
				count++
			}
		}
	}

	return strconv.Itoa(count), nil
}

// spells reports whether the first len(word) points of line spell word.
func spells(g *grid.Grid[rune], line iter.Seq[point.Point]) bool {
	i := 0
	for p := range line {
		if g.At(p) != rune(word[i]) {
			return false
		}
		i++
		if i == len(word) {
			return true
		}
	}
	return false
}

// Part2 counts the MAS crosses centred on an A.
func Part2(in string) (string, error) {
	g, err := parse(in)
	if err != nil {
		return "", err
	}

	var (
		nw, ne = point.New(-1, -1), point.New(1, -1)
		sw, se = point.New(-1, 1), point.New(1, 1)
	)
	count := 0
	for p := range g.RectPoints(1, 1, g.Width()-2, g.Height()-2) {
		if g.At(p) != 'A' {
			continue
		}
		if isMS(g.At(p.Add(nw)), g.At(p.Add(se))) && isMS(g.At(p.Add(ne)), g.At(p.Add(sw))) {
			count++
		}
	}

	return strconv.Itoa(count), nil
}

func isMS(a, b rune) bool {
	return (a == 'M' && b == 'S') || (a == 'S' && b == 'M')
}

func parse(in string) (*grid.Grid[rune], error) {
	lines := input.Lines(in)
	if len(lines) == 0 {
		return nil, challenge.ErrNoInput
	}
	g, err := grid.LoadFromStrings(lines)
	if err != nil {
		return nil, fmt.Errorf("day04: %w", err)
	}
	return g, nil
}

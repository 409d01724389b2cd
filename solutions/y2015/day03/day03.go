// Package day03 solves 2015 day 3, "Perfectly Spherical Houses in a Vacuum".
package day03

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc/challenge"
	"github.com/katalvlaran/aoc/point"
)

// ErrBadMove indicates a character other than ^ v < >.
var ErrBadMove = errors.New("day03: unknown move")

// Challenge registers the puzzle "Perfectly Spherical Houses in a Vacuum".
var Challenge = challenge.Challenge{
	ID:    challenge.ID{Year: 2015, Day: 3},
	Title: "Perfectly Spherical Houses in a Vacuum",
	Description: `Santa follows a string of moves on an infinite grid of houses and
delivers a present at every house he stops at, including the first one.
Part 1 counts the houses that get at least one present. In part 2 Santa
and Robo-Santa take turns following the moves.`,
	Part1: Part1,
	Part2: Part2,
}

var moves = map[rune]point.Point{
	'^': point.Up,
	'v': point.Down,
	'<': point.Left,
	'>': point.Right,
}

// Part1 counts the houses Santa visits at least once.
func Part1(in string) (string, error) {
	n, err := houses(in, 1)
	return strconv.Itoa(n), err
}

// Part2 counts the houses visited when Santa and Robo-Santa take turns.
func Part2(in string) (string, error) {
	n, err := houses(in, 2)
	return strconv.Itoa(n), err
}

// houses counts distinct houses visited by walkers santas taking turns.
func houses(in string, walkers int) (int, error) {
	in = strings.TrimSpace(in)
	if in == "" {
		return 0, challenge.ErrNoInput
	}

	pos := make([]point.Point, walkers)
	seen := map[point.Point]struct{}{{}: {}}
	turn := 0
	for _, ch := range in {
		d, ok := moves[ch]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrBadMove, ch)
		}
		p := &pos[turn%walkers]
		p.Translate(d, 1)
		seen[*p] = struct{}{}
		turn++
	}

	return len(seen), nil
}
